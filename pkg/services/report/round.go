package report

import (
	"errors"
	"fmt"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// ErrInvalidRoundingStep is returned for a non-positive rounding granularity.
// Rounding config is validated up front so a bad step fails before any
// entries are fetched.
var ErrInvalidRoundingStep = errors.New("rounding step must be a positive number of minutes")

// CeilToStep rounds minutes up to the next multiple of step.
func CeilToStep(minutes, step int) (int, error) {
	if step < 1 {
		return 0, ErrInvalidRoundingStep
	}
	if minutes <= 0 {
		return 0, nil
	}
	return ((minutes + step - 1) / step) * step, nil
}

// RoundedHours applies ceiling rounding and converts to decimal hours. The
// result is never re-rounded to an integer.
func RoundedHours(minutes, step int) (float64, error) {
	rounded, err := CeilToStep(minutes, step)
	if err != nil {
		return 0, err
	}
	return float64(rounded) / 60, nil
}

// ValidateRounding rejects non-positive granularities.
func ValidateRounding(r domain.Rounding) error {
	if r.Entry < 1 {
		return fmt.Errorf("entry_round_up %d: %w", r.Entry, ErrInvalidRoundingStep)
	}
	if r.Project < 1 {
		return fmt.Errorf("project_round_up %d: %w", r.Project, ErrInvalidRoundingStep)
	}
	return nil
}

// RoundEntries returns a copy of entries with each duration ceiling-rounded
// to step. Kept for report variants that round per entry before grouping;
// the canonical reports round at the project level only.
func RoundEntries(entries []domain.Entry, step int) ([]domain.Entry, error) {
	rounded := make([]domain.Entry, len(entries))
	for i, entry := range entries {
		minutes, err := CeilToStep(entry.Minutes, step)
		if err != nil {
			return nil, err
		}
		entry.Minutes = minutes
		rounded[i] = entry
	}
	return rounded, nil
}
