package submit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
	"github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

// BillingService is the slice of the billing client the submitter needs.
type BillingService interface {
	CreateEntry(ctx context.Context, payload store.BillingEntryPayload) (*store.BillingEntry, error)
}

// Plan is the full set of submissions derived from one report window.
// Groups without an active, resolvable project mapping are listed as
// skipped instead of silently dropped.
type Plan struct {
	Entries []store.BillingEntryPayload
	Skipped []SkippedGroup
}

// SkippedGroup records one (day, project) group excluded from submission.
type SkippedGroup struct {
	Day     string
	Project string
	Minutes int
	Reason  string
}

// Result pairs one submission payload with its outcome.
type Result struct {
	Payload store.BillingEntryPayload
	EntryID int64
	Err     error
}

// BuildPlan folds entries and converts each (day, project) group into a
// billing payload: project-rounded minutes and a description joined from the
// group's filtered notes. Output order is deterministic (day, then project).
func BuildPlan(entries []domain.Entry, rounding domain.Rounding) (*Plan, error) {
	if err := report.ValidateRounding(rounding); err != nil {
		return nil, err
	}

	grouped := report.Group(entries)
	plan := &Plan{}

	for _, day := range grouped.DayKeys() {
		dayGroup := grouped.Days[day]

		projects := make([]string, 0, len(dayGroup.Projects))
		for name := range dayGroup.Projects {
			projects = append(projects, name)
		}
		sort.Strings(projects)

		for _, name := range projects {
			bucket := dayGroup.Projects[name]

			if reason, ok := skipReason(bucket); ok {
				plan.Skipped = append(plan.Skipped, SkippedGroup{
					Day:     day,
					Project: name,
					Minutes: bucket.Minutes,
					Reason:  reason,
				})
				continue
			}

			minutes, err := report.CeilToStep(bucket.Minutes, rounding.Project)
			if err != nil {
				return nil, err
			}

			plan.Entries = append(plan.Entries, store.BillingEntryPayload{
				Date:        day,
				Minutes:     minutes,
				ProjectID:   bucket.ProjectID,
				Description: description(bucket),
			})
		}
	}

	return plan, nil
}

// Submit pushes every planned entry. Submissions are independent of one
// another, so one failure never blocks the rest; failures are collected and
// returned alongside the per-entry results.
func Submit(ctx context.Context, svc BillingService, plan *Plan) ([]Result, error) {
	logger := zerolog.Ctx(ctx)

	results := make([]Result, 0, len(plan.Entries))
	var errs []error

	for _, payload := range plan.Entries {
		entry, err := svc.CreateEntry(ctx, payload)

		result := Result{Payload: payload, Err: err}
		if err != nil {
			logger.Warn().
				Err(err).
				Str("date", payload.Date).
				Int64("project_id", payload.ProjectID).
				Msg("billing submission failed")
			errs = append(errs, fmt.Errorf("%s project %d: %w", payload.Date, payload.ProjectID, err))
		} else {
			result.EntryID = entry.ID
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

func skipReason(bucket *domain.ProjectGroup) (string, bool) {
	if !bucket.Mapped {
		return "no project mapping for activity", true
	}
	if !bucket.Active {
		return "project mapping is inactive", true
	}
	if bucket.ProjectID == 0 {
		return "project mapping has no billing project id", true
	}
	return "", false
}

func description(bucket *domain.ProjectGroup) string {
	notes := report.FilterNotes(bucket.Notes)
	if len(notes) == 0 {
		notes = report.FilterNotes(bucket.Activities)
	}
	return strings.Join(notes, ", ")
}
