package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
	"github.com/de-tools/time-atlas/pkg/services/timewindow"
)

// TrackerService is the slice of the tracker client the runner depends on.
type TrackerService interface {
	GetActivities(ctx context.Context) ([]store.Activity, error)
	GetTimeEntries(ctx context.Context, start, end time.Time) ([]domain.TimeRecord, error)
}

// Runner executes a report end to end: resolve the window, fetch the raw
// records, normalize, and build. It owns its entry list and group state
// exclusively for the duration of one run; nothing is shared across runs.
type Runner struct {
	tracker    TrackerService
	builder    *Builder
	registry   Registry
	activities domain.ActivityMap
	rounding   domain.Rounding
	loc        *time.Location

	// roundEntries enables the per-entry rounding variant. The canonical
	// reports round at the project level only.
	roundEntries bool

	now func() time.Time
}

type RunnerOptions struct {
	Tracker      TrackerService
	Registry     Registry
	Activities   domain.ActivityMap
	Rounding     domain.Rounding
	Location     *time.Location
	RoundEntries bool
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

func NewRunner(opts RunnerOptions) (*Runner, error) {
	builder, err := NewBuilder(opts.Rounding)
	if err != nil {
		return nil, err
	}
	if opts.Tracker == nil {
		return nil, fmt.Errorf("tracker service cannot be nil")
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		tracker:      opts.Tracker,
		builder:      builder,
		registry:     opts.Registry,
		activities:   opts.Activities,
		rounding:     opts.Rounding,
		loc:          opts.Location,
		roundEntries: opts.RoundEntries,
		now:          opts.Now,
	}, nil
}

// Windows lists the named windows this runner can resolve.
func (r *Runner) Windows() []string {
	return r.registry.ListWindows()
}

// Run executes the named report window.
func (r *Runner) Run(ctx context.Context, window string) (*domain.Report, []domain.Entry, error) {
	w, err := r.registry.Resolve(window)
	if err != nil {
		return nil, nil, err
	}
	return r.runPeriod(ctx, w.Label, w.Range(r.now().In(r.loc)))
}

// RunDate executes a report for one explicit "YYYY-M-D" calendar date.
func (r *Runner) RunDate(ctx context.Context, value string) (*domain.Report, []domain.Entry, error) {
	date, err := timewindow.ParseDay(value, r.loc)
	if err != nil {
		return nil, nil, err
	}
	title := fmt.Sprintf("Hours for %s", value)
	return r.runPeriod(ctx, title, DayWindow(date))
}

// ListActivities joins the tracker's activities with the configured map.
func (r *Runner) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := r.tracker.GetActivities(ctx)
	if err != nil {
		return nil, err
	}

	joined := make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		mapping, mapped := r.activities.Resolve(activity.ID)
		joined = append(joined, domain.Activity{
			ID:       activity.ID,
			Name:     activity.Name,
			Project:  mapping.Project,
			Billable: mapping.Billable,
			Mapped:   mapped,
		})
	}
	return joined, nil
}

func (r *Runner) runPeriod(ctx context.Context, title string, period domain.TimePeriod) (*domain.Report, []domain.Entry, error) {
	records, err := r.tracker.GetTimeEntries(ctx, period.Start, period.End)
	if err != nil {
		return nil, nil, err
	}

	entries := NormalizeAll(records, r.activities, r.loc)
	if r.roundEntries {
		entries, err = RoundEntries(entries, r.rounding.Entry)
		if err != nil {
			return nil, nil, err
		}
	}

	rep, err := r.builder.Build(title, period, entries)
	if err != nil {
		return nil, nil, err
	}
	return rep, entries, nil
}
