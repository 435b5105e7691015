package report

import (
	"fmt"
	"sort"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// Builder assembles renderable reports from canonical entries. All grouping
// and rounding happens here; renderers receive finished numbers.
type Builder struct {
	rounding domain.Rounding
}

// NewBuilder validates the rounding config up front. A bad granularity is a
// startup failure, not something to discover mid-report.
func NewBuilder(rounding domain.Rounding) (*Builder, error) {
	if err := ValidateRounding(rounding); err != nil {
		return nil, err
	}
	return &Builder{rounding: rounding}, nil
}

// Build produces the report for one window. An empty entry list yields an
// explicit empty report, not an error.
func (b *Builder) Build(title string, period domain.TimePeriod, entries []domain.Entry) (*domain.Report, error) {
	if len(entries) == 0 {
		return &domain.Report{Title: title, Period: period, Empty: true}, nil
	}

	grouped := Group(entries)

	rep := &domain.Report{
		Title:    title,
		Period:   period,
		Days:     make([]domain.DaySection, 0, len(grouped.Days)),
		Unmapped: grouped.Unmapped,
	}

	for _, dayKey := range grouped.DayKeys() {
		day := grouped.Days[dayKey]

		section := domain.DaySection{
			Day:   dayKey,
			Lines: make([]domain.ProjectLine, 0, len(day.Projects)),
		}

		for _, name := range sortedProjects(day.Projects) {
			bucket := day.Projects[name]

			line, err := b.projectLine(bucket)
			if err != nil {
				return nil, fmt.Errorf("day %s, project %s: %w", dayKey, name, err)
			}
			section.Lines = append(section.Lines, line)
		}

		hours, err := b.hoursSummary(day.Tally)
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", dayKey, err)
		}
		section.Hours = hours

		rep.Days = append(rep.Days, section)
	}

	summary, err := b.hoursSummary(grouped.Summary)
	if err != nil {
		return nil, err
	}
	rep.Summary = summary

	return rep, nil
}

func (b *Builder) projectLine(bucket *domain.ProjectGroup) (domain.ProjectLine, error) {
	hours, err := RoundedHours(bucket.Minutes, b.rounding.Project)
	if err != nil {
		return domain.ProjectLine{}, err
	}

	notes := FilterNotes(bucket.Notes)
	if len(notes) == 0 {
		// A group that tracked time must never render without descriptive
		// text; fall back to the contributing activity names.
		notes = FilterNotes(bucket.Activities)
	}

	return domain.ProjectLine{
		Project:  bucket.Project,
		Hours:    hours,
		Notes:    notes,
		Billable: bucket.Billable,
	}, nil
}

// hoursSummary rounds the billable and non-billable tallies independently
// and totals the rounded values. Rounding each side before summing matches
// the billing service's ledger, even though it can exceed the rounded sum of
// the raw total.
func (b *Builder) hoursSummary(tally domain.BillableSummary) (domain.HoursSummary, error) {
	billable, err := RoundedHours(tally.BillableMinutes, b.rounding.Project)
	if err != nil {
		return domain.HoursSummary{}, err
	}
	nonBillable, err := RoundedHours(tally.NonBillableMinutes, b.rounding.Project)
	if err != nil {
		return domain.HoursSummary{}, err
	}

	return domain.HoursSummary{
		Billable:    billable,
		NonBillable: nonBillable,
		Total:       billable + nonBillable,
	}, nil
}

func sortedProjects(projects map[string]*domain.ProjectGroup) []string {
	names := make([]string, 0, len(projects))
	for name := range projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
