package report

import (
	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// Group folds canonical entries into day -> project buckets. Duration and
// billable sums are commutative, so input order never changes the totals;
// note accumulation keeps input order and is deduplicated later by the
// filter. Two activities mapped to the same project share a bucket.
func Group(entries []domain.Entry) *domain.GroupedEntries {
	grouped := &domain.GroupedEntries{
		Days: make(map[string]*domain.DayGroup),
	}

	for _, entry := range entries {
		day, ok := grouped.Days[entry.Day]
		if !ok {
			day = &domain.DayGroup{
				Day:      entry.Day,
				Projects: make(map[string]*domain.ProjectGroup),
			}
			grouped.Days[entry.Day] = day
		}

		bucket, ok := day.Projects[entry.Project]
		if !ok {
			bucket = &domain.ProjectGroup{
				Project:   entry.Project,
				ProjectID: entry.ProjectID,
				Billable:  entry.Billable,
				Active:    entry.Active,
				Mapped:    entry.Mapped,
			}
			day.Projects[entry.Project] = bucket
		}

		bucket.Minutes += entry.Minutes
		for _, note := range entry.Notes {
			bucket.Notes = append(bucket.Notes, note.Rendered())
		}
		bucket.Activities = append(bucket.Activities, entry.ActivityName)

		day.Tally.Add(entry.Billable, entry.Minutes)
		grouped.Summary.Add(entry.Billable, entry.Minutes)

		if !entry.Mapped {
			grouped.Unmapped++
		}
	}

	return grouped
}
