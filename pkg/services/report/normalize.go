package report

import (
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
)

// Normalize converts one raw tracked record into its canonical entry.
//
// The duration is truncated to whole minutes; rounding, if any, happens much
// later and at a different granularity. The calendar day comes from the stop
// timestamp, so a session crossing midnight is attributed to the day it
// ended. Unknown activity ids resolve to the unmapped sentinel instead of
// failing; the caller surfaces the count, not an error.
func Normalize(rec domain.TimeRecord, activities domain.ActivityMap, loc *time.Location) domain.Entry {
	minutes := int(rec.Stop.Sub(rec.Start).Milliseconds() / 60000)
	if minutes < 0 {
		minutes = 0
	}

	mapping, mapped := activities.Resolve(rec.ActivityID)

	notes := make([]domain.Note, len(rec.Notes))
	copy(notes, rec.Notes)

	stop := rec.Stop.In(loc)
	return domain.Entry{
		Minutes:      minutes,
		Timestamp:    stop,
		Day:          domain.FormatDay(stop),
		Notes:        notes,
		ActivityName: rec.ActivityName,
		Project:      mapping.Project,
		ProjectID:    mapping.ProjectID,
		Billable:     mapping.Billable,
		Active:       mapping.Active,
		Mapped:       mapped,
	}
}

// NormalizeAll maps a fetched record set into canonical entries.
func NormalizeAll(records []domain.TimeRecord, activities domain.ActivityMap, loc *time.Location) []domain.Entry {
	entries := make([]domain.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, Normalize(rec, activities, loc))
	}
	return entries
}
