package adapters

import (
	"fmt"
	"regexp"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
)

// trackerTimeLayout is the tracker's zone-less ISO timestamp. The API
// reports all instants in UTC without a zone designator.
const trackerTimeLayout = "2006-01-02T15:04:05.000"

// inlineTagMarkers matches the tracker's inline tag placeholders embedded in
// free text, e.g. "<{{|t|12345|}}>". Tags arrive separately in the note's
// tag list, so the markers are stripped rather than parsed.
var inlineTagMarkers = regexp.MustCompile(`<\{\{\|t\|\d*\|\}\}>`)

func MapStoreTimeEntryToDomainRecord(entry store.TimeEntry, activityNames map[string]string) (domain.TimeRecord, error) {
	start, err := time.ParseInLocation(trackerTimeLayout, entry.Duration.StartedAt, time.UTC)
	if err != nil {
		return domain.TimeRecord{}, fmt.Errorf("entry %s: bad start timestamp %q: %w", entry.ID, entry.Duration.StartedAt, err)
	}
	stop, err := time.ParseInLocation(trackerTimeLayout, entry.Duration.StoppedAt, time.UTC)
	if err != nil {
		return domain.TimeRecord{}, fmt.Errorf("entry %s: bad stop timestamp %q: %w", entry.ID, entry.Duration.StoppedAt, err)
	}

	notes := make([]domain.Note, 0, len(entry.Note.Tags)+1)
	for _, tag := range entry.Note.Tags {
		notes = append(notes, domain.Note{Label: tag.Label, Tag: true})
	}
	if text := inlineTagMarkers.ReplaceAllString(entry.Note.Text, ""); text != "" {
		notes = append(notes, domain.Note{Label: text})
	}

	return domain.TimeRecord{
		ID:           entry.ID,
		ActivityID:   entry.ActivityID,
		ActivityName: activityNames[entry.ActivityID],
		Start:        start,
		Stop:         stop,
		Notes:        notes,
	}, nil
}

func MapStoreActivityNames(activities []store.Activity) map[string]string {
	names := make(map[string]string, len(activities))
	for _, activity := range activities {
		names[activity.ID] = activity.Name
	}
	return names
}
