package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(day, project string, minutes int, billable bool, notes ...string) domain.Entry {
	rendered := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		rendered = append(rendered, domain.Note{Label: n})
	}
	return domain.Entry{
		Day:      day,
		Project:  project,
		Minutes:  minutes,
		Billable: billable,
		Notes:    rendered,
		Mapped:   true,
	}
}

func TestGroupByDayAndProject(t *testing.T) {
	entries := []domain.Entry{
		entry("2024-1-8", "P1", 30, true, "morning"),
		entry("2024-1-8", "P1", 45, true, "afternoon"),
		entry("2024-1-8", "P2", 20, false, "admin"),
		entry("2024-1-9", "P1", 60, true),
	}

	grouped := Group(entries)

	require.Len(t, grouped.Days, 2)

	day8 := grouped.Days["2024-1-8"]
	require.NotNil(t, day8)
	assert.Equal(t, 75, day8.Projects["P1"].Minutes)
	assert.Equal(t, []string{"morning", "afternoon"}, day8.Projects["P1"].Notes)
	assert.Equal(t, 20, day8.Projects["P2"].Minutes)
	assert.Equal(t, 75, day8.Tally.BillableMinutes)
	assert.Equal(t, 20, day8.Tally.NonBillableMinutes)

	day9 := grouped.Days["2024-1-9"]
	require.NotNil(t, day9)
	assert.Equal(t, 60, day9.Projects["P1"].Minutes)

	assert.Equal(t, 135, grouped.Summary.BillableMinutes)
	assert.Equal(t, 20, grouped.Summary.NonBillableMinutes)
	assert.Equal(t, 155, grouped.Summary.TotalMinutes())
}

func TestGroupSummaryEqualsDayTallies(t *testing.T) {
	entries := []domain.Entry{
		entry("2024-1-8", "P1", 33, true),
		entry("2024-1-8", "P2", 27, false),
		entry("2024-1-9", "P1", 41, true),
		entry("2024-1-10", "P3", 19, false),
	}

	grouped := Group(entries)

	var fromDays domain.BillableSummary
	for _, day := range grouped.Days {
		fromDays.BillableMinutes += day.Tally.BillableMinutes
		fromDays.NonBillableMinutes += day.Tally.NonBillableMinutes
	}

	// Grouping is a pure integer sum; the report-wide summary must equal the
	// day tallies exactly.
	assert.Equal(t, fromDays, grouped.Summary)
}

func TestGroupOrderIndependent(t *testing.T) {
	entries := []domain.Entry{
		entry("2024-1-8", "P1", 30, true, "a", "b"),
		entry("2024-1-8", "P2", 15, false, "c"),
		entry("2024-1-9", "P1", 25, true, "a"),
		entry("2024-1-9", "P2", 50, false, "d"),
		entry("2024-1-9", "P2", 5, false, "d"),
	}

	reference := Group(entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Entry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		grouped := Group(shuffled)

		assert.Equal(t, reference.Summary, grouped.Summary)
		for day, refDay := range reference.Days {
			gotDay := grouped.Days[day]
			require.NotNil(t, gotDay)
			assert.Equal(t, refDay.Tally, gotDay.Tally)
			for project, refBucket := range refDay.Projects {
				gotBucket := gotDay.Projects[project]
				require.NotNil(t, gotBucket)
				assert.Equal(t, refBucket.Minutes, gotBucket.Minutes)
				// Note order may differ across shuffles; the sets must match.
				assert.ElementsMatch(t, refBucket.Notes, gotBucket.Notes)
			}
		}
	}
}

func TestGroupSharedProjectBucket(t *testing.T) {
	// Two activities mapped to the same project land in one bucket.
	a := entry("2024-1-8", "P1", 30, true, "#support")
	a.ActivityName = "Support"
	b := entry("2024-1-8", "P1", 12, true, "#support")
	b.ActivityName = "Escalations"

	grouped := Group([]domain.Entry{a, b})

	bucket := grouped.Days["2024-1-8"].Projects["P1"]
	require.NotNil(t, bucket)
	assert.Equal(t, 42, bucket.Minutes)
	assert.Equal(t, []string{"#support", "#support"}, bucket.Notes)
	assert.Equal(t, []string{"Support", "Escalations"}, bucket.Activities)
}

func TestGroupCountsUnmapped(t *testing.T) {
	mapped := entry("2024-1-8", "P1", 30, true)
	ghost := domain.Entry{Day: "2024-1-8", Project: domain.UnmappedProject, Minutes: 10}

	grouped := Group([]domain.Entry{mapped, ghost, ghost})

	assert.Equal(t, 2, grouped.Unmapped)
	assert.Equal(t, 20, grouped.Days["2024-1-8"].Projects[domain.UnmappedProject].Minutes)
	assert.Equal(t, 20, grouped.Summary.NonBillableMinutes)
}

func TestDayKeysSortNumerically(t *testing.T) {
	grouped := Group([]domain.Entry{
		entry("2024-10-1", "P1", 10, true),
		entry("2024-2-1", "P1", 10, true),
		entry("2024-1-31", "P1", 10, true),
	})

	assert.Equal(t, []string{"2024-1-31", "2024-2-1", "2024-10-1"}, grouped.DayKeys())
}

func TestGroupedEntriesTimestampIrrelevant(t *testing.T) {
	// Grouping keys on the precomputed day, never on the raw timestamp.
	e := entry("2024-1-8", "P1", 30, true)
	e.Timestamp = time.Date(2030, 6, 6, 6, 6, 6, 0, time.UTC)

	grouped := Group([]domain.Entry{e})
	assert.Contains(t, grouped.Days, "2024-1-8")
}
