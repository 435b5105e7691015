package report

import (
	"testing"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndResolve(t *testing.T) {
	r := NewRegistry()

	err := r.Register("today", Window{Label: "Today", Range: func(now time.Time) domain.TimePeriod {
		return domain.TimePeriod{Start: now, End: now}
	}})
	require.NoError(t, err)

	window, err := r.Resolve("today")
	require.NoError(t, err)
	assert.Equal(t, "Today", window.Label)

	_, err = r.Resolve("never")
	assert.Error(t, err)
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register("", Window{Range: func(time.Time) domain.TimePeriod { return domain.TimePeriod{} }}))
	assert.Error(t, r.Register("bad", Window{}))

	require.NoError(t, r.Register("dup", Window{Range: func(time.Time) domain.TimePeriod { return domain.TimePeriod{} }}))
	assert.Error(t, r.Register("dup", Window{Range: func(time.Time) domain.TimePeriod { return domain.TimePeriod{} }}))
}

func TestDefaultRegistryWindows(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{"last-week", "this-week", "today", "yesterday"}, r.ListWindows())

	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name          string
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "today",
			expectedStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 10, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:          "yesterday",
			expectedStart: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 9, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:          "this-week",
			expectedStart: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 13, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:          "last-week",
			expectedStart: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 6, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := r.Resolve(tt.name)
			require.NoError(t, err)

			period := window.Range(now)
			assert.Equal(t, tt.expectedStart, period.Start)
			assert.Equal(t, tt.expectedEnd, period.End)
			assert.NotEmpty(t, window.Label)
		})
	}
}

func TestDayWindow(t *testing.T) {
	date := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	period := DayWindow(date)

	assert.Equal(t, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2024, 1, 9, 23, 59, 59, 999000000, time.UTC), period.End)
}
