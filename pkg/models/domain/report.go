package domain

import "time"

// Report is a fully aggregated and rounded reconciliation report. Renderers
// receive it ready to print or encode; they perform no further arithmetic.
type Report struct {
	Title   string
	Period  TimePeriod
	Days    []DaySection
	Summary HoursSummary

	// Unmapped counts entries that fell back to the sentinel project. Zero
	// means every activity resolved through the activity map.
	Unmapped int

	// Empty marks a window with no tracked time. A recognized terminal
	// state with its own rendering path, not an error.
	Empty bool
}

// TimePeriod is the report window the entries were fetched for.
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

// DaySection holds one day of project lines plus the day's hour totals.
type DaySection struct {
	Day   string
	Lines []ProjectLine
	Hours HoursSummary
}

// ProjectLine is one rendered row: a project's rounded hours for a day with
// its deduplicated notes.
type ProjectLine struct {
	Project  string
	Hours    float64
	Notes    []string
	Billable bool
}

// HoursSummary carries rounded decimal hours split by billable flag.
type HoursSummary struct {
	Billable    float64
	NonBillable float64
	Total       float64
}
