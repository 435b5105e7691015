package domain

// BillableSummary tallies billable and non-billable minutes. Values stay in
// truncated integer minutes until the report builder applies rounding.
type BillableSummary struct {
	BillableMinutes    int
	NonBillableMinutes int
}

// Add accumulates minutes under the given billable flag.
func (s *BillableSummary) Add(billable bool, minutes int) {
	if billable {
		s.BillableMinutes += minutes
	} else {
		s.NonBillableMinutes += minutes
	}
}

// TotalMinutes returns the combined minute count.
func (s BillableSummary) TotalMinutes() int {
	return s.BillableMinutes + s.NonBillableMinutes
}

// ProjectGroup is the accumulated bucket for one (day, project) pair.
type ProjectGroup struct {
	Project   string
	ProjectID int64
	Billable  bool
	Active    bool
	Mapped    bool
	Minutes   int

	// Notes holds every contributing note in rendered form, duplicates and
	// all. Deduplication happens once per group in the note filter, because
	// duplicates must merge across entries, not just within one.
	Notes []string

	// Activities carries the display names of contributing activities, used
	// as fallback text when filtering leaves the note list empty.
	Activities []string
}

// DayGroup aggregates one calendar day of entries, split by project.
type DayGroup struct {
	Day      string
	Projects map[string]*ProjectGroup
	Tally    BillableSummary
}

// GroupedEntries is the full fold result for one report window.
type GroupedEntries struct {
	Days map[string]*DayGroup

	// Summary equals the sum of all day tallies exactly; grouping performs
	// pure integer sums and never rounds.
	Summary BillableSummary

	// Unmapped counts entries that resolved to the sentinel project.
	Unmapped int
}

// DayKeys returns the day keys in ascending chronological order.
func (g *GroupedEntries) DayKeys() []string {
	keys := make([]string, 0, len(g.Days))
	for day := range g.Days {
		keys = append(keys, day)
	}
	sortDayKeys(keys)
	return keys
}
