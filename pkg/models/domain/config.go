package domain

// UnmappedProject is the sentinel project for activities that have no entry
// in the activity map. Tracked time is never dropped for lack of a mapping;
// it lands here as non-billable and is surfaced as a warning count.
const UnmappedProject = "unmapped"

// ProjectMapping links one tracker activity to a billing project.
type ProjectMapping struct {
	Project   string `mapstructure:"project"`
	ProjectID int64  `mapstructure:"project_id"`
	Billable  bool   `mapstructure:"billable"`
	Active    bool   `mapstructure:"active"`
}

// ActivityMap maps tracker activity ids onto billing projects. Loaded once
// per run from configuration and treated as immutable afterwards.
type ActivityMap map[string]ProjectMapping

// Resolve returns the mapping for an activity id, falling back to the
// unmapped sentinel when the id is unknown.
func (m ActivityMap) Resolve(activityID string) (ProjectMapping, bool) {
	if mapping, ok := m[activityID]; ok {
		return mapping, true
	}
	return ProjectMapping{Project: UnmappedProject}, false
}

// Rounding holds the two independently configured ceiling granularities, in
// minutes. Entry rounding applies to individual durations, project rounding
// to per-group and summary totals; they are deliberately distinct.
type Rounding struct {
	Entry   int `mapstructure:"entry_round_up"`
	Project int `mapstructure:"project_round_up"`
}
