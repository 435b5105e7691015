package domain

import "time"

// Note is one descriptive fragment attached to a time record. Tags and free
// text follow different filtering rules, so the distinction is kept from
// normalization onward instead of flattening everything into strings early.
type Note struct {
	Label string
	Tag   bool
}

// Rendered returns the printable form of the note, tags as "#label".
func (n Note) Rendered() string {
	if n.Tag {
		return "#" + n.Label
	}
	return n.Label
}

// TimeRecord is one raw tracked interval as returned by the tracker API.
// Owned by the tracker client; read-only to the aggregation core.
type TimeRecord struct {
	ID           string
	ActivityID   string
	ActivityName string
	Start        time.Time
	Stop         time.Time
	Notes        []Note
}

// Entry is the canonical form of a TimeRecord resolved against the activity
// map. Never mutated after creation; lives for a single report run.
type Entry struct {
	Minutes      int
	Timestamp    time.Time
	Day          string // sortable "YYYY-M-D" key derived from the stop time
	Notes        []Note
	ActivityName string
	Project      string
	ProjectID    int64
	Billable     bool
	Active       bool
	Mapped       bool
}
