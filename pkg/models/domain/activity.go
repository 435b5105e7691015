package domain

// Activity is a tracker activity joined with its configured project mapping,
// used by the activity listings.
type Activity struct {
	ID       string
	Name     string
	Project  string
	Billable bool
	Mapped   bool
}
