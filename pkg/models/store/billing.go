package store

// Wire models for the billing API (Noko v2 shape).

type BillingProject struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Billable bool   `json:"billable"`
	Enabled  bool   `json:"enabled"`
}

// BillingEntryPayload is the submission body for one aggregated
// (day, project) group. Date uses the unpadded "YYYY-M-D" form.
type BillingEntryPayload struct {
	Date        string `json:"date"`
	Minutes     int    `json:"minutes"`
	ProjectID   int64  `json:"project_id"`
	Description string `json:"description"`
}

type BillingEntry struct {
	ID          int64          `json:"id"`
	Date        string         `json:"date"`
	Minutes     int            `json:"minutes"`
	Description string         `json:"description"`
	Project     BillingProject `json:"project"`
}
