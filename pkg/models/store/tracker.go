package store

// Wire models for the tracker API (api.timeular.com shape). Field names
// follow the provider's JSON exactly; mapping into domain types lives in
// pkg/adapters.

type SignInRequest struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Integration string `json:"integration"`
}

type ActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

// EntryDuration carries zone-less ISO timestamps, e.g.
// "2024-01-09T14:30:00.000". The tracker reports them in UTC.
type EntryDuration struct {
	StartedAt string `json:"startedAt"`
	StoppedAt string `json:"stoppedAt"`
}

type EntryTag struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type EntryNote struct {
	Text string     `json:"text"`
	Tags []EntryTag `json:"tags"`
}

type TimeEntry struct {
	ID         string        `json:"id"`
	ActivityID string        `json:"activityId"`
	Duration   EntryDuration `json:"duration"`
	Note       EntryNote     `json:"note"`
}

type TimeEntriesResponse struct {
	TimeEntries []TimeEntry `json:"timeEntries"`
}
