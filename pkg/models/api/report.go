package api

import "time"

// Response models for the web API.

type Report struct {
	Title    string       `json:"title"`
	Start    time.Time    `json:"start"`
	End      time.Time    `json:"end"`
	Days     []DaySection `json:"days"`
	Summary  Hours        `json:"summary"`
	Unmapped int          `json:"unmapped_entries,omitempty"`
	Empty    bool         `json:"empty"`
}

type DaySection struct {
	Day   string        `json:"day"`
	Lines []ProjectLine `json:"projects"`
	Hours Hours         `json:"hours"`
}

type ProjectLine struct {
	Project  string   `json:"project"`
	Hours    float64  `json:"hours"`
	Notes    []string `json:"notes"`
	Billable bool     `json:"billable"`
}

type Hours struct {
	Billable    float64 `json:"billable"`
	NonBillable float64 `json:"non_billable"`
	Total       float64 `json:"total"`
}

type Activity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Project  string `json:"project,omitempty"`
	Billable bool   `json:"billable"`
	Mapped   bool   `json:"mapped"`
}

type WindowList struct {
	Windows []string `json:"windows"`
}
