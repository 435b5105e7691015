package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
	"github.com/de-tools/time-atlas/pkg/services/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Title: "Today's Hours",
		Period: domain.TimePeriod{
			Start: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 9, 23, 59, 59, 999000000, time.UTC),
		},
		Days: []domain.DaySection{
			{
				Day: "2024-1-9",
				Lines: []domain.ProjectLine{
					{Project: "P1", Hours: 0.75, Notes: []string{"triage", "escalation"}, Billable: true},
					{Project: "Internal", Hours: 0.5, Notes: nil, Billable: false},
				},
				Hours: domain.HoursSummary{Billable: 0.75, NonBillable: 0.5, Total: 1.25},
			},
		},
		Summary: domain.HoursSummary{Billable: 0.75, NonBillable: 0.5, Total: 1.25},
	}
}

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Today's Hours")
	assert.Contains(t, out, "Period: 2024-01-09 to 2024-01-09")
	assert.Contains(t, out, "2024-1-9")
	assert.Contains(t, out, "0.75 hours\tP1 | triage, escalation")
	assert.Contains(t, out, "0.5 hours\tInternal")
	assert.NotContains(t, out, "Internal |")
	assert.Contains(t, out, "Total:        1.25 hours")
	assert.NotContains(t, out, "unmapped")
}

func TestHandleEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(&domain.Report{Title: "Today's Hours", Empty: true}))

	assert.Contains(t, buf.String(), "No tracked time found for this period.")
	assert.NotContains(t, buf.String(), "Report Summary")
}

func TestHandleUnmappedWarning(t *testing.T) {
	report := sampleReport()
	report.Unmapped = 3

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	assert.Contains(t, buf.String(), `3 entries had no project mapping and were grouped under "unmapped".`)
}

func TestHandleSubmission(t *testing.T) {
	plan := &submit.Plan{
		Skipped: []submit.SkippedGroup{
			{Day: "2024-1-9", Project: "unmapped", Minutes: 30, Reason: "no project mapping for activity"},
		},
	}
	results := []submit.Result{
		{
			Payload: store.BillingEntryPayload{Date: "2024-1-9", Minutes: 45, ProjectID: 101, Description: "triage"},
			EntryID: 9001,
		},
		{
			Payload: store.BillingEntryPayload{Date: "2024-1-9", Minutes: 30, ProjectID: 102},
			Err:     fmt.Errorf("rate limited"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).HandleSubmission(plan, results))
	out := buf.String()

	assert.Contains(t, out, "entry #9001  2024-1-9  45 min  project 101  triage")
	assert.Contains(t, out, "FAILED   2024-1-9  30 min  project 102: rate limited")
	assert.Contains(t, out, "skipped  2024-1-9  unmapped (30 min): no project mapping for activity")
}

func TestHandleSubmissionEmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).HandleSubmission(&submit.Plan{}, nil))

	assert.Contains(t, buf.String(), "nothing to submit")
}
