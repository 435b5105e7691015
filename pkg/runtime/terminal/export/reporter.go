package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/services/submit"
)

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle renders one report: a section per day with project lines and hour
// tallies, then the period summary.
func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}

Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
{{if .Empty}}
No tracked time found for this period.
{{else}}{{range .Days}}
{{.Day}}
{{range .Lines}}    {{hours .Hours}} hours	{{.Project}}{{if .Notes}} | {{join .Notes ", "}}{{end}}
{{end}}    Billable:     {{hours .Hours.Billable}} hours
    Not Billable: {{hours .Hours.NonBillable}} hours
{{end}}
Report Summary

    Billable:     {{hours .Summary.Billable}} hours
    Not Billable: {{hours .Summary.NonBillable}} hours
    Total:        {{hours .Summary.Total}} hours
{{if .Unmapped}}
{{.Unmapped}} entries had no project mapping and were grouped under "unmapped".
{{end}}{{end}}`

	t, err := template.New("report").Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// HandleSubmission renders the outcome of a billing submission: one line per
// planned entry, then the groups the plan excluded.
func (c *Reporter) HandleSubmission(plan *submit.Plan, results []submit.Result) error {
	tmpl := `
Billing Submission
{{if not .Results}}
    nothing to submit
{{end}}{{range .Results}}{{if .Err}}    FAILED   {{.Payload.Date}}  {{.Payload.Minutes}} min  project {{.Payload.ProjectID}}: {{.Err}}
{{else}}    entry #{{.EntryID}}  {{.Payload.Date}}  {{.Payload.Minutes}} min  project {{.Payload.ProjectID}}  {{.Payload.Description}}
{{end}}{{end}}{{range .Skipped}}    skipped  {{.Day}}  {{.Project}} ({{.Minutes}} min): {{.Reason}}
{{end}}`

	t, err := template.New("submission").Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	view := struct {
		Results []submit.Result
		Skipped []submit.SkippedGroup
	}{
		Results: results,
		Skipped: plan.Skipped,
	}

	return t.Execute(c.writer, view)
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"hours": func(value float64) string {
			return strconv.FormatFloat(value, 'f', -1, 64)
		},
		"join": strings.Join,
	}
}
