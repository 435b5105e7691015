package commands

import (
	"fmt"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/time-atlas/pkg/services/submit"
	"github.com/de-tools/time-atlas/pkg/store/billing"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	configFlags
	date         string
	submit       bool
	roundEntries bool
	reporter     *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report [window]",
		Short: "Build an hours report for a named window or an explicit date",
		Long: `Build an hours report. The window argument is one of the registered
report windows (today, yesterday, this-week, last-week) and defaults to today.
Pass --date to report a single calendar date instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rc.run,
	}

	rc.register(cmd)
	cmd.Flags().StringVar(&rc.date, "date", "", `Report one calendar date ("2024-1-9") instead of a window`)
	cmd.Flags().BoolVar(&rc.submit, "submit", false, "Submit the aggregated entries to the billing service")
	cmd.Flags().BoolVar(&rc.roundEntries, "round-entries", false, "Round each entry up before grouping")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := runContext(cmd)
	defer cancel()

	cfg, err := rc.load()
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg, rc.roundEntries)
	if err != nil {
		return err
	}

	var (
		rep     *domain.Report
		entries []domain.Entry
	)
	if rc.date != "" {
		rep, entries, err = runner.RunDate(ctx, rc.date)
	} else {
		window := "today"
		if len(args) > 0 {
			window = args[0]
		}
		rep, entries, err = runner.Run(ctx, window)
	}
	if err != nil {
		return err
	}

	if err := rc.reporter.Handle(rep); err != nil {
		return err
	}

	if !rc.submit {
		return nil
	}
	if cfg.Billing.Token == "" {
		return fmt.Errorf("billing token is not configured")
	}

	plan, err := submit.BuildPlan(entries, cfg.Rounding)
	if err != nil {
		return err
	}

	client := billing.NewClient(cfg.Billing.Token, billing.Options{BaseURL: cfg.Billing.BaseURL})
	results, submitErr := submit.Submit(ctx, client, plan)

	if err := rc.reporter.HandleSubmission(plan, results); err != nil {
		return err
	}
	return submitErr
}
