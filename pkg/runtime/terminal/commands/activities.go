package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type ActivitiesCmd struct {
	configFlags
}

func NewActivitiesCmd() *cobra.Command {
	ac := &ActivitiesCmd{}
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List tracker activities and their project mappings",
		RunE:  ac.run,
	}

	ac.register(cmd)
	return cmd
}

func (ac *ActivitiesCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := runContext(cmd)
	defer cancel()

	cfg, err := ac.load()
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg, false)
	if err != nil {
		return err
	}

	activities, err := runner.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No activities found.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, activity := range activities {
		if !activity.Mapped {
			fmt.Fprintf(out, "%s\t%s\t(not mapped)\n", activity.ID, activity.Name)
			continue
		}

		billable := "not billable"
		if activity.Billable {
			billable = "billable"
		}
		fmt.Fprintf(out, "%s\t%s\t%s (%s)\n", activity.ID, activity.Name, activity.Project, billable)
	}

	return nil
}
