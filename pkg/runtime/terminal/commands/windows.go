package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewWindowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List the named report windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			windows := report.DefaultRegistry().ListWindows()
			fmt.Fprintf(cmd.OutOrStdout(), "Available report windows:\n%s\n",
				strings.Join(windows, "\n"))
			return nil
		},
	}
}
