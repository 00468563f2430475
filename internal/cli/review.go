package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terrasense/pitcheck/internal/checks"
	"github.com/terrasense/pitcheck/internal/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review [site-file]",
	Short: "Open an interactive review session",
	Long: `Open an interactive TUI for reviewing a site's validation report:
findings, a plan-view map of the sensor layout, the compliance numbers,
and the raw site file.

Examples:
  pitcheck review                  # site file detected in the current directory
  pitcheck review riverside.yaml   # explicit site file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringP("export", "o", "", "write the report as JSON to file after the session")
}

func runReview(cmd *cobra.Command, args []string) error {
	st, err := loadSite(args)
	if err != nil {
		return err
	}

	rpt := checks.Validate(st.Config, st.Sensors)
	fmt.Fprintf(os.Stderr, "Validation: %s\n", rpt.Summary())

	if err := tui.Run(st, rpt); err != nil {
		return err
	}

	// Export the report if requested
	exportPath, _ := cmd.Flags().GetString("export")
	if exportPath != "" {
		if err := tui.WriteReport(exportPath, st, rpt); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", exportPath)
	}

	return nil
}
