// Package cli wires up the pitcheck command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pitcheck",
	Short: "Validate excavation pit sensor layouts against the monitoring standard",
	Long: `pitcheck scores the sensor layout of an excavation pit against the
structural monitoring standard: which categories of monitoring the pit
class requires, how many points each category needs, and how the points
should be distributed around the pit.

Site definitions are YAML or JSON files; run 'pitcheck check' in a
directory containing one, or pass the file explicitly.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(requirementsCmd)
	rootCmd.AddCommand(versionCmd)
}

// initLogging installs the global logger. Logging is off unless --verbose
// is set; the validation output itself goes to stdout, not the log.
func initLogging() {
	logger := zap.NewNop()
	if verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	zap.ReplaceGlobals(logger)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
