package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/policyrate/interest-calculator/internal/logging"
)

var (
	logLevel string
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ratecalc",
	Short: "Sub-account interest rate calculation engine",
	Long: `ratecalc computes credited interest and effective rates for insurance
sub-accounts from dated rate timelines. Each calculation request names a
rate type family (deposit, loan, dividend, annuity, ...) which selects the
windowing, rounding, and rate-lookup rules applied over the request span.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.NewLogger(logLevel)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}
