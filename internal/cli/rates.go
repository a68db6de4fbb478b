package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/policyrate/interest-calculator/internal/config"
	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/timeline"
)

var (
	ratesInputFile string
	ratesPlan      string
	ratesKey       string
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show one rate timeline from an input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := config.NewInputParser().LoadFromFile(ratesInputFile)
		if err != nil {
			return err
		}

		store := seedStore(doc)
		intervals := store.Intervals(ratesPlan, domain.RateKey(ratesKey))
		if len(intervals) == 0 {
			return fmt.Errorf("no intervals for plan %q rate key %q", ratesPlan, ratesKey)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "start\tend\trate")
		for _, iv := range intervals {
			end := iv.End.Format("2006-01-02")
			if iv.End.Equal(timeline.InfiniteEndDate) {
				end = "open"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", iv.Start.Format("2006-01-02"), end, iv.Rate)
		}
		return w.Flush()
	},
}

func init() {
	ratesCmd.Flags().StringVarP(&ratesInputFile, "input", "i", "", "Path to the YAML input file (required)")
	ratesCmd.Flags().StringVar(&ratesPlan, "plan", "", "Plan code (required)")
	ratesCmd.Flags().StringVar(&ratesKey, "rate-key", "", "Rate key (required)")
	_ = ratesCmd.MarkFlagRequired("input")
	_ = ratesCmd.MarkFlagRequired("plan")
	_ = ratesCmd.MarkFlagRequired("rate-key")
}
