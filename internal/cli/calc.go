package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/policyrate/interest-calculator/internal/calculation"
	"github.com/policyrate/interest-calculator/internal/config"
	"github.com/policyrate/interest-calculator/internal/domain"
	"github.com/policyrate/interest-calculator/internal/logging"
	"github.com/policyrate/interest-calculator/internal/output"
	"github.com/policyrate/interest-calculator/internal/timeline"
)

var (
	calcInputFile  string
	calcFormat     string
	calcOutputFile string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the calculations defined in an input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := config.NewInputParser().LoadFromFile(calcInputFile)
		if err != nil {
			return err
		}

		store := seedStore(doc)
		dispatcher, err := calculation.NewDispatcher(store, doc, logging.NewCalcLogger(log))
		if err != nil {
			return err
		}

		records, err := runCalculations(dispatcher, doc)
		if err != nil {
			return err
		}

		formatter := output.NewFormatter(calcFormat)
		data, err := formatter.Format(records)
		if err != nil {
			return fmt.Errorf("formatting results: %w", err)
		}

		if calcOutputFile != "" {
			if err := os.WriteFile(calcOutputFile, data, 0o644); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}
			log.Info().Str("file", calcOutputFile).Str("format", formatter.Name()).Msg("results written")
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// seedStore loads every rate table interval into a fresh timeline store.
// Tables are validated to be in ascending start order, so each insert lands
// at the tail and the store keeps the latest interval open-ended itself.
func seedStore(doc *config.Document) *timeline.Store {
	store := timeline.NewStore()
	for _, table := range doc.RateTables {
		key := domain.RateKey(table.RateKey)
		for _, interval := range table.Intervals {
			if err := store.Insert(table.Plan, key, interval.Start, interval.End, interval.Rate); err != nil {
				log.Warn().Err(err).
					Str("plan", table.Plan).
					Str("rate_key", table.RateKey).
					Msg("skipping rate interval")
			}
		}
	}
	return store
}

func runCalculations(dispatcher *calculation.Dispatcher, doc *config.Document) ([]output.CalculationRecord, error) {
	records := make([]output.CalculationRecord, 0, len(doc.Calculations))

	for _, entry := range doc.Calculations {
		in := entry.Input()
		plan := doc.PlanContext(in.PlanCode)
		note := doc.PlanNote(in.PlanCode)

		// The four-bank family accrues at the loan family's effective rate.
		// When the request carries no known rate, the loan calculation for the
		// same span must run first so its result can be passed down.
		if in.RateType == domain.RateTypeFourBank && in.KnownRate.IsZero() {
			loanIn := in
			loanIn.RateType = domain.RateTypeLoan
			loanRes, err := dispatcher.Calculate(loanIn, entry.Scale, plan, note)
			if err != nil {
				return nil, fmt.Errorf("calculation %q: %w", entry.Name, err)
			}
			in.KnownRate = loanRes.EffectiveRate
		}

		res, err := dispatcher.Calculate(in, entry.Scale, plan, note)
		if err != nil {
			return nil, fmt.Errorf("calculation %q: %w", entry.Name, err)
		}

		if res.IsZero() {
			log.Warn().Str("calculation", entry.Name).Msg("calculation produced the zero result")
		}

		records = append(records, output.CalculationRecord{
			Name:     entry.Name,
			RateType: in.RateType,
			PlanCode: in.PlanCode,
			Result:   res,
		})
	}

	return records, nil
}

func init() {
	calcCmd.Flags().StringVarP(&calcInputFile, "input", "i", "", "Path to the YAML input file (required)")
	calcCmd.Flags().StringVarP(&calcFormat, "format", "f", "console", "Output format (console, csv, json)")
	calcCmd.Flags().StringVarP(&calcOutputFile, "output", "o", "", "Write output to a file instead of stdout")
	_ = calcCmd.MarkFlagRequired("input")
}
