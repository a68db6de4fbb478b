package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// ConsoleFormatter renders results as aligned text, one block per
// calculation, with the per-period breakdown when the family produces one.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(records []CalculationRecord) ([]byte, error) {
	buf := &bytes.Buffer{}

	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(buf)
		}
		fmt.Fprintf(buf, "%s (%s, plan %s)\n", rec.Name, rec.RateType, rec.PlanCode)
		fmt.Fprintf(buf, "  effective rate:  %s\n", rec.Result.EffectiveRate)
		fmt.Fprintf(buf, "  interest amount: %s\n", rec.Result.InterestAmount)

		if len(rec.Result.Periods) == 0 {
			continue
		}

		w := tabwriter.NewWriter(buf, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  period\tdays\trate\tinterest")
		for _, p := range rec.Result.Periods {
			fmt.Fprintf(w, "  %s..%s\t%d\t%s\t%s\n",
				p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
				p.Days, p.EffectiveRate, p.Interest)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
