package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter emits one row per calculation period, with summary rows for
// families that produce no breakdown.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(records []CalculationRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Calculation", "RateType", "Plan", "PeriodStart", "PeriodEnd", "Days", "Rate", "Interest", "EffectiveRate", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range records {
		if len(rec.Result.Periods) == 0 {
			row := []string{
				rec.Name, string(rec.RateType), rec.PlanCode,
				"", "", "", "", "",
				rec.Result.EffectiveRate.String(),
				rec.Result.InterestAmount.String(),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
			continue
		}
		for _, p := range rec.Result.Periods {
			row := []string{
				rec.Name, string(rec.RateType), rec.PlanCode,
				p.StartDate.Format("2006-01-02"),
				p.EndDate.Format("2006-01-02"),
				strconv.Itoa(p.Days),
				p.EffectiveRate.String(),
				p.Interest.String(),
				rec.Result.EffectiveRate.String(),
				rec.Result.InterestAmount.String(),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
