package output

import (
	"encoding/json"

	"github.com/policyrate/interest-calculator/internal/domain"
)

// JSONFormatter emits the full result set, per-period breakdowns included,
// as an indented JSON array.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonRecord struct {
	Name     string          `json:"name"`
	RateType domain.RateType `json:"rate_type"`
	PlanCode string          `json:"plan"`
	Result   domain.Result   `json:"result"`
}

func (j JSONFormatter) Format(records []CalculationRecord) ([]byte, error) {
	out := make([]jsonRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, jsonRecord{
			Name:     rec.Name,
			RateType: rec.RateType,
			PlanCode: rec.PlanCode,
			Result:   rec.Result,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
