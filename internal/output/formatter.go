package output

import (
	"github.com/policyrate/interest-calculator/internal/domain"
)

// CalculationRecord pairs a named request with its result for formatting.
type CalculationRecord struct {
	Name     string
	RateType domain.RateType
	PlanCode string
	Result   domain.Result
}

// Formatter renders calculation records for one output medium.
type Formatter interface {
	Name() string
	Format(records []CalculationRecord) ([]byte, error)
}

// NewFormatter returns the formatter for a format name, defaulting to the
// console formatter.
func NewFormatter(format string) Formatter {
	switch format {
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{}
	default:
		return ConsoleFormatter{}
	}
}
