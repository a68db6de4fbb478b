package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/policyrate/interest-calculator/internal/domain"
)

// Document is the parsed calculation input file: plan definitions, rate
// timelines, and the calculation requests to run against them.
type Document struct {
	Plans        []PlanEntry        `yaml:"plans"`
	RateTables   []RateTable        `yaml:"rate_tables"`
	Calculations []CalculationEntry `yaml:"calculations"`
}

// PlanEntry is one plan definition with its note and investment-target
// parameters inlined.
type PlanEntry struct {
	Code              string          `yaml:"code"`
	InsuranceType     string          `yaml:"insurance_type"`
	VariableDividend  bool            `yaml:"variable_dividend"`
	CompoundCrediting bool            `yaml:"compound_crediting"`
	DefaultSubAccount string          `yaml:"default_sub_account"`
	IssueRate         *IssueRateEntry `yaml:"issue_rate"`
}

// IssueRateEntry carries the compound-crediting issue-rate parameters.
type IssueRateEntry struct {
	Applies bool            `yaml:"applies"`
	Years   int             `yaml:"years"`
	Rate    decimal.Decimal `yaml:"rate"`
}

// RateTable seeds one timeline of the rate store.
type RateTable struct {
	Plan      string          `yaml:"plan"`
	RateKey   string          `yaml:"rate_key"`
	Intervals []IntervalEntry `yaml:"intervals"`
}

// IntervalEntry is one dated rate. End may be omitted; the store keeps the
// latest interval open-ended regardless.
type IntervalEntry struct {
	Start time.Time       `yaml:"start"`
	End   time.Time       `yaml:"end"`
	Rate  decimal.Decimal `yaml:"rate"`
}

// CalculationEntry is one calculation request.
type CalculationEntry struct {
	Name                string          `yaml:"name"`
	RateType            string          `yaml:"rate_type"`
	Plan                string          `yaml:"plan"`
	Begin               time.Time       `yaml:"begin"`
	End                 time.Time       `yaml:"end"`
	Principal           decimal.Decimal `yaml:"principal"`
	Scale               int32           `yaml:"scale"`
	KnownRate           decimal.Decimal `yaml:"known_rate"`
	RateSubtraction     decimal.Decimal `yaml:"rate_subtraction"`
	RateDiscountPercent decimal.Decimal `yaml:"rate_discount_percent"`
	IssueDate           time.Time       `yaml:"issue_date"`
}

// InputParser handles parsing of calculation input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation document from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &doc, nil
}

// ValidateDocument validates the loaded document
func (ip *InputParser) ValidateDocument(doc *Document) error {
	seen := make(map[string]bool)
	for i, plan := range doc.Plans {
		if plan.Code == "" {
			return fmt.Errorf("plan %d: code is required", i)
		}
		if seen[plan.Code] {
			return fmt.Errorf("plan %d: duplicate code %q", i, plan.Code)
		}
		seen[plan.Code] = true
		switch plan.InsuranceType {
		case "", string(domain.InsuranceTypeGeneral), string(domain.InsuranceTypeAnnuity):
		default:
			return fmt.Errorf("plan %s: unknown insurance type %q", plan.Code, plan.InsuranceType)
		}
	}

	for i, table := range doc.RateTables {
		if table.Plan == "" {
			return fmt.Errorf("rate table %d: plan is required", i)
		}
		if !validRateKey(domain.RateKey(table.RateKey)) {
			return fmt.Errorf("rate table %d: unknown rate key %q", i, table.RateKey)
		}
		for j, interval := range table.Intervals {
			if interval.Start.IsZero() {
				return fmt.Errorf("rate table %d interval %d: start date is required", i, j)
			}
			if j > 0 && !table.Intervals[j-1].Start.Before(interval.Start) {
				return fmt.Errorf("rate table %d interval %d: intervals must be in ascending start order", i, j)
			}
		}
	}

	for i, calc := range doc.Calculations {
		if !domain.RateType(calc.RateType).Valid() {
			return fmt.Errorf("calculation %d (%s): unknown rate type %q", i, calc.Name, calc.RateType)
		}
		if calc.Scale != 0 && calc.Scale != 2 {
			return fmt.Errorf("calculation %d (%s): scale must be 0 or 2, got %d", i, calc.Name, calc.Scale)
		}
		if calc.Principal.IsNegative() {
			return fmt.Errorf("calculation %d (%s): principal cannot be negative", i, calc.Name)
		}
	}

	return nil
}

func validRateKey(key domain.RateKey) bool {
	switch key {
	case domain.KeyDeposit, domain.KeyLoan, domain.KeyDividend, domain.KeyVariableDividend,
		domain.KeyDeclared, domain.KeyLastMonth, domain.KeyFourBank,
		domain.KeyFreeLook, domain.KeyInvestYield, domain.KeyAnnuity:
		return true
	}
	return false
}

// Input converts the request entry into the strategies' input value.
func (c CalculationEntry) Input() domain.Input {
	return domain.Input{
		BeginDate:           c.Begin,
		EndDate:             c.End,
		Principal:           c.Principal,
		RateType:            domain.RateType(c.RateType),
		KnownRate:           c.KnownRate,
		RateSubtraction:     c.RateSubtraction,
		RateDiscountPercent: c.RateDiscountPercent,
		PlanCode:            c.Plan,
		IssueDate:           c.IssueDate,
	}
}

// PlanContext returns the plan definition slice for a plan code, or nil when
// the document does not define the plan.
func (d *Document) PlanContext(code string) *domain.PlanContext {
	plan := d.findPlan(code)
	if plan == nil {
		return nil
	}
	insType := domain.InsuranceTypeGeneral
	if plan.InsuranceType == string(domain.InsuranceTypeAnnuity) {
		insType = domain.InsuranceTypeAnnuity
	}
	return &domain.PlanContext{
		PlanCode:          plan.Code,
		InsuranceType:     insType,
		VariableDividend:  plan.VariableDividend,
		CompoundCrediting: plan.CompoundCrediting,
	}
}

// PlanNote returns the plan-note slice for a plan code, or nil.
func (d *Document) PlanNote(code string) *domain.PlanNote {
	plan := d.findPlan(code)
	if plan == nil {
		return nil
	}
	return &domain.PlanNote{DefaultSubAccountCode: plan.DefaultSubAccount}
}

// IssueRateIndicator implements calculation.InvestmentTargetSource from the
// plan entries' issue-rate blocks.
func (d *Document) IssueRateIndicator(planCode string) (domain.IssueRateIndicator, bool) {
	plan := d.findPlan(planCode)
	if plan == nil || plan.IssueRate == nil {
		return domain.IssueRateIndicator{}, false
	}
	return domain.IssueRateIndicator{Applies: plan.IssueRate.Applies, Years: plan.IssueRate.Years}, true
}

// IssueRate implements calculation.InvestmentTargetSource.
func (d *Document) IssueRate(planCode string) (decimal.Decimal, bool) {
	plan := d.findPlan(planCode)
	if plan == nil || plan.IssueRate == nil {
		return decimal.Zero, false
	}
	return plan.IssueRate.Rate, true
}

func (d *Document) findPlan(code string) *PlanEntry {
	for i := range d.Plans {
		if d.Plans[i].Code == code {
			return &d.Plans[i]
		}
	}
	return nil
}
