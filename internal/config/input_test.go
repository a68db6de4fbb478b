package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policyrate/interest-calculator/internal/domain"
)

const sampleInput = `
plans:
  - code: SA001
    insurance_type: annuity
    compound_crediting: true
    default_sub_account: SA001
    issue_rate:
      applies: true
      years: 3
      rate: "275"
rate_tables:
  - plan: SA001
    rate_key: annuity
    intervals:
      - start: 2020-01-01
        rate: "250"
      - start: 2020-07-01
        rate: "275"
calculations:
  - name: annual crediting
    rate_type: annuity
    plan: SA001
    begin: 2020-01-01
    end: 2020-12-31
    principal: "1000000"
    scale: 0
    issue_date: 2018-05-01
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadFromFile tests parsing a complete document
func TestLoadFromFile(t *testing.T) {
	doc, err := NewInputParser().LoadFromFile(writeInput(t, sampleInput))
	require.NoError(t, err)

	require.Len(t, doc.Plans, 1)
	require.Len(t, doc.RateTables, 1)
	require.Len(t, doc.Calculations, 1)

	assert.Equal(t, "SA001", doc.Plans[0].Code)
	assert.True(t, decimal.NewFromInt(250).Equal(doc.RateTables[0].Intervals[0].Rate))
	assert.Equal(t, time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC), doc.RateTables[0].Intervals[1].Start)

	in := doc.Calculations[0].Input()
	assert.Equal(t, domain.RateTypeAnnuity, in.RateType)
	assert.True(t, decimal.NewFromInt(1000000).Equal(in.Principal))
	assert.Equal(t, time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC), in.IssueDate)
}

// TestPlanAccessors tests the context, note and investment-target views
func TestPlanAccessors(t *testing.T) {
	doc, err := NewInputParser().LoadFromFile(writeInput(t, sampleInput))
	require.NoError(t, err)

	plan := doc.PlanContext("SA001")
	require.NotNil(t, plan)
	assert.Equal(t, domain.InsuranceTypeAnnuity, plan.InsuranceType)
	assert.True(t, plan.CompoundCrediting)

	note := doc.PlanNote("SA001")
	require.NotNil(t, note)
	assert.Equal(t, "SA001", note.DefaultSubAccountCode)

	indicator, ok := doc.IssueRateIndicator("SA001")
	require.True(t, ok)
	assert.True(t, indicator.Applies)
	assert.Equal(t, 3, indicator.Years)

	rate, ok := doc.IssueRate("SA001")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(275).Equal(rate))

	assert.Nil(t, doc.PlanContext("SA999"))
	_, ok = doc.IssueRate("SA999")
	assert.False(t, ok)
}

// TestValidationFailures tests the per-field validation errors
func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name: "Duplicate plan code",
			content: `
plans:
  - code: SA001
  - code: SA001
`,
			errText: "duplicate code",
		},
		{
			name: "Unknown insurance type",
			content: `
plans:
  - code: SA001
    insurance_type: marine
`,
			errText: "unknown insurance type",
		},
		{
			name: "Unknown rate key",
			content: `
rate_tables:
  - plan: SA001
    rate_key: bonus
`,
			errText: "unknown rate key",
		},
		{
			name: "Out-of-order intervals",
			content: `
rate_tables:
  - plan: SA001
    rate_key: deposit
    intervals:
      - start: 2020-07-01
        rate: "275"
      - start: 2020-01-01
        rate: "250"
`,
			errText: "ascending start order",
		},
		{
			name: "Unknown rate type",
			content: `
calculations:
  - name: bad
    rate_type: bonus
`,
			errText: "unknown rate type",
		},
		{
			name: "Bad scale",
			content: `
calculations:
  - name: bad
    rate_type: deposit
    scale: 3
`,
			errText: "scale must be 0 or 2",
		},
		{
			name: "Negative principal",
			content: `
calculations:
  - name: bad
    rate_type: deposit
    principal: "-5"
`,
			errText: "principal cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadFromFile(writeInput(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
