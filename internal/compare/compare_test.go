package compare

import (
	"testing"

	"github.com/jmwhitney/locumcalc/internal/calculation"
	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContract() domain.ContractInput {
	return domain.ContractInput{
		HourlyRate:        decimal.NewFromInt(150),
		HoursPerWeek:      decimal.NewFromInt(40),
		DurationWeeks:     13,
		OvertimeThreshold: decimal.NewFromInt(40),
		Jurisdiction:      domain.Texas,
		FilingStatus:      domain.Single,
		IsResident:        true,
	}
}

func TestAcrossJurisdictions(t *testing.T) {
	engine := calculation.NewContractEngine()

	comparison, err := AcrossJurisdictions(engine, sampleContract(),
		[]domain.Jurisdiction{domain.California, domain.Texas, domain.Mississippi})
	require.NoError(t, err)
	require.Len(t, comparison.Outcomes, 3)

	// Ranked by cost-of-living-adjusted net pay descending.
	for i := 1; i < len(comparison.Outcomes); i++ {
		assert.True(t, comparison.Outcomes[i-1].AdjustedNetPay.GreaterThanOrEqual(comparison.Outcomes[i].AdjustedNetPay),
			"outcomes should be sorted best-first")
	}
	assert.Equal(t, domain.California, comparison.Outcomes[len(comparison.Outcomes)-1].Jurisdiction,
		"high tax and high cost of living should rank CA last here")

	for _, o := range comparison.Outcomes {
		assert.Equal(t, o.Jurisdiction, o.Result.Input.Jurisdiction, "each outcome keeps its own variant")
		assert.True(t, o.AdjustedNetPay.GreaterThan(decimal.Zero))
	}
}

func TestAcrossJurisdictions_InvalidInput(t *testing.T) {
	engine := calculation.NewContractEngine()

	in := sampleContract()
	in.HourlyRate = decimal.NewFromInt(-5)

	_, err := AcrossJurisdictions(engine, in, []domain.Jurisdiction{domain.Texas})
	assert.Error(t, err, "engine validation errors propagate")
}

func TestAcrossJurisdictions_Empty(t *testing.T) {
	engine := calculation.NewContractEngine()

	_, err := AcrossJurisdictions(engine, sampleContract(), nil)
	assert.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	engine := calculation.NewContractEngine()

	comparison, err := AcrossJurisdictions(engine, sampleContract(),
		[]domain.Jurisdiction{domain.Texas, domain.Florida})
	require.NoError(t, err)

	table := FormatTable(comparison)

	assert.Contains(t, table, "Rank")
	assert.Contains(t, table, "Adjusted Net")
	assert.Contains(t, table, "TX")
	assert.Contains(t, table, "FL")
}
