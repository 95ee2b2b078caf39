package calculation

import (
	"testing"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/jmwhitney/locumcalc/internal/location"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s: %v", expected, actual, msgAndArgs)
}

func TestNewTaxCalculator2025(t *testing.T) {
	tc := NewTaxCalculator2025()

	require.NotNil(t, tc, "Should create calculator")
	assert.Equal(t, 2025, tc.Year, "Should be tagged with the tax year")
	assert.Len(t, tc.Brackets, len(domain.AllFilingStatuses), "Every filing status should have a bracket table")
	assert.Len(t, tc.StateRates, len(domain.AllJurisdictions), "Every jurisdiction should have a state rate")
}

func TestFederalTax_KnownValues(t *testing.T) {
	tc := NewTaxCalculator2025()

	tests := []struct {
		name     string
		status   domain.FilingStatus
		taxable  string
		expected string
	}{
		{"single zero income", domain.Single, "0", "0"},
		{"single inside first bracket", domain.Single, "10000", "1000"},
		{"single spanning three brackets", domain.Single, "50000", "5914"},
		{"mfj spanning three brackets", domain.MarriedFilingJointly, "100000", "11828"},
		{"qualifying widow matches mfj", domain.QualifyingWidow, "100000", "11828"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tc.FederalTax(dec(tt.taxable), tt.status)
			assertDecEqual(t, tt.expected, got)
		})
	}
}

func TestFederalTax_Monotonic(t *testing.T) {
	tc := NewTaxCalculator2025()

	for _, status := range domain.AllFilingStatuses {
		prev := decimal.Zero
		for income := int64(0); income <= 1_000_000; income += 12_500 {
			tax := tc.FederalTax(decimal.NewFromInt(income), status)
			assert.True(t, tax.GreaterThanOrEqual(prev),
				"federal tax should be non-decreasing at %d for %s", income, status)
			// The top bracket's rate caps the average rate.
			if income > 0 {
				avg := tax.Div(decimal.NewFromInt(income))
				assert.True(t, avg.LessThanOrEqual(dec("0.37")),
					"average rate should never exceed the top marginal rate")
			}
			prev = tax
		}
	}
}

func TestSocialSecurityTax_WageBaseCap(t *testing.T) {
	tc := NewTaxCalculator2025()

	atCap := tc.SocialSecurityTax(dec("176100"))
	farAbove := tc.SocialSecurityTax(dec("500000"))

	assertDecEqual(t, "10918.20", atCap, "tax at the wage base")
	assert.True(t, atCap.Equal(farAbove), "Income above the wage base should not be taxed")
}

func TestMedicareTax_AdditionalThreshold(t *testing.T) {
	tc := NewTaxCalculator2025()

	atThreshold := tc.MedicareTax(dec("200000"), domain.Single)
	assertDecEqual(t, "2900", atThreshold, "no additional tax exactly at the threshold")

	above := tc.MedicareTax(dec("210000"), domain.Single)
	assertDecEqual(t, "3135", above, "base 3045 plus 0.9% of the 10000 excess")

	// MFS has the lowest threshold.
	mfs := tc.MedicareTax(dec("150000"), domain.MarriedFilingSeparate)
	assertDecEqual(t, "2400", mfs, "2175 base plus 0.9% of 25000 excess")
}

func TestStateTax(t *testing.T) {
	tc := NewTaxCalculator2025()

	t.Run("no-income-tax state", func(t *testing.T) {
		got := tc.StateTax(dec("500000"), domain.Texas, domain.Single, true)
		assertDecEqual(t, "0", got, "TX levies no income tax regardless of income")
	})

	t.Run("non-resident owes nothing", func(t *testing.T) {
		got := tc.StateTax(dec("100000"), domain.California, domain.Single, false)
		assertDecEqual(t, "0", got)
	})

	t.Run("flat rate after state deduction", func(t *testing.T) {
		// 100000 - 70% of the 15000 federal deduction = 89500 at 9.3%
		got := tc.StateTax(dec("100000"), domain.California, domain.Single, true)
		assertDecEqual(t, "8323.50", got)
	})

	t.Run("income below state deduction", func(t *testing.T) {
		got := tc.StateTax(dec("9000"), domain.California, domain.Single, true)
		assertDecEqual(t, "0", got)
	})
}

func TestStateRates_AgreeWithLocationData(t *testing.T) {
	tc := NewTaxCalculator2025()

	for _, j := range domain.AllJurisdictions {
		if location.HasIncomeTax(j) {
			assert.True(t, tc.StateRates[j].GreaterThan(decimal.Zero),
				"%s should have a positive rate", j)
		} else {
			assert.True(t, tc.StateRates[j].IsZero(),
				"%s should have a zero rate", j)
		}
	}
}

func TestDisabilityTax(t *testing.T) {
	tc := NewTaxCalculator2025()

	t.Run("program state capped at wage base", func(t *testing.T) {
		got := tc.DisabilityTax(dec("200000"), domain.California)
		assertDecEqual(t, "1684.804", got, "1.1% of the 153164 wage base")
	})

	t.Run("state without a program", func(t *testing.T) {
		got := tc.DisabilityTax(dec("200000"), domain.Texas)
		assertDecEqual(t, "0", got)
	})
}

func TestTaxableIncome(t *testing.T) {
	tc := NewTaxCalculator2025()

	got := tc.TaxableIncome(dec("100000"), domain.Single, 2)
	assertDecEqual(t, "76400", got, "100000 - 15000 - 2x4300")

	floored := tc.TaxableIncome(dec("10000"), domain.MarriedFilingJointly, 0)
	assertDecEqual(t, "0", floored, "taxable income never goes negative")
}

func TestAnnualTaxes(t *testing.T) {
	tc := NewTaxCalculator2025()

	in := domain.TaxInput{
		GrossIncome:  dec("120000"),
		Jurisdiction: domain.Texas,
		FilingStatus: domain.Single,
		Exemptions:   0,
		IsResident:   true,
	}
	breakdown := tc.AnnualTaxes(in)

	assertDecEqual(t, "0", breakdown.StateTax, "TX has no income tax")
	assertDecEqual(t, "0", breakdown.Unemployment, "unemployment is employer-borne")
	assertDecEqual(t, "0", breakdown.StateDisability, "TX has no disability program")
	expectedTotal := breakdown.FederalTax.
		Add(breakdown.SocialSecurity).
		Add(breakdown.Medicare)
	assert.True(t, expectedTotal.Equal(breakdown.Total), "total should sum the components")
	assert.True(t, breakdown.EffectiveRate.GreaterThan(decimal.Zero), "effective rate should be positive")
	assert.True(t, breakdown.EffectiveRate.LessThan(breakdown.MarginalRate),
		"effective rate sits below the marginal rate under progressive taxation")
}

func TestAnnualTaxes_AdditionalWithholding(t *testing.T) {
	tc := NewTaxCalculator2025()

	base := domain.TaxInput{
		GrossIncome:  dec("80000"),
		Jurisdiction: domain.Florida,
		FilingStatus: domain.Single,
		IsResident:   true,
	}
	withExtra := base
	withExtra.AdditionalWithholding = dec("1200")

	plain := tc.AnnualTaxes(base)
	extra := tc.AnnualTaxes(withExtra)

	assert.True(t, extra.Total.Sub(plain.Total).Equal(dec("1200")),
		"additional withholding should pass straight through to the total")
}

func TestAnnualTaxes_ZeroIncome(t *testing.T) {
	tc := NewTaxCalculator2025()

	breakdown := tc.AnnualTaxes(domain.TaxInput{
		Jurisdiction: domain.California,
		FilingStatus: domain.Single,
		IsResident:   true,
	})

	assertDecEqual(t, "0", breakdown.Total, "no income, no tax")
	assertDecEqual(t, "0", breakdown.EffectiveRate, "no division by zero")
}

func TestMarginalRate(t *testing.T) {
	tc := NewTaxCalculator2025()

	t.Run("below wage base includes full payroll rates", func(t *testing.T) {
		got := tc.MarginalRate(domain.TaxInput{
			GrossIncome:  dec("60000"),
			Jurisdiction: domain.Texas,
			FilingStatus: domain.Single,
			IsResident:   true,
		})
		// 12% federal (taxable 45000) + 6.2% SS + 1.45% Medicare
		assertDecEqual(t, "19.65", got)
	})

	t.Run("above wage base drops social security", func(t *testing.T) {
		got := tc.MarginalRate(domain.TaxInput{
			GrossIncome:  dec("300000"),
			Jurisdiction: domain.Texas,
			FilingStatus: domain.Single,
			IsResident:   true,
		})
		// 35% federal + 1.45% Medicare + 0.9% additional Medicare
		assertDecEqual(t, "37.35", got)
	})

	t.Run("resident state rate included", func(t *testing.T) {
		tx := tc.MarginalRate(domain.TaxInput{
			GrossIncome: dec("60000"), Jurisdiction: domain.Texas,
			FilingStatus: domain.Single, IsResident: true,
		})
		pa := tc.MarginalRate(domain.TaxInput{
			GrossIncome: dec("60000"), Jurisdiction: domain.Pennsylvania,
			FilingStatus: domain.Single, IsResident: true,
		})
		assert.True(t, pa.Sub(tx).Equal(dec("3.07")), "PA flat rate should be the only difference")
	})
}

func TestEstimatedQuarterlyPayments(t *testing.T) {
	tc := NewTaxCalculator2025()

	t.Run("plain safe harbor", func(t *testing.T) {
		p := tc.EstimatedQuarterlyPayments(dec("40000"), dec("100000"))
		assertDecEqual(t, "10000", p.Quarterly)
		assertDecEqual(t, "25000", p.SafeHarborQuarterly)
		assertDecEqual(t, "25000", p.Recommended, "safe harbor wins when larger")
	})

	t.Run("high income safe harbor at 110%", func(t *testing.T) {
		p := tc.EstimatedQuarterlyPayments(dec("400000"), dec("200000"))
		assertDecEqual(t, "55000", p.SafeHarborQuarterly, "110% of 200000 over four quarters")
		assertDecEqual(t, "100000", p.Recommended, "plain quarterly wins when larger")
	})
}

func TestDeductionSavings(t *testing.T) {
	tc := NewTaxCalculator2025()

	got := tc.DeductionSavings(dec("10000"), dec("32"))
	assertDecEqual(t, "3200", got)
}
