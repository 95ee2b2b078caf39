package calculation

import (
	"fmt"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX DATA ASSUMPTIONS:
//
// 1. Federal brackets, standard deductions, and FICA figures are 2025 values.
//    No inflation indexing is applied; adding a future tax year means adding
//    a new constructor, not changing algorithm code.
//
// 2. State income tax is modeled as a single flat rate per state applied to
//    taxable income less a state standard deduction approximated as 70% of
//    the federal one. Real state bracket schedules are out of scope.
//
// 3. State disability insurance uses approximate 2025 rate/wage-base pairs
//    for the five states that run employee-funded programs.
//
// 4. Unemployment insurance is employer-borne and always reported as zero.

// TaxBracket is one marginal-rate slice. Brackets are contiguous [Min, Max)
// ranges; a zero Max marks the unbounded top bracket.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// DisabilityProgram describes an employee-funded state disability program.
type DisabilityProgram struct {
	Rate     decimal.Decimal
	WageBase decimal.Decimal
}

// TaxCalculator computes federal, state, and payroll tax liability from
// compiled-in reference data for a single tax year. It is stateless after
// construction and safe for concurrent use.
type TaxCalculator struct {
	Year               int
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
	ExemptionAmount    decimal.Decimal
	Brackets           map[domain.FilingStatus][]TaxBracket

	SSWageBase             decimal.Decimal
	SSRate                 decimal.Decimal
	MedicareRate           decimal.Decimal
	AdditionalMedicareRate decimal.Decimal
	MedicareThresholds     map[domain.FilingStatus]decimal.Decimal

	StateRates           map[domain.Jurisdiction]decimal.Decimal
	DisabilityPrograms   map[domain.Jurisdiction]DisabilityProgram
	StateDeductionFactor decimal.Decimal

	SafeHarborThreshold decimal.Decimal
	SafeHarborFactor    decimal.Decimal
}

func bracketTable(rates []float64, bounds []int64) []TaxBracket {
	brackets := make([]TaxBracket, len(rates))
	for i, rate := range rates {
		b := TaxBracket{Min: decimal.NewFromInt(bounds[i]), Rate: decimal.NewFromFloat(rate)}
		if i < len(rates)-1 {
			b.Max = decimal.NewFromInt(bounds[i+1])
		}
		brackets[i] = b
	}
	return brackets
}

var federalRates2025 = []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}

// NewTaxCalculator2025 builds a calculator loaded with 2025 tax-year data.
func NewTaxCalculator2025() *TaxCalculator {
	tc := &TaxCalculator{
		Year: 2025,
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.Single:                decimal.NewFromInt(15000),
			domain.MarriedFilingJointly:  decimal.NewFromInt(30000),
			domain.MarriedFilingSeparate: decimal.NewFromInt(15000),
			domain.HeadOfHousehold:       decimal.NewFromInt(22500),
			domain.QualifyingWidow:       decimal.NewFromInt(30000),
		},
		ExemptionAmount: decimal.NewFromInt(4300),
		Brackets: map[domain.FilingStatus][]TaxBracket{
			domain.Single:                bracketTable(federalRates2025, []int64{0, 11925, 48475, 103350, 197300, 250525, 626350}),
			domain.MarriedFilingJointly:  bracketTable(federalRates2025, []int64{0, 23850, 96950, 206700, 394600, 501050, 751600}),
			domain.MarriedFilingSeparate: bracketTable(federalRates2025, []int64{0, 11925, 48475, 103350, 197300, 250525, 375800}),
			domain.HeadOfHousehold:       bracketTable(federalRates2025, []int64{0, 17000, 64850, 103350, 197300, 250525, 626350}),
			domain.QualifyingWidow:       bracketTable(federalRates2025, []int64{0, 23850, 96950, 206700, 394600, 501050, 751600}),
		},
		SSWageBase:             decimal.NewFromInt(176100),
		SSRate:                 decimal.NewFromFloat(0.062),
		MedicareRate:           decimal.NewFromFloat(0.0145),
		AdditionalMedicareRate: decimal.NewFromFloat(0.009),
		MedicareThresholds: map[domain.FilingStatus]decimal.Decimal{
			domain.Single:                decimal.NewFromInt(200000),
			domain.MarriedFilingJointly:  decimal.NewFromInt(250000),
			domain.MarriedFilingSeparate: decimal.NewFromInt(125000),
			domain.HeadOfHousehold:       decimal.NewFromInt(200000),
			domain.QualifyingWidow:       decimal.NewFromInt(250000),
		},
		StateRates:           stateFlatRates2025(),
		DisabilityPrograms:   disabilityPrograms2025(),
		StateDeductionFactor: decimal.NewFromFloat(0.70),
		SafeHarborThreshold:  decimal.NewFromInt(150000),
		SafeHarborFactor:     decimal.NewFromFloat(1.10),
	}
	if err := tc.verifyReferenceData(); err != nil {
		panic(err)
	}
	return tc
}

// stateFlatRates2025 returns the simplified flat income tax rate for every
// jurisdiction. Zero means no state income tax.
func stateFlatRates2025() map[domain.Jurisdiction]decimal.Decimal {
	pct := decimal.NewFromFloat
	return map[domain.Jurisdiction]decimal.Decimal{
		domain.Alabama:            pct(0.0500),
		domain.Alaska:             decimal.Zero,
		domain.Arizona:            pct(0.0250),
		domain.Arkansas:           pct(0.0440),
		domain.California:         pct(0.0930),
		domain.Colorado:           pct(0.0440),
		domain.Connecticut:        pct(0.0550),
		domain.Delaware:           pct(0.0660),
		domain.DistrictOfColumbia: pct(0.0850),
		domain.Florida:            decimal.Zero,
		domain.Georgia:            pct(0.0539),
		domain.Hawaii:             pct(0.0825),
		domain.Idaho:              pct(0.0580),
		domain.Illinois:           pct(0.0495),
		domain.Indiana:            pct(0.0305),
		domain.Iowa:               pct(0.0380),
		domain.Kansas:             pct(0.0558),
		domain.Kentucky:           pct(0.0400),
		domain.Louisiana:          pct(0.0425),
		domain.Maine:              pct(0.0715),
		domain.Maryland:           pct(0.0575),
		domain.Massachusetts:      pct(0.0500),
		domain.Michigan:           pct(0.0425),
		domain.Minnesota:          pct(0.0785),
		domain.Mississippi:        pct(0.0440),
		domain.Missouri:           pct(0.0480),
		domain.Montana:            pct(0.0590),
		domain.Nebraska:           pct(0.0584),
		domain.Nevada:             decimal.Zero,
		domain.NewHampshire:       decimal.Zero,
		domain.NewJersey:          pct(0.0637),
		domain.NewMexico:          pct(0.0490),
		domain.NewYork:            pct(0.0685),
		domain.NorthCarolina:      pct(0.0450),
		domain.NorthDakota:        pct(0.0250),
		domain.Ohio:               pct(0.0350),
		domain.Oklahoma:           pct(0.0475),
		domain.Oregon:             pct(0.0875),
		domain.Pennsylvania:       pct(0.0307),
		domain.RhodeIsland:        pct(0.0599),
		domain.SouthCarolina:      pct(0.0640),
		domain.SouthDakota:        decimal.Zero,
		domain.Tennessee:          decimal.Zero,
		domain.Texas:              decimal.Zero,
		domain.Utah:               pct(0.0465),
		domain.Vermont:            pct(0.0760),
		domain.Virginia:           pct(0.0575),
		domain.Washington:         decimal.Zero,
		domain.WestVirginia:       pct(0.0512),
		domain.Wisconsin:          pct(0.0627),
		domain.Wyoming:            decimal.Zero,
	}
}

// disabilityPrograms2025 lists the states with employee-funded disability
// insurance, with approximate 2025 rates and wage bases.
func disabilityPrograms2025() map[domain.Jurisdiction]DisabilityProgram {
	return map[domain.Jurisdiction]DisabilityProgram{
		domain.California:  {Rate: decimal.NewFromFloat(0.011), WageBase: decimal.NewFromInt(153164)},
		domain.Hawaii:      {Rate: decimal.NewFromFloat(0.005), WageBase: decimal.NewFromInt(64148)},
		domain.NewJersey:   {Rate: decimal.NewFromFloat(0.0023), WageBase: decimal.NewFromInt(161400)},
		domain.NewYork:     {Rate: decimal.NewFromFloat(0.005), WageBase: decimal.NewFromInt(6240)},
		domain.RhodeIsland: {Rate: decimal.NewFromFloat(0.011), WageBase: decimal.NewFromInt(87000)},
	}
}

// verifyReferenceData enforces the closed-world invariant: every enumerated
// filing status and jurisdiction must have an entry in every table it is
// looked up in. A gap here is a construction bug, not a runtime condition,
// and is surfaced loudly rather than defaulted to a silently wrong zero.
func (tc *TaxCalculator) verifyReferenceData() error {
	for _, fs := range domain.AllFilingStatuses {
		if _, ok := tc.StandardDeductions[fs]; !ok {
			return fmt.Errorf("tax year %d: missing standard deduction for filing status %s", tc.Year, fs)
		}
		if len(tc.Brackets[fs]) == 0 {
			return fmt.Errorf("tax year %d: missing bracket table for filing status %s", tc.Year, fs)
		}
		if _, ok := tc.MedicareThresholds[fs]; !ok {
			return fmt.Errorf("tax year %d: missing medicare threshold for filing status %s", tc.Year, fs)
		}
	}
	for _, j := range domain.AllJurisdictions {
		if _, ok := tc.StateRates[j]; !ok {
			return fmt.Errorf("tax year %d: missing state rate for %s", tc.Year, j)
		}
	}
	return nil
}

// TaxableIncome applies the standard deduction and exemptions for the filing
// status, floored at zero.
func (tc *TaxCalculator) TaxableIncome(grossIncome decimal.Decimal, status domain.FilingStatus, exemptions int) decimal.Decimal {
	taxable := grossIncome.
		Sub(tc.StandardDeductions[status]).
		Sub(tc.ExemptionAmount.Mul(decimal.NewFromInt(int64(exemptions))))
	if taxable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return taxable
}

// FederalTax applies the progressive bracket table for the filing status to
// already-reduced taxable income. Brackets are processed from the bottom up;
// each slice of income is taxed at its own bracket's rate only.
func (tc *TaxCalculator) FederalTax(taxableIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	tax := decimal.Zero
	remaining := taxableIncome
	for _, bracket := range tc.Brackets[status] {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		inBracket := remaining
		if !bracket.Max.IsZero() {
			width := bracket.Max.Sub(bracket.Min)
			inBracket = decimal.Min(remaining, width)
		}
		tax = tax.Add(inBracket.Mul(bracket.Rate))
		remaining = remaining.Sub(inBracket)
	}
	return tax
}

// federalBracketRate returns the marginal rate of the bracket containing the
// top dollar of taxableIncome. Zero taxable income has no marginal exposure.
func (tc *TaxCalculator) federalBracketRate(taxableIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := decimal.Zero
	for _, bracket := range tc.Brackets[status] {
		if taxableIncome.GreaterThan(bracket.Min) {
			rate = bracket.Rate
		}
	}
	return rate
}

// StateTax applies the jurisdiction's flat rate to taxable income less the
// approximated state standard deduction. Non-residents owe nothing here.
func (tc *TaxCalculator) StateTax(taxableIncome decimal.Decimal, jurisdiction domain.Jurisdiction, status domain.FilingStatus, isResident bool) decimal.Decimal {
	if !isResident {
		return decimal.Zero
	}
	rate := tc.StateRates[jurisdiction]
	if rate.IsZero() {
		return decimal.Zero
	}
	stateDeduction := tc.StandardDeductions[status].Mul(tc.StateDeductionFactor)
	stateTaxable := taxableIncome.Sub(stateDeduction)
	if stateTaxable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return stateTaxable.Mul(rate)
}

// SocialSecurityTax taxes gross income up to the annual wage base.
func (tc *TaxCalculator) SocialSecurityTax(grossIncome decimal.Decimal) decimal.Decimal {
	return decimal.Min(grossIncome, tc.SSWageBase).Mul(tc.SSRate)
}

// MedicareTax is the base rate on all income plus the additional rate on
// income above the filing-status threshold. There is no wage cap.
func (tc *TaxCalculator) MedicareTax(grossIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	tax := grossIncome.Mul(tc.MedicareRate)
	threshold := tc.MedicareThresholds[status]
	if grossIncome.GreaterThan(threshold) {
		tax = tax.Add(grossIncome.Sub(threshold).Mul(tc.AdditionalMedicareRate))
	}
	return tax
}

// DisabilityTax applies the state's employee-funded disability program, if
// it has one, up to that program's wage base.
func (tc *TaxCalculator) DisabilityTax(grossIncome decimal.Decimal, jurisdiction domain.Jurisdiction) decimal.Decimal {
	program, ok := tc.DisabilityPrograms[jurisdiction]
	if !ok {
		return decimal.Zero
	}
	return decimal.Min(grossIncome, program.WageBase).Mul(program.Rate)
}

// MarginalRate is the combined marginal percentage at the top of the input's
// income: the applicable federal bracket rate, the flat state rate for
// residents, and the payroll rates still in force at that income level
// (Social Security drops out above its wage base).
func (tc *TaxCalculator) MarginalRate(in domain.TaxInput) decimal.Decimal {
	taxable := tc.TaxableIncome(in.GrossIncome, in.FilingStatus, in.Exemptions)
	rate := tc.federalBracketRate(taxable, in.FilingStatus)
	if in.IsResident {
		rate = rate.Add(tc.StateRates[in.Jurisdiction])
	}
	rate = rate.Add(tc.MedicareRate)
	if in.GrossIncome.LessThanOrEqual(tc.SSWageBase) {
		rate = rate.Add(tc.SSRate)
	}
	if in.GrossIncome.GreaterThan(tc.MedicareThresholds[in.FilingStatus]) {
		rate = rate.Add(tc.AdditionalMedicareRate)
	}
	return rate.Mul(decimal.NewFromInt(100))
}

// AnnualTaxes computes the full annual tax breakdown for the input. Inputs
// are assumed to have been validated at the boundary; a jurisdiction or
// filing status outside the closed enumeration never reaches this method.
func (tc *TaxCalculator) AnnualTaxes(in domain.TaxInput) domain.TaxBreakdown {
	taxable := tc.TaxableIncome(in.GrossIncome, in.FilingStatus, in.Exemptions)

	breakdown := domain.TaxBreakdown{
		FederalTax:      tc.FederalTax(taxable, in.FilingStatus),
		StateTax:        tc.StateTax(taxable, in.Jurisdiction, in.FilingStatus, in.IsResident),
		SocialSecurity:  tc.SocialSecurityTax(in.GrossIncome),
		Medicare:        tc.MedicareTax(in.GrossIncome, in.FilingStatus),
		StateDisability: tc.DisabilityTax(in.GrossIncome, in.Jurisdiction),
		Unemployment:    decimal.Zero,
	}
	breakdown.Total = breakdown.FederalTax.
		Add(breakdown.StateTax).
		Add(breakdown.SocialSecurity).
		Add(breakdown.Medicare).
		Add(breakdown.StateDisability).
		Add(breakdown.Unemployment).
		Add(in.AdditionalWithholding)

	if in.GrossIncome.GreaterThan(decimal.Zero) {
		breakdown.EffectiveRate = breakdown.Total.Div(in.GrossIncome).Mul(decimal.NewFromInt(100))
	}
	breakdown.MarginalRate = tc.MarginalRate(in)
	return breakdown
}

// EstimatedQuarterlyPayments derives a quarterly estimated-payment schedule.
// The safe harbor is 100% of prior-year tax, or 110% when prior-year tax
// exceeds the high-income threshold; the recommended payment is the greater
// of the plain quarterly split and the safe-harbor quarterly split.
func (tc *TaxCalculator) EstimatedQuarterlyPayments(annualTax, priorYearTax decimal.Decimal) domain.EstimatedPayments {
	four := decimal.NewFromInt(4)
	safeHarbor := priorYearTax
	if priorYearTax.GreaterThan(tc.SafeHarborThreshold) {
		safeHarbor = priorYearTax.Mul(tc.SafeHarborFactor)
	}
	quarterly := annualTax.Div(four)
	safeHarborQuarterly := safeHarbor.Div(four)
	return domain.EstimatedPayments{
		Quarterly:           quarterly,
		SafeHarborQuarterly: safeHarborQuarterly,
		Recommended:         decimal.Max(quarterly, safeHarborQuarterly),
	}
}

// DeductionSavings estimates the tax saved by an additional deduction at the
// given marginal rate (expressed as a percentage).
func (tc *TaxCalculator) DeductionSavings(amount, marginalRatePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(marginalRatePercent).Div(decimal.NewFromInt(100))
}
