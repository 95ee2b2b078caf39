package calculation

import (
	"fmt"
	"time"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Default overtime multiplier applied when no explicit overtime rate is set,
// and the workweek threshold assumed when the contract leaves it blank.
var (
	defaultOvertimeMultiplier = decimal.NewFromFloat(1.5)
	defaultOvertimeThreshold  = decimal.NewFromInt(40)
)

var (
	hundred      = decimal.NewFromInt(100)
	weeksPerYear = decimal.NewFromInt(52)
)

// ContractEngine turns a contract's raw terms into a complete compensation
// breakdown. It is purely functional: no shared state, no I/O, safe for any
// number of concurrent Calculate calls.
type ContractEngine struct {
	TaxCalc *TaxCalculator
}

// NewContractEngine creates an engine backed by the 2025 tax calculator.
func NewContractEngine() *ContractEngine {
	return &ContractEngine{TaxCalc: NewTaxCalculator2025()}
}

// NewContractEngineWithTaxCalculator creates an engine backed by a specific
// tax-year calculator.
func NewContractEngineWithTaxCalculator(tc *TaxCalculator) *ContractEngine {
	return &ContractEngine{TaxCalc: tc}
}

// Validate checks the contract input against its invariants, failing fast
// with a ValidationError naming the first offending field. No computation
// happens on invalid input.
func (ce *ContractEngine) Validate(in domain.ContractInput) error {
	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"hourly_rate", in.HourlyRate},
		{"hours_per_week", in.HoursPerWeek},
		{"overtime_threshold", in.OvertimeThreshold},
		{"overtime_rate", in.OvertimeRate},
		{"stipends.housing_weekly", in.Stipends.HousingWeekly},
		{"stipends.travel", in.Stipends.Travel},
		{"stipends.meals_weekly", in.Stipends.MealsWeekly},
		{"stipends.licensure", in.Stipends.Licensure},
		{"stipends.malpractice", in.Stipends.Malpractice},
		{"stipends.continuing_education", in.Stipends.ContinuingEducation},
		{"stipends.other", in.Stipends.Other},
		{"deductions.health_insurance_weekly", in.Deductions.HealthInsuranceWeekly},
		{"deductions.dental_insurance_weekly", in.Deductions.DentalInsuranceWeekly},
		{"deductions.vision_insurance_weekly", in.Deductions.VisionInsuranceWeekly},
		{"deductions.retirement.weekly_amount", in.Deductions.Retirement.WeeklyAmount},
		{"deductions.retirement.percent_of_gross", in.Deductions.Retirement.PercentOfGross},
		{"deductions.professional_fees", in.Deductions.ProfessionalFees},
		{"deductions.parking_weekly", in.Deductions.ParkingWeekly},
		{"deductions.other", in.Deductions.Other},
	}
	for _, f := range nonNegative {
		if f.value.LessThan(decimal.Zero) {
			return domain.NewValidationError(f.field, "must be non-negative")
		}
	}
	for i, b := range in.Bonuses {
		if b.Amount.LessThan(decimal.Zero) {
			return domain.NewValidationError(fmt.Sprintf("bonuses[%d].amount", i), "must be non-negative")
		}
	}
	if in.DurationWeeks < 1 {
		return domain.NewValidationError("duration_weeks", "must be at least 1 week")
	}
	if !in.OvertimeRate.IsZero() && in.OvertimeRate.LessThanOrEqual(in.HourlyRate) {
		return domain.NewValidationError("overtime_rate", "must exceed hourly_rate")
	}
	if in.Deductions.Retirement.PercentOfGross.GreaterThan(hundred) {
		return domain.NewValidationError("deductions.retirement.percent_of_gross", "must not exceed 100")
	}
	if in.Exemptions < 0 {
		return domain.NewValidationError("exemptions", "must be non-negative")
	}
	if !in.Jurisdiction.Valid() {
		return domain.NewValidationError("state", "must be one of the enumerated jurisdictions")
	}
	if !in.FilingStatus.Valid() {
		return domain.NewValidationError("filing_status", "must be one of the enumerated filing statuses")
	}
	return nil
}

// Calculate validates the input and produces the full compensation
// breakdown. The returned result is a value the caller owns; the engine
// retains nothing.
func (ce *ContractEngine) Calculate(in domain.ContractInput) (*domain.ContractResult, error) {
	if err := ce.Validate(in); err != nil {
		return nil, err
	}

	duration := decimal.NewFromInt(int64(in.DurationWeeks))

	threshold := in.OvertimeThreshold
	if threshold.IsZero() {
		threshold = defaultOvertimeThreshold
	}

	basePay := in.HourlyRate.Mul(decimal.Min(in.HoursPerWeek, threshold)).Mul(duration)

	overtimePay := decimal.Zero
	if in.HoursPerWeek.GreaterThan(threshold) {
		overtimeRate := in.OvertimeRate
		if overtimeRate.IsZero() {
			overtimeRate = in.HourlyRate.Mul(defaultOvertimeMultiplier)
		}
		overtimePay = overtimeRate.Mul(in.HoursPerWeek.Sub(threshold)).Mul(duration)
	}

	bonusTotal := decimal.Zero
	for _, b := range in.Bonuses {
		bonusTotal = bonusTotal.Add(b.Amount)
	}

	stipends := resolveStipends(in.Stipends, duration)
	grossPay := basePay.Add(overtimePay).Add(bonusTotal).Add(stipends.Total)
	deductions := resolveDeductions(in.Deductions, duration, grossPay)

	taxes := ce.TaxCalc.AnnualTaxes(domain.TaxInput{
		GrossIncome:  grossPay.Sub(deductions.Total),
		Jurisdiction: in.Jurisdiction,
		FilingStatus: in.FilingStatus,
		Exemptions:   in.Exemptions,
		IsResident:   in.IsResident,
	})

	netPay := grossPay.Sub(deductions.Total).Sub(taxes.Total)

	totalHours := in.HoursPerWeek.Mul(duration)
	effectiveHourly := decimal.Zero
	if totalHours.GreaterThan(decimal.Zero) {
		effectiveHourly = netPay.Div(totalHours)
	}

	result := &domain.ContractResult{
		Input: in,
		Totals: domain.ContractTotals{
			GrossPay:              grossPay,
			NetPay:                netPay,
			TotalStipends:         stipends.Total,
			TotalDeductions:       deductions.Total,
			TotalTaxes:            taxes.Total,
			EffectiveHourlyRate:   effectiveHourly,
			AnnualizedHourlyValue: in.HourlyRate.Mul(in.HoursPerWeek).Mul(weeksPerYear),
		},
		Breakdown: domain.CompensationBreakdown{
			BasePay:     basePay,
			OvertimePay: overtimePay,
			BonusTotal:  bonusTotal,
			Stipends:    stipends,
			Deductions:  deductions,
			Taxes:       taxes,
		},
		PayPeriods: payPeriods(grossPay, netPay, duration),
		Metrics:    metrics(grossPay, netPay, taxes.Total, stipends),
	}
	return result, nil
}

func resolveStipends(s domain.Stipends, duration decimal.Decimal) domain.StipendBreakdown {
	b := domain.StipendBreakdown{
		Housing:             s.HousingWeekly.Mul(duration),
		Travel:              s.Travel,
		Meals:               s.MealsWeekly.Mul(duration),
		Licensure:           s.Licensure,
		Malpractice:         s.Malpractice,
		ContinuingEducation: s.ContinuingEducation,
		Other:               s.Other,
	}
	b.Total = b.Housing.
		Add(b.Travel).
		Add(b.Meals).
		Add(b.Licensure).
		Add(b.Malpractice).
		Add(b.ContinuingEducation).
		Add(b.Other)
	return b
}

// resolveDeductions multiplies out the weekly deductions and resolves the
// retirement contribution. When both a flat weekly amount and a percentage
// of gross are given, the larger resolved amount wins; they are never summed.
func resolveDeductions(d domain.Deductions, duration, grossPay decimal.Decimal) domain.DeductionBreakdown {
	retirement := d.Retirement.WeeklyAmount.Mul(duration)
	if !d.Retirement.PercentOfGross.IsZero() {
		byPercent := grossPay.Mul(d.Retirement.PercentOfGross).Div(hundred)
		retirement = decimal.Max(retirement, byPercent)
	}

	b := domain.DeductionBreakdown{
		HealthInsurance:  d.HealthInsuranceWeekly.Mul(duration),
		DentalInsurance:  d.DentalInsuranceWeekly.Mul(duration),
		VisionInsurance:  d.VisionInsuranceWeekly.Mul(duration),
		Retirement:       retirement,
		ProfessionalFees: d.ProfessionalFees,
		Parking:          d.ParkingWeekly.Mul(duration),
		Other:            d.Other,
	}
	b.Total = b.HealthInsurance.
		Add(b.DentalInsurance).
		Add(b.VisionInsurance).
		Add(b.Retirement).
		Add(b.ProfessionalFees).
		Add(b.Parking).
		Add(b.Other)
	return b
}

// payPeriods splits contract pay across the bi-weekly periods the contract
// actually spans. PeriodsPerYear reports the frequency's annual cadence.
func payPeriods(grossPay, netPay, duration decimal.Decimal) domain.PayPeriodInfo {
	perYear := domain.PayPeriodsPerYear[domain.PayBiWeekly]
	periods := duration.Mul(decimal.NewFromInt(int64(perYear))).Div(weeksPerYear)

	info := domain.PayPeriodInfo{
		Frequency:         domain.PayBiWeekly,
		PeriodsPerYear:    perYear,
		PeriodsInContract: periods,
	}
	if periods.GreaterThan(decimal.Zero) {
		info.GrossPerPeriod = grossPay.Div(periods)
		info.NetPerPeriod = netPay.Div(periods)
	}
	return info
}

func metrics(grossPay, netPay, totalTaxes decimal.Decimal, stipends domain.StipendBreakdown) domain.ContractMetrics {
	m := domain.ContractMetrics{
		// Malpractice is intentionally counted on top of the stipend total
		// it already belongs to; the business definition of benefits value
		// emphasizes malpractice coverage twice.
		BenefitsValue: stipends.Total.Add(stipends.Malpractice),
	}
	if grossPay.GreaterThan(decimal.Zero) {
		m.TaxRatePercent = totalTaxes.Div(grossPay).Mul(hundred)
		m.TakeHomePercent = netPay.Div(grossPay).Mul(hundred)
		m.HousingStipendPercent = stipends.Housing.Div(grossPay).Mul(hundred)
	}
	return m
}

// DurationInWeeks counts the weeks a contract spans, inclusive of both the
// start and end boundary weeks. start must be strictly before end.
func DurationInWeeks(start, end time.Time) (int, error) {
	if !start.Before(end) {
		return 0, domain.NewValidationError("start_date", "must be before end_date")
	}
	days := int(end.Sub(start).Hours() / 24)
	return days/7 + 1, nil
}

// ValidateContractDates reports whether start precedes end and the contract
// has not already ended.
func ValidateContractDates(start, end time.Time) bool {
	return start.Before(end) && !end.Before(time.Now())
}

// ProRatedAmount scales an amount by the fraction of days actually worked.
func ProRatedAmount(amount decimal.Decimal, totalDays, actualDays int) decimal.Decimal {
	if totalDays <= 0 {
		return decimal.Zero
	}
	return amount.
		Mul(decimal.NewFromInt(int64(actualDays))).
		Div(decimal.NewFromInt(int64(totalDays)))
}
