package domain

import (
	"github.com/shopspring/decimal"
)

// PayFrequency names a disbursement cadence.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiWeekly    PayFrequency = "bi_weekly"
	PaySemiMonthly PayFrequency = "semi_monthly"
	PayMonthly     PayFrequency = "monthly"
	PayQuarterly   PayFrequency = "quarterly"
	PayAnnual      PayFrequency = "annual"
)

// PayPeriodsPerYear maps each supported frequency to its annual period count.
// Bi-weekly is the default applied to contracts; the rest are supported for
// callers that need them.
var PayPeriodsPerYear = map[PayFrequency]int{
	PayWeekly:      52,
	PayBiWeekly:    26,
	PaySemiMonthly: 24,
	PayMonthly:     12,
	PayQuarterly:   4,
	PayAnnual:      1,
}

// Bonus is a flat contract bonus (completion, sign-on, retention, ...).
// Bonuses are not scaled by contract duration.
type Bonus struct {
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
}

// Stipends holds the non-wage benefits of a contract. Housing and meals are
// weekly amounts multiplied by contract duration; the rest are flat totals.
type Stipends struct {
	HousingWeekly       decimal.Decimal `yaml:"housing_weekly" json:"housing_weekly"`
	Travel              decimal.Decimal `yaml:"travel" json:"travel"`
	MealsWeekly         decimal.Decimal `yaml:"meals_weekly" json:"meals_weekly"`
	Licensure           decimal.Decimal `yaml:"licensure" json:"licensure"`
	Malpractice         decimal.Decimal `yaml:"malpractice" json:"malpractice"`
	ContinuingEducation decimal.Decimal `yaml:"continuing_education" json:"continuing_education"`
	Other               decimal.Decimal `yaml:"other" json:"other"`
}

// RetirementContribution is a tagged choice: a flat weekly amount, a
// percentage of gross pay, or both. When both are present the larger
// resolved amount wins; the two are never summed.
type RetirementContribution struct {
	WeeklyAmount   decimal.Decimal `yaml:"weekly_amount" json:"weekly_amount"`
	PercentOfGross decimal.Decimal `yaml:"percent_of_gross" json:"percent_of_gross"`
}

// Deductions holds pre-tax contract deductions. Insurance premiums and
// parking are weekly amounts multiplied by duration; professional fees and
// other are flat totals.
type Deductions struct {
	HealthInsuranceWeekly decimal.Decimal        `yaml:"health_insurance_weekly" json:"health_insurance_weekly"`
	DentalInsuranceWeekly decimal.Decimal        `yaml:"dental_insurance_weekly" json:"dental_insurance_weekly"`
	VisionInsuranceWeekly decimal.Decimal        `yaml:"vision_insurance_weekly" json:"vision_insurance_weekly"`
	Retirement            RetirementContribution `yaml:"retirement" json:"retirement"`
	ProfessionalFees      decimal.Decimal        `yaml:"professional_fees" json:"professional_fees"`
	ParkingWeekly         decimal.Decimal        `yaml:"parking_weekly" json:"parking_weekly"`
	Other                 decimal.Decimal        `yaml:"other" json:"other"`
}

// ContractInput is the caller-supplied description of a locum tenens
// contract. It is consumed by a single calculation and never retained.
type ContractInput struct {
	HourlyRate        decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
	HoursPerWeek      decimal.Decimal `yaml:"hours_per_week" json:"hours_per_week"`
	DurationWeeks     int             `yaml:"duration_weeks" json:"duration_weeks"`
	OvertimeThreshold decimal.Decimal `yaml:"overtime_threshold" json:"overtime_threshold"`
	// OvertimeRate is optional; when zero the engine applies the default
	// 1.5x multiplier. When supplied it must exceed HourlyRate.
	OvertimeRate decimal.Decimal `yaml:"overtime_rate" json:"overtime_rate"`
	Bonuses      []Bonus         `yaml:"bonuses" json:"bonuses"`
	Stipends     Stipends        `yaml:"stipends" json:"stipends"`
	Deductions   Deductions      `yaml:"deductions" json:"deductions"`
	Jurisdiction Jurisdiction    `yaml:"state" json:"state"`
	FilingStatus FilingStatus    `yaml:"filing_status" json:"filing_status"`
	Exemptions   int             `yaml:"exemptions" json:"exemptions"`
	IsResident   bool            `yaml:"is_resident" json:"is_resident"`
}

// StipendBreakdown holds resolved stipend totals (weekly amounts already
// multiplied out by duration).
type StipendBreakdown struct {
	Housing             decimal.Decimal `json:"housing"`
	Travel              decimal.Decimal `json:"travel"`
	Meals               decimal.Decimal `json:"meals"`
	Licensure           decimal.Decimal `json:"licensure"`
	Malpractice         decimal.Decimal `json:"malpractice"`
	ContinuingEducation decimal.Decimal `json:"continuing_education"`
	Other               decimal.Decimal `json:"other"`
	Total               decimal.Decimal `json:"total"`
}

// DeductionBreakdown holds resolved deduction totals.
type DeductionBreakdown struct {
	HealthInsurance  decimal.Decimal `json:"health_insurance"`
	DentalInsurance  decimal.Decimal `json:"dental_insurance"`
	VisionInsurance  decimal.Decimal `json:"vision_insurance"`
	Retirement       decimal.Decimal `json:"retirement"`
	ProfessionalFees decimal.Decimal `json:"professional_fees"`
	Parking          decimal.Decimal `json:"parking"`
	Other            decimal.Decimal `json:"other"`
	Total            decimal.Decimal `json:"total"`
}

// CompensationBreakdown itemizes every component of the contract's gross
// and net pay.
type CompensationBreakdown struct {
	BasePay     decimal.Decimal    `json:"base_pay"`
	OvertimePay decimal.Decimal    `json:"overtime_pay"`
	BonusTotal  decimal.Decimal    `json:"bonus_total"`
	Stipends    StipendBreakdown   `json:"stipends"`
	Deductions  DeductionBreakdown `json:"deductions"`
	Taxes       TaxBreakdown       `json:"taxes"`
}

// ContractTotals holds the headline figures for a contract.
type ContractTotals struct {
	GrossPay        decimal.Decimal `json:"gross_pay"`
	NetPay          decimal.Decimal `json:"net_pay"`
	TotalStipends   decimal.Decimal `json:"total_stipends"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalTaxes      decimal.Decimal `json:"total_taxes"`
	// EffectiveHourlyRate is net pay divided by total contracted hours.
	EffectiveHourlyRate decimal.Decimal `json:"effective_hourly_rate"`
	// AnnualizedHourlyValue is hourly rate x hours/week x 52, a reference
	// figure independent of this contract's actual duration.
	AnnualizedHourlyValue decimal.Decimal `json:"annualized_hourly_value"`
}

// PayPeriodInfo describes how contract pay lands per disbursement.
type PayPeriodInfo struct {
	Frequency         PayFrequency    `json:"frequency"`
	PeriodsPerYear    int             `json:"periods_per_year"`
	PeriodsInContract decimal.Decimal `json:"periods_in_contract"`
	GrossPerPeriod    decimal.Decimal `json:"gross_per_period"`
	NetPerPeriod      decimal.Decimal `json:"net_per_period"`
}

// ContractMetrics holds derived summary percentages and figures.
type ContractMetrics struct {
	TaxRatePercent        decimal.Decimal `json:"tax_rate_percent"`
	TakeHomePercent       decimal.Decimal `json:"take_home_percent"`
	HousingStipendPercent decimal.Decimal `json:"housing_stipend_percent"`
	// BenefitsValue is total stipends plus the malpractice stipend again.
	// The malpractice amount is deliberately counted twice to match the
	// business definition of benefits emphasis.
	BenefitsValue decimal.Decimal `json:"benefits_value"`
}

// ContractResult is the complete output of a contract calculation. It is
// immutable once produced and owned by the caller; the engine keeps no
// reference to it.
type ContractResult struct {
	Input      ContractInput         `json:"input"`
	Totals     ContractTotals        `json:"totals"`
	Breakdown  CompensationBreakdown `json:"breakdown"`
	PayPeriods PayPeriodInfo         `json:"pay_periods"`
	Metrics    ContractMetrics       `json:"metrics"`
}
