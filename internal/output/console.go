package output

import (
	"bytes"
	"fmt"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human-readable contract report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func line(buf *bytes.Buffer, label string, d decimal.Decimal) {
	fmt.Fprintf(buf, "  %-28s %14s\n", label, money(d))
}

func (ConsoleFormatter) Format(r *domain.ContractResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "CONTRACT COMPENSATION SUMMARY\n")
	fmt.Fprintf(buf, "State: %s  Filing: %s  Duration: %d weeks  %s hrs/week @ %s\n\n",
		r.Input.Jurisdiction, r.Input.FilingStatus, r.Input.DurationWeeks,
		r.Input.HoursPerWeek.StringFixed(1), money(r.Input.HourlyRate))

	fmt.Fprintln(buf, "Earnings")
	line(buf, "Base pay", r.Breakdown.BasePay)
	line(buf, "Overtime pay", r.Breakdown.OvertimePay)
	line(buf, "Bonuses", r.Breakdown.BonusTotal)

	fmt.Fprintln(buf, "Stipends")
	line(buf, "Housing", r.Breakdown.Stipends.Housing)
	line(buf, "Travel", r.Breakdown.Stipends.Travel)
	line(buf, "Meals", r.Breakdown.Stipends.Meals)
	line(buf, "Licensure", r.Breakdown.Stipends.Licensure)
	line(buf, "Malpractice", r.Breakdown.Stipends.Malpractice)
	line(buf, "Continuing education", r.Breakdown.Stipends.ContinuingEducation)
	line(buf, "Other", r.Breakdown.Stipends.Other)
	line(buf, "Total stipends", r.Breakdown.Stipends.Total)

	fmt.Fprintln(buf, "Deductions")
	line(buf, "Health insurance", r.Breakdown.Deductions.HealthInsurance)
	line(buf, "Dental insurance", r.Breakdown.Deductions.DentalInsurance)
	line(buf, "Vision insurance", r.Breakdown.Deductions.VisionInsurance)
	line(buf, "Retirement", r.Breakdown.Deductions.Retirement)
	line(buf, "Professional fees", r.Breakdown.Deductions.ProfessionalFees)
	line(buf, "Parking", r.Breakdown.Deductions.Parking)
	line(buf, "Other", r.Breakdown.Deductions.Other)
	line(buf, "Total deductions", r.Breakdown.Deductions.Total)

	fmt.Fprintln(buf, "Taxes")
	line(buf, "Federal income tax", r.Breakdown.Taxes.FederalTax)
	line(buf, "State income tax", r.Breakdown.Taxes.StateTax)
	line(buf, "Social Security", r.Breakdown.Taxes.SocialSecurity)
	line(buf, "Medicare", r.Breakdown.Taxes.Medicare)
	line(buf, "State disability", r.Breakdown.Taxes.StateDisability)
	line(buf, "Total taxes", r.Breakdown.Taxes.Total)
	fmt.Fprintf(buf, "  %-28s %13s%%\n", "Effective tax rate", r.Breakdown.Taxes.EffectiveRate.StringFixed(1))
	fmt.Fprintf(buf, "  %-28s %13s%%\n", "Marginal tax rate", r.Breakdown.Taxes.MarginalRate.StringFixed(1))

	fmt.Fprintln(buf, "Totals")
	line(buf, "Gross pay", r.Totals.GrossPay)
	line(buf, "Net pay", r.Totals.NetPay)
	line(buf, "Effective hourly rate", r.Totals.EffectiveHourlyRate)
	line(buf, "Annualized hourly value", r.Totals.AnnualizedHourlyValue)

	fmt.Fprintln(buf, "Pay periods")
	fmt.Fprintf(buf, "  %-28s %14s\n", "Frequency", r.PayPeriods.Frequency)
	fmt.Fprintf(buf, "  %-28s %14s\n", "Periods in contract", r.PayPeriods.PeriodsInContract.StringFixed(1))
	line(buf, "Gross per period", r.PayPeriods.GrossPerPeriod)
	line(buf, "Net per period", r.PayPeriods.NetPerPeriod)

	fmt.Fprintln(buf, "Metrics")
	fmt.Fprintf(buf, "  %-28s %13s%%\n", "Take-home", r.Metrics.TakeHomePercent.StringFixed(1))
	fmt.Fprintf(buf, "  %-28s %13s%%\n", "Housing stipend share", r.Metrics.HousingStipendPercent.StringFixed(1))
	line(buf, "Benefits value", r.Metrics.BenefitsValue)

	return buf.Bytes(), nil
}
