package domain

import (
	"github.com/shopspring/decimal"
)

// TaxInput is the input to an annual tax calculation.
type TaxInput struct {
	GrossIncome           decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	Jurisdiction          Jurisdiction    `yaml:"state" json:"state"`
	FilingStatus          FilingStatus    `yaml:"filing_status" json:"filing_status"`
	Exemptions            int             `yaml:"exemptions" json:"exemptions"`
	IsResident            bool            `yaml:"is_resident" json:"is_resident"`
	AdditionalWithholding decimal.Decimal `yaml:"additional_withholding" json:"additional_withholding"`
}

// TaxBreakdown itemizes annual tax liability. Unemployment is always zero:
// it is employer-borne and carried only so downstream consumers see the full
// withholding shape.
type TaxBreakdown struct {
	FederalTax      decimal.Decimal `json:"federal_tax"`
	StateTax        decimal.Decimal `json:"state_tax"`
	SocialSecurity  decimal.Decimal `json:"social_security"`
	Medicare        decimal.Decimal `json:"medicare"`
	StateDisability decimal.Decimal `json:"state_disability"`
	Unemployment    decimal.Decimal `json:"unemployment"`
	Total           decimal.Decimal `json:"total"`
	EffectiveRate   decimal.Decimal `json:"effective_rate"`
	MarginalRate    decimal.Decimal `json:"marginal_rate"`
}

// EstimatedPayments describes a quarterly estimated-payment schedule.
type EstimatedPayments struct {
	Quarterly           decimal.Decimal `json:"quarterly"`
	SafeHarborQuarterly decimal.Decimal `json:"safe_harbor_quarterly"`
	Recommended         decimal.Decimal `json:"recommended"`
}
