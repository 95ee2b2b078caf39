package location

import (
	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred    = decimal.NewFromInt(100)
	ten        = decimal.NewFromInt(10)
	sixty      = decimal.NewFromInt(60)
	twoHundred = decimal.NewFromInt(200)

	weightCost    = decimal.NewFromFloat(0.30)
	weightQoL     = decimal.NewFromFloat(0.25)
	weightCommute = decimal.NewFromFloat(0.20)
	weightDemand  = decimal.NewFromFloat(0.25)
)

var demandFactor = map[DemandLevel]decimal.Decimal{
	DemandLow:      decimal.NewFromFloat(0.5),
	DemandMedium:   decimal.NewFromFloat(0.7),
	DemandHigh:     decimal.NewFromFloat(0.9),
	DemandCritical: decimal.NewFromFloat(1.0),
}

// CostOfLivingAdjustment is the ratio to apply to spending when moving from
// one jurisdiction to another: to's index over from's.
func CostOfLivingAdjustment(from, to domain.Jurisdiction) decimal.Decimal {
	return Facts(to).CostOfLivingIndex.Div(Facts(from).CostOfLivingIndex)
}

// HousingAdjustment is the analogous ratio on the housing index.
func HousingAdjustment(from, to domain.Jurisdiction) decimal.Decimal {
	return Facts(to).HousingIndex.Div(Facts(from).HousingIndex)
}

// TaxBurden is the estimated annual sales and property tax load in a
// jurisdiction.
type TaxBurden struct {
	SalesTaxBurden    decimal.Decimal
	PropertyTaxBurden decimal.Decimal
	Total             decimal.Decimal
}

// spendingFraction is the share of income assumed to go to sales-taxable
// spending. A deliberately coarse estimate, not a consumption model.
var spendingFraction = decimal.NewFromFloat(0.10)

// TotalTaxBurden estimates the annual sales plus property tax burden for a
// resident with the given income and property value.
func TotalTaxBurden(j domain.Jurisdiction, income, propertyValue decimal.Decimal) TaxBurden {
	f := Facts(j)
	b := TaxBurden{
		SalesTaxBurden:    income.Mul(spendingFraction).Mul(f.SalesTaxRate),
		PropertyTaxBurden: propertyValue.Mul(f.PropertyTaxRate),
	}
	b.Total = b.SalesTaxBurden.Add(b.PropertyTaxBurden)
	return b
}

// Score is the composite 0-100 ranking of a jurisdiction: affordability
// (30%), quality of life (25%), commute (20%), and staffing demand (25%),
// rounded half-up to the nearest integer.
func Score(j domain.Jurisdiction) int {
	f := Facts(j)

	cost := decimal.Max(decimal.Zero, twoHundred.Sub(f.CostOfLivingIndex)).Div(hundred)
	qol := f.QualityOfLife.Div(ten)
	commute := decimal.Max(decimal.Zero, sixty.Sub(f.AvgCommuteMinutes)).Div(sixty)
	demand := demandFactor[f.Demand]

	total := cost.Mul(weightCost).
		Add(qol.Mul(weightQoL)).
		Add(commute.Mul(weightCommute)).
		Add(demand.Mul(weightDemand))

	return int(total.Mul(hundred).Round(0).IntPart())
}
