package location

import (
	"sort"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Criteria filters jurisdictions for recommendation. Zero-valued fields are
// not applied.
type Criteria struct {
	MaxCostOfLiving   decimal.Decimal
	MinQualityOfLife  decimal.Decimal
	RequiredDemand    DemandLevel
	PreferNoIncomeTax bool
	MaxCommuteMinutes decimal.Decimal
}

func (c Criteria) matches(j domain.Jurisdiction, f LocationFacts) bool {
	if !c.MaxCostOfLiving.IsZero() && f.CostOfLivingIndex.GreaterThan(c.MaxCostOfLiving) {
		return false
	}
	if !c.MinQualityOfLife.IsZero() && f.QualityOfLife.LessThan(c.MinQualityOfLife) {
		return false
	}
	if c.RequiredDemand != "" && !f.Demand.AtLeast(c.RequiredDemand) {
		return false
	}
	if c.PreferNoIncomeTax && HasIncomeTax(j) {
		return false
	}
	if !c.MaxCommuteMinutes.IsZero() && f.AvgCommuteMinutes.GreaterThan(c.MaxCommuteMinutes) {
		return false
	}
	return true
}

// Recommendations returns the jurisdictions matching the criteria, sorted by
// quality of life descending with cost of living ascending as the tie-break.
func Recommendations(c Criteria) []domain.Jurisdiction {
	var out []domain.Jurisdiction
	for _, j := range domain.AllJurisdictions {
		if c.matches(j, Facts(j)) {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, k int) bool {
		fi, fk := Facts(out[i]), Facts(out[k])
		if !fi.QualityOfLife.Equal(fk.QualityOfLife) {
			return fi.QualityOfLife.GreaterThan(fk.QualityOfLife)
		}
		return fi.CostOfLivingIndex.LessThan(fk.CostOfLivingIndex)
	})
	return out
}
