package location

import (
	"fmt"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DemandLevel is the healthcare staffing demand tier of a jurisdiction,
// ordered low < medium < high < critical.
type DemandLevel string

const (
	DemandLow      DemandLevel = "low"
	DemandMedium   DemandLevel = "medium"
	DemandHigh     DemandLevel = "high"
	DemandCritical DemandLevel = "critical"
)

var demandRank = map[DemandLevel]int{
	DemandLow:      0,
	DemandMedium:   1,
	DemandHigh:     2,
	DemandCritical: 3,
}

// AtLeast reports whether d meets or exceeds the required tier.
func (d DemandLevel) AtLeast(required DemandLevel) bool {
	return demandRank[d] >= demandRank[required]
}

// LocationFacts holds per-jurisdiction economic reference data. The cost of
// living and housing indexes are normalized to a national average of 100.
// The table is static: loaded once, never mutated at runtime.
type LocationFacts struct {
	CostOfLivingIndex decimal.Decimal
	HousingIndex      decimal.Decimal
	MedianIncome      decimal.Decimal
	AvgCommuteMinutes decimal.Decimal
	QualityOfLife     decimal.Decimal // 1-10
	Demand            DemandLevel
	SalesTaxRate      decimal.Decimal
	PropertyTaxRate   decimal.Decimal
	HasLocalIncomeTax bool
}

func entry(col, housing, income, commute int64, qol float64, demand DemandLevel, sales, property float64, localTax bool) LocationFacts {
	return LocationFacts{
		CostOfLivingIndex: decimal.NewFromInt(col),
		HousingIndex:      decimal.NewFromInt(housing),
		MedianIncome:      decimal.NewFromInt(income),
		AvgCommuteMinutes: decimal.NewFromInt(commute),
		QualityOfLife:     decimal.NewFromFloat(qol),
		Demand:            demand,
		SalesTaxRate:      decimal.NewFromFloat(sales),
		PropertyTaxRate:   decimal.NewFromFloat(property),
		HasLocalIncomeTax: localTax,
	}
}

// facts is the reference table for every enumerated jurisdiction. Index
// values approximate recent published cost-of-living and census figures;
// demand tiers reflect locum staffing demand, not population.
var facts = map[domain.Jurisdiction]LocationFacts{
	domain.Alabama:            entry(88, 75, 59600, 25, 6.5, DemandHigh, 0.0400, 0.0041, true),
	domain.Alaska:             entry(125, 130, 86400, 19, 6.8, DemandCritical, 0.0000, 0.0104, false),
	domain.Arizona:            entry(108, 115, 74600, 26, 7.5, DemandCritical, 0.0560, 0.0062, false),
	domain.Arkansas:           entry(86, 72, 56300, 22, 6.2, DemandHigh, 0.0650, 0.0064, false),
	domain.California:         entry(145, 196, 91900, 30, 7.8, DemandCritical, 0.0725, 0.0075, false),
	domain.Colorado:           entry(110, 125, 89300, 26, 8.2, DemandHigh, 0.0290, 0.0051, false),
	domain.Connecticut:        entry(113, 110, 90200, 27, 7.2, DemandMedium, 0.0635, 0.0214, false),
	domain.Delaware:           entry(101, 100, 79300, 26, 6.9, DemandMedium, 0.0000, 0.0057, false),
	domain.DistrictOfColumbia: entry(148, 160, 101700, 30, 7.0, DemandHigh, 0.0600, 0.0056, false),
	domain.Florida:            entry(103, 105, 73300, 28, 7.6, DemandCritical, 0.0600, 0.0089, false),
	domain.Georgia:            entry(91, 90, 74600, 29, 7.1, DemandHigh, 0.0400, 0.0092, false),
	domain.Hawaii:             entry(185, 210, 94800, 27, 8.5, DemandCritical, 0.0400, 0.0028, false),
	domain.Idaho:              entry(98, 105, 74900, 21, 7.4, DemandHigh, 0.0600, 0.0069, false),
	domain.Illinois:           entry(95, 88, 80300, 29, 6.8, DemandMedium, 0.0625, 0.0227, false),
	domain.Indiana:            entry(90, 78, 70000, 24, 6.6, DemandHigh, 0.0700, 0.0085, true),
	domain.Iowa:               entry(89, 76, 73100, 19, 7.0, DemandHigh, 0.0600, 0.0157, true),
	domain.Kansas:             entry(87, 72, 70300, 19, 6.8, DemandHigh, 0.0650, 0.0141, false),
	domain.Kentucky:           entry(92, 77, 61100, 23, 6.4, DemandHigh, 0.0600, 0.0086, true),
	domain.Louisiana:          entry(91, 80, 58200, 25, 6.0, DemandHigh, 0.0445, 0.0055, false),
	domain.Maine:              entry(111, 107, 71800, 24, 7.7, DemandHigh, 0.0550, 0.0128, false),
	domain.Maryland:           entry(116, 120, 98700, 33, 7.0, DemandMedium, 0.0600, 0.0109, true),
	domain.Massachusetts:      entry(135, 155, 96500, 30, 7.9, DemandMedium, 0.0625, 0.0123, false),
	domain.Michigan:           entry(91, 80, 68500, 25, 6.9, DemandHigh, 0.0600, 0.0154, true),
	domain.Minnesota:          entry(94, 90, 84300, 23, 8.0, DemandHigh, 0.0688, 0.0111, false),
	domain.Mississippi:        entry(84, 68, 52900, 24, 5.8, DemandCritical, 0.0700, 0.0081, false),
	domain.Missouri:           entry(88, 76, 65900, 23, 6.6, DemandHigh, 0.0423, 0.0097, true),
	domain.Montana:            entry(102, 112, 66300, 18, 8.1, DemandCritical, 0.0000, 0.0084, false),
	domain.Nebraska:           entry(90, 80, 71700, 18, 7.1, DemandHigh, 0.0550, 0.0173, false),
	domain.Nevada:             entry(104, 112, 71600, 24, 6.9, DemandCritical, 0.0685, 0.0060, false),
	domain.NewHampshire:       entry(115, 118, 90800, 27, 8.0, DemandMedium, 0.0000, 0.0218, false),
	domain.NewJersey:          entry(114, 124, 97100, 32, 6.8, DemandMedium, 0.0663, 0.0249, false),
	domain.NewMexico:          entry(93, 86, 58700, 22, 6.7, DemandCritical, 0.0513, 0.0080, false),
	domain.NewYork:            entry(130, 132, 81400, 33, 7.0, DemandHigh, 0.0400, 0.0173, true),
	domain.NorthCarolina:      entry(96, 92, 66200, 25, 7.4, DemandHigh, 0.0475, 0.0084, false),
	domain.NorthDakota:        entry(94, 85, 73900, 17, 7.2, DemandCritical, 0.0500, 0.0098, false),
	domain.Ohio:               entry(92, 74, 66900, 24, 6.7, DemandMedium, 0.0575, 0.0159, true),
	domain.Oklahoma:           entry(86, 70, 61400, 22, 6.3, DemandHigh, 0.0450, 0.0090, false),
	domain.Oregon:             entry(116, 134, 76600, 24, 7.8, DemandHigh, 0.0000, 0.0097, true),
	domain.Pennsylvania:       entry(99, 88, 73200, 27, 6.9, DemandMedium, 0.0600, 0.0158, true),
	domain.RhodeIsland:        entry(110, 112, 81400, 25, 7.0, DemandMedium, 0.0700, 0.0163, false),
	domain.SouthCarolina:      entry(95, 88, 64100, 25, 7.2, DemandHigh, 0.0600, 0.0057, false),
	domain.SouthDakota:        entry(92, 84, 69500, 17, 7.3, DemandCritical, 0.0420, 0.0122, false),
	domain.Tennessee:          entry(90, 85, 62200, 25, 6.9, DemandHigh, 0.0700, 0.0071, false),
	domain.Texas:              entry(93, 88, 73000, 27, 6.9, DemandCritical, 0.0625, 0.0180, false),
	domain.Utah:               entry(103, 118, 86800, 22, 8.3, DemandHigh, 0.0610, 0.0060, false),
	domain.Vermont:            entry(114, 112, 74000, 23, 8.2, DemandHigh, 0.0600, 0.0190, false),
	domain.Virginia:           entry(101, 104, 87300, 28, 7.5, DemandHigh, 0.0530, 0.0082, false),
	domain.Washington:         entry(114, 135, 90300, 28, 7.7, DemandHigh, 0.0650, 0.0094, false),
	domain.WestVirginia:       entry(87, 66, 52700, 26, 6.1, DemandCritical, 0.0600, 0.0059, false),
	domain.Wisconsin:          entry(93, 85, 72400, 22, 7.6, DemandMedium, 0.0500, 0.0185, false),
	domain.Wyoming:            entry(95, 90, 71000, 18, 7.5, DemandCritical, 0.0400, 0.0061, false),
}

// noIncomeTaxSet is the fixed membership set of jurisdictions with no state
// income tax on wages.
var noIncomeTaxSet = map[domain.Jurisdiction]bool{
	domain.Alaska:       true,
	domain.Florida:      true,
	domain.Nevada:       true,
	domain.NewHampshire: true,
	domain.SouthDakota:  true,
	domain.Tennessee:    true,
	domain.Texas:        true,
	domain.Washington:   true,
	domain.Wyoming:      true,
}

func init() {
	// Closed-world check: a jurisdiction without facts would otherwise
	// surface as a silently zeroed comparison far from the real bug.
	for _, j := range domain.AllJurisdictions {
		f, ok := facts[j]
		if !ok {
			panic(fmt.Sprintf("location: missing facts for %s", j))
		}
		if _, ok := demandRank[f.Demand]; !ok {
			panic(fmt.Sprintf("location: invalid demand level %q for %s", f.Demand, j))
		}
	}
}

// Facts returns the reference data for a jurisdiction. Total over the
// enumerated set; never fails for a valid Jurisdiction.
func Facts(j domain.Jurisdiction) LocationFacts {
	return facts[j]
}

// NoIncomeTaxJurisdictions lists the jurisdictions with no state income tax,
// in enumeration order.
func NoIncomeTaxJurisdictions() []domain.Jurisdiction {
	var out []domain.Jurisdiction
	for _, j := range domain.AllJurisdictions {
		if noIncomeTaxSet[j] {
			out = append(out, j)
		}
	}
	return out
}

// HasIncomeTax reports whether the jurisdiction levies a state income tax.
func HasIncomeTax(j domain.Jurisdiction) bool {
	return !noIncomeTaxSet[j]
}

// HighDemandJurisdictions lists jurisdictions whose staffing demand is high
// or critical, in enumeration order.
func HighDemandJurisdictions() []domain.Jurisdiction {
	var out []domain.Jurisdiction
	for _, j := range domain.AllJurisdictions {
		if facts[j].Demand.AtLeast(DemandHigh) {
			out = append(out, j)
		}
	}
	return out
}
