package compare

import (
	"fmt"
	"sort"

	"github.com/jmwhitney/locumcalc/internal/calculation"
	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/jmwhitney/locumcalc/internal/location"
	"github.com/shopspring/decimal"
)

// JurisdictionOutcome is one row of a cross-state comparison: the full
// contract result in that state plus location context.
type JurisdictionOutcome struct {
	Jurisdiction      domain.Jurisdiction
	NetPay            decimal.Decimal
	EffectiveTaxRate  decimal.Decimal
	CostOfLivingIndex decimal.Decimal
	// AdjustedNetPay normalizes net pay by the state's cost-of-living
	// index, putting states with different price levels on one scale.
	AdjustedNetPay decimal.Decimal
	LocationScore  int
	Result         *domain.ContractResult
}

// Comparison ranks the same contract across jurisdictions, best adjusted
// net pay first.
type Comparison struct {
	Outcomes []JurisdictionOutcome
}

var hundred = decimal.NewFromInt(100)

// AcrossJurisdictions runs one contract through the engine once per
// jurisdiction, varying only the state, and ranks the outcomes by
// cost-of-living-adjusted net pay descending. The input's residency flag is
// preserved for every variant.
func AcrossJurisdictions(engine *calculation.ContractEngine, in domain.ContractInput, jurisdictions []domain.Jurisdiction) (*Comparison, error) {
	if len(jurisdictions) == 0 {
		return nil, fmt.Errorf("no jurisdictions to compare")
	}
	outcomes := make([]JurisdictionOutcome, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		variant := in
		variant.Jurisdiction = j
		result, err := engine.Calculate(variant)
		if err != nil {
			return nil, fmt.Errorf("calculating %s: %w", j, err)
		}
		col := location.Facts(j).CostOfLivingIndex
		outcomes = append(outcomes, JurisdictionOutcome{
			Jurisdiction:      j,
			NetPay:            result.Totals.NetPay,
			EffectiveTaxRate:  result.Breakdown.Taxes.EffectiveRate,
			CostOfLivingIndex: col,
			AdjustedNetPay:    result.Totals.NetPay.Div(col.Div(hundred)),
			LocationScore:     location.Score(j),
			Result:            result,
		})
	}
	sort.SliceStable(outcomes, func(i, k int) bool {
		return outcomes[i].AdjustedNetPay.GreaterThan(outcomes[k].AdjustedNetPay)
	})
	return &Comparison{Outcomes: outcomes}, nil
}
