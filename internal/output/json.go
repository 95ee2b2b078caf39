package output

import (
	"encoding/json"

	"github.com/jmwhitney/locumcalc/internal/domain"
)

// JSONFormatter emits the full result for downstream consumers (persistence
// or API layers own any further shaping).
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(r *domain.ContractResult) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
