package output

import (
	"github.com/jmwhitney/locumcalc/internal/domain"
)

// Formatter renders a contract result for a destination. All rounding for
// display happens here; the engine never rounds.
type Formatter interface {
	Name() string
	Format(result *domain.ContractResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the named formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
