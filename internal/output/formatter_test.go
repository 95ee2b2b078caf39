package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmwhitney/locumcalc/internal/calculation"
	"github.com/jmwhitney/locumcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) *domain.ContractResult {
	t.Helper()
	result, err := calculation.NewContractEngine().Calculate(domain.ContractInput{
		HourlyRate:        decimal.NewFromInt(125),
		HoursPerWeek:      decimal.NewFromInt(45),
		DurationWeeks:     12,
		OvertimeThreshold: decimal.NewFromInt(40),
		Stipends:          domain.Stipends{HousingWeekly: decimal.NewFromInt(600)},
		Jurisdiction:      domain.Florida,
		FilingStatus:      domain.Single,
		IsResident:        true,
	})
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("csv"))
	assert.NotNil(t, GetFormatterByName("json"))
	assert.Nil(t, GetFormatterByName("pdf"), "unknown formats return nil")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (ConsoleFormatter{}).Format(sampleResult(t))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "CONTRACT COMPENSATION SUMMARY")
	assert.Contains(t, text, "Base pay")
	assert.Contains(t, text, "Overtime pay")
	assert.Contains(t, text, "Housing")
	assert.Contains(t, text, "Federal income tax")
	assert.Contains(t, text, "Net pay")
	assert.Contains(t, text, "$", "amounts should be currency formatted")
}

func TestCSVFormatter(t *testing.T) {
	data, err := (CSVFormatter{}).Format(sampleResult(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "header plus one row")
	assert.True(t, strings.HasPrefix(lines[0], "State,FilingStatus"))
	assert.True(t, strings.HasPrefix(lines[1], "FL,single,12,"))
}

func TestJSONFormatter(t *testing.T) {
	data, err := (JSONFormatter{}).Format(sampleResult(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "totals")
	assert.Contains(t, decoded, "breakdown")
	assert.Contains(t, decoded, "pay_periods")
}
