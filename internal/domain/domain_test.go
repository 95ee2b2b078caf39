package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJurisdiction(t *testing.T) {
	j, err := ParseJurisdiction("tx")
	require.NoError(t, err)
	assert.Equal(t, Texas, j, "lowercase codes are accepted")

	j, err = ParseJurisdiction(" CA ")
	require.NoError(t, err)
	assert.Equal(t, California, j, "whitespace is trimmed")

	_, err = ParseJurisdiction("PR")
	assert.Error(t, err, "territories are outside the enumerated set")

	_, err = ParseJurisdiction("")
	assert.Error(t, err)
}

func TestJurisdiction_Valid(t *testing.T) {
	assert.True(t, Wyoming.Valid())
	assert.False(t, Jurisdiction("ZZ").Valid())
	assert.Len(t, AllJurisdictions, 51, "50 states plus DC")
}

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		in       string
		expected FilingStatus
	}{
		{"single", Single},
		{"married_filing_jointly", MarriedFilingJointly},
		{"MFJ", MarriedFilingJointly},
		{"married", MarriedFilingJointly},
		{"mfs", MarriedFilingSeparate},
		{"hoh", HeadOfHousehold},
		{"qualifying_widow", QualifyingWidow},
		{"QW", QualifyingWidow},
	}
	for _, tt := range tests {
		got, err := ParseFilingStatus(tt.in)
		require.NoError(t, err, "parsing %q", tt.in)
		assert.Equal(t, tt.expected, got)
	}

	_, err := ParseFilingStatus("divorced")
	assert.Error(t, err)
}

func TestFilingStatus_Valid(t *testing.T) {
	for _, fs := range AllFilingStatuses {
		assert.True(t, fs.Valid())
	}
	assert.False(t, FilingStatus("widowed").Valid())
}

func TestPayPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 26, PayPeriodsPerYear[PayBiWeekly])
	assert.Equal(t, 52, PayPeriodsPerYear[PayWeekly])
	assert.Equal(t, 24, PayPeriodsPerYear[PaySemiMonthly])
	assert.Equal(t, 12, PayPeriodsPerYear[PayMonthly])
	assert.Equal(t, 4, PayPeriodsPerYear[PayQuarterly])
	assert.Equal(t, 1, PayPeriodsPerYear[PayAnnual])
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("hourly_rate", "must be non-negative")
	assert.EqualError(t, err, "invalid hourly_rate: must be non-negative")
}
