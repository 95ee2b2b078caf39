package domain

import (
	"fmt"
	"strings"
)

// FilingStatus selects which federal bracket table and standard deduction
// apply to a taxpayer.
type FilingStatus string

const (
	Single                FilingStatus = "single"
	MarriedFilingJointly  FilingStatus = "married_filing_jointly"
	MarriedFilingSeparate FilingStatus = "married_filing_separately"
	HeadOfHousehold       FilingStatus = "head_of_household"
	QualifyingWidow       FilingStatus = "qualifying_widow"
)

// AllFilingStatuses lists every valid filing status.
var AllFilingStatuses = []FilingStatus{
	Single,
	MarriedFilingJointly,
	MarriedFilingSeparate,
	HeadOfHousehold,
	QualifyingWidow,
}

// Valid reports whether fs is a member of the enumerated set.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedFilingJointly, MarriedFilingSeparate, HeadOfHousehold, QualifyingWidow:
		return true
	}
	return false
}

func (fs FilingStatus) String() string {
	return string(fs)
}

// ParseFilingStatus maps a config string to a FilingStatus. Accepts the
// canonical snake_case names plus common short aliases.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "married_filing_jointly", "mfj", "married":
		return MarriedFilingJointly, nil
	case "married_filing_separately", "mfs":
		return MarriedFilingSeparate, nil
	case "head_of_household", "hoh":
		return HeadOfHousehold, nil
	case "qualifying_widow", "qualifying_widower", "qw":
		return QualifyingWidow, nil
	}
	return "", fmt.Errorf("unknown filing status %q", s)
}
