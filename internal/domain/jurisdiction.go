package domain

import (
	"fmt"
	"strings"
)

// Jurisdiction identifies a US state (or DC) for tax and location purposes.
// Values come from the closed set below; callers select, never construct.
type Jurisdiction string

const (
	Alabama            Jurisdiction = "AL"
	Alaska             Jurisdiction = "AK"
	Arizona            Jurisdiction = "AZ"
	Arkansas           Jurisdiction = "AR"
	California         Jurisdiction = "CA"
	Colorado           Jurisdiction = "CO"
	Connecticut        Jurisdiction = "CT"
	Delaware           Jurisdiction = "DE"
	DistrictOfColumbia Jurisdiction = "DC"
	Florida            Jurisdiction = "FL"
	Georgia            Jurisdiction = "GA"
	Hawaii             Jurisdiction = "HI"
	Idaho              Jurisdiction = "ID"
	Illinois           Jurisdiction = "IL"
	Indiana            Jurisdiction = "IN"
	Iowa               Jurisdiction = "IA"
	Kansas             Jurisdiction = "KS"
	Kentucky           Jurisdiction = "KY"
	Louisiana          Jurisdiction = "LA"
	Maine              Jurisdiction = "ME"
	Maryland           Jurisdiction = "MD"
	Massachusetts      Jurisdiction = "MA"
	Michigan           Jurisdiction = "MI"
	Minnesota          Jurisdiction = "MN"
	Mississippi        Jurisdiction = "MS"
	Missouri           Jurisdiction = "MO"
	Montana            Jurisdiction = "MT"
	Nebraska           Jurisdiction = "NE"
	Nevada             Jurisdiction = "NV"
	NewHampshire       Jurisdiction = "NH"
	NewJersey          Jurisdiction = "NJ"
	NewMexico          Jurisdiction = "NM"
	NewYork            Jurisdiction = "NY"
	NorthCarolina      Jurisdiction = "NC"
	NorthDakota        Jurisdiction = "ND"
	Ohio               Jurisdiction = "OH"
	Oklahoma           Jurisdiction = "OK"
	Oregon             Jurisdiction = "OR"
	Pennsylvania       Jurisdiction = "PA"
	RhodeIsland        Jurisdiction = "RI"
	SouthCarolina      Jurisdiction = "SC"
	SouthDakota        Jurisdiction = "SD"
	Tennessee          Jurisdiction = "TN"
	Texas              Jurisdiction = "TX"
	Utah               Jurisdiction = "UT"
	Vermont            Jurisdiction = "VT"
	Virginia           Jurisdiction = "VA"
	Washington         Jurisdiction = "WA"
	WestVirginia       Jurisdiction = "WV"
	Wisconsin          Jurisdiction = "WI"
	Wyoming            Jurisdiction = "WY"
)

// AllJurisdictions lists every valid jurisdiction, in postal-code order.
var AllJurisdictions = []Jurisdiction{
	Alabama, Alaska, Arizona, Arkansas, California, Colorado, Connecticut,
	Delaware, DistrictOfColumbia, Florida, Georgia, Hawaii, Idaho, Illinois,
	Indiana, Iowa, Kansas, Kentucky, Louisiana, Maine, Maryland, Massachusetts,
	Michigan, Minnesota, Mississippi, Missouri, Montana, Nebraska, Nevada,
	NewHampshire, NewJersey, NewMexico, NewYork, NorthCarolina, NorthDakota,
	Ohio, Oklahoma, Oregon, Pennsylvania, RhodeIsland, SouthCarolina,
	SouthDakota, Tennessee, Texas, Utah, Vermont, Virginia, Washington,
	WestVirginia, Wisconsin, Wyoming,
}

var jurisdictionSet = func() map[Jurisdiction]bool {
	m := make(map[Jurisdiction]bool, len(AllJurisdictions))
	for _, j := range AllJurisdictions {
		m[j] = true
	}
	return m
}()

// Valid reports whether j is a member of the enumerated set.
func (j Jurisdiction) Valid() bool {
	return jurisdictionSet[j]
}

func (j Jurisdiction) String() string {
	return string(j)
}

// ParseJurisdiction maps a two-letter postal code (any case) to a Jurisdiction.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	j := Jurisdiction(strings.ToUpper(strings.TrimSpace(s)))
	if !j.Valid() {
		return "", fmt.Errorf("unknown jurisdiction %q", s)
	}
	return j, nil
}
