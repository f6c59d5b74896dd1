package region

import (
	"maps"
	"strings"

	"brewery/pkg/domain"
)

// states maps a subdomain token to the state it serves. It is built once at
// startup and never written afterwards, so concurrent readers need no locking.
var states = map[string]domain.State{ //nolint: gochecknoglobals
	"alabama":       {Name: "Alabama", Abbrev: "AL"},
	"arizona":       {Name: "Arizona", Abbrev: "AZ"},
	"california":    {Name: "California", Abbrev: "CA"},
	"colorado":      {Name: "Colorado", Abbrev: "CO"},
	"florida":       {Name: "Florida", Abbrev: "FL"},
	"georgia":       {Name: "Georgia", Abbrev: "GA"},
	"illinois":      {Name: "Illinois", Abbrev: "IL"},
	"indiana":       {Name: "Indiana", Abbrev: "IN"},
	"kentucky":      {Name: "Kentucky", Abbrev: "KY"},
	"maine":         {Name: "Maine", Abbrev: "ME"},
	"massachusetts": {Name: "Massachusetts", Abbrev: "MA"},
	"michigan":      {Name: "Michigan", Abbrev: "MI"},
	"minnesota":     {Name: "Minnesota", Abbrev: "MN"},
	"missouri":      {Name: "Missouri", Abbrev: "MO"},
	"newyork":       {Name: "New York", Abbrev: "NY"},
	"northcarolina": {Name: "North Carolina", Abbrev: "NC"},
	"ohio":          {Name: "Ohio", Abbrev: "OH"},
	"oregon":        {Name: "Oregon", Abbrev: "OR"},
	"pennsylvania":  {Name: "Pennsylvania", Abbrev: "PA"},
	"tennessee":     {Name: "Tennessee", Abbrev: "TN"},
	"texas":         {Name: "Texas", Abbrev: "TX"},
	"vermont":       {Name: "Vermont", Abbrev: "VT"},
	"virginia":      {Name: "Virginia", Abbrev: "VA"},
	"washington":    {Name: "Washington", Abbrev: "WA"},
	"wisconsin":     {Name: "Wisconsin", Abbrev: "WI"},
}

// States returns a copy of the subdomain table.
func States() map[string]domain.State {
	return maps.Clone(states)
}

// Lookup returns the state served by the given subdomain token.
// The lookup is case-insensitive.
func Lookup(token string) (domain.State, bool) {
	s, ok := states[strings.ToLower(strings.TrimSpace(token))]

	return s, ok
}
