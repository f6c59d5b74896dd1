package domain

// State is an entry of the region table: a US state served on its own subdomain.
type State struct {
	// Name is the full state name, e.g. "Ohio".
	Name string `json:"name"`
	// Abbrev is the two letter postal abbreviation, e.g. "OH".
	Abbrev string `json:"abbrev"`
}

// RegionScope is the per-request tenant filter derived from the host name.
// A scope is either fully unscoped (IsMultiState is true and every pointer is
// nil) or fully scoped (every pointer is set); it is never partially
// populated. Build it with UnscopedRegion or ScopedRegion.
type RegionScope struct {
	// Subdomain is the subdomain token that selected the state.
	Subdomain *string `json:"subdomain"`
	// StateName is the full name of the selected state.
	StateName *string `json:"stateName"`
	// StateAbbrev is the postal abbreviation of the selected state.
	StateAbbrev *string `json:"stateAbbrev"`
	// IsMultiState is true when results are not restricted to a state.
	IsMultiState bool `json:"isMultiState"`
	// BaseURL is the scheme and host the request was addressed to.
	BaseURL string `json:"baseUrl"`
}

// UnscopedRegion returns a scope that does not restrict results.
func UnscopedRegion(baseURL string) RegionScope {
	return RegionScope{IsMultiState: true, BaseURL: baseURL}
}

// ScopedRegion returns a scope restricted to the given state.
func ScopedRegion(subdomain string, state State, baseURL string) RegionScope {
	return RegionScope{
		Subdomain:    &subdomain,
		StateName:    &state.Name,
		StateAbbrev:  &state.Abbrev,
		IsMultiState: false,
		BaseURL:      baseURL,
	}
}

// Scoped reports whether the scope restricts results to a single state.
func (r RegionScope) Scoped() bool {
	return !r.IsMultiState && r.StateAbbrev != nil
}

// Abbrev returns the state abbreviation, or an empty string when unscoped.
func (r RegionScope) Abbrev() string {
	if !r.Scoped() {
		return ""
	}

	return *r.StateAbbrev
}
