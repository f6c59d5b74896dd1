package domain

import (
	"time"

	"github.com/google/uuid"
)

// BreweryID uniquely identifies a brewery.
// It wraps uuid.UUID to provide type safety at the domain layer.
type BreweryID uuid.UUID

// String returns the canonical textual form of the ID.
func (id BreweryID) String() string {
	return uuid.UUID(id).String()
}

// ParseBreweryID parses the textual form of a brewery ID.
func ParseBreweryID(s string) (BreweryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return BreweryID{}, err //nolint: wrapcheck
	}

	return BreweryID(id), nil
}

// Brewery is a single directory entry. Breweries are written by external
// collaborators (importers, admin tools) and are read-only for the read-path.
type Brewery struct {
	// ID is the unique identifier of the brewery.
	ID BreweryID `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// BreweryType is a free-form category such as "micro" or "brewpub".
	BreweryType string `json:"breweryType,omitempty"`

	// Street, City and PostalCode describe the postal address.
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	// State is the full state name, e.g. "Ohio".
	State string `json:"state,omitempty"`
	// StateAbbrev is the two letter postal abbreviation, e.g. "OH".
	StateAbbrev string `json:"stateAbbrev,omitempty"`

	// Latitude and Longitude are nil when the brewery has not been geocoded.
	// Such breweries never appear in proximity searches.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Phone       string `json:"phone,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Description string `json:"description,omitempty"`

	// CreatedAt is the time the brewery was added to the directory.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the brewery was last changed; zero when never updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasCoordinates reports whether both latitude and longitude are known.
func (b *Brewery) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}
