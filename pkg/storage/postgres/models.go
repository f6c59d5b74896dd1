package postgres

import (
	"database/sql"
	"time"

	"brewery/pkg/domain"

	"github.com/google/uuid"
)

// PgBrewery is the row shape of the breweries table.
type PgBrewery struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name        string         `db:"name"`
	BreweryType sql.NullString `db:"brewery_type"`

	Street      sql.NullString `db:"street"`
	City        sql.NullString `db:"city"`
	PostalCode  sql.NullString `db:"postal_code"`
	State       sql.NullString `db:"state"`
	StateAbbrev sql.NullString `db:"state_abbrev"`

	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`

	Phone       sql.NullString `db:"phone"`
	WebsiteURL  sql.NullString `db:"website_url"`
	Description sql.NullString `db:"description"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// PgNearbyBrewery is a brewery row together with the distance computed by
// the nearby query.
type PgNearbyBrewery struct {
	PgBrewery

	Distance float64 `db:"distance"`
}

// breweryColumns lists the columns of PgBrewery in select order.
var breweryColumns = []any{ //nolint: gochecknoglobals
	"id", "name", "brewery_type",
	"street", "city", "postal_code", "state", "state_abbrev",
	"latitude", "longitude",
	"phone", "website_url", "description",
	"created_at", "updated_at",
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64

	return &v
}

func (p *PgBrewery) ToDomain() domain.Brewery {
	return domain.Brewery{
		ID:          domain.BreweryID(p.ID),
		Name:        p.Name,
		BreweryType: p.BreweryType.String,
		Street:      p.Street.String,
		City:        p.City.String,
		PostalCode:  p.PostalCode.String,
		State:       p.State.String,
		StateAbbrev: p.StateAbbrev.String,
		Latitude:    floatPtr(p.Latitude),
		Longitude:   floatPtr(p.Longitude),
		Phone:       p.Phone.String,
		WebsiteURL:  p.WebsiteURL.String,
		Description: p.Description.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgBrewery) FromDomain(b domain.Brewery) {
	*p = PgBrewery{
		ID:          uuid.UUID(b.ID),
		Name:        b.Name,
		BreweryType: nullString(b.BreweryType),
		Street:      nullString(b.Street),
		City:        nullString(b.City),
		PostalCode:  nullString(b.PostalCode),
		State:       nullString(b.State),
		StateAbbrev: nullString(b.StateAbbrev),
		Latitude:    nullFloat(b.Latitude),
		Longitude:   nullFloat(b.Longitude),
		Phone:       nullString(b.Phone),
		WebsiteURL:  nullString(b.WebsiteURL),
		Description: nullString(b.Description),
		CreatedAt:   b.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  b.UpdatedAt,
			Valid: !b.UpdatedAt.IsZero(),
		},
	}
}

func domainBreweriesToPg(breweries []domain.Brewery) []PgBrewery {
	out := make([]PgBrewery, len(breweries))
	for i := range out {
		out[i].FromDomain(breweries[i])
	}

	return out
}

func pgBreweriesToDomain(rows []PgBrewery) []domain.Brewery {
	out := make([]domain.Brewery, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
