package v1handler

import (
	"time"

	"github.com/go-faster/jx"

	"brewery/pkg/domain"
)

func optStr(e *jx.Encoder, name, v string) {
	if v != "" {
		e.Field(name, func(e *jx.Encoder) { e.Str(v) })
	}
}

func optFloat(e *jx.Encoder, name string, v *float64) {
	if v != nil {
		e.Field(name, func(e *jx.Encoder) { e.Float64(*v) })
	}
}

func optTime(e *jx.Encoder, name string, v time.Time) {
	if !v.IsZero() {
		e.Field(name, func(e *jx.Encoder) { e.Str(v.UTC().Format(time.RFC3339)) })
	}
}

func encodeBreweryFields(e *jx.Encoder, b *domain.Brewery) {
	e.Field("id", func(e *jx.Encoder) { e.Str(b.ID.String()) })
	e.Field("name", func(e *jx.Encoder) { e.Str(b.Name) })
	optStr(e, "breweryType", b.BreweryType)
	optStr(e, "street", b.Street)
	optStr(e, "city", b.City)
	optStr(e, "postalCode", b.PostalCode)
	optStr(e, "state", b.State)
	optStr(e, "stateAbbrev", b.StateAbbrev)
	optFloat(e, "latitude", b.Latitude)
	optFloat(e, "longitude", b.Longitude)
	optStr(e, "phone", b.Phone)
	optStr(e, "websiteUrl", b.WebsiteURL)
	optStr(e, "description", b.Description)
	optTime(e, "createdAt", b.CreatedAt)
	optTime(e, "updatedAt", b.UpdatedAt)
}

func encodeBrewery(e *jx.Encoder, b *domain.Brewery) {
	e.Obj(func(e *jx.Encoder) { encodeBreweryFields(e, b) })
}

func encodeBreweries(e *jx.Encoder, bs []domain.Brewery) {
	e.Arr(func(e *jx.Encoder) {
		for i := range bs {
			encodeBrewery(e, &bs[i])
		}
	})
}

func encodeRankedBreweries(e *jx.Encoder, rs []domain.RankedBrewery) {
	e.Arr(func(e *jx.Encoder) {
		for i := range rs {
			e.Obj(func(e *jx.Encoder) {
				encodeBreweryFields(e, &rs[i].Brewery)
				e.Field("distance", func(e *jx.Encoder) { e.Float64(rs[i].DistanceMiles) })
			})
		}
	})
}

func optNullStr(e *jx.Encoder, name string, v *string) {
	e.Field(name, func(e *jx.Encoder) {
		if v == nil {
			e.Null()

			return
		}
		e.Str(*v)
	})
}

func encodeRegionScope(e *jx.Encoder, s domain.RegionScope) {
	e.Obj(func(e *jx.Encoder) {
		optNullStr(e, "subdomain", s.Subdomain)
		optNullStr(e, "stateName", s.StateName)
		optNullStr(e, "stateAbbrev", s.StateAbbrev)
		e.Field("isMultiState", func(e *jx.Encoder) { e.Bool(s.IsMultiState) })
		e.Field("baseUrl", func(e *jx.Encoder) { e.Str(s.BaseURL) })
	})
}
