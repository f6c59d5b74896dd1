package directory

import (
	"context"

	"brewery/pkg/domain"
)

//go:generate mockgen -package mockdirectory -source=interface.go -destination=mock/mockdirectory.go *
type Directory interface {
	Nearby(ctx context.Context, scope domain.RegionScope, q domain.GeoQuery) ([]domain.RankedBrewery, error)
	Search(ctx context.Context, scope domain.RegionScope, text string) ([]domain.Brewery, error)
	List(ctx context.Context, scope domain.RegionScope) ([]domain.Brewery, error)
	Brewery(ctx context.Context, ID domain.BreweryID) (*domain.Brewery, error)
}
