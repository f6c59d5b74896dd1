// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"brewery/pkg/domain"
)

// NearbyQuery describes a bounding-box candidate search.
type NearbyQuery struct {
	// Center and radius of the search. The storage computes the distance of
	// every candidate from (Lat, Lng) itself.
	domain.GeoQuery
	// StateAbbrev restricts candidates to one state when non-empty.
	StateAbbrev string
	// Limit caps the number of candidates returned.
	Limit uint
}

// SearchQuery describes a substring search over names and locations.
type SearchQuery struct {
	// Text is matched case-insensitively against name, city and state.
	Text string
	// StateAbbrev restricts results to one state when non-empty.
	StateAbbrev string
	// Limit caps the number of results returned.
	Limit uint
}

// BreweryStorage defines the read operations of the directory together with
// the bulk insert used by importers.
type BreweryStorage interface {
	// NearbyBreweries returns geocoded breweries inside the bounding box of the
	// query, each with its great-circle distance from the query center, ordered
	// by ascending distance and capped at q.Limit. Breweries without
	// coordinates are never returned. The result may contain breweries outside
	// the radius; callers apply the exact radius themselves.
	NearbyBreweries(ctx context.Context, q NearbyQuery) ([]domain.RankedBrewery, error)
	// SearchBreweries returns breweries whose name, city or state contains the
	// query text, ordered by name.
	SearchBreweries(ctx context.Context, q SearchQuery) ([]domain.Brewery, error)
	// ListBreweries returns breweries ordered by name, restricted to one state
	// when stateAbbrev is non-empty.
	ListBreweries(ctx context.Context, stateAbbrev string, limit uint) ([]domain.Brewery, error)
	// BreweryByID fetches a single brewery. Returns nil when not found.
	BreweryByID(ctx context.Context, ID domain.BreweryID) (*domain.Brewery, error)
	// StoreBreweries inserts breweries and returns the stored rows including
	// generated fields.
	StoreBreweries(ctx context.Context, breweries ...domain.Brewery) ([]domain.Brewery, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	BreweryStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Ping verifies the connection to the backend is alive.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
