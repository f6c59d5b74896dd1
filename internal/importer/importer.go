// Package importer loads breweries from a JSON document into storage.
//
// The document is an array of objects using the same field names the API
// responds with. Unknown fields, ids and timestamps are ignored; the database
// assigns them on insert.
package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"brewery/internal/region"
	"brewery/pkg/domain"
	"brewery/pkg/logger"
	"brewery/pkg/storage"
)

// DefaultBatchSize is the number of rows inserted per statement.
const DefaultBatchSize = 500

var errNoName = errors.New("name is required")

// Decode reads a JSON array of breweries from r. Entries without a name are
// rejected. A missing stateAbbrev is derived from the state name when the
// state is known.
func Decode(r io.Reader) ([]domain.Brewery, error) {
	d := jx.Decode(r, 4096)

	abbrevs := make(map[string]string)
	for _, s := range region.States() {
		abbrevs[strings.ToLower(s.Name)] = s.Abbrev
	}

	var breweries []domain.Brewery
	err := d.Arr(func(d *jx.Decoder) error {
		b, err := decodeBrewery(d)
		if err != nil {
			return fmt.Errorf("brewery #%d: %w", len(breweries)+1, err)
		}
		if b.StateAbbrev == "" && b.State != "" {
			b.StateAbbrev = abbrevs[strings.ToLower(b.State)]
		}
		b.StateAbbrev = strings.ToUpper(b.StateAbbrev)
		breweries = append(breweries, b)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode breweries: %w", err)
	}

	return breweries, nil
}

func decodeBrewery(d *jx.Decoder) (domain.Brewery, error) {
	var b domain.Brewery
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var dst *string
		switch key {
		case "name":
			dst = &b.Name
		case "breweryType":
			dst = &b.BreweryType
		case "street":
			dst = &b.Street
		case "city":
			dst = &b.City
		case "postalCode":
			dst = &b.PostalCode
		case "state":
			dst = &b.State
		case "stateAbbrev":
			dst = &b.StateAbbrev
		case "phone":
			dst = &b.Phone
		case "websiteUrl":
			dst = &b.WebsiteURL
		case "description":
			dst = &b.Description
		case "latitude":
			return decodeCoordinate(d, &b.Latitude)
		case "longitude":
			return decodeCoordinate(d, &b.Longitude)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		if d.Next() == jx.Null {
			return d.Null() //nolint: wrapcheck
		}
		s, err := d.Str()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = strings.TrimSpace(s)

		return nil
	})
	if err != nil {
		return b, err //nolint: wrapcheck
	}
	if b.Name == "" {
		return b, errNoName
	}

	return b, nil
}

func decodeCoordinate(d *jx.Decoder, dst **float64) error {
	if d.Next() == jx.Null {
		return d.Null() //nolint: wrapcheck
	}
	f, err := d.Float64()
	if err != nil {
		return fmt.Errorf("coordinate: %w", err)
	}
	*dst = &f

	return nil
}

// Import stores breweries in batches inside a single transaction and returns
// the number of stored rows. Nothing is stored when any batch fails.
func Import(ctx context.Context, strg storage.Storage, breweries []domain.Brewery, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	stored := 0
	err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
		for start := 0; start < len(breweries); start += batchSize {
			end := min(start+batchSize, len(breweries))
			rows, err := tx.StoreBreweries(ctx, breweries[start:end]...)
			if err != nil {
				return fmt.Errorf("could not store batch at %d: %w", start, err)
			}
			stored += len(rows)
			logger.Debug(ctx, "stored brewery batch", zap.Int("offset", start), zap.Int("count", len(rows)))
		}

		return nil
	})
	if err != nil {
		return 0, err //nolint: wrapcheck
	}

	return stored, nil
}
