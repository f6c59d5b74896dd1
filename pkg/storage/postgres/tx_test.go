package postgres_test

import (
	"context"
	"errors"
	"testing"

	"brewery/pkg/domain"
	"brewery/pkg/storage"
	"brewery/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countByName(t *testing.T, pg *postgres.PgSQL, name string) int {
	t.Helper()
	found, err := pg.SearchBreweries(context.Background(), storage.SearchQuery{Text: name, Limit: 100})
	require.NoError(t, err)

	return len(found)
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsBreweries(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreBreweries(ctx, domain.Brewery{Name: "Committed Ales"})
	require.NoError(t, err)
	require.Equal(t, 0, countByName(t, pg, "Committed Ales"), "uncommitted rows must not be visible")

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countByName(t, pg, "Committed Ales"))
}

func TestPgSQL_Rollback_DiscardsBreweries(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreBreweries(ctx, domain.Brewery{Name: "Rolled Back Lagers"})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Equal(t, 0, countByName(t, pg, "Rolled Back Lagers"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreBreweries(ctx, domain.Brewery{Name: "Seven Stills"})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countByName(t, pg, "Seven Stills"))

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreBreweries(ctx, domain.Brewery{Name: "Nine Pin"})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countByName(t, pg, "Nine Pin"))
}
