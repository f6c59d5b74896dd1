package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"brewery/pkg/cache"
	"brewery/pkg/cache/redis"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *redis.Store) {
	t.Helper()

	m := miniredis.RunT(t)
	s := redis.New(redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = s.Close() })

	return m, s
}

func TestStore_GetMiss(t *testing.T) {
	_, s := newTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, cache.ErrMiss)
}

func TestStore_PutGet(t *testing.T) {
	m, s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte(`[{"name":"a"}]`), time.Hour))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, `[{"name":"a"}]`, string(got))
	require.Equal(t, time.Hour, m.TTL("k"))
}

func TestStore_Expires(t *testing.T) {
	m, s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte(`{}`), time.Minute))

	m.FastForward(59 * time.Second)
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	m.FastForward(time.Second)
	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, cache.ErrMiss)
}

func TestStore_Unreachable(t *testing.T) {
	m, s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	m.Close()

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	require.NotErrorIs(t, err, cache.ErrMiss)
	require.Error(t, s.Ping(ctx))
}
