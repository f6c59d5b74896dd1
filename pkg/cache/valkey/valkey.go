// Package valkey implements cache.Store on top of rueidis, for Valkey or
// Redis servers.
package valkey

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/rueidis"

	"brewery/pkg/cache"
)

var _ cache.Store = (*Store)(nil)

// Options configure the connection to the server.
type Options struct {
	Addrs    []string
	Password string
	DB       int
}

// Store is a cache.Store backed by a rueidis client.
type Store struct {
	client rueidis.Client
}

// New connects to the server.
func New(opts Options) (*Store, error) {
	if len(opts.Addrs) == 0 {
		return nil, errors.New("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  opts.Addrs,
		Password:     opts.Password,
		SelectDB:     opts.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}

	return NewFromClient(client), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client rueidis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.client.B().Get().Key(key).Build()
	b, err := s.client.Do(ctx, cmd).AsBytes()
	if rueidis.IsRedisNil(err) {
		return nil, cache.ErrMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %q", key)
	}

	return b, nil
}

func (s *Store) Put(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	cmd := s.client.B().Set().Key(key).Value(rueidis.BinaryString(body)).Ex(ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return errors.Wrapf(err, "set %q", key)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return errors.Wrap(err, "ping")
	}

	return nil
}

func (s *Store) Close() error {
	s.client.Close()

	return nil
}
