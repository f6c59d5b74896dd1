// Package redis implements cache.Store on top of go-redis.
package redis

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	goredis "github.com/redis/go-redis/v9"

	"brewery/pkg/cache"
)

var _ cache.Store = (*Store)(nil)

// Options configure the connection to the Redis server.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store is a cache.Store backed by a single Redis node.
type Store struct {
	client *goredis.Client
}

// New creates a Store. The connection is established lazily on first use.
func New(opts Options) *Store {
	return NewFromClient(goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}))
}

// NewFromClient wraps an existing client.
func NewFromClient(client *goredis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, cache.ErrMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %q", key)
	}

	return b, nil
}

func (s *Store) Put(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, body, ttl).Err(); err != nil {
		return errors.Wrapf(err, "set %q", key)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "ping")
	}

	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
