// Package postgres implements the cache store on PostgreSQL, for
// deployments where several instances share one cache.
package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CacheStore is a PostgreSQL-backed key/value cache over the
// cache_entries table.
type CacheStore struct {
	pool *pgxpool.Pool
}

// NewCacheStore wraps an existing pool.
func NewCacheStore(pool *pgxpool.Pool) *CacheStore {
	return &CacheStore{pool: pool}
}

// Get returns the cached value, or domain.ErrNotFound on a miss.
func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From("cache_entries").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, "get cache entry", key)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *CacheStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert("cache_entries").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, "set cache entry", key)
	}
	return nil
}

// Purge removes entries last written before the cutoff and returns how
// many rows were removed.
func (s *CacheStore) Purge(ctx context.Context, olderThan time.Time) (int, error) {
	query, args, err := psql.
		Delete("cache_entries").
		Where(sq.Lt{"updated_at": olderThan.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "purge cache entries", "")
	}
	return int(tag.RowsAffected()), nil
}

// Ping verifies the database connection.
func (s *CacheStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the underlying pool.
func (s *CacheStore) Close() error {
	s.pool.Close()
	return nil
}
