// Package store holds the canonical in-memory collections of transactions
// and budgets.
//
// Every mutation writes the complete collection to a storage.KeyValue as a
// JSON array. Persistence is best effort: when the write fails, the error
// is logged and returned, but the mutation is kept in memory.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// load reads the collection stored under key.
//
// A missing key yields an empty collection. Data that cannot be decoded is
// discarded with a warning.
func load[T any](ctx context.Context, kv storage.KeyValue, key string) ([]T, error) {
	items := make([]T, 0)

	value, ok, err := kv.Get(ctx, key)
	if err != nil {
		return items, fmt.Errorf("loading %s: %w", key, err)
	}

	if !ok || value == "" {
		return items, nil
	}

	if err := json.Unmarshal([]byte(value), &items); err != nil || items == nil {
		log.Warn().Err(err).Str("key", key).Msg("stored data is not readable, starting with an empty collection")
		return make([]T, 0), nil
	}

	return items, nil
}

// save writes the collection under key.
func save[T any](ctx context.Context, kv storage.KeyValue, key string, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}

	data, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("encoding collection")
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	err = kv.Set(ctx, key, string(data))
	if err != nil {
		log.Error().Err(err).Str("key", key).Int("count", len(items)).Msg("persisting collection")
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	return nil
}
