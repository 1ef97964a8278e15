// Package storage implements the local key-value persistence that the
// stores serialize their collections into.
package storage

import "context"

// Keys used for the persisted collections.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "finwise_budgets"
)

// KeyValue is a string key-value store.
//
//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks -source=storage.go KeyValue
type KeyValue interface {
	// Get returns the value for the key. ok is false if the key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores the value for the key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
