package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers, in the API as well as in the stored collections
	decimal.MarshalJSONWithoutQuotes = true
}

// NewID returns a new, random identifier for a resource.
func NewID() string {
	return uuid.NewString()
}

// UTC returns t in UTC. The zero time is replaced by the current time.
func UTC(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().In(time.UTC)
	}

	return t.In(time.UTC)
}

// ContextKey is the type of keys for values in request contexts.
type ContextKey string

// ContextURL is the key of the API base URL.
const ContextURL ContextKey = "finwise:url"
