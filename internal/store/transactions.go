package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// Filter selects transactions by type.
//
// swagger:enum Filter
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ParseFilter parses a filter. The empty string selects all transactions.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterIncome, FilterExpense:
		return f, nil
	default:
		return "", models.ErrFilterInvalid
	}
}

func (f Filter) matches(t models.Transaction) bool {
	switch f {
	case FilterIncome:
		return t.Type == models.TypeIncome
	case FilterExpense:
		return t.Type == models.TypeExpense
	default:
		return true
	}
}

var errMissingID = errors.New("the transaction has no id")

// Classifier suggests a category for a description.
type Classifier interface {
	Classify(description string) string
}

// Transactions is the single source of truth for all transactions.
type Transactions struct {
	mu         sync.RWMutex
	kv         storage.KeyValue
	classifier Classifier
	items      []models.Transaction
}

// NewTransactions returns an empty store. Call Init to load the persisted
// transactions.
func NewTransactions(kv storage.KeyValue, classifier Classifier) *Transactions {
	return &Transactions{
		kv:         kv,
		classifier: classifier,
		items:      make([]models.Transaction, 0),
	}
}

// Init replaces the collection with the persisted transactions.
//
// Records that do not describe a valid transaction are dropped.
func (s *Transactions) Init(ctx context.Context) error {
	items, err := load[models.Transaction](ctx, s.kv, storage.KeyTransactions)
	if err != nil {
		return err
	}

	valid := make([]models.Transaction, 0, len(items))
	for _, t := range items {
		if err := validStored(t); err != nil {
			log.Warn().Err(err).Str("id", t.ID).Msg("dropping stored transaction")
			continue
		}

		t.Date = t.Date.UTC()
		valid = append(valid, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = valid
	log.Debug().Int("count", len(valid)).Msg("loaded transactions")
	return nil
}

func validStored(t models.Transaction) error {
	if t.ID == "" {
		return errMissingID
	}

	return models.TransactionCreate{
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
	}.Validate()
}

// Dispose writes the collection a final time.
func (s *Transactions) Dispose(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return save(ctx, s.kv, storage.KeyTransactions, s.items)
}

// Create validates and adds a transaction.
//
// An empty category is suggested by the classifier. The transaction is
// returned whenever it was added, even if persisting it failed.
func (s *Transactions) Create(ctx context.Context, create models.TransactionCreate) (models.Transaction, error) {
	create = create.Normalize()
	if err := create.Validate(); err != nil {
		return models.Transaction{}, err
	}

	if create.Category == "" && s.classifier != nil {
		create.Category = s.classifier.Classify(create.Description)
	}

	t := create.Transaction(models.NewID())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, t)
	return t, save(ctx, s.kv, storage.KeyTransactions, s.items)
}

// Delete removes the transaction with the id. Unknown ids are ignored.
func (s *Transactions) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(t models.Transaction) bool { return t.ID == id })
	if i < 0 {
		return nil
	}

	s.items = slices.Delete(s.items, i, i+1)
	return save(ctx, s.kv, storage.KeyTransactions, s.items)
}

// Get returns the transaction with the id.
func (s *Transactions) Get(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.items {
		if t.ID == id {
			return t, nil
		}
	}

	return models.Transaction{}, models.ErrTransactionNotFound
}

// List returns the transactions matching the filter, newest first.
func (s *Transactions) List(filter Filter) []models.Transaction {
	s.mu.RLock()
	result := make([]models.Transaction, 0, len(s.items))
	for _, t := range s.items {
		if filter.matches(t) {
			result = append(result, t)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(result, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return result
}

// Snapshot returns a copy of all transactions in insertion order.
func (s *Transactions) Snapshot() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}
