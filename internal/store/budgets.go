package store

import (
	"context"
	"slices"
	"sync"

	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Colors resolves the display color of a category.
type Colors interface {
	Color(name string) string
}

// Budgets holds the monthly category budgets. Budgets are never deleted.
type Budgets struct {
	mu     sync.RWMutex
	kv     storage.KeyValue
	colors Colors
	items  []models.Budget
}

// NewBudgets returns an empty store. Call Init to load the persisted budgets.
func NewBudgets(kv storage.KeyValue, colors Colors) *Budgets {
	return &Budgets{
		kv:     kv,
		colors: colors,
		items:  make([]models.Budget, 0),
	}
}

// Init replaces the collection with the persisted budgets.
func (s *Budgets) Init(ctx context.Context) error {
	items, err := load[models.Budget](ctx, s.kv, storage.KeyBudgets)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
	log.Debug().Int("count", len(items)).Msg("loaded budgets")
	return nil
}

// Dispose writes the collection a final time.
func (s *Budgets) Dispose(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return save(ctx, s.kv, storage.KeyBudgets, s.items)
}

// Create validates and adds a budget. Without a color, the budget uses the
// color of its category.
func (s *Budgets) Create(ctx context.Context, create models.BudgetCreate) (models.Budget, error) {
	create = create.Normalize()
	if err := create.Validate(); err != nil {
		return models.Budget{}, err
	}

	if create.Color == "" && s.colors != nil {
		create.Color = s.colors.Color(create.Category)
	}

	b := models.Budget{
		ID:       models.NewID(),
		Category: create.Category,
		Limit:    create.Limit,
		Color:    create.Color,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, b)
	return b, save(ctx, s.kv, storage.KeyBudgets, s.items)
}

// UpdateLimit sets a new limit for the budget with the id.
func (s *Budgets) UpdateLimit(ctx context.Context, id string, limit decimal.Decimal) (models.Budget, error) {
	if err := models.ValidateLimit(limit); err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(b models.Budget) bool { return b.ID == id })
	if i < 0 {
		return models.Budget{}, models.ErrBudgetNotFound
	}

	s.items[i].Limit = limit
	return s.items[i], save(ctx, s.kv, storage.KeyBudgets, s.items)
}

// Get returns the budget with the id.
func (s *Budgets) Get(id string) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.items {
		if b.ID == id {
			return b, nil
		}
	}

	return models.Budget{}, models.ErrBudgetNotFound
}

// List returns all budgets in the order they were created.
func (s *Budgets) List() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}
