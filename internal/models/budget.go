package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending ceiling for one category.
//
// Multiple budgets for the same category are allowed, they are evaluated
// independently.
type Budget struct {
	ID       string          `json:"id" example:"0f6bd8a4-4a4d-4b88-a4ad-1d7c7e4f5e73"` // ID of the budget
	Category string          `json:"category" example:"Food & Dining"`                  // Category the limit applies to
	Limit    decimal.Decimal `json:"limit" example:"400" minimum:"0.01"`                // Monthly limit
	Color    string          `json:"color" example:"#FF6B6B"`                           // Display color
}

// BudgetCreate contains all fields a user can set for a new budget.
type BudgetCreate struct {
	Category string          `json:"category" example:"Food & Dining"`   // Category the limit applies to
	Limit    decimal.Decimal `json:"limit" example:"400" minimum:"0.01"` // Monthly limit, must be positive
	Color    string          `json:"color" example:"#FF6B6B" default:""` // Display color. Defaults to the category color
}

// Normalize trims whitespace from string fields.
func (c BudgetCreate) Normalize() BudgetCreate {
	c.Category = strings.TrimSpace(c.Category)
	c.Color = strings.TrimSpace(c.Color)
	return c
}

// Validate checks the fields that the user must provide correctly.
func (c BudgetCreate) Validate() error {
	if strings.TrimSpace(c.Category) == "" {
		return ErrBudgetCategoryEmpty
	}

	return ValidateLimit(c.Limit)
}

// ValidateLimit checks that a budget limit is usable.
func ValidateLimit(limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	return nil
}
