package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction from the user's point of view.
//
// swagger:enum TransactionType
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single dated money movement.
//
// Amount is always positive, the sign is carried by Type.
type Transaction struct {
	ID          string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the transaction
	Description string          `json:"description" example:"Uber Eats dinner"`            // Free text description
	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01"`             // The amount of the transaction
	Category    string          `json:"category" example:"Food & Dining"`                  // Category label
	Date        time.Time       `json:"date" example:"2026-10-12T18:43:00Z"`               // Date of the transaction
	Type        TransactionType `json:"type" example:"expense" enums:"income,expense"`     // Income or expense
}

// Signed returns the amount with the sign the transaction has on the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// TransactionCreate contains all fields a user can set for a new transaction.
type TransactionCreate struct {
	Description string          `json:"description" example:"Uber Eats dinner"`        // Free text description
	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01"`         // The amount of the transaction, must be positive
	Category    string          `json:"category" example:"Food & Dining" default:""`   // Category label. If empty, the category is suggested from the description
	Date        time.Time       `json:"date" example:"2026-10-12T18:43:00Z"`           // Date of the transaction. Defaults to now
	Type        TransactionType `json:"type" example:"expense" enums:"income,expense"` // Income or expense
}

// Normalize trims whitespace from string fields and sets the date to UTC,
// defaulting it to the current time.
func (c TransactionCreate) Normalize() TransactionCreate {
	c.Description = strings.TrimSpace(c.Description)
	c.Category = strings.TrimSpace(c.Category)
	c.Type = TransactionType(strings.ToLower(strings.TrimSpace(string(c.Type))))
	c.Date = UTC(c.Date)
	return c
}

// Validate checks the fields that the user must provide correctly.
func (c TransactionCreate) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return ErrDescriptionEmpty
	}

	if !c.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// Transaction returns the transaction for the create fields with the given ID.
func (c TransactionCreate) Transaction(id string) Transaction {
	return Transaction{
		ID:          id,
		Description: c.Description,
		Amount:      c.Amount,
		Category:    c.Category,
		Date:        c.Date,
		Type:        c.Type,
	}
}
