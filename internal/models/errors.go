package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction errors
var (
	ErrTransactionNotFound    = fmt.Errorf("%w transaction matching your query", ErrResourceNotFound)
	ErrDescriptionEmpty       = errors.New("the description must not be empty")
	ErrAmountNotPositive      = errors.New("the amount must be greater than zero")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of 'income', 'expense'")
	ErrFilterInvalid          = errors.New("the transaction filter must be one of 'all', 'income', 'expense'")
)

// Budget errors
var (
	ErrBudgetNotFound         = fmt.Errorf("%w budget matching your query", ErrResourceNotFound)
	ErrBudgetCategoryEmpty    = errors.New("the budget category must not be empty")
	ErrBudgetLimitNotPositive = errors.New("the budget limit must be greater than zero")
)
