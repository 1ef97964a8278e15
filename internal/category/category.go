// Package category holds the known transaction categories and the
// classifier that suggests a category from a transaction description.
package category

import "github.com/finwise/backend/internal/models"

// Other is the catch-all category.
const Other = "Other"

// UnknownColor is used for categories that are not part of the category set.
const UnknownColor = "#95A5A6"

// Category is a label bucketing transactions, with its display color.
type Category struct {
	Name  string                 `json:"name" yaml:"name" example:"Food & Dining"`                  // Name of the category
	Color string                 `json:"color" yaml:"color" example:"#FF6B6B"`                      // Display color
	Type  models.TransactionType `json:"type" yaml:"type" example:"expense" enums:"income,expense"` // Type of transaction the category is meant for
}

// Defaults is the category set used when no rules file is configured.
var Defaults = Set{
	{Name: "Food & Dining", Color: "#FF6B6B", Type: models.TypeExpense},
	{Name: "Shopping", Color: "#4ECDC4", Type: models.TypeExpense},
	{Name: "Transportation", Color: "#45B7D1", Type: models.TypeExpense},
	{Name: "Entertainment", Color: "#96CEB4", Type: models.TypeExpense},
	{Name: "Bills & Utilities", Color: "#FFEAA7", Type: models.TypeExpense},
	{Name: "Healthcare", Color: "#DDA0DD", Type: models.TypeExpense},
	{Name: "Education", Color: "#98D8C8", Type: models.TypeExpense},
	{Name: "Travel", Color: "#F7DC6F", Type: models.TypeExpense},
	{Name: "Salary", Color: "#82E0AA", Type: models.TypeIncome},
	{Name: "Freelance", Color: "#85C1E9", Type: models.TypeIncome},
	{Name: "Investments", Color: "#F8C471", Type: models.TypeIncome},
	{Name: Other, Color: "#BDC3C7", Type: models.TypeExpense},
}

// Set is an ordered list of categories.
type Set []Category

// Color returns the color of the named category or UnknownColor.
func (s Set) Color(name string) string {
	for _, c := range s {
		if c.Name == name {
			return c.Color
		}
	}

	return UnknownColor
}

// Names returns the category names in order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, c := range s {
		names = append(names, c.Name)
	}

	return names
}
