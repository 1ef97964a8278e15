package export

import (
	"encoding/json"
	"io"

	"github.com/finwise/backend/internal/models"
)

// Transaction is the exported representation of a transaction.
type Transaction struct {
	models.Transaction
	FormattedDate string `json:"formattedDate" example:"2026-10-12"` // Date of the transaction in YYYY-MM-DD format
}

// JSON writes the transactions as an indented JSON array.
func JSON(w io.Writer, txns []models.Transaction) error {
	data := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		data = append(data, Transaction{
			Transaction:   t,
			FormattedDate: t.Date.UTC().Format(DateLayout),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
