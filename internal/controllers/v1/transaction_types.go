package v1

import (
	"github.com/finwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/65392deb-5e92-4268-b114-297faad6cdce"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: resourceURL(c.GetString(contextURL), "transactions", model.ID),
		},
	}
}

type TransactionQueryFilter struct {
	Type string `form:"type" example:"expense" enums:"all,income,expense" default:"all"` // Type of transactions to return
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                                             // List of transactions, newest first
	Error *string       `json:"error" example:"the transaction filter must be one of 'all', 'income', 'expense'"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                               // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	t.Data = append(t.Data, TransactionResponse{Error: errorString(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the amount must be greater than zero"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                 // The Transaction data, if creation was successful
}
