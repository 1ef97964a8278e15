package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestTransaction creates a test transaction via the v1 API.
func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, create models.TransactionCreate, expectedStatus ...int) v1.TransactionResponse {
	if create.Date.IsZero() {
		create.Date = now
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", []models.TransactionCreate{create})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	return tr.Data[0]
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions/some-id", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := suite.createTestTransaction(suite.T(), models.TransactionCreate{
		Description: "Salary",
		Amount:      decimal.NewFromInt(1000),
		Category:    "Salary",
		Type:        models.TypeIncome,
	})

	suite.Require().NotNil(transaction.Data)
	assert.NotEmpty(suite.T(), transaction.Data.ID)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(suite.T(), "http://example.com/v1/transactions/"+transaction.Data.ID, transaction.Data.Links.Self)

	r := suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Salary", response.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsCreateClassifies() {
	transaction := suite.createTestTransaction(suite.T(), models.TransactionCreate{
		Description: "Uber Eats dinner",
		Amount:      decimal.NewFromFloat(14.03),
		Type:        models.TypeExpense,
	})

	assert.Equal(suite.T(), "Food & Dining", transaction.Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name   string
		create models.TransactionCreate
		err    error
	}{
		{"Empty description", models.TransactionCreate{Description: "  ", Amount: decimal.NewFromInt(1), Type: models.TypeExpense}, models.ErrDescriptionEmpty},
		{"Zero amount", models.TransactionCreate{Description: "Coffee", Type: models.TypeExpense}, models.ErrAmountNotPositive},
		{"Negative amount", models.TransactionCreate{Description: "Coffee", Amount: decimal.NewFromInt(-5), Type: models.TypeExpense}, models.ErrAmountNotPositive},
		{"Invalid type", models.TransactionCreate{Description: "Coffee", Amount: decimal.NewFromInt(5), Type: "transfer"}, models.ErrTransactionTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := suite.createTestTransaction(t, tt.create, http.StatusBadRequest)
			assert.Nil(t, transaction.Data)
			assert.Equal(t, tt.err.Error(), *transaction.Error)
		})
	}

	assert.Empty(suite.T(), suite.controller.Transactions.Snapshot())
}

func (suite *TestSuiteStandard) TestTransactionsCreateBatch() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []models.TransactionCreate{
		{Description: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome, Date: now},
		{Description: "", Amount: decimal.NewFromInt(5), Type: models.TypeExpense, Date: now},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.Equal(suite.T(), models.ErrDescriptionEmpty.Error(), *response.Data[1].Error)
	assert.Len(suite.T(), suite.controller.Transactions.Snapshot(), 1)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": "Not a number" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), "the request body must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsCreateDatabaseClosed() {
	suite.CloseDB()

	transaction := suite.createTestTransaction(suite.T(), models.TransactionCreate{
		Description: "Coffee",
		Amount:      decimal.NewFromInt(3),
		Type:        models.TypeExpense,
	}, http.StatusInternalServerError)

	assert.Equal(suite.T(), models.ErrGeneral.Error(), *transaction.Error)
}

func (suite *TestSuiteStandard) TestTransactionsGetNotFound() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/does-not-exist", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), models.ErrTransactionNotFound.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome, Date: now.AddDate(0, 0, -10)})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Rent", Amount: decimal.NewFromInt(700), Type: models.TypeExpense, Date: now.AddDate(0, 0, -5)})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Coffee", Amount: decimal.NewFromInt(3), Type: models.TypeExpense, Date: now.Add(-time.Hour)})

	tests := []struct {
		query        string
		descriptions []string
	}{
		{"", []string{"Coffee", "Rent", "Salary"}},
		{"?type=all", []string{"Coffee", "Rent", "Salary"}},
		{"?type=income", []string{"Salary"}},
		{"?type=expense", []string{"Coffee", "Rent"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := make([]string, 0)
			for _, transaction := range response.Data {
				descriptions = append(descriptions, transaction.Description)
			}
			assert.Equal(t, tt.descriptions, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidFilter() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=transfer", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrFilterInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Coffee", Amount: decimal.NewFromInt(3), Type: models.TypeExpense})

	r := suite.request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting again is not an error
	r = suite.request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
