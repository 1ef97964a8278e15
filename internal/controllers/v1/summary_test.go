package v1_test

import (
	"net/http"

	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.True(suite.T(), response.Data.SavingsRate.IsZero())
	assert.Equal(suite.T(), 0, response.Data.TransactionCount)
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Groceries", Amount: decimal.NewFromInt(250), Type: models.TypeExpense})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(750)), "Balance is %s", response.Data.Balance)
	assert.True(suite.T(), response.Data.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), response.Data.Expenses.Equal(decimal.NewFromInt(250)))
	assert.True(suite.T(), response.Data.SavingsRate.Equal(decimal.NewFromInt(75)), "Savings rate is %s", response.Data.SavingsRate)
	assert.Equal(suite.T(), 2, response.Data.TransactionCount)
	assert.Equal(suite.T(), 1, response.Data.IncomeCount)
	assert.Equal(suite.T(), 1, response.Data.ExpenseCount)
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
