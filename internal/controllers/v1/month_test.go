package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/types"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonths() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Amount: decimal.NewFromInt(3000), Type: models.TypeIncome})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Rent", Amount: decimal.NewFromInt(900), Type: models.TypeExpense, Date: now.AddDate(0, -2, 0)})

	// Outside of the window
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Rent", Amount: decimal.NewFromInt(900), Type: models.TypeExpense, Date: now.AddDate(-1, 0, 0)})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/months?months=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlySeriesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), []types.Month{types.NewMonth(2026, 8), types.NewMonth(2026, 9), types.NewMonth(2026, 10)}, response.Data.Months)
	assert.Equal(suite.T(), []string{"Aug 2026", "Sep 2026", "Oct 2026"}, response.Data.Labels)

	expectedIncome := []int64{0, 0, 3000}
	expectedExpenses := []int64{900, 0, 0}
	for i := range response.Data.Months {
		assert.True(suite.T(), response.Data.IncomeData[i].Equal(decimal.NewFromInt(expectedIncome[i])), "Income for %s is %s", response.Data.Labels[i], response.Data.IncomeData[i])
		assert.True(suite.T(), response.Data.ExpenseData[i].Equal(decimal.NewFromInt(expectedExpenses[i])), "Expenses for %s is %s", response.Data.Labels[i], response.Data.ExpenseData[i])
	}
}

func (suite *TestSuiteStandard) TestMonthsWindow() {
	tests := []struct {
		query  string
		status int
		length int
	}{
		{"", http.StatusOK, 6},
		{"?months=0", http.StatusOK, 6},
		{"?months=-4", http.StatusOK, 6},
		{"?months=1", http.StatusOK, 1},
		{"?months=120", http.StatusOK, 120},
		{"?months=121", http.StatusBadRequest, 0},
		{"?months=many", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/months"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MonthlySeriesResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.Nil(t, response.Data)
				assert.NotNil(t, response.Error)
				return
			}

			assert.Len(t, response.Data.Months, tt.length)
			assert.True(t, response.Data.Months[tt.length-1].Equal(types.NewMonth(2026, 10)), "Window does not end with the current month")
		})
	}
}
