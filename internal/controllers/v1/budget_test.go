package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestBudget creates a test budget via the v1 API.
func (suite *TestSuiteStandard) createTestBudget(t *testing.T, create models.BudgetCreate, expectedStatus ...int) v1.BudgetResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/budgets", create)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var br v1.BudgetResponse
	test.DecodeResponse(t, &r, &br)

	return br
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Shopping", Limit: decimal.NewFromInt(200)})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/budgets", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Utilization", "http://example.com/v1/budgets/utilization", http.StatusNoContent, "OPTIONS, GET"},
		{"Alerts", "http://example.com/v1/budgets/alerts", http.StatusNoContent, "OPTIONS, GET"},
		{"Existing", budget.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH"},
		{"Does not exist", "http://example.com/v1/budgets/does-not-exist", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Food & Dining", Limit: decimal.NewFromInt(400)})

	suite.Require().NotNil(budget.Data)
	assert.Equal(suite.T(), "#FF6B6B", budget.Data.Color, "Budget color does not default to the category color")
	assert.Equal(suite.T(), "http://example.com/v1/budgets/"+budget.Data.ID, budget.Data.Links.Self)

	custom := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Food & Dining", Limit: decimal.NewFromInt(50), Color: "#000000"})
	assert.Equal(suite.T(), "#000000", custom.Data.Color)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	assert.Equal(suite.T(), budget.Data.ID, list.Data[0].ID)
	assert.Equal(suite.T(), custom.Data.ID, list.Data[1].ID)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name   string
		create models.BudgetCreate
		err    error
	}{
		{"No category", models.BudgetCreate{Limit: decimal.NewFromInt(10)}, models.ErrBudgetCategoryEmpty},
		{"Zero limit", models.BudgetCreate{Category: "Travel"}, models.ErrBudgetLimitNotPositive},
		{"Negative limit", models.BudgetCreate{Category: "Travel", Limit: decimal.NewFromInt(-10)}, models.ErrBudgetLimitNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := suite.createTestBudget(t, tt.create, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), *budget.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetNotFound() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/does-not-exist", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), models.ErrBudgetNotFound.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBudgetsUpdateLimit() {
	budget := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Travel", Limit: decimal.NewFromInt(300)})

	r := suite.request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{"limit": 450})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Limit.Equal(decimal.NewFromInt(450)))

	r = suite.request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Limit.Equal(decimal.NewFromInt(450)))
}

func (suite *TestSuiteStandard) TestBudgetsUpdateLimitInvalid() {
	budget := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Travel", Limit: decimal.NewFromInt(300)})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Zero limit", budget.Data.Links.Self, map[string]any{"limit": 0}, http.StatusBadRequest},
		{"Negative limit", budget.Data.Links.Self, map[string]any{"limit": -1}, http.StatusBadRequest},
		{"Broken body", budget.Data.Links.Self, `{ "limit": "lots" }`, http.StatusBadRequest},
		{"Does not exist", "http://example.com/v1/budgets/does-not-exist", map[string]any{"limit": 10}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	stored, err := suite.controller.Budgets.Get(budget.Data.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), stored.Limit.Equal(decimal.NewFromInt(300)), "Limit was changed by an invalid request")
}

func (suite *TestSuiteStandard) TestBudgetsUtilizationAndAlerts() {
	food := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Food & Dining", Limit: decimal.NewFromInt(400)})
	travel := suite.createTestBudget(suite.T(), models.BudgetCreate{Category: "Travel", Limit: decimal.NewFromInt(1000)})

	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Groceries", Category: "Food & Dining", Amount: decimal.NewFromInt(380), Type: models.TypeExpense})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Restaurant", Category: "Food & Dining", Amount: decimal.NewFromInt(40), Type: models.TypeExpense})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Hotel", Category: "Travel", Amount: decimal.NewFromInt(100), Type: models.TypeExpense})

	// Last month does not count
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Flight", Category: "Travel", Amount: decimal.NewFromInt(900), Type: models.TypeExpense, Date: now.AddDate(0, -1, 0)})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/utilization", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var utilization v1.UtilizationListResponse
	test.DecodeResponse(suite.T(), &r, &utilization)
	suite.Require().Len(utilization.Data, 2)

	assertUtilization := func(u finance.Utilization, id string, spent, remaining, percentage int64) {
		assert.Equal(suite.T(), id, u.ID)
		assert.True(suite.T(), u.Spent.Equal(decimal.NewFromInt(spent)), "Spent is %s", u.Spent)
		assert.True(suite.T(), u.Remaining.Equal(decimal.NewFromInt(remaining)), "Remaining is %s", u.Remaining)
		assert.True(suite.T(), u.Percentage.Equal(decimal.NewFromInt(percentage)), "Percentage is %s", u.Percentage)
	}

	assertUtilization(utilization.Data[0], food.Data.ID, 420, 0, 100)
	assertUtilization(utilization.Data[1], travel.Data.ID, 100, 900, 10)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/alerts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var alerts v1.UtilizationListResponse
	test.DecodeResponse(suite.T(), &r, &alerts)
	suite.Require().Len(alerts.Data, 1)
	assert.Equal(suite.T(), food.Data.ID, alerts.Data[0].ID)
	assert.True(suite.T(), alerts.Data[0].RawPercentage.Equal(decimal.NewFromInt(105)))
}

func (suite *TestSuiteStandard) TestBudgetsAlertsEmpty() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/alerts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, r.Body.String())
}
