package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/finwise/backend/internal/category"
	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategories() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []category.Category(category.Defaults), response.Data)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	for _, path := range []string{"", "/totals", "/suggest"} {
		r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/categories"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestCategoryTotals() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Category: "Salary", Amount: decimal.NewFromInt(5000), Type: models.TypeIncome})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Groceries", Category: "Food & Dining", Amount: decimal.NewFromInt(100), Type: models.TypeExpense})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Restaurant", Category: "Food & Dining", Amount: decimal.NewFromInt(200), Type: models.TypeExpense})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Rent", Category: "Bills & Utilities", Amount: decimal.NewFromInt(100), Type: models.TypeExpense})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Bookstore", Category: "Education", Amount: decimal.NewFromInt(100), Type: models.TypeExpense})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryTotalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	// Highest total first, ties by name
	assert.Equal(suite.T(), "Food & Dining", response.Data[0].Name)
	assert.Equal(suite.T(), "Bills & Utilities", response.Data[1].Name)
	assert.Equal(suite.T(), "Education", response.Data[2].Name)

	assert.True(suite.T(), response.Data[0].Total.Equal(decimal.NewFromInt(300)))
	assert.True(suite.T(), response.Data[0].Percentage.Equal(decimal.NewFromInt(60)))
	assert.Equal(suite.T(), "#FF6B6B", response.Data[0].Color)
}

func (suite *TestSuiteStandard) TestCategorySuggest() {
	tests := []struct {
		description string
		category    string
		keyword     string
		matched     bool
		known       bool
	}{
		{"Uber Eats dinner", "Food & Dining", "uber eats", true, true},
		{"UBER to the airport", "Transportation", "uber", true, true},
		{"Monthly salary", "Salary", "salary", true, true},
		{"Mystery box", category.Other, "", false, true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.description, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/categories/suggest?description="+url.QueryEscape(tt.description), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SuggestionResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, v1.Suggestion{
				Category: tt.category,
				Color:    category.Defaults.Color(tt.category),
				Keyword:  tt.keyword,
				Matched:  tt.matched,
				Known:    tt.known,
			}, *response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestCategorySuggestMissingDescription() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories/suggest", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), "the description parameter must be set", test.DecodeError(suite.T(), r.Body.Bytes()))
}
