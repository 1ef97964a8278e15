package v1_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/narrator"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type failingNarrator struct{}

func (failingNarrator) Narrate(context.Context, []models.Transaction, narrator.Kind) (string, error) {
	return "", errors.New("model overloaded")
}

func (suite *TestSuiteStandard) TestInsightsNoTransactions() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), narrator.KindInsights, response.Data.Kind)
	assert.Contains(suite.T(), response.Data.Text, "No transactions recorded yet")
}

func (suite *TestSuiteStandard) TestInsightsKinds() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Category: "Salary", Amount: decimal.NewFromInt(5000), Type: models.TypeIncome})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Rent", Category: "Bills & Utilities", Amount: decimal.NewFromInt(3000), Type: models.TypeExpense})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Groceries", Category: "Food & Dining", Amount: decimal.NewFromInt(1000), Type: models.TypeExpense})

	tests := []struct {
		kind     string
		expected narrator.Kind
		contains string
	}{
		{"insights", narrator.KindInsights, "higher than recommended"},
		{"predictions", narrator.KindPredictions, "seasonal increase"},
		{"tips", narrator.KindTips, "Review your Bills & Utilities spending"},
		{"TIPS", narrator.KindTips, "keep your expenses below 70.0% of your income"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.kind, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/insights?kind="+tt.kind, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InsightResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.expected, response.Data.Kind)
			assert.Contains(t, response.Data.Text, tt.contains)

			for _, line := range strings.Split(response.Data.Text, "\n") {
				assert.True(t, strings.HasPrefix(line, "• "), "Line %q is not a bullet point", line)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInsightsInvalidKind() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/insights?kind=horoscope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), narrator.ErrKindInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestInsightsFallback() {
	co := suite.controller
	co.Narrator = narrator.WithFallback(failingNarrator{}, co.Narrator)
	suite.route(co)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/insights?kind=tips", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestInsightsUnavailable() {
	co := suite.controller
	co.Narrator = narrator.WithFallback(failingNarrator{}, failingNarrator{})
	suite.route(co)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
	assert.Equal(suite.T(), narrator.ErrNarrationUnavailable.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
