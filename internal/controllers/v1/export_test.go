package v1_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/finwise/backend/internal/export"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExport() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Category: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome, Date: now.AddDate(0, 0, -1)})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: `Dinner "Chez Nous"`, Category: "Food & Dining", Amount: decimal.NewFromFloat(42.5), Type: models.TypeExpense})

	tests := []struct {
		query       string
		contentType string
		filename    string
	}{
		{"", "text/csv; charset=utf-8", "finwise-transactions-2026-10-15.csv"},
		{"?format=csv", "text/csv; charset=utf-8", "finwise-transactions-2026-10-15.csv"},
		{"?format=json", "application/json", "finwise-transactions-2026-10-15.json"},
		{"?format=html", "text/html; charset=utf-8", "finwise-transactions-2026-10-15.html"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/export"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, tt.contentType, r.Header().Get("Content-Type"))
			assert.Equal(t, `attachment; filename="`+tt.filename+`"`, r.Header().Get("Content-Disposition"))
		})
	}
}

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Category: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome, Date: now.AddDate(0, 0, -1)})
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: `Dinner "Chez Nous"`, Category: "Food & Dining", Amount: decimal.NewFromFloat(42.5), Type: models.TypeExpense})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/export?format=csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	lines := strings.Split(strings.TrimSpace(r.Body.String()), "\n")
	assert.Equal(suite.T(), []string{
		"Date,Description,Category,Amount,Type",
		`2026-10-15,"Dinner ""Chez Nous""",Food & Dining,42.5,expense`,
		`2026-10-14,"Salary",Salary,1000,income`,
	}, lines)
}

func (suite *TestSuiteStandard) TestExportJSON() {
	suite.createTestTransaction(suite.T(), models.TransactionCreate{Description: "Salary", Category: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/export?format=json", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var exported []export.Transaction
	suite.Require().Nil(json.Unmarshal(r.Body.Bytes(), &exported))
	suite.Require().Len(exported, 1)
	assert.Equal(suite.T(), "Salary", exported[0].Description)
	assert.Equal(suite.T(), "2026-10-15", exported[0].FormattedDate)
}

func (suite *TestSuiteStandard) TestExportInvalidFormat() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/export?format=xlsx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), export.ErrFormatInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExportOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
