package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	login := suite.registerTestUser("jane")

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1/register", "POST"},
		{"http://example.com/v1/login", "POST, DELETE"},
		{"http://example.com/v1/categories", "GET, POST"},
		{"http://example.com/v1/transactions", "GET, POST"},
		{"http://example.com/v1/dashboard", "GET"},
		{"http://example.com/v1/dashboard/chart", "GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "", authHeaders(login))

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsHeaderDetail() {
	login := suite.registerTestUser("jane")
	category := suite.createTestCategory(login, v1.CategoryEditable{Name: "Vacation"})
	transaction := suite.createTestTransaction(login, v1.TransactionEditable{Description: "Lunch"})

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "GET, PATCH, DELETE"},
		{fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "GET, PATCH, DELETE"},
		{fmt.Sprintf("http://example.com/v1/transactions/%s/receipt", transaction.ID), "GET, POST, DELETE"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "", authHeaders(login))

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
