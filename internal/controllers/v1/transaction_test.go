package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestTransaction(login v1.Login, editable v1.TransactionEditable) v1.Transaction {
	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromFloat(17.23)
	}
	if editable.Description == "" {
		editable.Description = "Test transaction"
	}
	if editable.Type == "" {
		editable.Type = models.TypeExpense
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", editable, authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	login := suite.registerTestUser("jane")

	transaction := suite.createTestTransaction(login, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(3000),
		Description: "Salary",
		Type:        models.TypeIncome,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})

	suite.Assert().Equal("Salary", transaction.Description)
	suite.Assert().Equal(models.TypeIncome, transaction.Type)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromInt(3000)))
	suite.Assert().False(transaction.HasReceipt)
}

func (suite *TestSuiteStandard) TestTransactionCreateWithCategory() {
	login := suite.registerTestUser("jane")
	category := suite.createTestCategory(login, v1.CategoryEditable{Name: "Vacation"})

	transaction := suite.createTestTransaction(login, v1.TransactionEditable{
		Description: "Hotel",
		CategoryID:  &category.ID,
	})

	suite.Require().NotNil(transaction.CategoryName)
	suite.Assert().Equal("Vacation", *transaction.CategoryName)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	login := suite.registerTestUser("jane")

	tests := []struct {
		name string
		body v1.TransactionEditable
	}{
		{"amount zero", v1.TransactionEditable{Description: "Lunch", Type: models.TypeExpense}},
		{"amount negative", v1.TransactionEditable{Amount: decimal.NewFromInt(-5), Description: "Lunch", Type: models.TypeExpense}},
		{"type invalid", v1.TransactionEditable{Amount: decimal.NewFromInt(5), Description: "Lunch", Type: "transfer"}},
		{"no description", v1.TransactionEditable{Amount: decimal.NewFromInt(5), Type: models.TypeExpense}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", tt.body, authHeaders(login))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransactionCreateForeignCategory() {
	jane := suite.registerTestUser("jane")
	john := suite.registerTestUser("john")

	category := suite.createTestCategory(jane, v1.CategoryEditable{Name: "Vacation"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Amount:      decimal.NewFromInt(5),
		Description: "Sneaky",
		Type:        models.TypeExpense,
		CategoryID:  &category.ID,
	}, authHeaders(john))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionList() {
	login := suite.registerTestUser("jane")

	suite.createTestTransaction(login, v1.TransactionEditable{Description: "First"})
	suite.createTestTransaction(login, v1.TransactionEditable{Description: "Second"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionListScopedToUser() {
	jane := suite.registerTestUser("jane")
	john := suite.registerTestUser("john")

	suite.createTestTransaction(jane, v1.TransactionEditable{Description: "Jane's lunch"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", "", authHeaders(john))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionListFilterMonth() {
	login := suite.registerTestUser("jane")

	suite.createTestTransaction(login, v1.TransactionEditable{
		Description: "January",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(login, v1.TransactionEditable{
		Description: "February",
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-01", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("January", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestTransactionListFilterType() {
	login := suite.registerTestUser("jane")

	suite.createTestTransaction(login, v1.TransactionEditable{Description: "Salary", Type: models.TypeIncome})
	suite.createTestTransaction(login, v1.TransactionEditable{Description: "Lunch", Type: models.TypeExpense})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?type=income", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Salary", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestTransactionListFilterTypeInvalid() {
	login := suite.registerTestUser("jane")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?type=transfer", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionListFilterCategory() {
	login := suite.registerTestUser("jane")
	category := suite.createTestCategory(login, v1.CategoryEditable{Name: "Vacation"})

	suite.createTestTransaction(login, v1.TransactionEditable{Description: "Hotel", CategoryID: &category.ID})
	suite.createTestTransaction(login, v1.TransactionEditable{Description: "Lunch"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?category=%s", category.ID), "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Hotel", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestTransactionListPagination() {
	login := suite.registerTestUser("jane")

	for i := 0; i < 3; i++ {
		suite.createTestTransaction(login, v1.TransactionEditable{Description: fmt.Sprintf("Transaction %d", i)})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?offset=1&limit=1", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
	suite.Assert().Equal(uint(1), response.Pagination.Offset)
	suite.Assert().Equal(1, response.Pagination.Limit)
	suite.Assert().Equal(int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	login := suite.registerTestUser("jane")
	transaction := suite.createTestTransaction(login, v1.TransactionEditable{Description: "Lunch"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "Dinner",
	}, authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Dinner", response.Data.Description)

	// The amount was not part of the PATCH body and must be unchanged
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(17.23)))
}

func (suite *TestSuiteStandard) TestTransactionUpdateForeignCategory() {
	jane := suite.registerTestUser("jane")
	john := suite.registerTestUser("john")

	category := suite.createTestCategory(jane, v1.CategoryEditable{Name: "Vacation"})
	transaction := suite.createTestTransaction(john, v1.TransactionEditable{Description: "Lunch"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"categoryId": category.ID,
	}, authHeaders(john))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	login := suite.registerTestUser("jane")
	transaction := suite.createTestTransaction(login, v1.TransactionEditable{Description: "Lunch"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionOfOtherUserNotFound() {
	jane := suite.registerTestUser("jane")
	john := suite.registerTestUser("john")

	transaction := suite.createTestTransaction(jane, v1.TransactionEditable{Description: "Lunch"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "", authHeaders(john))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	login := suite.registerTestUser("jane")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", uuid.New()), "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
