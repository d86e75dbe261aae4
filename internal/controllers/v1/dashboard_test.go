package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

// seedDashboardData creates a user with transactions across two months.
func (suite *TestSuiteStandard) seedDashboardData() v1.Login {
	login := suite.registerTestUser("jane")
	food := suite.createTestCategory(login, v1.CategoryEditable{Name: "Food"})
	transport := suite.createTestCategory(login, v1.CategoryEditable{Name: "Transport"})

	suite.createTestTransaction(login, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(3000),
		Description: "Salary",
		Type:        models.TypeIncome,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(login, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(450),
		Description: "Groceries",
		Type:        models.TypeExpense,
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:  &food.ID,
	})
	suite.createTestTransaction(login, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(80),
		Description: "Bus ticket",
		Type:        models.TypeExpense,
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:  &transport.ID,
	})

	return login
}

func (suite *TestSuiteStandard) TestDashboard() {
	login := suite.seedDashboardData()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?month=2024-01", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	// The balance covers all months, income and expenses only January
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(2470)), "balance is %s", response.Data.Balance)
	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(3000)))
	suite.Assert().True(response.Data.Expenses.Equal(decimal.NewFromInt(450)))

	suite.Assert().Equal("$2,470.00", response.Data.BalanceFormatted)
	suite.Assert().Equal("$3,000.00", response.Data.IncomeFormatted)
	suite.Assert().Equal("$450.00", response.Data.ExpensesFormatted)

	suite.Require().Len(response.Data.Breakdown, 1)
	suite.Assert().Equal("Food", response.Data.Breakdown[0].Name)
	suite.Assert().True(response.Data.Breakdown[0].Amount.Equal(decimal.NewFromInt(450)))

	suite.Assert().Len(response.Data.Recent, 3)
}

func (suite *TestSuiteStandard) TestDashboardEmptyMonth() {
	login := suite.seedDashboardData()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?month=2023-06", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Income.IsZero())
	suite.Assert().True(response.Data.Expenses.IsZero())
	suite.Assert().Len(response.Data.Breakdown, 0)

	// The all-time balance is not affected by the month selection
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(2470)))
}

func (suite *TestSuiteStandard) TestDashboardMonthRequired() {
	login := suite.registerTestUser("jane")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the month query parameter must be set", *response.Error)
}

func (suite *TestSuiteStandard) TestDashboardMonthInvalid() {
	login := suite.registerTestUser("jane")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?month=January", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDashboardChart() {
	login := suite.seedDashboardData()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard/chart?month=2024-01", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("image/png", recorder.Header().Get("Content-Type"))
	suite.Assert().NotEmpty(recorder.Body.Bytes())
}

func (suite *TestSuiteStandard) TestDashboardChartNoData() {
	login := suite.registerTestUser("jane")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard/chart?month=2024-01", "", authHeaders(login))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
