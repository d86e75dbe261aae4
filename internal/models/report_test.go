package models_test

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// seedReportData creates a user with one income and two expenses across
// two months:
//
//	2024-01-05: +3000 income (Salary)
//	2024-01-10:  -450 expense (Food & Dining)
//	2024-02-01:   -80 expense (Transportation)
func (suite *TestSuiteStandard) seedReportData() models.User {
	user := suite.createTestUser(models.User{})

	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food & Dining"})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transportation"})

	suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(3000),
		Description: "Salary",
		Type:        models.TypeIncome,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})

	suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(450),
		Description: "Groceries",
		Type:        models.TypeExpense,
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:  &food.ID,
	})

	suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(80),
		Description: "Bus ticket",
		Type:        models.TypeExpense,
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:  &transport.ID,
	})

	return user
}

func (suite *TestSuiteStandard) TestBalance() {
	user := suite.seedReportData()

	balance, err := models.Balance(user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(balance.Equal(decimal.NewFromInt(2470)), "balance is %s, expected 2470", balance)
}

func (suite *TestSuiteStandard) TestBalanceNoTransactions() {
	user := suite.createTestUser(models.User{})

	balance, err := models.Balance(user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(balance.IsZero(), "balance is %s, expected 0", balance)
}

func (suite *TestSuiteStandard) TestBalanceScopedToUser() {
	user := suite.seedReportData()
	other := suite.createTestUser(models.User{Username: "john"})

	balance, err := models.Balance(other.ID)
	suite.Require().Nil(err)
	suite.Assert().True(balance.IsZero(), "balance of another user is %s, expected 0", balance)

	balance, err = models.Balance(user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(balance.Equal(decimal.NewFromInt(2470)))
}

func (suite *TestSuiteStandard) TestMonthlySummary() {
	user := suite.seedReportData()

	income, expenses, err := models.MonthlySummary(user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().True(income.Equal(decimal.NewFromInt(3000)), "january income is %s, expected 3000", income)
	suite.Assert().True(expenses.Equal(decimal.NewFromInt(450)), "january expenses are %s, expected 450", expenses)

	income, expenses, err = models.MonthlySummary(user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)
	suite.Assert().True(income.IsZero(), "february income is %s, expected 0", income)
	suite.Assert().True(expenses.Equal(decimal.NewFromInt(80)), "february expenses are %s, expected 80", expenses)
}

func (suite *TestSuiteStandard) TestMonthlySummaryEmptyMonth() {
	user := suite.seedReportData()

	income, expenses, err := models.MonthlySummary(user.ID, types.NewMonth(2023, 12))
	suite.Require().Nil(err)
	suite.Assert().True(income.IsZero())
	suite.Assert().True(expenses.IsZero())
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	user := suite.seedReportData()

	breakdown, err := models.CategoryBreakdown(user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Require().Len(breakdown, 1)
	suite.Assert().Equal("Food & Dining", breakdown[0].Name)
	suite.Assert().True(breakdown[0].Amount.Equal(decimal.NewFromInt(450)))
}

func (suite *TestSuiteStandard) TestCategoryBreakdownExcludesUncategorized() {
	user := suite.createTestUser(models.User{})

	// An uncategorized expense must count towards the expense total,
	// but not appear in the breakdown
	suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(99),
		Description: "Mystery purchase",
		Type:        models.TypeExpense,
		Date:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	})

	breakdown, err := models.CategoryBreakdown(user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Len(breakdown, 0)

	_, expenses, err := models.MonthlySummary(user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().True(expenses.Equal(decimal.NewFromInt(99)))
}

func (suite *TestSuiteStandard) TestCategoryBreakdownExcludesIncome() {
	user := suite.createTestUser(models.User{})
	salary := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Salary"})

	suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Amount:      decimal.NewFromInt(3000),
		Description: "Salary",
		Type:        models.TypeIncome,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:  &salary.ID,
	})

	breakdown, err := models.CategoryBreakdown(user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Len(breakdown, 0)
}

func (suite *TestSuiteStandard) TestRecentTransactions() {
	user := suite.createTestUser(models.User{})

	for i := 1; i <= 7; i++ {
		suite.createTestTransaction(models.Transaction{
			UserID:      user.ID,
			Amount:      decimal.NewFromInt(int64(i)),
			Description: "Transaction",
			Type:        models.TypeExpense,
		})
	}

	transactions, err := models.RecentTransactions(user.ID, 5)
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 5)
}

func (suite *TestSuiteStandard) TestRecentTransactionsOrder() {
	user := suite.createTestUser(models.User{})

	// The effective date of the first transaction is newer, but the
	// recent list orders by creation time
	first := suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: "Created first",
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	second := suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: "Created second",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	// Force distinct creation timestamps
	err := models.DB.Model(&first).Update("created_at", time.Now().Add(-time.Hour)).Error
	suite.Require().Nil(err)

	transactions, err := models.RecentTransactions(user.ID, 5)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal(second.ID, transactions[0].ID)
	suite.Assert().Equal(first.ID, transactions[1].ID)
}
