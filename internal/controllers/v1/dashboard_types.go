package v1

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Dashboard aggregates the numbers for a user's overview page.
type Dashboard struct {
	Month types.Month `json:"month" example:"2024-01-01T00:00:00Z"` // The month the summary covers

	Balance          decimal.Decimal `json:"balance" example:"2470"`               // All-time balance: total income minus total expenses
	BalanceFormatted string          `json:"balanceFormatted" example:"$2,470.00"` // The balance as a display string

	Income            decimal.Decimal `json:"income" example:"3000"`               // Summed income of the month
	IncomeFormatted   string          `json:"incomeFormatted" example:"$3,000.00"` // The income as a display string
	Expenses          decimal.Decimal `json:"expenses" example:"450"`              // Summed expenses of the month
	ExpensesFormatted string          `json:"expensesFormatted" example:"$450.00"` // The expenses as a display string

	Breakdown []models.CategoryAmount `json:"breakdown"` // Expense sum per category for the month
	Recent    []Transaction           `json:"recent"`    // The most recently created transactions
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                  // The dashboard data
	Error *string    `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}
