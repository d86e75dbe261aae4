package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/charts"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/money"
	"github.com/pocketledger/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// recentTransactionCount is the number of transactions shown on the
// dashboard overview.
const recentTransactionCount = 5

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)

	r.OPTIONS("/chart", OptionsDashboardChart)
	r.GET("/chart", GetDashboardChart)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Security		Bearer
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Security		Bearer
// @Router			/v1/dashboard/chart [options]
func OptionsDashboardChart(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the all-time balance, the month's income, expenses and expense breakdown by category, and the most recent transactions
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	DashboardResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Security		Bearer
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	month, err := dashboardMonth(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}

	balance, err := models.Balance(userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	income, expenses, err := models.MonthlySummary(userID(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	breakdown, err := models.CategoryBreakdown(userID(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	transactions, err := models.RecentTransactions(userID(c), recentTransactionCount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	recent := make([]Transaction, 0)
	for _, transaction := range transactions {
		recent = append(recent, newTransaction(transaction))
	}

	data := Dashboard{
		Month:             month,
		Balance:           balance,
		BalanceFormatted:  money.Format(balance),
		Income:            income,
		IncomeFormatted:   money.Format(income),
		Expenses:          expenses,
		ExpensesFormatted: money.Format(expenses),
		Breakdown:         breakdown,
		Recent:            recent,
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}

// @Summary		Get dashboard chart
// @Description	Renders the month's expense breakdown as a PNG bar chart. Returns 204 when the month has no categorized expenses.
// @Tags			Dashboard
// @Produce		image/png
// @Success		200
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Security		Bearer
// @Router			/v1/dashboard/chart [get]
func GetDashboardChart(c *gin.Context) {
	month, err := dashboardMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	breakdown, err := models.CategoryBreakdown(userID(c), month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	png, err := charts.BreakdownChart(month, breakdown)
	if err != nil {
		log.Error().Err(err).Str("request-id", requestid.Get(c)).Msg("rendering dashboard chart failed")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	// No categorized expenses, nothing to chart
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// dashboardMonth parses the required month query parameter.
func dashboardMonth(c *gin.Context) (types.Month, error) {
	var query QueryMonth
	err := c.ShouldBindQuery(&query)
	if err != nil || query.Month.IsZero() {
		return types.Month{}, errMonthNotSetInQuery
	}

	return types.MonthOf(query.Month), nil
}
