package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler. Backup is nil when no object storage
// is configured.
type Handlers struct {
	Budget     *BudgetHandler
	Category   *CategoryHandler
	Income     *IncomeHandler
	Expense    *ExpenseHandler
	Loan       *LoanHandler
	Savings    *SavingsHandler
	Investment *InvestmentHandler
	Backup     *BackupHandler
	WebSocket  *WebSocketHandler
}

// RegisterRoutes sets up all API routes. Middleware passed in apiMiddleware
// wraps everything under /api.
func RegisterRoutes(e *echo.Echo, h Handlers, apiMiddleware ...echo.MiddlewareFunc) {
	// API docs
	e.GET("/swagger/openapi3.json", ServeOpenAPI3Spec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Change events
	if h.WebSocket != nil {
		e.GET("/ws", h.WebSocket.HandleWS)
	}

	api := e.Group("/api", apiMiddleware...)

	// API version 1
	v1 := api.Group("/v1")

	v1.GET("/snapshot", h.Budget.GetSnapshot)

	// Computed views
	budget := v1.Group("/budget")
	budget.GET("/summary", h.Budget.GetSummary)
	budget.GET("/emergency-fund", h.Budget.GetEmergencyFundStatus)
	budget.GET("/breakdown", h.Budget.GetCategoryBreakdown)
	budget.GET("/allocation", h.Budget.GetAllocation)
	budget.GET("/overview", h.Budget.GetOverview)

	// Income routes
	income := v1.Group("/income")
	income.GET("", h.Income.ListIncome)
	income.POST("", h.Income.CreateIncome)
	income.PUT("", h.Income.ReplaceIncome)
	income.DELETE("/:id", h.Income.DeleteIncome)
	income.PATCH("/:id/toggle-ignored", h.Income.ToggleIgnored)

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.GET("", h.Expense.ListExpenses)
	expenses.POST("", h.Expense.CreateExpense)
	expenses.PUT("", h.Expense.ReplaceExpenses)
	expenses.POST("/sort", h.Expense.SortExpenses)
	expenses.PUT("/:id", h.Expense.UpdateExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)
	expenses.PATCH("/:id/toggle-ignored", h.Expense.ToggleIgnored)

	// Loan routes
	loans := v1.Group("/loans")
	loans.GET("", h.Loan.ListLoans)
	loans.POST("", h.Loan.CreateLoan)
	loans.PUT("", h.Loan.ReplaceLoans)
	loans.GET("/categories", h.Loan.GetLoanCategories)
	loans.POST("/sort", h.Loan.SortLoans)
	loans.GET("/:id", h.Loan.GetLoan)
	loans.PUT("/:id", h.Loan.UpdateLoan)
	loans.DELETE("/:id", h.Loan.DeleteLoan)
	loans.PATCH("/:id/toggle-ignored", h.Loan.ToggleIgnored)

	// Savings routes
	savings := v1.Group("/savings")
	savings.GET("", h.Savings.GetSavings)
	savings.PUT("", h.Savings.ReplaceSavings)
	savings.PUT("/emergency-fund", h.Savings.SetEmergencyFund)
	savings.POST("/goals", h.Savings.CreateGoal)
	savings.PUT("/goals/:id", h.Savings.UpdateGoal)
	savings.DELETE("/goals/:id", h.Savings.DeleteGoal)
	savings.PATCH("/goals/:id/toggle-ignored", h.Savings.ToggleGoalIgnored)

	// Investment routes
	investments := v1.Group("/investments")
	investments.GET("", h.Investment.GetInvestments)
	investments.PUT("", h.Investment.ReplaceInvestments)
	investments.POST("/accounts", h.Investment.CreateInvestment)
	investments.PUT("/accounts/:id", h.Investment.UpdateInvestment)
	investments.DELETE("/accounts/:id", h.Investment.DeleteInvestment)
	investments.PATCH("/accounts/:id/toggle-ignored", h.Investment.ToggleInvestmentIgnored)
	investments.POST("/pensions", h.Investment.CreatePension)
	investments.PUT("/pensions/:id", h.Investment.UpdatePension)
	investments.DELETE("/pensions/:id", h.Investment.DeletePension)
	investments.PATCH("/pensions/:id/toggle-ignored", h.Investment.TogglePensionIgnored)

	// Backup routes
	if h.Backup != nil {
		backups := v1.Group("/backups")
		backups.GET("", h.Backup.ListBackups)
		backups.POST("", h.Backup.CreateBackup)
	}

	// Whole-category documents
	api.GET("/:category", h.Category.GetCategory)
	api.POST("/:category", h.Category.SaveCategory)
}
