package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/Alejandro-Val/FinanceTracker/handlers"
	"github.com/Alejandro-Val/FinanceTracker/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupTransactionRoutes sets up the protected ledger routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, ledger *services.LedgerService) {
	h := handlers.NewTransactionHandler(ledger)

	rg.GET("/transactions", h.GetTransactions)
	rg.GET("/transactions/latest", h.GetLatestTransactions)
	rg.POST("/transactions", h.CreateTransaction)
	rg.PUT("/transactions/:id", h.UpdateTransaction)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)
}

// SetupCategoryRoutes sets up the protected category routes.
func SetupCategoryRoutes(rg *gin.RouterGroup, db *sql.DB, resolver *services.OptionResolver, broker *services.Broker) {
	h := &handlers.CategoryHandler{DB: db, Resolver: resolver, Broker: broker}

	rg.GET("/categories", h.GetCategories)
	rg.GET("/categories/options", h.GetCategoryOptions)
	rg.POST("/categories", h.CreateCategory)
	rg.PUT("/categories/:id", h.UpdateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)
}

// SetupAccountRoutes sets up the protected account routes.
func SetupAccountRoutes(rg *gin.RouterGroup, db *sql.DB, resolver *services.OptionResolver, broker *services.Broker) {
	h := &handlers.AccountHandler{DB: db, Resolver: resolver, Broker: broker}

	rg.GET("/accounts", h.GetAccounts)
	rg.GET("/accounts/options", h.GetAccountOptions)
	rg.POST("/accounts", h.CreateAccount)
	rg.PUT("/accounts/:id", h.UpdateAccount)
	rg.DELETE("/accounts/:id", h.DeleteAccount)
}

// SetupStatusRoutes sets up the protected status routes.
func SetupStatusRoutes(rg *gin.RouterGroup, resolver *services.OptionResolver) {
	h := &handlers.StatusHandler{Resolver: resolver}

	rg.GET("/statuses", h.GetStatuses)
}

// SetupReportRoutes sets up the protected reporting routes.
func SetupReportRoutes(rg *gin.RouterGroup, reports *services.ReportService) {
	h := handlers.NewReportHandler(reports)

	rg.GET("/reports/overview", h.GetOverview)
	rg.GET("/reports/income", h.GetIncomeAnalysis)
	rg.GET("/reports/expense", h.GetExpenseAnalysis)
	rg.GET("/reports/stats", h.GetMonthlyStats)
}
