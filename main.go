package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Alejandro-Val/FinanceTracker/config"
	"github.com/Alejandro-Val/FinanceTracker/handlers"
	"github.com/Alejandro-Val/FinanceTracker/middleware"
	"github.com/Alejandro-Val/FinanceTracker/routes"
	"github.com/Alejandro-Val/FinanceTracker/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	broker := services.NewBroker()
	counters := services.NewCounterService(db)
	resolver := services.NewOptionResolver(db)
	ledger := services.NewLedgerService(db, counters, resolver, broker)
	reports := services.NewReportService(db, resolver)

	go scheduleDriftReports(counters)

	wsHandler := handlers.NewWSHandler(broker)
	defer wsHandler.Close()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log.Printf("📨 %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	})

	router.Use(middleware.RateLimiter())

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, db)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			routes.SetupTransactionRoutes(protected, ledger)
			routes.SetupCategoryRoutes(protected, db, resolver, broker)
			routes.SetupAccountRoutes(protected, db, resolver, broker)
			routes.SetupStatusRoutes(protected, resolver)
			routes.SetupReportRoutes(protected, reports)
			protected.GET("/ws", wsHandler.HandleWS)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// scheduleDriftReports periodically compares the cached transaction counters
// against the true reference counts and logs any divergence. Counters are
// best-effort, so drift is possible after a partial failure; this makes it
// detectable without repairing anything.
func scheduleDriftReports(counters *services.CounterService) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	report := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		counters.ReportDrift(ctx)
	}

	report()
	for range ticker.C {
		report()
	}
}
