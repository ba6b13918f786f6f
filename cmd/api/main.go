package main

import (
	"fmt"
	"net/http"
	"os"

	"costevida/internal/config"
	"costevida/internal/database"
	"costevida/internal/handlers"
	"costevida/internal/logger"
	"costevida/internal/middleware"
	"costevida/internal/services"
	"costevida/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "costevida/internal/docs" // Import swagger docs
)

// @title           Costevida API
// @version         1.0
// @description     Costevida tracks recurring and installment expenses, projecting them into monthly and yearly views with salary-relative summaries.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Named("api")

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	settingsService := services.NewSettingsService(db)
	expenseService := services.NewExpenseService(db, settingsService)
	categoryService := services.NewCategoryService(db)
	methodService := services.NewPaymentMethodService(db)
	cardService := services.NewCreditCardService(db)
	snapshotService := services.NewSnapshotService(db)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	methodHandler := handlers.NewPaymentMethodHandler(methodService)
	cardHandler := handlers.NewCreditCardHandler(cardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group, everything behind token verification
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware())

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/query", expenseHandler.QueryExpenses)
	expenses.GET("/summary", expenseHandler.GetSummary)
	expenses.GET("/monthly-totals", expenseHandler.GetMonthlyTotals)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Category routes
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Payment method routes
	methods := v1.Group("/payment-methods")
	methods.GET("", methodHandler.GetPaymentMethods)
	methods.POST("", methodHandler.CreatePaymentMethod)
	methods.PUT("/:id", methodHandler.UpdatePaymentMethod)
	methods.DELETE("/:id", methodHandler.DeletePaymentMethod)

	// Credit card routes
	cards := v1.Group("/credit-cards")
	cards.GET("", cardHandler.GetCreditCards)
	cards.POST("", cardHandler.CreateCreditCard)
	cards.DELETE("/:id", cardHandler.DeleteCreditCard)

	// Settings routes
	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.PutSettings)

	// Export / import
	v1.GET("/export", snapshotHandler.Export)
	v1.POST("/import", snapshotHandler.Import)

	log.Infof("Starting Costevida backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
