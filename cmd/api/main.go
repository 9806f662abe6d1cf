package main

import (
	"fmt"
	"net/http"
	"os"

	"pennywise/internal/config"
	"pennywise/internal/database"
	"pennywise/internal/handlers"
	"pennywise/internal/logger"
	"pennywise/internal/middleware"
	"pennywise/internal/services"
	"pennywise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pennywise/internal/docs" // Import swagger docs
)

// @title           Pennywise API
// @version         1.0
// @description     Pennywise is a personal budgeting application that tracks income, expenses and reusable budget templates per profile.
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
	log := logger.Get()

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
	profileService := services.NewProfileService(db)
	incomeService := services.NewIncomeService(db)
	additionalIncomeService := services.NewAdditionalIncomeService(db)
	expenseService := services.NewExpenseService(db)
	templateService := services.NewTemplateService(db)
	budgetService := services.NewBudgetService(db, expenseService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(profileService, auditService)
	profileHandler := handlers.NewProfileHandler(profileService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	additionalIncomeHandler := handlers.NewAdditionalIncomeHandler(additionalIncomeService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	templateHandler := handlers.NewTemplateHandler(templateService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Profile
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.UpdateProfile)
	protected.GET("/profile/:id", profileHandler.GetProfileSummary)

	// Income routes
	income := protected.Group("/income")
	income.GET("", incomeHandler.ListIncome)
	income.POST("", incomeHandler.CreateIncome)
	income.PATCH("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	// Additional income routes
	additionalIncome := protected.Group("/additional-income")
	additionalIncome.POST("", additionalIncomeHandler.CreateAdditionalIncome)
	additionalIncome.DELETE("", additionalIncomeHandler.BulkDeleteAdditionalIncome)
	additionalIncome.PATCH("/:id", additionalIncomeHandler.UpdateAdditionalIncome)
	additionalIncome.DELETE("/:id", additionalIncomeHandler.DeleteAdditionalIncome)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.BulkInsertExpenses)
	expenses.DELETE("", expenseHandler.BulkDeleteExpenses)
	expenses.PATCH("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.POST("/validate", expenseHandler.ValidateBudget)

	// Budget template routes
	templates := protected.Group("/budget-templates")
	templates.GET("", templateHandler.ListTemplates)
	templates.POST("", templateHandler.CreateTemplate)

	protected.GET("/template-expenses", templateHandler.ListTemplateExpenses)

	// Budget generation
	protected.POST("/budgets/generate", budgetHandler.GenerateBudget)

	log.Infof("Starting Pennywise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
