package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pennywise/internal/handlers"
	"pennywise/internal/logger"
	"pennywise/internal/middleware"
	"pennywise/internal/models"
	"pennywise/internal/services"
	"pennywise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Profile{},
		&models.Income{},
		&models.AdditionalIncome{},
		&models.Expense{},
		&models.BudgetTemplate{},
		&models.TemplateExpense{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	profileService := services.NewProfileService(db)
	incomeService := services.NewIncomeService(db)
	additionalIncomeService := services.NewAdditionalIncomeService(db)
	expenseService := services.NewExpenseService(db)
	templateService := services.NewTemplateService(db)
	budgetService := services.NewBudgetService(db, expenseService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(profileService, auditService)
	profileHandler := handlers.NewProfileHandler(profileService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	additionalIncomeHandler := handlers.NewAdditionalIncomeHandler(additionalIncomeService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	templateHandler := handlers.NewTemplateHandler(templateService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.UpdateProfile)
	protected.GET("/profile/:id", profileHandler.GetProfileSummary)

	income := protected.Group("/income")
	income.GET("", incomeHandler.ListIncome)
	income.POST("", incomeHandler.CreateIncome)
	income.PATCH("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	additionalIncome := protected.Group("/additional-income")
	additionalIncome.POST("", additionalIncomeHandler.CreateAdditionalIncome)
	additionalIncome.DELETE("", additionalIncomeHandler.BulkDeleteAdditionalIncome)
	additionalIncome.PATCH("/:id", additionalIncomeHandler.UpdateAdditionalIncome)
	additionalIncome.DELETE("/:id", additionalIncomeHandler.DeleteAdditionalIncome)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.BulkInsertExpenses)
	expenses.DELETE("", expenseHandler.BulkDeleteExpenses)
	expenses.PATCH("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.POST("/validate", expenseHandler.ValidateBudget)

	templates := protected.Group("/budget-templates")
	templates.GET("", templateHandler.ListTemplates)
	templates.POST("", templateHandler.CreateTemplate)

	protected.GET("/template-expenses", templateHandler.ListTemplateExpenses)

	protected.POST("/budgets/generate", budgetHandler.GenerateBudget)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// floatID renders a JSON-decoded numeric ID as a path segment.
func floatID(id float64) string {
	return fmt.Sprintf("%d", int(id))
}

// registerProfile registers a profile, logs it in and returns the access
// token plus the new profile ID.
func (app *testApp) registerProfile(t *testing.T, email, password string) (accessToken string, profileID float64) {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q,"full_name":"Test Profile"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	profile := parseJSON(t, rec)

	loginBody := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec = app.request("POST", "/api/v1/auth/login", loginBody, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	return result["access_token"].(string), profile["id"].(float64)
}
