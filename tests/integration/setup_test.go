package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"costevida/internal/config"
	"costevida/internal/handlers"
	"costevida/internal/logger"
	"costevida/internal/middleware"
	"costevida/internal/models"
	"costevida/internal/services"
	"costevida/internal/uuid"
	"costevida/internal/validator"
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
		&models.Expense{},
		&models.Settings{},
		&models.Category{},
		&models.PaymentMethod{},
		&models.CreditCard{},
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
	settingsService := services.NewSettingsService(db)
	expenseService := services.NewExpenseService(db, settingsService)
	categoryService := services.NewCategoryService(db)
	methodService := services.NewPaymentMethodService(db)
	cardService := services.NewCreditCardService(db)
	snapshotService := services.NewSnapshotService(db)

	// Handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	methodHandler := handlers.NewPaymentMethodHandler(methodService)
	cardHandler := handlers.NewCreditCardHandler(cardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware())

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/query", expenseHandler.QueryExpenses)
	expenses.GET("/summary", expenseHandler.GetSummary)
	expenses.GET("/monthly-totals", expenseHandler.GetMonthlyTotals)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	methods := v1.Group("/payment-methods")
	methods.GET("", methodHandler.GetPaymentMethods)
	methods.POST("", methodHandler.CreatePaymentMethod)
	methods.PUT("/:id", methodHandler.UpdatePaymentMethod)
	methods.DELETE("/:id", methodHandler.DeletePaymentMethod)

	cards := v1.Group("/credit-cards")
	cards.GET("", cardHandler.GetCreditCards)
	cards.POST("", cardHandler.CreateCreditCard)
	cards.DELETE("/:id", cardHandler.DeleteCreditCard)

	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.PutSettings)

	v1.GET("/export", snapshotHandler.Export)
	v1.POST("/import", snapshotHandler.Import)

	return &testApp{DB: db, Router: router}
}

// newUserToken mints a token the way the external identity provider would,
// returning the token and the user id it carries.
func newUserToken(t *testing.T) (token, userID string) {
	t.Helper()

	userID = uuid.New()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Get().JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token, userID
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
