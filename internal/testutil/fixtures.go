package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"costevida/internal/models"
	"costevida/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestUserID returns a fresh user identifier. Tests sharing the in-memory
// database stay isolated by scoping everything to their own user.
func NewTestUserID() string {
	return uuid.New()
}

// CreateTestExpense creates a one-off expense starting on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, start time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:             userID,
		Name:               fmt.Sprintf("Test Expense %d", nextID()),
		MonthlyAmount:      100,
		TotalAmount:        100,
		Category:           "Otro",
		PaymentMethod:      "Efectivo",
		ExpenseDate:        start,
		StartDate:          start,
		Installments:       1,
		CurrentInstallment: 1,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestInstallmentExpense creates an expense spanning the given number
// of monthly installments.
func CreateTestInstallmentExpense(t *testing.T, db *gorm.DB, userID string, start time.Time, installments int) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:             userID,
		Name:               fmt.Sprintf("Test Installments %d", nextID()),
		MonthlyAmount:      100,
		TotalAmount:        float64(installments) * 100,
		Category:           "Otro",
		PaymentMethod:      models.CreditCardMethod,
		CreditCard:         "Visa",
		ExpenseDate:        start,
		StartDate:          start,
		Installments:       installments,
		CurrentInstallment: 1,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test installment expense: %v", err)
	}
	return expense
}

// CreateTestRecurringExpense creates a recurring expense starting on the
// given date.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID string, start time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:             userID,
		Name:               fmt.Sprintf("Test Recurring %d", nextID()),
		MonthlyAmount:      100,
		TotalAmount:        100,
		Category:           "Servicios",
		PaymentMethod:      "Débito automático",
		ExpenseDate:        start,
		StartDate:          start,
		Installments:       1,
		CurrentInstallment: 1,
		IsRecurring:        true,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return expense
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestPaymentMethod creates a payment method with a unique name.
func CreateTestPaymentMethod(t *testing.T, db *gorm.DB, userID string, allowsInstallments bool) *models.PaymentMethod {
	t.Helper()

	method := &models.PaymentMethod{
		UserID:             userID,
		Name:               fmt.Sprintf("Test Method %d", nextID()),
		AllowsInstallments: allowsInstallments,
	}
	if err := db.Create(method).Error; err != nil {
		t.Fatalf("failed to create test payment method: %v", err)
	}
	return method
}

// CreateTestCreditCard creates a credit card with a unique name.
func CreateTestCreditCard(t *testing.T, db *gorm.DB, userID string) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		UserID: userID,
		Name:   fmt.Sprintf("Test Card %d", nextID()),
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}
	return card
}

// CreateTestSettings creates settings with the given salary.
func CreateTestSettings(t *testing.T, db *gorm.DB, userID string, salary float64) *models.Settings {
	t.Helper()

	settings := &models.Settings{
		UserID:   userID,
		Salary:   salary,
		Currency: "ARS",
		Theme:    "light",
	}
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}
