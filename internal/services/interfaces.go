package services

import (
	"time"

	"costevida/internal/models"
	"costevida/internal/notify"
	"costevida/internal/pagination"
	"costevida/internal/projection"
)

// Summary is the aggregated view of one projection query.
type Summary struct {
	Total            float64                     `json:"total"`
	ByPaymentMethod  []projection.BreakdownEntry `json:"by_payment_method"`
	ByCategory       []projection.BreakdownEntry `json:"by_category"`
	ByCreditCard     []projection.BreakdownEntry `json:"by_credit_card"`
	SalaryPercentage float64                     `json:"salary_percentage"`
	StatusColor      string                      `json:"status_color"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID string, in projection.ExpenseInput) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, in projection.ExpenseInput) (*models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, expenseID string) error
	QueryExpenses(userID string, q projection.Query) ([]models.Expense, error)
	Summarize(userID string, q projection.Query) (*Summary, error)
	MonthlyTotals(userID string, year int) ([12]float64, error)
}

// CategoryServicer defines the contract for expense categories.
type CategoryServicer interface {
	ListCategories(userID string) ([]models.Category, error)
	CreateCategory(userID, name string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// PaymentMethodServicer defines the contract for payment methods.
type PaymentMethodServicer interface {
	ListPaymentMethods(userID string) ([]models.PaymentMethod, error)
	CreatePaymentMethod(userID, name string, allowsInstallments bool) (*models.PaymentMethod, error)
	UpdatePaymentMethod(userID, methodID string, allowsInstallments bool) (*models.PaymentMethod, error)
	DeletePaymentMethod(userID, methodID string) error
}

// CreditCardServicer defines the contract for registered credit cards.
type CreditCardServicer interface {
	ListCreditCards(userID string) ([]models.CreditCard, error)
	CreateCreditCard(userID, name string) (*models.CreditCard, error)
	DeleteCreditCard(userID, cardID string) error
}

// SettingsServicer defines the contract for per-user settings.
type SettingsServicer interface {
	GetSettings(userID string) (*models.Settings, error)
	PutSettings(userID string, salary float64, currency, theme string) (*models.Settings, error)
}

// Snapshot is the export/import envelope. Import only requires the expenses
// collection; other collections are replaced when present and left untouched
// when absent.
type Snapshot struct {
	Expenses       []models.Expense  `json:"expenses"`
	Settings       *SnapshotSettings `json:"settings,omitempty"`
	CreditCards    []string          `json:"creditCards,omitempty"`
	Categories     []string          `json:"categories,omitempty"`
	PaymentMethods []SnapshotMethod  `json:"paymentMethods,omitempty"`
	Theme          string            `json:"theme,omitempty"`
	ExportDate     time.Time         `json:"exportDate"`
	Version        string            `json:"version"`
}

// SnapshotSettings is the settings block inside a Snapshot.
type SnapshotSettings struct {
	Salary   float64 `json:"salary"`
	Currency string  `json:"currency"`
}

// SnapshotMethod is a payment method inside a Snapshot.
type SnapshotMethod struct {
	Name               string `json:"name"`
	AllowsInstallments bool   `json:"allowsInstallments"`
}

// SnapshotServicer defines the contract for data export and import.
type SnapshotServicer interface {
	Export(userID string) (*Snapshot, error)
	Import(userID string, snap *Snapshot) error
}

// Reminder couples an expiration message with the user it belongs to.
type Reminder struct {
	UserID  string
	Message *notify.Message
}

// NotificationServicer defines the contract for the daily reminder run.
type NotificationServicer interface {
	DueReminders(today time.Time) ([]Reminder, error)
}
