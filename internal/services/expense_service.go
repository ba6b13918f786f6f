package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
	"costevida/internal/pagination"
	"costevida/internal/projection"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, settings SettingsServicer) ExpenseServicer {
	return &expenseService{db: db, settings: settings}
}

// CreateExpense validates and normalizes a submission, then persists the
// canonical record. A non-empty field error set blocks the submission and
// nothing is stored.
func (s *expenseService) CreateExpense(userID string, in projection.ExpenseInput) (*models.Expense, error) {
	in.ApplyDefaults()
	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	expense := in.Normalize(userID)
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// UpdateExpense replaces an existing record wholesale, keeping its id. The
// submission goes through the same validation and normalization as creation.
func (s *expenseService) UpdateExpense(userID, expenseID string, in projection.ExpenseInput) (*models.Expense, error) {
	existing, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	in.ApplyDefaults()
	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	replacement := in.Normalize(userID)
	replacement.Base = existing.Base

	if err := s.db.Save(replacement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return replacement, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ListExpenses returns a paginated raw list in insertion order.
func (s *expenseService) ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.InsertionOrder, pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes an expense by id.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// loadAll fetches the user's full record set in insertion order. Projection
// always runs over a fresh snapshot, never an incrementally patched one.
func (s *expenseService) loadAll(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Scopes(pagination.InsertionOrder).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// QueryExpenses projects the user's records for the queried window.
func (s *expenseService) QueryExpenses(userID string, q projection.Query) ([]models.Expense, error) {
	expenses, err := s.loadAll(userID)
	if err != nil {
		return nil, err
	}
	return projection.Project(expenses, q), nil
}

// Summarize projects the queried window and reduces it to totals and
// breakdowns, including the salary share from the user's settings.
func (s *expenseService) Summarize(userID string, q projection.Query) (*Summary, error) {
	projected, err := s.QueryExpenses(userID, q)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	total := projection.Total(projected)
	pct := projection.SalaryPercentage(total, settings.Salary)

	return &Summary{
		Total:            total,
		ByPaymentMethod:  projection.ByPaymentMethod(projected),
		ByCategory:       projection.ByCategory(projected),
		ByCreditCard:     projection.ByCreditCard(projected),
		SalaryPercentage: pct,
		StatusColor:      projection.StatusColor(pct),
	}, nil
}

// MonthlyTotals returns the 12-month billing series for the given year.
func (s *expenseService) MonthlyTotals(userID string, year int) ([12]float64, error) {
	expenses, err := s.loadAll(userID)
	if err != nil {
		return [12]float64{}, err
	}
	return projection.MonthlyTotals(expenses, year), nil
}
