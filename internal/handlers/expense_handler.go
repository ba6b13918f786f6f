package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "costevida/internal/errors"
	"costevida/internal/pagination"
	"costevida/internal/projection"
	"costevida/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the request payload for creating or replacing an
// expense. Amount carries either the per-installment amount or the purchase
// total depending on amount_type; the service derives the canonical record.
type ExpenseRequest struct {
	Name               string    `json:"name" binding:"required"`
	Amount             float64   `json:"amount" binding:"required,gt=0"`
	AmountType         string    `json:"amount_type" binding:"omitempty,amount_type"`
	Category           string    `json:"category"`
	PaymentMethod      string    `json:"payment_method" binding:"required"`
	CreditCard         string    `json:"credit_card"`
	ExpenseDate        time.Time `json:"expense_date" binding:"required"`
	StartDate          time.Time `json:"start_date"`
	Installments       int       `json:"installments" binding:"omitempty,min=1"`
	CurrentInstallment int       `json:"current_installment" binding:"omitempty,min=1"`
	IsRecurring        bool      `json:"is_recurring"`
	IsShared           bool      `json:"is_shared"`
	SharedWith         int       `json:"shared_with" binding:"omitempty,min=0"`
	NotifyExpiration   bool      `json:"notify_expiration"`
	Notes              string    `json:"notes"`
}

func (r *ExpenseRequest) toInput() projection.ExpenseInput {
	return projection.ExpenseInput{
		Name:               r.Name,
		Amount:             r.Amount,
		AmountType:         r.AmountType,
		Category:           r.Category,
		PaymentMethod:      r.PaymentMethod,
		CreditCard:         r.CreditCard,
		ExpenseDate:        r.ExpenseDate,
		StartDate:          r.StartDate,
		Installments:       r.Installments,
		CurrentInstallment: r.CurrentInstallment,
		IsRecurring:        r.IsRecurring,
		IsShared:           r.IsShared,
		SharedWith:         r.SharedWith,
		NotifyExpiration:   r.NotifyExpiration,
		Notes:              r.Notes,
	}
}

// queryFromContext parses the shared projection query parameters.
func queryFromContext(c *gin.Context) (projection.Query, error) {
	var q projection.Query

	q.Mode = c.DefaultQuery("mode", projection.ModeAll)
	switch q.Mode {
	case projection.ModeAll, projection.ModeYear, projection.ModeMonth:
	default:
		return q, apperrors.WithMessage(apperrors.ErrInvalidInput, "mode must be 'all', 'year' or 'month'")
	}

	if q.Mode != projection.ModeAll {
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			return q, apperrors.WithMessage(apperrors.ErrInvalidInput, "year is required for this mode")
		}
		q.Year = year
	}

	if q.Mode == projection.ModeMonth {
		month, err := strconv.Atoi(c.Query("month"))
		if err != nil || month < 0 || month > 11 {
			return q, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 0 and 11")
		}
		q.Month = month
	}

	q.Category = c.Query("category")
	q.Method = c.Query("method")
	q.Card = c.Query("card")
	return q, nil
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Description Create a new recurring or installment expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles the paginated retrieval of raw expense records.
// @Summary     List expenses
// @Description Get the raw expense records in insertion order, paginated
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (default 1)"
// @Param       page_size query int false "Page size (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	list, err := h.expenseService.ListExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetExpenseByID handles the retrieval of a single expense.
// @Summary     Get an expense
// @Description Get a single expense by its id
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles the full replacement of an expense.
// @Summary     Replace an expense
// @Description Replace an existing expense wholesale; the record id is kept
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Expense updated"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles the deletion of an expense.
// @Summary     Delete an expense
// @Description Delete an expense by its id
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// QueryExpenses handles the projection of expenses into a viewing window.
// @Summary     Query projected expenses
// @Description Project the expense set into an all/year/month window with optional filters
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "Window mode: all, year, or month (default all)"
// @Param       year query int false "Year, required for year and month modes"
// @Param       month query int false "Month 0-11, required for month mode"
// @Param       category query string false "Category filter"
// @Param       method query string false "Payment method filter"
// @Param       card query string false "Credit card filter"
// @Success     200 {array} models.Expense "Projected expenses"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/query [get]
func (h *ExpenseHandler) QueryExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	q, err := queryFromContext(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.QueryExpenses(userID, q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GetSummary handles the aggregation of a projected window.
// @Summary     Summarize a window
// @Description Total, breakdowns by method/category/card, and salary share for a projected window
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "Window mode: all, year, or month (default all)"
// @Param       year query int false "Year, required for year and month modes"
// @Param       month query int false "Month 0-11, required for month mode"
// @Param       category query string false "Category filter"
// @Param       method query string false "Payment method filter"
// @Param       card query string false "Credit card filter"
// @Success     200 {object} services.Summary "Aggregated summary"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	q, err := queryFromContext(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.expenseService.Summarize(userID, q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMonthlyTotals handles the 12-month billing series of a year.
// @Summary     Monthly totals
// @Description The 12-element monthly billing series for the given year
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       year query int true "Year"
// @Success     200 {object} map[string]interface{} "Monthly totals"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/monthly-totals [get]
func (h *ExpenseHandler) GetMonthlyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year is required"))
		return
	}

	totals, err := h.expenseService.MonthlyTotals(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "totals": totals})
}
