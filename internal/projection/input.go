package projection

import (
	"strings"
	"time"

	"costevida/internal/models"
)

// Amount entry modes: the user may enter the amount of one installment or the
// grand total of the purchase.
const (
	AmountPerQuota = "quota"
	AmountTotal    = "total"
)

// ExpenseInput is a raw expense submission, before validation and
// normalization.
type ExpenseInput struct {
	Name               string
	Amount             float64
	AmountType         string // AmountPerQuota or AmountTotal
	Category           string
	PaymentMethod      string
	CreditCard         string
	ExpenseDate        time.Time
	StartDate          time.Time
	Installments       int
	CurrentInstallment int
	IsRecurring        bool
	IsShared           bool
	SharedWith         int
	NotifyExpiration   bool
	Notes              string
}

// ApplyDefaults resolves optional fields once, before validation: a missing
// category falls back to the default bucket, zero installment counts mean a
// one-off charge, and the billing anchor defaults to the expense date.
func (in *ExpenseInput) ApplyDefaults() {
	if strings.TrimSpace(in.Category) == "" {
		in.Category = NoCategoryKey
	}
	if in.AmountType == "" {
		in.AmountType = AmountPerQuota
	}
	if in.Installments == 0 {
		in.Installments = 1
	}
	if in.CurrentInstallment == 0 {
		in.CurrentInstallment = 1
	}
	if in.StartDate.IsZero() {
		in.StartDate = in.ExpenseDate
	}
}

// Validate checks the submission and returns a field-keyed error set. An
// empty map means the submission may proceed.
func (in *ExpenseInput) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "El nombre es requerido"
	}
	if in.Amount <= 0 {
		errs["amount"] = "El monto debe ser mayor a 0"
	}
	if in.PaymentMethod == "" {
		errs["payment_method"] = "Selecciona un método de pago"
	}
	if in.PaymentMethod == models.CreditCardMethod && in.CreditCard == "" {
		errs["credit_card"] = "Selecciona o añade una tarjeta de crédito"
	}
	if in.ExpenseDate.IsZero() {
		errs["expense_date"] = "La fecha del gasto es requerida"
	}
	if in.Installments < 1 {
		errs["installments"] = "La cantidad de cuotas debe ser al menos 1"
	}
	if in.CurrentInstallment < 1 {
		errs["current_installment"] = "La cuota actual debe ser al menos 1"
	}
	if in.Installments > 1 && in.CurrentInstallment > in.Installments {
		errs["current_installment"] = "La cuota actual no puede ser mayor al total"
	}
	if in.SharedWith < 0 {
		errs["shared_with"] = "La cantidad de personas no puede ser negativa"
	}

	return errs
}

// Normalize converts a validated submission into the canonical record.
//
// The per-period amount is derived in a fixed order: total-mode amounts are
// divided by the installment count first, then the shared division by
// 1+SharedWith is applied. The entered amount is kept as TotalAmount for
// display; MonthlyAmount is never re-derived after this point.
func (in *ExpenseInput) Normalize(userID string) *models.Expense {
	monthly := in.Amount
	if in.AmountType == AmountTotal && in.Installments > 1 {
		monthly /= float64(in.Installments)
	}
	if in.IsShared {
		monthly /= float64(1 + in.SharedWith)
	}

	sharedWith := in.SharedWith
	if !in.IsShared {
		sharedWith = 0
	}

	return &models.Expense{
		UserID:             userID,
		Name:               strings.TrimSpace(in.Name),
		MonthlyAmount:      monthly,
		TotalAmount:        in.Amount,
		Category:           in.Category,
		PaymentMethod:      in.PaymentMethod,
		CreditCard:         in.CreditCard,
		ExpenseDate:        in.ExpenseDate,
		StartDate:          in.StartDate,
		Installments:       in.Installments,
		CurrentInstallment: in.CurrentInstallment,
		IsRecurring:        in.IsRecurring,
		IsShared:           in.IsShared,
		SharedWith:         sharedWith,
		NotifyExpiration:   in.NotifyExpiration,
		Notes:              in.Notes,
	}
}
