package models

// Category is a user-extensible expense category, referenced by name from
// Expense.Category.
type Category struct {
	Base
	UserID string `gorm:"type:uuid;not null;index:idx_categories_user_name,unique" json:"user_id"`
	Name   string `gorm:"not null;index:idx_categories_user_name,unique" json:"name"`
}

// PaymentMethod is a user-extensible payment method. Methods flagged
// AllowsInstallments may carry Installments > 1 on their expenses.
type PaymentMethod struct {
	Base
	UserID             string `gorm:"type:uuid;not null;index:idx_payment_methods_user_name,unique" json:"user_id"`
	Name               string `gorm:"not null;index:idx_payment_methods_user_name,unique" json:"name"`
	AllowsInstallments bool   `gorm:"default:false" json:"allows_installments"`
}

// CreditCard is a user-registered card, referenced by name from
// Expense.CreditCard when the payment method is a credit-card-like method.
type CreditCard struct {
	Base
	UserID string `gorm:"type:uuid;not null;index:idx_credit_cards_user_name,unique" json:"user_id"`
	Name   string `gorm:"not null;index:idx_credit_cards_user_name,unique" json:"name"`
}

// CreditCardMethod is the designated payment method name that requires a
// credit card on the expense and always allows installments.
const CreditCardMethod = "Tarjeta de crédito"
