package models

import "time"

// Expense is the canonical record of a subscription or installment purchase.
// MonthlyAmount is the amount attributed to one billing period, already
// divided among shared participants; TotalAmount keeps the amount the user
// originally entered, for display only.
//
// StartDate anchors all period projection: the calendar month of StartDate is
// month zero of the record's active span. CurrentInstallment is stored for
// display; projection recomputes the installment index per queried month.
type Expense struct {
	Base
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string    `gorm:"not null" json:"name"`
	MonthlyAmount float64   `gorm:"not null" json:"monthly_amount"`
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`
	Category      string    `gorm:"not null;default:'Otro'" json:"category"`
	PaymentMethod string    `gorm:"not null" json:"payment_method"`
	CreditCard    string    `json:"credit_card,omitempty"`
	ExpenseDate   time.Time `gorm:"not null" json:"expense_date"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`

	// Installments >= 1 always; 1 means a one-off charge.
	Installments       int `gorm:"not null;default:1" json:"installments"`
	CurrentInstallment int `gorm:"not null;default:1" json:"current_installment"`

	// A recurring record has no end: it keeps renewing every month after its
	// literal installments are paid off.
	IsRecurring bool `gorm:"default:false" json:"is_recurring"`

	IsShared   bool `gorm:"default:false" json:"is_shared"`
	SharedWith int  `gorm:"not null;default:0" json:"shared_with"`

	NotifyExpiration bool   `gorm:"default:false" json:"notify_expiration"`
	Notes            string `json:"notes,omitempty"`
}
