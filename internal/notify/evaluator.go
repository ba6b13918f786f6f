// Package notify decides whether an expense is inside its expiration
// reminder window and builds the message to deliver. The evaluator is
// stateless: it is meant to be run once per day by an external scheduler and
// performs no deduplication across runs; that belongs to the delivery side.
package notify

import (
	"fmt"
	"time"

	"costevida/internal/models"
)

// windowDays is how many days before the monthly anniversary a reminder
// fires: on the day itself, one day before, and two days before.
const windowDays = 2

// Message is a reminder ready for delivery.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DaysToExpiration returns how many days remain until the expense's next
// monthly billing day.
//
// The modulus is a fixed 31 regardless of the actual month length, matching
// the shipped product behavior: billing days near the end of short months can
// be off. Changing this is a product decision, not a bug fix.
func DaysToExpiration(today time.Time, startDate time.Time) int {
	billingDay := startDate.Day()
	return (billingDay - today.Day() + 31) % 31
}

// Evaluate checks whether the expense should trigger a reminder today.
// Records that have not opted in never trigger. Returns the message and true
// when inside the window.
func Evaluate(today time.Time, e *models.Expense, currency string) (*Message, bool) {
	if !e.NotifyExpiration {
		return nil, false
	}

	days := DaysToExpiration(today, e.StartDate)
	if days < 0 || days > windowDays {
		return nil, false
	}

	var when string
	switch days {
	case 0:
		when = "vence HOY"
	case 1:
		when = "vence MAÑANA"
	default:
		when = fmt.Sprintf("vence en %d días", days)
	}

	return &Message{
		Title: fmt.Sprintf("⚠️ Vencimiento: %s", e.Name),
		Body:  fmt.Sprintf("Tu servicio %q %s (%s %.2f).", e.Name, when, currency, e.MonthlyAmount),
	}, true
}
