package projection

import "costevida/internal/models"

// Query mode values.
const (
	ModeAll   = "all"
	ModeYear  = "year"
	ModeMonth = "month"
)

// All is the sentinel filter value that matches every record.
const All = "all"

// Query describes one projection request. Category, Method and Card are
// equality filters; the All sentinel (or empty string) bypasses them.
type Query struct {
	Mode     string
	Year     int
	Month    int // 0-based, only meaningful in ModeMonth
	Category string
	Method   string
	Card     string
}

// matchesFilters applies the category/method/card equality filters.
func (q Query) matchesFilters(e *models.Expense) bool {
	if q.Category != "" && q.Category != All && e.Category != q.Category {
		return false
	}
	if q.Method != "" && q.Method != All && e.PaymentMethod != q.Method {
		return false
	}
	if q.Card != "" && q.Card != All && e.CreditCard != q.Card {
		return false
	}
	return true
}

// Project filters the record set for the queried window and returns matching
// records in the input's order. Records are returned as copies; in month mode
// the copy's CurrentInstallment is overridden with the installment index
// valid for the queried month. The stored records are never mutated.
func Project(expenses []models.Expense, q Query) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))

	for i := range expenses {
		e := &expenses[i]
		if !q.matchesFilters(e) {
			continue
		}

		switch q.Mode {
		case ModeMonth:
			if !ActiveInMonth(e, q.Year, q.Month) {
				continue
			}
			projected := *e
			projected.CurrentInstallment = InstallmentIndex(e, q.Year, q.Month)
			out = append(out, projected)
		case ModeYear:
			if !ActiveInYear(e, q.Year) {
				continue
			}
			out = append(out, *e)
		default:
			out = append(out, *e)
		}
	}

	return out
}
