package projection

import "costevida/internal/models"

// Default group keys substituted when a record carries no method or category.
const (
	NoMethodKey   = "Sin método"
	NoCategoryKey = "Otro"
)

// BreakdownEntry is one group in an aggregation, keys in first-seen order.
type BreakdownEntry struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// Total sums the monthly amounts of the given records.
func Total(expenses []models.Expense) float64 {
	var sum float64
	for i := range expenses {
		sum += expenses[i].MonthlyAmount
	}
	return sum
}

func groupBy(expenses []models.Expense, key func(*models.Expense) string) []BreakdownEntry {
	index := make(map[string]int)
	var entries []BreakdownEntry

	for i := range expenses {
		k := key(&expenses[i])
		if k == "" {
			// Cardless records are excluded from the card grouping; the
			// method/category key funcs substitute defaults instead.
			continue
		}
		if at, ok := index[k]; ok {
			entries[at].Amount += expenses[i].MonthlyAmount
			continue
		}
		index[k] = len(entries)
		entries = append(entries, BreakdownEntry{Key: k, Amount: expenses[i].MonthlyAmount})
	}

	return entries
}

// ByPaymentMethod groups monthly amounts by payment method, substituting
// NoMethodKey for records without one.
func ByPaymentMethod(expenses []models.Expense) []BreakdownEntry {
	return groupBy(expenses, func(e *models.Expense) string {
		if e.PaymentMethod == "" {
			return NoMethodKey
		}
		return e.PaymentMethod
	})
}

// ByCategory groups monthly amounts by category, substituting NoCategoryKey
// for records without one.
func ByCategory(expenses []models.Expense) []BreakdownEntry {
	return groupBy(expenses, func(e *models.Expense) string {
		if e.Category == "" {
			return NoCategoryKey
		}
		return e.Category
	})
}

// ByCreditCard groups monthly amounts by credit card. Records with no card
// are excluded rather than bucketed under a default.
func ByCreditCard(expenses []models.Expense) []BreakdownEntry {
	return groupBy(expenses, func(e *models.Expense) string {
		return e.CreditCard
	})
}

// MonthlyTotals returns the total billed in each month of the given year.
// Activity is re-derived per month rather than reusing a single filtered
// list: each month has a distinct activity set.
func MonthlyTotals(expenses []models.Expense, year int) [12]float64 {
	var totals [12]float64
	for i := range expenses {
		e := &expenses[i]
		for month := 0; month < 12; month++ {
			if ActiveInMonth(e, year, month) {
				totals[month] += e.MonthlyAmount
			}
		}
	}
	return totals
}

// SalaryPercentage returns what share of the salary the total represents.
// A salary of zero means the feature is disabled and yields 0.
func SalaryPercentage(total, salary float64) float64 {
	if salary <= 0 {
		return 0
	}
	return total / salary * 100
}

// StatusColor maps a salary percentage to a traffic-light color.
func StatusColor(percentage float64) string {
	switch {
	case percentage <= 25:
		return "green"
	case percentage <= 50:
		return "yellow"
	default:
		return "red"
	}
}
