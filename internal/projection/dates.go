// Package projection implements the expense projection engine: pure functions
// that decide which months an expense is active in, filter and tag record
// sets for a queried window, and aggregate the results. The package performs
// no I/O and never mutates its inputs; callers hand it a snapshot of the
// record set and a query.
//
// Months are 0-based throughout (January = 0, December = 11).
package projection

import (
	"time"

	"costevida/internal/models"
)

// MonthsSinceStart returns the number of whole calendar months between the
// expense's start month and the target (year, month). Negative values mean
// the record has not started yet in the target period.
func MonthsSinceStart(start time.Time, year, month int) int {
	return (year-start.Year())*12 + (month - int(start.Month()-1))
}

// ActiveInMonth reports whether the expense bills in the given (year, month).
// A record is active from its start month for Installments consecutive
// months, or forever when recurring.
func ActiveInMonth(e *models.Expense, year, month int) bool {
	diff := MonthsSinceStart(e.StartDate, year, month)
	if diff < 0 {
		return false
	}
	return e.IsRecurring || diff < e.Installments
}

// ActiveInYear reports whether the expense's active span overlaps the given
// calendar year. The span is [startMonth, startMonth+Installments-1], with an
// unbounded end for recurring records; a recurring record is therefore active
// in its start year and every year after, never before.
func ActiveInYear(e *models.Expense, year int) bool {
	if e.StartDate.Year() > year {
		return false
	}
	if e.IsRecurring {
		return true
	}
	// Month index of the last billing period, relative to January of the
	// start year.
	lastMonth := int(e.StartDate.Month()-1) + e.Installments - 1
	endYear := e.StartDate.Year() + lastMonth/12
	return endYear >= year
}

// ActiveOnOrAfter reports whether the expense's active span includes the
// given (year, month) or any later month. This is the "currently or
// prospectively active" test behind the catalog deletion guard: recurring
// records have an open-ended span and always qualify, and records that have
// not started yet qualify too.
func ActiveOnOrAfter(e *models.Expense, year, month int) bool {
	if e.IsRecurring {
		return true
	}
	return MonthsSinceStart(e.StartDate, year, month) < e.Installments
}

// InstallmentIndex returns the 1-based installment number the expense is on
// in the given (year, month). Only meaningful when ActiveInMonth is true.
func InstallmentIndex(e *models.Expense, year, month int) int {
	return MonthsSinceStart(e.StartDate, year, month) + 1
}
