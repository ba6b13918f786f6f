package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
	"costevida/internal/projection"
)

// referencedOnOrAfterNow reports whether any of the user's expenses matching
// the column condition has an active span covering the current calendar month
// or a later one. Catalog entries with such references cannot be deleted.
func referencedOnOrAfterNow(db *gorm.DB, userID, column, value string, now time.Time) (bool, error) {
	var expenses []models.Expense
	if err := db.Where("user_id = ? AND "+column+" = ?", userID, value).Find(&expenses).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	year, month := now.Year(), int(now.Month())-1
	for i := range expenses {
		if projection.ActiveOnOrAfter(&expenses[i], year, month) {
			return true, nil
		}
	}
	return false, nil
}
