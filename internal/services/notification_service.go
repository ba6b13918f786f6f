package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
	"costevida/internal/notify"
)

// notificationService computes the reminders due on a given day.
type notificationService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(db *gorm.DB, settings SettingsServicer) NotificationServicer {
	return &notificationService{db: db, settings: settings}
}

// DueReminders scans every expense that opted into expiration alerts and
// returns one reminder per expense inside the notification window. Expenses
// are grouped by owner so each user's currency is resolved once.
func (s *notificationService) DueReminders(today time.Time) ([]Reminder, error) {
	var expenses []models.Expense
	if err := s.db.Where("notify_expiration = ?", true).
		Order("user_id ASC, created_at ASC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	currencies := make(map[string]string)
	var reminders []Reminder
	for i := range expenses {
		e := &expenses[i]
		currency, ok := currencies[e.UserID]
		if !ok {
			settings, err := s.settings.GetSettings(e.UserID)
			if err != nil {
				return nil, err
			}
			currency = settings.Currency
			currencies[e.UserID] = currency
		}

		msg, due := notify.Evaluate(today, e, currency)
		if !due {
			continue
		}
		reminders = append(reminders, Reminder{UserID: e.UserID, Message: msg})
	}
	return reminders, nil
}
