package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
)

// settingsService handles the user's profile settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's settings, falling back to defaults for
// users that never saved any.
func (s *settingsService) GetSettings(userID string) (*models.Settings, error) {
	var settings models.Settings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSettings(userID), nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// PutSettings replaces the user's settings, creating the row on first save.
func (s *settingsService) PutSettings(userID string, salary float64, currency, theme string) (*models.Settings, error) {
	if salary < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "salary cannot be negative")
	}

	var settings models.Settings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.Settings{UserID: userID, Salary: salary, Currency: currency, Theme: theme}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		settings.Salary = salary
		settings.Currency = currency
		settings.Theme = theme
		if err := s.db.Save(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return &settings, nil
}
