package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
)

// snapshotVersion is the envelope version written on export. Import accepts
// any version since the envelope has only grown backwards-compatibly.
const snapshotVersion = "1.0"

// snapshotService handles full-account export and import.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// Export assembles a portable snapshot of everything the user owns.
func (s *snapshotService) Export(userID string) (*Snapshot, error) {
	snap := &Snapshot{
		ExportDate: time.Now().UTC(),
		Version:    snapshotVersion,
	}

	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&snap.Expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var settings models.Settings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	switch {
	case err == nil:
		snap.Settings = &SnapshotSettings{Salary: settings.Salary, Currency: settings.Currency}
		snap.Theme = settings.Theme
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.CreditCard
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range cards {
		snap.CreditCards = append(snap.CreditCards, c.Name)
	}

	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range categories {
		snap.Categories = append(snap.Categories, c.Name)
	}

	var methods []models.PaymentMethod
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&methods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, m := range methods {
		snap.PaymentMethods = append(snap.PaymentMethods, SnapshotMethod{
			Name:               m.Name,
			AllowsInstallments: m.AllowsInstallments,
		})
	}

	return snap, nil
}

// Import replaces the user's data with the snapshot contents. The expenses
// collection is mandatory; settings, cards, categories and methods are
// replaced only when the snapshot carries them. The whole import runs in one
// transaction so a bad snapshot never leaves the account half-replaced.
func (s *snapshotService) Import(userID string, snap *Snapshot) error {
	if snap == nil || snap.Expenses == nil {
		return apperrors.ErrInvalidSnapshot
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		for i := range snap.Expenses {
			e := snap.Expenses[i]
			e.Base = models.Base{}
			e.UserID = userID
			if e.Installments < 1 {
				e.Installments = 1
			}
			if e.CurrentInstallment < 1 {
				e.CurrentInstallment = 1
			}
			if e.StartDate.IsZero() {
				e.StartDate = e.ExpenseDate
			}
			if err := tx.Create(&e).Error; err != nil {
				return err
			}
		}

		if snap.CreditCards != nil {
			if err := tx.Where("user_id = ?", userID).Delete(&models.CreditCard{}).Error; err != nil {
				return err
			}
			for _, name := range snap.CreditCards {
				if err := tx.Create(&models.CreditCard{UserID: userID, Name: name}).Error; err != nil {
					return err
				}
			}
		}

		if snap.Categories != nil {
			if err := tx.Where("user_id = ?", userID).Delete(&models.Category{}).Error; err != nil {
				return err
			}
			for _, name := range snap.Categories {
				if err := tx.Create(&models.Category{UserID: userID, Name: name}).Error; err != nil {
					return err
				}
			}
		}

		if snap.PaymentMethods != nil {
			if err := tx.Where("user_id = ?", userID).Delete(&models.PaymentMethod{}).Error; err != nil {
				return err
			}
			for _, m := range snap.PaymentMethods {
				method := models.PaymentMethod{UserID: userID, Name: m.Name, AllowsInstallments: m.AllowsInstallments}
				if err := tx.Create(&method).Error; err != nil {
					return err
				}
			}
		}

		if snap.Settings != nil || snap.Theme != "" {
			var settings models.Settings
			err := tx.Where("user_id = ?", userID).First(&settings).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				settings = *models.DefaultSettings(userID)
			} else if err != nil {
				return err
			}
			if snap.Settings != nil {
				settings.Salary = snap.Settings.Salary
				if snap.Settings.Currency != "" {
					settings.Currency = snap.Settings.Currency
				}
			}
			if snap.Theme != "" {
				settings.Theme = snap.Theme
			}
			if err := tx.Save(&settings).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
