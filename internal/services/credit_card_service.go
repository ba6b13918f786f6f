package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
)

// creditCardService handles the user's saved card labels.
type creditCardService struct {
	db *gorm.DB
}

// NewCreditCardService creates a new CreditCardServicer.
func NewCreditCardService(db *gorm.DB) CreditCardServicer {
	return &creditCardService{db: db}
}

// ListCreditCards returns the user's cards in creation order.
func (s *creditCardService) ListCreditCards(userID string) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cards, nil
}

// CreateCreditCard registers a card label. Names are unique per user.
func (s *creditCardService) CreateCreditCard(userID, name string) (*models.CreditCard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "credit card name is required")
	}

	var count int64
	if err := s.db.Model(&models.CreditCard{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateName
	}

	card := &models.CreditCard{UserID: userID, Name: name}
	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// DeleteCreditCard removes a card unless any expense currently or
// prospectively references it.
func (s *creditCardService) DeleteCreditCard(userID, cardID string) error {
	var card models.CreditCard
	if err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCreditCardNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	inUse, err := referencedOnOrAfterNow(s.db, userID, "credit_card", card.Name, time.Now())
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.WithMessage(apperrors.ErrCreditCardInUse,
			"La tarjeta \""+card.Name+"\" tiene gastos activos o futuros")
	}

	if err := s.db.Delete(&card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
