package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "costevida/internal/errors"
	"costevida/internal/models"
)

// paymentMethodService handles payment method management.
type paymentMethodService struct {
	db *gorm.DB
}

// NewPaymentMethodService creates a new PaymentMethodServicer.
func NewPaymentMethodService(db *gorm.DB) PaymentMethodServicer {
	return &paymentMethodService{db: db}
}

// ListPaymentMethods returns the user's payment methods in creation order.
func (s *paymentMethodService) ListPaymentMethods(userID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&methods).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return methods, nil
}

// CreatePaymentMethod adds a method to the user's set. Names are unique per
// user.
func (s *paymentMethodService) CreatePaymentMethod(userID, name string, allowsInstallments bool) (*models.PaymentMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment method name is required")
	}

	var count int64
	if err := s.db.Model(&models.PaymentMethod{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateName
	}

	// The designated credit-card method always allows installments.
	if name == models.CreditCardMethod {
		allowsInstallments = true
	}

	method := &models.PaymentMethod{UserID: userID, Name: name, AllowsInstallments: allowsInstallments}
	if err := s.db.Create(method).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return method, nil
}

// UpdatePaymentMethod toggles the installments flag of an existing method.
func (s *paymentMethodService) UpdatePaymentMethod(userID, methodID string, allowsInstallments bool) (*models.PaymentMethod, error) {
	method, err := s.getByID(userID, methodID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(method).Update("allows_installments", allowsInstallments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return method, nil
}

// DeletePaymentMethod removes a method unless any expense currently or
// prospectively references it.
func (s *paymentMethodService) DeletePaymentMethod(userID, methodID string) error {
	method, err := s.getByID(userID, methodID)
	if err != nil {
		return err
	}

	inUse, err := referencedOnOrAfterNow(s.db, userID, "payment_method", method.Name, time.Now())
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.WithMessage(apperrors.ErrPaymentMethodInUse,
			"El método \""+method.Name+"\" tiene gastos activos o futuros")
	}

	if err := s.db.Delete(method).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *paymentMethodService) getByID(userID, methodID string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := s.db.Where("id = ? AND user_id = ?", methodID, userID).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentMethodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &method, nil
}
