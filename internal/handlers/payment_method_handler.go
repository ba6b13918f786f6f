package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costevida/internal/errors"
	"costevida/internal/services"
)

// PaymentMethodHandler handles payment method requests.
type PaymentMethodHandler struct {
	methodService services.PaymentMethodServicer
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(methodService services.PaymentMethodServicer) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// CreatePaymentMethodRequest represents the request payload for creating a
// payment method.
type CreatePaymentMethodRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=100"`
	AllowsInstallments bool   `json:"allows_installments"`
}

// UpdatePaymentMethodRequest represents the request payload for updating a
// payment method.
type UpdatePaymentMethodRequest struct {
	AllowsInstallments bool `json:"allows_installments"`
}

// GetPaymentMethods handles the retrieval of all payment methods for a user.
// @Summary     List payment methods
// @Description Get the user's payment methods in creation order
// @Tags        payment-methods
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.PaymentMethod "Payment methods"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-methods [get]
func (h *PaymentMethodHandler) GetPaymentMethods(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	methods, err := h.methodService.ListPaymentMethods(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

// CreatePaymentMethod handles the creation of a new payment method.
// @Summary     Create a payment method
// @Description Add a payment method to the user's set
// @Tags        payment-methods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePaymentMethodRequest true "Payment method details"
// @Success     201 {object} models.PaymentMethod "Payment method created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-methods [post]
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	method, err := h.methodService.CreatePaymentMethod(userID, req.Name, req.AllowsInstallments)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment_method": method})
}

// UpdatePaymentMethod handles toggling the installments flag of a method.
// @Summary     Update a payment method
// @Description Toggle whether the payment method allows installments
// @Tags        payment-methods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payment method ID"
// @Param       request body UpdatePaymentMethodRequest true "Payment method flags"
// @Success     200 {object} models.PaymentMethod "Payment method updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-methods/{id} [put]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	methodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	method, err := h.methodService.UpdatePaymentMethod(userID, methodID, req.AllowsInstallments)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_method": method})
}

// DeletePaymentMethod handles the deletion of a payment method.
// @Summary     Delete a payment method
// @Description Delete a payment method unless active or upcoming expenses reference it
// @Tags        payment-methods
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payment method ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Failure     409 {object} ErrorResponse "Payment method in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	methodID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.methodService.DeletePaymentMethod(userID, methodID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
}
