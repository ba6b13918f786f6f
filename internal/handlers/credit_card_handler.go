package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costevida/internal/errors"
	"costevida/internal/services"
)

// CreditCardHandler handles credit card requests.
type CreditCardHandler struct {
	cardService services.CreditCardServicer
}

// NewCreditCardHandler creates a new CreditCardHandler.
func NewCreditCardHandler(cardService services.CreditCardServicer) *CreditCardHandler {
	return &CreditCardHandler{cardService: cardService}
}

// CreateCreditCardRequest represents the request payload for registering a
// credit card.
type CreateCreditCardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// GetCreditCards handles the retrieval of all credit cards for a user.
// @Summary     List credit cards
// @Description Get the user's registered cards in creation order
// @Tags        credit-cards
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.CreditCard "Credit cards"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards [get]
func (h *CreditCardHandler) GetCreditCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cards, err := h.cardService.ListCreditCards(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credit_cards": cards})
}

// CreateCreditCard handles the registration of a new credit card.
// @Summary     Register a credit card
// @Description Add a card label to the user's set
// @Tags        credit-cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCreditCardRequest true "Credit card details"
// @Success     201 {object} models.CreditCard "Credit card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards [post]
func (h *CreditCardHandler) CreateCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCreditCard(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"credit_card": card})
}

// DeleteCreditCard handles the deletion of a credit card.
// @Summary     Delete a credit card
// @Description Delete a card unless active or upcoming expenses reference it
// @Tags        credit-cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Credit card ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Credit card not found"
// @Failure     409 {object} ErrorResponse "Credit card in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards/{id} [delete]
func (h *CreditCardHandler) DeleteCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCreditCard(userID, cardID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credit card deleted"})
}
