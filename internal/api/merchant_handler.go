package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mgrunewald/giftvault/internal/services"
)

// MerchantHandler handles merchant registration and merchant-initiated
// charges.
type MerchantHandler struct {
	facade    services.Facade
	responder *ErrorResponder
}

// NewMerchantHandler creates a new merchant handler.
func NewMerchantHandler(facade services.Facade, responder *ErrorResponder) *MerchantHandler {
	return &MerchantHandler{
		facade:    facade,
		responder: responder,
	}
}

// RegisterRoutes registers merchant routes with the router.
func (h *MerchantHandler) RegisterRoutes(router *gin.RouterGroup) {
	merchants := router.Group("/merchants")
	{
		merchants.POST("", h.Register)
		merchants.POST("/charge", h.Charge)
	}
}

// RegisterMerchantRequest carries merchant registration data.
type RegisterMerchantRequest struct {
	ID         string `json:"id" binding:"required"`
	Credential string `json:"credential" binding:"required"`
}

// ChargeRequest carries a merchant-initiated charge. Charges carry no
// user session: authorization is by merchant credential, and the card
// only needs to have been claimed by some session.
type ChargeRequest struct {
	MerchantID  string `json:"merchant_id" binding:"required"`
	Credential  string `json:"credential" binding:"required"`
	CardNumber  string `json:"card_number" binding:"required"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// Register adds a merchant to the registry.
func (h *MerchantHandler) Register(c *gin.Context) {
	var req RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := h.facade.RegisterMerchant(c.Request.Context(), req.ID, req.Credential); err != nil {
		h.responder.Respond(c, err)
		return
	}

	CreatedResponse(c, gin.H{"id": req.ID})
}

// Charge debits a card on behalf of the merchant.
func (h *MerchantHandler) Charge(c *gin.Context) {
	var req ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	charge, err := h.facade.Charge(
		c.Request.Context(),
		req.MerchantID,
		req.Credential,
		req.CardNumber,
		req.Amount,
		req.Description,
	)
	if err != nil {
		h.responder.Respond(c, err)
		return
	}

	CreatedResponse(c, gin.H{"charge": charge})
}
