package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mgrunewald/giftvault/internal/domain"
	"github.com/mgrunewald/giftvault/internal/services"
)

// CardHandler handles gift-card claiming, queries and the
// administrative preload/top-up endpoints.
type CardHandler struct {
	facade    services.Facade
	responder *ErrorResponder
}

// NewCardHandler creates a new card handler.
func NewCardHandler(facade services.Facade, responder *ErrorResponder) *CardHandler {
	return &CardHandler{
		facade:    facade,
		responder: responder,
	}
}

// RegisterRoutes registers card routes with the router.
func (h *CardHandler) RegisterRoutes(router *gin.RouterGroup) {
	cards := router.Group("/cards")
	{
		cards.GET("", h.MyCards)
		cards.POST("/:number/claim", h.Claim)
		cards.GET("/:number/balance", h.Balance)
		cards.GET("/:number/statement", h.Statement)
	}

	admin := router.Group("/admin/cards")
	{
		admin.POST("", h.Preload)
		admin.POST("/:number/topup", h.TopUp)
	}
}

// PreloadRequest carries an administrative card seed.
type PreloadRequest struct {
	Owner      string `json:"owner" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	Balance    int    `json:"balance"`
}

// TopUpRequest carries an administrative balance top-up.
type TopUpRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// Preload seeds a new gift card into the ledger.
func (h *CardHandler) Preload(c *gin.Context) {
	var req PreloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	card, err := domain.NewGiftCard(req.Owner, req.CardNumber, req.Balance)
	if err != nil {
		h.responder.Respond(c, err)
		return
	}

	if err := h.facade.PreloadGiftCard(c.Request.Context(), card); err != nil {
		h.responder.Respond(c, err)
		return
	}

	CreatedResponse(c, gin.H{"card": card})
}

// TopUp adds funds to an existing card.
func (h *CardHandler) TopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := h.facade.TopUp(c.Request.Context(), c.Param("number"), req.Amount); err != nil {
		h.responder.Respond(c, err)
		return
	}

	SuccessResponse(c, gin.H{"card_number": c.Param("number")})
}

// Claim records a claim for the caller's session.
func (h *CardHandler) Claim(c *gin.Context) {
	if err := h.facade.Claim(c.Request.Context(), sessionToken(c), c.Param("number")); err != nil {
		h.responder.Respond(c, err)
		return
	}

	CreatedResponse(c, gin.H{"card_number": c.Param("number")})
}

// MyCards lists the card numbers claimed under the caller's session.
func (h *CardHandler) MyCards(c *gin.Context) {
	cards, err := h.facade.MyCards(c.Request.Context(), sessionToken(c))
	if err != nil {
		h.responder.Respond(c, err)
		return
	}

	SuccessResponse(c, gin.H{"cards": cards})
}

// Balance returns the balance of a claimed card.
func (h *CardHandler) Balance(c *gin.Context) {
	balance, err := h.facade.Balance(c.Request.Context(), sessionToken(c), c.Param("number"))
	if err != nil {
		h.responder.Respond(c, err)
		return
	}

	SuccessResponse(c, gin.H{
		"card_number": c.Param("number"),
		"balance":     balance,
	})
}

// Statement returns the charge log of a claimed card.
func (h *CardHandler) Statement(c *gin.Context) {
	charges, err := h.facade.Statement(c.Request.Context(), sessionToken(c), c.Param("number"))
	if err != nil {
		h.responder.Respond(c, err)
		return
	}

	SuccessResponse(c, gin.H{
		"card_number": c.Param("number"),
		"charges":     charges,
	})
}
