package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mgrunewald/giftvault/internal/services"
)

// AuthHandler handles registration, login and session queries.
type AuthHandler struct {
	facade    services.Facade
	responder *ErrorResponder
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(facade services.Facade, responder *ErrorResponder) *AuthHandler {
	return &AuthHandler{
		facade:    facade,
		responder: responder,
	}
}

// RegisterRoutes registers authentication routes with the router.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/session", h.Session)
		auth.GET("/exists/:username", h.Exists)
	}
}

// RegisterRequest carries registration credentials.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// Register handles user registration requests.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := h.facade.Register(c.Request.Context(), req.Username, req.Secret); err != nil {
		h.responder.Respond(c, err)
		return
	}

	CreatedResponse(c, gin.H{"username": req.Username})
}

// Login handles login requests and returns the session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Username, req.Secret)
	if err != nil {
		h.responder.Respond(c, err)
		return
	}

	SuccessResponse(c, gin.H{"token": token})
}

// Session reports whether the caller's session token is still active.
func (h *AuthHandler) Session(c *gin.Context) {
	active := h.facade.IsSessionActive(c.Request.Context(), sessionToken(c))
	SuccessResponse(c, gin.H{"active": active})
}

// Exists reports whether a username is registered.
func (h *AuthHandler) Exists(c *gin.Context) {
	exists, err := h.facade.Exists(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.responder.Respond(c, err)
		return
	}
	SuccessResponse(c, gin.H{"exists": exists})
}
