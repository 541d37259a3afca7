// Package api provides the HTTP surface over the ledger facade.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SuccessResponse returns a standardized success response.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// CreatedResponse returns a standardized creation response.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// invalidRequest rejects a request whose body failed binding.
func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"type":    "VALIDATION_ERROR",
			"code":    "INVALID_REQUEST",
			"message": "Invalid request format",
			"details": err.Error(),
		},
	})
}

// sessionToken extracts the opaque session token from the Authorization
// header (Bearer scheme) or the X-Session-Token header. The facade does
// all validation; an empty token simply fails the session gate there.
func sessionToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return token
		}
	}
	return c.GetHeader("X-Session-Token")
}
