package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgrunewald/giftvault/internal/api/middleware"
	"github.com/mgrunewald/giftvault/internal/domain"
)

// ErrorResponder maps domain errors onto HTTP responses and logs the
// full error server-side with the request id for correlation.
type ErrorResponder struct {
	logger *slog.Logger
}

// NewErrorResponder creates an error responder.
func NewErrorResponder(logger *slog.Logger) *ErrorResponder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorResponder{logger: logger}
}

// Respond writes the error to the client and the log.
func (r *ErrorResponder) Respond(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)

	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		r.logger.Error("unhandled error",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"type":    string(domain.InternalError),
				"code":    "INTERNAL",
				"message": "An internal error occurred",
			},
		})
		return
	}

	r.logger.Info("request failed",
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error_type", string(domainErr.Type)),
		slog.String("error_code", domainErr.Code),
	)

	c.JSON(statusForType(domainErr.Type), gin.H{
		"success": false,
		"error": gin.H{
			"type":    string(domainErr.Type),
			"code":    domainErr.Code,
			"message": domainErr.Message,
			"details": domainErr.Details,
		},
	})
}

// statusForType maps the domain error taxonomy onto HTTP status codes.
func statusForType(t domain.ErrorType) int {
	switch t {
	case domain.ValidationError:
		return http.StatusBadRequest
	case domain.AuthenticationError:
		return http.StatusUnauthorized
	case domain.AuthorizationError:
		return http.StatusForbidden
	case domain.NotFoundError:
		return http.StatusNotFound
	case domain.ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
