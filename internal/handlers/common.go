package handlers

import (
	"net/http"

	"github.com/cyphera/marketplace-api/internal/apperrors"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/cyphera/marketplace-api/internal/middleware"
	"github.com/cyphera/marketplace-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StatusForKind maps an error kind to its HTTP status code.
func StatusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindPrecondition:
		return http.StatusConflict
	case apperrors.KindSignatureMismatch:
		return http.StatusUnauthorized
	case apperrors.KindChainCommunication:
		return http.StatusBadGateway
	case apperrors.KindChainRevert:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the error text safe to return to a caller. Chain and
// internal failures expose only their summary since the cause may carry
// RPC endpoint details.
func publicMessage(err error) string {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return "Internal server error"
	}
	switch appErr.Kind {
	case apperrors.KindChainCommunication, apperrors.KindChainRevert, apperrors.KindInternal:
		return appErr.Message
	default:
		return err.Error()
	}
}

// sendError logs err once with the request's correlation ID and writes the
// classified error response.
func sendError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := StatusForKind(kind)
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("kind", string(kind)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields...)
	} else {
		logger.Warn("Request rejected", fields...)
	}

	c.JSON(status, responses.ErrorResponse{
		Error:         publicMessage(err),
		Kind:          string(kind),
		Reason:        apperrors.ReasonOf(err),
		CorrelationID: correlationID,
	})
}

// sendBindError reports a request body that failed to decode or bind.
func sendBindError(c *gin.Context, err error) {
	sendError(c, apperrors.Validation("invalid request body: %v", err))
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
