package handlers

import (
	"net/http"

	"github.com/cyphera/marketplace-api/internal/interfaces"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/cyphera/marketplace-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	service interfaces.MarketplaceService
	chainID string
}

func NewHealthHandler(service interfaces.MarketplaceService, chainID string) *HealthHandler {
	return &HealthHandler{service: service, chainID: chainID}
}

// Health godoc
// @Summary      Health check
// @Description  Checks that the server is running and the chain RPC is reachable
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Failure      503  {object}  responses.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.service.HealthCheck(c.Request.Context()); err != nil {
		logger.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, responses.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "ok", ChainID: h.chainID})
}
