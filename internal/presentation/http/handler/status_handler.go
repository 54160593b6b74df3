package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shoplite/shopmanager-api/internal/application/service"
	"github.com/shoplite/shopmanager-api/internal/presentation/http/dto/response"
)

// StatusHandler exposes the stores' degraded-mode flags and error slots so
// clients can tell when they are looking at fallback data.
type StatusHandler struct {
	data *service.DataService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(data *service.DataService) *StatusHandler {
	return &StatusHandler{data: data}
}

// Get handles reading the per-store status
func (h *StatusHandler) Get(c *gin.Context) {
	response.OK(c, "Store status retrieved successfully", h.data.Status())
}

// ClearErrors handles clearing every store's error slot
func (h *StatusHandler) ClearErrors(c *gin.Context) {
	h.data.ClearErrors()
	response.NoContent(c)
}

// Reload handles refreshing every store from its gateway
func (h *StatusHandler) Reload(c *gin.Context) {
	h.data.Load(c.Request.Context())
	response.OK(c, "Stores reloaded", h.data.Status())
}
