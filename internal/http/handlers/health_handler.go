package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// HealthHandler reports the app's own status and the push-channel state.
type HealthHandler struct {
	store *state.Store
}

// NewHealthHandler creates the handler.
func NewHealthHandler(store *state.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"connection": snap.Connection,
	})
}
