package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/dto"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
	"github.com/gharkeseva/vendor-dashboard/internal/realtime"
)

// ChatHandler serves booking chat threads.
type ChatHandler struct {
	ops     *ops.Ops
	adapter *realtime.Adapter
}

// NewChatHandler creates the handler. adapter may be nil in tests.
func NewChatHandler(o *ops.Ops, adapter *realtime.Adapter) *ChatHandler {
	return &ChatHandler{ops: o, adapter: adapter}
}

// Open POST /chat/:bookingId/open marks the thread on screen, sends the read
// receipt, and subscribes the push channel to the booking room.
func (h *ChatHandler) Open(c *gin.Context) {
	bookingID := c.Param("bookingId")

	if h.adapter != nil {
		_ = h.adapter.JoinRoom(bookingID)
	}
	if err := h.ops.OpenThread(c.Request.Context(), bookingID); err != nil {
		common.RespondAppError(c, err)
		return
	}

	snap := h.ops.Store().Snapshot()
	job, ok := snap.JobByID(bookingID)
	if !ok {
		common.RespondError(c, http.StatusNotFound, "booking not found")
		return
	}
	c.JSON(http.StatusOK, job.Chat)
}

// Close POST /chat/:bookingId/close clears the on-screen marker.
func (h *ChatHandler) Close(c *gin.Context) {
	h.ops.CloseThread()
	common.RespondSuccess(c, http.StatusOK, "closed", nil)
}

// Send POST /chat/:bookingId posts a message into the thread.
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	bookingID := c.Param("bookingId")
	if err := h.ops.SendChatMessage(c.Request.Context(), bookingID, req.Content); err != nil {
		common.RespondAppError(c, err)
		return
	}

	snap := h.ops.Store().Snapshot()
	if job, ok := snap.JobByID(bookingID); ok {
		c.JSON(http.StatusOK, job.Chat)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
