package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/dto"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
)

// JobHandler serves the active-jobs screen and its status intents.
type JobHandler struct {
	ops *ops.Ops
}

// NewJobHandler creates the handler.
func NewJobHandler(o *ops.Ops) *JobHandler {
	return &JobHandler{ops: o}
}

// List GET /jobs?lat=&lng= re-fetches and returns the active list.
func (h *JobHandler) List(c *gin.Context) {
	var lat, lng *float64
	if raw := c.Query("lat"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			lat = &v
		}
	}
	if raw := c.Query("lng"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			lng = &v
		}
	}

	if err := h.ops.FetchJobs(c.Request.Context(), lat, lng); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Jobs)
}

// Accept POST /jobs/:bookingId/accept
func (h *JobHandler) Accept(c *gin.Context) {
	if err := h.ops.AcceptJob(c.Request.Context(), c.Param("bookingId")); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Jobs)
}

// Reject POST /jobs/:bookingId/reject
func (h *JobHandler) Reject(c *gin.Context) {
	if err := h.ops.RejectJob(c.Request.Context(), c.Param("bookingId")); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Jobs)
}

// Cancel POST /jobs/:bookingId/cancel
func (h *JobHandler) Cancel(c *gin.Context) {
	if err := h.ops.CancelJob(c.Request.Context(), c.Param("bookingId")); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Jobs)
}

// Complete POST /jobs/:bookingId/complete with the customer's OTP.
func (h *JobHandler) Complete(c *gin.Context) {
	var req dto.CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.CompleteJob(c.Request.Context(), c.Param("bookingId"), req.OTP); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Jobs)
}

// History GET /jobs/history
func (h *JobHandler) History(c *gin.Context) {
	if err := h.ops.FetchHistory(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().History)
}
