package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
)

// PromoHandler serves coupons and incentive targets.
type PromoHandler struct {
	ops *ops.Ops
}

// NewPromoHandler creates the handler.
func NewPromoHandler(o *ops.Ops) *PromoHandler {
	return &PromoHandler{ops: o}
}

// Coupons GET /promo/coupons returns only the currently-valid coupons.
func (h *PromoHandler) Coupons(c *gin.Context) {
	if err := h.ops.FetchCoupons(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.ActiveCoupons(time.Now()))
}

// Incentives GET /promo/incentives
func (h *PromoHandler) Incentives(c *gin.Context) {
	if err := h.ops.FetchIncentives(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Incentives)
}
