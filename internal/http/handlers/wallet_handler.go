package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/dto"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
)

// WalletHandler serves the wallet screen and the withdrawal form.
type WalletHandler struct {
	ops *ops.Ops
}

// NewWalletHandler creates the handler.
func NewWalletHandler(o *ops.Ops) *WalletHandler {
	return &WalletHandler{ops: o}
}

// Get GET /wallet re-fetches transactions and withdrawals.
func (h *WalletHandler) Get(c *gin.Context) {
	if err := h.ops.FetchWallet(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}

	snap := h.ops.Store().Snapshot()
	balance := 0.0
	if snap.Profile != nil {
		balance = snap.Profile.WalletBalance
	}
	c.JSON(http.StatusOK, gin.H{
		"balance":      balance,
		"transactions": snap.Transactions,
		"withdrawals":  snap.Withdrawals,
	})
}

// Withdraw POST /wallet/withdraw submits a payout request.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.RequestWithdrawal(c.Request.Context(), req.Amount); err != nil {
		common.RespondAppError(c, err)
		return
	}

	snap := h.ops.Store().Snapshot()
	common.RespondSuccess(c, http.StatusCreated, "withdrawal requested", gin.H{
		"withdrawals": snap.Withdrawals,
	})
}
