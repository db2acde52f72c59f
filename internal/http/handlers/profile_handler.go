package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/dto"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
)

// ProfileHandler serves the profile and financial-details screens.
type ProfileHandler struct {
	ops *ops.Ops
}

// NewProfileHandler creates the handler.
func NewProfileHandler(o *ops.Ops) *ProfileHandler {
	return &ProfileHandler{ops: o}
}

// Get GET /profile re-fetches and returns the vendor record.
func (h *ProfileHandler) Get(c *gin.Context) {
	if err := h.ops.FetchProfile(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Profile)
}

// Update PATCH /profile applies a partial edit.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	patch := models.ProfilePatch{
		Name:         req.Name,
		Email:        req.Email,
		Categories:   req.Categories,
		ProfileImage: req.ProfileImage,
		Online:       req.Online,
	}
	if req.Bank != nil {
		patch.Bank = &models.BankDetails{
			AccountHolder: req.Bank.AccountHolder,
			AccountNumber: req.Bank.AccountNumber,
			IFSC:          req.Bank.IFSC,
			BankName:      req.Bank.BankName,
			UPIID:         req.Bank.UPIID,
		}
	}

	if err := h.ops.UpdateProfile(c.Request.Context(), patch); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Profile)
}

// State GET /state returns the whole dashboard snapshot for the UI's
// initial render.
func (h *ProfileHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.ops.Store().Snapshot())
}
