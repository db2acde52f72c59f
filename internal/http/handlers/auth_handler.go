package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/dto"
	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/storage"
)

// AuthHandler drives login, logout and the registration wizard.
type AuthHandler struct {
	ops     *ops.Ops
	session *session.Store
	wizard  *forms.Wizard
	uploads *storage.UploadStore
}

// NewAuthHandler creates the handler.
func NewAuthHandler(o *ops.Ops, sess *session.Store, wizard *forms.Wizard, uploads *storage.UploadStore) *AuthHandler {
	return &AuthHandler{ops: o, session: sess, wizard: wizard, uploads: uploads}
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.Login(c.Request.Context(), req.Phone, req.Password); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.session.Current())
}

// Logout POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.ops.Logout(); err != nil {
		common.RespondAppError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, "logged out", nil)
}

// Session GET /auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	sess := h.session.Current()
	if sess == nil {
		common.RespondUnauthorized(c, "")
		return
	}
	c.JSON(http.StatusOK, sess)
}

// RegisterBasics POST /auth/register/basics
func (h *AuthHandler) RegisterBasics(c *gin.Context) {
	var req dto.RegisterBasicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.wizard.SaveBasics(req.Name, req.Phone, req.Password, req.Categories, req.Hub); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	common.RespondSuccess(c, http.StatusOK, "saved", h.wizard.Draft().Step)
}

// UploadDocument POST /auth/register/documents stages one KYC image and
// returns its path for the KYC step.
func (h *AuthHandler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "document file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondBadRequest(c, "failed to read document")
		return
	}
	defer src.Close()

	path, err := h.uploads.Stage(c.Request.Context(), file.Filename, src)
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

// RegisterKYC POST /auth/register/kyc
func (h *AuthHandler) RegisterKYC(c *gin.Context) {
	var req dto.RegisterKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.wizard.SaveKYC(req.AadharNumber, req.PANNumber, req.AadharImagePath, req.PANImagePath); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	common.RespondSuccess(c, http.StatusOK, "saved", h.wizard.Draft().Step)
}

// RegisterBank POST /auth/register/bank
func (h *AuthHandler) RegisterBank(c *gin.Context) {
	var req dto.RegisterBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.wizard.SaveBank(req.AccountHolder, req.AccountNumber, req.IFSC, req.UPIID); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	common.RespondSuccess(c, http.StatusOK, "saved", h.wizard.Draft().Step)
}

// RegisterSubmit POST /auth/register/submit sends the whole wizard in one
// multipart request. The draft survives a failure.
func (h *AuthHandler) RegisterSubmit(c *gin.Context) {
	if err := h.ops.SubmitRegistration(c.Request.Context(), h.wizard, h.uploads); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.session.Current())
}

// RegisterDraft GET /auth/register/draft lets the UI resume the wizard.
func (h *AuthHandler) RegisterDraft(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizard.Draft())
}
