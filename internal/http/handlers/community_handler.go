package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/dto"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers/common"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
)

// CommunityHandler serves the parivaar feed and vendor-to-vendor social.
type CommunityHandler struct {
	ops *ops.Ops
}

// NewCommunityHandler creates the handler.
func NewCommunityHandler(o *ops.Ops) *CommunityHandler {
	return &CommunityHandler{ops: o}
}

// Feed GET /community/feed
func (h *CommunityHandler) Feed(c *gin.Context) {
	if err := h.ops.FetchFeed(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Feed)
}

// CreatePost POST /community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.CreatePost(c.Request.Context(), req.Content, req.Image); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.ops.Store().Snapshot().Feed)
}

// DeletePost DELETE /community/posts/:postId
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	if err := h.ops.DeletePost(c.Request.Context(), c.Param("postId")); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Feed)
}

// Clap POST /community/posts/:postId/clap
func (h *CommunityHandler) Clap(c *gin.Context) {
	if err := h.ops.ClapPost(c.Request.Context(), c.Param("postId")); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Feed)
}

// Comment POST /community/posts/:postId/comments
func (h *CommunityHandler) Comment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.CommentPost(c.Request.Context(), c.Param("postId"), req.Content); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.ops.Store().Snapshot().Feed)
}

// Threads GET /social/threads
func (h *CommunityHandler) Threads(c *gin.Context) {
	if err := h.ops.FetchSocialThreads(c.Request.Context()); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Social)
}

// Connect POST /social/connect
func (h *CommunityHandler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.Connect(c.Request.Context(), req.PeerVendorID); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Social)
}

// Accept POST /social/threads/:threadId/accept
func (h *CommunityHandler) Accept(c *gin.Context) {
	if err := h.ops.AcceptConnection(c.Request.Context(), c.Param("threadId")); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Social)
}

// Message POST /social/threads/:threadId/messages
func (h *CommunityHandler) Message(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.ops.SendSocialMessage(c.Request.Context(), c.Param("threadId"), req.Content); err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.ops.Store().Snapshot().Social)
}
