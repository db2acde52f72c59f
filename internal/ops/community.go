package ops

import (
	"context"
	"strings"
	"time"

	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// FetchFeed pulls the community feed.
func (o *Ops) FetchFeed(ctx context.Context) error {
	if !o.beginFlag(state.FlagFeedLoading) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagFeedLoading)

	posts, err := o.backend.FetchFeed(ctx)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceFeed{Posts: posts})
	return nil
}

// CreatePost publishes a post and re-fetches the feed so ordering and author
// fields come from the server.
func (o *Ops) CreatePost(ctx context.Context, content, image string) error {
	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > forms.MaxPostLength {
		return apperror.New(apperror.ErrCodeValidation, "post must be between 1 and 2000 characters")
	}

	if !o.beginFlag(state.FlagPosting) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagPosting)

	if _, err := o.backend.CreatePost(ctx, content, image); err != nil {
		return err
	}
	return o.refetchFeed(ctx)
}

// DeletePost removes the vendor's own post.
func (o *Ops) DeletePost(ctx context.Context, postID string) error {
	if err := o.backend.DeletePost(ctx, postID); err != nil {
		return err
	}
	return o.refetchFeed(ctx)
}

// ClapPost bumps the counter optimistically, rolls back on failure, and lets
// the next feed fetch reconcile the true count.
func (o *Ops) ClapPost(ctx context.Context, postID string) error {
	o.store.Apply(state.ClapPost{PostID: postID, Delta: 1})

	if err := o.backend.ClapPost(ctx, postID); err != nil {
		o.store.Apply(state.ClapPost{PostID: postID, Delta: -1})
		return err
	}
	return nil
}

// CommentPost adds a comment and re-fetches the feed.
func (o *Ops) CommentPost(ctx context.Context, postID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > forms.MaxCommentLen {
		return apperror.New(apperror.ErrCodeValidation, "comment must be between 1 and 500 characters")
	}

	if _, err := o.backend.CommentPost(ctx, postID, content); err != nil {
		return err
	}
	return o.refetchFeed(ctx)
}

// FetchSocialThreads lists direct conversations.
func (o *Ops) FetchSocialThreads(ctx context.Context) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	threads, err := o.backend.FetchSocialThreads(ctx, vendorID)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceSocial{Threads: threads})
	return nil
}

// Connect requests a connection with another vendor.
func (o *Ops) Connect(ctx context.Context, peerVendorID string) error {
	if err := o.backend.Connect(ctx, peerVendorID); err != nil {
		return err
	}
	return o.FetchSocialThreads(ctx)
}

// AcceptConnection accepts an incoming request.
func (o *Ops) AcceptConnection(ctx context.Context, threadID string) error {
	if err := o.backend.AcceptConnection(ctx, threadID); err != nil {
		return err
	}
	return o.FetchSocialThreads(ctx)
}

// SendSocialMessage posts a direct message and appends the server record.
func (o *Ops) SendSocialMessage(ctx context.Context, threadID, content string) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > forms.MaxMessageLen {
		return apperror.New(apperror.ErrCodeValidation, "message must be between 1 and 2000 characters")
	}

	msg := models.ChatMessage{
		Sender:    vendorID,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Read:      true,
	}
	sent, err := o.backend.SendSocialMessage(ctx, threadID, msg)
	if err != nil {
		return err
	}
	o.store.Apply(state.AppendSocialMessage{ThreadID: threadID, Message: *sent})
	return nil
}

func (o *Ops) refetchFeed(ctx context.Context) error {
	posts, err := o.backend.FetchFeed(ctx)
	if err != nil {
		return nil
	}
	o.store.Apply(state.ReplaceFeed{Posts: posts})
	return nil
}
