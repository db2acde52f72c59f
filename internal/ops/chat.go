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

// SendChatMessage posts a message into a booking thread and appends the
// server's authoritative record (which carries the issued message id).
func (o *Ops) SendChatMessage(ctx context.Context, bookingID, content string) error {
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

	sent, err := o.backend.SendChatMessage(ctx, bookingID, msg)
	if err != nil {
		return err
	}

	o.store.Apply(state.AppendChatMessage{BookingID: bookingID, Message: *sent})
	return nil
}

// OpenThread marks a booking chat as on screen and sends the read receipt.
func (o *Ops) OpenThread(ctx context.Context, bookingID string) error {
	o.store.Apply(state.SetOpenThread{BookingID: bookingID})
	o.store.Apply(state.MarkThreadRead{BookingID: bookingID})

	// A failed receipt only delays the unread reset on other devices.
	return o.backend.MarkChatRead(ctx, bookingID)
}

// CloseThread clears the on-screen thread marker.
func (o *Ops) CloseThread() {
	o.store.Apply(state.SetOpenThread{BookingID: ""})
}
