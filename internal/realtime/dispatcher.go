package realtime

import (
	"context"
	"encoding/json"

	"github.com/gharkeseva/vendor-dashboard/internal/goroutine"
	"github.com/gharkeseva/vendor-dashboard/internal/logger"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// JobRefresher triggers the authoritative jobs re-fetch after a push event.
type JobRefresher interface {
	FetchJobs(ctx context.Context, lat, lng *float64) error
}

// Dispatcher consumes decoded push events and turns them into store actions.
// It is decoupled from the connection: tests feed synthetic events into the
// same channel the adapter writes to.
type Dispatcher struct {
	store     *state.Store
	refresher JobRefresher
	events    <-chan Event
}

// NewDispatcher creates a dispatcher reading from events.
func NewDispatcher(store *state.Store, refresher JobRefresher, events <-chan Event) *Dispatcher {
	return &Dispatcher{store: store, refresher: refresher, events: events}
}

// Run consumes events until the context ends.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.events:
			d.handle(ctx, ev)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) {
	switch ev.Type {
	case EventNewBooking:
		var job models.Job
		if err := json.Unmarshal(ev.Data, &job); err != nil || job.BookingID == "" {
			logger.Log.WithError(err).Warn("dropping malformed booking alert")
			return
		}
		// Show the pushed booking immediately, then reconcile against the
		// server list in the background.
		d.store.Apply(state.UpsertJob{Job: job})
		if d.refresher != nil {
			goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
				_ = d.refresher.FetchJobs(ctx, nil, nil)
			})
		}

	case EventReceiveMessage:
		var payload struct {
			BookingID string             `json:"bookingId"`
			Message   models.ChatMessage `json:"message"`
		}
		if err := json.Unmarshal(ev.Data, &payload); err != nil || payload.BookingID == "" {
			logger.Log.WithError(err).Warn("dropping malformed chat event")
			return
		}
		d.store.Apply(state.AppendChatMessage{
			BookingID: payload.BookingID,
			Message:   payload.Message,
		})

	default:
		logger.Log.WithField("type", ev.Type).Debug("ignoring unknown push event")
	}
}
