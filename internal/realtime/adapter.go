package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gharkeseva/vendor-dashboard/internal/logger"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxBackoff = 30 * time.Second
)

// Server-emitted event names.
const (
	EventNewBooking     = "new_booking_alert"
	EventReceiveMessage = "receive_message"
)

// Client-emitted event names.
const (
	emitJoinVendor   = "join_vendor"
	emitToggleOnline = "toggle_online_status"
	emitJoinRoom     = "join_room"
)

// Event is one decoded push frame: {"type": ..., "data": ...}.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Adapter keeps one persistent connection to the push gateway, re-dialing
// with capped backoff when it drops. Incoming frames land on the events
// channel; the Dispatcher consumes them. Dropped events are acceptable: the
// server stays the source of truth and the app re-fetches periodically.
type Adapter struct {
	url     string
	store   *state.Store
	session *session.Store
	events  chan Event

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewAdapter creates the adapter; events is the channel the Dispatcher reads.
func NewAdapter(url string, store *state.Store, sess *session.Store, events chan Event) *Adapter {
	return &Adapter{
		url:     url,
		store:   store,
		session: sess,
		events:  events,
	}
}

// Run dials and pumps until the context ends. Each dropped connection is
// retried with doubling backoff up to the cap.
func (a *Adapter) Run(ctx context.Context) {
	backoff := time.Second

	for {
		if ctx.Err() != nil {
			return
		}
		if a.session.VendorID() == "" {
			// Not logged in yet; poll for a session instead of dialing.
			a.store.Apply(state.SetConnection{State: state.ConnDisconnected})
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			continue
		}

		a.store.Apply(state.SetConnection{State: state.ConnConnecting})

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, a.url, nil)
		if err != nil {
			logger.Log.WithError(err).Warn("push gateway dial failed")
			a.store.Apply(state.SetConnection{State: state.ConnDisconnected})
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		a.mu.Lock()
		a.conn = conn
		a.mu.Unlock()
		a.store.Apply(state.SetConnection{State: state.ConnConnected})

		if err := a.announce(); err != nil {
			logger.Log.WithError(err).Warn("push subscription failed")
		} else {
			a.store.Apply(state.SetConnection{State: state.ConnSubscribed})
		}

		a.pump(ctx, conn)

		a.mu.Lock()
		a.conn = nil
		a.mu.Unlock()
		a.store.Apply(state.SetConnection{State: state.ConnDisconnected})
	}
}

// announce tells the gateway who we are so future events get routed here.
func (a *Adapter) announce() error {
	sess := a.session.Current()
	if sess == nil || sess.Vendor == nil {
		return nil
	}

	if err := a.emit(emitJoinVendor, map[string]any{
		"vendorId":   sess.Vendor.ID,
		"categories": sess.Vendor.Categories,
	}); err != nil {
		return err
	}
	return a.emit(emitToggleOnline, map[string]any{
		"vendorId": sess.Vendor.ID,
		"online":   true,
	})
}

// JoinRoom subscribes to one booking's chat events; called when a thread
// opens on screen.
func (a *Adapter) JoinRoom(bookingID string) error {
	return a.emit(emitJoinRoom, map[string]any{"bookingId": bookingID})
}

func (a *Adapter) emit(event string, data any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.conn == nil {
		return nil
	}

	raw, err := json.Marshal(map[string]any{"type": event, "data": data})
	if err != nil {
		return err
	}
	_ = a.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return a.conn.WriteMessage(websocket.TextMessage, raw)
}

// pump reads frames onto the events channel until the connection dies.
func (a *Adapter) pump(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	go a.pingLoop(ctx, conn, done)
	defer close(done)

	conn.SetReadLimit(512 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if ctx.Err() != nil {
			return
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Debug("push connection closed")
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil || ev.Type == "" {
			logger.Log.WithError(err).Debug("dropping malformed push frame")
			continue
		}

		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *Adapter) pingLoop(ctx context.Context, conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.mu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			a.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
