package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gharkeseva/vendor-dashboard/internal/logger"
)

// TokenExpiry reads the exp claim without verifying the signature; the
// backend owns the signing key and verifies on every request. A token with
// no exp claim is treated as non-expiring.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Watcher polls the stored token's expiry and invokes onExpired once the
// session goes stale, so the surface can demand a fresh login instead of
// letting requests start failing with 401s.
type Watcher struct {
	store     *Store
	interval  time.Duration
	onExpired func()
}

// NewWatcher creates a watcher. A zero interval defaults to one minute.
func NewWatcher(store *Store, interval time.Duration, onExpired func()) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{store: store, interval: interval, onExpired: onExpired}
}

// Run blocks until the context ends, checking expiry on each tick.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var fired bool
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			token := w.store.Token()
			if token == "" {
				fired = false
				continue
			}
			exp, ok := TokenExpiry(token)
			if !ok || time.Now().Before(exp) {
				fired = false
				continue
			}
			if !fired {
				fired = true
				logger.Log.Warn("session token expired, re-auth required")
				if w.onExpired != nil {
					w.onExpired()
				}
			}
		}
	}
}
