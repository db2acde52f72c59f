package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gharkeseva/vendor-dashboard/internal/api"
	"github.com/gharkeseva/vendor-dashboard/internal/config"
	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	httpHandlers "github.com/gharkeseva/vendor-dashboard/internal/http/handlers"
	httpRouter "github.com/gharkeseva/vendor-dashboard/internal/http/router"
	"github.com/gharkeseva/vendor-dashboard/internal/logger"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
	"github.com/gharkeseva/vendor-dashboard/internal/realtime"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
	"github.com/gharkeseva/vendor-dashboard/internal/storage"
)

func main() {
	// Context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load configuration: %v", err)
	}

	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Durable client state: session blob and registration draft.
	sess, err := session.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("main: failed to prepare session store: %v", err)
	}

	uploads, err := storage.NewUploadStore(filepath.Join(cfg.DataDir, "uploads"), cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: failed to prepare upload staging: %v", err)
	}

	wizard, err := forms.NewWizard(sess)
	if err != nil {
		log.Fatalf("main: failed to resume registration draft: %v", err)
	}

	// Backend client and the state store.
	backend := api.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, sess.Token)
	store := state.NewStore()
	go store.Run(ctx)

	operations := ops.New(backend, store, sess)

	// Push channel: adapter feeds events, dispatcher applies them.
	events := make(chan realtime.Event, 64)
	adapter := realtime.NewAdapter(cfg.PushGatewayURL, store, sess, events)
	dispatcher := realtime.NewDispatcher(store, operations, events)
	go adapter.Run(ctx)
	go dispatcher.Run(ctx)

	// Session expiry watch: once stale, the surface demands a fresh login.
	watcher := session.NewWatcher(sess, time.Minute, func() {
		store.Apply(state.Reset{})
		_ = sess.Clear()
	})
	go watcher.Run(ctx)

	// Periodic re-fetch keeps the cache honest even when push events drop.
	go pollJobs(ctx, cfg.RefetchInterval, sess, operations)

	// HTTP handlers.
	authHandler := httpHandlers.NewAuthHandler(operations, sess, wizard, uploads)
	jobHandler := httpHandlers.NewJobHandler(operations)
	profileHandler := httpHandlers.NewProfileHandler(operations)
	walletHandler := httpHandlers.NewWalletHandler(operations)
	chatHandler := httpHandlers.NewChatHandler(operations, adapter)
	communityHandler := httpHandlers.NewCommunityHandler(operations)
	promoHandler := httpHandlers.NewPromoHandler(operations)
	healthHandler := httpHandlers.NewHealthHandler(store)

	engine := httpRouter.SetupRouter(cfg, sess, authHandler, jobHandler, profileHandler, walletHandler, chatHandler, communityHandler, promoHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Shut the server down when the signal arrives.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: failed to stop http server: %v", err)
		}
	}()

	log.Printf("main: dashboard surface listening on port %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: server exited with error: %v", err)
	}
}

// pollJobs re-fetches the active list on a timer while a session exists.
func pollJobs(ctx context.Context, interval time.Duration, sess *session.Store, operations *ops.Ops) {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if sess.VendorID() == "" {
				continue
			}
			if err := operations.FetchJobs(ctx, nil, nil); err != nil {
				logger.Log.WithError(err).Debug("background jobs refetch failed")
			}
		}
	}
}
