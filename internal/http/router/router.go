package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gharkeseva/vendor-dashboard/internal/config"
	"github.com/gharkeseva/vendor-dashboard/internal/http/handlers"
	"github.com/gharkeseva/vendor-dashboard/internal/http/middleware"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
)

// SetupRouter wires the local UI surface.
func SetupRouter(
	cfg *config.Config,
	sess *session.Store,
	authHandler *handlers.AuthHandler,
	jobHandler *handlers.JobHandler,
	profileHandler *handlers.ProfileHandler,
	walletHandler *handlers.WalletHandler,
	chatHandler *handlers.ChatHandler,
	communityHandler *handlers.CommunityHandler,
	promoHandler *handlers.PromoHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/session", authHandler.Session)
		auth.GET("/register/draft", authHandler.RegisterDraft)
		auth.POST("/register/basics", authHandler.RegisterBasics)
		auth.POST("/register/documents", authHandler.UploadDocument)
		auth.POST("/register/kyc", authHandler.RegisterKYC)
		auth.POST("/register/bank", authHandler.RegisterBank)
		auth.POST("/register/submit", authHandler.RegisterSubmit)
	}

	app := r.Group("/")
	app.Use(middleware.SessionRequired(sess))
	{
		app.GET("/state", profileHandler.State)

		app.GET("/jobs", jobHandler.List)
		app.GET("/jobs/history", jobHandler.History)
		app.POST("/jobs/:bookingId/accept", jobHandler.Accept)
		app.POST("/jobs/:bookingId/reject", jobHandler.Reject)
		app.POST("/jobs/:bookingId/cancel", jobHandler.Cancel)
		app.POST("/jobs/:bookingId/complete", jobHandler.Complete)

		app.GET("/profile", profileHandler.Get)
		app.PATCH("/profile", profileHandler.Update)

		app.GET("/wallet", walletHandler.Get)
		app.POST("/wallet/withdraw", walletHandler.Withdraw)

		app.POST("/chat/:bookingId", chatHandler.Send)
		app.POST("/chat/:bookingId/open", chatHandler.Open)
		app.POST("/chat/:bookingId/close", chatHandler.Close)

		app.GET("/community/feed", communityHandler.Feed)
		app.POST("/community/posts", communityHandler.CreatePost)
		app.DELETE("/community/posts/:postId", communityHandler.DeletePost)
		app.POST("/community/posts/:postId/clap", communityHandler.Clap)
		app.POST("/community/posts/:postId/comments", communityHandler.Comment)

		app.GET("/social/threads", communityHandler.Threads)
		app.POST("/social/connect", communityHandler.Connect)
		app.POST("/social/threads/:threadId/accept", communityHandler.Accept)
		app.POST("/social/threads/:threadId/messages", communityHandler.Message)

		app.GET("/promo/coupons", promoHandler.Coupons)
		app.GET("/promo/incentives", promoHandler.Incentives)
	}

	return r
}
