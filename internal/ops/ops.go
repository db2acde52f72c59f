package ops

import (
	"context"

	"github.com/gharkeseva/vendor-dashboard/internal/api"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// Backend is the slice of the REST client the operations layer needs.
// *api.Client satisfies it; tests substitute a mock.
type Backend interface {
	Login(ctx context.Context, phone, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, fields map[string]string, uploads []api.RegisterUpload) (*api.LoginResponse, error)
	FetchJobs(ctx context.Context, vendorID string, lat, lng *float64) ([]models.Job, error)
	FetchProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error)
	UpdateProfile(ctx context.Context, vendorID string, patch models.ProfilePatch) (*models.VendorProfile, error)
	FetchHistory(ctx context.Context, vendorID string) ([]models.HistoryEntry, error)
	UpdateJob(ctx context.Context, bookingID string, update api.JobUpdate) error
	SendChatMessage(ctx context.Context, bookingID string, msg models.ChatMessage) (*models.ChatMessage, error)
	MarkChatRead(ctx context.Context, bookingID string) error
	FetchWallet(ctx context.Context, vendorID string) ([]models.WalletTransaction, []models.WithdrawalRequest, error)
	RequestWithdrawal(ctx context.Context, vendorID string, amount float64) error
	FetchFeed(ctx context.Context) ([]models.CommunityPost, error)
	CreatePost(ctx context.Context, content, image string) (*models.CommunityPost, error)
	DeletePost(ctx context.Context, postID string) error
	ClapPost(ctx context.Context, postID string) error
	CommentPost(ctx context.Context, postID, content string) (*models.Comment, error)
	FetchSocialThreads(ctx context.Context, vendorID string) ([]models.SocialThread, error)
	Connect(ctx context.Context, peerVendorID string) error
	AcceptConnection(ctx context.Context, threadID string) error
	SendSocialMessage(ctx context.Context, threadID string, msg models.ChatMessage) (*models.ChatMessage, error)
	FetchCoupons(ctx context.Context, vendorID string) ([]models.Coupon, error)
	FetchIncentives(ctx context.Context, vendorID string) ([]models.Incentive, error)
}

// Ops bridges user intents to backend calls and commits results into the
// store. Every operation follows the same pattern: set a flag, call the
// backend, commit the authoritative data, clear the flag. On failure the
// prior state stays in place and the error goes back to the surface.
type Ops struct {
	backend Backend
	store   *state.Store
	session *session.Store
}

// New creates the operations layer.
func New(backend Backend, store *state.Store, sess *session.Store) *Ops {
	return &Ops{backend: backend, store: store, session: sess}
}

// Store exposes the underlying state store for the surface's snapshot reads.
func (o *Ops) Store() *state.Store {
	return o.store
}

// beginFlag marks an operation in flight; false means one already is.
func (o *Ops) beginFlag(key string) bool {
	return o.store.TrySetFlag(key)
}

func (o *Ops) endFlag(key string) {
	o.store.Apply(state.SetFlag{Key: key, On: false})
}
