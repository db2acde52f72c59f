package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/gharkeseva/vendor-dashboard/internal/api"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Login(ctx context.Context, phone, password string) (*api.LoginResponse, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.LoginResponse), args.Error(1)
}

func (m *mockBackend) Register(ctx context.Context, fields map[string]string, uploads []api.RegisterUpload) (*api.LoginResponse, error) {
	args := m.Called(ctx, fields, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.LoginResponse), args.Error(1)
}

func (m *mockBackend) FetchJobs(ctx context.Context, vendorID string, lat, lng *float64) ([]models.Job, error) {
	args := m.Called(ctx, vendorID, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *mockBackend) FetchProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VendorProfile), args.Error(1)
}

func (m *mockBackend) UpdateProfile(ctx context.Context, vendorID string, patch models.ProfilePatch) (*models.VendorProfile, error) {
	args := m.Called(ctx, vendorID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VendorProfile), args.Error(1)
}

func (m *mockBackend) FetchHistory(ctx context.Context, vendorID string) ([]models.HistoryEntry, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HistoryEntry), args.Error(1)
}

func (m *mockBackend) UpdateJob(ctx context.Context, bookingID string, update api.JobUpdate) error {
	args := m.Called(ctx, bookingID, update)
	return args.Error(0)
}

func (m *mockBackend) SendChatMessage(ctx context.Context, bookingID string, msg models.ChatMessage) (*models.ChatMessage, error) {
	args := m.Called(ctx, bookingID, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *mockBackend) MarkChatRead(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *mockBackend) FetchWallet(ctx context.Context, vendorID string) ([]models.WalletTransaction, []models.WithdrawalRequest, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.WalletTransaction), args.Get(1).([]models.WithdrawalRequest), args.Error(2)
}

func (m *mockBackend) RequestWithdrawal(ctx context.Context, vendorID string, amount float64) error {
	args := m.Called(ctx, vendorID, amount)
	return args.Error(0)
}

func (m *mockBackend) FetchFeed(ctx context.Context) ([]models.CommunityPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

func (m *mockBackend) CreatePost(ctx context.Context, content, image string) (*models.CommunityPost, error) {
	args := m.Called(ctx, content, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *mockBackend) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockBackend) ClapPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockBackend) CommentPost(ctx context.Context, postID, content string) (*models.Comment, error) {
	args := m.Called(ctx, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *mockBackend) FetchSocialThreads(ctx context.Context, vendorID string) ([]models.SocialThread, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SocialThread), args.Error(1)
}

func (m *mockBackend) Connect(ctx context.Context, peerVendorID string) error {
	args := m.Called(ctx, peerVendorID)
	return args.Error(0)
}

func (m *mockBackend) AcceptConnection(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

func (m *mockBackend) SendSocialMessage(ctx context.Context, threadID string, msg models.ChatMessage) (*models.ChatMessage, error) {
	args := m.Called(ctx, threadID, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *mockBackend) FetchCoupons(ctx context.Context, vendorID string) ([]models.Coupon, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Coupon), args.Error(1)
}

func (m *mockBackend) FetchIncentives(ctx context.Context, vendorID string) ([]models.Incentive, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incentive), args.Error(1)
}

// newTestOps wires a mock backend to a real store and a logged-in session in
// a temp dir.
func newTestOps(t *testing.T) (*Ops, *mockBackend, *state.Store) {
	t.Helper()

	sess, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	if err := sess.Save(&session.Session{
		Token:  "test-token",
		Vendor: &models.VendorProfile{ID: "V1", Name: "Ravi", WalletBalance: 1000},
	}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	backend := new(mockBackend)
	store := state.NewStore()
	return New(backend, store, sess), backend, store
}
