package state

import (
	"github.com/gharkeseva/vendor-dashboard/internal/models"
)

// ConnectionState tracks the push-channel lifecycle.
type ConnectionState string

const (
	ConnDisconnected ConnectionState = "disconnected"
	ConnConnecting   ConnectionState = "connecting"
	ConnConnected    ConnectionState = "connected"
	ConnSubscribed   ConnectionState = "subscribed"
)

// AppState is the last-known snapshot of server data plus local UI flags.
// Every field is a cache; the backend stays the source of truth and every
// commit is last-write-wins.
type AppState struct {
	Profile      *models.VendorProfile
	Jobs         []models.Job
	History      []models.HistoryEntry
	Transactions []models.WalletTransaction
	Withdrawals  []models.WithdrawalRequest
	Feed         []models.CommunityPost
	Social       []models.SocialThread
	Coupons      []models.Coupon
	Incentives   []models.Incentive

	// OpenThreadID is the booking whose chat is currently on screen; pushed
	// messages for other threads only bump unread counts.
	OpenThreadID string

	Connection ConnectionState
	Flags      map[string]bool
}

// Flag keys for in-flight operations. Per-booking actions get a derived key
// so two bookings never block each other.
const (
	FlagJobsLoading    = "jobs.loading"
	FlagProfileLoading = "profile.loading"
	FlagHistoryLoading = "history.loading"
	FlagWalletLoading  = "wallet.loading"
	FlagFeedLoading    = "feed.loading"
	FlagWithdrawing    = "wallet.withdrawing"
	FlagPosting        = "feed.posting"
)

// JobActionFlag returns the flag key guarding one booking's status mutation.
func JobActionFlag(bookingID string) string {
	return "job.action." + bookingID
}

// clone returns a snapshot safe for callers to retain: slices and the profile
// are copied, nested chat slices are not (readers treat them as immutable).
func (s *AppState) clone() AppState {
	out := *s

	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	out.Jobs = append([]models.Job(nil), s.Jobs...)
	out.History = append([]models.HistoryEntry(nil), s.History...)
	out.Transactions = append([]models.WalletTransaction(nil), s.Transactions...)
	out.Withdrawals = append([]models.WithdrawalRequest(nil), s.Withdrawals...)
	out.Feed = append([]models.CommunityPost(nil), s.Feed...)
	out.Social = append([]models.SocialThread(nil), s.Social...)
	out.Coupons = append([]models.Coupon(nil), s.Coupons...)
	out.Incentives = append([]models.Incentive(nil), s.Incentives...)

	out.Flags = make(map[string]bool, len(s.Flags))
	for k, v := range s.Flags {
		out.Flags[k] = v
	}
	return out
}

// JobByID finds a job in the snapshot; ok is false when absent.
func (s AppState) JobByID(bookingID string) (models.Job, bool) {
	for _, j := range s.Jobs {
		if j.BookingID == bookingID {
			return j, true
		}
	}
	return models.Job{}, false
}
