package state

import (
	"github.com/google/uuid"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
)

// ReplaceJobs overwrites the active-jobs list with the latest response.
type ReplaceJobs struct {
	Jobs []models.Job
}

func (a ReplaceJobs) apply(s *Store) {
	s.state.Jobs = a.Jobs
}

// UpsertJob injects a pushed booking: replaces an existing entry with the
// same bookingId, otherwise prepends so new work shows first.
type UpsertJob struct {
	Job models.Job
}

func (a UpsertJob) apply(s *Store) {
	for i, j := range s.state.Jobs {
		if j.BookingID == a.Job.BookingID {
			s.state.Jobs[i] = a.Job
			return
		}
	}
	s.state.Jobs = append([]models.Job{a.Job}, s.state.Jobs...)
}

// RemoveJob drops a booking from the active view.
type RemoveJob struct {
	BookingID string
}

func (a RemoveJob) apply(s *Store) {
	for i, j := range s.state.Jobs {
		if j.BookingID == a.BookingID {
			s.state.Jobs = append(s.state.Jobs[:i], s.state.Jobs[i+1:]...)
			return
		}
	}
}

// PatchJobStatus sets one booking's status.
type PatchJobStatus struct {
	BookingID string
	Status    string
}

func (a PatchJobStatus) apply(s *Store) {
	for i, j := range s.state.Jobs {
		if j.BookingID == a.BookingID {
			s.state.Jobs[i].Status = a.Status
			return
		}
	}
}

// PatchJobUnread sets one booking's unread counter.
type PatchJobUnread struct {
	BookingID string
	Count     int
}

func (a PatchJobUnread) apply(s *Store) {
	for i, j := range s.state.Jobs {
		if j.BookingID == a.BookingID {
			s.state.Jobs[i].UnreadCount = a.Count
			return
		}
	}
}

// AppendChatMessage appends to a booking thread unless the thread already
// holds the same message (server ID match, timestamp fallback).
type AppendChatMessage struct {
	BookingID string
	Message   models.ChatMessage
}

func (a AppendChatMessage) apply(s *Store) {
	for i, j := range s.state.Jobs {
		if j.BookingID != a.BookingID {
			continue
		}
		for _, m := range j.Chat {
			if models.SameMessage(m, a.Message) {
				return
			}
		}
		s.state.Jobs[i].Chat = append(append([]models.ChatMessage(nil), j.Chat...), a.Message)
		if s.state.OpenThreadID != a.BookingID && !a.Message.Read {
			s.state.Jobs[i].UnreadCount++
		}
		return
	}
}

// MarkThreadRead flags every message in a booking thread as read and zeroes
// the unread counter.
type MarkThreadRead struct {
	BookingID string
}

func (a MarkThreadRead) apply(s *Store) {
	for i, j := range s.state.Jobs {
		if j.BookingID != a.BookingID {
			continue
		}
		chat := append([]models.ChatMessage(nil), j.Chat...)
		for k := range chat {
			chat[k].Read = true
		}
		s.state.Jobs[i].Chat = chat
		s.state.Jobs[i].UnreadCount = 0
		return
	}
}

// SetOpenThread records which chat is on screen. Empty means none.
type SetOpenThread struct {
	BookingID string
}

func (a SetOpenThread) apply(s *Store) {
	s.state.OpenThreadID = a.BookingID
}

// SetProfile overwrites the profile wholesale.
type SetProfile struct {
	Profile *models.VendorProfile
}

func (a SetProfile) apply(s *Store) {
	s.state.Profile = a.Profile
}

// BeginProfilePatch applies an optimistic edit tagged with a correlation id.
// The pre-patch profile is retained until the matching confirm or rollback.
type BeginProfilePatch struct {
	ID    uuid.UUID
	Patch models.ProfilePatch
}

func (a BeginProfilePatch) apply(s *Store) {
	if s.state.Profile == nil {
		return
	}
	prev := *s.state.Profile
	s.pendingProfile[a.ID] = &prev

	next := prev
	applyPatch(&next, a.Patch)
	s.state.Profile = &next
}

// ConfirmProfilePatch commits the authoritative profile for a pending edit.
type ConfirmProfilePatch struct {
	ID      uuid.UUID
	Profile *models.VendorProfile
}

func (a ConfirmProfilePatch) apply(s *Store) {
	delete(s.pendingProfile, a.ID)
	if a.Profile != nil {
		s.state.Profile = a.Profile
	}
}

// RollbackProfilePatch restores the pre-patch profile for a failed edit.
type RollbackProfilePatch struct {
	ID uuid.UUID
}

func (a RollbackProfilePatch) apply(s *Store) {
	if prev, ok := s.pendingProfile[a.ID]; ok {
		s.state.Profile = prev
		delete(s.pendingProfile, a.ID)
	}
}

func applyPatch(p *models.VendorProfile, patch models.ProfilePatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Categories != nil {
		p.Categories = patch.Categories
	}
	if patch.ProfileImage != nil {
		p.ProfileImage = *patch.ProfileImage
	}
	if patch.Online != nil {
		p.Online = *patch.Online
	}
	if patch.Bank != nil {
		bank := *patch.Bank
		p.Bank = &bank
	}
}

// ReplaceHistory overwrites the completed-jobs list.
type ReplaceHistory struct {
	Entries []models.HistoryEntry
}

func (a ReplaceHistory) apply(s *Store) {
	s.state.History = a.Entries
}

// ReplaceWallet overwrites transactions and withdrawal requests.
type ReplaceWallet struct {
	Transactions []models.WalletTransaction
	Withdrawals  []models.WithdrawalRequest
}

func (a ReplaceWallet) apply(s *Store) {
	s.state.Transactions = a.Transactions
	s.state.Withdrawals = a.Withdrawals
}

// ReplaceFeed overwrites the community feed.
type ReplaceFeed struct {
	Posts []models.CommunityPost
}

func (a ReplaceFeed) apply(s *Store) {
	s.state.Feed = a.Posts
}

// ClapPost bumps a post's clap counter optimistically; the next feed refetch
// reconciles with the server count.
type ClapPost struct {
	PostID string
	Delta  int
}

func (a ClapPost) apply(s *Store) {
	for i, p := range s.state.Feed {
		if p.ID == a.PostID {
			s.state.Feed[i].Claps += a.Delta
			if s.state.Feed[i].Claps < 0 {
				s.state.Feed[i].Claps = 0
			}
			return
		}
	}
}

// ReplaceSocial overwrites the direct-thread list.
type ReplaceSocial struct {
	Threads []models.SocialThread
}

func (a ReplaceSocial) apply(s *Store) {
	s.state.Social = a.Threads
}

// AppendSocialMessage appends to a direct thread with the same dedup rule as
// booking chat.
type AppendSocialMessage struct {
	ThreadID string
	Message  models.ChatMessage
}

func (a AppendSocialMessage) apply(s *Store) {
	for i, t := range s.state.Social {
		if t.ID != a.ThreadID {
			continue
		}
		for _, m := range t.Messages {
			if models.SameMessage(m, a.Message) {
				return
			}
		}
		s.state.Social[i].Messages = append(append([]models.ChatMessage(nil), t.Messages...), a.Message)
		return
	}
}

// ReplaceCoupons overwrites the coupon list.
type ReplaceCoupons struct {
	Coupons []models.Coupon
}

func (a ReplaceCoupons) apply(s *Store) {
	s.state.Coupons = a.Coupons
}

// ReplaceIncentives overwrites the incentive list.
type ReplaceIncentives struct {
	Incentives []models.Incentive
}

func (a ReplaceIncentives) apply(s *Store) {
	s.state.Incentives = a.Incentives
}

// SetConnection records the push-channel lifecycle state.
type SetConnection struct {
	State ConnectionState
}

func (a SetConnection) apply(s *Store) {
	s.state.Connection = a.State
}

// Reset clears everything on logout; connection state survives because the
// push channel owns it.
type Reset struct{}

func (a Reset) apply(s *Store) {
	conn := s.state.Connection
	s.state = AppState{
		Connection: conn,
		Flags:      make(map[string]bool),
	}
	s.pendingProfile = make(map[uuid.UUID]*models.VendorProfile)
}

// SetFlag toggles an in-flight flag.
type SetFlag struct {
	Key string
	On  bool
}

func (a SetFlag) apply(s *Store) {
	if a.On {
		s.state.Flags[a.Key] = true
	} else {
		delete(s.state.Flags, a.Key)
	}
}
