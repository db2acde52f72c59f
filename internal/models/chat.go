package models

import "time"

// ChatMessage is one message in a booking thread or a direct social thread.
// ID is server-issued; older backend records carry an empty ID and are only
// distinguishable by timestamp.
type ChatMessage struct {
	ID        string    `json:"_id,omitempty"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// SameMessage reports whether two records describe the same message: match by
// server ID when both carry one, otherwise by timestamp equality.
func SameMessage(a, b ChatMessage) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	return a.Timestamp.Equal(b.Timestamp)
}

// SocialThread is a direct conversation between two vendors.
type SocialThread struct {
	ID           string        `json:"_id"`
	PeerVendorID string        `json:"peerVendorId"`
	PeerName     string        `json:"peerName"`
	Status       string        `json:"status"`
	Messages     []ChatMessage `json:"messages,omitempty"`
	UnreadCount  int           `json:"unreadCount"`
}
