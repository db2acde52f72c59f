package models

import "time"

// Job is a service booking assigned or assignable to the vendor.
type Job struct {
	BookingID        string        `json:"bookingId"`
	Service          string        `json:"service"`
	Status           string        `json:"bookingStatus"`
	Address          string        `json:"address"`
	Latitude         *float64      `json:"lat,omitempty"`
	Longitude        *float64      `json:"lng,omitempty"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	Price            float64       `json:"price"`
	ScheduledAt      *time.Time    `json:"scheduledAt,omitempty"`
	AssignedVendorID string        `json:"assignedVendorId,omitempty"`
	Chat             []ChatMessage `json:"chat,omitempty"`
	UnreadCount      int           `json:"unreadCount"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// IsActive reports whether the job still belongs on the active list.
func (j Job) IsActive() bool {
	return j.Status == BookingStatusPending || j.Status == BookingStatusInProgress
}

// HistoryEntry is a completed job record, read-only.
type HistoryEntry struct {
	BookingID        string    `json:"bookingId"`
	Service          string    `json:"service"`
	Price            float64   `json:"price"`
	SettlementStatus string    `json:"settlementStatus"`
	CompletedAt      time.Time `json:"completedAt"`
}
