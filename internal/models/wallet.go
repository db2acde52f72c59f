package models

import "time"

// WalletTransaction is a read-only ledger display record.
type WalletTransaction struct {
	ID        string    `json:"_id"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"` // "credit" or "debit"
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WithdrawalRequest is a payout request as displayed to the vendor.
type WithdrawalRequest struct {
	ID          string     `json:"_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}
