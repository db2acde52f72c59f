package models

import "time"

// Coupon is a promotional code with a validity window. The window is gated
// against the client clock only; the backend re-checks on redemption.
type Coupon struct {
	ID         string    `json:"_id"`
	Code       string    `json:"code"`
	Discount   float64   `json:"discount"`
	ValidFrom  time.Time `json:"validFrom"`
	ValidUntil time.Time `json:"validUntil"`
}

// ActiveAt reports whether the coupon window covers the given instant.
func (c Coupon) ActiveAt(now time.Time) bool {
	return !now.Before(c.ValidFrom) && !now.After(c.ValidUntil)
}

// Incentive is a progress-tracked bonus target.
type Incentive struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Target      int       `json:"target"`
	Progress    int       `json:"progress"`
	Reward      float64   `json:"reward"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
