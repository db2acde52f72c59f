package models

import "time"

// VendorProfile is the logged-in partner's record as last seen from the
// backend. The client never owns any of these fields; every fetch overwrites
// the whole struct.
type VendorProfile struct {
	ID            string       `json:"_id"`
	Name          string       `json:"name"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email,omitempty"`
	Categories    []string     `json:"categories"`
	Hub           string       `json:"hub,omitempty"`
	WalletBalance float64      `json:"walletBalance"`
	ProfileImage  string       `json:"profileImage,omitempty"`
	Online        bool         `json:"online"`
	KYC           KYCDetails   `json:"kyc"`
	Bank          *BankDetails `json:"bankDetails,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// KYCDetails holds identity fields collected at registration.
type KYCDetails struct {
	AadharNumber string `json:"aadharNumber,omitempty"`
	PANNumber    string `json:"panNumber,omitempty"`
	AadharImage  string `json:"aadharImage,omitempty"`
	PANImage     string `json:"panImage,omitempty"`
	Verified     bool   `json:"verified"`
}

// BankDetails is the payout destination shown on the financial-details screen.
type BankDetails struct {
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bankName,omitempty"`
	UPIID         string `json:"upiId,omitempty"`
}

// ProfilePatch carries the partial fields of a profile edit. Nil means
// "leave unchanged"; the backend merges server-side.
type ProfilePatch struct {
	Name         *string      `json:"name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Categories   []string     `json:"categories,omitempty"`
	ProfileImage *string      `json:"profileImage,omitempty"`
	Online       *bool        `json:"online,omitempty"`
	Bank         *BankDetails `json:"bankDetails,omitempty"`
}
