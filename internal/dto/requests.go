package dto

// LoginRequest is the local surface's login form.
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterBasicsRequest is page one of the registration wizard.
type RegisterBasicsRequest struct {
	Name       string   `json:"name" binding:"required"`
	Phone      string   `json:"phone" binding:"required"`
	Password   string   `json:"password" binding:"required"`
	Categories []string `json:"categories" binding:"required"`
	Hub        string   `json:"hub"`
}

// RegisterKYCRequest is page two; image paths come from the upload endpoint.
type RegisterKYCRequest struct {
	AadharNumber    string `json:"aadharNumber" binding:"required"`
	PANNumber       string `json:"panNumber" binding:"required"`
	AadharImagePath string `json:"aadharImagePath" binding:"required"`
	PANImagePath    string `json:"panImagePath" binding:"required"`
}

// RegisterBankRequest is page three.
type RegisterBankRequest struct {
	AccountHolder string `json:"accountHolder" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required"`
	UPIID         string `json:"upiId"`
}

// UpdateProfileRequest carries partial profile fields from the edit screen.
type UpdateProfileRequest struct {
	Name         *string      `json:"name"`
	Email        *string      `json:"email"`
	Categories   []string     `json:"categories"`
	ProfileImage *string      `json:"profileImage"`
	Online       *bool        `json:"online"`
	Bank         *BankDetails `json:"bankDetails"`
}

// BankDetails mirrors the financial-details form.
type BankDetails struct {
	AccountHolder string `json:"accountHolder" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required"`
	BankName      string `json:"bankName"`
	UPIID         string `json:"upiId"`
}

// CompleteJobRequest carries the customer's OTP.
type CompleteJobRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// SendMessageRequest is a chat message body.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// WithdrawRequest is the payout form.
type WithdrawRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePostRequest is the community post form.
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// CommentRequest is a post comment body.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ConnectRequest asks for a connection with another vendor.
type ConnectRequest struct {
	PeerVendorID string `json:"peerVendorId" binding:"required"`
}
