package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Validation constants
const (
	PhoneLength     = 10
	AadharLength    = 12
	OTPLength       = 4
	MinNameLength   = 2
	MaxNameLength   = 100
	MinPasswordLen  = 6
	MaxAddressLen   = 300
	MinWithdrawal   = 200.0
	MaxPostLength   = 2000
	MaxMessageLen   = 2000
	MaxCommentLen   = 500
)

var (
	panRegex  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// ValidatePhone checks an Indian mobile number: exactly ten digits.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("phone number is required")
	}
	if len(phone) != PhoneLength || !allDigits(phone) {
		return fmt.Errorf("phone number must be exactly %d digits", PhoneLength)
	}
	return nil
}

// ValidatePAN checks the PAN card pattern (AAAAA9999A).
func ValidatePAN(pan string) error {
	pan = strings.ToUpper(strings.TrimSpace(pan))
	if pan == "" {
		return fmt.Errorf("PAN number is required")
	}
	if !panRegex.MatchString(pan) {
		return fmt.Errorf("PAN number must match the format AAAAA9999A")
	}
	return nil
}

// ValidateAadhar checks a twelve-digit Aadhar number; spaces from the
// grouped display format are ignored.
func ValidateAadhar(aadhar string) error {
	digits := strings.ReplaceAll(strings.TrimSpace(aadhar), " ", "")
	if digits == "" {
		return fmt.Errorf("aadhar number is required")
	}
	if len(digits) != AadharLength || !allDigits(digits) {
		return fmt.Errorf("aadhar number must be exactly %d digits", AadharLength)
	}
	return nil
}

// ValidateIFSC checks a bank IFSC after normalization.
func ValidateIFSC(ifsc string) error {
	ifsc = NormalizeIFSC(ifsc)
	if ifsc == "" {
		return fmt.Errorf("IFSC code is required")
	}
	if !ifscRegex.MatchString(ifsc) {
		return fmt.Errorf("IFSC code must match the format AAAA0XXXXXX")
	}
	return nil
}

// ValidateOTP checks the completion code shape. Rejecting here keeps a bad
// code from ever reaching the network.
func ValidateOTP(otp string) error {
	otp = strings.TrimSpace(otp)
	if len(otp) != OTPLength || !allDigits(otp) {
		return fmt.Errorf("OTP must be exactly %d digits", OTPLength)
	}
	return nil
}

// ValidateWithdrawalAmount checks the payout bounds against the current
// wallet balance.
func ValidateWithdrawalAmount(amount, balance float64) error {
	if amount < MinWithdrawal {
		return fmt.Errorf("minimum withdrawal amount is ₹%.0f", MinWithdrawal)
	}
	if amount > balance {
		return fmt.Errorf("withdrawal amount exceeds wallet balance")
	}
	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len([]rune(name)) < MinNameLength || len([]rune(name)) > MaxNameLength {
		return fmt.Errorf("name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
	return nil
}

// ValidateAccountNumber checks a bank account number (9 to 18 digits).
func ValidateAccountNumber(account string) error {
	account = strings.TrimSpace(account)
	if account == "" {
		return fmt.Errorf("account number is required")
	}
	if len(account) < 9 || len(account) > 18 || !allDigits(account) {
		return fmt.Errorf("account number must be 9 to 18 digits")
	}
	return nil
}

// ValidateNonEmpty checks that a required field has content.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) || r > '9' {
			return false
		}
	}
	return s != ""
}
