package models

// BookingStatus wire values used by the backend.
const (
	BookingStatusPending    = "Pending"
	BookingStatusInProgress = "In Progress"
	BookingStatusCompleted  = "Completed"
	BookingStatusCancelled  = "Cancelled"
)

// ValidBookingStatuses lists the statuses the backend accepts.
var ValidBookingStatuses = map[string]struct{}{
	BookingStatusPending:    {},
	BookingStatusInProgress: {},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

// WithdrawalStatus constants.
const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusApproved  = "approved"
	WithdrawalStatusRejected  = "rejected"
	WithdrawalStatusProcessed = "processed"
)

// SettlementStatus constants for completed jobs.
const (
	SettlementStatusUnsettled = "unsettled"
	SettlementStatusSettled   = "settled"
)

// ConnectionStatus constants for social connections.
const (
	ConnectionStatusRequested = "requested"
	ConnectionStatusAccepted  = "accepted"
)

// MinWithdrawalAmount is the smallest withdrawal the backend accepts, in rupees.
const MinWithdrawalAmount = 200.0

// OTPLength is the length of the job-completion code.
const OTPLength = 4
