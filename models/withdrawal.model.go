package models

import "time"

// WithdrawalStatus defines the state of a mentor payout request
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "PENDING"
	WithdrawalApproved WithdrawalStatus = "APPROVED"
	WithdrawalRejected WithdrawalStatus = "REJECTED"
)

// Withdrawal is a mentor payout request as stored by the LMS API
type Withdrawal struct {
	ID         uint             `json:"id"`
	MentorID   uint             `json:"mentor_id"`
	MentorName string           `json:"mentor_name,omitempty"`
	Amount     float64          `json:"amount"`
	Method     string           `json:"method"` // BANK, UPI
	Status     WithdrawalStatus `json:"status"`
	Note       string           `json:"note,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// WithdrawalRequest is sent when a mentor asks for a payout
type WithdrawalRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Note   string  `json:"note,omitempty"`
}

// WithdrawalFilter narrows withdrawal lists
type WithdrawalFilter struct {
	Status WithdrawalStatus
	From   time.Time
	To     time.Time
	PageQuery
}
