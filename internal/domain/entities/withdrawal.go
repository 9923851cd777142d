package entities

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// Withdrawal represents a withdrawal request. The amount is deducted from
// the user's balance when the request is created; approval keeps the
// deduction and rejection refunds it.
type Withdrawal struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"userId"`
	Bank          string           `json:"bank"`
	AccountName   string           `json:"accountName"`
	AccountNumber string           `json:"accountNumber"`
	Amount        float64          `json:"amount"`
	ReceiptID     string           `json:"receiptId"`
	Status        WithdrawalStatus `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// RequestWithdrawalInput represents input for filing a withdrawal request
type RequestWithdrawalInput struct {
	Bank          string  `json:"bank" binding:"required"`
	AccountName   string  `json:"accountName" binding:"required"`
	AccountNumber string  `json:"accountNumber" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

// RequestWithdrawalResponse represents the result of filing a request
type RequestWithdrawalResponse struct {
	RequestID uuid.UUID        `json:"requestId"`
	ReceiptID string           `json:"receiptId"`
	Status    WithdrawalStatus `json:"status"`
	Balance   float64          `json:"balance"`
}

// RejectWithdrawalResponse represents the result of rejecting a request
type RejectWithdrawalResponse struct {
	Status         WithdrawalStatus `json:"status"`
	RefundedAmount float64          `json:"refundedAmount"`
}
