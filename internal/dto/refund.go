package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundRequest pays money back to a student. For security-deposit refunds
// DepositID must point at a HELD deposit.
type RefundRequest struct {
	StudentID  string          `json:"studentID" binding:"required"`
	RefundType string          `json:"refundType" binding:"required"`
	DepositID  *string         `json:"depositID"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	WalletID   string          `json:"walletID" binding:"required"`
	Reason     string          `json:"reason" binding:"required"`
	Date       *time.Time      `json:"date"`
}

// RefundResult carries the created refund and its ledger entry.
type RefundResult struct {
	RefundID      string `json:"refundID"`
	TransactionID string `json:"transactionID"`
	RefundNumber  string `json:"refundNumber"`
}

// SecurityDepositRequest records receipt of a refundable deposit.
type SecurityDepositRequest struct {
	StudentID string          `json:"studentID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	WalletID  string          `json:"walletID" binding:"required"`
	Notes     string          `json:"notes"`
	Date      *time.Time      `json:"date"`
}

// SecurityDepositResult carries the created deposit and its ledger entry.
type SecurityDepositResult struct {
	DepositID     string `json:"depositID"`
	TransactionID string `json:"transactionID"`
}
