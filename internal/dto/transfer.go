package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest moves money between two distinct wallets.
type TransferRequest struct {
	FromWalletID string          `json:"fromWalletID" binding:"required"`
	ToWalletID   string          `json:"toWalletID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Notes        string          `json:"notes"`
	Date         *time.Time      `json:"date"`
}

// TransferResult carries both sides of the recorded pair.
type TransferResult struct {
	OutTxID string `json:"outTxID"`
	InTxID  string `json:"inTxID"`
}
