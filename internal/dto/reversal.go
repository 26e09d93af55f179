package dto

import "time"

// ReversalRequest undoes a previously recorded transaction.
type ReversalRequest struct {
	Reason string     `json:"reason" binding:"required"`
	Date   *time.Time `json:"date"`
}

// ReversalResult carries the offsetting ledger entry.
type ReversalResult struct {
	ReversalTxID string `json:"reversalTxID"`
}
