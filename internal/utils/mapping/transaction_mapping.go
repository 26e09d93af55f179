package mapping

import (
	"github.com/unifin/campus_finance_app/internal/core/domain"
	"github.com/unifin/campus_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The typed reference pair is flattened to the two nullable columns.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		TxType:         string(d.TxType),
		Amount:         d.Amount,
		LinkedTxID:     d.LinkedTxID,
		Notes:          d.Notes,
		PerformedBy:    d.PerformedBy,
		TxDate:         d.Date,
		IsReversed:     d.IsReversed,
		ReversedByTxID: d.ReversedByTxID,
		RunningBalance: d.RunningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.WalletID != "" {
		walletID := d.WalletID
		m.WalletID = &walletID
	}
	if d.Reference != nil {
		kind := string(d.Reference.Kind)
		id := d.Reference.ID
		m.ReferenceKind = &kind
		m.ReferenceID = &id
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		TxType:         domain.TxType(m.TxType),
		Amount:         m.Amount,
		LinkedTxID:     m.LinkedTxID,
		Notes:          m.Notes,
		PerformedBy:    m.PerformedBy,
		Date:           m.TxDate,
		IsReversed:     m.IsReversed,
		ReversedByTxID: m.ReversedByTxID,
		RunningBalance: m.RunningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.WalletID != nil {
		d.WalletID = *m.WalletID
	}
	if m.ReferenceKind != nil && m.ReferenceID != nil {
		d.Reference = &domain.Reference{
			Kind: domain.ReferenceKind(*m.ReferenceKind),
			ID:   *m.ReferenceID,
		}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
