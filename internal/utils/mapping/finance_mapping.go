package mapping

import (
	"github.com/unifin/campus_finance_app/internal/core/domain"
	"github.com/unifin/campus_finance_app/internal/models"
)

// ToDomainAdvance converts a model StudentAdvanceBalance to its domain form.
func ToDomainAdvance(m models.StudentAdvanceBalance) domain.StudentAdvanceBalance {
	return domain.StudentAdvanceBalance{
		StudentID:   m.StudentID,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAdvance converts a domain StudentAdvanceBalance to its model.
func ToModelAdvance(d domain.StudentAdvanceBalance) models.StudentAdvanceBalance {
	return models.StudentAdvanceBalance{
		StudentID:   d.StudentID,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model FeeInvoice to its domain form.
func ToDomainInvoice(m models.FeeInvoice) domain.FeeInvoice {
	return domain.FeeInvoice{
		InvoiceID:           m.InvoiceID,
		StudentID:           m.StudentID,
		TotalAmount:         m.TotalAmount,
		Discount:            m.Discount,
		Penalty:             m.Penalty,
		AmountPaid:          m.AmountPaid,
		DiscountFromAdvance: m.DiscountFromAdvance,
		DueDate:             m.DueDate,
		Status:              domain.InvoiceStatus(m.Status),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSlip converts a model SalarySlip to its domain form.
func ToDomainSlip(m models.SalarySlip) domain.SalarySlip {
	return domain.SalarySlip{
		SlipID:        m.SlipID,
		EmployeeID:    m.EmployeeID,
		Month:         m.Month,
		Year:          m.Year,
		BaseSalary:    m.BaseSalary,
		Allowances:    m.Allowances,
		Deductions:    m.Deductions,
		Status:        domain.SlipStatus(m.Status),
		PaidAt:        m.PaidAt,
		TransactionID: m.TransactionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpense converts a domain ExpenseRecord to its model.
func ToModelExpense(d domain.ExpenseRecord) models.ExpenseRecord {
	return models.ExpenseRecord{
		ExpenseID:     d.ExpenseID,
		Title:         d.Title,
		CategoryID:    d.CategoryID,
		Amount:        d.Amount,
		WalletID:      d.WalletID,
		TransactionID: d.TransactionID,
		ExpenseDate:   d.ExpenseDate,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model ExpenseRecord to its domain form.
func ToDomainExpense(m models.ExpenseRecord) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ExpenseID:     m.ExpenseID,
		Title:         m.Title,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		WalletID:      m.WalletID,
		TransactionID: m.TransactionID,
		ExpenseDate:   m.ExpenseDate,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRefund converts a domain Refund to its model.
func ToModelRefund(d domain.Refund) models.Refund {
	return models.Refund{
		RefundID:      d.RefundID,
		StudentID:     d.StudentID,
		RefundType:    string(d.RefundType),
		Amount:        d.Amount,
		Reason:        d.Reason,
		RefundNumber:  d.RefundNumber,
		TransactionID: d.TransactionID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRefund converts a model Refund to its domain form.
func ToDomainRefund(m models.Refund) domain.Refund {
	return domain.Refund{
		RefundID:      m.RefundID,
		StudentID:     m.StudentID,
		RefundType:    domain.RefundType(m.RefundType),
		Amount:        m.Amount,
		Reason:        m.Reason,
		RefundNumber:  m.RefundNumber,
		TransactionID: m.TransactionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDeposit converts a domain SecurityDeposit to its model.
func ToModelDeposit(d domain.SecurityDeposit) models.SecurityDeposit {
	return models.SecurityDeposit{
		DepositID:     d.DepositID,
		StudentID:     d.StudentID,
		Amount:        d.Amount,
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		RefundedAt:    d.RefundedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeposit converts a model SecurityDeposit to its domain form.
func ToDomainDeposit(m models.SecurityDeposit) domain.SecurityDeposit {
	return domain.SecurityDeposit{
		DepositID:     m.DepositID,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		Status:        domain.DepositStatus(m.Status),
		TransactionID: m.TransactionID,
		RefundedAt:    m.RefundedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestment converts a model Investment to its domain form.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:   m.InvestmentID,
		Name:           m.Name,
		Principal:      m.Principal,
		MaturityAmount: m.MaturityAmount,
		Status:         domain.InvestmentStatus(m.Status),
		PlacedTxID:     m.PlacedTxID,
		MaturedTxID:    m.MaturedTxID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
