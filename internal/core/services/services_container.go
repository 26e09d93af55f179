package services

import (
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
)

// NewServiceContainer wires every service facade over the persistence
// registry. The recorder and the period guard are built first since every
// workflow composes them.
func NewServiceContainer(registry portsrepo.Registry) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(registry)
	container.Period = NewPeriodService(registry)

	container.Wallet = NewWalletService(registry)
	container.Advance = NewAdvanceService(registry)

	container.Payment = NewPaymentService(registry, container.Ledger, container.Period)
	container.Transfer = NewTransferService(registry, container.Ledger, container.Period)
	container.Payroll = NewPayrollService(registry, container.Ledger, container.Period)
	container.Expense = NewExpenseService(registry, container.Ledger, container.Period)
	container.Refund = NewRefundService(registry, container.Ledger, container.Period)
	container.Investment = NewInvestmentService(registry, container.Ledger, container.Period)
	container.Reversal = NewReversalService(registry, container.Ledger, container.Period)

	return container
}
