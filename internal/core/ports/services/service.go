package services

// ServiceContainer holds all service facades for dependency injection into handlers.
type ServiceContainer struct {
	Ledger     LedgerSvcFacade
	Period     PeriodSvcFacade
	Wallet     WalletSvcFacade
	Advance    AdvanceSvcFacade
	Payment    PaymentSvcFacade
	Transfer   TransferSvcFacade
	Payroll    PayrollSvcFacade
	Expense    ExpenseSvcFacade
	Refund     RefundSvcFacade
	Investment InvestmentSvcFacade
	Reversal   ReversalSvcFacade
}
