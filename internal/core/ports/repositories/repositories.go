package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo    InvoiceRepositoryFacade
	PaymentRepo    PaymentReader
	AdjustmentRepo AdjustmentRepositoryFacade
	CreditNoteRepo CreditNoteReader
	TxManager      TransactionManager
}
