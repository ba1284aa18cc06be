package services

import (
	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// renderer may be nil when PDF output is not needed.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer portssvc.CreditNoteRenderer, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The credit note issuer comes first since approvals depend on it
	container.CreditNote = NewCreditNoteService(repos.CreditNoteRepo, repos.InvoiceRepo, renderer, options...)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.TxManager, options...)
	container.Payment = NewPaymentService(repos.InvoiceRepo, repos.PaymentRepo, repos.TxManager, options...)
	container.Adjustment = NewAdjustmentService(
		repos.InvoiceRepo,
		repos.AdjustmentRepo,
		repos.TxManager,
		container.CreditNote,
		cfg.DiscountRoundingPlaces,
		options...,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceSvcFacade    = (*invoiceService)(nil)
	_ portssvc.PaymentSvcFacade    = (*paymentService)(nil)
	_ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)
	_ portssvc.CreditNoteSvcFacade = (*creditNoteService)(nil)
)
