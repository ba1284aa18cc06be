package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/edu_billing_ledger/internal/apperrors"
	"github.com/SscSPs/edu_billing_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/edu_billing_ledger/internal/core/ports/services"
	"github.com/SscSPs/edu_billing_ledger/internal/core/services"
	"github.com/SscSPs/edu_billing_ledger/internal/dto"
	"github.com/SscSPs/edu_billing_ledger/internal/platform/config"
	"github.com/SscSPs/edu_billing_ledger/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// LedgerServiceTestSuite exercises the services end to end against the memory store.
type LedgerServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svc   *portssvc.ServiceContainer
	clock time.Time
	seq   int
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.clock = fixedNow
	suite.seq = 0

	var mu sync.Mutex
	opts := []services.ServiceOption{
		services.WithClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return suite.clock
		}),
		services.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			suite.seq++
			return fmt.Sprintf("id-%03d", suite.seq)
		}),
	}
	suite.svc = services.NewServiceContainer(&config.Config{}, memory.NewRepositoryProvider(suite.store), nil, opts...)
}

func (suite *LedgerServiceTestSuite) advance(d time.Duration) {
	suite.clock = suite.clock.Add(d)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func (suite *LedgerServiceTestSuite) createInvoice(gross string, due time.Time, status domain.InvoiceStatus) *domain.Invoice {
	inv, err := suite.svc.Invoice.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{
		TermID:      "term-2025-1",
		PayerType:   domain.PayerParent,
		PayerID:     "parent-7",
		PayerName:   "A. Parent",
		GrossAmount: dec(gross),
		DueDate:     due,
		Status:      &status,
	}, "admin-1")
	suite.Require().NoError(err)
	return inv
}

func (suite *LedgerServiceTestSuite) pay(invoiceID, amount string) *domain.RecordedPayment {
	res, err := suite.svc.Payment.RecordPayment(suite.ctx, invoiceID, dto.RecordPaymentRequest{
		Amount: dec(amount),
		Method: domain.PaymentBankTransfer,
		Date:   suite.clock,
	}, "cashier-1")
	suite.Require().NoError(err)
	return res
}

func (suite *LedgerServiceTestSuite) fileAdjustment(invoiceID string, req dto.CreateAdjustmentRequest) *domain.AdjustmentRequest {
	adj, err := suite.svc.Adjustment.CreateAdjustmentRequest(suite.ctx, invoiceID, req, "staff-1")
	suite.Require().NoError(err)
	return adj
}

func (suite *LedgerServiceTestSuite) approve(adjustmentID string) *domain.AdjustmentDecision {
	decision, err := suite.svc.Adjustment.DecideAdjustment(suite.ctx, adjustmentID, dto.DecideAdjustmentRequest{
		Decision:     domain.AdjustmentApproved,
		DecisionNote: "ok",
	}, "approver-1")
	suite.Require().NoError(err)
	return decision
}

func (suite *LedgerServiceTestSuite) assertInvariants(invoiceID string) {
	inv, err := suite.svc.Invoice.GetInvoice(suite.ctx, invoiceID)
	suite.Require().NoError(err)
	suite.True(inv.NetAmount.Equal(inv.GrossAmount.Sub(inv.DiscountAmount)), "net = gross - discount")
	suite.False(inv.Balance.IsNegative(), "balance never negative")
	suite.True(inv.Balance.LessThanOrEqual(inv.NetAmount), "balance <= net")

	payments, err := suite.svc.Payment.ListPaymentsForInvoice(suite.ctx, invoiceID)
	suite.Require().NoError(err)
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	suite.True(sum.Equal(inv.AmountPaid), "payments sum %s != amountPaid %s", sum, inv.AmountPaid)
}

// --- Invoices ---

func (suite *LedgerServiceTestSuite) TestCreateInvoice_DerivesAmountsAndDefaults() {
	inv, err := suite.svc.Invoice.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{
		TermID:         "term-1",
		PayerType:      domain.PayerSchool,
		PayerID:        "school-1",
		GrossAmount:    dec("1000"),
		DiscountAmount: decPtr("100"),
		AmountPaid:     decPtr("300"),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("id-001", inv.InvoiceID)
	suite.True(inv.NetAmount.Equal(dec("900")))
	suite.True(inv.Balance.Equal(dec("600")))
	suite.Equal("admin-1", inv.CreatedBy)
	suite.Equal(fixedNow, inv.CreatedAt)
	// Stored status defaults to draft, a prior payment makes it partially paid.
	suite.Equal(domain.InvoicePartiallyPaid, inv.Status)

	stored, err := suite.store.FindInvoiceByID(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceDraft, stored.Status)
}

func (suite *LedgerServiceTestSuite) TestCreateInvoice_RejectsBadAmounts() {
	tests := []struct {
		name string
		req  dto.CreateInvoiceRequest
	}{
		{"negative gross", dto.CreateInvoiceRequest{GrossAmount: dec("-1")}},
		{"negative discount", dto.CreateInvoiceRequest{GrossAmount: dec("10"), DiscountAmount: decPtr("-1")}},
		{"discount above gross", dto.CreateInvoiceRequest{GrossAmount: dec("10"), DiscountAmount: decPtr("11")}},
		{"negative paid", dto.CreateInvoiceRequest{GrossAmount: dec("10"), AmountPaid: decPtr("-5")}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.svc.Invoice.CreateInvoice(suite.ctx, tt.req, "admin-1")
			suite.ErrorIs(err, apperrors.ErrInvalidAmount)
		})
	}
}

func (suite *LedgerServiceTestSuite) TestGetInvoice_NotFound() {
	_, err := suite.svc.Invoice.GetInvoice(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetInvoice_IsStableWithoutMutation() {
	inv := suite.createInvoice("100", fixedNow.Add(24*time.Hour), domain.InvoiceSent)

	first, err := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	second, err := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)

	suite.Equal(first.Status, second.Status)
}

func (suite *LedgerServiceTestSuite) TestListInvoices_FiltersOnEffectiveStatus() {
	overdue := suite.createInvoice("5000", fixedNow.Add(-24*time.Hour), domain.InvoiceSent)
	suite.createInvoice("100", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	cancelled := suite.createInvoice("100", fixedNow.Add(-24*time.Hour), domain.InvoiceCancelled)

	status := domain.InvoiceOverdue
	list, err := suite.svc.Invoice.ListInvoices(suite.ctx, domain.InvoiceFilter{Status: &status})

	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(overdue.InvoiceID, list[0].InvoiceID)

	status = domain.InvoiceCancelled
	list, err = suite.svc.Invoice.ListInvoices(suite.ctx, domain.InvoiceFilter{Status: &status})
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(cancelled.InvoiceID, list[0].InvoiceID)
}

func (suite *LedgerServiceTestSuite) TestUpdateInvoiceStatus_OverridesWithoutTouchingAmounts() {
	inv := suite.createInvoice("800", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	suite.pay(inv.InvoiceID, "200")

	updated, err := suite.svc.Invoice.UpdateInvoiceStatus(suite.ctx, inv.InvoiceID, domain.InvoiceCancelled, "admin-2")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceCancelled, updated.Status)
	suite.True(updated.Balance.Equal(dec("600")))
	suite.Equal("admin-2", updated.LastUpdatedBy)

	_, err = suite.svc.Invoice.UpdateInvoiceStatus(suite.ctx, "missing", domain.InvoiceCancelled, "admin-2")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.Invoice.UpdateInvoiceStatus(suite.ctx, inv.InvoiceID, domain.InvoiceStatus("void"), "admin-2")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestGetTermSummary() {
	a := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	suite.createInvoice("500", fixedNow.Add(-24*time.Hour), domain.InvoiceSent)
	suite.pay(a.InvoiceID, "1000")

	summary, err := suite.svc.Invoice.GetTermSummary(suite.ctx, "term-2025-1")

	suite.Require().NoError(err)
	suite.Equal(2, summary.InvoiceCount)
	suite.True(summary.GrossAmount.Equal(dec("1500")))
	suite.True(summary.AmountPaid.Equal(dec("1000")))
	suite.True(summary.Balance.Equal(dec("500")))
	suite.Equal(1, summary.ByStatus[domain.InvoicePaid])
	suite.Equal(1, summary.ByStatus[domain.InvoiceOverdue])

	_, err = suite.svc.Invoice.GetTermSummary(suite.ctx, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Payments ---

func (suite *LedgerServiceTestSuite) TestScenario_PartialThenFullPayment() {
	inv := suite.createInvoice("3000", fixedNow.Add(30*24*time.Hour), domain.InvoiceSent)
	suite.Equal(domain.InvoiceSent, inv.Status)

	first := suite.pay(inv.InvoiceID, "1500")
	suite.True(first.Invoice.AmountPaid.Equal(dec("1500")))
	suite.True(first.Invoice.Balance.Equal(dec("1500")))
	suite.Equal(domain.InvoicePartiallyPaid, first.Invoice.Status)
	suite.True(first.Overpayment.IsZero())

	suite.advance(time.Hour)
	second := suite.pay(inv.InvoiceID, "1500")
	suite.True(second.Invoice.AmountPaid.Equal(dec("3000")))
	suite.True(second.Invoice.Balance.IsZero())
	suite.Equal(domain.InvoicePaid, second.Invoice.Status)

	suite.assertInvariants(inv.InvoiceID)
}

func (suite *LedgerServiceTestSuite) TestScenario_PastDueIsOverdue() {
	inv := suite.createInvoice("5000", fixedNow.Add(-24*time.Hour), domain.InvoiceSent)
	suite.Equal(domain.InvoiceOverdue, inv.Status)
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_Overpayment() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)

	res := suite.pay(inv.InvoiceID, "1200")

	suite.True(res.Invoice.Balance.IsZero())
	suite.True(res.Invoice.AmountPaid.Equal(dec("1200")))
	suite.True(res.Overpayment.Equal(dec("200")))
	suite.Equal(domain.InvoicePaid, res.Invoice.Status)
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_Errors() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)

	_, err := suite.svc.Payment.RecordPayment(suite.ctx, inv.InvoiceID, dto.RecordPaymentRequest{Amount: dec("0"), Method: domain.PaymentCash}, "u")
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.svc.Payment.RecordPayment(suite.ctx, inv.InvoiceID, dto.RecordPaymentRequest{Amount: dec("-5"), Method: domain.PaymentCash}, "u")
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.svc.Payment.RecordPayment(suite.ctx, inv.InvoiceID, dto.RecordPaymentRequest{Amount: dec("5"), Method: "barter"}, "u")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.Payment.RecordPayment(suite.ctx, "missing", dto.RecordPaymentRequest{Amount: dec("5"), Method: domain.PaymentCash}, "u")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	payments, err := suite.svc.Payment.ListPaymentsForInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.Empty(payments)
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_DefaultsDateAndRecorder() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)

	res, err := suite.svc.Payment.RecordPayment(suite.ctx, inv.InvoiceID, dto.RecordPaymentRequest{Amount: dec("10"), Method: domain.PaymentCash}, "cashier-9")

	suite.Require().NoError(err)
	suite.Equal(fixedNow, res.Payment.Date)
	suite.Equal("cashier-9", res.Payment.RecordedBy)
	suite.Equal("cashier-9", res.Invoice.LastUpdatedBy)
}

func (suite *LedgerServiceTestSuite) TestListPaymentsForInvoice_NewestFirst() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	for i, day := range []int{3, 1, 2} {
		_, err := suite.svc.Payment.RecordPayment(suite.ctx, inv.InvoiceID, dto.RecordPaymentRequest{
			Amount:    dec("10"),
			Method:    domain.PaymentCash,
			Reference: fmt.Sprintf("r%d", i),
			Date:      fixedNow.AddDate(0, 0, -day),
		}, "u")
		suite.Require().NoError(err)
	}

	payments, err := suite.svc.Payment.ListPaymentsForInvoice(suite.ctx, inv.InvoiceID)

	suite.Require().NoError(err)
	suite.Require().Len(payments, 3)
	suite.Equal("r1", payments[0].Reference)
	suite.Equal("r2", payments[1].Reference)
	suite.Equal("r0", payments[2].Reference)

	_, err = suite.svc.Payment.ListPaymentsForInvoice(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_ConcurrentPaymentsAreSerialised() {
	inv := suite.createInvoice("10000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	const workers = 40

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.svc.Payment.RecordPayment(suite.ctx, inv.InvoiceID, dto.RecordPaymentRequest{
				Amount: dec("25"),
				Method: domain.PaymentCard,
			}, "u")
			suite.NoError(err)
		}()
	}
	wg.Wait()

	got, err := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.True(got.AmountPaid.Equal(dec("1000")), "amountPaid %s", got.AmountPaid)
	suite.True(got.Balance.Equal(dec("9000")), "balance %s", got.Balance)
	suite.assertInvariants(inv.InvoiceID)
}

// --- Adjustments ---

func (suite *LedgerServiceTestSuite) TestScenario_PercentDiscountApproved() {
	inv := suite.createInvoice("2000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:            domain.AdjustmentDiscount,
		Reason:          "sibling discount",
		DiscountPercent: decPtr("10"),
	})
	suite.Equal(domain.AdjustmentPending, adj.Status)
	suite.Equal("staff-1", adj.RequestedBy)

	untouched, err := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.True(untouched.DiscountAmount.IsZero(), "filing a request has no financial effect")

	decision := suite.approve(adj.AdjustmentID)

	suite.Require().NotNil(decision.Invoice)
	suite.True(decision.Invoice.DiscountAmount.Equal(dec("200")))
	suite.True(decision.Invoice.NetAmount.Equal(dec("1800")))
	suite.True(decision.Invoice.Balance.Equal(dec("1800")))
	suite.Nil(decision.CreditNote)
	suite.Equal(domain.AdjustmentApproved, decision.Adjustment.Status)
	suite.Equal("approver-1", *decision.Adjustment.ApprovedBy)
	suite.Equal("ok", decision.Adjustment.DecisionNote)
	suite.assertInvariants(inv.InvoiceID)
}

func (suite *LedgerServiceTestSuite) TestDiscount_AbsoluteAmountWinsOverPercent() {
	inv := suite.createInvoice("2000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	suite.pay(inv.InvoiceID, "500")
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:            domain.AdjustmentDiscount,
		DiscountAmount:  decPtr("150"),
		DiscountPercent: decPtr("50"),
	})

	decision := suite.approve(adj.AdjustmentID)

	suite.True(decision.Invoice.DiscountAmount.Equal(dec("150")))
	suite.True(decision.Invoice.NetAmount.Equal(dec("1850")))
	suite.True(decision.Invoice.Balance.Equal(dec("1350")))
}

func (suite *LedgerServiceTestSuite) TestDiscount_ThatWouldMakeNetNegativeIsRejected() {
	inv := suite.createInvoice("100", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:           domain.AdjustmentDiscount,
		DiscountAmount: decPtr("150"),
	})

	_, err := suite.svc.Adjustment.DecideAdjustment(suite.ctx, adj.AdjustmentID, dto.DecideAdjustmentRequest{Decision: domain.AdjustmentApproved}, "approver-1")

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	stored, err := suite.store.FindAdjustmentByID(suite.ctx, adj.AdjustmentID)
	suite.Require().NoError(err)
	suite.Equal(domain.AdjustmentPending, stored.Status, "nothing changes on failure")
	got, _ := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.True(got.DiscountAmount.IsZero())
}

func (suite *LedgerServiceTestSuite) TestScenario_RefundToPayerApproved() {
	inv := suite.createInvoice("800", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:              domain.AdjustmentRefund,
		Reason:            "course cancelled",
		RefundAmount:      decPtr("500"),
		RefundApplication: func() *domain.RefundApplication { a := domain.RefundToPayer; return &a }(),
	})
	suite.advance(time.Hour)

	decision := suite.approve(adj.AdjustmentID)

	suite.Require().NotNil(decision.CreditNote)
	note := decision.CreditNote
	suite.Equal(domain.CreditNoteCreated, note.Status)
	suite.Equal(domain.RefundToPayer, note.AppliedAs)
	suite.True(note.Amount.Equal(dec("500")))
	suite.Equal(adj.AdjustmentID, note.AdjustmentID)
	suite.Equal("staff-1", note.RequestedBy)
	suite.Equal(fixedNow, note.RequestedAt)
	suite.Equal("approver-1", note.ApprovedBy)
	suite.Equal(fixedNow.Add(time.Hour), note.ApprovedAt)

	suite.True(decision.Invoice.Balance.Equal(dec("300")))
	suite.True(decision.Invoice.AmountPaid.IsZero(), "refund leaves amountPaid alone")
	suite.True(decision.Invoice.NetAmount.Equal(dec("800")), "refund leaves netAmount alone")

	notes, err := suite.svc.CreditNote.ListCreditNotesForInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.Require().Len(notes, 1)
	suite.Equal(note.CreditNoteID, notes[0].CreditNoteID)

	byID, err := suite.svc.CreditNote.GetCreditNote(suite.ctx, note.CreditNoteID)
	suite.Require().NoError(err)
	suite.Equal(*note, *byID)
}

func (suite *LedgerServiceTestSuite) TestRefund_DefaultsToCreditForFutureAndClamps() {
	inv := suite.createInvoice("300", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:         domain.AdjustmentRefund,
		RefundAmount: decPtr("1000"),
	})

	decision := suite.approve(adj.AdjustmentID)

	suite.Equal(domain.CreditForFuture, decision.CreditNote.AppliedAs)
	suite.Equal(domain.CreditNoteAppliedToFuture, decision.CreditNote.Status)
	suite.True(decision.Invoice.Balance.IsZero(), "balance clamps to zero")
	suite.Equal(domain.InvoicePaid, decision.Invoice.Status)
}

func (suite *LedgerServiceTestSuite) TestScenario_RejectionLeavesInvoiceUntouched() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:           domain.AdjustmentDiscount,
		DiscountAmount: decPtr("100"),
	})

	decision, err := suite.svc.Adjustment.DecideAdjustment(suite.ctx, adj.AdjustmentID, dto.DecideAdjustmentRequest{
		Decision:     domain.AdjustmentRejected,
		RejectedBy:   "head-of-finance",
		DecisionNote: "not eligible",
	}, "approver-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AdjustmentRejected, decision.Adjustment.Status)
	suite.Equal("head-of-finance", *decision.Adjustment.RejectedBy)
	suite.Equal(fixedNow, *decision.Adjustment.RejectedAt)
	suite.Nil(decision.Adjustment.ApprovedBy)
	suite.Nil(decision.Invoice)

	got, err := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.True(got.DiscountAmount.IsZero())
	suite.True(got.Balance.Equal(dec("1000")))
	suite.Equal(inv.LastUpdatedAt, got.LastUpdatedAt)
}

func (suite *LedgerServiceTestSuite) TestDecideAdjustment_SecondResolutionIsRejected() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:           domain.AdjustmentDiscount,
		DiscountAmount: decPtr("100"),
	})
	suite.approve(adj.AdjustmentID)

	for _, decision := range []domain.AdjustmentStatus{domain.AdjustmentApproved, domain.AdjustmentRejected} {
		_, err := suite.svc.Adjustment.DecideAdjustment(suite.ctx, adj.AdjustmentID, dto.DecideAdjustmentRequest{Decision: decision}, "approver-2")
		suite.ErrorIs(err, apperrors.ErrAlreadyResolved)
	}

	got, err := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.True(got.DiscountAmount.Equal(dec("100")), "discount applied exactly once")
	stored, _ := suite.store.FindAdjustmentByID(suite.ctx, adj.AdjustmentID)
	suite.Equal(domain.AdjustmentApproved, stored.Status)
	suite.Equal("approver-1", *stored.ApprovedBy)
}

func (suite *LedgerServiceTestSuite) TestDecideAdjustment_ConcurrentApprovalsApplyOnce() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	adj := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{
		Type:         domain.AdjustmentRefund,
		RefundAmount: decPtr("100"),
	})

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.svc.Adjustment.DecideAdjustment(suite.ctx, adj.AdjustmentID, dto.DecideAdjustmentRequest{Decision: domain.AdjustmentApproved}, "approver")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, apperrors.ErrAlreadyResolved)
	}
	suite.Equal(1, succeeded)

	notes, err := suite.svc.CreditNote.ListCreditNotesForInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.Len(notes, 1)
	got, _ := suite.svc.Invoice.GetInvoice(suite.ctx, inv.InvoiceID)
	suite.True(got.Balance.Equal(dec("900")))
}

func (suite *LedgerServiceTestSuite) TestDecideAdjustment_Errors() {
	_, err := suite.svc.Adjustment.DecideAdjustment(suite.ctx, "missing", dto.DecideAdjustmentRequest{Decision: domain.AdjustmentApproved}, "u")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.Adjustment.DecideAdjustment(suite.ctx, "missing", dto.DecideAdjustmentRequest{Decision: domain.AdjustmentPending}, "u")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestDecideAdjustment_MissingInvoiceStillApproves() {
	suite.Require().NoError(suite.store.SaveAdjustment(suite.ctx, domain.AdjustmentRequest{
		AdjustmentID:   "orphan",
		InvoiceID:      "gone",
		Type:           domain.AdjustmentDiscount,
		DiscountAmount: decPtr("10"),
		Status:         domain.AdjustmentPending,
	}))

	decision := suite.approve("orphan")

	suite.Equal(domain.AdjustmentApproved, decision.Adjustment.Status)
	suite.Nil(decision.Invoice)
}

func (suite *LedgerServiceTestSuite) TestCreateAdjustmentRequest_Validation() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	tests := []struct {
		name    string
		invoice string
		req     dto.CreateAdjustmentRequest
		wantErr error
	}{
		{"missing invoice", "missing", dto.CreateAdjustmentRequest{Type: domain.AdjustmentDiscount}, apperrors.ErrNotFound},
		{"negative discount", inv.InvoiceID, dto.CreateAdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountAmount: decPtr("-1")}, apperrors.ErrInvalidAmount},
		{"percent over 100", inv.InvoiceID, dto.CreateAdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountPercent: decPtr("101")}, apperrors.ErrInvalidAmount},
		{"refund without amount", inv.InvoiceID, dto.CreateAdjustmentRequest{Type: domain.AdjustmentRefund}, apperrors.ErrInvalidAmount},
		{"unknown type", inv.InvoiceID, dto.CreateAdjustmentRequest{Type: "waiver"}, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.svc.Adjustment.CreateAdjustmentRequest(suite.ctx, tt.invoice, tt.req, "staff-1")
			suite.ErrorIs(err, tt.wantErr)
		})
	}

	pending, err := suite.svc.Adjustment.ListPendingAdjustments(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *LedgerServiceTestSuite) TestAdjustmentQueries() {
	inv := suite.createInvoice("1000", fixedNow.Add(24*time.Hour), domain.InvoiceSent)
	first := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountAmount: decPtr("10")})
	suite.advance(time.Minute)
	second := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{Type: domain.AdjustmentRefund, RefundAmount: decPtr("10")})
	suite.advance(time.Minute)
	third := suite.fileAdjustment(inv.InvoiceID, dto.CreateAdjustmentRequest{Type: domain.AdjustmentDiscount, DiscountAmount: decPtr("5")})
	suite.approve(second.AdjustmentID)

	forInvoice, err := suite.svc.Adjustment.ListAdjustmentsForInvoice(suite.ctx, inv.InvoiceID)
	suite.Require().NoError(err)
	suite.Require().Len(forInvoice, 3)
	suite.Equal(third.AdjustmentID, forInvoice[0].AdjustmentID)
	suite.Equal(second.AdjustmentID, forInvoice[1].AdjustmentID)
	suite.Equal(first.AdjustmentID, forInvoice[2].AdjustmentID)

	pending, err := suite.svc.Adjustment.ListPendingAdjustments(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(first.AdjustmentID, pending[0].AdjustmentID)
	suite.Equal(third.AdjustmentID, pending[1].AdjustmentID)

	approved := domain.AdjustmentApproved
	done, err := suite.svc.Adjustment.ListAdjustments(suite.ctx, &approved)
	suite.Require().NoError(err)
	suite.Require().Len(done, 1)
	suite.Equal(second.AdjustmentID, done[0].AdjustmentID)

	bogus := domain.AdjustmentStatus("archived")
	_, err = suite.svc.Adjustment.ListAdjustments(suite.ctx, &bogus)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.Adjustment.ListAdjustmentsForInvoice(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRenderCreditNotePDF_WithoutRenderer() {
	_, err := suite.svc.CreditNote.RenderCreditNotePDF(suite.ctx, "any")
	suite.ErrorIs(err, services.ErrRendererUnavailable)
}

func (suite *LedgerServiceTestSuite) TestCreditNotes_NotFound() {
	_, err := suite.svc.CreditNote.GetCreditNote(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.CreditNote.ListCreditNotesForInvoice(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
