// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "billing_ledger"

// ─── Ledger ─────────────────────────────────────────────────────────────────

// InvoicesCreated tracks invoices created by payer type.
var InvoicesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "invoices",
	Name:      "created_total",
	Help:      "Total invoices created.",
}, []string{"payer_type"})

// PaymentsRecorded tracks recorded payments by method.
var PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "payments",
	Name:      "recorded_total",
	Help:      "Total payments recorded.",
}, []string{"method"})

// PaymentAmount tracks the cumulative amount received.
var PaymentAmount = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "payments",
	Name:      "amount_total",
	Help:      "Cumulative amount of recorded payments.",
})

// Overpayments tracks payments that exceeded the outstanding balance.
var Overpayments = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "payments",
	Name:      "overpayments_total",
	Help:      "Total payments that exceeded the outstanding balance.",
})

// AdjustmentsRequested tracks filed adjustment requests by type.
var AdjustmentsRequested = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "adjustments",
	Name:      "requested_total",
	Help:      "Total adjustment requests filed.",
}, []string{"type"})

// AdjustmentsResolved tracks resolved adjustment requests by type and decision.
var AdjustmentsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "adjustments",
	Name:      "resolved_total",
	Help:      "Total adjustment requests approved or rejected.",
}, []string{"type", "decision"})

// CreditNotesIssued tracks credit notes by application.
var CreditNotesIssued = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "credit_notes",
	Name:      "issued_total",
	Help:      "Total credit notes issued for approved refunds.",
}, []string{"applied_as"})

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests tracks handled requests.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by route and status.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// AddAmount adds a decimal amount to a counter. Non-positive amounts are ignored.
func AddAmount(c prometheus.Counter, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	f, _ := amount.Float64()
	c.Add(f)
}
