package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/minibank/internal/domain"
)

// Metrics holds all Prometheus metrics. There is no scrape endpoint in
// this process; the registry is in-memory instrumentation only.
type Metrics struct {
	CustomersRegistered prometheus.Counter
	AccountsOpened      prometheus.Counter
	Deposits            prometheus.Counter
	Withdrawals         prometheus.Counter
	DepositAmount       prometheus.Histogram
	WithdrawalAmount    prometheus.Histogram
	OperationErrors     *prometheus.CounterVec
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CustomersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_customers_registered_total",
			Help: "Total number of customers registered",
		}),
		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		Deposits: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_deposits_total",
			Help: "Total number of successful deposits",
		}),
		Withdrawals: factory.NewCounter(prometheus.CounterOpts{
			Name: "minibank_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		DepositAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_deposit_amount",
			Help:    "Deposit amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
		}),
		WithdrawalAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_withdrawal_amount",
			Help:    "Withdrawal amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
		}),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_operation_errors_total",
				Help: "Total number of rejected operations by reason",
			},
			[]string{"operation", "reason"},
		),
	}
}

// Reason maps a domain error to a stable label value for the
// operation-error counter.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrWithdrawalOverLimit):
		return "over_limit"
	case errors.Is(err, domain.ErrWithdrawalLimitReached):
		return "limit_reached"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrNoAccounts):
		return "no_accounts"
	case errors.Is(err, domain.ErrDuplicateTaxID):
		return "duplicate_tax_id"
	default:
		return "other"
	}
}
