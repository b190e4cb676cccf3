package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// TellerUseCase handles the money-movement operations: deposits,
// withdrawals and statements. Transactions always target the
// customer's first account.
type TellerUseCase struct {
	customerRepo CustomerRepository
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewTellerUseCase creates a new TellerUseCase.
func NewTellerUseCase(customerRepo CustomerRepository, m *metrics.Metrics, logger zerolog.Logger) *TellerUseCase {
	return &TellerUseCase{
		customerRepo: customerRepo,
		metrics:      m,
		logger:       logger,
	}
}

// Deposit applies a deposit transaction to the customer's first
// account. The ledger entry is recorded by the transaction, only on
// success.
func (uc *TellerUseCase) Deposit(ctx context.Context, taxID string, amount decimal.Decimal) error {
	customer, account, err := uc.firstAccount(ctx, taxID)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("deposit", metrics.Reason(err)).Inc()
		return err
	}

	if err := customer.Apply(account, domain.NewDeposit(amount)); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("deposit", metrics.Reason(err)).Inc()
		uc.logger.Warn().Err(err).Str("tax_id", taxID).Str("amount", amount.String()).Msg("deposit rejected")
		return err
	}

	uc.metrics.Deposits.Inc()
	uc.metrics.DepositAmount.Observe(amount.InexactFloat64())
	uc.logger.Info().Int64("account", account.Number()).Str("amount", amount.String()).Msg("deposit applied")

	return nil
}

// Withdraw applies a withdrawal transaction to the customer's first
// account. The account's own policy decides whether it is allowed.
func (uc *TellerUseCase) Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error {
	customer, account, err := uc.firstAccount(ctx, taxID)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("withdraw", metrics.Reason(err)).Inc()
		return err
	}

	if err := customer.Apply(account, domain.NewWithdrawal(amount)); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("withdraw", metrics.Reason(err)).Inc()
		uc.logger.Warn().Err(err).Str("tax_id", taxID).Str("amount", amount.String()).Msg("withdrawal rejected")
		return err
	}

	uc.metrics.Withdrawals.Inc()
	uc.metrics.WithdrawalAmount.Observe(amount.InexactFloat64())
	uc.logger.Info().Int64("account", account.Number()).Str("amount", amount.String()).Msg("withdrawal applied")

	return nil
}

// Statement renders the ledger of the customer's first account and
// returns the current balance. Read-only.
func (uc *TellerUseCase) Statement(ctx context.Context, taxID string) (string, decimal.Decimal, error) {
	_, account, err := uc.firstAccount(ctx, taxID)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("statement", metrics.Reason(err)).Inc()
		return "", decimal.Zero, err
	}

	return account.Ledger().Render(), account.Balance(), nil
}

// firstAccount resolves the customer and its first owned account,
// mirroring the teller window behavior of always operating on the
// account opened first.
func (uc *TellerUseCase) firstAccount(ctx context.Context, taxID string) (*domain.Individual, domain.BankAccount, error) {
	customer, err := uc.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, nil, err
	}

	accounts := customer.Accounts()
	if len(accounts) == 0 {
		return nil, nil, domain.ErrNoAccounts
	}

	return customer, accounts[0], nil
}
