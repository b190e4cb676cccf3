package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// AccountPolicy carries the bank-wide account parameters: the branch
// code shared by every account and the checking withdrawal limits.
type AccountPolicy struct {
	Branch         string
	WithdrawalCap  decimal.Decimal
	MaxWithdrawals int
}

// AccountUseCase handles account opening and listing.
type AccountUseCase struct {
	customerRepo CustomerRepository
	accountRepo  AccountRepository
	policy       AccountPolicy
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(customerRepo CustomerRepository, accountRepo AccountRepository, policy AccountPolicy, m *metrics.Metrics, logger zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		policy:       policy,
		metrics:      m,
		logger:       logger,
	}
}

// Open creates a checking account for the customer identified by
// taxID, numbered sequentially by the registry, and appends it to the
// customer's owned accounts.
func (uc *AccountUseCase) Open(ctx context.Context, taxID string) (*domain.CheckingAccount, error) {
	customer, err := uc.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("open_account", metrics.Reason(err)).Inc()
		return nil, err
	}

	number, err := uc.accountRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	account := domain.NewCheckingAccount(customer, number, uc.policy.Branch, uc.policy.WithdrawalCap, uc.policy.MaxWithdrawals)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	customer.AddAccount(account)

	uc.metrics.AccountsOpened.Inc()
	uc.logger.Info().Int64("account", number).Str("tax_id", taxID).Msg("account opened")

	return account, nil
}

// List lists all accounts in number order.
func (uc *AccountUseCase) List(ctx context.Context) ([]domain.BankAccount, error) {
	return uc.accountRepo.List(ctx)
}
