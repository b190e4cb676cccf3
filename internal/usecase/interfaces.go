package usecase

import (
	"context"

	"github.com/iho/minibank/internal/domain"
)

// CustomerRepository is the registry of customers, keyed by tax id.
// Tax id uniqueness is enforced here, not by the domain.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Individual) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Individual, error)
	List(ctx context.Context) ([]*domain.Individual, error)
}

// AccountRepository is the registry of accounts, keyed by the
// sequential account number it assigns.
type AccountRepository interface {
	NextNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, account domain.BankAccount) error
	GetByNumber(ctx context.Context, number int64) (domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
