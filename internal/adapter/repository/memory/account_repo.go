package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/minibank/internal/domain"
)

// AccountRepository is the in-memory account registry. It assigns
// sequential account numbers starting at 1.
type AccountRepository struct {
	mu       sync.RWMutex
	byNumber map[int64]domain.BankAccount
	next     int64
}

// NewAccountRepository creates an empty account registry.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byNumber: make(map[int64]domain.BankAccount),
		next:     1,
	}
}

// NextNumber reserves and returns the next sequential account number.
func (r *AccountRepository) NextNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := r.next
	r.next++
	return number, nil
}

// Create stores an account under its number.
func (r *AccountRepository) Create(_ context.Context, account domain.BankAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byNumber[account.Number()] = account
	return nil
}

// GetByNumber retrieves an account by number.
func (r *AccountRepository) GetByNumber(_ context.Context, number int64) (domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// List returns all accounts in number order.
func (r *AccountRepository) List(_ context.Context) ([]domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.BankAccount, 0, len(r.byNumber))
	for _, account := range r.byNumber {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number() < accounts[j].Number()
	})
	return accounts, nil
}
