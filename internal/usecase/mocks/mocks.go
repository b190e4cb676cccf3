// Package mocks provides hand-written mocks for the usecase
// interfaces. Each mock behaves as a working in-memory implementation
// unless a Func hook is set.
package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/minibank/internal/domain"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Individual
	order     []string

	CreateFunc     func(ctx context.Context, customer *domain.Individual) error
	GetByTaxIDFunc func(ctx context.Context, taxID string) (*domain.Individual, error)
	ListFunc       func(ctx context.Context) ([]*domain.Individual, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Individual),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Individual) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.customers[customer.TaxID]; exists {
		return domain.ErrDuplicateTaxID
	}
	m.customers[customer.TaxID] = customer
	m.order = append(m.order, customer.TaxID)
	return nil
}

func (m *MockCustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Individual, error) {
	if m.GetByTaxIDFunc != nil {
		return m.GetByTaxIDFunc(ctx, taxID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if customer, ok := m.customers[taxID]; ok {
		return customer, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*domain.Individual, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	customers := make([]*domain.Individual, 0, len(m.order))
	for _, taxID := range m.order {
		customers = append(customers, m.customers[taxID])
	}
	return customers, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]domain.BankAccount
	next     int64

	NextNumberFunc  func(ctx context.Context) (int64, error)
	CreateFunc      func(ctx context.Context, account domain.BankAccount) error
	GetByNumberFunc func(ctx context.Context, number int64) (domain.BankAccount, error)
	ListFunc        func(ctx context.Context) ([]domain.BankAccount, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]domain.BankAccount),
		next:     1,
	}
}

func (m *MockAccountRepository) NextNumber(ctx context.Context) (int64, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	number := m.next
	m.next++
	return number, nil
}

func (m *MockAccountRepository) Create(ctx context.Context, account domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Number()] = account
	return nil
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number int64) (domain.BankAccount, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[number]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context) ([]domain.BankAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]domain.BankAccount, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number() < accounts[j].Number()
	})
	return accounts, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-id"
}
