package memory

import (
	"context"
	"sync"

	"github.com/iho/minibank/internal/domain"
)

// CustomerRepository is the in-memory customer registry, keyed by tax
// id. It owns the tax id uniqueness invariant.
type CustomerRepository struct {
	mu      sync.RWMutex
	byTaxID map[string]*domain.Individual
	order   []string
}

// NewCustomerRepository creates an empty customer registry.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byTaxID: make(map[string]*domain.Individual),
	}
}

// Create stores a customer. Fails with ErrDuplicateTaxID when a
// customer with the same tax id is already registered.
func (r *CustomerRepository) Create(_ context.Context, customer *domain.Individual) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTaxID[customer.TaxID]; exists {
		return domain.ErrDuplicateTaxID
	}

	r.byTaxID[customer.TaxID] = customer
	r.order = append(r.order, customer.TaxID)
	return nil
}

// GetByTaxID retrieves a customer by tax id.
func (r *CustomerRepository) GetByTaxID(_ context.Context, taxID string) (*domain.Individual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byTaxID[taxID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// List returns all customers in registration order.
func (r *CustomerRepository) List(_ context.Context) ([]*domain.Individual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*domain.Individual, 0, len(r.order))
	for _, taxID := range r.order {
		customers = append(customers, r.byTaxID[taxID])
	}
	return customers, nil
}
