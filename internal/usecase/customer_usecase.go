package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer registration and lookup.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, idGen IDGenerator, m *metrics.Metrics, logger zerolog.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		idGen:        idGen,
		metrics:      m,
		logger:       logger,
	}
}

// RegisterCustomerInput represents input for registering a customer.
type RegisterCustomerInput struct {
	BirthDate time.Time
	Name      string
	TaxID     string
	Address   string
}

// Register validates the input, creates the individual and stores it
// in the registry. Duplicate tax ids are rejected by the registry.
func (uc *CustomerUseCase) Register(ctx context.Context, input RegisterCustomerInput) (*domain.Individual, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateTaxID(input.TaxID); err != nil {
		return nil, err
	}
	if err := domain.ValidateBirthDate(input.BirthDate); err != nil {
		return nil, err
	}

	customer := domain.NewIndividual(uc.idGen.Generate(), input.Name, input.BirthDate, input.TaxID, input.Address)

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("register_customer", metrics.Reason(err)).Inc()
		return nil, err
	}

	uc.metrics.CustomersRegistered.Inc()
	uc.logger.Info().Str("tax_id", input.TaxID).Str("customer_id", customer.ID).Msg("customer registered")

	return customer, nil
}

// GetByTaxID retrieves a customer by tax id.
func (uc *CustomerUseCase) GetByTaxID(ctx context.Context, taxID string) (*domain.Individual, error) {
	return uc.customerRepo.GetByTaxID(ctx, taxID)
}

// List lists customers in registration order.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*domain.Individual, error) {
	return uc.customerRepo.List(ctx)
}
