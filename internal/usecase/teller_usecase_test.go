package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
	"github.com/iho/minibank/internal/usecase/mocks"
)

type tellerFixture struct {
	teller   *usecase.TellerUseCase
	customer *domain.Individual
	account  *domain.CheckingAccount
}

func newTellerFixture(t *testing.T) *tellerFixture {
	t.Helper()

	customerRepo := mocks.NewMockCustomerRepository()
	accountRepo := mocks.NewMockAccountRepository()
	customer := registerTestCustomer(t, customerRepo, "12345678901")

	accountUC := usecase.NewAccountUseCase(customerRepo, accountRepo, testPolicy(), newTestMetrics(), zerolog.Nop())
	account, err := accountUC.Open(context.Background(), "12345678901")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &tellerFixture{
		teller:   usecase.NewTellerUseCase(customerRepo, newTestMetrics(), zerolog.Nop()),
		customer: customer,
		account:  account,
	}
}

func TestTellerUseCase_Deposit(t *testing.T) {
	f := newTellerFixture(t)

	if err := f.teller.Deposit(context.Background(), "12345678901", decimal.NewFromInt(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.account.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance 100, got %s", f.account.Balance())
	}
	if len(f.account.Ledger().Entries()) != 1 {
		t.Errorf("expected 1 ledger entry, got %d", len(f.account.Ledger().Entries()))
	}
}

func TestTellerUseCase_DepositInvalidAmount(t *testing.T) {
	f := newTellerFixture(t)

	err := f.teller.Deposit(context.Background(), "12345678901", decimal.NewFromInt(-5))
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	if !f.account.Balance().IsZero() {
		t.Errorf("expected untouched balance, got %s", f.account.Balance())
	}
	if len(f.account.Ledger().Entries()) != 0 {
		t.Error("failed deposit must not be recorded")
	}
}

func TestTellerUseCase_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		deposit int64
		amount  int64
		wantErr error
	}{
		{name: "success", deposit: 200, amount: 50},
		{name: "insufficient funds", deposit: 50, amount: 100, wantErr: domain.ErrInsufficientFunds},
		{name: "over per-operation limit", deposit: 1000, amount: 600, wantErr: domain.ErrWithdrawalOverLimit},
		{name: "zero amount", deposit: 100, amount: 0, wantErr: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTellerFixture(t)
			if err := f.teller.Deposit(context.Background(), "12345678901", decimal.NewFromInt(tt.deposit)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err := f.teller.Withdraw(context.Background(), "12345678901", decimal.NewFromInt(tt.amount))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !f.account.Balance().Equal(decimal.NewFromInt(tt.deposit)) {
					t.Errorf("expected untouched balance %d, got %s", tt.deposit, f.account.Balance())
				}
				if len(f.account.Ledger().Entries()) != 1 {
					t.Error("failed withdrawal must not be recorded")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := decimal.NewFromInt(tt.deposit - tt.amount)
			if !f.account.Balance().Equal(want) {
				t.Errorf("expected balance %s, got %s", want, f.account.Balance())
			}
			if len(f.account.Ledger().Entries()) != 2 {
				t.Errorf("expected 2 ledger entries, got %d", len(f.account.Ledger().Entries()))
			}
		})
	}
}

func TestTellerUseCase_WithdrawCountCap(t *testing.T) {
	f := newTellerFixture(t)
	ctx := context.Background()

	if err := f.teller.Deposit(ctx, "12345678901", decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := f.teller.Withdraw(ctx, "12345678901", decimal.NewFromInt(100)); err != nil {
			t.Fatalf("withdrawal %d: unexpected error: %v", i+1, err)
		}
	}

	err := f.teller.Withdraw(ctx, "12345678901", decimal.NewFromInt(100))
	if !errors.Is(err, domain.ErrWithdrawalLimitReached) {
		t.Fatalf("expected ErrWithdrawalLimitReached, got %v", err)
	}
	if !f.account.Balance().Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected balance 700, got %s", f.account.Balance())
	}
}

func TestTellerUseCase_UsesFirstAccount(t *testing.T) {
	f := newTellerFixture(t)

	// A second account must never be touched by teller operations.
	second := domain.NewCheckingAccount(f.customer, 2, "0001", decimal.NewFromInt(500), 3)
	f.customer.AddAccount(second)

	if err := f.teller.Deposit(context.Background(), "12345678901", decimal.NewFromInt(30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.account.Balance().Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected first account credited, got %s", f.account.Balance())
	}
	if !second.Balance().IsZero() {
		t.Errorf("expected second account untouched, got %s", second.Balance())
	}
}

func TestTellerUseCase_LookupFailures(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepository()
	registerTestCustomer(t, customerRepo, "12345678901") // no accounts

	teller := usecase.NewTellerUseCase(customerRepo, newTestMetrics(), zerolog.Nop())

	if err := teller.Deposit(context.Background(), "00000000000", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if err := teller.Deposit(context.Background(), "12345678901", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrNoAccounts) {
		t.Fatalf("expected ErrNoAccounts, got %v", err)
	}
}

func TestTellerUseCase_Statement(t *testing.T) {
	f := newTellerFixture(t)
	ctx := context.Background()

	statement, balance, err := f.teller.Statement(ctx, "12345678901")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(statement, "No movements.") {
		t.Errorf("expected empty-ledger notice, got %q", statement)
	}
	if !balance.IsZero() {
		t.Errorf("expected zero balance, got %s", balance)
	}

	if err := f.teller.Deposit(ctx, "12345678901", decimal.NewFromInt(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statement, balance, err = f.teller.Statement(ctx, "12345678901")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(statement, "deposit") {
		t.Errorf("expected deposit entry in statement, got %q", statement)
	}
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance 100, got %s", balance)
	}
}
