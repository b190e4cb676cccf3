package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/minibank/internal/domain"
)

func TestDepositApplyRecordsEntry(t *testing.T) {
	// Fresh checking account: deposit 100 succeeds, one ledger entry.
	account := newChecking(t)

	err := domain.NewDeposit(decimal.NewFromInt(100)).Apply(account)

	require.NoError(t, err)
	require.True(t, account.Balance().Equal(decimal.NewFromInt(100)))

	entries := account.Ledger().Entries()
	require.Len(t, entries, 1)
	require.Equal(t, domain.KindDeposit, entries[0].Kind)
	require.True(t, entries[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestDepositApplyFailureLeavesNoTrace(t *testing.T) {
	account := newChecking(t)

	err := domain.NewDeposit(decimal.NewFromInt(-5)).Apply(account)

	require.ErrorIs(t, err, domain.ErrInvalidAmount)
	require.Empty(t, account.Ledger().Entries())
	require.True(t, account.Balance().IsZero())
}

func TestWithdrawalApplyRecordsEntry(t *testing.T) {
	account := newChecking(t)
	require.NoError(t, domain.NewDeposit(decimal.NewFromInt(200)).Apply(account))

	err := domain.NewWithdrawal(decimal.NewFromInt(50)).Apply(account)

	require.NoError(t, err)
	require.True(t, account.Balance().Equal(decimal.NewFromInt(150)))

	entries := account.Ledger().Entries()
	require.Len(t, entries, 2)
	require.Equal(t, domain.KindWithdrawal, entries[1].Kind)
}

func TestWithdrawalApplyFailureLeavesNoTrace(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "zero amount", amount: decimal.Zero, wantErr: domain.ErrInvalidAmount},
		{name: "insufficient funds", amount: decimal.NewFromInt(400), wantErr: domain.ErrInsufficientFunds},
		{name: "over per-operation limit", amount: decimal.NewFromInt(600), wantErr: domain.ErrWithdrawalOverLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newChecking(t)
			require.NoError(t, domain.NewDeposit(decimal.NewFromInt(300)).Apply(account))

			err := domain.NewWithdrawal(tt.amount).Apply(account)

			require.ErrorIs(t, err, tt.wantErr)
			require.Len(t, account.Ledger().Entries(), 1, "failed withdrawal must not be recorded")
			require.True(t, account.Balance().Equal(decimal.NewFromInt(300)))
		})
	}
}

func TestTransactionAmountIsFixed(t *testing.T) {
	deposit := domain.NewDeposit(decimal.NewFromInt(42))
	withdrawal := domain.NewWithdrawal(decimal.NewFromInt(13))

	require.True(t, deposit.Amount().Equal(decimal.NewFromInt(42)))
	require.True(t, withdrawal.Amount().Equal(decimal.NewFromInt(13)))
}
