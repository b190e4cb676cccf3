package domain

import (
	"github.com/shopspring/decimal"
)

// Transaction is a monetary movement that knows how to apply itself to
// an account. Implementations must record a ledger entry only when the
// account operation succeeds; a failed attempt leaves no trace. New
// kinds (transfers, fees) implement this interface without touching
// Account.
type Transaction interface {
	Amount() decimal.Decimal
	Apply(account BankAccount) error
}

// Deposit credits a fixed amount to an account.
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit creates a deposit transaction. The amount is fixed at
// construction.
func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{amount: amount}
}

func (d *Deposit) Amount() decimal.Decimal { return d.amount }

// Apply credits the account and records the movement on success.
func (d *Deposit) Apply(account BankAccount) error {
	if err := account.Deposit(d.amount); err != nil {
		return err
	}

	account.Ledger().Record(KindDeposit, d.amount)
	return nil
}

// Withdrawal debits a fixed amount from an account.
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal creates a withdrawal transaction. The amount is fixed
// at construction.
func NewWithdrawal(amount decimal.Decimal) *Withdrawal {
	return &Withdrawal{amount: amount}
}

func (w *Withdrawal) Amount() decimal.Decimal { return w.amount }

// Apply debits the account and records the movement on success. The
// account's own policy (base or checking) decides whether the debit is
// allowed.
func (w *Withdrawal) Apply(account BankAccount) error {
	if err := account.Withdraw(w.amount); err != nil {
		return err
	}

	account.Ledger().Record(KindWithdrawal, w.amount)
	return nil
}
