package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccount is the behavior every account kind exposes. Transactions
// and the registry work against this interface so specialized accounts
// keep their own withdrawal policy.
type BankAccount interface {
	Number() int64
	Branch() string
	Holder() *Individual
	Balance() decimal.Decimal
	Ledger() *Ledger
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// Account is the base account: a balance, identity fields and a
// ledger. It enforces that the balance never goes negative and that
// every movement is strictly positive. It does not write its own
// ledger; recording is the transaction's job.
type Account struct {
	number  int64
	branch  string
	holder  *Individual
	balance decimal.Decimal
	ledger  *Ledger
}

// NewAccount creates a zero-balance account with an empty ledger,
// bound to an existing holder. The number is assigned by the registry.
func NewAccount(holder *Individual, number int64, branch string) *Account {
	return &Account{
		number:  number,
		branch:  branch,
		holder:  holder,
		balance: decimal.Zero,
		ledger:  NewLedger(),
	}
}

func (a *Account) Number() int64            { return a.number }
func (a *Account) Branch() string           { return a.branch }
func (a *Account) Holder() *Individual      { return a.holder }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Ledger() *Ledger          { return a.ledger }

// Deposit increases the balance by amount. Fails with ErrInvalidAmount
// when amount is not strictly positive; the balance is untouched on
// failure.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw decreases the balance by amount. Validation fully precedes
// mutation: on any failure the balance is untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount is an account with a per-operation withdrawal cap
// and a lifetime cap on the number of withdrawals. The count never
// resets.
type CheckingAccount struct {
	Account
	withdrawalCap  decimal.Decimal
	maxWithdrawals int
	withdrawals    int
}

// NewCheckingAccount creates a checking account with the given limits.
func NewCheckingAccount(holder *Individual, number int64, branch string, withdrawalCap decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		Account:        *NewAccount(holder, number, branch),
		withdrawalCap:  withdrawalCap,
		maxWithdrawals: maxWithdrawals,
	}
}

// WithdrawalCap returns the per-operation withdrawal limit.
func (c *CheckingAccount) WithdrawalCap() decimal.Decimal { return c.withdrawalCap }

// Withdrawals returns how many withdrawals have been performed.
func (c *CheckingAccount) Withdrawals() int { return c.withdrawals }

// Withdraw runs the checking-specific pre-conditions in order, then
// delegates to the base routine. The counter moves only when the base
// withdrawal succeeds; the first failing condition wins and leaves no
// partial effects.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(c.withdrawalCap) {
		return ErrWithdrawalOverLimit
	}
	if c.withdrawals >= c.maxWithdrawals {
		return ErrWithdrawalLimitReached
	}

	if err := c.Account.Withdraw(amount); err != nil {
		return err
	}

	c.withdrawals++
	return nil
}
