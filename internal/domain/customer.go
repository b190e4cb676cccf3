package domain

import "time"

// Customer holds the attributes shared by every customer kind: a
// free-text address and the accounts it owns, in creation order.
type Customer struct {
	Address  string
	accounts []BankAccount
}

// AddAccount appends an account to the customer's owned accounts.
// No uniqueness check is performed; callers are expected to add each
// account once.
func (c *Customer) AddAccount(account BankAccount) {
	c.accounts = append(c.accounts, account)
}

// Accounts returns the owned accounts in the order they were added.
func (c *Customer) Accounts() []BankAccount {
	return c.accounts
}

// Apply asks the transaction to apply itself to the given account.
// The account is not required to belong to this customer; callers own
// that check if they care.
func (c *Customer) Apply(account BankAccount, tx Transaction) error {
	return tx.Apply(account)
}

// Individual is a natural-person customer identified by a tax id.
type Individual struct {
	Customer
	ID        string
	Name      string
	BirthDate time.Time
	TaxID     string
}

// NewIndividual creates an individual customer with no accounts.
func NewIndividual(id, name string, birthDate time.Time, taxID, address string) *Individual {
	return &Individual{
		Customer:  Customer{Address: address},
		ID:        id,
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
	}
}
