package domain

import "errors"

var (
	// Account errors
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrWithdrawalOverLimit    = errors.New("withdrawal exceeds per-operation limit")
	ErrWithdrawalLimitReached = errors.New("maximum withdrawal count reached")

	// Registry errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrNoAccounts       = errors.New("customer has no accounts")
	ErrDuplicateTaxID   = errors.New("customer with this tax id already exists")
)
