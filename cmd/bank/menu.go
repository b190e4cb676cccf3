package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

const birthDateLayout = "2006-01-02"

const menuText = `
[d]  deposit
[w]  withdraw
[s]  statement
[nc] new customer
[na] new account
[lc] list customers
[la] list accounts
[q]  quit
=> `

// menu is the interactive dispatcher. It parses operator input,
// forwards typed arguments to the use cases and prints the outcome.
// Domain failures never stop the loop.
type menu struct {
	in        *bufio.Scanner
	out       io.Writer
	customers *usecase.CustomerUseCase
	accounts  *usecase.AccountUseCase
	teller    *usecase.TellerUseCase
}

func newMenu(in io.Reader, out io.Writer, customers *usecase.CustomerUseCase, accounts *usecase.AccountUseCase, teller *usecase.TellerUseCase) *menu {
	return &menu{
		in:        bufio.NewScanner(in),
		out:       out,
		customers: customers,
		accounts:  accounts,
		teller:    teller,
	}
}

// run shows the menu until the operator quits or input ends.
func (m *menu) run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)

		option, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		switch strings.ToLower(option) {
		case "d":
			m.deposit(ctx)
		case "w":
			m.withdraw(ctx)
		case "s":
			m.statement(ctx)
		case "nc":
			m.newCustomer(ctx)
		case "na":
			m.newAccount(ctx)
		case "lc":
			m.listCustomers(ctx)
		case "la":
			m.listAccounts(ctx)
		case "q":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *menu) deposit(ctx context.Context) {
	taxID, ok := m.prompt("Customer tax id: ")
	if !ok {
		return
	}
	amount, err := m.promptAmount("Deposit amount: ")
	if err != nil {
		m.report(err)
		return
	}

	if err := m.teller.Deposit(ctx, taxID, amount); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Deposit of %s completed.\n", amount.StringFixed(2))
}

func (m *menu) withdraw(ctx context.Context) {
	taxID, ok := m.prompt("Customer tax id: ")
	if !ok {
		return
	}
	amount, err := m.promptAmount("Withdrawal amount: ")
	if err != nil {
		m.report(err)
		return
	}

	if err := m.teller.Withdraw(ctx, taxID, amount); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Withdrawal of %s completed.\n", amount.StringFixed(2))
}

func (m *menu) statement(ctx context.Context) {
	taxID, ok := m.prompt("Customer tax id: ")
	if !ok {
		return
	}

	statement, balance, err := m.teller.Statement(ctx, taxID)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintln(m.out, statement)
	fmt.Fprintf(m.out, "Current balance: %s\n", balance.StringFixed(2))
}

func (m *menu) newCustomer(ctx context.Context) {
	taxID, ok := m.prompt("Tax id (11 digits): ")
	if !ok {
		return
	}
	name, ok := m.prompt("Full name: ")
	if !ok {
		return
	}
	birthRaw, ok := m.prompt("Birth date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	address, ok := m.prompt("Address: ")
	if !ok {
		return
	}

	birthDate, err := time.Parse(birthDateLayout, birthRaw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid birth date, expected YYYY-MM-DD.")
		return
	}

	if _, err := m.customers.Register(ctx, usecase.RegisterCustomerInput{
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
		Address:   address,
	}); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintln(m.out, "Customer registered.")
}

func (m *menu) newAccount(ctx context.Context) {
	taxID, ok := m.prompt("Customer tax id: ")
	if !ok {
		return
	}

	account, err := m.accounts.Open(ctx, taxID)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Account %d opened at branch %s.\n", account.Number(), account.Branch())
}

func (m *menu) listCustomers(ctx context.Context) {
	customers, err := m.customers.List(ctx)
	if err != nil {
		m.report(err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "No customers registered.")
		return
	}
	for _, c := range customers {
		fmt.Fprintf(m.out, "%s  %s  (%d accounts)\n", c.TaxID, c.Name, len(c.Accounts()))
	}
}

func (m *menu) listAccounts(ctx context.Context) {
	accounts, err := m.accounts.List(ctx)
	if err != nil {
		m.report(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "No accounts opened.")
		return
	}
	for _, a := range accounts {
		fmt.Fprintln(m.out, strings.Repeat("=", 30))
		fmt.Fprintf(m.out, "Branch:  %s\n", a.Branch())
		fmt.Fprintf(m.out, "Account: %d\n", a.Number())
		fmt.Fprintf(m.out, "Holder:  %s\n", a.Holder().Name)
	}
}

// report prints a distinct message for each domain failure.
func (m *menu) report(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		fmt.Fprintln(m.out, "Operation failed: invalid amount.")
	case errors.Is(err, domain.ErrInsufficientFunds):
		fmt.Fprintln(m.out, "Operation failed: insufficient funds.")
	case errors.Is(err, domain.ErrWithdrawalOverLimit):
		fmt.Fprintln(m.out, "Operation failed: amount exceeds the per-withdrawal limit.")
	case errors.Is(err, domain.ErrWithdrawalLimitReached):
		fmt.Fprintln(m.out, "Operation failed: maximum number of withdrawals reached.")
	case errors.Is(err, domain.ErrCustomerNotFound):
		fmt.Fprintln(m.out, "Customer not found.")
	case errors.Is(err, domain.ErrNoAccounts):
		fmt.Fprintln(m.out, "Customer has no accounts.")
	case errors.Is(err, domain.ErrDuplicateTaxID):
		fmt.Fprintln(m.out, "A customer with this tax id already exists.")
	default:
		fmt.Fprintf(m.out, "Operation failed: %v\n", err)
	}
}

func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *menu) promptAmount(label string) (decimal.Decimal, error) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, raw)
	}
	return amount, nil
}

func (m *menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
