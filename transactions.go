package pfm

import (
	"strings"

	"github.com/etnz/pfm/date"
)

// Transaction is one recorded financial event.
//
// A Transaction is immutable once created: its fields are only readable
// through accessors.
type Transaction struct {
	date     date.Date
	kind     Kind
	amount   Amount
	category string
}

// NewTransaction creates a transaction. The category is trimmed of surrounding whitespace.
func NewTransaction(on date.Date, kind Kind, amount Amount, category string) Transaction {
	return Transaction{
		date:     on,
		kind:     kind,
		amount:   amount,
		category: strings.TrimSpace(category),
	}
}

// NewIncome creates an Income transaction.
func NewIncome(on date.Date, amount Amount, category string) Transaction {
	return NewTransaction(on, Income, amount, category)
}

// NewExpense creates an Expense transaction.
func NewExpense(on date.Date, amount Amount, category string) Transaction {
	return NewTransaction(on, Expense, amount, category)
}

// When returns the date of the transaction.
func (t Transaction) When() date.Date { return t.date }

// Kind returns whether the transaction is an Income or an Expense.
func (t Transaction) Kind() Kind { return t.kind }

// Amount returns the amount as entered, it is never signed by the kind.
func (t Transaction) Amount() Amount { return t.amount }

// Category returns the free text label of the transaction.
func (t Transaction) Category() string { return t.category }

// Equal reports whether t and u record the same event.
func (t Transaction) Equal(u Transaction) bool {
	return t.date == u.date &&
		t.kind == u.kind &&
		t.amount.Equal(u.amount) &&
		t.category == u.category
}
