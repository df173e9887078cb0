package pfm

import "github.com/etnz/pfm/date"

// D is a helper for test to create a date from a const.
func D(s string) date.Date { return date.MustParse(s) }

// income is a helper for test to create an Income transaction from consts.
func income(on string, amount float64, category string) Transaction {
	return NewIncome(D(on), A(amount), category)
}

// expense is a helper for test to create an Expense transaction from consts.
func expense(on string, amount float64, category string) Transaction {
	return NewExpense(D(on), A(amount), category)
}
