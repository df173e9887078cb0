// Package pfm provides the in-memory ledger of a personal finance manager.
//
// A Ledger records income and expense transactions in the order they are
// entered. It can list them, filter them by date or by category, and
// summarize them into total income, total expense and balance.
//
// Amounts are exact decimals, so that the balance is always exactly the
// difference between total income and total expense.
//
// This package serves as the foundational logic for the `pfm` interactive
// command-line tool. Nothing is persisted: a Ledger lives as long as the
// process that created it.
package pfm
