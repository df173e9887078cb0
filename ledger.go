package pfm

import (
	"iter"
	"strings"

	"github.com/etnz/pfm/date"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in insertion order. Duplicates are
// allowed and nothing is ever removed.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
	}
}

// Append appends transactions to this ledger, keeping their order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// AcceptAll is a filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// OnDate returns a predicate that accepts transactions recorded on day.
func OnDate(day date.Date) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.When() == day }
}

// InCategory returns a predicate that accepts transactions whose category is
// exactly category, once trimmed. The comparison is case-sensitive.
func InCategory(category string) func(Transaction) bool {
	category = strings.TrimSpace(category)
	return func(tx Transaction) bool { return tx.Category() == category }
}

// Transactions returns an iterator that yields each transaction accepted by
// any of the filters, in its original order.
//
// The iterator walks the ledger each time it is used.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Collect returns the transactions accepted by any of the filters, in order.
// It returns nil when nothing matches.
func (l *Ledger) Collect(filters ...func(Transaction) bool) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions(filters...) {
		txs = append(txs, tx)
	}
	return txs
}
