package pfm

// Summary holds the totals of a ledger.
type Summary struct {
	Income  Amount // sum of all Income amounts
	Expense Amount // sum of all Expense amounts
	Balance Amount // Income - Expense
}

// Summarize computes the totals of the ledger. An empty ledger yields zero totals.
func (l *Ledger) Summarize() Summary {
	var s Summary
	for _, tx := range l.Transactions(AcceptAll) {
		switch tx.Kind() {
		case Income:
			s.Income = s.Income.Add(tx.Amount())
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount())
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
