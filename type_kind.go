package pfm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a transaction kind is neither income nor expense.
var ErrUnknownKind = errors.New("unknown transaction kind")

// Kind classifies a Transaction as money coming in or going out.
type Kind int

const (
	// Income is money received.
	Income Kind = iota
	// Expense is money spent.
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// ParseKind parses "income" or "expense", ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
