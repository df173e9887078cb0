package pfm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/pfm/date"
)

// ErrUnknownCriterion is returned for a filter criterion other than "date" or "category".
var ErrUnknownCriterion = errors.New("unknown filter criterion")

// Criterion is the dimension used to select a subsequence of the ledger.
type Criterion int

const (
	// ByDate selects transactions recorded on a given day.
	ByDate Criterion = iota
	// ByCategory selects transactions with a given category.
	ByCategory
)

func (c Criterion) String() string {
	switch c {
	case ByDate:
		return "date"
	case ByCategory:
		return "category"
	default:
		return "unknown"
	}
}

// ParseCriterion parses "date" or "category". Only surrounding spaces are ignored.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.TrimSpace(s) {
	case "date":
		return ByDate, nil
	case "category":
		return ByCategory, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// Filter returns the transactions matching value for the criterion c, in insertion order.
//
// For ByDate, value must be a YYYY-MM-DD date, otherwise the error wraps
// date.ErrInvalidDate. For ByCategory, value is trimmed and compared exactly.
// No match is not an error: the result is simply empty.
func (l *Ledger) Filter(c Criterion, value string) ([]Transaction, error) {
	switch c {
	case ByDate:
		day, err := date.Parse(value)
		if err != nil {
			return nil, err
		}
		return l.Collect(OnDate(day)), nil
	case ByCategory:
		return l.Collect(InCategory(value)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCriterion, c)
	}
}
