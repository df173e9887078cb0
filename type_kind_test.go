package pfm

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		err   bool
	}{
		{"income", Income, false},
		{"Income", Income, false},
		{"INCOME", Income, false},
		{"  expense \n", Expense, false},
		{"ExPeNsE", Expense, false},
		{"bogus", 0, true},
		{"", 0, true},
		{"incomes", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.err {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := Income.String(); got != "Income" {
		t.Errorf("Income.String() = %q", got)
	}
	if got := Expense.String(); got != "Expense" {
		t.Errorf("Expense.String() = %q", got)
	}
	if got := Kind(42).String(); got != "Unknown" {
		t.Errorf("Kind(42).String() = %q", got)
	}
}
