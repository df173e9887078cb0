package date

import (
	"errors"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
	if d1 != d2 {
		t.Errorf("New(2025, 7, 31) is not comparable with itself")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2024, time.February, 30)
	want := New(2024, time.March, 1)
	if got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
	if got.String() != "2024-03-01" {
		t.Errorf("New(2024, 2, 30).String() = %q, want 2024-03-01", got.String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2024-01-15", New(2024, time.January, 15), false},
		{"2024-12-31", New(2024, time.December, 31), false},
		{"  2024-01-20\n", New(2024, time.January, 20), false},
		{"2024-02-29", New(2024, time.February, 29), false},

		{"2023-02-29", Date{}, true},
		{"2024-13-01", Date{}, true},
		{"2024-1-5", Date{}, true},
		{"24-01-15", Date{}, true},
		{"2024/01/15", Date{}, true},
		{"2024-01-15x", Date{}, true},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("Parse(%q) expected an error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("Parse(%q) error %v does not wrap ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"2024-01-15", "1999-12-31", "0001-01-01"} {
		if got := MustParse(s).String(); got != s {
			t.Errorf("MustParse(%q).String() = %q", s, got)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse(\"nope\") did not panic")
		}
	}()
	MustParse("nope")
}
