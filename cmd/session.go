package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/etnz/pfm"
	"github.com/etnz/pfm/date"
	"github.com/etnz/pfm/renderer"
)

const (
	datePrompt      = "Enter date (YYYY-MM-DD):"
	kindPrompt      = "Enter transaction type (income/expense):"
	amountPrompt    = "Enter amount:"
	categoryPrompt  = "Enter category:"
	criterionPrompt = "Enter filter criteria (date/category):"
)

var menu = []string{
	"1. Add Transaction",
	"2. View Transactions",
	"3. Summary",
	"4. Filter Transactions",
	"5. Exit",
}

// SessionOptions configures a Session.
type SessionOptions struct {
	// Retry asks again after a malformed date or amount. When false, these
	// errors end the session.
	Retry bool
}

// Session is an interactive menu loop over a ledger.
//
// The session reads one line per prompt from its input and writes menus,
// prompts and reports to its output. The ledger is owned by the caller and
// only mutated by the session through Append.
type Session struct {
	ledger *pfm.Ledger
	in     *lineReader
	out    io.Writer
	style  styles
	opts   SessionOptions
}

// NewSession creates a session that records transactions into ledger.
func NewSession(ledger *pfm.Ledger, in io.Reader, out io.Writer, opts SessionOptions) *Session {
	return &Session{
		ledger: ledger,
		in:     newLineReader(in),
		out:    out,
		style:  newStyles(out),
		opts:   opts,
	}
}

// Run runs the menu loop until the user chooses Exit, in which case it returns nil.
//
// Unknown choices, transaction kinds and filter criteria are reported and the
// menu is shown again. Any other error ends the loop and is returned: failing
// to read the input (including its end), or a malformed date or amount unless
// Retry is set.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, s.style.title.Render("Personal Finance Manager"))

	for {
		for _, item := range menu {
			fmt.Fprintln(s.out, s.style.menu.Render(item))
		}

		choice, err := s.readLine(ctx)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.add(ctx)
		case "2":
			s.view()
		case "3":
			s.summary()
		case "4":
			err = s.filter(ctx)
		case "5":
			slog.Debug("session ended", "transactions", s.ledger.Len())
			return nil
		default:
			s.fail("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// add asks for a new transaction and appends it to the ledger.
func (s *Session) add(ctx context.Context) error {
	on, err := askParsed(ctx, s, datePrompt, date.Parse)
	if err != nil {
		return err
	}

	line, err := s.ask(ctx, kindPrompt)
	if err != nil {
		return err
	}
	kind, err := pfm.ParseKind(line)
	if err != nil {
		slog.Info("transaction discarded", "error", err)
		s.fail("Invalid transaction type")
		return nil
	}

	amount, err := askParsed(ctx, s, amountPrompt, pfm.ParseAmount)
	if err != nil {
		return err
	}

	category, err := s.ask(ctx, categoryPrompt)
	if err != nil {
		return err
	}

	tx := pfm.NewTransaction(on, kind, amount, category)
	s.ledger.Append(tx)
	slog.Debug("transaction added",
		"date", tx.When().String(),
		"kind", tx.Kind().String(),
		"amount", tx.Amount().String(),
		"category", tx.Category(),
		"transactions", s.ledger.Len())
	return nil
}

func (s *Session) view() {
	fmt.Fprint(s.out, renderer.Transactions(s.ledger.Collect(pfm.AcceptAll)))
}

func (s *Session) summary() {
	fmt.Fprint(s.out, renderer.Summary(s.ledger.Summarize()))
}

// filter asks for a criterion and a value, and prints the matching transactions.
func (s *Session) filter(ctx context.Context) error {
	line, err := s.ask(ctx, criterionPrompt)
	if err != nil {
		return err
	}
	criterion, err := pfm.ParseCriterion(line)
	if err != nil {
		slog.Info("filter discarded", "error", err)
		s.fail("Invalid filter criteria.")
		return nil
	}

	prompt := categoryPrompt
	if criterion == pfm.ByDate {
		prompt = datePrompt
	}

	for {
		value, err := s.ask(ctx, prompt)
		if err != nil {
			return err
		}
		txs, err := s.ledger.Filter(criterion, value)
		if err != nil {
			if s.opts.Retry && errors.Is(err, date.ErrInvalidDate) {
				slog.Info("invalid input, asking again", "error", err)
				s.fail(err.Error())
				continue
			}
			return err
		}
		slog.Debug("filter applied", "criterion", criterion.String(), "value", value, "matches", len(txs))
		fmt.Fprint(s.out, renderer.Transactions(txs))
		return nil
	}
}

// ask prints the prompt and reads the answer.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)
	return s.readLine(ctx)
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	line, err := s.in.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// fail reports a recoverable error to the user.
func (s *Session) fail(message string) {
	fmt.Fprintln(s.out, s.style.failure.Render(message))
}

// askParsed prints the prompt, reads the answer and parses it.
//
// A parse error is returned as is, or reported and asked again when the
// session retries.
func askParsed[T any](ctx context.Context, s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.ask(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err != nil && s.opts.Retry {
			slog.Info("invalid input, asking again", "error", err)
			s.fail(err.Error())
			continue
		}
		return v, err
	}
}
