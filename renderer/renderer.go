// Package renderer renders ledger content as plain text for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/pfm"
)

//go:embed templates/*.txt
var templates embed.FS

// Transaction renders a single transaction as four lines followed by a blank line.
func Transaction(tx pfm.Transaction) string {
	return renderTemplate("transaction.txt", tx)
}

// Transactions renders transactions in the given order, each one like Transaction.
// Nothing is rendered for an empty list.
func Transactions(txs []pfm.Transaction) string {
	return renderTemplate("transactions.txt", txs, "transaction.txt")
}

// Summary renders the total income, total expense and balance of a ledger.
func Summary(s pfm.Summary) string {
	return renderTemplate("summary.txt", s)
}

// renderTemplate executes the template file with data. Partials are template
// files that file can call by their file name.
func renderTemplate(file string, data any, partials ...string) string {
	patterns := []string{"templates/" + file}
	for _, p := range partials {
		patterns = append(patterns, "templates/"+p)
	}
	tmpl, err := template.ParseFS(templates, patterns...)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, file, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
