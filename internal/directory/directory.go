// Package directory provides lookup over the in-memory ledger document.
package directory

import (
	"strings"

	"github.com/bankpro-dev/bankpro/internal/model"
)

// Find returns the account with the given number, or nil if absent.
func Find(doc *model.Document, accountNo string) *model.Account {
	for _, a := range doc.Accounts {
		if a.AccountNo == accountNo {
			return a
		}
	}
	return nil
}

// Exists reports whether an account number is already taken.
func Exists(doc *model.Document, accountNo string) bool {
	return Find(doc, accountNo) != nil
}

// Search returns accounts whose name or account number contains the query,
// case-insensitively. A blank or whitespace-only query matches nothing
// rather than everything.
func Search(doc *model.Document, query string) []*model.Account {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []*model.Account
	for _, a := range doc.Accounts {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.AccountNo), q) {
			matches = append(matches, a)
		}
	}
	return matches
}
