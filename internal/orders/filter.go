// Package orders implements the client-side filter the orders view applies
// to an already-fetched order list. Filtering derives a visible subset and
// never mutates the list; the list itself is re-fetched only when the
// identity changes.
package orders

import (
	"time"

	"github.com/LazyIfox/Pizza3/internal/domain"
	"github.com/LazyIfox/Pizza3/internal/i18n"
)

// Filter holds the three conjunctive predicates of the orders view. Zero
// values mean "not selected".
type Filter struct {
	// StatusLabel is the localized status label the user picked, mapped to a
	// status code through the catalog's label table.
	StatusLabel string
	// CreatedOn matches orders created on the same calendar day.
	CreatedOn time.Time
	// CompletedOn matches orders completed on the same calendar day. Orders
	// with no completion date never match.
	CompletedOn time.Time
}

// Apply returns the orders matching every selected predicate. It is
// idempotent: filtering a filtered result with the same Filter returns the
// same set.
func Apply(list []domain.Order, f Filter, cat *i18n.Catalog) []domain.Order {
	var wantStatus domain.OrderStatus
	if f.StatusLabel != "" {
		// An unknown label matches nothing rather than everything, so a typo
		// in the filter input cannot silently show the full list.
		status, ok := cat.StatusFromLabel(f.StatusLabel)
		if !ok {
			return nil
		}
		wantStatus = status
	}

	out := make([]domain.Order, 0, len(list))
	for _, o := range list {
		if wantStatus != "" && o.Status != wantStatus {
			continue
		}
		if !f.CreatedOn.IsZero() && !sameDay(o.CreationDatetime, f.CreatedOn) {
			continue
		}
		if !f.CompletedOn.IsZero() {
			if o.CompletionDatetime == nil || !sameDay(*o.CompletionDatetime, f.CompletedOn) {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// sameDay reports whether two instants fall on the same calendar day in the
// local timezone, the way the site's date picker compares them.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
