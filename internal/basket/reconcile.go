// Package basket keeps the client's view of the server-owned draft order
// consistent across the add-item, remove-item and place-order operations.
//
// The client never maintains an authoritative copy: the draft order id in
// the session is only a belief, and every projection is recomputed from a
// fresh fetch of the order list.
package basket

import "github.com/LazyIfox/Pizza3/internal/domain"

// Item is one display line of the basket.
type Item struct {
	Pizza    domain.Pizza
	Quantity int
}

// Reconcile selects the draft order out of a fetched order list and projects
// its product lines into display items. The server contract says at most one
// DRAFT exists; if the list somehow carries several, the first one wins
// deterministically, and zero drafts yield ok=false with an empty projection.
func Reconcile(orders []domain.Order) (draft domain.Order, items []Item, ok bool) {
	for _, o := range orders {
		if o.IsDraft() {
			items = make([]Item, 0, len(o.Products))
			for _, line := range o.Products {
				items = append(items, Item{Pizza: line.Product, Quantity: line.Quantity})
			}
			return o, items, true
		}
	}
	return domain.Order{}, nil, false
}
