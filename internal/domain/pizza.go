package domain

import "github.com/shopspring/decimal"

// Pizza is a menu item. Immutable from the client's point of view.
type Pizza struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Cook        string          `json:"cook"`
}
