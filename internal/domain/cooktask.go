package domain

import "time"

// CookTask is a backend-computed queue entry: one row per (order, pizza) pair
// a preparer still has units to cook for. It is a projection, not a stored
// entity, so the client always replaces the whole queue on re-fetch.
type CookTask struct {
	PizzaName         string    `json:"pizza_name"`
	PizzaImage        string    `json:"pizza_image"`
	PizzaID           int       `json:"pizza_id"`
	OrderID           int       `json:"order_id"`
	FormationDatetime time.Time `json:"formation_datetime"`
	RemainingToCook   int       `json:"remaining_to_cook"`
}
