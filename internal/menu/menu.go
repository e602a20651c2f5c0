// Package menu serves the home view: a static in-memory catalog with local
// search, price sort and a vegetarian filter. None of it touches the
// backend.
//
// Search and the vegetarian filter always recompute the visible list from
// the full catalog; the price sort, by contrast, reorders whatever is
// currently visible. That asymmetry matches the original behavior and is
// kept on purpose.
package menu

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/LazyIfox/Pizza3/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// vegetarianMarker is the word the vegetarian filter looks for in
// descriptions.
const vegetarianMarker = "вегетариан"

// Sort orders for SortByPrice, named after the site's select values.
const (
	SortNone      = ""
	SortPriceAsc  = "price"
	SortPriceDesc = "-price"
)

type catalogEntry struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	Cook        string `yaml:"cook"`
	Image       string `yaml:"image"`
}

// Catalog parses the embedded static catalog.
func Catalog() ([]domain.Pizza, error) {
	var entries []catalogEntry
	if err := yaml.Unmarshal(catalogYAML, &entries); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}

	pizzas := make([]domain.Pizza, 0, len(entries))
	for _, e := range entries {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: bad price %q: %w", e.ID, e.Price, err)
		}
		pizzas = append(pizzas, domain.Pizza{
			ID:          e.ID,
			Name:        e.Name,
			Price:       price,
			Description: e.Description,
			Cook:        e.Cook,
			Image:       e.Image,
		})
	}
	return pizzas, nil
}

// Menu holds the full catalog and the currently visible subset.
type Menu struct {
	catalog []domain.Pizza
	visible []domain.Pizza
}

// New creates a menu showing the whole catalog.
func New(catalog []domain.Pizza) *Menu {
	m := &Menu{catalog: catalog}
	m.visible = append([]domain.Pizza(nil), catalog...)
	return m
}

// Search replaces the visible list with the catalog entries whose name
// contains the query, case-insensitively. The empty query shows everything.
func (m *Menu) Search(query string) {
	q := strings.ToLower(query)
	m.visible = m.visible[:0]
	for _, p := range m.catalog {
		if strings.Contains(strings.ToLower(p.Name), q) {
			m.visible = append(m.visible, p)
		}
	}
}

// FilterVegetarian replaces the visible list from the catalog: "true" keeps
// pizzas whose description carries the marker word, "false" keeps the rest,
// the empty choice shows everything.
func (m *Menu) FilterVegetarian(choice string) {
	m.visible = m.visible[:0]
	for _, p := range m.catalog {
		veg := strings.Contains(p.Description, vegetarianMarker)
		switch choice {
		case "":
			m.visible = append(m.visible, p)
		case "true":
			if veg {
				m.visible = append(m.visible, p)
			}
		case "false":
			if !veg {
				m.visible = append(m.visible, p)
			}
		}
	}
}

// SortByPrice reorders the currently visible list in place.
func (m *Menu) SortByPrice(order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(m.visible, func(i, j int) bool {
			return m.visible[i].Price.LessThan(m.visible[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(m.visible, func(i, j int) bool {
			return m.visible[j].Price.LessThan(m.visible[i].Price)
		})
	}
}

// Visible returns a copy of the currently visible list.
func (m *Menu) Visible() []domain.Pizza {
	return append([]domain.Pizza(nil), m.visible...)
}
