package shell

import (
	"strings"

	"github.com/LazyIfox/Pizza3/internal/i18n"
)

// Trail is the breadcrumb history of visited routes. Visiting a route that
// is already on the trail truncates the trail back to it; anything else is
// appended at the end.
type Trail struct {
	paths []string
}

// Visit records a navigation to path.
func (t *Trail) Visit(path string) {
	for i, p := range t.paths {
		if p == path {
			t.paths = t.paths[:i+1]
			return
		}
	}
	t.paths = append(t.paths, path)
}

// Paths returns the current trail.
func (t *Trail) Paths() []string {
	return append([]string(nil), t.paths...)
}

// Reset clears the trail.
func (t *Trail) Reset() {
	t.paths = t.paths[:0]
}

// Render joins the trail into the " / "-separated breadcrumb line.
func (t *Trail) Render(cat *i18n.Catalog) string {
	labels := make([]string, 0, len(t.paths))
	for _, p := range t.paths {
		labels = append(labels, crumbLabel(cat, p))
	}
	return strings.Join(labels, " / ")
}

// crumbLabel maps a route to its breadcrumb label.
func crumbLabel(cat *i18n.Catalog, path string) string {
	switch {
	case path == routeHome:
		return cat.T(i18n.MsgCrumbHome)
	case path == routeOrders:
		return cat.T(i18n.MsgCrumbOrders)
	case path == routeBasket:
		return cat.T(i18n.MsgCrumbBasket)
	case path == routeAuth:
		return cat.T(i18n.MsgCrumbAuth)
	case path == routeRegister:
		return cat.T(i18n.MsgCrumbRegister)
	case strings.HasPrefix(path, "/pizza/"):
		return cat.T(i18n.MsgCrumbDetail)
	default:
		return strings.TrimPrefix(path, "/")
	}
}
