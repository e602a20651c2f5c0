package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LazyIfox/Pizza3/internal/i18n"
)

func TestTrailAppendsNewRoutes(t *testing.T) {
	var tr Trail
	tr.Visit(routeHome)
	tr.Visit(routeBasket)
	tr.Visit("/pizza/3")
	assert.Equal(t, []string{routeHome, routeBasket, "/pizza/3"}, tr.Paths())
}

// Revisiting a route already on the trail truncates everything after it
// instead of appending a duplicate.
func TestTrailTruncatesOnRevisit(t *testing.T) {
	var tr Trail
	tr.Visit(routeHome)
	tr.Visit(routeBasket)
	tr.Visit("/pizza/3")
	tr.Visit(routeHome)
	assert.Equal(t, []string{routeHome}, tr.Paths())
}

func TestTrailReset(t *testing.T) {
	var tr Trail
	tr.Visit(routeHome)
	tr.Visit(routeOrders)
	tr.Reset()
	assert.Empty(t, tr.Paths())
}

func TestTrailPathsIsACopy(t *testing.T) {
	var tr Trail
	tr.Visit(routeHome)
	paths := tr.Paths()
	paths[0] = "/mutated"
	assert.Equal(t, []string{routeHome}, tr.Paths())
}

func TestTrailRenderUsesLocalizedLabels(t *testing.T) {
	var tr Trail
	tr.Visit(routeHome)
	tr.Visit("/pizza/2")

	ru := tr.Render(i18n.New("ru"))
	assert.Contains(t, ru, " / ")
	assert.Equal(t, i18n.New("ru").T(i18n.MsgCrumbHome)+" / "+i18n.New("ru").T(i18n.MsgCrumbDetail), ru)

	en := tr.Render(i18n.New("en"))
	assert.Equal(t, i18n.New("en").T(i18n.MsgCrumbHome)+" / "+i18n.New("en").T(i18n.MsgCrumbDetail), en)
}
