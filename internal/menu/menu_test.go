package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(m *Menu) []string {
	out := []string{}
	for _, p := range m.Visible() {
		out = append(out, p.Name)
	}
	return out
}

func TestCatalogParses(t *testing.T) {
	catalog, err := Catalog()
	require.NoError(t, err)
	require.Len(t, catalog, 4)
	assert.Equal(t, "Маргарита", catalog[0].Name)
	assert.Equal(t, "300", catalog[0].Price.StringFixed(0))
}

func newMenu(t *testing.T) *Menu {
	t.Helper()
	catalog, err := Catalog()
	require.NoError(t, err)
	return New(catalog)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	m := newMenu(t)
	m.Search("маргарита")
	assert.Equal(t, []string{"Маргарита"}, names(m))
}

// Search recomputes from the full catalog, not from the currently filtered
// list: narrowing and then broadening the query brings entries back.
func TestSearchRecomputesFromCatalog(t *testing.T) {
	m := newMenu(t)
	m.Search("Гавайская")
	require.Equal(t, []string{"Гавайская"}, names(m))

	m.Search("")
	assert.Len(t, m.Visible(), 4)
}

func TestVegetarianFilter(t *testing.T) {
	m := newMenu(t)

	m.FilterVegetarian("true")
	assert.Equal(t, []string{"Овощная"}, names(m))

	m.FilterVegetarian("false")
	assert.Equal(t, []string{"Маргарита", "Пепперони", "Гавайская"}, names(m))

	m.FilterVegetarian("")
	assert.Len(t, m.Visible(), 4)
}

// The vegetarian filter also recomputes from the catalog, discarding a
// previous search.
func TestVegetarianFilterDiscardsSearch(t *testing.T) {
	m := newMenu(t)
	m.Search("Пепперони")
	m.FilterVegetarian("false")
	assert.Equal(t, []string{"Маргарита", "Пепперони", "Гавайская"}, names(m))
}

func TestSortByPrice(t *testing.T) {
	m := newMenu(t)

	m.SortByPrice(SortPriceAsc)
	assert.Equal(t, []string{"Маргарита", "Овощная", "Пепперони", "Гавайская"}, names(m))

	m.SortByPrice(SortPriceDesc)
	assert.Equal(t, []string{"Гавайская", "Пепперони", "Овощная", "Маргарита"}, names(m))
}

// Unlike search and the vegetarian filter, the sort applies to whatever is
// currently visible; it does not resurrect filtered-out entries.
func TestSortAppliesToFilteredList(t *testing.T) {
	m := newMenu(t)
	m.FilterVegetarian("false")
	m.SortByPrice(SortPriceDesc)
	assert.Equal(t, []string{"Гавайская", "Пепперони", "Маргарита"}, names(m))
}

// And the asymmetry the other way around: a new search resets the order the
// sort imposed.
func TestSearchResetsSortOrder(t *testing.T) {
	m := newMenu(t)
	m.SortByPrice(SortPriceDesc)
	m.Search("")
	assert.Equal(t, []string{"Маргарита", "Пепперони", "Гавайская", "Овощная"}, names(m))
}
