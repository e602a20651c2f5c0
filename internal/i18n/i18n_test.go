package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/LazyIfox/Pizza3/internal/domain"
)

func TestLocaleNegotiation(t *testing.T) {
	assert.Equal(t, language.Russian, New("ru").Tag())
	assert.Equal(t, language.English, New("en").Tag())
	assert.Equal(t, language.English, New("en-US").Tag())
	// Unknown and empty locales fall back to Russian.
	assert.Equal(t, language.Russian, New("de").Tag())
	assert.Equal(t, language.Russian, New("").Tag())
}

func TestStatusLabelRoundTrip(t *testing.T) {
	for _, cat := range []*Catalog{New("ru"), New("en")} {
		for _, status := range domain.Statuses {
			label := cat.StatusLabel(status)
			got, ok := cat.StatusFromLabel(label)
			assert.True(t, ok, "label %q", label)
			assert.Equal(t, status, got)
		}
	}
}

func TestRussianStatusLabels(t *testing.T) {
	cat := New("ru")
	assert.Equal(t, "Черновик", cat.StatusLabel(domain.StatusDraft))
	assert.Equal(t, "Сформирован", cat.StatusLabel(domain.StatusFormed))
	assert.Equal(t, "Завершён", cat.StatusLabel(domain.StatusCompleted))
}

func TestUnknownStatusPassesThrough(t *testing.T) {
	cat := New("ru")
	assert.Equal(t, "WEIRD", cat.StatusLabel(domain.OrderStatus("WEIRD")))

	_, ok := cat.StatusFromLabel("Не статус")
	assert.False(t, ok)
}

func TestUnknownMessageKeyStaysVisible(t *testing.T) {
	cat := New("ru")
	assert.Equal(t, "no.such.key", cat.T("no.such.key"))
}

func TestEveryKeyHasBothTranslations(t *testing.T) {
	assert.Equal(t, len(ruMessages), len(enMessages))
	for key := range ruMessages {
		_, ok := enMessages[key]
		assert.True(t, ok, "missing english translation for %q", key)
	}
}
