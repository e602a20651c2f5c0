// Package i18n holds every user-visible string of the client, keyed by
// message id and grouped into per-language catalogs. The backend speaks
// status codes; users see localized labels, and the orders filter maps the
// labels back to codes through the same table.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/LazyIfox/Pizza3/internal/domain"
)

// Message keys. Views look text up by key so the wording lives in one place.
const (
	MsgBasketTitle        = "basket.title"
	MsgBasketCookTitle    = "basket.cook_title"
	MsgBasketEmpty        = "basket.empty"
	MsgBasketUnauthed     = "basket.unauthenticated"
	MsgBasketNoTasks      = "basket.no_tasks"
	MsgBasketPlaceFailed  = "basket.place_failed"
	MsgBasketRemoveFailed = "basket.remove_failed"
	MsgBasketCookedFailed = "basket.cooked_failed"
	MsgDetailNotFound     = "detail.not_found"
	MsgDetailAddFailed    = "detail.add_failed"
	MsgMenuTitle          = "menu.title"
	MsgMenuCookTitle      = "menu.cook_title"
	MsgMenuNoMatches      = "menu.no_matches"
	MsgOrdersTitle        = "orders.title"
	MsgOrdersUnauthed     = "orders.unauthenticated"
	MsgOrdersNoMatches    = "orders.no_matches"
	MsgOrdersNotCompleted = "orders.not_completed"
	MsgAuthBadCredentials = "auth.bad_credentials"
	MsgAuthUserExists     = "auth.user_exists"
	MsgAuthInvalidInput   = "auth.invalid_input"
	MsgAuthRegistered     = "auth.registered"
	MsgErrTransport       = "error.transport"
	MsgShellTitle         = "shell.title"
	MsgCrumbHome          = "crumb.home"
	MsgCrumbOrders        = "crumb.orders"
	MsgCrumbBasket        = "crumb.basket"
	MsgCrumbAuth          = "crumb.auth"
	MsgCrumbRegister      = "crumb.register"
	MsgCrumbDetail        = "crumb.detail"
)

var supported = []language.Tag{
	language.Russian, // first tag is the fallback
	language.English,
}

var matcher = language.NewMatcher(supported)

// Catalog resolves message keys and status labels for one language.
type Catalog struct {
	tag      language.Tag
	messages map[string]string
	labels   map[domain.OrderStatus]string
}

// New picks the best supported language for the configured locale and returns
// its catalog. Unknown or empty locales fall back to Russian, the language
// the original site ships in.
func New(locale string) *Catalog {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	if base.String() == "en" {
		return &Catalog{tag: language.English, messages: enMessages, labels: enStatusLabels}
	}
	return &Catalog{tag: language.Russian, messages: ruMessages, labels: ruStatusLabels}
}

// Tag returns the negotiated language tag.
func (c *Catalog) Tag() language.Tag { return c.tag }

// T returns the text for a message key, or the key itself when the catalog
// has no entry, so a missing translation stays visible instead of blank.
func (c *Catalog) T(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

// StatusLabel returns the localized label for an order status. Unknown
// statuses pass through unchanged, matching the site's behavior.
func (c *Catalog) StatusLabel(s domain.OrderStatus) string {
	if label, ok := c.labels[s]; ok {
		return label
	}
	return string(s)
}

// StatusFromLabel maps a localized label back to its status code. The empty
// label means "no status selected" and reports ok=false.
func (c *Catalog) StatusFromLabel(label string) (domain.OrderStatus, bool) {
	for status, l := range c.labels {
		if l == label {
			return status, true
		}
	}
	return "", false
}

// StatusLabels returns the labels in the backend's status order, for
// rendering filter choices.
func (c *Catalog) StatusLabels() []string {
	out := make([]string, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		out = append(out, c.labels[s])
	}
	return out
}
