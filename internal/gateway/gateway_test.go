package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LazyIfox/Pizza3/internal/config"
	"github.com/LazyIfox/Pizza3/internal/session"
)

func newTestGateway(t *testing.T, handler http.Handler) (*Gateway, *session.TokenStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens, err := session.NewTokenStore(filepath.Join(t.TempDir(), "session.yaml"))
	require.NoError(t, err)

	client, err := NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, zap.NewNop())
	require.NoError(t, err)

	return New(client, tokens, zap.NewNop()), tokens
}

func TestLoginMirrorsCSRFCookie(t *testing.T) {
	gw, tokens := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "vlada", body["username"])

		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok-123", Path: "/"})
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"message":        "ok",
			"username":       "vlada",
			"is_cook":        true,
			"draft_order_id": 5,
		})
	}))

	result, err := gw.Login(context.Background(), "vlada", "secret")
	require.NoError(t, err)
	assert.Equal(t, "vlada", result.Username)
	assert.True(t, result.IsCook)
	assert.Equal(t, 5, result.DraftOrderID)
	assert.Equal(t, "tok-123", tokens.Token(), "cookie token is mirrored into the store")
}

func TestLoginRejectedMapsToUnauthenticated(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := gw.Login(context.Background(), "vlada", "wrong")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// A mutating call without a known anti-forgery token must fail before
// reaching the wire.
func TestMutationWithoutTokenStaysLocal(t *testing.T) {
	hit := false
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))

	_, err := gw.AddToDraft(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.ErrorIs(t, gw.FormOrder(context.Background(), 1), ErrUnauthenticated)
	assert.ErrorIs(t, gw.RemovePizza(context.Background(), 1, 7), ErrUnauthenticated)
	assert.ErrorIs(t, gw.IncrementCooked(context.Background(), 1, 7), ErrUnauthenticated)
	assert.ErrorIs(t, gw.Logout(context.Background()), ErrUnauthenticated)

	assert.False(t, hit, "no request may reach the backend")
}

func TestAddToDraftEchoesToken(t *testing.T) {
	gw, tokens := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/add_to_draft/", r.URL.Path)
		assert.Equal(t, "tok-abc", r.Header.Get("X-CSRFToken"))

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 7, body["product_id"])
		assert.Equal(t, 1, body["quantity"])

		json.NewEncoder(w).Encode(map[string]any{"message": "added", "order_id": 12})
	}))
	require.NoError(t, tokens.Save("tok-abc"))

	orderID, err := gw.AddToDraft(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, orderID)
}

func TestRemovePizzaSendsBody(t *testing.T) {
	gw, tokens := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/12/remove_pizza/", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "tok-abc", r.Header.Get("X-CSRFToken"))

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 7, body["product_id"])
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, tokens.Save("tok-abc"))

	require.NoError(t, gw.RemovePizza(context.Background(), 12, 7))
}

func TestGetPizzaNotFound(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := gw.GetPizza(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPizzaParsesPrice(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pizzas/3/", r.URL.Path)
		w.Write([]byte(`{"id":3,"name":"Гавайская","price":450,"description":"x","image":"","cook":"Cook C"}`))
	}))

	p, err := gw.GetPizza(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Гавайская", p.Name)
	assert.Equal(t, "450", p.Price.StringFixed(0))
}

func TestRegisterConflict(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register/", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
	}))

	err := gw.Register(context.Background(), "vlada", "secret")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterCreated(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	require.NoError(t, gw.Register(context.Background(), "vlada", "secret"))
}

func TestLogoutClearsToken(t *testing.T) {
	gw, tokens := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "tok-abc", r.Header.Get("X-CSRFToken"))
		w.WriteHeader(http.StatusOK)
	}))
	require.NoError(t, tokens.Save("tok-abc"))

	require.NoError(t, gw.Logout(context.Background()))
	assert.Empty(t, tokens.Token())
}

// A failed logout keeps the token: local state resets only after the
// backend confirmed.
func TestFailedLogoutKeepsToken(t *testing.T) {
	gw, tokens := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	require.NoError(t, tokens.Save("tok-abc"))

	require.Error(t, gw.Logout(context.Background()))
	assert.Equal(t, "tok-abc", tokens.Token())
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // nothing listens anymore

	tokens, err := session.NewTokenStore(filepath.Join(t.TempDir(), "session.yaml"))
	require.NoError(t, err)
	client, err := NewClient(config.BackendConfig{BaseURL: url, Timeout: time.Second}, zap.NewNop())
	require.NoError(t, err)
	gw := New(client, tokens, zap.NewNop())

	_, err = gw.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestListOrdersAuthFailure(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := gw.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUnexpectedStatus(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := gw.ListOrders(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTeapot, statusErr.StatusCode)
}
