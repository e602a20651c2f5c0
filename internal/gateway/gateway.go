package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/LazyIfox/Pizza3/internal/domain"
	"github.com/LazyIfox/Pizza3/internal/session"
)

const (
	csrfCookie = "csrftoken"
	csrfHeader = "X-CSRFToken"
)

// Gateway exposes the backend operations the client consumes. Mutating
// operations refuse to run without a known anti-forgery token: the caller is
// treated as unauthenticated instead of attempting the call.
type Gateway struct {
	c      *Client
	tokens *session.TokenStore
	log    *zap.Logger
}

// New creates a gateway on top of the HTTP client and the token mirror.
func New(c *Client, tokens *session.TokenStore, log *zap.Logger) *Gateway {
	return &Gateway{c: c, tokens: tokens, log: log}
}

// LoginResult carries the fields of a successful login response.
type LoginResult struct {
	Username     string
	IsStaff      bool
	IsSuperuser  bool
	IsCook       bool
	DraftOrderID int
}

type loginResponse struct {
	Message      string `json:"message"`
	Username     string `json:"username"`
	IsStaff      bool   `json:"is_staff"`
	IsSuperuser  bool   `json:"is_superuser"`
	IsCook       bool   `json:"is_cook"`
	CSRFToken    string `json:"csrf_token"`
	DraftOrderID int    `json:"draft_order_id"`
}

// Login authenticates the user and mirrors the issued anti-forgery token
// into the persistent token store.
func (g *Gateway) Login(ctx context.Context, username, password string) (LoginResult, error) {
	resp, err := g.c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/login",
		Body:   map[string]string{"username": username, "password": password},
	})
	if err != nil {
		return LoginResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		if isAuthStatus(resp.StatusCode) || resp.StatusCode == http.StatusBadRequest {
			return LoginResult{}, fmt.Errorf("%w: login rejected", ErrUnauthenticated)
		}
		return LoginResult{}, &StatusError{Operation: "login", StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var lr loginResponse
	if err := json.Unmarshal(resp.Body, &lr); err != nil {
		return LoginResult{}, fmt.Errorf("parsing login response: %w", err)
	}

	// The token is issued as a cookie; the response body carries a copy as a
	// fallback for backends that set the cookie on a different path.
	token := g.c.CookieValue(csrfCookie)
	if token == "" {
		token = lr.CSRFToken
	}
	if err := g.tokens.Save(token); err != nil {
		return LoginResult{}, err
	}

	g.log.Info("logged in", zap.String("username", lr.Username), zap.Bool("is_cook", lr.IsCook))

	return LoginResult{
		Username:     lr.Username,
		IsStaff:      lr.IsStaff,
		IsSuperuser:  lr.IsSuperuser,
		IsCook:       lr.IsCook,
		DraftOrderID: lr.DraftOrderID,
	}, nil
}

// Logout ends the backend session and forgets the persisted token.
func (g *Gateway) Logout(ctx context.Context) error {
	token, err := g.requireToken()
	if err != nil {
		return err
	}
	resp, err := g.c.Do(ctx, Request{
		Method:  http.MethodPost,
		Path:    "/logout",
		Headers: map[string]string{csrfHeader: token},
		Body:    map[string]string{},
	})
	if err != nil {
		return err
	}
	if err := classify("logout", resp); err != nil {
		return err
	}
	return g.tokens.Clear()
}

// Register creates a new account. A taken username maps to ErrConflict.
func (g *Gateway) Register(ctx context.Context, username, password string) error {
	resp, err := g.c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/register/",
		Body:   map[string]string{"username": username, "password": password},
	})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusCreated {
		return nil
	}
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict {
		return fmt.Errorf("%w: username taken", ErrConflict)
	}
	return &StatusError{Operation: "register", StatusCode: resp.StatusCode, Body: string(resp.Body)}
}

// ListOrders returns every order of the session user, including the draft.
func (g *Gateway) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return g.getOrders(ctx, "/api/orders/")
}

// UserOrders returns the order history projection the orders view shows.
func (g *Gateway) UserOrders(ctx context.Context) ([]domain.Order, error) {
	return g.getOrders(ctx, "/api/orders/user_orders/")
}

func (g *Gateway) getOrders(ctx context.Context, path string) ([]domain.Order, error) {
	resp, err := g.c.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}
	if err := classify("list orders", resp); err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := json.Unmarshal(resp.Body, &orders); err != nil {
		return nil, fmt.Errorf("parsing order list: %w", err)
	}
	return orders, nil
}

// GetPizza fetches one pizza by id.
func (g *Gateway) GetPizza(ctx context.Context, id int) (domain.Pizza, error) {
	resp, err := g.c.Do(ctx, Request{Method: http.MethodGet, Path: fmt.Sprintf("/api/pizzas/%d/", id)})
	if err != nil {
		return domain.Pizza{}, err
	}
	if err := classify("get pizza", resp); err != nil {
		return domain.Pizza{}, err
	}
	var p domain.Pizza
	if err := json.Unmarshal(resp.Body, &p); err != nil {
		return domain.Pizza{}, fmt.Errorf("parsing pizza: %w", err)
	}
	return p, nil
}

type addToDraftResponse struct {
	Message string `json:"message"`
	OrderID int    `json:"order_id"`
}

// AddToDraft adds a pizza to the user's draft order, creating the draft
// server-side when none exists, and returns the id of the order the item
// landed in.
func (g *Gateway) AddToDraft(ctx context.Context, productID, quantity int) (int, error) {
	token, err := g.requireToken()
	if err != nil {
		return 0, err
	}
	resp, err := g.c.Do(ctx, Request{
		Method:  http.MethodPost,
		Path:    "/api/orders/add_to_draft/",
		Headers: map[string]string{csrfHeader: token},
		Body:    map[string]int{"product_id": productID, "quantity": quantity},
	})
	if err != nil {
		return 0, err
	}
	if err := classify("add to draft", resp); err != nil {
		return 0, err
	}
	var ar addToDraftResponse
	if err := json.Unmarshal(resp.Body, &ar); err != nil {
		return 0, fmt.Errorf("parsing add_to_draft response: %w", err)
	}
	return ar.OrderID, nil
}

// RemovePizza removes a product line from the given order. The backend may
// delete the whole order when its last line goes; callers must re-fetch.
func (g *Gateway) RemovePizza(ctx context.Context, orderID, productID int) error {
	token, err := g.requireToken()
	if err != nil {
		return err
	}
	resp, err := g.c.Do(ctx, Request{
		Method:  http.MethodDelete,
		Path:    fmt.Sprintf("/api/orders/%d/remove_pizza/", orderID),
		Headers: map[string]string{csrfHeader: token},
		Body:    map[string]int{"product_id": productID},
	})
	if err != nil {
		return err
	}
	return classify("remove pizza", resp)
}

// FormOrder transitions the draft order to FORMED.
func (g *Gateway) FormOrder(ctx context.Context, orderID int) error {
	token, err := g.requireToken()
	if err != nil {
		return err
	}
	resp, err := g.c.Do(ctx, Request{
		Method:  http.MethodPut,
		Path:    fmt.Sprintf("/api/orders/%d/form/", orderID),
		Headers: map[string]string{csrfHeader: token},
		Body:    map[string]string{},
	})
	if err != nil {
		return err
	}
	return classify("form order", resp)
}

// CookTasks returns the outstanding cook queue for the session preparer.
func (g *Gateway) CookTasks(ctx context.Context) ([]domain.CookTask, error) {
	resp, err := g.c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/cook/tasks/"})
	if err != nil {
		return nil, err
	}
	if err := classify("cook tasks", resp); err != nil {
		return nil, err
	}
	var tasks []domain.CookTask
	if err := json.Unmarshal(resp.Body, &tasks); err != nil {
		return nil, fmt.Errorf("parsing cook tasks: %w", err)
	}
	return tasks, nil
}

// IncrementCooked reports one more cooked unit for (order, pizza). The
// caller re-fetches the queue afterwards; remaining counts are
// server-computed.
func (g *Gateway) IncrementCooked(ctx context.Context, orderID, pizzaID int) error {
	token, err := g.requireToken()
	if err != nil {
		return err
	}
	resp, err := g.c.Do(ctx, Request{
		Method:  http.MethodPost,
		Path:    "/api/product_in_order/increment-cooked/",
		Headers: map[string]string{csrfHeader: token},
		Body:    map[string]int{"order_id": orderID, "product_id": pizzaID},
	})
	if err != nil {
		return err
	}
	return classify("increment cooked", resp)
}

// requireToken returns the anti-forgery token or ErrUnauthenticated when the
// mirror holds none, keeping unauthenticated mutations off the wire.
func (g *Gateway) requireToken() (string, error) {
	token := g.tokens.Token()
	if token == "" {
		return "", fmt.Errorf("%w: no anti-forgery token", ErrUnauthenticated)
	}
	return token, nil
}

// classify maps a response status onto the gateway error taxonomy. 2xx
// passes through as success.
func classify(operation string, resp *Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case isAuthStatus(resp.StatusCode):
		return fmt.Errorf("%w: %s", ErrUnauthenticated, operation)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, operation)
	default:
		return &StatusError{Operation: operation, StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
