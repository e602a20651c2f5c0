package basket

import (
	"context"

	"go.uber.org/zap"

	"github.com/LazyIfox/Pizza3/internal/domain"
	"github.com/LazyIfox/Pizza3/internal/session"
)

// ViewState is the display state of the basket view.
type ViewState int

const (
	// Unauthenticated means no user is logged in.
	Unauthenticated ViewState = iota
	// Empty means the customer has no draft order.
	Empty
	// HasDraft means the customer's draft order holds at least one line.
	HasDraft
	// CookQueue means the view shows the preparer's task queue instead of a
	// basket. Role is evaluated once per load; it only changes through
	// re-authentication.
	CookQueue
)

// Projection is what the basket view renders after a load.
type Projection struct {
	State ViewState
	Items []Item            // set when State == HasDraft
	Tasks []domain.CookTask // set when State == CookQueue
}

// Gateway is the slice of backend operations the basket flows need.
type Gateway interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	AddToDraft(ctx context.Context, productID, quantity int) (int, error)
	RemovePizza(ctx context.Context, orderID, productID int) error
	FormOrder(ctx context.Context, orderID int) error
	CookTasks(ctx context.Context) ([]domain.CookTask, error)
	IncrementCooked(ctx context.Context, orderID, pizzaID int) error
}

// Flow drives the basket lifecycle against the gateway, funneling the
// resulting draft id changes through the session store.
type Flow struct {
	gw   Gateway
	sess *session.Store
	log  *zap.Logger
}

// NewFlow wires the basket flows.
func NewFlow(gw Gateway, sess *session.Store, log *zap.Logger) *Flow {
	return &Flow{gw: gw, sess: sess, log: log}
}

// Load builds the basket projection for the current session. For a customer
// it fetches the full order list and reconciles the draft; for a cook it
// fetches the task queue. The session's draft order id is refreshed from the
// authoritative list on every load.
func (f *Flow) Load(ctx context.Context) (Projection, error) {
	state := f.sess.Snapshot()
	if !state.Authenticated() {
		return Projection{State: Unauthenticated}, nil
	}

	if state.IsCook {
		tasks, err := f.gw.CookTasks(ctx)
		if err != nil {
			return Projection{}, err
		}
		return Projection{State: CookQueue, Tasks: tasks}, nil
	}

	orders, err := f.gw.ListOrders(ctx)
	if err != nil {
		return Projection{}, err
	}
	draft, items, ok := Reconcile(orders)
	if !ok {
		f.sess.ClearDraftOrderID()
		return Projection{State: Empty}, nil
	}
	f.sess.SetDraftOrderID(draft.ID)
	if len(items) == 0 {
		return Projection{State: Empty}, nil
	}
	return Projection{State: HasDraft, Items: items}, nil
}

// AddToCart submits a pizza to the draft order and adopts the order id the
// server responds with. The server creates the draft when none existed, so
// the returned id is authoritative whatever the session believed before.
func (f *Flow) AddToCart(ctx context.Context, pizzaID, quantity int) (int, error) {
	orderID, err := f.gw.AddToDraft(ctx, pizzaID, quantity)
	if err != nil {
		return 0, err
	}
	if orderID != 0 {
		f.sess.SetDraftOrderID(orderID)
	}
	f.log.Info("added to draft order",
		zap.Int("pizza_id", pizzaID),
		zap.Int("quantity", quantity),
		zap.Int("order_id", orderID))
	return orderID, nil
}

// Remove deletes a product line from the draft order and rebuilds the
// projection from a fresh fetch. The server's removal semantics win: taking
// the last line out may delete the whole order, in which case the basket
// goes empty.
func (f *Flow) Remove(ctx context.Context, productID int) (Projection, error) {
	draftID := f.sess.Snapshot().DraftOrderID
	if draftID == 0 {
		return Projection{State: Empty}, nil
	}
	if err := f.gw.RemovePizza(ctx, draftID, productID); err != nil {
		return Projection{}, err
	}
	return f.Load(ctx)
}

// Place forms the current draft order. On success the draft id is cleared;
// on failure nothing changes and the caller surfaces a retryable message.
func (f *Flow) Place(ctx context.Context) error {
	draftID := f.sess.Snapshot().DraftOrderID
	if draftID == 0 {
		return nil
	}
	if err := f.gw.FormOrder(ctx, draftID); err != nil {
		return err
	}
	f.sess.ClearDraftOrderID()
	f.log.Info("order placed", zap.Int("order_id", draftID))
	return nil
}

// CookedOne reports one cooked unit and re-fetches the whole queue; the
// remaining counts are server-computed, never patched locally.
func (f *Flow) CookedOne(ctx context.Context, orderID, pizzaID int) ([]domain.CookTask, error) {
	if err := f.gw.IncrementCooked(ctx, orderID, pizzaID); err != nil {
		return nil, err
	}
	return f.gw.CookTasks(ctx)
}
