package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/LazyIfox/Pizza3/internal/gateway"
	"github.com/LazyIfox/Pizza3/internal/i18n"
)

// renderDetail shows one pizza. Cooks see neither the preparer name nor the
// add-to-cart control.
func (s *Shell) renderDetail() {
	if s.pizza == nil {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgDetailNotFound))
		return
	}
	isCook := s.sess.Snapshot().IsCook

	fmt.Fprintln(s.out, s.pizza.Name)
	fmt.Fprintln(s.out, s.pizza.Description)
	fmt.Fprintf(s.out, "%s ₽\n", s.pizza.Price.StringFixed(0))
	if !isCook {
		fmt.Fprintln(s.out, s.pizza.Cook)
		fmt.Fprintln(s.out, "add")
	}
}

// handleDetailCommand handles the detail view's only command.
func (s *Shell) handleDetailCommand(ctx context.Context, cmd string) {
	if cmd != "add" {
		s.printHelp()
		return
	}
	if s.pizza == nil || s.sess.Snapshot().IsCook {
		return
	}

	_, err := s.flow.AddToCart(ctx, s.pizza.ID, 1)
	if err != nil {
		// Without an anti-forgery token the user is not authenticated for
		// mutating flows; send them to the login view instead of failing.
		if errors.Is(err, gateway.ErrUnauthenticated) {
			s.navigate(ctx, routeAuth)
			return
		}
		s.fail(err, i18n.MsgDetailAddFailed)
		return
	}
	s.navigate(ctx, routeBasket)
}
