package shell

import (
	"context"
	"fmt"

	"github.com/LazyIfox/Pizza3/internal/basket"
	"github.com/LazyIfox/Pizza3/internal/domain"
	"github.com/LazyIfox/Pizza3/internal/i18n"
)

const timeLayout = "15:04 02.01.2006"

// renderBasket loads the basket projection and renders the state it landed
// in: the customer's draft lines, the cook's task queue, or an empty /
// unauthenticated notice.
func (s *Shell) renderBasket(ctx context.Context) {
	if s.sess.Snapshot().IsCook {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgBasketCookTitle))
	} else {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgBasketTitle))
	}

	proj, err := s.flow.Load(ctx)
	if err != nil {
		s.fail(err, i18n.MsgBasketEmpty)
		return
	}

	switch proj.State {
	case basket.Unauthenticated:
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgBasketUnauthed))
	case basket.Empty:
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgBasketEmpty))
	case basket.HasDraft:
		s.renderBasketItems(proj.Items)
	case basket.CookQueue:
		s.renderCookTasks(proj.Tasks)
	}
}

func (s *Shell) renderBasketItems(items []basket.Item) {
	for _, it := range items {
		fmt.Fprintf(s.out, "  [%d] %s — %s ₽ × %d\n", it.Pizza.ID, it.Pizza.Name, it.Pizza.Price.StringFixed(0), it.Quantity)
	}
	fmt.Fprintln(s.out, "remove <id> | checkout")
}

func (s *Shell) renderCookTasks(tasks []domain.CookTask) {
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgBasketNoTasks))
		return
	}
	for _, t := range tasks {
		fmt.Fprintf(s.out, "  %s — №%d × %d (%s)\n",
			t.PizzaName, t.OrderID, t.RemainingToCook, t.FormationDatetime.Local().Format(timeLayout))
	}
	fmt.Fprintln(s.out, "cooked <order> <pizza>")
}

// handleBasketCommand handles the basket view commands for both roles.
func (s *Shell) handleBasketCommand(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "remove":
		productID, ok := parseInt(args, 0)
		if !ok {
			s.printHelp()
			return
		}
		if _, err := s.flow.Remove(ctx, productID); err != nil {
			s.fail(err, i18n.MsgBasketRemoveFailed)
			return
		}
		s.renderBasket(ctx)
	case "checkout":
		if err := s.flow.Place(ctx); err != nil {
			s.fail(err, i18n.MsgBasketPlaceFailed)
			return
		}
		s.navigate(ctx, routeOrders)
	case "cooked":
		orderID, ok1 := parseInt(args, 0)
		pizzaID, ok2 := parseInt(args, 1)
		if !ok1 || !ok2 {
			s.printHelp()
			return
		}
		tasks, err := s.flow.CookedOne(ctx, orderID, pizzaID)
		if err != nil {
			s.fail(err, i18n.MsgBasketCookedFailed)
			return
		}
		s.renderCookTasks(tasks)
	default:
		s.printHelp()
	}
}
