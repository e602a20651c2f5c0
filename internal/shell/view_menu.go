package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/LazyIfox/Pizza3/internal/i18n"
)

// renderMenu shows the catalog with the current filters applied. Cooks see
// the responsibility heading and no price/vegetarian controls.
func (s *Shell) renderMenu() {
	isCook := s.sess.Snapshot().IsCook
	if isCook {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgMenuCookTitle))
	} else {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgMenuTitle))
		fmt.Fprintln(s.out, "search <text> | sort price|-price | veg true|false | open <id>")
	}

	visible := s.menu.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgMenuNoMatches))
		return
	}
	for _, p := range visible {
		fmt.Fprintf(s.out, "  [%d] %s — %s ₽\n      %s\n", p.ID, p.Name, p.Price.StringFixed(0), p.Description)
	}
}

// handleMenuCommand handles the home view commands.
func (s *Shell) handleMenuCommand(cmd string, args []string) {
	isCook := s.sess.Snapshot().IsCook
	switch cmd {
	case "search":
		s.menu.Search(strings.Join(args, " "))
	case "sort":
		if isCook {
			return
		}
		order := ""
		if len(args) > 0 {
			order = args[0]
		}
		s.menu.SortByPrice(order)
	case "veg":
		if isCook {
			return
		}
		choice := ""
		if len(args) > 0 {
			choice = args[0]
		}
		s.menu.FilterVegetarian(choice)
	default:
		s.printHelp()
		return
	}
	s.renderMenu()
}

// openDetail navigates to the detail view for one pizza.
func (s *Shell) openDetail(ctx context.Context, args []string) {
	id, ok := parseInt(args, 0)
	if !ok {
		s.printHelp()
		return
	}

	pizza, err := s.gw.GetPizza(ctx, id)
	if err != nil {
		s.pizza = nil
		s.navigate(ctx, fmt.Sprintf("/pizza/%d", id))
		return
	}
	s.pizza = &pizza
	s.navigate(ctx, fmt.Sprintf("/pizza/%d", id))
}
