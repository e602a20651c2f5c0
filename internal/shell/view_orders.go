package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LazyIfox/Pizza3/internal/i18n"
	"github.com/LazyIfox/Pizza3/internal/orders"
)

const dateLayout = "02.01.2006"

// renderOrders shows the order history with the current filter applied. The
// list is fetched anew on every visit, so a just-placed order shows up;
// filter changes only re-derive the visible subset.
func (s *Shell) renderOrders(ctx context.Context) {
	fmt.Fprintln(s.out, s.cat.T(i18n.MsgOrdersTitle))

	state := s.sess.Snapshot()
	if !state.Authenticated() {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgOrdersUnauthed))
		return
	}

	if s.ordersOwner != state.UserLogin {
		list, err := s.gw.UserOrders(ctx)
		if err != nil {
			s.fail(err, i18n.MsgOrdersNoMatches)
			return
		}
		s.orderList = list
		s.ordersOwner = state.UserLogin
	}

	fmt.Fprintf(s.out, "status <%s> | created dd.mm.yyyy | completed dd.mm.yyyy | reset\n",
		strings.Join(s.cat.StatusLabels(), "|"))

	visible := orders.Apply(s.orderList, s.ordersFilter, s.cat)
	if len(visible) == 0 {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgOrdersNoMatches))
		return
	}
	for _, o := range visible {
		completed := s.cat.T(i18n.MsgOrdersNotCompleted)
		if o.CompletionDatetime != nil {
			completed = o.CompletionDatetime.Local().Format(timeLayout)
		}
		fmt.Fprintf(s.out, "  №%d  %s  %s  %s\n",
			o.ID,
			o.CreationDatetime.Local().Format(timeLayout),
			s.cat.StatusLabel(o.Status),
			completed)
	}
}

// handleOrdersCommand mutates the filter and re-renders; the fetched list is
// untouched.
func (s *Shell) handleOrdersCommand(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "status":
		s.ordersFilter.StatusLabel = strings.Join(args, " ")
	case "created":
		d, ok := parseDate(args)
		if !ok {
			s.printHelp()
			return
		}
		s.ordersFilter.CreatedOn = d
	case "completed":
		d, ok := parseDate(args)
		if !ok {
			s.printHelp()
			return
		}
		s.ordersFilter.CompletedOn = d
	case "reset":
		s.ordersFilter = orders.Filter{}
	default:
		s.printHelp()
		return
	}
	s.renderOrders(ctx)
}

// parseDate reads a dd.mm.yyyy argument; no argument clears the predicate.
func parseDate(args []string) (time.Time, bool) {
	if len(args) == 0 {
		return time.Time{}, true
	}
	d, err := time.ParseInLocation(dateLayout, args[0], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
