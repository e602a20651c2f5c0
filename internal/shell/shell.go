// Package shell is the interactive terminal front of the client: a
// single-threaded read-eval loop over the same routes the site has, with a
// breadcrumb trail and per-view commands. All backend calls run
// synchronously inside the loop, so a response can never arrive for a view
// that has already been left.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/LazyIfox/Pizza3/internal/basket"
	"github.com/LazyIfox/Pizza3/internal/domain"
	"github.com/LazyIfox/Pizza3/internal/gateway"
	"github.com/LazyIfox/Pizza3/internal/i18n"
	"github.com/LazyIfox/Pizza3/internal/menu"
	"github.com/LazyIfox/Pizza3/internal/orders"
	"github.com/LazyIfox/Pizza3/internal/session"
)

// Routes, mirroring the site's routing table.
const (
	routeHome     = "/"
	routeAuth     = "/auth"
	routeRegister = "/registr"
	routeBasket   = "/basket"
	routeOrders   = "/orders"
)

// Shell drives the views.
type Shell struct {
	gw       *gateway.Gateway
	flow     *basket.Flow
	sess     *session.Store
	cat      *i18n.Catalog
	menu     *menu.Menu
	log      *zap.Logger
	validate *validator.Validate

	in  io.Reader
	out io.Writer

	route string
	trail Trail

	// detail view state
	pizza *domain.Pizza

	// orders view state
	orderList    []domain.Order
	ordersOwner  string // identity the list was fetched for
	ordersFilter orders.Filter
}

// New wires a shell over the injected collaborators.
func New(gw *gateway.Gateway, flow *basket.Flow, sess *session.Store, cat *i18n.Catalog, m *menu.Menu, log *zap.Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		gw:       gw,
		flow:     flow,
		sess:     sess,
		cat:      cat,
		menu:     m,
		log:      log,
		validate: validator.New(),
		in:       in,
		out:      out,
	}
}

// Run executes the read-eval loop until EOF or the quit command.
func (s *Shell) Run(ctx context.Context) error {
	s.navigate(ctx, routeHome)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "%s> ", s.route)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		s.dispatch(ctx, line)
	}
}

// dispatch handles one command: global navigation first, then the current
// view's own commands.
func (s *Shell) dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "menu", "home":
		s.navigate(ctx, routeHome)
		return
	case "basket":
		s.navigate(ctx, routeBasket)
		return
	case "orders":
		s.navigate(ctx, routeOrders)
		return
	case "auth":
		s.navigate(ctx, routeAuth)
		return
	case "registr":
		s.navigate(ctx, routeRegister)
		return
	case "open":
		s.openDetail(ctx, args)
		return
	case "logout":
		s.handleLogout(ctx)
		return
	case "help":
		s.printHelp()
		return
	}

	switch s.route {
	case routeHome:
		s.handleMenuCommand(cmd, args)
	case routeAuth:
		s.handleAuthCommand(ctx, cmd, args)
	case routeRegister:
		s.handleRegisterCommand(ctx, cmd, args)
	case routeBasket:
		s.handleBasketCommand(ctx, cmd, args)
	case routeOrders:
		s.handleOrdersCommand(ctx, cmd, args)
	default:
		s.handleDetailCommand(ctx, cmd)
	}
}

// navigate switches the current route, updates the breadcrumb trail and
// renders the target view.
func (s *Shell) navigate(ctx context.Context, route string) {
	s.route = route
	s.trail.Visit(route)
	s.renderHeader()

	switch route {
	case routeHome:
		s.renderMenu()
	case routeAuth, routeRegister:
		s.renderAuth()
	case routeBasket:
		s.renderBasket(ctx)
	case routeOrders:
		// The site re-fetches the history on every mount; only filter
		// commands reuse the fetched list.
		s.ordersOwner = ""
		s.renderOrders(ctx)
	default:
		s.renderDetail()
	}
}

// renderHeader prints the layout chrome: title, identity, breadcrumbs.
func (s *Shell) renderHeader() {
	state := s.sess.Snapshot()
	fmt.Fprintf(s.out, "\n=== %s ===\n", s.cat.T(i18n.MsgShellTitle))
	if state.Authenticated() {
		fmt.Fprintln(s.out, state.UserLogin)
	}
	fmt.Fprintln(s.out, s.trail.Render(s.cat))
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "menu | basket | orders | auth | registr | open <id> | logout | quit")
}

// fail prints the localized message for a gateway error.
func (s *Shell) fail(err error, fallbackKey string) {
	s.log.Warn("operation failed", zap.Error(err))
	fmt.Fprintln(s.out, s.failText(err, fallbackKey))
}

func (s *Shell) failText(err error, fallbackKey string) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, gateway.ErrTransport):
		return s.cat.T(i18n.MsgErrTransport)
	default:
		return s.cat.T(fallbackKey)
	}
}

func parseInt(args []string, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, false
	}
	return n, true
}
