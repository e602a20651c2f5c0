package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/LazyIfox/Pizza3/internal/gateway"
	"github.com/LazyIfox/Pizza3/internal/i18n"
	"github.com/LazyIfox/Pizza3/internal/session"
)

// credentials is the validated input of the login and registration forms.
type credentials struct {
	Login    string `validate:"required,max=150"`
	Password string `validate:"required,max=128"`
}

func (s *Shell) renderAuth() {
	if s.route == routeRegister {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgCrumbRegister))
		fmt.Fprintln(s.out, "register <login> <password>")
		return
	}
	fmt.Fprintln(s.out, s.cat.T(i18n.MsgCrumbAuth))
	fmt.Fprintln(s.out, "login <login> <password>")
}

// handleAuthCommand handles the login form.
func (s *Shell) handleAuthCommand(ctx context.Context, cmd string, args []string) {
	if cmd != "login" {
		s.printHelp()
		return
	}
	creds, ok := s.readCredentials(args)
	if !ok {
		return
	}

	result, err := s.gw.Login(ctx, creds.Login, creds.Password)
	if err != nil {
		s.fail(err, i18n.MsgAuthBadCredentials)
		return
	}

	s.sess.Login(result.Username, session.RoleFlags{
		IsStaff:     result.IsStaff,
		IsSuperuser: result.IsSuperuser,
		IsCook:      result.IsCook,
	}, result.DraftOrderID)

	s.navigate(ctx, routeHome)
}

// handleRegisterCommand handles the registration form.
func (s *Shell) handleRegisterCommand(ctx context.Context, cmd string, args []string) {
	if cmd != "register" {
		s.printHelp()
		return
	}
	creds, ok := s.readCredentials(args)
	if !ok {
		return
	}

	if err := s.gw.Register(ctx, creds.Login, creds.Password); err != nil {
		if errors.Is(err, gateway.ErrConflict) {
			fmt.Fprintln(s.out, s.cat.T(i18n.MsgAuthUserExists))
			return
		}
		s.fail(err, i18n.MsgAuthUserExists)
		return
	}

	fmt.Fprintln(s.out, s.cat.T(i18n.MsgAuthRegistered))
	s.navigate(ctx, routeAuth)
}

// handleLogout ends the session. Session state is reset only after the
// backend confirmed the logout, the way the site does it.
func (s *Shell) handleLogout(ctx context.Context) {
	if !s.sess.Snapshot().Authenticated() {
		return
	}
	if err := s.gw.Logout(ctx); err != nil {
		s.fail(err, i18n.MsgErrTransport)
		return
	}
	s.sess.Logout()
	s.orderList = nil
	s.ordersOwner = ""
	s.trail.Reset()
	s.navigate(ctx, routeHome)
}

// readCredentials validates form input before anything reaches the wire.
func (s *Shell) readCredentials(args []string) (credentials, bool) {
	creds := credentials{}
	if len(args) > 0 {
		creds.Login = args[0]
	}
	if len(args) > 1 {
		creds.Password = args[1]
	}
	if err := s.validate.Struct(creds); err != nil {
		fmt.Fprintln(s.out, s.cat.T(i18n.MsgAuthInvalidInput))
		return credentials{}, false
	}
	return creds, true
}
