// Package app wires the session store, gateway client, and guards into the
// interactive terminal dashboard. Navigation always goes through the guard
// layer; views never decide routing on their own.
package app

import (
	"context"
	"io"

	"github.com/rajputritesh1907/attendanceFrontend/internal/api"
	"github.com/rajputritesh1907/attendanceFrontend/internal/config"
	"github.com/rajputritesh1907/attendanceFrontend/internal/guard"
	"github.com/rajputritesh1907/attendanceFrontend/internal/session"
	"github.com/rajputritesh1907/attendanceFrontend/internal/ui"
)

// App is the terminal dashboard application.
type App struct {
	store  *session.Store
	client *api.Client
	prompt *ui.Prompter
	notify *ui.Notifier
	out    io.Writer
}

// New wires an application from config and IO streams. The store and client
// reference each other (the store delegates auth calls, the client reads the
// bearer token), so the auth side is bound after construction.
func New(cfg *config.Dashboard, in io.Reader, out io.Writer) *App {
	store := session.New(cfg.StateDir, nil)
	client := api.New(cfg.APIBaseURL, store)
	store.SetAuth(client)

	return &App{
		store:  store,
		client: client,
		prompt: ui.NewPrompter(in, out),
		notify: ui.NewNotifier(out),
		out:    out,
	}
}

// Run restores the session once, then loops between the login view, the
// employee dashboard, and the admin console until the user exits.
func (a *App) Run(ctx context.Context) error {
	a.store.Restore()

	route := guard.Home(a.store.Current())
	for {
		var quit bool
		switch route {
		case guard.RouteLogin:
			route, quit = a.loginView(ctx)
		case guard.RouteDashboard:
			switch guard.Authenticated(a.store.Current(), a.store.Loading()) {
			case guard.RedirectLogin:
				route = guard.RouteLogin
				continue
			}
			route, quit = a.dashboardView(ctx)
		case guard.RouteAdmin:
			switch guard.AdminOnly(a.store.Current(), a.store.Loading()) {
			case guard.RedirectDashboard:
				route = guard.RouteDashboard
				continue
			}
			route, quit = a.adminView(ctx)
		}
		if quit {
			return nil
		}
	}
}

// signOut asks for confirmation and clears the session. Returns true when
// the user confirmed.
func (a *App) signOut(title, message string) bool {
	if !a.prompt.Confirm(title, message) {
		return false
	}
	a.store.Logout()
	a.notify.Info("Signed out")
	return true
}
