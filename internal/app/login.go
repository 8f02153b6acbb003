package app

import (
	"context"
	"fmt"

	"github.com/rajputritesh1907/attendanceFrontend/internal/api"
	"github.com/rajputritesh1907/attendanceFrontend/internal/guard"
)

// loginView collects credentials and delegates to the session store. The
// post-login redirect branches on role: admins land on the console, everyone
// else on the dashboard.
func (a *App) loginView(ctx context.Context) (guard.Route, bool) {
	for {
		fmt.Fprintf(a.out, "\n== Sign In ==\n")
		email := a.prompt.Line("Email")
		if email == "" {
			if a.prompt.Confirm("Exit?", "Leave the dashboard?") {
				return guard.RouteLogin, true
			}
			continue
		}
		password := a.prompt.Password("Password")

		identity, err := a.store.Login(ctx, email, password)
		if err != nil {
			a.notify.Error(api.Message(err, "Login failed"))
			continue
		}
		a.notify.Success(fmt.Sprintf("Welcome back, %s", identity.Name))
		return guard.PostLogin(identity.Role), false
	}
}
