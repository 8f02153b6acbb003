package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rajputritesh1907/attendanceFrontend/internal/admin"
	"github.com/rajputritesh1907/attendanceFrontend/internal/api"
	"github.com/rajputritesh1907/attendanceFrontend/internal/guard"
	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
	"github.com/rajputritesh1907/attendanceFrontend/internal/taskboard"
)

const dueDateLayout = "2006-01-02 15:04"

// adminView is the command center: personnel, task deployment, and the task
// monitor as three client-side tabs over the console's lists.
func (a *App) adminView(ctx context.Context) (guard.Route, bool) {
	identity := a.store.Current()
	console := admin.New(a.client, identity)

	if err := console.Load(ctx); err != nil {
		a.notify.Error("Failed to sync data")
	}

	for {
		m := console.Metrics()
		fmt.Fprintf(a.out, "\n== Command Center — %s ==\n", identity.Name)
		fmt.Fprintf(a.out, "  Personnel: %d  Operations: %d  Success rate: %d%%\n", m.Personnel, m.Operations, m.SuccessRate)

		choice := a.prompt.Line("[p]ersonnel [t]ask deploy [m]onitoring [q]sign out [x]exit")
		switch choice {
		case "p":
			a.personnelTab(ctx, console, identity)
		case "t":
			a.deployTab(ctx, console)
		case "m":
			// selecting the monitor refetches, matching the web console
			if err := console.RefreshTasks(ctx); err != nil {
				a.notify.Error(api.Message(err, "Failed to update tasks"))
			}
			a.monitorTab(ctx, console)
		case "q":
			if a.signOut("Terminate Session?", "Exit the command center?") {
				return guard.RouteLogin, false
			}
		case "x":
			return guard.RouteAdmin, true
		}
	}
}

func (a *App) personnelTab(ctx context.Context, console *admin.Console, self *model.Identity) {
	for {
		users := console.Users()
		fmt.Fprintf(a.out, "\nPersonnel Registry\n")
		for i, u := range users {
			marker := ""
			if u.ID == self.ID {
				marker = "  (self)"
			}
			fmt.Fprintf(a.out, "  %d. %-24s %-28s %s%s\n", i+1, u.Name, u.Email, u.Role, marker)
		}

		switch a.prompt.Line("[a]dd member [d]elete member [b]ack") {
		case "a":
			form := admin.UserForm{
				Name:     a.prompt.Line("Name"),
				Email:    a.prompt.Line("Email"),
				Password: a.prompt.Line("Password"),
				Role:     model.RoleUser,
			}
			if err := console.AddUser(ctx, form); err != nil {
				a.notify.Error(api.Message(err, "Failed to add user"))
				continue
			}
			a.notify.Success("Member added successfully")
		case "d":
			n, err := strconv.Atoi(a.prompt.Line("Member number"))
			if err != nil || n < 1 || n > len(users) {
				a.notify.Error("Invalid member number")
				continue
			}
			err = console.RemoveUser(ctx, users[n-1].ID, func() bool {
				return a.prompt.Confirm("Terminate Access?", "Permanently remove this member? This cannot be undone.")
			})
			switch {
			case errors.Is(err, admin.ErrSelfDelete):
				a.notify.Error("You cannot remove your own account")
			case err != nil:
				a.notify.Error(api.Message(err, "System error during termination"))
			default:
				a.notify.Success("Personnel removed")
			}
		case "b":
			return
		}
	}
}

// deployTab collects the assignment form. On a server rejection the entered
// values are kept so the admin can correct a single field and resubmit.
func (a *App) deployTab(ctx context.Context, console *admin.Console) {
	assignable := console.Assignable()
	if len(assignable) == 0 {
		a.notify.Info("No assignable personnel; add members first")
		return
	}

	fmt.Fprintf(a.out, "\nObjective Deployment\n")
	for i, u := range assignable {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, u.Name)
	}

	var form admin.TaskForm
	for {
		if form.UserID == "" {
			n, err := strconv.Atoi(a.prompt.Line("Assign to (number)"))
			if err != nil || n < 1 || n > len(assignable) {
				a.notify.Error("Invalid selection")
				return
			}
			form.UserID = assignable[n-1].ID
		}
		if form.Title == "" {
			form.Title = a.prompt.Line("Title")
		}
		if form.Description == "" {
			form.Description = a.prompt.Line("Description")
		}
		if form.DueDate.IsZero() {
			due, err := time.ParseInLocation(dueDateLayout, a.prompt.Line("Due date (YYYY-MM-DD HH:MM)"), time.Local)
			if err != nil {
				a.notify.Error("Invalid due date")
				return
			}
			form.DueDate = due
		}

		if err := console.Assign(ctx, form); err != nil {
			a.notify.Error(api.Message(err, "Deployment failed"))
			if a.prompt.Confirm("Edit due date?", "Keep the form and change the due date?") {
				form.DueDate = time.Time{}
				continue
			}
			return
		}
		a.notify.Success("Objective deployed")
		return
	}
}

func (a *App) monitorTab(ctx context.Context, console *admin.Console) {
	for {
		tasks := console.Tasks()
		now := time.Now()
		fmt.Fprintf(a.out, "\nOperational Monitor\n")
		if len(tasks) == 0 {
			fmt.Fprintf(a.out, "  No active operations found.\n")
		}
		for i, t := range tasks {
			assignee := "Unknown"
			if t.User != nil {
				assignee = t.User.Name
			}
			line := fmt.Sprintf("  %d. [%s] %s — %s", i+1, t.Status, t.Title, assignee)
			if t.DueDate != nil {
				line += fmt.Sprintf("  due %s (%d days left)", t.DueDate.Format("02 Jan 15:04"), taskboard.DaysLeft(*t.DueDate, now))
			}
			fmt.Fprintln(a.out, line)
		}

		switch a.prompt.Line("[d]elete task [r]efresh [b]ack") {
		case "d":
			n, err := strconv.Atoi(a.prompt.Line("Task number"))
			if err != nil || n < 1 || n > len(tasks) {
				a.notify.Error("Invalid task number")
				continue
			}
			err = console.RemoveTask(ctx, tasks[n-1].ID, func() bool {
				return a.prompt.Confirm("Cancel Objective?", "Permanently cancel this objective?")
			})
			if err != nil {
				a.notify.Error(api.Message(err, "Failed to remove task"))
				continue
			}
			a.notify.Success("Objective cancelled")
		case "r":
			if err := console.RefreshTasks(ctx); err != nil {
				a.notify.Error(api.Message(err, "Failed to update tasks"))
			}
		case "b":
			return
		}
	}
}
