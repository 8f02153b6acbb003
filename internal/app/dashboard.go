package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rajputritesh1907/attendanceFrontend/internal/api"
	"github.com/rajputritesh1907/attendanceFrontend/internal/attendance"
	"github.com/rajputritesh1907/attendanceFrontend/internal/guard"
	"github.com/rajputritesh1907/attendanceFrontend/internal/taskboard"
	"github.com/rajputritesh1907/attendanceFrontend/internal/ui"
)

// dashboardView is the employee workspace: the attendance widget on one side,
// the task board on the other.
func (a *App) dashboardView(ctx context.Context) (guard.Route, bool) {
	identity := a.store.Current()

	widget := attendance.NewWidget(a.client)
	board := taskboard.NewBoard(a.client)

	if err := widget.Load(ctx); err != nil {
		a.notify.Error(api.Message(err, "Failed to load status"))
	}
	if err := board.Load(ctx); err != nil {
		a.notify.Error(api.Message(err, "Failed to load tasks"))
	}

	clock := ui.NewClock(time.Second, func(t time.Time) {
		fmt.Fprintf(a.out, "\r  %s ", t.Format("Mon, 02 Jan 2006 15:04:05"))
	})
	defer clock.Stop()

	for {
		fmt.Fprintf(a.out, "\n== Work Workspace — %s ==\n", identity.Name)
		a.renderAttendance(widget)
		a.renderTasks(board)

		choice := a.prompt.Line("\n[i]check in [o]end shift [c]omplete task [r]efresh [h]istory [q]sign out [x]exit")
		switch choice {
		case "i":
			if widget.State() != attendance.StateNotCheckedIn {
				continue
			}
			if err := widget.CheckIn(ctx); err != nil {
				a.notify.Error(api.Message(err, "Check-in failed"))
				continue
			}
			a.notify.Success("Successfully checked in!")
		case "o":
			if widget.State() != attendance.StateCheckedIn {
				continue
			}
			err := widget.CheckOut(ctx, func() bool {
				return a.prompt.Confirm("End Work Shift?", "This will record your check-out time.")
			})
			if err != nil {
				a.notify.Error(api.Message(err, "Check-out failed"))
				continue
			}
			if widget.State() == attendance.StateCheckedOut {
				a.notify.Success("Shift completed. Checked out.")
			}
		case "c":
			a.completeTask(ctx, board)
		case "r":
			if err := board.Load(ctx); err != nil {
				a.notify.Error(api.Message(err, "Failed to load tasks"))
			}
		case "h":
			a.renderHistory(ctx)
		case "q":
			if a.signOut("End Session?", "Sign out from your workspace?") {
				return guard.RouteLogin, false
			}
		case "x":
			return guard.RouteDashboard, true
		}
	}
}

func (a *App) renderAttendance(widget *attendance.Widget) {
	fmt.Fprintf(a.out, "\nAttendance\n")
	switch widget.State() {
	case attendance.StateLoading:
		fmt.Fprintf(a.out, "  (loading)\n")
	case attendance.StateNotCheckedIn:
		fmt.Fprintf(a.out, "  You haven't checked in for today yet.\n")
	case attendance.StateCheckedIn:
		fmt.Fprintf(a.out, "  Status: on duty since %s\n", widget.Record().CheckIn.Format("15:04:05"))
	case attendance.StateCheckedOut:
		rec := widget.Record()
		fmt.Fprintf(a.out, "  Shift ended: %s – %s. See you tomorrow.\n",
			rec.CheckIn.Format("15:04"), rec.CheckOut.Format("15:04"))
	}
}

func (a *App) renderTasks(board *taskboard.Board) {
	now := time.Now()
	p := board.Partition()

	fmt.Fprintf(a.out, "\nCurrently Active\n")
	if len(p.Active) == 0 {
		fmt.Fprintf(a.out, "  No tasks active. You're all caught up!\n")
	}
	for i, t := range p.Active {
		flag := ""
		if taskboard.DeadlineSoon(t.DueDate, now) {
			flag = " [DEADLINE APPROACHING]"
		}
		if taskboard.Overdue(t.DueDate, t.Status, now) {
			flag = " [OVERDUE]"
		}
		fmt.Fprintf(a.out, "  %d. %s%s\n     %s\n", i+1, t.Title, flag, t.Description)
		if t.DueDate != nil {
			fmt.Fprintf(a.out, "     Due: %s\n", t.DueDate.Format("Mon, 02 Jan 2006 15:04"))
		}
	}

	if len(p.Pending) > 0 {
		fmt.Fprintf(a.out, "\nTask Queue (Pending)\n")
		for _, t := range p.Pending {
			line := "  - " + t.Title
			if t.DueDate != nil {
				line += "  EST: " + t.DueDate.Format("02 Jan 2006")
			}
			fmt.Fprintln(a.out, line)
		}
	}

	if completed, percent := board.Stats(); completed > 0 {
		fmt.Fprintf(a.out, "\nSuccess: %d tasks completed (%d%%)\n", completed, percent)
	}
}

// completeTask asks which active task to finish and refetches the list on
// success, letting the server promote any queued pending task.
func (a *App) completeTask(ctx context.Context, board *taskboard.Board) {
	p := board.Partition()
	if len(p.Active) == 0 {
		a.notify.Info("No active task to complete")
		return
	}
	n, err := strconv.Atoi(a.prompt.Line("Task number"))
	if err != nil || n < 1 || n > len(p.Active) {
		a.notify.Error("Invalid task number")
		return
	}
	if err := board.Complete(ctx, p.Active[n-1].ID); err != nil {
		a.notify.Error(api.Message(err, "Action failed"))
		return
	}
	a.notify.Success("Task marked as completed!")
}

func (a *App) renderHistory(ctx context.Context) {
	recs, err := a.client.AttendanceHistory(ctx)
	if err != nil {
		a.notify.Error(api.Message(err, "Failed to load history"))
		return
	}
	fmt.Fprintf(a.out, "\nAttendance History\n")
	if len(recs) == 0 {
		fmt.Fprintf(a.out, "  No records yet.\n")
		return
	}
	for _, rec := range recs {
		out := "—"
		if rec.CheckOut != nil {
			out = rec.CheckOut.Format("15:04")
		}
		fmt.Fprintf(a.out, "  %s  in %s  out %s\n", rec.Date, rec.CheckIn.Format("15:04"), out)
	}
}
