// Package taskboard models the employee task view: a status partition over
// the caller's tasks plus the client-side deadline computations.
package taskboard

import (
	"context"
	"math"
	"time"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// API is the slice of the gateway client the board needs.
type API interface {
	Tasks(ctx context.Context) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error)
}

// Board holds the caller's fetched task list.
type Board struct {
	api   API
	tasks []model.Task
}

// NewBoard creates an empty board.
func NewBoard(api API) *Board {
	return &Board{api: api}
}

// Load refetches the full task list.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.api.Tasks(ctx)
	if err != nil {
		return err
	}
	b.tasks = tasks
	return nil
}

// Tasks returns the current list as fetched.
func (b *Board) Tasks() []model.Task { return b.tasks }

// Complete marks a task completed, then refetches the whole list instead of
// mutating locally. The refetch picks up any pending task the server promoted
// to in-progress as a consequence.
func (b *Board) Complete(ctx context.Context, id string) error {
	if _, err := b.api.UpdateTaskStatus(ctx, id, model.TaskCompleted); err != nil {
		return err
	}
	return b.Load(ctx)
}

// Partition is the board's three status buckets.
type Partition struct {
	Active    []model.Task // in-progress
	Pending   []model.Task
	Completed []model.Task
}

// Partition splits the fetched list by status. The filter is stable and
// non-destructive: every task lands in exactly one bucket.
func (b *Board) Partition() Partition {
	var p Partition
	for _, t := range b.tasks {
		switch t.Status {
		case model.TaskInProgress:
			p.Active = append(p.Active, t)
		case model.TaskPending:
			p.Pending = append(p.Pending, t)
		case model.TaskCompleted:
			p.Completed = append(p.Completed, t)
		}
	}
	return p
}

// DeadlineSoon reports whether a due date is in the future but less than 24
// hours away.
func DeadlineSoon(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	diff := due.Sub(now)
	return diff > 0 && diff < 24*time.Hour
}

// Overdue reports whether a due date has passed on a task that is not
// completed.
func Overdue(due *time.Time, status model.TaskStatus, now time.Time) bool {
	if due == nil || status == model.TaskCompleted {
		return false
	}
	return due.Before(now)
}

// DaysLeft is the whole-day distance to the due date as the monitoring view
// displays it: floor the signed difference, then take the absolute value.
// Overdue tasks therefore show a positive count too, matching the deployed
// behavior.
func DaysLeft(due time.Time, now time.Time) int {
	days := math.Floor(due.Sub(now).Hours() / 24)
	return int(math.Abs(days))
}

// Stats summarizes completion for the footer: completed count and its
// rounded percentage of the total.
func (b *Board) Stats() (completed, percent int) {
	for _, t := range b.tasks {
		if t.Status == model.TaskCompleted {
			completed++
		}
	}
	if len(b.tasks) > 0 {
		percent = int(math.Round(float64(completed) / float64(len(b.tasks)) * 100))
	}
	return completed, percent
}
