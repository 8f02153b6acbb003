// Package attendance models the check-in/check-out widget. The lifecycle is
// strictly forward within a day: not-checked-in -> checked-in -> checked-out.
package attendance

import (
	"context"
	"errors"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// State is the widget's rendered state.
type State string

const (
	StateLoading      State = "loading"
	StateNotCheckedIn State = "not-checked-in"
	StateCheckedIn    State = "checked-in"
	StateCheckedOut   State = "checked-out"
)

// ErrNotAvailable is returned when an action is requested from a state it is
// unreachable from. The views never render the action in those states, so
// hitting this is a no-op rather than a user-visible failure.
var ErrNotAvailable = errors.New("attendance: action not available in current state")

// API is the slice of the gateway client the widget needs.
type API interface {
	TodayAttendance(ctx context.Context) (*model.AttendanceRecord, error)
	CheckIn(ctx context.Context) (*model.AttendanceRecord, error)
	CheckOut(ctx context.Context) (*model.AttendanceRecord, error)
}

// Widget holds today's record and the derived state for one user.
type Widget struct {
	api    API
	state  State
	record *model.AttendanceRecord
}

// NewWidget creates a widget in the loading state.
func NewWidget(api API) *Widget {
	return &Widget{api: api, state: StateLoading}
}

// Derive maps today's fetched record onto a widget state. It is a pure
// function: absent record means not checked in, a record without a check-out
// means on duty, a closed record means the day is done.
func Derive(rec *model.AttendanceRecord) State {
	switch {
	case rec == nil:
		return StateNotCheckedIn
	case rec.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCheckedOut
	}
}

// Load fetches today's record and resolves the widget state. On failure the
// widget stays in loading and the error is surfaced once to the caller.
func (w *Widget) Load(ctx context.Context) error {
	rec, err := w.api.TodayAttendance(ctx)
	if err != nil {
		return err
	}
	w.record = rec
	w.state = Derive(rec)
	return nil
}

// CheckIn issues the check-in call. Valid only from not-checked-in; on
// failure the widget remains there.
func (w *Widget) CheckIn(ctx context.Context) error {
	if w.state != StateNotCheckedIn {
		return ErrNotAvailable
	}
	rec, err := w.api.CheckIn(ctx)
	if err != nil {
		return err
	}
	w.record = rec
	w.state = StateCheckedIn
	return nil
}

// CheckOut issues the check-out call after the confirm hook approves it.
// Valid only from checked-in; a declined confirmation changes nothing.
// Reaching checked-out is terminal until the next day's fetch.
func (w *Widget) CheckOut(ctx context.Context, confirm func() bool) error {
	if w.state != StateCheckedIn {
		return ErrNotAvailable
	}
	if confirm != nil && !confirm() {
		return nil
	}
	rec, err := w.api.CheckOut(ctx)
	if err != nil {
		return err
	}
	w.record = rec
	w.state = StateCheckedOut
	return nil
}

// State returns the current widget state.
func (w *Widget) State() State { return w.state }

// Record returns today's record, nil before check-in.
func (w *Widget) Record() *model.AttendanceRecord { return w.record }
