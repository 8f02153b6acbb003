package api

import (
	"context"
	"net/http"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// CheckIn opens today's attendance record.
func (c *Client) CheckIn(ctx context.Context) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := c.do(ctx, http.MethodPost, "/attendance/check-in", nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckOut closes today's attendance record.
func (c *Client) CheckOut(ctx context.Context) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := c.do(ctx, http.MethodPost, "/attendance/check-out", nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// TodayAttendance fetches today's record. It returns (nil, nil) when the
// caller has not checked in yet; the backend answers those with an empty body.
func (c *Client) TodayAttendance(ctx context.Context) (*model.AttendanceRecord, error) {
	var rec *model.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance/today", nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AttendanceHistory returns the caller's past records, most recent first.
func (c *Client) AttendanceHistory(ctx context.Context) ([]model.AttendanceRecord, error) {
	var recs []model.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance/history", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
