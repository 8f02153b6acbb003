package mockapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

func (s *Server) handleCheckIn(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	today := time.Now().Format(dateLayout)
	if _, exists := s.store.AttendanceFor(user.ID, today); exists {
		return echo.NewHTTPError(http.StatusBadRequest, "Already checked in for today")
	}
	rec := s.store.CreateAttendance(user.ID, today, time.Now())
	return c.JSON(http.StatusCreated, rec)
}

func (s *Server) handleCheckOut(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	today := time.Now().Format(dateLayout)
	rec, closed := s.store.CloseAttendance(user.ID, today, time.Now())
	if rec == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "You have not checked in today")
	}
	if !closed {
		return echo.NewHTTPError(http.StatusBadRequest, "Already checked out for today")
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleToday(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	rec, ok := s.store.AttendanceFor(user.ID, time.Now().Format(dateLayout))
	if !ok {
		// the real backend answers "no record yet" with a null body
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleHistory(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.AttendanceHistory(user.ID))
}
