package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

type stubScheduleService struct {
	weekFn func(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error)
}

func (s *stubScheduleService) Week(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error) {
	return s.weekFn(ctx, anyDateInWeek)
}

func TestScheduleHandler_Week_PassesAnchor(t *testing.T) {
	e := newTestEcho()
	stub := &stubScheduleService{
		weekFn: func(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error) {
			if got := anyDateInWeek.Format("2006-01-02"); got != "2024-01-03" {
				t.Fatalf("anchor = %s", got)
			}
			return []domain.Shift{{ID: 1, Date: "2024-01-02", StartTime: "09:00", EndTime: "17:00", Position: "Cashier"}}, nil
		},
	}
	h := NewScheduleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/week/?any_date_in_week=2024-01-03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Week(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestScheduleHandler_Week_EmptyWeekRendersEmptyArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubScheduleService{
		weekFn: func(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error) {
			return []domain.Shift{}, nil
		},
	}
	h := NewScheduleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/week/?any_date_in_week=2024-01-03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Week(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var shifts []domain.Shift
	if err := json.Unmarshal(rec.Body.Bytes(), &shifts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(shifts) != 0 {
		t.Fatalf("expected empty array, got %d shifts", len(shifts))
	}
}

func TestScheduleHandler_Week_BadDate(t *testing.T) {
	e := newTestEcho()
	h := NewScheduleHandler(&stubScheduleService{
		weekFn: func(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/week/?any_date_in_week=03-01-2024", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Week(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestScheduleHandler_Week_DefaultsToCurrentWeek(t *testing.T) {
	e := newTestEcho()
	var got time.Time
	stub := &stubScheduleService{
		weekFn: func(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error) {
			got = anyDateInWeek
			return nil, nil
		},
	}
	h := NewScheduleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/week/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Week(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if time.Since(got) > time.Minute {
		t.Fatalf("anchor should default to now, got %v", got)
	}
}
