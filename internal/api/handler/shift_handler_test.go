package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type stubShiftService struct {
	createFn func(ctx context.Context, input ports.CreateShiftInput) (*domain.Shift, error)
	listFn   func(ctx context.Context, filter ports.ShiftFilter) ([]domain.Shift, error)
}

func (s *stubShiftService) Create(ctx context.Context, input ports.CreateShiftInput) (*domain.Shift, error) {
	return s.createFn(ctx, input)
}

func (s *stubShiftService) List(ctx context.Context, filter ports.ShiftFilter) ([]domain.Shift, error) {
	return s.listFn(ctx, filter)
}

func TestShiftHandler_Create_OpenShift(t *testing.T) {
	e := newTestEcho()
	audit := &stubAudit{}
	stub := &stubShiftService{
		createFn: func(ctx context.Context, input ports.CreateShiftInput) (*domain.Shift, error) {
			if input.EmployeeID != nil {
				t.Fatalf("expected open shift, got employee %d", *input.EmployeeID)
			}
			return &domain.Shift{ID: 3, Date: input.Date, StartTime: input.StartTime, EndTime: input.EndTime, Position: input.Position}, nil
		},
	}
	h := NewShiftHandler(stub, audit)

	body := strings.NewReader(`{"date":"2024-01-02","start_time":"09:00","end_time":"17:00","position":"Cashier"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/shifts/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	event := audit.last(t)
	if event.Entity != "shift" || event.EntityID != 3 {
		t.Fatalf("unexpected audit event: %+v", event)
	}
}

func TestShiftHandler_Create_BadDateFormat(t *testing.T) {
	e := newTestEcho()
	stub := &stubShiftService{
		createFn: func(ctx context.Context, input ports.CreateShiftInput) (*domain.Shift, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewShiftHandler(stub, &stubAudit{})

	body := strings.NewReader(`{"date":"02/01/2024","start_time":"09:00","end_time":"17:00","position":"Cashier"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/shifts/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "date must be in YYYY-MM-DD format") {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestShiftHandler_Create_InactiveEmployeePropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubShiftService{
		createFn: func(ctx context.Context, input ports.CreateShiftInput) (*domain.Shift, error) {
			return nil, domain.ErrEmployeeInactive
		},
	}
	h := NewShiftHandler(stub, &stubAudit{})

	body := strings.NewReader(`{"date":"2024-01-02","start_time":"09:00","end_time":"17:00","position":"Cashier","employee_id":9}`)
	req := httptest.NewRequest(http.MethodPost, "/api/shifts/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors pass through to the central error handler.
	if err := h.Create(c); !errors.Is(err, domain.ErrEmployeeInactive) {
		t.Fatalf("expected ErrEmployeeInactive, got %v", err)
	}
}

func TestShiftHandler_List_ParsesFilter(t *testing.T) {
	e := newTestEcho()
	stub := &stubShiftService{
		listFn: func(ctx context.Context, filter ports.ShiftFilter) ([]domain.Shift, error) {
			if filter.StartDate != "2024-01-01" || filter.EndDate != "2024-01-07" {
				t.Fatalf("date bounds not passed: %+v", filter)
			}
			if filter.EmployeeID == nil || *filter.EmployeeID != 5 {
				t.Fatalf("employee filter not passed: %+v", filter)
			}
			return nil, nil
		},
	}
	h := NewShiftHandler(stub, &stubAudit{})

	req := httptest.NewRequest(http.MethodGet, "/api/shifts/?start_date=2024-01-01&end_date=2024-01-07&employee_id=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestShiftHandler_List_InvalidEmployeeID(t *testing.T) {
	e := newTestEcho()
	h := NewShiftHandler(&stubShiftService{}, &stubAudit{})

	req := httptest.NewRequest(http.MethodGet, "/api/shifts/?employee_id=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
