package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestListEmployees_DecodesRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/employees/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"full_name":"Ada Lovelace","role":"Barista","is_active":true}]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL, "").ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(got) != 1 || got[0].FullName != "Ada Lovelace" {
		t.Fatalf("unexpected roster: %+v", got)
	}
}

func TestCreateEmployee_SendsActiveRecordWithToken(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"full_name":"Ada Lovelace","role":"Barista","is_active":true}`))
	}))
	defer srv.Close()

	created, err := New(srv.URL, "tok-123").CreateEmployee(context.Background(), EmployeeDraft{
		FullName: "Ada Lovelace",
		Role:     "Barista",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("id = %d, want 7", created.ID)
	}
	if captured["is_active"] != true {
		t.Fatalf("new employees must be sent active, body: %v", captured)
	}
}

func TestCreateEmployee_MissingFieldNeverHitsServer(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").CreateEmployee(context.Background(), EmployeeDraft{Role: "Barista"})

	var empty *EmptyInputError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyInputError, got %v", err)
	}
	if empty.Field != "full_name" {
		t.Fatalf("field = %s, want full_name", empty.Field)
	}
	if got := empty.Error(); got != "full_name is required" {
		t.Fatalf("message = %q", got)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("server was hit %d times, want 0", hits)
	}
}

func TestCreateShift_MissingFieldsReportedInOrder(t *testing.T) {
	cases := []struct {
		draft ShiftDraft
		field string
	}{
		{ShiftDraft{}, "date"},
		{ShiftDraft{Date: "2024-01-02"}, "start_time"},
		{ShiftDraft{Date: "2024-01-02", StartTime: "09:00"}, "end_time"},
		{ShiftDraft{Date: "2024-01-02", StartTime: "09:00", EndTime: "17:00"}, "position"},
	}
	c := New("http://127.0.0.1:1", "")
	for _, tc := range cases {
		_, err := c.CreateShift(context.Background(), tc.draft)
		var empty *EmptyInputError
		if !errors.As(err, &empty) || empty.Field != tc.field {
			t.Fatalf("draft %+v: got %v, want EmptyInputError for %s", tc.draft, err, tc.field)
		}
	}
}

func TestCreateShift_NilEmployeeSerializesAsNull(t *testing.T) {
	var rawBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&rawBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"date":"2024-01-02","start_time":"09:00","end_time":"17:00","position":"Cashier","employee_id":null}`))
	}))
	defer srv.Close()

	created, err := New(srv.URL, "").CreateShift(context.Background(), ShiftDraft{
		Date:      "2024-01-02",
		StartTime: "09:00",
		EndTime:   "17:00",
		Position:  "Cashier",
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}
	if created.EmployeeID != nil {
		t.Fatalf("expected an open shift")
	}
	if string(rawBody["employee_id"]) != "null" {
		t.Fatalf("employee_id on the wire = %s, want null", rawBody["employee_id"])
	}
}

func TestListWeekSchedule_PassesAnchorDateThrough(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/schedule/week/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		query = r.URL.Query().Get("any_date_in_week")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	anchor := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)
	got, err := New(srv.URL, "").ListWeekSchedule(context.Background(), anchor)
	if err != nil {
		t.Fatalf("ListWeekSchedule returned error: %v", err)
	}
	if query != "2024-01-03" {
		t.Fatalf("any_date_in_week = %q, want the anchor's date only", query)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty week, got %d shifts", len(got))
	}
}

func TestDo_RejectionWithDetailBecomesValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"employee 99 is inactive"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").CreateShift(context.Background(), ShiftDraft{
		Date: "2024-01-02", StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Error() != "employee 99 is inactive" {
		t.Fatalf("detail not surfaced verbatim: %q", verr.Error())
	}
}

func TestDo_DetailEnvelopeAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"full_name must not be empty"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").CreateEmployee(context.Background(), EmployeeDraft{
		FullName: "Ada", Role: "Barista",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Detail != "full_name must not be empty" {
		t.Fatalf("expected ValidationError with detail, got %v", err)
	}
}

func TestDo_DetaillessRejectionIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not json", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").ListEmployees(context.Background())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.Error() != "could not load employees" {
		t.Fatalf("message = %q, want the fixed operation message", terr.Error())
	}
}

func TestDo_ServerFailureUsesFixedMessagePerOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "")

	_, err := c.CreateShift(context.Background(), ShiftDraft{
		Date: "2024-01-02", StartTime: "09:00", EndTime: "17:00", Position: "Cashier",
	})
	if err == nil || err.Error() != "could not create shift" {
		t.Fatalf("CreateShift message = %v", err)
	}

	_, err = c.ListWeekSchedule(context.Background(), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	if err == nil || err.Error() != "could not load week schedule" {
		t.Fatalf("ListWeekSchedule message = %v", err)
	}
}

func TestDo_NetworkFailureKeepsCauseForLogs(t *testing.T) {
	c := New("http://127.0.0.1:1", "")

	_, err := c.ListEmployees(context.Background())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.Error() != "could not load employees" {
		t.Fatalf("operator message = %q", terr.Error())
	}
	if errors.Unwrap(terr) == nil {
		t.Fatalf("underlying cause must be preserved")
	}
}
