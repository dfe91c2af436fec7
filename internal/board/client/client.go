// Package client is the typed record-store client for the scheduling API.
// It is a pure I/O boundary: one HTTP round trip per call, no retries, no
// caching, no local state beyond the connection pool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Employee mirrors the server's employee representation.
type Employee struct {
	ID         int64    `json:"id"`
	FullName   string   `json:"full_name"`
	Role       string   `json:"role"`
	Phone      *string  `json:"phone,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	IsActive   bool     `json:"is_active"`
}

// Shift mirrors the server's shift representation. Employee is the
// denormalized assignee; nil means the shift is open.
type Shift struct {
	ID         int64     `json:"id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Position   string    `json:"position"`
	EmployeeID *int64    `json:"employee_id"`
	Employee   *Employee `json:"employee,omitempty"`
}

// EmployeeDraft is the payload for creating an employee. FullName and Role
// are required; new employees are always created active.
type EmployeeDraft struct {
	FullName   string
	Role       string
	Phone      *string
	HourlyRate *float64
}

func (d EmployeeDraft) validate() error {
	if strings.TrimSpace(d.FullName) == "" {
		return &EmptyInputError{Field: "full_name"}
	}
	if strings.TrimSpace(d.Role) == "" {
		return &EmptyInputError{Field: "role"}
	}
	return nil
}

// ShiftDraft is the payload for creating a shift. A nil EmployeeID creates
// an open shift.
type ShiftDraft struct {
	Date       string
	StartTime  string
	EndTime    string
	Position   string
	EmployeeID *int64
}

func (d ShiftDraft) validate() error {
	for _, f := range []struct{ name, value string }{
		{"date", d.Date},
		{"start_time", d.StartTime},
		{"end_time", d.EndTime},
		{"position", d.Position},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &EmptyInputError{Field: f.name}
		}
	}
	return nil
}

// Client talks to the scheduling API over HTTP.
type Client struct {
	baseURL string
	token   string // optional bearer token
	http    *http.Client
}

// New returns a Client for the API at baseURL. token may be empty when the
// server runs without authentication.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// ListEmployees fetches the full roster.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/", nil, &out, opListEmployees); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee creates a new employee record. Required fields are checked
// before any network call.
func (c *Client) CreateEmployee(ctx context.Context, draft EmployeeDraft) (*Employee, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	body := struct {
		FullName   string   `json:"full_name"`
		Role       string   `json:"role"`
		Phone      *string  `json:"phone,omitempty"`
		HourlyRate *float64 `json:"hourly_rate,omitempty"`
		IsActive   bool     `json:"is_active"`
	}{
		FullName:   draft.FullName,
		Role:       draft.Role,
		Phone:      draft.Phone,
		HourlyRate: draft.HourlyRate,
		IsActive:   true,
	}

	var out Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees/", body, &out, opCreateEmployee); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShift creates a new shift record. Required fields are checked before
// any network call; employee_id: null means an open shift.
func (c *Client) CreateShift(ctx context.Context, draft ShiftDraft) (*Shift, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	body := struct {
		Date       string `json:"date"`
		StartTime  string `json:"start_time"`
		EndTime    string `json:"end_time"`
		Position   string `json:"position"`
		EmployeeID *int64 `json:"employee_id"`
	}{
		Date:       draft.Date,
		StartTime:  draft.StartTime,
		EndTime:    draft.EndTime,
		Position:   draft.Position,
		EmployeeID: draft.EmployeeID,
	}

	var out Shift
	if err := c.do(ctx, http.MethodPost, "/api/shifts/", body, &out, opCreateShift); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWeekSchedule fetches every shift in the week containing anyDateInWeek.
// The server owns the definition of week boundaries; the date is passed
// through unchanged.
func (c *Client) ListWeekSchedule(ctx context.Context, anyDateInWeek time.Time) ([]Shift, error) {
	path := "/api/schedule/week/?any_date_in_week=" + url.QueryEscape(anyDateInWeek.Format("2006-01-02"))
	var out []Shift
	if err := c.do(ctx, http.MethodGet, path, nil, &out, opListWeekSchedule); err != nil {
		return nil, err
	}
	return out, nil
}

// do performs one request/response cycle and classifies failures per the
// error taxonomy: network problems and detail-less responses become
// TransportError, rejected requests with structured detail become
// ValidationError.
func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		if detail := readDetail(resp.Body); detail != "" {
			return &ValidationError{Op: op, Detail: detail}
		}
	}
	return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
}

// readDetail extracts a validation message from an error body. Both the
// `{"error": ...}` envelope of this API and the `{"detail": ...}` shape used
// by other backends are accepted.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Detail
}
