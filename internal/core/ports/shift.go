package ports

import (
	"context"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// CreateShiftInput carries the data needed to create a shift.
// A nil EmployeeID creates an open (unassigned) shift.
type CreateShiftInput struct {
	Date       string // "YYYY-MM-DD"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Position   string
	EmployeeID *int64
}

// ShiftFilter carries the query parameters for listing shifts.
// Zero values mean "no constraint".
type ShiftFilter struct {
	StartDate  string // inclusive lower bound on date
	EndDate    string // inclusive upper bound on date
	EmployeeID *int64
}

// ShiftRepository defines persistence operations for shifts.
type ShiftRepository interface {
	Insert(ctx context.Context, s *domain.Shift) error
	// List returns shifts matching the filter, ordered by date then start
	// time. Embedded employees are NOT populated; that is service concern.
	List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error)
}

// ShiftService defines use-case operations for shifts.
type ShiftService interface {
	// Create validates that a referenced employee exists and is active
	// before inserting. The returned shift has Employee populated when
	// assigned.
	Create(ctx context.Context, input CreateShiftInput) (*domain.Shift, error)
	// List returns shifts with embedded employees resolved.
	List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error)
}
