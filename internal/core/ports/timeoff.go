package ports

import (
	"context"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// CreateTimeOffInput carries the data needed to file a time-off request.
type CreateTimeOffInput struct {
	EmployeeID int64
	Date       string // "YYYY-MM-DD"
	Reason     *string
}

// TimeOffRepository defines persistence operations for time-off requests.
type TimeOffRepository interface {
	Insert(ctx context.Context, r *domain.TimeOffRequest) error
	// FindByID returns domain.ErrTimeOffNotFound when no request matches.
	FindByID(ctx context.Context, id int64) (*domain.TimeOffRequest, error)
	// List returns requests ordered by date. An empty status means all.
	List(ctx context.Context, status domain.TimeOffStatus) ([]domain.TimeOffRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TimeOffStatus) error
}

// TimeOffService defines the time-off request workflow.
type TimeOffService interface {
	Create(ctx context.Context, input CreateTimeOffInput) (*domain.TimeOffRequest, error)
	List(ctx context.Context, status domain.TimeOffStatus) ([]domain.TimeOffRequest, error)
	Approve(ctx context.Context, id int64) (*domain.TimeOffRequest, error)
	Reject(ctx context.Context, id int64) (*domain.TimeOffRequest, error)
}
