package ports

import (
	"context"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// CreateEmployeeInput carries the data needed to create an employee.
// A nil IsActive means active, the creation default.
type CreateEmployeeInput struct {
	FullName   string
	Role       string
	Phone      *string
	HourlyRate *float64
	IsActive   *bool
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	Insert(ctx context.Context, e *domain.Employee) error
	// FindByID returns domain.ErrEmployeeNotFound when no employee matches.
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	// List returns employees ordered by full name. When onlyActive is true,
	// inactive employees are filtered out.
	List(ctx context.Context, onlyActive bool) ([]domain.Employee, error)
	// FindByIDs returns the matching employees keyed by id. Missing ids are
	// simply absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Employee, error)
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
}
