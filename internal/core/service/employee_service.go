package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// Create inserts a new employee. New employees are active unless the input
// explicitly says otherwise; there is no later deactivation operation on
// this surface.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	employee := &domain.Employee{
		FullName:   input.FullName,
		Role:       input.Role,
		Phone:      input.Phone,
		HourlyRate: input.HourlyRate,
		IsActive:   active,
	}

	if err := s.repo.Insert(ctx, employee); err != nil {
		s.logger.Error().Err(err).Str("full_name", input.FullName).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().Int64("employee_id", employee.ID).Str("full_name", employee.FullName).Msg("employee created")
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context, onlyActive bool) ([]domain.Employee, error) {
	return s.repo.List(ctx, onlyActive)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}
