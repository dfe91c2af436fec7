package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type ShiftService struct {
	shifts    ports.ShiftRepository
	employees ports.EmployeeRepository
	cache     ports.ScheduleCache // optional, may be nil
	logger    zerolog.Logger
}

func NewShiftService(shifts ports.ShiftRepository, employees ports.EmployeeRepository, cache ports.ScheduleCache, logger zerolog.Logger) *ShiftService {
	return &ShiftService{shifts: shifts, employees: employees, cache: cache, logger: logger}
}

// Create inserts a new shift. When an employee is referenced it must exist
// and be active; a nil EmployeeID creates an open shift. The cached schedule
// for the shift's week is invalidated so the next week load sees it.
func (s *ShiftService) Create(ctx context.Context, input ports.CreateShiftInput) (*domain.Shift, error) {
	var assigned *domain.Employee
	if input.EmployeeID != nil {
		emp, err := s.employees.FindByID(ctx, *input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !emp.IsActive {
			return nil, domain.ErrEmployeeInactive
		}
		assigned = emp
	}

	shift := &domain.Shift{
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Position:   input.Position,
		EmployeeID: input.EmployeeID,
	}

	if err := s.shifts.Insert(ctx, shift); err != nil {
		s.logger.Error().Err(err).Str("date", input.Date).Msg("failed to create shift")
		return nil, err
	}
	shift.Employee = assigned

	s.invalidateWeek(ctx, shift.Date)

	s.logger.Info().
		Int64("shift_id", shift.ID).
		Str("date", shift.Date).
		Bool("assigned", shift.Assigned()).
		Msg("shift created")

	return shift, nil
}

// List returns shifts matching the filter with embedded employees resolved.
func (s *ShiftService) List(ctx context.Context, filter ports.ShiftFilter) ([]domain.Shift, error) {
	shifts, err := s.shifts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := attachEmployees(ctx, s.employees, shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (s *ShiftService) invalidateWeek(ctx context.Context, date string) {
	if s.cache == nil {
		return
	}
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return
	}
	weekStart, _ := WeekRange(day)
	if err := s.cache.Invalidate(ctx, weekStart); err != nil {
		s.logger.Warn().Err(err).Str("week_start", weekStart).Msg("failed to invalidate schedule cache")
	}
}

// attachEmployees resolves the denormalized Employee field for every assigned
// shift in a single repository round trip.
func attachEmployees(ctx context.Context, repo ports.EmployeeRepository, shifts []domain.Shift) error {
	ids := make([]int64, 0, len(shifts))
	seen := make(map[int64]struct{})
	for i := range shifts {
		if shifts[i].EmployeeID == nil {
			continue
		}
		id := *shifts[i].EmployeeID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	byID, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range shifts {
		if shifts[i].EmployeeID == nil {
			continue
		}
		if emp, ok := byID[*shifts[i].EmployeeID]; ok {
			e := emp
			shifts[i].Employee = &e
		}
	}
	return nil
}
