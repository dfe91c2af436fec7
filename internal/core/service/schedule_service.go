package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type ScheduleService struct {
	shifts    ports.ShiftRepository
	employees ports.EmployeeRepository
	cache     ports.ScheduleCache // optional, may be nil
	logger    zerolog.Logger
}

func NewScheduleService(shifts ports.ShiftRepository, employees ports.EmployeeRepository, cache ports.ScheduleCache, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{shifts: shifts, employees: employees, cache: cache, logger: logger}
}

// Week returns all shifts in the Monday-Sunday week containing anyDateInWeek,
// ordered by date then start time, with embedded employees resolved. Cache
// failures are logged and degrade to a repository read, never an error.
func (s *ScheduleService) Week(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error) {
	monday, sunday := WeekRange(anyDateInWeek)

	if s.cache != nil {
		shifts, hit, err := s.cache.Get(ctx, monday)
		if err != nil {
			s.logger.Warn().Err(err).Str("week_start", monday).Msg("schedule cache read failed")
		} else if hit {
			return shifts, nil
		}
	}

	shifts, err := s.shifts.List(ctx, ports.ShiftFilter{StartDate: monday, EndDate: sunday})
	if err != nil {
		return nil, err
	}
	if err := attachEmployees(ctx, s.employees, shifts); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, monday, shifts); err != nil {
			s.logger.Warn().Err(err).Str("week_start", monday).Msg("schedule cache write failed")
		}
	}

	return shifts, nil
}
