package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

type TimeOffService struct {
	requests  ports.TimeOffRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewTimeOffService(requests ports.TimeOffRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *TimeOffService {
	return &TimeOffService{requests: requests, employees: employees, logger: logger}
}

// Create files a new pending request. The employee must exist; inactive
// employees may still request time off (they may be re-activated later).
func (s *TimeOffService) Create(ctx context.Context, input ports.CreateTimeOffInput) (*domain.TimeOffRequest, error) {
	emp, err := s.employees.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	req := &domain.TimeOffRequest{
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		Reason:     input.Reason,
		Status:     domain.TimeOffPending,
	}
	if err := s.requests.Insert(ctx, req); err != nil {
		s.logger.Error().Err(err).Int64("employee_id", input.EmployeeID).Msg("failed to create time off request")
		return nil, err
	}
	req.Employee = emp

	s.logger.Info().Int64("request_id", req.ID).Int64("employee_id", req.EmployeeID).Str("date", req.Date).Msg("time off requested")
	return req, nil
}

func (s *TimeOffService) List(ctx context.Context, status domain.TimeOffStatus) ([]domain.TimeOffRequest, error) {
	reqs, err := s.requests.List(ctx, status)
	if err != nil {
		return nil, err
	}
	if err := s.attachEmployees(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *TimeOffService) Approve(ctx context.Context, id int64) (*domain.TimeOffRequest, error) {
	return s.decide(ctx, id, domain.TimeOffApproved)
}

func (s *TimeOffService) Reject(ctx context.Context, id int64) (*domain.TimeOffRequest, error) {
	return s.decide(ctx, id, domain.TimeOffRejected)
}

// decide moves a pending request to its final state. Requests are decided
// exactly once.
func (s *TimeOffService) decide(ctx context.Context, id int64, status domain.TimeOffStatus) (*domain.TimeOffRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Decided() {
		return nil, domain.ErrTimeOffAlreadyDecided
	}

	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	req.Status = status

	s.logger.Info().Int64("request_id", id).Str("status", string(status)).Msg("time off request decided")
	return req, nil
}

func (s *TimeOffService) attachEmployees(ctx context.Context, reqs []domain.TimeOffRequest) error {
	ids := make([]int64, 0, len(reqs))
	seen := make(map[int64]struct{})
	for i := range reqs {
		id := reqs[i].EmployeeID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	byID, err := s.employees.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range reqs {
		if emp, ok := byID[reqs[i].EmployeeID]; ok {
			e := emp
			reqs[i].Employee = &e
		}
	}
	return nil
}
