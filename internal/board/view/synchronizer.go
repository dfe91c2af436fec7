// Package view keeps the rendered scheduling board consistent with server
// state: load → aggregate → render on startup, mutate → reload → re-aggregate
// → render after every submission.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeelounge/shiftboard/internal/board/client"
	"github.com/coffeelounge/shiftboard/internal/board/schedule"
)

// RecordStore is the slice of the API client the synchronizer needs.
type RecordStore interface {
	ListEmployees(ctx context.Context) ([]client.Employee, error)
	CreateEmployee(ctx context.Context, draft client.EmployeeDraft) (*client.Employee, error)
	CreateShift(ctx context.Context, draft client.ShiftDraft) (*client.Shift, error)
	ListWeekSchedule(ctx context.Context, anyDateInWeek time.Time) ([]client.Shift, error)
}

// Presenter is the rendering surface the synchronizer publishes to. Every
// error ends up in Notify exactly once; forms are reset only after the
// corresponding submission succeeded.
type Presenter interface {
	PresentWeek(view *schedule.WeekView)
	PresentRoster(roster []client.Employee)
	Notify(err error)
	ResetEmployeeForm()
	ResetShiftForm()
}

// Synchronizer owns the only mutable board state: the currently displayed
// week anchor and the most recently loaded roster. Construct once at
// startup; it is never torn down.
//
// Responses are published as they resolve. When two loads overlap, the last
// response to arrive wins, even if its request was issued first. That
// mirrors the board's original behaviour and is pinned by a test; a stricter
// implementation would attach a generation token to each request and drop
// stale responses.
type Synchronizer struct {
	store     RecordStore
	presenter Presenter
	logger    zerolog.Logger
	now       func() time.Time

	mu     sync.Mutex
	anchor time.Time
	roster []client.Employee
}

func NewSynchronizer(store RecordStore, presenter Presenter, logger zerolog.Logger) *Synchronizer {
	return &Synchronizer{
		store:     store,
		presenter: presenter,
		logger:    logger,
		now:       time.Now,
	}
}

// Initialize loads the roster, anchors the board to the current date, and
// renders that week. On failure the board stays in its prior (empty) state;
// nothing is partially rendered.
func (s *Synchronizer) Initialize(ctx context.Context) error {
	if err := s.RefreshEmployees(ctx); err != nil {
		return err
	}

	anchor := s.now()
	s.mu.Lock()
	s.anchor = anchor
	s.mu.Unlock()

	return s.LoadWeek(ctx, anchor)
}

// RefreshEmployees reloads the roster and republishes it.
func (s *Synchronizer) RefreshEmployees(ctx context.Context) error {
	roster, err := s.store.ListEmployees(ctx)
	if err != nil {
		s.presenter.Notify(err)
		return err
	}

	s.mu.Lock()
	s.roster = roster
	s.mu.Unlock()

	s.presenter.PresentRoster(roster)
	s.logger.Debug().Int("count", len(roster)).Msg("roster refreshed")
	return nil
}

// SubmitEmployee creates an employee. On success the intake form is cleared
// and the roster refreshed; on failure the form is left intact so the
// operator can correct and resubmit.
func (s *Synchronizer) SubmitEmployee(ctx context.Context, draft client.EmployeeDraft) error {
	created, err := s.store.CreateEmployee(ctx, draft)
	if err != nil {
		s.presenter.Notify(err)
		return err
	}

	s.presenter.ResetEmployeeForm()
	s.logger.Info().Int64("employee_id", created.ID).Msg("employee created")

	// Roster refresh is an independent step; its failure reports on its own
	// and does not roll back the creation.
	return s.RefreshEmployees(ctx)
}

// SubmitShift creates a shift. On success the intake form is cleared, the
// anchor is set to the shift's date when no week was displayed yet, and the
// anchored week is reloaded; on failure the form is left intact.
func (s *Synchronizer) SubmitShift(ctx context.Context, draft client.ShiftDraft) error {
	created, err := s.store.CreateShift(ctx, draft)
	if err != nil {
		s.presenter.Notify(err)
		return err
	}

	s.presenter.ResetShiftForm()
	s.logger.Info().Int64("shift_id", created.ID).Str("date", created.Date).Msg("shift created")

	s.mu.Lock()
	anchor := s.anchor
	if anchor.IsZero() {
		if d, perr := time.Parse("2006-01-02", created.Date); perr == nil {
			anchor = d
			s.anchor = anchor
		}
	}
	s.mu.Unlock()

	return s.LoadWeek(ctx, anchor)
}

// LoadWeek fetches the week containing anchorDate, aggregates it, and
// publishes the result. An empty week publishes an empty WeekView — the
// presenter renders an explicit "no shifts" state, not an error.
func (s *Synchronizer) LoadWeek(ctx context.Context, anchorDate time.Time) error {
	s.mu.Lock()
	s.anchor = anchorDate
	s.mu.Unlock()

	shifts, err := s.store.ListWeekSchedule(ctx, anchorDate)
	if err != nil {
		s.presenter.Notify(err)
		return err
	}

	week := schedule.Aggregate(shifts)

	// No request token: whichever in-flight load resolves last overwrites
	// the board (see type comment).
	s.presenter.PresentWeek(week)
	s.logger.Debug().
		Str("anchor", anchorDate.Format("2006-01-02")).
		Int("shifts", week.Total()).
		Msg("week loaded")
	return nil
}

// Anchor returns the currently displayed week anchor; zero before the first
// load.
func (s *Synchronizer) Anchor() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchor
}

// Roster returns the most recently loaded employee roster, used to populate
// the shift assignment selector.
func (s *Synchronizer) Roster() []client.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster
}
