package ports

import (
	"context"
	"time"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// ScheduleService resolves "the week containing a date" to its shifts.
// The server owns the definition of week boundaries; callers pass any date
// inside the week they want.
type ScheduleService interface {
	// Week returns all shifts between the Monday and Sunday (inclusive) of
	// the week containing anyDateInWeek, ordered by date then start time,
	// with embedded employees resolved. An empty week is a valid result,
	// not an error.
	Week(ctx context.Context, anyDateInWeek time.Time) ([]domain.Shift, error)
}

// ScheduleCache is an optional read-through cache for week schedules, keyed
// by the week's Monday in "YYYY-MM-DD" form.
type ScheduleCache interface {
	// Get returns the cached shifts and true on a hit.
	Get(ctx context.Context, weekStart string) ([]domain.Shift, bool, error)
	Set(ctx context.Context, weekStart string, shifts []domain.Shift) error
	// Invalidate drops the cached entry for the week, if any.
	Invalidate(ctx context.Context, weekStart string) error
}
