// Package schedule turns the flat shift list returned by the server into the
// employee-by-date matrix the board renders.
package schedule

import "github.com/coffeelounge/shiftboard/internal/board/client"

// OpenShiftKey is the row label grouping every unassigned shift.
const OpenShiftKey = "(open shift)"

// WeekView is the derived, non-persisted matrix for one week of shifts.
// Rows are employee display keys in order of first appearance in the source
// list; columns are the distinct shift dates sorted ascending. Every source
// shift lives in exactly one (row, date) bucket.
type WeekView struct {
	rows    []string
	dates   []string
	buckets map[string]map[string][]client.Shift
	total   int
}

// Rows returns the employee display keys in first-appearance order.
// The returned slice is owned by the view; callers must not modify it.
func (v *WeekView) Rows() []string {
	return v.rows
}

// Dates returns the column dates sorted ascending.
func (v *WeekView) Dates() []string {
	return v.dates
}

// Shifts returns the shifts for one cell in source order. Cells with no
// shifts yield a nil slice.
func (v *WeekView) Shifts(row, date string) []client.Shift {
	byDate, ok := v.buckets[row]
	if !ok {
		return nil
	}
	return byDate[date]
}

// Total is the number of shifts across all buckets.
func (v *WeekView) Total() int {
	return v.total
}

// Empty reports whether the view has no rows and no columns, the valid
// "no shifts this week" state.
func (v *WeekView) Empty() bool {
	return len(v.rows) == 0 && len(v.dates) == 0
}
