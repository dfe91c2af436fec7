package schedule

import (
	"sort"

	"github.com/coffeelounge/shiftboard/internal/board/client"
)

// Aggregate groups a flat shift list into a WeekView. It is pure: the input
// is whatever the server returned for the requested week, and the view simply
// reflects it — no week-boundary logic, no filtering, no deduplication.
//
// Display key: the assigned employee's full name, or OpenShiftKey when the
// shift carries no employee. Within a bucket the source order is preserved.
func Aggregate(shifts []client.Shift) *WeekView {
	view := &WeekView{
		buckets: make(map[string]map[string][]client.Shift),
	}
	dateSet := make(map[string]struct{})

	for _, shift := range shifts {
		key := OpenShiftKey
		if shift.Employee != nil {
			key = shift.Employee.FullName
		}

		byDate, seen := view.buckets[key]
		if !seen {
			byDate = make(map[string][]client.Shift)
			view.buckets[key] = byDate
			view.rows = append(view.rows, key)
		}
		byDate[shift.Date] = append(byDate[shift.Date], shift)
		view.total++

		if _, ok := dateSet[shift.Date]; !ok {
			dateSet[shift.Date] = struct{}{}
			view.dates = append(view.dates, shift.Date)
		}
	}

	// ISO dates sort lexicographically into chronological order.
	sort.Strings(view.dates)

	return view
}
