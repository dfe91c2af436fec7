package schedule

import (
	"reflect"
	"testing"

	"github.com/coffeelounge/shiftboard/internal/board/client"
)

func assigned(name, date, start, end, position string) client.Shift {
	return client.Shift{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Position:  position,
		Employee:  &client.Employee{FullName: name},
	}
}

func open(date, start, end, position string) client.Shift {
	return client.Shift{Date: date, StartTime: start, EndTime: end, Position: position}
}

func TestAggregate_Empty(t *testing.T) {
	view := Aggregate(nil)

	if !view.Empty() {
		t.Fatalf("expected empty view")
	}
	if len(view.Rows()) != 0 || len(view.Dates()) != 0 {
		t.Fatalf("empty input must yield zero rows and zero columns")
	}
}

func TestAggregate_Example(t *testing.T) {
	// The two-shift example: Ada on the later date, an open shift on the
	// earlier one.
	shifts := []client.Shift{
		assigned("Ada", "2024-01-02", "09:00", "17:00", "Cashier"),
		open("2024-01-01", "08:00", "12:00", "Stock"),
	}

	view := Aggregate(shifts)

	if want := []string{"2024-01-01", "2024-01-02"}; !reflect.DeepEqual(view.Dates(), want) {
		t.Fatalf("dates = %v, want %v", view.Dates(), want)
	}
	if want := []string{"Ada", OpenShiftKey}; !reflect.DeepEqual(view.Rows(), want) {
		t.Fatalf("rows = %v, want %v", view.Rows(), want)
	}
	if got := view.Shifts("Ada", "2024-01-02"); len(got) != 1 || got[0].Position != "Cashier" {
		t.Fatalf("Ada's cell = %+v", got)
	}
	if got := view.Shifts(OpenShiftKey, "2024-01-01"); len(got) != 1 || got[0].Position != "Stock" {
		t.Fatalf("open cell = %+v", got)
	}
	if got := view.Shifts("Ada", "2024-01-01"); got != nil {
		t.Fatalf("expected empty cell, got %+v", got)
	}
}

func TestAggregate_PartitionsEveryShiftExactlyOnce(t *testing.T) {
	shifts := []client.Shift{
		assigned("Ada", "2024-01-02", "09:00", "17:00", "Cashier"),
		assigned("Berk", "2024-01-02", "10:00", "18:00", "Barista"),
		assigned("Ada", "2024-01-02", "18:00", "22:00", "Cashier"),
		open("2024-01-03", "08:00", "12:00", "Stock"),
		assigned("Ada", "2024-01-04", "09:00", "17:00", "Cashier"),
		open("2024-01-03", "12:00", "16:00", "Stock"),
	}

	view := Aggregate(shifts)

	counted := 0
	for _, row := range view.Rows() {
		for _, date := range view.Dates() {
			counted += len(view.Shifts(row, date))
		}
	}
	if counted != len(shifts) {
		t.Fatalf("buckets hold %d shifts, input had %d", counted, len(shifts))
	}
	if view.Total() != len(shifts) {
		t.Fatalf("Total() = %d, want %d", view.Total(), len(shifts))
	}
}

func TestAggregate_RowOrderIsFirstAppearance(t *testing.T) {
	shifts := []client.Shift{
		assigned("Zeynep", "2024-01-05", "09:00", "17:00", "Lead"),
		open("2024-01-01", "08:00", "12:00", "Stock"),
		assigned("Ada", "2024-01-02", "09:00", "17:00", "Cashier"),
		assigned("Zeynep", "2024-01-03", "09:00", "17:00", "Lead"),
	}

	view := Aggregate(shifts)

	// Not alphabetical: Zeynep appeared first in the source list.
	if want := []string{"Zeynep", OpenShiftKey, "Ada"}; !reflect.DeepEqual(view.Rows(), want) {
		t.Fatalf("rows = %v, want %v", view.Rows(), want)
	}
}

func TestAggregate_OpenShiftsShareOneRow(t *testing.T) {
	shifts := []client.Shift{
		open("2024-01-01", "08:00", "12:00", "Stock"),
		open("2024-01-02", "08:00", "12:00", "Stock"),
		open("2024-01-01", "12:00", "16:00", "Counter"),
	}

	view := Aggregate(shifts)

	if len(view.Rows()) != 1 || view.Rows()[0] != OpenShiftKey {
		t.Fatalf("expected a single open-shift row, got %v", view.Rows())
	}
	if got := view.Shifts(OpenShiftKey, "2024-01-01"); len(got) != 2 {
		t.Fatalf("expected 2 open shifts on 2024-01-01, got %d", len(got))
	}
}

func TestAggregate_ColumnsAreDistinctSortedInputDates(t *testing.T) {
	// Dates from two non-contiguous physical weeks: the aggregator has no
	// concept of "the requested week" and reflects the input as-is.
	shifts := []client.Shift{
		assigned("Ada", "2024-01-09", "09:00", "17:00", "Cashier"),
		assigned("Ada", "2024-01-02", "09:00", "17:00", "Cashier"),
		assigned("Berk", "2024-01-09", "10:00", "18:00", "Barista"),
		open("2024-02-01", "08:00", "12:00", "Stock"),
	}

	view := Aggregate(shifts)

	if want := []string{"2024-01-02", "2024-01-09", "2024-02-01"}; !reflect.DeepEqual(view.Dates(), want) {
		t.Fatalf("dates = %v, want %v", view.Dates(), want)
	}
}

func TestAggregate_BucketPreservesSourceOrder(t *testing.T) {
	shifts := []client.Shift{
		{Date: "2024-01-02", StartTime: "18:00", EndTime: "22:00", Position: "Close", Employee: &client.Employee{FullName: "Ada"}},
		{Date: "2024-01-02", StartTime: "09:00", EndTime: "17:00", Position: "Open", Employee: &client.Employee{FullName: "Ada"}},
	}

	view := Aggregate(shifts)

	cell := view.Shifts("Ada", "2024-01-02")
	if len(cell) != 2 || cell[0].Position != "Close" || cell[1].Position != "Open" {
		t.Fatalf("bucket must preserve source order, got %+v", cell)
	}
}
