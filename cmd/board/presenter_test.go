package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/coffeelounge/shiftboard/internal/board/client"
	"github.com/coffeelounge/shiftboard/internal/board/schedule"
)

func TestPresentRoster_RendersEmployees(t *testing.T) {
	var out, errOut bytes.Buffer
	p := newConsolePresenter(&out, &errOut)

	rate := 18.5
	p.PresentRoster([]client.Employee{
		{ID: 1, FullName: "Dana Cruz", Role: "barista", HourlyRate: &rate, IsActive: true},
		{ID: 2, FullName: "Avery Kim", Role: "manager", IsActive: false},
	})

	got := out.String()
	for _, want := range []string{"Dana Cruz", "barista", "18.50", "Avery Kim", "no"} {
		if !strings.Contains(got, want) {
			t.Errorf("roster output missing %q:\n%s", want, got)
		}
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %s", errOut.String())
	}
}

func TestPresentWeek_EmptyView(t *testing.T) {
	var out, errOut bytes.Buffer
	p := newConsolePresenter(&out, &errOut)

	p.PresentWeek(schedule.Aggregate(nil))

	if !strings.Contains(out.String(), "no shifts this week") {
		t.Errorf("empty week output = %q", out.String())
	}
}

func TestNotify_WritesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := newConsolePresenter(&out, &errOut)

	p.Notify(errors.New("could not load employees"))

	if !strings.Contains(errOut.String(), "could not load employees") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("unexpected stdout output: %s", out.String())
	}
}
