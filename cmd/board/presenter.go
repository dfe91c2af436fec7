package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/coffeelounge/shiftboard/cmd/board/ui"
	"github.com/coffeelounge/shiftboard/internal/board/client"
	"github.com/coffeelounge/shiftboard/internal/board/schedule"
)

// consolePresenter writes rendered views to stdout and failures to stderr.
// Form resets are no-ops: each command is single-shot, there is no persistent
// form to clear.
type consolePresenter struct {
	out    io.Writer
	errOut io.Writer
	styles ui.Styles
}

func newConsolePresenter(out, errOut io.Writer) *consolePresenter {
	return &consolePresenter{
		out:    out,
		errOut: errOut,
		styles: ui.DefaultStyles(),
	}
}

func (p *consolePresenter) PresentWeek(view *schedule.WeekView) {
	fmt.Fprint(p.out, ui.WeekTable(view, p.styles))
}

func (p *consolePresenter) PresentRoster(roster []client.Employee) {
	rows := make([][]string, 0, len(roster))
	for _, e := range roster {
		rate := ""
		if e.HourlyRate != nil {
			rate = strconv.FormatFloat(*e.HourlyRate, 'f', 2, 64)
		}
		active := "yes"
		if !e.IsActive {
			active = "no"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10), e.FullName, e.Role, rate, active,
		})
	}
	fmt.Fprint(p.out, ui.RosterTable([]string{"ID", "Name", "Role", "Rate", "Active"}, rows, p.styles))
}

func (p *consolePresenter) Notify(err error) {
	fmt.Fprintln(p.errOut, p.styles.Error.Render(err.Error()))
}

func (p *consolePresenter) ResetEmployeeForm() {}

func (p *consolePresenter) ResetShiftForm() {}
