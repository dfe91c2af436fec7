package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/coffeelounge/shiftboard/internal/board/schedule"
)

// WeekTable renders a WeekView as a grid: one row per employee (open shifts
// share one row), one column per date, cells listing that day's blocks.
func WeekTable(view *schedule.WeekView, styles Styles) string {
	if view.Empty() {
		return styles.Muted.Render("no shifts this week") + "\n"
	}

	dates := view.Dates()
	headers := append([]string{""}, dates...)

	cells := make([][]string, 0, len(view.Rows()))
	for _, row := range view.Rows() {
		line := make([]string, 0, len(headers))
		line = append(line, row)
		for _, date := range dates {
			blocks := make([]string, 0, 2)
			for _, s := range view.Shifts(row, date) {
				blocks = append(blocks, s.StartTime+"-"+s.EndTime+" "+s.Position)
			}
			line = append(line, strings.Join(blocks, ", "))
		}
		cells = append(cells, line)
	}

	// Column widths from the widest cell in each column.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, line := range cells {
		for i, cell := range line {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(styles.Header.Width(widths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(styles.Muted.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)) + "\n")

	for _, line := range cells {
		for i, cell := range line {
			style := styles.Cell
			if i == 0 {
				style = styles.Row
				if cell == schedule.OpenShiftKey {
					style = styles.Open
				}
			}
			sb.WriteString(style.Width(widths[i]).Render(cell))
			if i < len(line)-1 {
				sb.WriteString(styles.Muted.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RosterTable renders the employee roster.
func RosterTable(headers []string, rows [][]string, styles Styles) string {
	if len(rows) == 0 {
		return styles.Muted.Render("no employees on the roster") + "\n"
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(styles.Header.Width(widths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(styles.Muted.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(styles.Cell.Width(widths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(styles.Muted.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
