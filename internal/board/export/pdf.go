// Package export writes week schedules to printable formats.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/coffeelounge/shiftboard/internal/board/schedule"
)

const (
	rowLabelWidth = 45.0
	lineHeight    = 6.0
	headerHeight  = 8.0
)

// WeekPDF writes the week view as a landscape A4 grid: one row per employee,
// one column per date. An empty view produces a one-line notice instead of a
// grid.
func WeekPDF(w io.Writer, title string, view *schedule.WeekView) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(14)

	if view.Empty() {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, "No shifts scheduled this week.")
		return pdf.Output(w)
	}

	dates := view.Dates()
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right - rowLabelWidth) / float64(len(dates))

	// Header row.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(rowLabelWidth, headerHeight, "", "1", 0, "L", false, 0, "")
	for _, date := range dates {
		pdf.CellFormat(colWidth, headerHeight, date, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range view.Rows() {
		// Tallest cell in the row decides its height.
		lines := 1
		for _, date := range dates {
			if n := len(view.Shifts(row, date)); n > lines {
				lines = n
			}
		}
		height := lineHeight * float64(lines)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(rowLabelWidth, height, row, "1", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, date := range dates {
			x, y := pdf.GetXY()
			pdf.Rect(x, y, colWidth, height, "D")
			for i, s := range view.Shifts(row, date) {
				pdf.SetXY(x, y+lineHeight*float64(i))
				block := fmt.Sprintf("%s-%s %s", s.StartTime, s.EndTime, s.Position)
				pdf.CellFormat(colWidth, lineHeight, block, "", 0, "L", false, 0, "")
			}
			pdf.SetXY(x+colWidth, y)
		}
		pdf.Ln(height)
	}

	return pdf.Output(w)
}
