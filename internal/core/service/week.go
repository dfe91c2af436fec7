package service

import (
	"time"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// WeekRange returns the Monday and Sunday (inclusive, "YYYY-MM-DD") of the
// week containing t. The server owns this definition; clients pass any date
// inside the week they want.
func WeekRange(t time.Time) (monday, sunday string) {
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	start := t.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format(domain.DateLayout), end.Format(domain.DateLayout)
}
