package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coffeelounge/shiftboard/internal/api/metrics"
	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

// ScheduleHandler resolves week views of the schedule.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Week handles GET /api/schedule/week/.
//
// @Summary      Get all shifts in one week
// @Description  Returns every shift in the Monday-Sunday week containing the
// @Description  given date, ordered by date then start time. Defaults to the
// @Description  current week.
// @Tags         schedule
// @Produce      json
// @Param        any_date_in_week  query     string  false  "Any date inside the wanted week (YYYY-MM-DD)"
// @Success      200               {array}   domain.Shift
// @Failure      400               {object}  errorResponse
// @Router       /api/schedule/week/ [get]
func (h *ScheduleHandler) Week(c echo.Context) error {
	anchor := time.Now().UTC()
	if raw := c.QueryParam("any_date_in_week"); raw != "" {
		parsed, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "any_date_in_week must be in YYYY-MM-DD format")
		}
		anchor = parsed
	}

	started := time.Now()
	shifts, err := h.service.Week(c.Request().Context(), anchor)
	if err != nil {
		return err
	}
	metrics.ScheduleWeekDuration.Observe(time.Since(started).Seconds())

	return c.JSON(http.StatusOK, shifts)
}
