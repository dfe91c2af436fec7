package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/coffeelounge/shiftboard/internal/api/metrics"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

// ShiftHandler handles HTTP requests for shift operations.
type ShiftHandler struct {
	service ports.ShiftService
	audit   AuditDispatcher
}

func NewShiftHandler(service ports.ShiftService, audit AuditDispatcher) *ShiftHandler {
	return &ShiftHandler{service: service, audit: audit}
}

// List handles GET /api/shifts/.
//
// @Summary      List shifts
// @Tags         shifts
// @Produce      json
// @Param        start_date   query     string  false  "Inclusive lower date bound (YYYY-MM-DD)"
// @Param        end_date     query     string  false  "Inclusive upper date bound (YYYY-MM-DD)"
// @Param        employee_id  query     int     false  "Filter by assigned employee"
// @Success      200          {array}   domain.Shift
// @Failure      400          {object}  errorResponse
// @Router       /api/shifts/ [get]
func (h *ShiftHandler) List(c echo.Context) error {
	filter := ports.ShiftFilter{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	}
	if raw := c.QueryParam("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid employee_id")
		}
		filter.EmployeeID = &id
	}

	shifts, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shifts)
}

// Create handles POST /api/shifts/.
//
// @Summary      Create a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        body  body      createShiftRequest  true  "Shift details; omit employee_id for an open shift"
// @Success      201   {object}  domain.Shift
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/shifts/ [post]
func (h *ShiftHandler) Create(c echo.Context) error {
	var req createShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shift, err := h.service.Create(c.Request().Context(), ports.CreateShiftInput{
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Position:   req.Position,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return err
	}

	metrics.ShiftsCreatedTotal.WithLabelValues(strconv.FormatBool(shift.Assigned())).Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Entity:   "shift",
		EntityID: shift.ID,
		Action:   "created",
		Actor:    ctxActor(c),
	})

	return c.JSON(http.StatusCreated, shift)
}
