package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/coffeelounge/shiftboard/internal/api/metrics"
	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

// TimeOffHandler handles the time-off request workflow.
type TimeOffHandler struct {
	service ports.TimeOffService
	audit   AuditDispatcher
}

func NewTimeOffHandler(service ports.TimeOffService, audit AuditDispatcher) *TimeOffHandler {
	return &TimeOffHandler{service: service, audit: audit}
}

// List handles GET /api/timeoff/.
//
// @Summary      List time-off requests
// @Tags         timeoff
// @Produce      json
// @Param        status  query     string  false  "Filter by review state"  Enums(pending, approved, rejected)
// @Success      200     {array}   domain.TimeOffRequest
// @Failure      400     {object}  errorResponse
// @Router       /api/timeoff/ [get]
func (h *TimeOffHandler) List(c echo.Context) error {
	status := domain.TimeOffStatus(c.QueryParam("status"))
	switch status {
	case "", domain.TimeOffPending, domain.TimeOffApproved, domain.TimeOffRejected:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	requests, err := h.service.List(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Create handles POST /api/timeoff/.
//
// @Summary      File a time-off request
// @Tags         timeoff
// @Accept       json
// @Produce      json
// @Param        body  body      createTimeOffRequest  true  "Request details"
// @Success      201   {object}  domain.TimeOffRequest
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/timeoff/ [post]
func (h *TimeOffHandler) Create(c echo.Context) error {
	var req createTimeOffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	request, err := h.service.Create(c.Request().Context(), ports.CreateTimeOffInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Reason:     req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.TimeOffRequestsTotal.Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Entity:   "timeoff",
		EntityID: request.ID,
		Action:   "created",
		Actor:    ctxActor(c),
	})

	return c.JSON(http.StatusCreated, request)
}

// Approve handles POST /api/timeoff/:id/approve.
//
// @Summary      Approve a pending time-off request
// @Tags         timeoff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  domain.TimeOffRequest
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/timeoff/{id}/approve [post]
func (h *TimeOffHandler) Approve(c echo.Context) error {
	return h.decide(c, domain.TimeOffApproved)
}

// Reject handles POST /api/timeoff/:id/reject.
//
// @Summary      Reject a pending time-off request
// @Tags         timeoff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  domain.TimeOffRequest
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/timeoff/{id}/reject [post]
func (h *TimeOffHandler) Reject(c echo.Context) error {
	return h.decide(c, domain.TimeOffRejected)
}

func (h *TimeOffHandler) decide(c echo.Context, status domain.TimeOffStatus) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}

	var request *domain.TimeOffRequest
	if status == domain.TimeOffApproved {
		request, err = h.service.Approve(c.Request().Context(), id)
	} else {
		request, err = h.service.Reject(c.Request().Context(), id)
	}
	if err != nil {
		return err
	}

	metrics.TimeOffDecisionsTotal.WithLabelValues(string(status)).Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Entity:   "timeoff",
		EntityID: request.ID,
		Action:   string(status),
		Actor:    ctxActor(c),
	})

	return c.JSON(http.StatusOK, request)
}
