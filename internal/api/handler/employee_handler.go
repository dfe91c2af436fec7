package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/coffeelounge/shiftboard/internal/api/metrics"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

// AuditDispatcher is the interface handlers use to enqueue audit events.
type AuditDispatcher interface {
	Enqueue(event ports.AuditEventInput)
}

// EmployeeHandler handles HTTP requests for roster operations.
type EmployeeHandler struct {
	service ports.EmployeeService
	audit   AuditDispatcher
}

func NewEmployeeHandler(service ports.EmployeeService, audit AuditDispatcher) *EmployeeHandler {
	return &EmployeeHandler{service: service, audit: audit}
}

// List handles GET /api/employees/.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        only_active  query     bool  false  "Filter out inactive employees (default true)"
// @Success      200          {array}   domain.Employee
// @Failure      400          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /api/employees/ [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	// The roster is active-only unless callers ask for everyone.
	onlyActive := true
	if raw := c.QueryParam("only_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid only_active")
		}
		onlyActive = v
	}

	employees, err := h.service.List(c.Request().Context(), onlyActive)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees/.
//
// @Summary      Add an employee to the roster
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/employees/ [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		FullName:   req.FullName,
		Role:       req.Role,
		Phone:      req.Phone,
		HourlyRate: req.HourlyRate,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Entity:   "employee",
		EntityID: employee.ID,
		Action:   "created",
		Actor:    ctxActor(c),
	})

	return c.JSON(http.StatusCreated, employee)
}
