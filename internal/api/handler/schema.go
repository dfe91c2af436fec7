package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Records are rendered straight from the domain structs, which own the JSON
// contract. Requests stay transport-local so binding and validation rules
// never leak into the core.

type createEmployeeRequest struct {
	FullName   string   `json:"full_name"   validate:"required"`
	Role       string   `json:"role"        validate:"required"`
	Phone      *string  `json:"phone,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

type createShiftRequest struct {
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time"  validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time"    validate:"required,datetime=15:04"`
	Position   string `json:"position"    validate:"required"`
	EmployeeID *int64 `json:"employee_id" validate:"omitempty,gt=0"`
}

type createTimeOffRequest struct {
	EmployeeID int64   `json:"employee_id" validate:"required,gt=0"`
	Date       string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Reason     *string `json:"reason,omitempty"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
