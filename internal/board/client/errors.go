package client

// Operation names used to pick the fixed user-facing failure message.
const (
	opListEmployees    = "list_employees"
	opCreateEmployee   = "create_employee"
	opCreateShift      = "create_shift"
	opListWeekSchedule = "list_week_schedule"
)

// opMessage maps an operation to the fixed human-readable message shown when
// the server gave us nothing better. Raw transport errors never surface to
// the operator directly.
func opMessage(op string) string {
	switch op {
	case opListEmployees:
		return "could not load employees"
	case opCreateEmployee:
		return "could not create employee"
	case opCreateShift:
		return "could not create shift"
	case opListWeekSchedule:
		return "could not load week schedule"
	default:
		return "request failed"
	}
}

// TransportError is a network failure or a non-success response that carried
// no usable detail. Its message is fixed per operation; the underlying cause
// is kept for logs via Unwrap.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return opMessage(e.Op)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is a rejected request where the server supplied structured
// validation detail. The detail is surfaced to the operator as-is.
type ValidationError struct {
	Op     string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return opMessage(e.Op)
}

// EmptyInputError is a missing required draft field, caught before any
// network call is attempted.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return e.Field + " is required"
}
