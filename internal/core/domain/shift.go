package domain

// Date and time-of-day values travel as strings everywhere: dates are ISO
// "YYYY-MM-DD" (lexicographic order equals chronological order, which the
// repositories rely on for range queries) and times are "HH:MM".
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Shift is a single scheduled block of work. A nil EmployeeID means the shift
// is open (unassigned). Employee is denormalized onto the shift on reads so
// consumers never need a second lookup.
type Shift struct {
	ID         int64     `json:"id" bson:"_id"`
	Date       string    `json:"date" bson:"date"`
	StartTime  string    `json:"start_time" bson:"start_time"`
	EndTime    string    `json:"end_time" bson:"end_time"`
	Position   string    `json:"position" bson:"position"`
	EmployeeID *int64    `json:"employee_id" bson:"employee_id,omitempty"`
	Employee   *Employee `json:"employee,omitempty" bson:"-"`
}

// Assigned reports whether the shift has an employee attached.
func (s *Shift) Assigned() bool {
	return s.EmployeeID != nil
}
