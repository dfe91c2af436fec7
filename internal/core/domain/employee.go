package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeInactive = errors.New("employee is not active")
var ErrShiftNotFound = errors.New("shift not found")
var ErrTimeOffNotFound = errors.New("time off request not found")

// Employee is a member of staff that shifts can be assigned to.
// IDs are server-assigned integers and immutable after creation.
type Employee struct {
	ID         int64    `json:"id" bson:"_id"`
	FullName   string   `json:"full_name" bson:"full_name"`
	Role       string   `json:"role" bson:"role"`
	Phone      *string  `json:"phone,omitempty" bson:"phone,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"`
	IsActive   bool     `json:"is_active" bson:"is_active"`
}
