package domain

import "errors"

// TimeOffStatus is the review state of a time-off request.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

var ErrTimeOffAlreadyDecided = errors.New("time off request already decided")

// TimeOffRequest is a staff request to be excused on a given date.
// Requests start pending and are approved or rejected exactly once.
type TimeOffRequest struct {
	ID         int64         `json:"id" bson:"_id"`
	EmployeeID int64         `json:"employee_id" bson:"employee_id"`
	Date       string        `json:"date" bson:"date"`
	Reason     *string       `json:"reason,omitempty" bson:"reason,omitempty"`
	Status     TimeOffStatus `json:"status" bson:"status"`
	Employee   *Employee     `json:"employee,omitempty" bson:"-"`
}

// Decided reports whether the request has left the pending state.
func (r *TimeOffRequest) Decided() bool {
	return r.Status != TimeOffPending
}
