package handler

import (
	"strings"
	"testing"
)

// Validation messages must name fields by their wire (json) name, since the
// board surfaces them verbatim to the operator.
func TestValidator_UsesWireFieldNames(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want string
	}{
		{
			name: "missing full_name",
			req:  &createEmployeeRequest{Role: "Barista"},
			want: "full_name is required",
		},
		{
			name: "negative hourly_rate",
			req: func() *createEmployeeRequest {
				rate := -1.0
				return &createEmployeeRequest{FullName: "Ada", Role: "Barista", HourlyRate: &rate}
			}(),
			want: "hourly_rate must be 0 or greater",
		},
		{
			name: "bad start_time",
			req:  &createShiftRequest{Date: "2024-01-03", StartTime: "9am", EndTime: "17:00", Position: "Cashier"},
			want: "start_time must be in HH:MM format",
		},
		{
			name: "zero employee_id",
			req: func() *createShiftRequest {
				id := int64(0)
				return &createShiftRequest{Date: "2024-01-03", StartTime: "09:00", EndTime: "17:00", Position: "Cashier", EmployeeID: &id}
			}(),
			want: "employee_id must be greater than 0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("message = %q, want it to contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidator_ZeroRateValid(t *testing.T) {
	v := NewValidator()
	rate := 0.0
	if err := v.Validate(&createEmployeeRequest{FullName: "Ada", Role: "Barista", HourlyRate: &rate}); err != nil {
		t.Fatalf("zero hourly_rate rejected: %v", err)
	}
}
