package employee

import (
	"time"

	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
)

// Employee is the managed entity as served to clients. Age is derived
// from dob on every read and is never persisted or accepted as input;
// the department fields are populated by joining Department at read
// time and stay nil when the referenced row does not exist.
type Employee struct {
	ID             int64     `json:"employeeId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	DOB            time.Time `json:"dob"`
	Age            int       `json:"age"`
	Salary         float64   `json:"salary"`
	DepartmentID   int64     `json:"departmentId"`
	DepartmentName *string   `json:"departmentName"`
	DepartmentCode *string   `json:"departmentCode"`
}

// AgeAt returns the whole years elapsed between dob and today,
// counting a year only once its anniversary has passed. The check
// compares calendar position directly; AddDate would shift a Feb 29
// into Mar 1 in non-leap years and count the year a day early.
func AgeAt(dob, today time.Time) int {
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}

// DateOnly truncates t to midnight UTC so only the calendar date is
// persisted.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FromRow materializes a joined read row, computing age as of today.
func FromRow(row *employeeDatamodel.Row, today time.Time) *Employee {
	return &Employee{
		ID:             row.ID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		DOB:            row.DOB,
		Age:            AgeAt(row.DOB, today),
		Salary:         row.Salary,
		DepartmentID:   row.DepartmentID,
		DepartmentName: row.DepartmentName,
		DepartmentCode: row.DepartmentCode,
	}
}

func FromRowSlice(rows []*employeeDatamodel.Row, today time.Time) []*Employee {
	result := make([]*Employee, len(rows))
	for i, row := range rows {
		result[i] = FromRow(row, today)
	}
	return result
}
