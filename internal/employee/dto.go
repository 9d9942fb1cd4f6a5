package employee

import (
	"time"

	"github.com/staffdesk/staff-management/internal"
	"github.com/staffdesk/staff-management/internal/core/common/validation"
)

// dobLayouts are the accepted wire formats for dob; time of day, if
// present, is discarded on write.
var dobLayouts = []string{"2006-01-02", time.RFC3339}

// EmployeeDTO is the write payload for create and update. Age is not a
// field here on purpose: it is derived, never client input. Salary and
// departmentId are pointers so a missing field is distinguishable from
// a zero value.
type EmployeeDTO struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	DOB          string   `json:"dob"`
	Salary       *float64 `json:"salary"`
	DepartmentID *int64   `json:"departmentId"`
}

func (dto EmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("firstName", dto.FirstName).Required().MaxLength(100)
	v.Field("lastName", dto.LastName).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().Email()
	v.Field("dob", dto.DOB).Required().Custom(func(value interface{}) string {
		s, _ := value.(string)
		if s == "" {
			return ""
		}
		if _, err := parseDOB(s); err != nil {
			return "dob must be a valid date (YYYY-MM-DD)"
		}
		return ""
	})
	v.Field("salary", dto.Salary).Required().NonNegative()
	v.Field("departmentId", dto.DepartmentID).Required().Positive()
	return v.Validate()
}

// DOBDate returns the parsed, date-only dob. Call Validate first.
func (dto EmployeeDTO) DOBDate() time.Time {
	t, _ := parseDOB(dto.DOB)
	return DateOnly(t)
}

func parseDOB(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dobLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
