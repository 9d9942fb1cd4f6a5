package department

import (
	"github.com/staffdesk/staff-management/internal"
	"github.com/staffdesk/staff-management/internal/core/common/validation"
)

// DepartmentDTO is the write payload for create and update. Any id in
// the body is ignored; on update the path id wins.
type DepartmentDTO struct {
	Code string `json:"departmentCode"`
	Name string `json:"departmentName"`
}

func (dto DepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("departmentCode", dto.Code).Required().MaxLength(50)
	v.Field("departmentName", dto.Name).Required().MaxLength(200)
	return v.Validate()
}
