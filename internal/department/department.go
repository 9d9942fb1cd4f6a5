package department

import (
	departmentDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/department"
)

// Department is the managed entity. The id is storage-assigned and
// immutable once set.
type Department struct {
	ID   int64  `json:"departmentId"`
	Code string `json:"departmentCode"`
	Name string `json:"departmentName"`
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:   d.ID,
		Code: d.Code,
		Name: d.Name,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:   d.ID,
		Code: d.Code,
		Name: d.Name,
	}
}

func FromDataModelSlice(departments []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(departments))
	for i, d := range departments {
		result[i] = FromDataModel(d)
	}
	return result
}
