package postgres

import (
	departmentDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
	"github.com/staffdesk/staff-management/internal/department"
	"gorm.io/gorm"
)

// DepartmentRepository implements department.RepositoryAPI using GORM.
// Every method is a single statement on a connection scoped to the
// call.
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*departmentDatamodel.Department, error) {
	var departments []*departmentDatamodel.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

func (r *DepartmentRepository) GetByID(id int64) (*departmentDatamodel.Department, error) {
	var dept departmentDatamodel.Department
	err := r.db.Where("id = ?", id).First(&dept).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

// Create inserts the row; gorm writes the storage-assigned id back
// onto dept.
func (r *DepartmentRepository) Create(dept *departmentDatamodel.Department) error {
	return r.db.Create(dept).Error
}

func (r *DepartmentRepository) Update(dept *departmentDatamodel.Department) (bool, error) {
	result := r.db.Model(&departmentDatamodel.Department{}).
		Where("id = ?", dept.ID).
		Updates(map[string]interface{}{
			"code": dept.Code,
			"name": dept.Name,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *DepartmentRepository) Delete(id int64) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&departmentDatamodel.Department{})
	return result.RowsAffected > 0, result.Error
}

func (r *DepartmentRepository) CountEmployees(departmentID int64) (int64, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
