package postgres

import (
	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
	"github.com/staffdesk/staff-management/internal/employee"
	"gorm.io/gorm"
)

// joinSelect is the read-side projection: employees left-joined
// against departments so the display fields populate when the
// department exists and scan as NULL when it does not.
const joinSelect = "e.id, e.first_name, e.last_name, e.email, e.dob, e.salary, e.department_id, " +
	"d.name AS department_name, d.code AS department_code"

// EmployeeRepository implements employee.RepositoryAPI using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Row, error) {
	var rows []*employeeDatamodel.Row
	err := r.db.Table("employees AS e").
		Select(joinSelect).
		Joins("LEFT JOIN departments AS d ON d.id = e.department_id").
		Order("e.first_name ASC, e.last_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Row, error) {
	var rows []*employeeDatamodel.Row
	err := r.db.Table("employees AS e").
		Select(joinSelect).
		Joins("LEFT JOIN departments AS d ON d.id = e.department_id").
		Where("e.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Create inserts only the writable columns; gorm writes the
// storage-assigned id back onto emp.
func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(emp *employeeDatamodel.Employee) (bool, error) {
	result := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]interface{}{
			"first_name":    emp.FirstName,
			"last_name":     emp.LastName,
			"email":         emp.Email,
			"dob":           emp.DOB,
			"salary":        emp.Salary,
			"department_id": emp.DepartmentID,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *EmployeeRepository) Delete(id int64) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	return result.RowsAffected > 0, result.Error
}
