package employee

import "time"

// Employee is the persistence row for the employees table. Age is
// never part of the row; it is derived at read time.
type Employee struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name;not null"`
	Email        string    `gorm:"column:email;not null"`
	DOB          time.Time `gorm:"column:dob;type:date;not null"`
	Salary       float64   `gorm:"column:salary;not null"`
	DepartmentID int64     `gorm:"column:department_id;not null"`
}

func (Employee) TableName() string {
	return "employees"
}

// Row is the read-side projection of an employee left-joined against
// its department. The department columns are pointers so a dangling
// department_id scans as nil rather than failing the listing.
type Row struct {
	ID             int64     `gorm:"column:id"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Email          string    `gorm:"column:email"`
	DOB            time.Time `gorm:"column:dob"`
	Salary         float64   `gorm:"column:salary"`
	DepartmentID   int64     `gorm:"column:department_id"`
	DepartmentName *string   `gorm:"column:department_name"`
	DepartmentCode *string   `gorm:"column:department_code"`
}
