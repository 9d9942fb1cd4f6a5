package department

// Department is the persistence row for the departments table.
type Department struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Code string `gorm:"column:code;not null"`
	Name string `gorm:"column:name;not null"`
}

func (Department) TableName() string {
	return "departments"
}
