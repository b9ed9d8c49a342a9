package models

// Employee is a dealership staff member.
type Employee struct {
	EmployeeID int64  `gorm:"column:employee_id;primaryKey;autoIncrement"`
	FullName   string `gorm:"column:full_name;not null"`
}
