package models

// Customer is a buyer or service client.
type Customer struct {
	CustomerID int64  `gorm:"column:customer_id;primaryKey;autoIncrement"`
	FullName   string `gorm:"column:full_name;not null"`
}
