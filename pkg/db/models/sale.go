package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a vehicle changing hands. A VIN is expected to appear here at
// most once, though the schema does not enforce it.
type Sale struct {
	SaleID     int64           `gorm:"column:sale_id;primaryKey;autoIncrement"`
	VIN        string          `gorm:"column:vin;not null"`
	CustomerID int64           `gorm:"column:customer_id;not null"`
	EmployeeID int64           `gorm:"column:employee_id;not null"`
	SaleDate   time.Time       `gorm:"column:sale_date;type:date;not null"`
	SalePrice  decimal.Decimal `gorm:"column:sale_price;type:numeric(12,2);not null"`
}
