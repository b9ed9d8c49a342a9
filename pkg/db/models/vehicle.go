package models

import "github.com/shopspring/decimal"

// Vehicle is an inventory unit keyed by its VIN. Available starts true and is
// flipped to false once the unit is sold; it is never reset automatically.
type Vehicle struct {
	VIN          string          `gorm:"column:vin;primaryKey"`
	ModelID      int64           `gorm:"column:model_id;not null"`
	DealershipID int64           `gorm:"column:dealership_id;not null"`
	ModelYear    int             `gorm:"column:model_year;not null"`
	Color        string          `gorm:"column:color;not null"`
	Mileage      decimal.Decimal `gorm:"column:mileage;type:numeric(10,1);not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Available    bool            `gorm:"column:available;not null"`
	Features     *string         `gorm:"column:features"`
}
