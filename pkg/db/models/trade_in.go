package models

import "github.com/shopspring/decimal"

// TradeIn is a vehicle surrendered against a sale. VIN is nullable because a
// traded vehicle usually never existed in inventory.
type TradeIn struct {
	TradeInID int64           `gorm:"column:trade_in_id;primaryKey;autoIncrement"`
	SaleID    int64           `gorm:"column:sale_id;not null"`
	VIN       *string         `gorm:"column:vin"`
	Make      string          `gorm:"column:make;not null"`
	Model     string          `gorm:"column:model;not null"`
	ModelYear int             `gorm:"column:model_year;not null"`
	Mileage   decimal.Decimal `gorm:"column:mileage;type:numeric(10,1);not null"`
	Allowance decimal.Decimal `gorm:"column:allowance;type:numeric(12,2);not null"`
}
