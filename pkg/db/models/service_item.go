package models

import "github.com/shopspring/decimal"

// ServiceItem is one line on a service invoice.
type ServiceItem struct {
	ItemID      int64           `gorm:"column:item_id;primaryKey;autoIncrement"`
	InvoiceID   int64           `gorm:"column:invoice_id;not null"`
	Description string          `gorm:"column:description;not null"`
	LaborHours  decimal.Decimal `gorm:"column:labor_hours;type:numeric(6,2);not null"`
	PartCost    decimal.Decimal `gorm:"column:part_cost;type:numeric(12,2);not null"`
	LaborRate   decimal.Decimal `gorm:"column:labor_rate;type:numeric(8,2);not null"`
}
