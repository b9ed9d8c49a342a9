package models

import "github.com/shopspring/decimal"

// ServiceInvoice bills a service appointment. TotalAmount is stored as
// provided; it is not recomputed from line items.
type ServiceInvoice struct {
	InvoiceID   int64           `gorm:"column:invoice_id;primaryKey;autoIncrement"`
	ServiceID   int64           `gorm:"column:service_id;not null"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Paid        bool            `gorm:"column:paid;not null;default:false"`
}
