package models

import "github.com/shopspring/decimal"

// FinancingPlan is a lender's loan product.
type FinancingPlan struct {
	PlanID         int64           `gorm:"column:plan_id;primaryKey;autoIncrement"`
	LenderID       int64           `gorm:"column:lender_id;not null"`
	PlanName       string          `gorm:"column:plan_name;not null"`
	APR            decimal.Decimal `gorm:"column:apr;type:numeric(5,2);not null"`
	TermMonths     int             `gorm:"column:term_months;not null"`
	MinDownPayment decimal.Decimal `gorm:"column:min_down_payment;type:numeric(12,2);not null"`
}
