package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
)

// Loan finances a sale under a plan.
type Loan struct {
	LoanID      int64            `gorm:"column:loan_id;primaryKey;autoIncrement"`
	SaleID      int64            `gorm:"column:sale_id;not null"`
	PlanID      int64            `gorm:"column:plan_id;not null"`
	Principal   decimal.Decimal  `gorm:"column:principal;type:numeric(12,2);not null"`
	DownPayment decimal.Decimal  `gorm:"column:down_payment;type:numeric(12,2);not null"`
	StartDate   time.Time        `gorm:"column:start_date;type:date;not null"`
	Status      enums.LoanStatus `gorm:"column:status;not null"`
}
