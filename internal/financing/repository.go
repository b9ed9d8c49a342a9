package financing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
)

// PlanRecord is a financing plan with its lender's name resolved.
type PlanRecord struct {
	PlanID         int64           `json:"plan_id"`
	PlanName       string          `json:"plan_name"`
	APR            decimal.Decimal `json:"apr"`
	TermMonths     int             `json:"term_months"`
	MinDownPayment decimal.Decimal `json:"min_down_payment"`
	Lender         string          `json:"lender"`
}

// LoanRecord is one row of the loan ledger with plan and lender resolved.
type LoanRecord struct {
	LoanID      int64            `json:"loan_id"`
	SaleID      int64            `json:"sale_id"`
	Principal   decimal.Decimal  `json:"principal"`
	DownPayment decimal.Decimal  `json:"down_payment"`
	StartDate   time.Time        `json:"start_date"`
	Status      enums.LoanStatus `json:"status"`
	PlanName    string           `json:"plan_name"`
	Lender      string           `json:"lender"`
}

// Repository manages persistence for lenders, plans and loans.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListLenders(ctx context.Context) ([]models.Lender, error)
	ListPlans(ctx context.Context) ([]PlanRecord, error)
	CreateLoan(ctx context.Context, loan *models.Loan) error
	ListLoans(ctx context.Context) ([]LoanRecord, error)
}

const planCatalogQuery = `
SELECT fp.plan_id, fp.plan_name, fp.apr, fp.term_months, fp.min_down_payment,
       l.name AS lender
FROM financing_plans fp
JOIN lenders l ON fp.lender_id = l.lender_id
ORDER BY l.name, fp.plan_name
`

const loanLedgerQuery = `
SELECT lo.loan_id, lo.sale_id, lo.principal, lo.down_payment, lo.start_date, lo.status,
       fp.plan_name, l.name AS lender
FROM loans lo
JOIN financing_plans fp ON lo.plan_id = fp.plan_id
JOIN lenders l ON fp.lender_id = l.lender_id
ORDER BY lo.start_date DESC, lo.loan_id DESC
`

type repository struct {
	base baserepo.Base
}

// NewRepository returns a financing repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: baserepo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: baserepo.NewBase(tx)}
}

func (r *repository) ListLenders(ctx context.Context) ([]models.Lender, error) {
	var rows []models.Lender
	if err := r.base.DB(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListPlans(ctx context.Context) ([]PlanRecord, error) {
	var rows []PlanRecord
	if err := r.base.DB(ctx).Raw(planCatalogQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateLoan(ctx context.Context, loan *models.Loan) error {
	return r.base.DB(ctx).Create(loan).Error
}

func (r *repository) ListLoans(ctx context.Context) ([]LoanRecord, error) {
	var rows []LoanRecord
	if err := r.base.DB(ctx).Raw(loanLedgerQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
