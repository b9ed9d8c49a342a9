package financing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

// Service defines operations on lenders, financing plans and loans.
type Service interface {
	ListLenders(ctx context.Context) ([]models.Lender, error)
	ListPlans(ctx context.Context) ([]PlanRecord, error)
	CreateLoan(ctx context.Context, input CreateLoanInput) (*models.Loan, error)
	ListLoans(ctx context.Context) ([]LoanRecord, error)
}

// CreateLoanInput captures the fields a new loan requires.
type CreateLoanInput struct {
	SaleID      int64            `json:"sale_id"`
	PlanID      int64            `json:"plan_id"`
	Principal   decimal.Decimal  `json:"principal"`
	DownPayment decimal.Decimal  `json:"down_payment"`
	StartDate   time.Time        `json:"start_date"`
	Status      enums.LoanStatus `json:"status"`
}

func (in CreateLoanInput) validate() error {
	fields := map[string]string{}
	if in.SaleID <= 0 {
		fields["sale_id"] = "is required"
	}
	if in.PlanID <= 0 {
		fields["plan_id"] = "is required"
	}
	if in.Principal.IsNegative() {
		fields["principal"] = "must not be negative"
	}
	if in.DownPayment.IsNegative() {
		fields["down_payment"] = "must not be negative"
	}
	if in.StartDate.IsZero() {
		fields["start_date"] = "is required"
	}
	if !in.Status.IsValid() {
		fields["status"] = fmt.Sprintf("must be one of active, paid_off, defaulted; got %q", in.Status)
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid loan").WithDetails(fields)
	}
	return nil
}

type service struct {
	repo Repository
}

// NewService wires a financing service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("financing repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListLenders(ctx context.Context) ([]models.Lender, error) {
	rows, err := s.repo.ListLenders(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "lenders")
	}
	return rows, nil
}

func (s *service) ListPlans(ctx context.Context) ([]PlanRecord, error) {
	rows, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "financing plans")
	}
	return rows, nil
}

func (s *service) CreateLoan(ctx context.Context, input CreateLoanInput) (*models.Loan, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	loan := &models.Loan{
		SaleID:      input.SaleID,
		PlanID:      input.PlanID,
		Principal:   input.Principal,
		DownPayment: input.DownPayment,
		StartDate:   input.StartDate,
		Status:      input.Status,
	}

	if err := s.repo.CreateLoan(ctx, loan); err != nil {
		return nil, baserepo.MapWriteError(err, "loan")
	}
	return loan, nil
}

func (s *service) ListLoans(ctx context.Context) ([]LoanRecord, error) {
	rows, err := s.repo.ListLoans(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "loans")
	}
	return rows, nil
}
