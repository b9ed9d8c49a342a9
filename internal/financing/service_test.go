package financing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

type stubFinancingRepo struct {
	lenders     []models.Lender
	plans       []PlanRecord
	createdLoan *models.Loan
	createErr   error
	loans       []LoanRecord
}

func (s *stubFinancingRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubFinancingRepo) ListLenders(ctx context.Context) ([]models.Lender, error) {
	return s.lenders, nil
}

func (s *stubFinancingRepo) ListPlans(ctx context.Context) ([]PlanRecord, error) {
	return s.plans, nil
}

func (s *stubFinancingRepo) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.createdLoan = loan
	return nil
}

func (s *stubFinancingRepo) ListLoans(ctx context.Context) ([]LoanRecord, error) {
	return s.loans, nil
}

func validLoanInput() CreateLoanInput {
	return CreateLoanInput{
		SaleID:      12,
		PlanID:      3,
		Principal:   decimal.RequireFromString("24000.00"),
		DownPayment: decimal.RequireFromString("4000.00"),
		StartDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:      enums.LoanStatusActive,
	}
}

func TestCreateLoan(t *testing.T) {
	repo := &stubFinancingRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatal(err)
	}

	loan, err := svc.CreateLoan(context.Background(), validLoanInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loan.Status != enums.LoanStatusActive {
		t.Fatalf("unexpected status %q", loan.Status)
	}
	if repo.createdLoan == nil {
		t.Fatal("expected loan to be persisted")
	}
}

func TestCreateLoanStatusOutsideClosedSet(t *testing.T) {
	repo := &stubFinancingRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatal(err)
	}

	input := validLoanInput()
	input.Status = enums.LoanStatus("closed")

	_, err = svc.CreateLoan(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if repo.createdLoan != nil {
		t.Fatal("storage must not be touched on validation failure")
	}
}

func TestCreateLoanNegativePrincipal(t *testing.T) {
	svc, err := NewService(&stubFinancingRepo{})
	if err != nil {
		t.Fatal(err)
	}

	input := validLoanInput()
	input.Principal = decimal.RequireFromString("-100")

	_, err = svc.CreateLoan(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}
