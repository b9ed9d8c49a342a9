package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

type stubSalesRepo struct {
	createdSale    *models.Sale
	createErr      error
	markedVIN      string
	markErr        error
	saleRows       []SaleRecord
	createdTradeIn *models.TradeIn
	tradeInErr     error
	tradeInRows    []models.TradeIn
}

func (s *stubSalesRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubSalesRepo) CreateSale(ctx context.Context, sale *models.Sale) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.createdSale = sale
	return nil
}

func (s *stubSalesRepo) ListSales(ctx context.Context) ([]SaleRecord, error) {
	return s.saleRows, nil
}

func (s *stubSalesRepo) MarkVehicleSold(ctx context.Context, vin string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.markedVIN = vin
	return nil
}

func (s *stubSalesRepo) CreateTradeIn(ctx context.Context, tradeIn *models.TradeIn) error {
	if s.tradeInErr != nil {
		return s.tradeInErr
	}
	s.createdTradeIn = tradeIn
	return nil
}

func (s *stubSalesRepo) ListTradeIns(ctx context.Context) ([]models.TradeIn, error) {
	return s.tradeInRows, nil
}

type stubTxRunner struct {
	calls int
	err   error
}

func (s *stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return fn(nil)
}

func validSaleInput() CreateSaleInput {
	return CreateSaleInput{
		VIN:        "1HGCM82633A004352",
		CustomerID: 3,
		EmployeeID: 5,
		SaleDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		SalePrice:  decimal.RequireFromString("27999.00"),
	}
}

func TestCreateSale(t *testing.T) {
	repo := &stubSalesRepo{}
	tx := &stubTxRunner{}
	svc, err := NewService(ServiceParams{Repo: repo, Tx: tx})
	if err != nil {
		t.Fatal(err)
	}

	sale, err := svc.CreateSale(context.Background(), validSaleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.calls != 1 {
		t.Fatalf("expected one transaction, got %d", tx.calls)
	}
	if repo.createdSale == nil {
		t.Fatal("expected sale to be persisted")
	}
	if repo.markedVIN != "" {
		t.Fatalf("availability must stay untouched by default, marked %q", repo.markedVIN)
	}
	if sale.VIN != "1HGCM82633A004352" {
		t.Fatalf("unexpected vin %q", sale.VIN)
	}
}

func TestCreateSaleMarksVehicleSoldWhenEnabled(t *testing.T) {
	repo := &stubSalesRepo{}
	svc, err := NewService(ServiceParams{Repo: repo, Tx: &stubTxRunner{}, MarkVehicleSold: true})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.CreateSale(context.Background(), validSaleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.markedVIN != "1HGCM82633A004352" {
		t.Fatalf("expected availability flip for the sold vin, got %q", repo.markedVIN)
	}
}

func TestCreateSaleMarkFailureAbortsTransaction(t *testing.T) {
	repo := &stubSalesRepo{markErr: errors.New("FOREIGN KEY constraint failed")}
	svc, err := NewService(ServiceParams{Repo: repo, Tx: &stubTxRunner{}, MarkVehicleSold: true})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.CreateSale(context.Background(), validSaleInput())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCreateSaleUnknownVINIsReferential(t *testing.T) {
	repo := &stubSalesRepo{createErr: errors.New("insert or update on table \"sales\" violates foreign key constraint (SQLSTATE 23503): FOREIGN KEY constraint failed")}
	svc, err := NewService(ServiceParams{Repo: repo, Tx: &stubTxRunner{}})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.CreateSale(context.Background(), validSaleInput())
	if err == nil {
		t.Fatal("expected referential error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeReferential {
		t.Fatalf("expected referential code, got %v", err)
	}
}

func TestCreateSaleValidation(t *testing.T) {
	repo := &stubSalesRepo{}
	tx := &stubTxRunner{}
	svc, err := NewService(ServiceParams{Repo: repo, Tx: tx})
	if err != nil {
		t.Fatal(err)
	}

	input := validSaleInput()
	input.VIN = ""
	input.SalePrice = decimal.RequireFromString("-1")

	_, err = svc.CreateSale(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if tx.calls != 0 {
		t.Fatal("storage must not be touched on validation failure")
	}
}

func TestCreateTradeInWithoutVIN(t *testing.T) {
	repo := &stubSalesRepo{}
	svc, err := NewService(ServiceParams{Repo: repo, Tx: &stubTxRunner{}})
	if err != nil {
		t.Fatal(err)
	}

	tradeIn, err := svc.CreateTradeIn(context.Background(), CreateTradeInInput{
		SaleID:    9,
		Make:      "Hawthorn",
		Model:     "Estate",
		ModelYear: 2014,
		Mileage:   decimal.NewFromInt(98000),
		Allowance: decimal.RequireFromString("4200.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tradeIn.VIN != nil {
		t.Fatalf("expected nil vin, got %v", tradeIn.VIN)
	}
	if repo.createdTradeIn == nil {
		t.Fatal("expected trade-in to be persisted")
	}
}

func TestCreateTradeInEmptyVINRejected(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: &stubSalesRepo{}, Tx: &stubTxRunner{}})
	if err != nil {
		t.Fatal(err)
	}

	blank := "   "
	_, err = svc.CreateTradeIn(context.Background(), CreateTradeInInput{
		SaleID:    9,
		VIN:       &blank,
		Make:      "Hawthorn",
		Model:     "Estate",
		ModelYear: 2014,
		Mileage:   decimal.NewFromInt(98000),
		Allowance: decimal.RequireFromString("4200.00"),
	})
	if err == nil {
		t.Fatal("expected validation error")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}
