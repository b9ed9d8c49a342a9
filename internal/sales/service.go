package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

// Service defines operations on the sales side of the system.
type Service interface {
	CreateSale(ctx context.Context, input CreateSaleInput) (*models.Sale, error)
	ListSales(ctx context.Context) ([]SaleRecord, error)
	CreateTradeIn(ctx context.Context, input CreateTradeInInput) (*models.TradeIn, error)
	ListTradeIns(ctx context.Context) ([]models.TradeIn, error)
}

// TxRunner runs a function inside a single database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams wires the sale service dependencies.
type ServiceParams struct {
	Repo Repository
	Tx   TxRunner

	// MarkVehicleSold couples every sale insert with flipping the vehicle's
	// availability flag in the same transaction. The legacy system left the
	// flag untouched, so this is opt-in.
	MarkVehicleSold bool
}

// CreateSaleInput captures the fields a new sale requires.
type CreateSaleInput struct {
	VIN        string          `json:"vin"`
	CustomerID int64           `json:"customer_id"`
	EmployeeID int64           `json:"employee_id"`
	SaleDate   time.Time       `json:"sale_date"`
	SalePrice  decimal.Decimal `json:"sale_price"`
}

func (in CreateSaleInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.VIN) == "" {
		fields["vin"] = "is required"
	}
	if in.CustomerID <= 0 {
		fields["customer_id"] = "is required"
	}
	if in.EmployeeID <= 0 {
		fields["employee_id"] = "is required"
	}
	if in.SaleDate.IsZero() {
		fields["sale_date"] = "is required"
	}
	if in.SalePrice.IsNegative() {
		fields["sale_price"] = "must not be negative"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid sale").WithDetails(fields)
	}
	return nil
}

// CreateTradeInInput captures the fields a new trade-in requires. VIN is
// optional because most traded vehicles were never in inventory.
type CreateTradeInInput struct {
	SaleID    int64           `json:"sale_id"`
	VIN       *string         `json:"vin"`
	Make      string          `json:"make"`
	Model     string          `json:"model"`
	ModelYear int             `json:"model_year"`
	Mileage   decimal.Decimal `json:"mileage"`
	Allowance decimal.Decimal `json:"allowance"`
}

func (in CreateTradeInInput) validate() error {
	fields := map[string]string{}
	if in.SaleID <= 0 {
		fields["sale_id"] = "is required"
	}
	if in.VIN != nil && strings.TrimSpace(*in.VIN) == "" {
		fields["vin"] = "must be omitted or non-empty"
	}
	if strings.TrimSpace(in.Make) == "" {
		fields["make"] = "is required"
	}
	if strings.TrimSpace(in.Model) == "" {
		fields["model"] = "is required"
	}
	if in.ModelYear < 1900 {
		fields["model_year"] = "must be a four-digit year"
	}
	if in.Mileage.IsNegative() {
		fields["mileage"] = "must not be negative"
	}
	if in.Allowance.IsNegative() {
		fields["allowance"] = "must not be negative"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid trade-in").WithDetails(fields)
	}
	return nil
}

type service struct {
	repo            Repository
	tx              TxRunner
	markVehicleSold bool
}

// NewService wires a sales service from the provided params.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:            params.Repo,
		tx:              params.Tx,
		markVehicleSold: params.MarkVehicleSold,
	}, nil
}

// CreateSale inserts the sale in a single transaction. When the coupling
// flag is on, the vehicle's availability flag is flipped in the same
// transaction, so either both writes land or neither does.
func (s *service) CreateSale(ctx context.Context, input CreateSaleInput) (*models.Sale, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	sale := &models.Sale{
		VIN:        input.VIN,
		CustomerID: input.CustomerID,
		EmployeeID: input.EmployeeID,
		SaleDate:   input.SaleDate,
		SalePrice:  input.SalePrice,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.CreateSale(ctx, sale); err != nil {
			return err
		}
		if s.markVehicleSold {
			return txRepo.MarkVehicleSold(ctx, sale.VIN)
		}
		return nil
	})
	if err != nil {
		return nil, baserepo.MapWriteError(err, "sale")
	}
	return sale, nil
}

func (s *service) ListSales(ctx context.Context) ([]SaleRecord, error) {
	rows, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "sales")
	}
	return rows, nil
}

func (s *service) CreateTradeIn(ctx context.Context, input CreateTradeInInput) (*models.TradeIn, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tradeIn := &models.TradeIn{
		SaleID:    input.SaleID,
		VIN:       input.VIN,
		Make:      input.Make,
		Model:     input.Model,
		ModelYear: input.ModelYear,
		Mileage:   input.Mileage,
		Allowance: input.Allowance,
	}

	if err := s.repo.CreateTradeIn(ctx, tradeIn); err != nil {
		return nil, baserepo.MapWriteError(err, "trade-in")
	}
	return tradeIn, nil
}

func (s *service) ListTradeIns(ctx context.Context) ([]models.TradeIn, error) {
	rows, err := s.repo.ListTradeIns(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "trade-ins")
	}
	return rows, nil
}
