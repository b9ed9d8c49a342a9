package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

// SaleRecord is one row of the sales ledger with vehicle and people resolved.
type SaleRecord struct {
	SaleID    int64           `json:"sale_id"`
	SaleDate  time.Time       `json:"sale_date"`
	SalePrice decimal.Decimal `json:"sale_price"`
	VIN       string          `json:"vin"`
	ModelName string          `json:"model_name"`
	Customer  string          `json:"customer"`
	Employee  string          `json:"employee"`
}

// Repository manages persistence for sales and trade-ins.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateSale(ctx context.Context, sale *models.Sale) error
	ListSales(ctx context.Context) ([]SaleRecord, error)
	MarkVehicleSold(ctx context.Context, vin string) error
	CreateTradeIn(ctx context.Context, tradeIn *models.TradeIn) error
	ListTradeIns(ctx context.Context) ([]models.TradeIn, error)
}

const salesLedgerQuery = `
SELECT s.sale_id, s.sale_date, s.sale_price, v.vin, m.model_name,
       c.full_name AS customer, e.full_name AS employee
FROM sales s
JOIN vehicles v ON s.vin = v.vin
JOIN models m ON v.model_id = m.model_id
JOIN customers c ON s.customer_id = c.customer_id
JOIN employees e ON s.employee_id = e.employee_id
ORDER BY s.sale_date DESC, s.sale_id DESC
`

type repository struct {
	base baserepo.Base
}

// NewRepository returns a sales repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: baserepo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: baserepo.NewBase(tx)}
}

func (r *repository) CreateSale(ctx context.Context, sale *models.Sale) error {
	return r.base.DB(ctx).Create(sale).Error
}

func (r *repository) ListSales(ctx context.Context) ([]SaleRecord, error) {
	var rows []SaleRecord
	if err := r.base.DB(ctx).Raw(salesLedgerQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) MarkVehicleSold(ctx context.Context, vin string) error {
	return r.base.DB(ctx).
		Model(&models.Vehicle{}).
		Where("vin = ?", vin).
		Update("available", false).Error
}

func (r *repository) CreateTradeIn(ctx context.Context, tradeIn *models.TradeIn) error {
	return r.base.DB(ctx).Create(tradeIn).Error
}

func (r *repository) ListTradeIns(ctx context.Context) ([]models.TradeIn, error) {
	var rows []models.TradeIn
	if err := r.base.DB(ctx).Order("trade_in_id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
