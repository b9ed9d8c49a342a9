package servicing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

// HistoryEntry is one visit in a vehicle's service history.
type HistoryEntry struct {
	ServiceID   int64     `json:"service_id"`
	ServiceDate time.Time `json:"service_date"`
	ServiceType string    `json:"service_type"`
}

// InvoiceRow is a service invoice joined with its appointment.
type InvoiceRow struct {
	InvoiceID   int64           `json:"invoice_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Paid        bool            `json:"paid"`
	ServiceDate time.Time       `json:"service_date"`
	ServiceType string          `json:"service_type"`
	VIN         string          `json:"vin"`
}

// Repository manages persistence for service appointments, invoices and
// line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateAppointment(ctx context.Context, appt *models.ServiceAppointment) error
	HistoryByVIN(ctx context.Context, vin string) ([]HistoryEntry, error)
	ListInvoices(ctx context.Context) ([]InvoiceRow, error)
	ListItems(ctx context.Context) ([]models.ServiceItem, error)
	CreateItem(ctx context.Context, item *models.ServiceItem) error
}

const historyByVINQuery = `
SELECT s.service_id, s.service_date, s.service_type
FROM service_appointments s
WHERE s.vin = ?
ORDER BY s.service_date DESC, s.service_id DESC
`

const invoiceLedgerQuery = `
SELECT si.invoice_id, si.total_amount, si.paid,
       sa.service_date, sa.service_type, sa.vin
FROM service_invoices si
JOIN service_appointments sa ON si.service_id = sa.service_id
ORDER BY sa.service_date DESC, si.invoice_id DESC
`

type repository struct {
	base baserepo.Base
}

// NewRepository returns a servicing repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: baserepo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: baserepo.NewBase(tx)}
}

func (r *repository) CreateAppointment(ctx context.Context, appt *models.ServiceAppointment) error {
	return r.base.DB(ctx).Create(appt).Error
}

func (r *repository) HistoryByVIN(ctx context.Context, vin string) ([]HistoryEntry, error) {
	var rows []HistoryEntry
	if err := r.base.DB(ctx).Raw(historyByVINQuery, vin).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListInvoices(ctx context.Context) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	if err := r.base.DB(ctx).Raw(invoiceLedgerQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListItems(ctx context.Context) ([]models.ServiceItem, error) {
	var rows []models.ServiceItem
	if err := r.base.DB(ctx).Order("item_id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateItem(ctx context.Context, item *models.ServiceItem) error {
	return r.base.DB(ctx).Create(item).Error
}
