package servicing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

// Service defines operations on the workshop side of the system.
type Service interface {
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*models.ServiceAppointment, error)
	HistoryByVIN(ctx context.Context, vin string) ([]HistoryEntry, error)
	ListInvoices(ctx context.Context) ([]InvoiceRecord, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*models.ServiceItem, error)
}

// CreateAppointmentInput captures the fields a new appointment requires.
type CreateAppointmentInput struct {
	VIN         string    `json:"vin"`
	CustomerID  int64     `json:"customer_id"`
	ServiceDate time.Time `json:"service_date"`
	ServiceType string    `json:"service_type"`
}

func (in CreateAppointmentInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.VIN) == "" {
		fields["vin"] = "is required"
	}
	if in.CustomerID <= 0 {
		fields["customer_id"] = "is required"
	}
	if in.ServiceDate.IsZero() {
		fields["service_date"] = "is required"
	}
	if strings.TrimSpace(in.ServiceType) == "" {
		fields["service_type"] = "is required"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid service appointment").WithDetails(fields)
	}
	return nil
}

// CreateItemInput captures one invoice line item.
type CreateItemInput struct {
	InvoiceID   int64           `json:"invoice_id"`
	Description string          `json:"description"`
	LaborHours  decimal.Decimal `json:"labor_hours"`
	PartCost    decimal.Decimal `json:"part_cost"`
	LaborRate   decimal.Decimal `json:"labor_rate"`
}

func (in CreateItemInput) validate() error {
	fields := map[string]string{}
	if in.InvoiceID <= 0 {
		fields["invoice_id"] = "is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "is required"
	}
	if in.LaborHours.IsNegative() {
		fields["labor_hours"] = "must not be negative"
	}
	if in.PartCost.IsNegative() {
		fields["part_cost"] = "must not be negative"
	}
	if in.LaborRate.IsNegative() {
		fields["labor_rate"] = "must not be negative"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid service item").WithDetails(fields)
	}
	return nil
}

// InvoiceRecord is an invoice with its line items attached.
type InvoiceRecord struct {
	InvoiceRow
	Items []models.ServiceItem `json:"items"`
}

type service struct {
	repo Repository
}

// NewService wires a servicing service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("servicing repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*models.ServiceAppointment, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	appt := &models.ServiceAppointment{
		VIN:         input.VIN,
		CustomerID:  input.CustomerID,
		ServiceDate: input.ServiceDate,
		ServiceType: input.ServiceType,
	}

	if err := s.repo.CreateAppointment(ctx, appt); err != nil {
		return nil, baserepo.MapWriteError(err, "service appointment")
	}
	return appt, nil
}

func (s *service) HistoryByVIN(ctx context.Context, vin string) ([]HistoryEntry, error) {
	if strings.TrimSpace(vin) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vin is required")
	}
	rows, err := s.repo.HistoryByVIN(ctx, vin)
	if err != nil {
		return nil, baserepo.MapReadError(err, "service history")
	}
	return rows, nil
}

// ListInvoices returns the invoice ledger with line items grouped under
// their invoice, newest appointment first.
func (s *service) ListInvoices(ctx context.Context) ([]InvoiceRecord, error) {
	invoices, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "service invoices")
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "service items")
	}

	byInvoice := make(map[int64][]models.ServiceItem, len(invoices))
	for _, item := range items {
		byInvoice[item.InvoiceID] = append(byInvoice[item.InvoiceID], item)
	}

	records := make([]InvoiceRecord, 0, len(invoices))
	for _, inv := range invoices {
		records = append(records, InvoiceRecord{
			InvoiceRow: inv,
			Items:      byInvoice[inv.InvoiceID],
		})
	}
	return records, nil
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*models.ServiceItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := &models.ServiceItem{
		InvoiceID:   input.InvoiceID,
		Description: input.Description,
		LaborHours:  input.LaborHours,
		PartCost:    input.PartCost,
		LaborRate:   input.LaborRate,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, baserepo.MapWriteError(err, "service item")
	}
	return item, nil
}
