package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/api/validators"
	"github.com/apexmotors/dealerdesk-backend/internal/servicing"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

type createAppointmentPayload struct {
	VIN         string `json:"vin" validate:"required"`
	CustomerID  int64  `json:"customer_id" validate:"required"`
	ServiceDate string `json:"service_date" validate:"required,datetime=2006-01-02"`
	ServiceType string `json:"service_type" validate:"required"`
}

type createItemPayload struct {
	InvoiceID   int64           `json:"invoice_id" validate:"required"`
	Description string          `json:"description" validate:"required"`
	LaborHours  decimal.Decimal `json:"labor_hours"`
	PartCost    decimal.Decimal `json:"part_cost"`
	LaborRate   decimal.Decimal `json:"labor_rate"`
}

func AppointmentCreate(svc servicing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "servicing service unavailable"))
			return
		}

		var payload createAppointmentPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		serviceDate, err := validators.ParseDate("service_date", payload.ServiceDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithVIN(ctx, payload.VIN)
		}

		appt, err := svc.CreateAppointment(ctx, servicing.CreateAppointmentInput{
			VIN:         payload.VIN,
			CustomerID:  payload.CustomerID,
			ServiceDate: serviceDate,
			ServiceType: payload.ServiceType,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, appt)
	}
}

// VehicleServiceHistory lists a vehicle's completed service visits, newest
// first.
func VehicleServiceHistory(svc servicing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "servicing service unavailable"))
			return
		}

		vin := chi.URLParam(r, "vin")
		if logg != nil {
			ctx = logg.WithVIN(ctx, vin)
		}

		rows, err := svc.HistoryByVIN(ctx, vin)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"service_history": rows})
	}
}

func InvoiceList(svc servicing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "servicing service unavailable"))
			return
		}

		rows, err := svc.ListInvoices(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"invoices": rows})
	}
}

func ItemCreate(svc servicing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "servicing service unavailable"))
			return
		}

		var payload createItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.CreateItem(ctx, servicing.CreateItemInput{
			InvoiceID:   payload.InvoiceID,
			Description: payload.Description,
			LaborHours:  payload.LaborHours,
			PartCost:    payload.PartCost,
			LaborRate:   payload.LaborRate,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}
