package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/api/validators"
	"github.com/apexmotors/dealerdesk-backend/internal/sales"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

type createSalePayload struct {
	VIN        string          `json:"vin" validate:"required"`
	CustomerID int64           `json:"customer_id" validate:"required"`
	EmployeeID int64           `json:"employee_id" validate:"required"`
	SaleDate   string          `json:"sale_date" validate:"required,datetime=2006-01-02"`
	SalePrice  decimal.Decimal `json:"sale_price" validate:"required"`
}

type createTradeInPayload struct {
	SaleID    int64           `json:"sale_id" validate:"required"`
	VIN       *string         `json:"vin"`
	Make      string          `json:"make" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	ModelYear int             `json:"model_year" validate:"required"`
	Mileage   decimal.Decimal `json:"mileage"`
	Allowance decimal.Decimal `json:"allowance" validate:"required"`
}

func SaleCreate(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		var payload createSalePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		saleDate, err := validators.ParseDate("sale_date", payload.SaleDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithVIN(ctx, payload.VIN)
		}

		sale, err := svc.CreateSale(ctx, sales.CreateSaleInput{
			VIN:        payload.VIN,
			CustomerID: payload.CustomerID,
			EmployeeID: payload.EmployeeID,
			SaleDate:   saleDate,
			SalePrice:  payload.SalePrice,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}

func SaleList(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		rows, err := svc.ListSales(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"sales": rows})
	}
}

func TradeInCreate(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		var payload createTradeInPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tradeIn, err := svc.CreateTradeIn(ctx, sales.CreateTradeInInput{
			SaleID:    payload.SaleID,
			VIN:       payload.VIN,
			Make:      payload.Make,
			Model:     payload.Model,
			ModelYear: payload.ModelYear,
			Mileage:   payload.Mileage,
			Allowance: payload.Allowance,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, tradeIn)
	}
}

func TradeInList(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		rows, err := svc.ListTradeIns(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"trade_ins": rows})
	}
}
