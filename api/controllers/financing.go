package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/api/validators"
	"github.com/apexmotors/dealerdesk-backend/internal/financing"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

type createLoanPayload struct {
	SaleID      int64           `json:"sale_id" validate:"required"`
	PlanID      int64           `json:"plan_id" validate:"required"`
	Principal   decimal.Decimal `json:"principal" validate:"required"`
	DownPayment decimal.Decimal `json:"down_payment"`
	StartDate   string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	Status      string          `json:"status" validate:"required,oneof=active paid_off defaulted"`
}

func LenderList(svc financing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "financing service unavailable"))
			return
		}

		rows, err := svc.ListLenders(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"lenders": rows})
	}
}

func PlanList(svc financing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "financing service unavailable"))
			return
		}

		rows, err := svc.ListPlans(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"financing_plans": rows})
	}
}

func LoanCreate(svc financing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "financing service unavailable"))
			return
		}

		var payload createLoanPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		startDate, err := validators.ParseDate("start_date", payload.StartDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		loan, err := svc.CreateLoan(ctx, financing.CreateLoanInput{
			SaleID:      payload.SaleID,
			PlanID:      payload.PlanID,
			Principal:   payload.Principal,
			DownPayment: payload.DownPayment,
			StartDate:   startDate,
			Status:      enums.LoanStatus(payload.Status),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, loan)
	}
}

func LoanList(svc financing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "financing service unavailable"))
			return
		}

		rows, err := svc.ListLoans(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"loans": rows})
	}
}
