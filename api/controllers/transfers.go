package controllers

import (
	"net/http"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/api/validators"
	"github.com/apexmotors/dealerdesk-backend/internal/inventory"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

type createTransferPayload struct {
	VIN              string `json:"vin" validate:"required"`
	FromDealershipID int64  `json:"from_dealership_id" validate:"required"`
	ToDealershipID   int64  `json:"to_dealership_id" validate:"required"`
	TransferDate     string `json:"transfer_date" validate:"required,datetime=2006-01-02"`
	Status           string `json:"status" validate:"required"`
}

func TransferCreate(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createTransferPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		transferDate, err := validators.ParseDate("transfer_date", payload.TransferDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		transfer, err := svc.CreateTransfer(ctx, inventory.CreateTransferInput{
			VIN:              payload.VIN,
			FromDealershipID: payload.FromDealershipID,
			ToDealershipID:   payload.ToDealershipID,
			TransferDate:     transferDate,
			Status:           enums.TransferStatus(payload.Status),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, transfer)
	}
}

func TransferList(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		rows, err := svc.ListTransfers(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"transfers": rows})
	}
}
