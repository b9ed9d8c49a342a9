package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/api/validators"
	"github.com/apexmotors/dealerdesk-backend/internal/inventory"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

type createVehiclePayload struct {
	VIN          string          `json:"vin" validate:"required"`
	ModelID      int64           `json:"model_id" validate:"required"`
	DealershipID int64           `json:"dealership_id" validate:"required"`
	ModelYear    int             `json:"model_year" validate:"required"`
	Color        string          `json:"color" validate:"required"`
	Mileage      decimal.Decimal `json:"mileage"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Available    bool            `json:"available"`
	Features     *string         `json:"features"`
}

// VehicleSearch lists inventory, narrowed by any combination of the model,
// dealership, and availability filters. No filters means the full inventory.
func VehicleSearch(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		modelID, err := validators.ParseQueryID(r, "model_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		dealershipID, err := validators.ParseQueryID(r, "dealership_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		availableOnly, err := validators.ParseQueryBool(r, "available_only")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		listings, err := svc.Search(ctx, inventory.SearchFilters{
			ModelID:       modelID,
			DealershipID:  dealershipID,
			AvailableOnly: availableOnly,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"vehicles": listings})
	}
}

// VehicleDetail returns one vehicle with its reviews and service history.
func VehicleDetail(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		vin := chi.URLParam(r, "vin")
		if logg != nil {
			ctx = logg.WithVIN(ctx, vin)
		}

		detail, err := svc.GetVehicleDetail(ctx, vin)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

func VehicleCreate(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createVehiclePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		vehicle, err := svc.CreateVehicle(ctx, inventory.CreateVehicleInput{
			VIN:          payload.VIN,
			ModelID:      payload.ModelID,
			DealershipID: payload.DealershipID,
			ModelYear:    payload.ModelYear,
			Color:        payload.Color,
			Mileage:      payload.Mileage,
			Price:        payload.Price,
			Available:    payload.Available,
			Features:     payload.Features,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, vehicle)
	}
}

func ModelList(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		rows, err := svc.ListModels(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"models": rows})
	}
}

func DealershipList(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		rows, err := svc.ListDealerships(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"dealerships": rows})
	}
}
