package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apexmotors/dealerdesk-backend/api/responses"
	"github.com/apexmotors/dealerdesk-backend/api/validators"
	"github.com/apexmotors/dealerdesk-backend/internal/reviews"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
)

type createReviewPayload struct {
	CustomerID int64  `json:"customer_id" validate:"required"`
	VIN        string `json:"vin" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
	ReviewDate string `json:"review_date" validate:"required,datetime=2006-01-02"`
}

func ReviewCreate(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		var payload createReviewPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		reviewDate, err := validators.ParseDate("review_date", payload.ReviewDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		review, err := svc.CreateReview(ctx, reviews.CreateReviewInput{
			CustomerID: payload.CustomerID,
			VIN:        payload.VIN,
			Rating:     payload.Rating,
			ReviewText: payload.ReviewText,
			ReviewDate: reviewDate,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

// VehicleReviews lists a vehicle's reviews, newest first.
func VehicleReviews(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		vin := chi.URLParam(r, "vin")
		if logg != nil {
			ctx = logg.WithVIN(ctx, vin)
		}

		rows, err := svc.ListByVIN(ctx, vin)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"reviews": rows})
	}
}
