package reviews

import (
	"context"
	"fmt"
	"strings"
	"time"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Service defines operations on vehicle reviews.
type Service interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*models.Review, error)
	ListByVIN(ctx context.Context, vin string) ([]VehicleReview, error)
}

// CreateReviewInput captures the fields a new review requires.
type CreateReviewInput struct {
	CustomerID int64     `json:"customer_id"`
	VIN        string    `json:"vin"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	ReviewDate time.Time `json:"review_date"`
}

func (in CreateReviewInput) validate() error {
	fields := map[string]string{}
	if in.CustomerID <= 0 {
		fields["customer_id"] = "is required"
	}
	if strings.TrimSpace(in.VIN) == "" {
		fields["vin"] = "is required"
	}
	if in.Rating < RatingMin || in.Rating > RatingMax {
		fields["rating"] = fmt.Sprintf("must be between %d and %d", RatingMin, RatingMax)
	}
	if strings.TrimSpace(in.ReviewText) == "" {
		fields["review_text"] = "is required"
	}
	if in.ReviewDate.IsZero() {
		fields["review_date"] = "is required"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid review").WithDetails(fields)
	}
	return nil
}

type service struct {
	repo Repository
}

// NewService wires a review service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateReview(ctx context.Context, input CreateReviewInput) (*models.Review, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	review := &models.Review{
		CustomerID: input.CustomerID,
		VIN:        input.VIN,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		ReviewDate: input.ReviewDate,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, baserepo.MapWriteError(err, "review")
	}
	return review, nil
}

func (s *service) ListByVIN(ctx context.Context, vin string) ([]VehicleReview, error) {
	if strings.TrimSpace(vin) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vin is required")
	}
	rows, err := s.repo.ListByVIN(ctx, vin)
	if err != nil {
		return nil, baserepo.MapReadError(err, "reviews")
	}
	return rows, nil
}
