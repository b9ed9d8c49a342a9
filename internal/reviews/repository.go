package reviews

import (
	"context"
	"time"

	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

// VehicleReview is one row of a vehicle's review list with the reviewer's
// name resolved.
type VehicleReview struct {
	ReviewID   int64     `json:"review_id"`
	FullName   string    `json:"full_name"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	ReviewDate time.Time `json:"review_date"`
}

// Repository manages persistence for vehicle reviews.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, review *models.Review) error
	ListByVIN(ctx context.Context, vin string) ([]VehicleReview, error)
}

const reviewsByVINQuery = `
SELECT r.review_id, c.full_name, r.rating, r.review_text, r.review_date
FROM reviews r
JOIN customers c ON r.customer_id = c.customer_id
WHERE r.vin = ?
ORDER BY r.review_date DESC, r.review_id DESC
`

type repository struct {
	base baserepo.Base
}

// NewRepository returns a review repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: baserepo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: baserepo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, review *models.Review) error {
	return r.base.DB(ctx).Create(review).Error
}

func (r *repository) ListByVIN(ctx context.Context, vin string) ([]VehicleReview, error) {
	var rows []VehicleReview
	if err := r.base.DB(ctx).Raw(reviewsByVINQuery, vin).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
