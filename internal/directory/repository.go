package directory

import (
	"context"

	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

// Repository exposes the people lists used to populate forms and pickers.
type Repository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}

type repository struct {
	base baserepo.Base
}

// NewRepository returns a directory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: baserepo.NewBase(db)}
}

func (r *repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	if err := r.base.DB(ctx).Order("full_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var rows []models.Employee
	if err := r.base.DB(ctx).Order("full_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
