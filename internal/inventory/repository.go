package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
)

// Repository defines persistence operations for vehicles and transfers.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	SearchVehicles(ctx context.Context, filters SearchFilters) ([]VehicleListing, error)
	GetVehicle(ctx context.Context, vin string) (*VehicleRecord, error)
	ListModels(ctx context.Context) ([]models.Model, error)
	ListDealerships(ctx context.Context) ([]models.Dealership, error)
	CreateTransfer(ctx context.Context, transfer *models.InventoryTransfer) error
	ListTransfers(ctx context.Context) ([]TransferRecord, error)
}

const vehicleListingQuery = `
SELECT v.vin, m.model_name, v.model_year, v.color, v.mileage, v.price, v.available, d.name AS dealership
FROM vehicles v
JOIN models m ON v.model_id = m.model_id
JOIN dealerships d ON v.dealership_id = d.dealership_id
%s
ORDER BY v.price ASC
`

const vehicleDetailQuery = `
SELECT v.vin, m.model_name, v.model_year, v.color, v.mileage, v.price, v.available, v.features,
       d.name AS dealership, d.city, d.state
FROM vehicles v
JOIN models m ON v.model_id = m.model_id
JOIN dealerships d ON v.dealership_id = d.dealership_id
WHERE v.vin = ?
`

const transferLedgerQuery = `
SELECT it.transfer_id, it.vin, it.transfer_date, it.status,
       d_from.name AS from_dealership, d_to.name AS to_dealership
FROM inventory_transfers it
JOIN dealerships d_from ON it.from_dealership_id = d_from.dealership_id
JOIN dealerships d_to ON it.to_dealership_id = d_to.dealership_id
ORDER BY it.transfer_date DESC, it.transfer_id DESC
`

type repository struct {
	base baserepo.Base
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: baserepo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: baserepo.NewBase(tx)}
}

func (r *repository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return r.base.DB(ctx).Create(vehicle).Error
}

func (r *repository) SearchVehicles(ctx context.Context, filters SearchFilters) ([]VehicleListing, error) {
	where, args := whereClause(filters.Predicates())

	var rows []VehicleListing
	query := fmt.Sprintf(vehicleListingQuery, where)
	if err := r.base.DB(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) GetVehicle(ctx context.Context, vin string) (*VehicleRecord, error) {
	var row VehicleRecord
	result := r.base.DB(ctx).Raw(vehicleDetailQuery, vin).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) ListModels(ctx context.Context) ([]models.Model, error) {
	var rows []models.Model
	if err := r.base.DB(ctx).Order("model_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListDealerships(ctx context.Context) ([]models.Dealership, error) {
	var rows []models.Dealership
	if err := r.base.DB(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateTransfer(ctx context.Context, transfer *models.InventoryTransfer) error {
	return r.base.DB(ctx).Create(transfer).Error
}

func (r *repository) ListTransfers(ctx context.Context) ([]TransferRecord, error) {
	var rows []TransferRecord
	if err := r.base.DB(ctx).Raw(transferLedgerQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
