package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	baserepo "github.com/apexmotors/dealerdesk-backend/internal/repo"
	"github.com/apexmotors/dealerdesk-backend/internal/reviews"
	"github.com/apexmotors/dealerdesk-backend/internal/servicing"
	"github.com/apexmotors/dealerdesk-backend/pkg/db/models"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
	pkgerrors "github.com/apexmotors/dealerdesk-backend/pkg/errors"
)

// Service defines inventory operations: the vehicle search, listings,
// vehicle intake and inter-dealership transfers.
type Service interface {
	CreateVehicle(ctx context.Context, input CreateVehicleInput) (*models.Vehicle, error)
	Search(ctx context.Context, filters SearchFilters) ([]VehicleListing, error)
	GetVehicleDetail(ctx context.Context, vin string) (*VehicleDetail, error)
	ListModels(ctx context.Context) ([]models.Model, error)
	ListDealerships(ctx context.Context) ([]models.Dealership, error)
	CreateTransfer(ctx context.Context, input CreateTransferInput) (*models.InventoryTransfer, error)
	ListTransfers(ctx context.Context) ([]TransferRecord, error)
}

// ReviewSource supplies a vehicle's reviews for the detail view.
type ReviewSource interface {
	ListByVIN(ctx context.Context, vin string) ([]reviews.VehicleReview, error)
}

// HistorySource supplies a vehicle's service history for the detail view.
type HistorySource interface {
	HistoryByVIN(ctx context.Context, vin string) ([]servicing.HistoryEntry, error)
}

// CreateVehicleInput captures the fields a new inventory unit requires.
type CreateVehicleInput struct {
	VIN          string          `json:"vin"`
	ModelID      int64           `json:"model_id"`
	DealershipID int64           `json:"dealership_id"`
	ModelYear    int             `json:"model_year"`
	Color        string          `json:"color"`
	Mileage      decimal.Decimal `json:"mileage"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
	Features     *string         `json:"features"`
}

func (in CreateVehicleInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.VIN) == "" {
		fields["vin"] = "is required"
	}
	if in.ModelID <= 0 {
		fields["model_id"] = "is required"
	}
	if in.DealershipID <= 0 {
		fields["dealership_id"] = "is required"
	}
	if in.ModelYear < 1900 {
		fields["model_year"] = "must be a four-digit year"
	}
	if strings.TrimSpace(in.Color) == "" {
		fields["color"] = "is required"
	}
	if in.Mileage.IsNegative() {
		fields["mileage"] = "must not be negative"
	}
	if in.Price.IsNegative() {
		fields["price"] = "must not be negative"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid vehicle").WithDetails(fields)
	}
	return nil
}

// CreateTransferInput captures the fields a new transfer requires.
type CreateTransferInput struct {
	VIN              string               `json:"vin"`
	FromDealershipID int64                `json:"from_dealership_id"`
	ToDealershipID   int64                `json:"to_dealership_id"`
	TransferDate     time.Time            `json:"transfer_date"`
	Status           enums.TransferStatus `json:"status"`
}

func (in CreateTransferInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.VIN) == "" {
		fields["vin"] = "is required"
	}
	if in.FromDealershipID <= 0 {
		fields["from_dealership_id"] = "is required"
	}
	if in.ToDealershipID <= 0 {
		fields["to_dealership_id"] = "is required"
	}
	if in.TransferDate.IsZero() {
		fields["transfer_date"] = "is required"
	}
	if !in.Status.IsValid() {
		fields["status"] = fmt.Sprintf("must be one of pending, in_transit, completed, cancelled; got %q", in.Status)
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid transfer").WithDetails(fields)
	}
	return nil
}

type service struct {
	repo    Repository
	reviews ReviewSource
	history HistorySource
}

// NewService wires the inventory service with its repository and the review
// and service-history sources used by the detail view.
func NewService(repo Repository, reviewSource ReviewSource, historySource HistorySource) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if reviewSource == nil {
		return nil, fmt.Errorf("review source required")
	}
	if historySource == nil {
		return nil, fmt.Errorf("history source required")
	}
	return &service{repo: repo, reviews: reviewSource, history: historySource}, nil
}

func (s *service) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*models.Vehicle, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		VIN:          input.VIN,
		ModelID:      input.ModelID,
		DealershipID: input.DealershipID,
		ModelYear:    input.ModelYear,
		Color:        input.Color,
		Mileage:      input.Mileage,
		Price:        input.Price,
		Available:    input.Available,
		Features:     input.Features,
	}

	if err := s.repo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, baserepo.MapWriteError(err, "vehicle")
	}
	return vehicle, nil
}

// Search runs the joined vehicle listing restricted by the supplied filters.
// Unknown model or dealership identifiers yield an empty result, not an
// error.
func (s *service) Search(ctx context.Context, filters SearchFilters) ([]VehicleListing, error) {
	rows, err := s.repo.SearchVehicles(ctx, filters)
	if err != nil {
		return nil, baserepo.MapReadError(err, "vehicles")
	}
	return rows, nil
}

func (s *service) GetVehicleDetail(ctx context.Context, vin string) (*VehicleDetail, error) {
	if strings.TrimSpace(vin) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vin is required")
	}

	vehicle, err := s.repo.GetVehicle(ctx, vin)
	if err != nil {
		return nil, baserepo.MapReadError(err, "vehicle")
	}

	reviewRows, err := s.reviews.ListByVIN(ctx, vin)
	if err != nil {
		return nil, err
	}
	historyRows, err := s.history.HistoryByVIN(ctx, vin)
	if err != nil {
		return nil, err
	}

	return &VehicleDetail{
		Vehicle:        *vehicle,
		Reviews:        reviewRows,
		ServiceHistory: historyRows,
	}, nil
}

func (s *service) ListModels(ctx context.Context) ([]models.Model, error) {
	rows, err := s.repo.ListModels(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "models")
	}
	return rows, nil
}

func (s *service) ListDealerships(ctx context.Context) ([]models.Dealership, error) {
	rows, err := s.repo.ListDealerships(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "dealerships")
	}
	return rows, nil
}

func (s *service) CreateTransfer(ctx context.Context, input CreateTransferInput) (*models.InventoryTransfer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	transfer := &models.InventoryTransfer{
		VIN:              input.VIN,
		FromDealershipID: input.FromDealershipID,
		ToDealershipID:   input.ToDealershipID,
		TransferDate:     input.TransferDate,
		Status:           input.Status,
	}

	if err := s.repo.CreateTransfer(ctx, transfer); err != nil {
		return nil, baserepo.MapWriteError(err, "transfer")
	}
	return transfer, nil
}

func (s *service) ListTransfers(ctx context.Context) ([]TransferRecord, error) {
	rows, err := s.repo.ListTransfers(ctx)
	if err != nil {
		return nil, baserepo.MapReadError(err, "transfers")
	}
	return rows, nil
}
