package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apexmotors/dealerdesk-backend/internal/reviews"
	"github.com/apexmotors/dealerdesk-backend/internal/servicing"
	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
)

// VehicleListing is one row of the joined vehicle search/listing result.
type VehicleListing struct {
	VIN        string          `json:"vin"`
	ModelName  string          `json:"model_name"`
	ModelYear  int             `json:"model_year"`
	Color      string          `json:"color"`
	Mileage    decimal.Decimal `json:"mileage"`
	Price      decimal.Decimal `json:"price"`
	Available  bool            `json:"available"`
	Dealership string          `json:"dealership"`
}

// VehicleRecord is the display view of a single vehicle with its model and
// dealership attributes.
type VehicleRecord struct {
	VIN        string          `json:"vin"`
	ModelName  string          `json:"model_name"`
	ModelYear  int             `json:"model_year"`
	Color      string          `json:"color"`
	Mileage    decimal.Decimal `json:"mileage"`
	Price      decimal.Decimal `json:"price"`
	Available  bool            `json:"available"`
	Features   *string         `json:"features"`
	Dealership string          `json:"dealership"`
	City       string          `json:"city"`
	State      string          `json:"state"`
}

// VehicleDetail bundles a vehicle with its reviews and service history.
// Empty sublists are valid; only a missing vehicle is an error.
type VehicleDetail struct {
	Vehicle        VehicleRecord            `json:"vehicle"`
	Reviews        []reviews.VehicleReview  `json:"reviews"`
	ServiceHistory []servicing.HistoryEntry `json:"service_history"`
}

// TransferRecord is one row of the transfer ledger with dealership names
// resolved.
type TransferRecord struct {
	TransferID     int64                `json:"transfer_id"`
	VIN            string               `json:"vin"`
	TransferDate   time.Time            `json:"transfer_date"`
	Status         enums.TransferStatus `json:"status"`
	FromDealership string               `json:"from_dealership"`
	ToDealership   string               `json:"to_dealership"`
}
