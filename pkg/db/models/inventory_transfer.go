package models

import (
	"time"

	"github.com/apexmotors/dealerdesk-backend/pkg/enums"
)

// InventoryTransfer moves a vehicle between dealerships.
type InventoryTransfer struct {
	TransferID       int64                `gorm:"column:transfer_id;primaryKey;autoIncrement"`
	VIN              string               `gorm:"column:vin;not null"`
	FromDealershipID int64                `gorm:"column:from_dealership_id;not null"`
	ToDealershipID   int64                `gorm:"column:to_dealership_id;not null"`
	TransferDate     time.Time            `gorm:"column:transfer_date;type:date;not null"`
	Status           enums.TransferStatus `gorm:"column:status;not null"`
}
