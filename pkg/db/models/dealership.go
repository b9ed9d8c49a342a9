package models

// Dealership is a physical sales location.
type Dealership struct {
	DealershipID int64  `gorm:"column:dealership_id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name;not null"`
	City         string `gorm:"column:city;not null"`
	State        string `gorm:"column:state;not null"`
}
