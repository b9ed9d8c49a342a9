package models

import "time"

// ServiceAppointment is a scheduled workshop visit for a vehicle.
type ServiceAppointment struct {
	ServiceID   int64     `gorm:"column:service_id;primaryKey;autoIncrement"`
	VIN         string    `gorm:"column:vin;not null"`
	CustomerID  int64     `gorm:"column:customer_id;not null"`
	ServiceDate time.Time `gorm:"column:service_date;type:date;not null"`
	ServiceType string    `gorm:"column:service_type;not null"`
}
