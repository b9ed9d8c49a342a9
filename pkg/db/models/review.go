package models

import "time"

// Review is a customer rating of a vehicle. Rating is bounded 1-5 at the
// write boundary.
type Review struct {
	ReviewID   int64     `gorm:"column:review_id;primaryKey;autoIncrement"`
	CustomerID int64     `gorm:"column:customer_id;not null"`
	VIN        string    `gorm:"column:vin;not null"`
	Rating     int       `gorm:"column:rating;not null"`
	ReviewText string    `gorm:"column:review_text;not null"`
	ReviewDate time.Time `gorm:"column:review_date;type:date;not null"`
}
