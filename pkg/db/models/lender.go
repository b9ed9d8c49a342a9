package models

// Lender is a financing provider.
type Lender struct {
	LenderID int64  `gorm:"column:lender_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;not null"`
	Phone    string `gorm:"column:phone;not null"`
}
