package models

// Model is a catalog entry for a vehicle model.
type Model struct {
	ModelID   int64  `gorm:"column:model_id;primaryKey;autoIncrement"`
	ModelName string `gorm:"column:model_name;not null"`
}
