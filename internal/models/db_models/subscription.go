package db_models

// Subscription is a package definition the salon sells: a bundle of
// included service names with a nominal usage limit.
type Subscription struct {
	BaseModel
	Name             string `gorm:"not null"`
	Description      *string
	Price            float64  `gorm:"type:decimal(10,2);not null"`
	ServicesIncluded []string `gorm:"serializer:json;not null"`
	UsageLimit       int      `gorm:"not null"`
	IsActive         bool     `gorm:"default:true"`
}
