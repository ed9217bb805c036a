package db_models

type Service struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description *string
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Duration    int     `gorm:"not null"` // minutes
	IsActive    bool    `gorm:"default:true"`
}
