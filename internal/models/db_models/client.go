package db_models

type Client struct {
	BaseModel
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Phone     string `gorm:"not null;index"`
	Email     *string
	Notes     *string
}
