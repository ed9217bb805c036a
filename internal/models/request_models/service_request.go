package request_models

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Duration    int     `json:"duration" binding:"required,gte=1"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Duration    *int     `json:"duration" binding:"omitempty,gte=1"`
	IsActive    *bool    `json:"isActive"`
}
