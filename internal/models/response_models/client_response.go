package response_models

type ClientResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	IsActive    bool    `json:"isActive"`
}
