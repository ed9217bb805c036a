package request_models

type CreateClientRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Notes     *string `json:"notes"`
}

// UpdateClientRequest carries patch semantics: only non-nil fields are
// written.
type UpdateClientRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Notes     *string `json:"notes"`
}
