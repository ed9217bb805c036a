package request_models

import "time"

type ValidateLicenseRequest struct {
	Key string `json:"key" binding:"required"`
}

type CreateLicenseKeyRequest struct {
	Key        string     `json:"key" binding:"required"`
	Features   []string   `json:"features" binding:"required,min=1"`
	ExpiryDate *time.Time `json:"expiryDate"`
	IsActive   *bool      `json:"isActive"`
}
