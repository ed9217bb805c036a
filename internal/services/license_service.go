package services

import (
	"context"
	"fmt"
	"time"

	dbm "salonsage/internal/models/db_models"
	req "salonsage/internal/models/request_models"
	resp "salonsage/internal/models/response_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

type LicenseServiceInterface interface {
	// Validate checks a key against the license table. An unknown,
	// inactive or expired key yields a negative result, not an error.
	Validate(ctx context.Context, key string) (*resp.LicenseValidationResponse, error)
	ListKeys(ctx context.Context) ([]resp.LicenseKeyResponse, error)
	CreateKey(ctx context.Context, in req.CreateLicenseKeyRequest) (*resp.LicenseKeyResponse, error)
}

type LicenseService struct {
	licenseRepo repositories.LicenseRepository
	tokenSecret string
	tokenTTL    time.Duration
}

func NewLicenseService(licenseRepo repositories.LicenseRepository, tokenSecret string, tokenTTL time.Duration) LicenseServiceInterface {
	return &LicenseService{
		licenseRepo: licenseRepo,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
}

func toLicenseKeyResponse(k *dbm.LicenseKey) resp.LicenseKeyResponse {
	return resp.LicenseKeyResponse{
		ID:         k.ID.String(),
		Key:        k.Key,
		IsActive:   k.IsActive,
		ExpiryDate: k.ExpiryDate,
		Features:   k.Features,
	}
}

func (s *LicenseService) Validate(ctx context.Context, key string) (*resp.LicenseValidationResponse, error) {
	license, err := s.licenseRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if license == nil || !license.Valid(time.Now()) {
		return &resp.LicenseValidationResponse{IsValid: false, Features: []string{}}, nil
	}

	token, err := utils.CreateLicenseToken(s.tokenSecret, license.Key, license.Features, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &resp.LicenseValidationResponse{
		IsValid:    true,
		Features:   license.Features,
		ExpiryDate: license.ExpiryDate,
		Token:      token,
	}, nil
}

func (s *LicenseService) ListKeys(ctx context.Context) ([]resp.LicenseKeyResponse, error) {
	keys, err := s.licenseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]resp.LicenseKeyResponse, 0, len(keys))
	for i := range keys {
		out = append(out, toLicenseKeyResponse(&keys[i]))
	}
	return out, nil
}

func (s *LicenseService) CreateKey(ctx context.Context, in req.CreateLicenseKeyRequest) (*resp.LicenseKeyResponse, error) {
	existing, err := s.licenseRepo.GetByKey(ctx, in.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrDuplicateLicenseKey
	}

	license := dbm.LicenseKey{
		Key:        in.Key,
		IsActive:   true,
		ExpiryDate: in.ExpiryDate,
		Features:   in.Features,
	}
	if in.IsActive != nil {
		license.IsActive = *in.IsActive
	}

	if err := s.licenseRepo.Create(ctx, &license); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	r := toLicenseKeyResponse(&license)
	return &r, nil
}
