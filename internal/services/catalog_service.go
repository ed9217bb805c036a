package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	dbm "salonsage/internal/models/db_models"
	req "salonsage/internal/models/request_models"
	resp "salonsage/internal/models/response_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

// CatalogServiceInterface manages the salon's service catalog
// (haircuts, treatments and so on), not to be confused with the Go
// term.
type CatalogServiceInterface interface {
	ListServices(ctx context.Context) ([]resp.ServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*resp.ServiceResponse, error)
	CreateService(ctx context.Context, in req.CreateServiceRequest) (*resp.ServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, in req.UpdateServiceRequest) (*resp.ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type CatalogService struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogServiceInterface {
	return &CatalogService{serviceRepo: serviceRepo}
}

func toServiceResponse(s *dbm.Service) resp.ServiceResponse {
	return resp.ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		IsActive:    s.IsActive,
	}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]resp.ServiceResponse, error) {
	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]resp.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, toServiceResponse(&services[i]))
	}
	return out, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*resp.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if service == nil {
		return nil, utils.ErrServiceNotFound
	}
	r := toServiceResponse(service)
	return &r, nil
}

func (s *CatalogService) CreateService(ctx context.Context, in req.CreateServiceRequest) (*resp.ServiceResponse, error) {
	service := dbm.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		IsActive:    true,
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}

	if err := s.serviceRepo.Create(ctx, &service); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	r := toServiceResponse(&service)
	return &r, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, in req.UpdateServiceRequest) (*resp.ServiceResponse, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Duration != nil {
		fields["duration"] = *in.Duration
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return s.GetService(ctx, id)
	}

	service, err := s.serviceRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if service == nil {
		return nil, utils.ErrServiceNotFound
	}
	r := toServiceResponse(service)
	return &r, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.serviceRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrServiceNotFound
	}
	return nil
}
