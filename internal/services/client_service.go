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

type ClientServiceInterface interface {
	ListClients(ctx context.Context) ([]resp.ClientResponse, error)
	GetClient(ctx context.Context, id uuid.UUID) (*resp.ClientResponse, error)
	CreateClient(ctx context.Context, in req.CreateClientRequest) (*resp.ClientResponse, error)
	UpdateClient(ctx context.Context, id uuid.UUID, in req.UpdateClientRequest) (*resp.ClientResponse, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type ClientService struct {
	clientRepo repositories.ClientRepository
}

func NewClientService(clientRepo repositories.ClientRepository) ClientServiceInterface {
	return &ClientService{clientRepo: clientRepo}
}

func toClientResponse(c *dbm.Client) resp.ClientResponse {
	return resp.ClientResponse{
		ID:        c.ID.String(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func (s *ClientService) ListClients(ctx context.Context) ([]resp.ClientResponse, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]resp.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	return out, nil
}

func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*resp.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if client == nil {
		return nil, utils.ErrClientNotFound
	}
	r := toClientResponse(client)
	return &r, nil
}

func (s *ClientService) CreateClient(ctx context.Context, in req.CreateClientRequest) (*resp.ClientResponse, error) {
	existing, err := s.clientRepo.GetByPhone(ctx, in.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrDuplicatePhone
	}

	client := dbm.Client{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
	}
	if err := s.clientRepo.Create(ctx, &client); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	r := toClientResponse(&client)
	return &r, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, in req.UpdateClientRequest) (*resp.ClientResponse, error) {
	fields := map[string]interface{}{}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if len(fields) == 0 {
		return s.GetClient(ctx, id)
	}

	client, err := s.clientRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if client == nil {
		return nil, utils.ErrClientNotFound
	}
	r := toClientResponse(client)
	return &r, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrClientNotFound
	}
	return nil
}
