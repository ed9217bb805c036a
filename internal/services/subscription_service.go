package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbm "salonsage/internal/models/db_models"
	req "salonsage/internal/models/request_models"
	resp "salonsage/internal/models/response_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

const (
	ScaleAdd    = "add"
	ScaleRemove = "remove"
)

type SubscriptionServiceInterface interface {
	ListPackages(ctx context.Context) ([]resp.SubscriptionResponse, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*resp.SubscriptionResponse, error)
	CreatePackage(ctx context.Context, in req.CreateSubscriptionRequest) (*resp.SubscriptionResponse, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, in req.UpdateSubscriptionRequest) (*resp.SubscriptionResponse, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error

	ListClientSubscriptions(ctx context.Context, clientID *uuid.UUID) ([]resp.ClientSubscriptionResponse, error)
	GetClientSubscription(ctx context.Context, id uuid.UUID) (*resp.ClientSubscriptionResponse, error)
	PurchaseSubscription(ctx context.Context, in req.CreateClientSubscriptionRequest) (*resp.ClientSubscriptionResponse, error)
	UpdateClientSubscription(ctx context.Context, id uuid.UUID, in req.UpdateClientSubscriptionRequest) (*resp.ClientSubscriptionResponse, error)
	// Scale adjusts a client subscription's remaining and scaled use
	// counters. direction is "add" or "remove"; amount is bounded by
	// [1, maxAddUses] for add and [1, remainingUses] for remove.
	Scale(ctx context.Context, id uuid.UUID, direction string, amount int) (*resp.ClientSubscriptionResponse, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	clientSubRepo    repositories.ClientSubscriptionRepository
	clientRepo       repositories.ClientRepository
	maxAddUses       int
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	clientSubRepo repositories.ClientSubscriptionRepository,
	clientRepo repositories.ClientRepository,
	maxAddUses int,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		clientSubRepo:    clientSubRepo,
		clientRepo:       clientRepo,
		maxAddUses:       maxAddUses,
	}
}

func toSubscriptionResponse(s *dbm.Subscription) resp.SubscriptionResponse {
	return resp.SubscriptionResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		ServicesIncluded: s.ServicesIncluded,
		UsageLimit:       s.UsageLimit,
		IsActive:         s.IsActive,
	}
}

func toClientSubscriptionResponse(cs *dbm.ClientSubscription) resp.ClientSubscriptionResponse {
	scaled := 0
	if cs.ScaledUsageLimit != nil {
		scaled = *cs.ScaledUsageLimit
	}
	return resp.ClientSubscriptionResponse{
		ID:               cs.ID.String(),
		ClientID:         cs.ClientID.String(),
		SubscriptionID:   cs.SubscriptionID.String(),
		RemainingUses:    cs.RemainingUses,
		ScaledUsageLimit: cs.ScaledUsageLimit,
		CurrentCapacity:  cs.Subscription.UsageLimit + scaled,
		PurchaseDate:     cs.PurchaseDate,
		ExpiryDate:       cs.ExpiryDate,
		IsActive:         cs.IsActive,
	}
}

func (s *SubscriptionService) ListPackages(ctx context.Context) ([]resp.SubscriptionResponse, error) {
	subs, err := s.subscriptionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]resp.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubscriptionResponse(&subs[i]))
	}
	return out, nil
}

func (s *SubscriptionService) GetPackage(ctx context.Context, id uuid.UUID) (*resp.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	r := toSubscriptionResponse(sub)
	return &r, nil
}

func (s *SubscriptionService) CreatePackage(ctx context.Context, in req.CreateSubscriptionRequest) (*resp.SubscriptionResponse, error) {
	sub := dbm.Subscription{
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		ServicesIncluded: in.ServicesIncluded,
		UsageLimit:       in.UsageLimit,
		IsActive:         true,
	}
	if in.IsActive != nil {
		sub.IsActive = *in.IsActive
	}

	if err := s.subscriptionRepo.Create(ctx, &sub); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	r := toSubscriptionResponse(&sub)
	return &r, nil
}

func (s *SubscriptionService) UpdatePackage(ctx context.Context, id uuid.UUID, in req.UpdateSubscriptionRequest) (*resp.SubscriptionResponse, error) {
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
	if in.ServicesIncluded != nil {
		fields["services_included"] = in.ServicesIncluded
	}
	if in.UsageLimit != nil {
		fields["usage_limit"] = *in.UsageLimit
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return s.GetPackage(ctx, id)
	}

	sub, err := s.subscriptionRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	r := toSubscriptionResponse(sub)
	return &r, nil
}

func (s *SubscriptionService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.subscriptionRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrSubscriptionNotFound
	}
	return nil
}

func (s *SubscriptionService) ListClientSubscriptions(ctx context.Context, clientID *uuid.UUID) ([]resp.ClientSubscriptionResponse, error) {
	var (
		subs []dbm.ClientSubscription
		err  error
	)
	if clientID != nil {
		subs, err = s.clientSubRepo.GetByClientID(ctx, *clientID)
	} else {
		subs, err = s.clientSubRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]resp.ClientSubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toClientSubscriptionResponse(&subs[i]))
	}
	return out, nil
}

func (s *SubscriptionService) GetClientSubscription(ctx context.Context, id uuid.UUID) (*resp.ClientSubscriptionResponse, error) {
	cs, err := s.clientSubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if cs == nil {
		return nil, utils.ErrClientSubscriptionNotFound
	}
	r := toClientSubscriptionResponse(cs)
	return &r, nil
}

func (s *SubscriptionService) PurchaseSubscription(ctx context.Context, in req.CreateClientSubscriptionRequest) (*resp.ClientSubscriptionResponse, error) {
	clientID, err := uuid.Parse(in.ClientID)
	if err != nil {
		return nil, utils.ErrClientNotFound
	}
	subscriptionID, err := uuid.Parse(in.SubscriptionID)
	if err != nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if client == nil {
		return nil, utils.ErrClientNotFound
	}

	pkg, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if pkg == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	remaining := pkg.UsageLimit
	if in.RemainingUses != nil {
		remaining = *in.RemainingUses
	}

	cs := dbm.ClientSubscription{
		ClientID:       clientID,
		SubscriptionID: subscriptionID,
		RemainingUses:  remaining,
		PurchaseDate:   time.Now(),
		ExpiryDate:     in.ExpiryDate,
		IsActive:       true,
	}
	if err := s.clientSubRepo.Create(ctx, &cs); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	cs.Subscription = *pkg
	r := toClientSubscriptionResponse(&cs)
	return &r, nil
}

func (s *SubscriptionService) UpdateClientSubscription(ctx context.Context, id uuid.UUID, in req.UpdateClientSubscriptionRequest) (*resp.ClientSubscriptionResponse, error) {
	fields := map[string]interface{}{}
	if in.ExpiryDate != nil {
		fields["expiry_date"] = *in.ExpiryDate
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return s.GetClientSubscription(ctx, id)
	}

	cs, err := s.clientSubRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if cs == nil {
		return nil, utils.ErrClientSubscriptionNotFound
	}
	r := toClientSubscriptionResponse(cs)
	return &r, nil
}

func (s *SubscriptionService) Scale(ctx context.Context, id uuid.UUID, direction string, amount int) (*resp.ClientSubscriptionResponse, error) {
	if amount < 1 {
		return nil, utils.ErrScaleAmountTooSmall
	}

	var delta int
	switch direction {
	case ScaleAdd:
		if amount > s.maxAddUses {
			return nil, utils.ErrScaleAmountTooLarge
		}
		delta = amount
	case ScaleRemove:
		delta = -amount
	default:
		return nil, utils.ErrUnknownScaleDirection
	}

	cs, err := s.clientSubRepo.Scale(ctx, id, delta)
	if err != nil {
		if errors.Is(err, utils.ErrClientSubscriptionNotFound) || errors.Is(err, utils.ErrRemoveExceedsRemain) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	r := toClientSubscriptionResponse(cs)
	return &r, nil
}
