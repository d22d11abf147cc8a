package hub

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	hubrepo "github.com/muhammadheryan/hub-fulfillment/repository/hub"
	inventoryrepo "github.com/muhammadheryan/hub-fulfillment/repository/inventory"
	redisrepo "github.com/muhammadheryan/hub-fulfillment/repository/redis"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// HubApp is the hub directory. Single-hub reads go through the Redis cache; every write
// invalidates the cached entry.
type HubApp interface {
	CreateHub(ctx context.Context, req *model.CreateHubRequest) (*model.Hub, error)
	GetHub(ctx context.Context, hubID uint64) (*model.Hub, error)
	ListHubs(ctx context.Context, filter *model.HubFilter) ([]model.Hub, error)
	UpdateHub(ctx context.Context, hubID uint64, req *model.UpdateHubRequest) (*model.Hub, error)
	ActivateHub(ctx context.Context, hubID uint64) error
	DeactivateHub(ctx context.Context, hubID uint64) error
	CentralHub(ctx context.Context) (*model.Hub, error)
}

type hubAppImpl struct {
	config        *config.Config
	hubRepo       hubrepo.HubRepository
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.Repository
}

func NewHubApp(config *config.Config, hubRepo hubrepo.HubRepository, inventoryRepo inventoryrepo.InventoryRepository, redisRepo redisrepo.Repository) HubApp {
	return &hubAppImpl{
		config:        config,
		hubRepo:       hubRepo,
		inventoryRepo: inventoryRepo,
		redisRepo:     redisRepo,
	}
}

func (s *hubAppImpl) CreateHub(ctx context.Context, req *model.CreateHubRequest) (*model.Hub, error) {
	hub := &model.Hub{
		Name:          req.Name,
		District:      req.District,
		Pincode:       req.Pincode,
		Type:          req.Type,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		RoutePosition: req.RoutePosition,
		ManagerID:     req.ManagerID,
		Status:        constant.HubStatusActive,
	}
	id, err := s.hubRepo.Create(ctx, hub)
	if err != nil {
		logger.Error("[CreateHub] create hub failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	hub.ID = id
	return hub, nil
}

func (s *hubAppImpl) GetHub(ctx context.Context, hubID uint64) (*model.Hub, error) {
	cached, err := s.redisRepo.GetHub(ctx, hubID)
	if err != nil {
		logger.Warn("[GetHub] cache read failed", zap.Uint64("hub_id", hubID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	hub, err := s.hubRepo.GetByID(ctx, hubID)
	if err != nil {
		logger.Error("[GetHub] get hub failed", zap.Uint64("hub_id", hubID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hub == nil {
		return nil, errors.SetCustomError(constant.ErrHubNotFound)
	}

	if err := s.redisRepo.SetHub(ctx, hub, s.config.Fulfillment.HubCacheTTL); err != nil {
		logger.Warn("[GetHub] cache write failed", zap.Uint64("hub_id", hubID), zap.Error(err))
	}
	return hub, nil
}

func (s *hubAppImpl) ListHubs(ctx context.Context, filter *model.HubFilter) ([]model.Hub, error) {
	if filter == nil {
		filter = &model.HubFilter{}
	}
	hubs, err := s.hubRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListHubs] list hubs failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return hubs, nil
}

func (s *hubAppImpl) UpdateHub(ctx context.Context, hubID uint64, req *model.UpdateHubRequest) (*model.Hub, error) {
	hub, err := s.hubRepo.GetByID(ctx, hubID)
	if err != nil {
		logger.Error("[UpdateHub] get hub failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hub == nil {
		return nil, errors.SetCustomError(constant.ErrHubNotFound)
	}

	if req.Name != nil {
		hub.Name = *req.Name
	}
	if req.Latitude != nil {
		hub.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		hub.Longitude = *req.Longitude
	}
	if req.RoutePosition != nil {
		hub.RoutePosition = *req.RoutePosition
	}
	if req.ManagerID != nil {
		hub.ManagerID = req.ManagerID
	}

	if err := s.hubRepo.Update(ctx, hub); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.SetCustomError(constant.ErrHubNotFound)
		}
		logger.Error("[UpdateHub] update hub failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.invalidate(ctx, "UpdateHub", hubID)
	return hub, nil
}

func (s *hubAppImpl) ActivateHub(ctx context.Context, hubID uint64) error {
	hub, err := s.hubRepo.GetByID(ctx, hubID)
	if err != nil {
		logger.Error("[ActivateHub] get hub failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if hub == nil {
		return errors.SetCustomError(constant.ErrHubNotFound)
	}

	return s.setStatus(ctx, "ActivateHub", hubID, constant.HubStatusActive)
}

// DeactivateHub refuses while any product at the hub still has reserved units.
func (s *hubAppImpl) DeactivateHub(ctx context.Context, hubID uint64) error {
	hub, err := s.hubRepo.GetByID(ctx, hubID)
	if err != nil {
		logger.Error("[DeactivateHub] get hub failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if hub == nil {
		return errors.SetCustomError(constant.ErrHubNotFound)
	}

	reserved, err := s.inventoryRepo.SumReservedByHub(ctx, hubID)
	if err != nil {
		logger.Error("[DeactivateHub] sum reserved stock failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if reserved > 0 {
		return errors.SetCustomError(constant.ErrHubHasReservedStock)
	}

	return s.setStatus(ctx, "DeactivateHub", hubID, constant.HubStatusInactive)
}

func (s *hubAppImpl) setStatus(ctx context.Context, op string, hubID uint64, status constant.HubStatus) error {
	if err := s.hubRepo.UpdateStatus(ctx, hubID, status); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.SetCustomError(constant.ErrHubNotFound)
		}
		logger.Error("["+op+"] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.invalidate(ctx, op, hubID)
	return nil
}

// CentralHub returns the active central hub with the lowest route position.
func (s *hubAppImpl) CentralHub(ctx context.Context) (*model.Hub, error) {
	hubs, err := s.ListHubs(ctx, &model.HubFilter{Type: constant.HubTypeCentral, Status: constant.HubStatusActive})
	if err != nil {
		return nil, err
	}
	if len(hubs) == 0 {
		logger.Error("[CentralHub] no active central hub configured")
		return nil, errors.SetCustomError(constant.ErrHubNotFound)
	}
	return &hubs[0], nil
}

func (s *hubAppImpl) invalidate(ctx context.Context, op string, hubID uint64) {
	if err := s.redisRepo.InvalidateHub(ctx, hubID); err != nil {
		logger.Warn("["+op+"] cache invalidation failed", zap.Uint64("hub_id", hubID), zap.Error(err))
	}
}
