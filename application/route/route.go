package route

import (
	"context"

	"github.com/muhammadheryan/hub-fulfillment/application/geo"
	apphub "github.com/muhammadheryan/hub-fulfillment/application/hub"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

type RouteApp interface {
	ResolveRoute(ctx context.Context, target *model.DeliveryTarget) ([]uint64, error)
	NextHub(order *model.Order) (*uint64, error)
}

type routeAppImpl struct {
	hubApp apphub.HubApp
	geoApp geo.GeoApp
}

func NewRouteApp(hubApp apphub.HubApp, geoApp geo.GeoApp) RouteApp {
	return &routeAppImpl{hubApp: hubApp, geoApp: geoApp}
}

// ResolveRoute returns [regional, local] for home delivery and [collectionHub] for collection.
// An origin hub, when given, replaces the regional leg. Neither a collection nor an origin hub
// may be the central hub.
func (s *routeAppImpl) ResolveRoute(ctx context.Context, target *model.DeliveryTarget) ([]uint64, error) {
	switch target.DeliveryType {
	case constant.DeliveryTypeHubCollection:
		hub, err := s.activeHub(ctx, target.CollectionHubID)
		if err != nil {
			return nil, err
		}
		return []uint64{hub.ID}, nil

	case constant.DeliveryTypeHome:
		local, err := s.geoApp.ResolveHubForAddress(ctx, target.Address)
		if err != nil {
			return nil, err
		}

		var first *model.Hub
		if target.OriginHubID != 0 {
			if first, err = s.activeHub(ctx, target.OriginHubID); err != nil {
				return nil, err
			}
		} else if first, err = s.nearestRegional(ctx, local); err != nil {
			return nil, err
		}

		if first == nil || first.ID == local.ID {
			return []uint64{local.ID}, nil
		}
		return []uint64{first.ID, local.ID}, nil
	}

	return nil, errors.SetCustomError(constant.ErrInvalidRequest)
}

func (s *routeAppImpl) nearestRegional(ctx context.Context, local *model.Hub) (*model.Hub, error) {
	regionals, err := s.hubApp.ListHubs(ctx, &model.HubFilter{Type: constant.HubTypeRegional, Status: constant.HubStatusActive})
	if err != nil {
		return nil, err
	}
	i, ok := geo.Nearest(geo.Locate(regionals), local.Latitude, local.Longitude)
	if !ok {
		logger.Warn("[ResolveRoute] no active regional hub, routing to local hub only", zap.Uint64("local_hub_id", local.ID))
		return nil, nil
	}
	return &regionals[i], nil
}

func (s *routeAppImpl) activeHub(ctx context.Context, hubID uint64) (*model.Hub, error) {
	if hubID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	hub, err := s.hubApp.GetHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	if hub.Status != constant.HubStatusActive {
		return nil, errors.SetCustomError(constant.ErrHubNotFound)
	}
	// the central hub only feeds restocks; a shortfall there could never be transferred in
	if hub.Type == constant.HubTypeCentral {
		logger.Info("[ResolveRoute] central hub refused as route hub", zap.Uint64("hub_id", hub.ID))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return hub, nil
}

// NextHub is the hub after the last confirmed one, nil at the end of the route.
func (s *routeAppImpl) NextHub(order *model.Order) (*uint64, error) {
	if len(order.Route) == 0 {
		return nil, nil
	}
	if order.LastConfirmedHubID == nil {
		next := order.Route[0]
		return &next, nil
	}
	pos := indexOf(order.Route, *order.LastConfirmedHubID)
	if pos < 0 {
		logger.Integrity("confirmed hub missing from route",
			zap.Uint64("order_id", order.ID), zap.Uint64("hub_id", *order.LastConfirmedHubID))
		return nil, errors.SetCustomError(constant.ErrHubNotInRoute)
	}
	if pos == len(order.Route)-1 {
		return nil, nil
	}
	next := order.Route[pos+1]
	return &next, nil
}

func indexOf(route []uint64, hubID uint64) int {
	for i, id := range route {
		if id == hubID {
			return i
		}
	}
	return -1
}
