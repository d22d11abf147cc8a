package geo

import (
	"context"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	hubrepo "github.com/muhammadheryan/hub-fulfillment/repository/hub"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// GeoApp maps a delivery address to the local hub that serves it.
type GeoApp interface {
	ResolveHubForAddress(ctx context.Context, addr *model.Address) (*model.Hub, error)
}

type geoAppImpl struct {
	hubRepo hubrepo.HubRepository
}

func NewGeoApp(hubRepo hubrepo.HubRepository) GeoApp {
	return &geoAppImpl{hubRepo: hubRepo}
}

// ResolveHubForAddress tries, in order: local hubs on the same pincode, local hubs in the same
// district, then the nearest local hub when the address carries coordinates.
func (s *geoAppImpl) ResolveHubForAddress(ctx context.Context, addr *model.Address) (*model.Hub, error) {
	if addr == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	filters := []*model.HubFilter{
		{Type: constant.HubTypeLocal, Status: constant.HubStatusActive, Pincode: addr.Pincode},
		{Type: constant.HubTypeLocal, Status: constant.HubStatusActive, District: addr.District},
		{Type: constant.HubTypeLocal, Status: constant.HubStatusActive},
	}
	for i, filter := range filters {
		if (i == 0 && addr.Pincode == "") || (i == 1 && addr.District == "") {
			continue
		}
		if i == 2 && (addr.Latitude == nil || addr.Longitude == nil) {
			break
		}
		hubs, err := s.hubRepo.List(ctx, filter)
		if err != nil {
			logger.Error("[ResolveHubForAddress] list hubs failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if hub := pick(hubs, addr); hub != nil {
			return hub, nil
		}
	}

	logger.Info("[ResolveHubForAddress] no local hub serves address", zap.String("pincode", addr.Pincode), zap.String("district", addr.District))
	return nil, errors.SetCustomError(constant.ErrHubNotFound)
}

func pick(hubs []model.Hub, addr *model.Address) *model.Hub {
	if len(hubs) == 0 {
		return nil
	}
	if addr.Latitude == nil || addr.Longitude == nil {
		// repository orders by route position
		return &hubs[0]
	}
	i, _ := Nearest(Locate(hubs), *addr.Latitude, *addr.Longitude)
	return &hubs[i]
}

func Locate(hubs []model.Hub) []Located {
	out := make([]Located, len(hubs))
	for i, h := range hubs {
		out[i] = Located{ID: h.ID, Latitude: h.Latitude, Longitude: h.Longitude, RoutePosition: h.RoutePosition}
	}
	return out
}
