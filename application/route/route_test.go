package route_test

import (
	"context"
	"testing"

	approute "github.com/muhammadheryan/hub-fulfillment/application/route"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	geomocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/geo"
	hubmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/hub"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }

func TestRouteApp_ResolveRoute(t *testing.T) {
	addr := &model.Address{Line: "MG Road", District: "Kottayam", Pincode: "686001"}
	local := &model.Hub{ID: 30, Type: constant.HubTypeLocal, Latitude: 9.59, Longitude: 76.52, Status: constant.HubStatusActive}
	regionalFilter := &model.HubFilter{Type: constant.HubTypeRegional, Status: constant.HubStatusActive}

	tests := []struct {
		name     string
		target   *model.DeliveryTarget
		mockCall func(h *hubmocks.HubApp, g *geomocks.GeoApp)
		want     []uint64
		errCode  constant.ErrorType
	}{
		{
			name:   "success: home delivery goes through the nearest regional hub",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHome, Address: addr},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				g.On("ResolveHubForAddress", mock.Anything, addr).Return(local, nil).Once()
				h.On("ListHubs", mock.Anything, regionalFilter).Return([]model.Hub{
					{ID: 10, Latitude: 11.25, Longitude: 75.78},
					{ID: 11, Latitude: 9.93, Longitude: 76.26},
				}, nil).Once()
			},
			want: []uint64{11, 30},
		},
		{
			name:   "success: origin hub overrides the regional leg",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHome, Address: addr, OriginHubID: 12},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				g.On("ResolveHubForAddress", mock.Anything, addr).Return(local, nil).Once()
				h.On("GetHub", mock.Anything, uint64(12)).Return(&model.Hub{ID: 12, Status: constant.HubStatusActive}, nil).Once()
			},
			want: []uint64{12, 30},
		},
		{
			name:   "success: origin equal to local hub collapses",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHome, Address: addr, OriginHubID: 30},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				g.On("ResolveHubForAddress", mock.Anything, addr).Return(local, nil).Once()
				h.On("GetHub", mock.Anything, uint64(30)).Return(local, nil).Once()
			},
			want: []uint64{30},
		},
		{
			name:   "success: no regional hub configured",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHome, Address: addr},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				g.On("ResolveHubForAddress", mock.Anything, addr).Return(local, nil).Once()
				h.On("ListHubs", mock.Anything, regionalFilter).Return([]model.Hub{}, nil).Once()
			},
			want: []uint64{30},
		},
		{
			name:   "success: collection is a single hub",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHubCollection, CollectionHubID: 7},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				h.On("GetHub", mock.Anything, uint64(7)).Return(&model.Hub{ID: 7, Status: constant.HubStatusActive}, nil).Once()
			},
			want: []uint64{7},
		},
		{
			name:   "error: central hub as collection hub",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHubCollection, CollectionHubID: 1},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				h.On("GetHub", mock.Anything, uint64(1)).
					Return(&model.Hub{ID: 1, Type: constant.HubTypeCentral, Status: constant.HubStatusActive}, nil).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: central hub as origin hub",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHome, Address: addr, OriginHubID: 1},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				g.On("ResolveHubForAddress", mock.Anything, addr).Return(local, nil).Once()
				h.On("GetHub", mock.Anything, uint64(1)).
					Return(&model.Hub{ID: 1, Type: constant.HubTypeCentral, Status: constant.HubStatusActive}, nil).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: inactive collection hub",
			target: &model.DeliveryTarget{DeliveryType: constant.DeliveryTypeHubCollection, CollectionHubID: 7},
			mockCall: func(h *hubmocks.HubApp, g *geomocks.GeoApp) {
				h.On("GetHub", mock.Anything, uint64(7)).Return(&model.Hub{ID: 7, Status: constant.HubStatusInactive}, nil).Once()
			},
			errCode: constant.ErrHubNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := hubmocks.NewHubApp(t)
			g := geomocks.NewGeoApp(t)
			tt.mockCall(h, g)

			got, err := approute.NewRouteApp(h, g).ResolveRoute(context.Background(), tt.target)
			if tt.want == nil {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouteApp_NextHub(t *testing.T) {
	app := approute.NewRouteApp(nil, nil)
	route := []uint64{5, 6, 7}

	tests := []struct {
		name      string
		confirmed *uint64
		want      *uint64
		wantErr   bool
	}{
		{name: "nothing confirmed starts at the head", confirmed: nil, want: u64(5)},
		{name: "middle hub", confirmed: u64(6), want: u64(7)},
		{name: "terminal hub", confirmed: u64(7), want: nil},
		{name: "hub off route", confirmed: u64(99), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.NextHub(&model.Order{ID: 1, Route: route, LastConfirmedHubID: tt.confirmed})
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, constant.ErrHubNotInRoute))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
