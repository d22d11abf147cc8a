package geo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/hub-fulfillment/application/geo"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	hubmocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/hub"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	// Kochi to Kottayam
	d := geo.DistanceKm(9.9312, 76.2673, 9.5916, 76.5222)
	assert.InDelta(t, 47.0, d, 0.5)
	assert.Equal(t, 0.0, geo.DistanceKm(9.5, 76.5, 9.5, 76.5))
}

func TestNearestBreaksTiesByRoutePosition(t *testing.T) {
	hubs := []geo.Located{
		{ID: 1, Latitude: 10, Longitude: 76, RoutePosition: 5},
		{ID: 2, Latitude: 10, Longitude: 76, RoutePosition: 2},
		{ID: 3, Latitude: 12, Longitude: 77, RoutePosition: 1},
	}
	i, ok := geo.Nearest(hubs, 10, 76)
	require.True(t, ok)
	assert.Equal(t, uint64(2), hubs[i].ID)

	_, ok = geo.Nearest(nil, 10, 76)
	assert.False(t, ok)
}

func ptr(f float64) *float64 { return &f }

func TestGeoApp_ResolveHubForAddress(t *testing.T) {
	pincodeFilter := &model.HubFilter{Type: constant.HubTypeLocal, Status: constant.HubStatusActive, Pincode: "686001"}
	districtFilter := &model.HubFilter{Type: constant.HubTypeLocal, Status: constant.HubStatusActive, District: "Kottayam"}
	anyLocal := &model.HubFilter{Type: constant.HubTypeLocal, Status: constant.HubStatusActive}

	tests := []struct {
		name     string
		addr     *model.Address
		mockCall func(r *hubmocks.HubRepository)
		wantID   uint64
		errCode  *constant.ErrorType
	}{
		{
			name: "success: pincode match",
			addr: &model.Address{Pincode: "686001", District: "Kottayam"},
			mockCall: func(r *hubmocks.HubRepository) {
				r.On("List", mock.Anything, pincodeFilter).Return([]model.Hub{{ID: 11}}, nil).Once()
			},
			wantID: 11,
		},
		{
			name: "success: falls back to district",
			addr: &model.Address{Pincode: "686001", District: "Kottayam"},
			mockCall: func(r *hubmocks.HubRepository) {
				r.On("List", mock.Anything, pincodeFilter).Return([]model.Hub{}, nil).Once()
				r.On("List", mock.Anything, districtFilter).Return([]model.Hub{{ID: 12}, {ID: 13}}, nil).Once()
			},
			wantID: 12,
		},
		{
			name: "success: nearest by coordinates",
			addr: &model.Address{Pincode: "686001", District: "Kottayam", Latitude: ptr(9.6), Longitude: ptr(76.5)},
			mockCall: func(r *hubmocks.HubRepository) {
				r.On("List", mock.Anything, pincodeFilter).Return([]model.Hub{}, nil).Once()
				r.On("List", mock.Anything, districtFilter).Return([]model.Hub{}, nil).Once()
				r.On("List", mock.Anything, anyLocal).Return([]model.Hub{
					{ID: 20, Latitude: 9.9, Longitude: 76.3},
					{ID: 21, Latitude: 9.59, Longitude: 76.52},
				}, nil).Once()
			},
			wantID: 21,
		},
		{
			name: "error: nothing serves the address",
			addr: &model.Address{Pincode: "686001", District: "Kottayam"},
			mockCall: func(r *hubmocks.HubRepository) {
				r.On("List", mock.Anything, pincodeFilter).Return([]model.Hub{}, nil).Once()
				r.On("List", mock.Anything, districtFilter).Return([]model.Hub{}, nil).Once()
			},
			errCode: func() *constant.ErrorType { e := constant.ErrHubNotFound; return &e }(),
		},
		{
			name: "error: repository failure",
			addr: &model.Address{Pincode: "686001"},
			mockCall: func(r *hubmocks.HubRepository) {
				r.On("List", mock.Anything, pincodeFilter).Return(nil, errors.New("db down")).Once()
			},
			errCode: func() *constant.ErrorType { e := constant.ErrInternal; return &e }(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := hubmocks.NewHubRepository(t)
			tt.mockCall(repo)

			got, err := geo.NewGeoApp(repo).ResolveHubForAddress(context.Background(), tt.addr)
			if tt.errCode != nil {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, *tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}
