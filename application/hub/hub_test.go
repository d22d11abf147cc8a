package hub_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apphub "github.com/muhammadheryan/hub-fulfillment/application/hub"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	hubmocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/hub"
	inventorymocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/inventory"
	redismocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/redis"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	hubRepo       *hubmocks.HubRepository
	inventoryRepo *inventorymocks.InventoryRepository
	redisRepo     *redismocks.Repository
}

func newFields(t *testing.T) fields {
	return fields{
		hubRepo:       hubmocks.NewHubRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		redisRepo:     redismocks.NewRepository(t),
	}
}

func newApp(f fields) apphub.HubApp {
	cfg := &config.Config{Fulfillment: config.FulfillmentConfig{HubCacheTTL: 5 * time.Minute}}
	return apphub.NewHubApp(cfg, f.hubRepo, f.inventoryRepo, f.redisRepo)
}

func TestHubApp_GetHub(t *testing.T) {
	t.Run("success: served from cache", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("GetHub", mock.Anything, uint64(3)).Return(&model.Hub{ID: 3, Name: "Koramangala"}, nil).Once()

		got, err := newApp(f).GetHub(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Koramangala", got.Name)
	})

	t.Run("success: miss loads from db and fills cache", func(t *testing.T) {
		f := newFields(t)
		hub := &model.Hub{ID: 3, Name: "Koramangala"}
		f.redisRepo.On("GetHub", mock.Anything, uint64(3)).Return(nil, nil).Once()
		f.hubRepo.On("GetByID", mock.Anything, uint64(3)).Return(hub, nil).Once()
		f.redisRepo.On("SetHub", mock.Anything, hub, 5*time.Minute).Return(nil).Once()

		got, err := newApp(f).GetHub(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, hub, got)
	})

	t.Run("success: cache outage falls back to db", func(t *testing.T) {
		f := newFields(t)
		hub := &model.Hub{ID: 3}
		f.redisRepo.On("GetHub", mock.Anything, uint64(3)).Return(nil, errors.New("redis down")).Once()
		f.hubRepo.On("GetByID", mock.Anything, uint64(3)).Return(hub, nil).Once()
		f.redisRepo.On("SetHub", mock.Anything, hub, 5*time.Minute).Return(errors.New("redis down")).Once()

		got, err := newApp(f).GetHub(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, hub, got)
	})

	t.Run("error: unknown hub", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("GetHub", mock.Anything, uint64(9)).Return(nil, nil).Once()
		f.hubRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, nil).Once()

		_, err := newApp(f).GetHub(context.Background(), 9)
		assert.True(t, cerr.IsType(err, constant.ErrHubNotFound))
	})
}

func TestHubApp_UpdateHubInvalidatesCache(t *testing.T) {
	f := newFields(t)
	name := "Indiranagar"
	f.hubRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Hub{ID: 3, Name: "old"}, nil).Once()
	f.hubRepo.On("Update", mock.Anything, mock.MatchedBy(func(h *model.Hub) bool { return h.Name == name })).Return(nil).Once()
	f.redisRepo.On("InvalidateHub", mock.Anything, uint64(3)).Return(nil).Once()

	got, err := newApp(f).UpdateHub(context.Background(), 3, &model.UpdateHubRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
}

func TestHubApp_DeactivateHub(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: no reserved stock",
			mockCall: func(f fields) {
				f.hubRepo.On("GetByID", mock.Anything, uint64(4)).Return(&model.Hub{ID: 4}, nil).Once()
				f.inventoryRepo.On("SumReservedByHub", mock.Anything, uint64(4)).Return(int64(0), nil).Once()
				f.hubRepo.On("UpdateStatus", mock.Anything, uint64(4), constant.HubStatusInactive).Return(nil).Once()
				f.redisRepo.On("InvalidateHub", mock.Anything, uint64(4)).Return(nil).Once()
			},
		},
		{
			name: "error: hub still holds reservations",
			mockCall: func(f fields) {
				f.hubRepo.On("GetByID", mock.Anything, uint64(4)).Return(&model.Hub{ID: 4}, nil).Once()
				f.inventoryRepo.On("SumReservedByHub", mock.Anything, uint64(4)).Return(int64(3), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrHubHasReservedStock,
		},
		{
			name: "error: hub missing",
			mockCall: func(f fields) {
				f.hubRepo.On("GetByID", mock.Anything, uint64(4)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrHubNotFound,
		},
		{
			name: "error: row vanished during update",
			mockCall: func(f fields) {
				f.hubRepo.On("GetByID", mock.Anything, uint64(4)).Return(&model.Hub{ID: 4}, nil).Once()
				f.inventoryRepo.On("SumReservedByHub", mock.Anything, uint64(4)).Return(int64(0), nil).Once()
				f.hubRepo.On("UpdateStatus", mock.Anything, uint64(4), constant.HubStatusInactive).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrHubNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := newApp(f).DeactivateHub(context.Background(), 4)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeactivateHub() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !cerr.IsType(err, tt.errCode) {
				t.Fatalf("DeactivateHub() error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
			}
		})
	}
}

func TestHubApp_CentralHub(t *testing.T) {
	f := newFields(t)
	f.hubRepo.On("List", mock.Anything, &model.HubFilter{Type: constant.HubTypeCentral, Status: constant.HubStatusActive}).
		Return([]model.Hub{{ID: 1, Type: constant.HubTypeCentral}}, nil).Once()

	got, err := newApp(f).CentralHub(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)

	f2 := newFields(t)
	f2.hubRepo.On("List", mock.Anything, mock.Anything).Return([]model.Hub{}, nil).Once()
	_, err = newApp(f2).CentralHub(context.Background())
	assert.True(t, cerr.IsType(err, constant.ErrHubNotFound))
}
