package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	hubmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/hub"
	inventorymocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/inventory"
	ordermocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/order"
	productmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/product"
	restockmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/restock"
	usermocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/user"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/transport"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "internal-secret"

type apps struct {
	user      *usermocks.UserApp
	product   *productmocks.ProductApp
	order     *ordermocks.OrderApp
	hub       *hubmocks.HubApp
	inventory *inventorymocks.InventoryApp
	restock   *restockmocks.RestockApp
}

func newApps(t *testing.T) apps {
	return apps{
		user:      usermocks.NewUserApp(t),
		product:   productmocks.NewProductApp(t),
		order:     ordermocks.NewOrderApp(t),
		hub:       hubmocks.NewHubApp(t),
		inventory: inventorymocks.NewInventoryApp(t),
		restock:   restockmocks.NewRestockApp(t),
	}
}

func (a apps) handler() http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		UserApp:      a.user,
		ProductApp:   a.product,
		OrderApp:     a.order,
		HubApp:       a.hub,
		InventoryApp: a.inventory,
		RestockApp:   a.restock,
	}, internalKey)
}

func (a apps) as(role constant.UserRole, userID uint64) {
	a.user.On("ValidateToken", mock.Anything, "tok").Return(&model.Session{UserID: userID, Role: role}, nil).Once()
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, path, auth, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", "Bearer "+auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestTransport_Orders(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		auth       string
		body       string
		mockCall   func(a apps)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "error: missing token",
			method:     http.MethodPost,
			path:       "/orders",
			body:       `{}`,
			mockCall:   func(a apps) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   cerr.SetCustomError(constant.ErrUnauthorize).ErrorCode(),
		},
		{
			name:   "success: customer places order under own user id",
			method: http.MethodPost,
			path:   "/orders",
			auth:   "tok",
			body:   `{"items":[{"product_id":100,"quantity":2}],"target":{"delivery_type":"HUB_COLLECTION","collection_hub_id":30},"payment_method":"COD","user_id":99}`,
			mockCall: func(a apps) {
				a.as(constant.UserRoleCustomer, 3)
				a.order.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(req *model.OrderRequest) bool {
					return req.UserID == 3 && len(req.Items) == 1
				})).Return(&model.Order{ID: 77, UserID: 3, Status: constant.OrderStatusApproved}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:   "error: order body fails validation",
			method: http.MethodPost,
			path:   "/orders",
			auth:   "tok",
			body:   `{"items":[],"payment_method":"COD"}`,
			mockCall: func(a apps) {
				a.as(constant.UserRoleCustomer, 3)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   cerr.SetCustomError(constant.ErrInvalidRequest).ErrorCode(),
		},
		{
			name:   "error: customer cannot scan packages",
			method: http.MethodPost,
			path:   "/hubs/20/orders/77/scan-in",
			auth:   "tok",
			mockCall: func(a apps) {
				a.as(constant.UserRoleCustomer, 3)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   cerr.SetCustomError(constant.ErrForbidden).ErrorCode(),
		},
		{
			name:   "error: out of sequence scan surfaces as conflict",
			method: http.MethodPost,
			path:   "/hubs/20/orders/77/scan-in",
			auth:   "tok",
			mockCall: func(a apps) {
				a.as(constant.UserRoleHubManager, 5)
				a.order.On("ScanIn", mock.Anything, uint64(77), uint64(20)).
					Return(nil, cerr.SetCustomError(constant.ErrSequenceViolation)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   cerr.SetCustomError(constant.ErrSequenceViolation).ErrorCode(),
		},
		{
			name:   "success: admin passes every role gate",
			method: http.MethodPost,
			path:   "/hubs/20/orders/77/dispatch",
			auth:   "tok",
			body:   `{"delivery_boy_id":9}`,
			mockCall: func(a apps) {
				a.as(constant.UserRoleAdmin, 1)
				a.order.On("Dispatch", mock.Anything, uint64(77), uint64(20), mock.MatchedBy(func(req *model.DispatchRequest) bool {
					return req.DeliveryBoyID != nil && *req.DeliveryBoyID == 9 && req.NextHubID == nil
				})).Return(&model.Order{ID: 77, Status: constant.OrderStatusOutForDelivery}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name:   "error: non numeric order id",
			method: http.MethodGet,
			path:   "/orders/abc",
			auth:   "tok",
			mockCall: func(a apps) {
				a.as(constant.UserRoleCustomer, 3)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   cerr.SetCustomError(constant.ErrInvalidRequest).ErrorCode(),
		},
		{
			name:   "error: malformed otp",
			method: http.MethodPost,
			path:   "/orders/77/collection/verify",
			auth:   "tok",
			body:   `{"otp":"12ab"}`,
			mockCall: func(a apps) {
				a.as(constant.UserRoleHubManager, 5)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   cerr.SetCustomError(constant.ErrInvalidRequest).ErrorCode(),
		},
		{
			name:   "error: expired otp",
			method: http.MethodPost,
			path:   "/orders/77/delivery/confirm",
			auth:   "tok",
			body:   `{"otp":"004213"}`,
			mockCall: func(a apps) {
				a.as(constant.UserRoleHubManager, 5)
				a.order.On("ConfirmDelivery", mock.Anything, uint64(77), "004213").
					Return(nil, cerr.SetCustomError(constant.ErrOtpExpired)).Once()
			},
			wantStatus: http.StatusGone,
			wantCode:   cerr.SetCustomError(constant.ErrOtpExpired).ErrorCode(),
		},
		{
			name:   "success: customer cancels",
			method: http.MethodPost,
			path:   "/orders/77/cancel",
			auth:   "tok",
			mockCall: func(a apps) {
				a.as(constant.UserRoleCustomer, 3)
				a.order.On("CancelOrder", mock.Anything, uint64(77)).
					Return(&model.Order{ID: 77, Status: constant.OrderStatusCanceled}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			tt.mockCall(a)

			status, env := do(t, a.handler(), tt.method, tt.path, tt.auth, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}

func TestTransport_Internal(t *testing.T) {
	t.Run("error: sweep without api key", func(t *testing.T) {
		a := newApps(t)
		status, env := do(t, a.handler(), http.MethodPost, "/internal/v1/orders/sweep", "", "")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, cerr.SetCustomError(constant.ErrForbidden).ErrorCode(), env.Code)
	})

	t.Run("error: user token is not an api key", func(t *testing.T) {
		a := newApps(t)
		status, _ := do(t, a.handler(), http.MethodPost, "/internal/v1/orders/sweep", "tok", "")
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("success: sweep reports approvals", func(t *testing.T) {
		a := newApps(t)
		a.order.On("SweepPendingApprovals", mock.Anything).Return(2, nil).Once()

		status, env := do(t, a.handler(), http.MethodPost, "/internal/v1/orders/sweep", internalKey, "")
		require.Equal(t, http.StatusOK, status)

		var got model.SweepResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 2, got.Approved)
	})

	t.Run("success: payment confirmed", func(t *testing.T) {
		a := newApps(t)
		a.order.On("ConfirmPayment", mock.Anything, uint64(77)).
			Return(&model.Order{ID: 77, PaymentStatus: constant.PaymentStatusPaid}, nil).Once()

		status, _ := do(t, a.handler(), http.MethodPost, "/internal/v1/orders/77/payment", internalKey, "")
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestTransport_HubsAndRestocks(t *testing.T) {
	t.Run("success: restock path ids override body", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleHubManager, 5)
		a.restock.On("RequestRestock", mock.Anything, mock.MatchedBy(func(req *model.CreateRestockRequest) bool {
			return req.HubID == 20 && req.ProductID == 100 && req.Quantity == 4 &&
				req.RequestedBy != nil && *req.RequestedBy == 5
		})).Return(&model.RestockRequest{ID: 1, Status: constant.RestockStatusPending}, nil).Once()

		status, _ := do(t, a.handler(), http.MethodPost, "/hubs/20/inventory/100/restock", "tok",
			`{"hub_id":99,"product_id":1,"quantity":4}`)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("error: hub manager cannot approve restocks", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleHubManager, 5)

		status, _ := do(t, a.handler(), http.MethodPost, "/restocks/1/approve", "tok", "")
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("error: approve surfaces central shortage", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleAdmin, 1)
		a.restock.On("ApproveRestock", mock.Anything, uint64(1), mock.MatchedBy(func(by *uint64) bool {
			return by != nil && *by == 1
		})).Return(nil, cerr.SetCustomError(constant.ErrInsufficientCentralStock)).Once()

		status, env := do(t, a.handler(), http.MethodPost, "/restocks/1/approve", "tok", "")
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, cerr.SetCustomError(constant.ErrInsufficientCentralStock).ErrorCode(), env.Code)
	})

	t.Run("error: deactivation refused with reserved stock", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleAdmin, 1)
		a.hub.On("DeactivateHub", mock.Anything, uint64(20)).
			Return(cerr.SetCustomError(constant.ErrHubHasReservedStock)).Once()

		status, _ := do(t, a.handler(), http.MethodPut, "/hubs/20/status", "tok", `{"active":false}`)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("success: activate returns hub", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleAdmin, 1)
		a.hub.On("ActivateHub", mock.Anything, uint64(20)).Return(nil).Once()
		a.hub.On("GetHub", mock.Anything, uint64(20)).
			Return(&model.Hub{ID: 20, Status: constant.HubStatusActive}, nil).Once()

		status, _ := do(t, a.handler(), http.MethodPut, "/hubs/20/status", "tok", `{"active":true}`)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("error: unknown hub status filter", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleCustomer, 3)

		status, _ := do(t, a.handler(), http.MethodGet, "/hubs?status=paused", "tok", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("success: list restocks by status", func(t *testing.T) {
		a := newApps(t)
		a.as(constant.UserRoleHubManager, 5)
		a.restock.On("ListRestocks", mock.Anything, &model.RestockFilter{Status: constant.RestockStatusPending, HubID: 20}).
			Return([]model.RestockRequest{{ID: 1}}, nil).Once()

		status, _ := do(t, a.handler(), http.MethodGet, "/restocks?status=pending&hub_id=20", "tok", "")
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestTransport_Health(t *testing.T) {
	a := newApps(t)
	status, env := do(t, a.handler(), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0000", env.Code)
}
