package transport

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	utilsContext "github.com/muhammadheryan/hub-fulfillment/utils/context"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
)

// PlaceOrder handler
// @Summary Place order
// @Description Reserves stock at the fulfilment hub, or parks the order until restocks land
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.OrderRequest true "Order Request"
// @Success 200 {object} model.Order
// @Failure 400 {object} Response
// @Router /orders [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	req.UserID = userID

	res, err := s.OrderApp.PlaceOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Order detail with tracking timeline
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param orderID path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Router /orders/{orderID} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param orderID path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 409 {object} Response
// @Router /orders/{orderID}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	s.orderAction(w, r, s.OrderApp.CancelOrder)
}

// MarkReadyForCollection handler
// @Summary Mark a collection order ready and issue its OTP
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param orderID path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 409 {object} Response
// @Router /orders/{orderID}/ready-for-collection [post]
func (s *RestHandler) MarkReadyForCollection(w http.ResponseWriter, r *http.Request) {
	s.orderAction(w, r, s.OrderApp.MarkReadyForCollection)
}

// VerifyCollection handler
// @Summary Verify collection OTP and hand the order over
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderID path int true "Order ID"
// @Param request body model.OtpRequest true "OTP"
// @Success 200 {object} model.Order
// @Failure 400 {object} Response
// @Router /orders/{orderID}/collection/verify [post]
func (s *RestHandler) VerifyCollection(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.OtpRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.VerifyCollection(r.Context(), orderID, req.Otp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmDelivery handler
// @Summary Confirm doorstep delivery with the delivery OTP
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderID path int true "Order ID"
// @Param request body model.OtpRequest true "OTP"
// @Success 200 {object} model.Order
// @Failure 400 {object} Response
// @Router /orders/{orderID}/delivery/confirm [post]
func (s *RestHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.OtpRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.ConfirmDelivery(r.Context(), orderID, req.Otp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ScanIn handler
// @Summary Record the package arriving at a hub
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Param orderID path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 409 {object} Response
// @Router /hubs/{hubID}/orders/{orderID}/scan-in [post]
func (s *RestHandler) ScanIn(w http.ResponseWriter, r *http.Request) {
	hubID, err := pathID(r, "hubID")
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.ScanIn(r.Context(), orderID, hubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Dispatch handler
// @Summary Dispatch the package from a hub
// @Description Local hubs hand over to a delivery boy; other hubs send to the next route hub
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Param orderID path int true "Order ID"
// @Param request body model.DispatchRequest true "Dispatch Request"
// @Success 200 {object} model.Order
// @Failure 409 {object} Response
// @Router /hubs/{hubID}/orders/{orderID}/dispatch [post]
func (s *RestHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	hubID, err := pathID(r, "hubID")
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.DispatchRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.Dispatch(r.Context(), orderID, hubID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SweepPendingApprovals handler
// @Summary Re-evaluate pending orders whose restocks have landed
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer <internal api key>"
// @Success 200 {object} model.SweepResponse
// @Router /internal/v1/orders/sweep [post]
func (s *RestHandler) SweepPendingApprovals(w http.ResponseWriter, r *http.Request) {
	approved, err := s.OrderApp.SweepPendingApprovals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.SweepResponse{Approved: approved})
}

// ConfirmPayment handler
// @Summary Payment confirmed by the payment provider
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer <internal api key>"
// @Param orderID path int true "Order ID"
// @Success 200 {object} model.Order
// @Router /internal/v1/orders/{orderID}/payment [post]
func (s *RestHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	s.orderAction(w, r, s.OrderApp.ConfirmPayment)
}

func (s *RestHandler) orderAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, orderID uint64) (*model.Order, error)) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := fn(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
