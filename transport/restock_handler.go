package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	utilsContext "github.com/muhammadheryan/hub-fulfillment/utils/context"
)

// RequestRestock handler
// @Summary Ask the central hub for stock
// @Tags Restock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Requesting hub ID"
// @Param productID path int true "Product ID"
// @Param request body model.CreateRestockRequest true "Restock"
// @Success 200 {object} model.RestockRequest
// @Failure 400 {object} Response
// @Router /hubs/{hubID}/inventory/{productID}/restock [post]
func (s *RestHandler) RequestRestock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hubID, productID, err := hubProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// path wins over body
	req := model.CreateRestockRequest{HubID: hubID, ProductID: productID}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.HubID, req.ProductID = hubID, productID
	req.RequestedBy = utilsContext.GetActor(ctx)

	res, err := s.RestockApp.RequestRestock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListRestocks handler
// @Summary List restock requests
// @Tags Restock
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, FULFILLED, REJECTED or CANCELLED"
// @Param hub_id query int false "Requesting hub"
// @Param order_id query int false "Correlated order"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} model.RestockRequest
// @Router /restocks [get]
func (s *RestHandler) ListRestocks(w http.ResponseWriter, r *http.Request) {
	hubID, err := queryID(r, "hub_id")
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := queryID(r, "order_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RestockApp.ListRestocks(r.Context(), &model.RestockFilter{
		Status:  constant.RestockStatus(strings.ToUpper(r.URL.Query().Get("status"))),
		HubID:   hubID,
		OrderID: orderID,
		Limit:   queryInt(r, "limit", 0),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveRestock handler
// @Summary Approve a restock request
// @Description Transfers the quantity from the central hub and marks the request fulfilled
// @Tags Restock
// @Produce json
// @Security BearerAuth
// @Param requestID path int true "Restock request ID"
// @Success 200 {object} model.RestockRequest
// @Failure 409 {object} Response
// @Router /restocks/{requestID}/approve [post]
func (s *RestHandler) ApproveRestock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RestockApp.ApproveRestock(ctx, requestID, utilsContext.GetActor(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectRestock handler
// @Summary Reject a restock request
// @Tags Restock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestID path int true "Restock request ID"
// @Param request body model.RejectRestockRequest true "Reason"
// @Success 200 {object} model.RestockRequest
// @Failure 409 {object} Response
// @Router /restocks/{requestID}/reject [post]
func (s *RestHandler) RejectRestock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.RejectRestockRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RestockApp.RejectRestock(ctx, requestID, req.Reason, utilsContext.GetActor(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
