package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	utilsContext "github.com/muhammadheryan/hub-fulfillment/utils/context"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
)

// ListHubs handler
// @Summary List hubs
// @Tags Hub
// @Produce json
// @Security BearerAuth
// @Param type query string false "CENTRAL_HUB, REGIONAL_HUB or LOCAL_HUB"
// @Param district query string false "District"
// @Param pincode query string false "Pincode"
// @Param status query string false "active or inactive"
// @Success 200 {array} model.Hub
// @Router /hubs [get]
func (s *RestHandler) ListHubs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.HubFilter{
		Type:     constant.HubType(strings.ToUpper(q.Get("type"))),
		District: q.Get("district"),
		Pincode:  q.Get("pincode"),
	}
	switch strings.ToLower(q.Get("status")) {
	case "":
	case "active":
		filter.Status = constant.HubStatusActive
	case "inactive":
		filter.Status = constant.HubStatusInactive
	default:
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.HubApp.ListHubs(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateHub handler
// @Summary Create hub
// @Tags Hub
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateHubRequest true "Hub"
// @Success 200 {object} model.Hub
// @Failure 400 {object} Response
// @Router /hubs [post]
func (s *RestHandler) CreateHub(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHubRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.HubApp.CreateHub(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetHub handler
// @Summary Hub detail
// @Tags Hub
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Success 200 {object} model.Hub
// @Failure 404 {object} Response
// @Router /hubs/{hubID} [get]
func (s *RestHandler) GetHub(w http.ResponseWriter, r *http.Request) {
	hubID, err := pathID(r, "hubID")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.HubApp.GetHub(r.Context(), hubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateHub handler
// @Summary Update hub
// @Tags Hub
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Param request body model.UpdateHubRequest true "Changes"
// @Success 200 {object} model.Hub
// @Failure 404 {object} Response
// @Router /hubs/{hubID} [put]
func (s *RestHandler) UpdateHub(w http.ResponseWriter, r *http.Request) {
	hubID, err := pathID(r, "hubID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateHubRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.HubApp.UpdateHub(r.Context(), hubID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SetHubStatus handler
// @Summary Activate or deactivate a hub
// @Description Deactivation is refused while the hub holds reserved stock
// @Tags Hub
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Param request body model.HubStatusRequest true "Status"
// @Success 200 {object} model.Hub
// @Failure 409 {object} Response
// @Router /hubs/{hubID}/status [put]
func (s *RestHandler) SetHubStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hubID, err := pathID(r, "hubID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.HubStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if *req.Active {
		err = s.HubApp.ActivateHub(ctx, hubID)
	} else {
		err = s.HubApp.DeactivateHub(ctx, hubID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HubApp.GetHub(ctx, hubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetInventory handler
// @Summary Stock of a product at a hub
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} model.InventoryResponse
// @Router /hubs/{hubID}/inventory/{productID} [get]
func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	hubID, productID, err := hubProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.InventoryApp.GetInventory(r.Context(), hubID, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReceiveStock handler
// @Summary Book supplier stock into a hub
// @Description Used to stock the central hub; other hubs are replenished through restock requests
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hubID path int true "Hub ID"
// @Param productID path int true "Product ID"
// @Param request body model.StockAdjustRequest true "Quantity"
// @Success 200 {object} model.InventoryResponse
// @Router /hubs/{hubID}/inventory/{productID}/stock [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hubID, productID, err := hubProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.StockAdjustRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ref := model.MovementRef{ReferenceType: "supplier", ActorID: utilsContext.GetActor(ctx), Notes: "stock received"}
	if err := s.InventoryApp.Restock(ctx, hubID, productID, req.Quantity, ref); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.GetInventory(ctx, hubID, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func hubProduct(r *http.Request) (uint64, uint64, error) {
	hubID, err := pathID(r, "hubID")
	if err != nil {
		return 0, 0, err
	}
	productID, err := pathID(r, "productID")
	if err != nil {
		return 0, 0, err
	}
	return hubID, productID, nil
}
