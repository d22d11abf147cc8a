package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	hubapp "github.com/muhammadheryan/hub-fulfillment/application/hub"
	inventoryapp "github.com/muhammadheryan/hub-fulfillment/application/inventory"
	orderapp "github.com/muhammadheryan/hub-fulfillment/application/order"
	productapp "github.com/muhammadheryan/hub-fulfillment/application/product"
	restockapp "github.com/muhammadheryan/hub-fulfillment/application/restock"
	userapp "github.com/muhammadheryan/hub-fulfillment/application/user"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ProductApp   productapp.ProductApp
	OrderApp     orderapp.OrderApp
	HubApp       hubapp.HubApp
	InventoryApp inventoryapp.InventoryApp
	RestockApp   restockapp.RestockApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	staff := RequireRoles(constant.UserRoleHubManager)
	customer := RequireRoles(constant.UserRoleCustomer)
	admin := RequireRoles()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Catalog
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{productID}", rh.GetProduct).Methods(http.MethodGet)

	// Orders
	mux.HandleFunc("/orders", customer(rh.PlaceOrder)).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderID}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{orderID}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderID}/collection/verify", staff(rh.VerifyCollection)).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderID}/delivery/confirm", staff(rh.ConfirmDelivery)).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{orderID}/ready-for-collection", staff(rh.MarkReadyForCollection)).Methods(http.MethodPost)
	mux.HandleFunc("/hubs/{hubID}/orders/{orderID}/scan-in", staff(rh.ScanIn)).Methods(http.MethodPost)
	mux.HandleFunc("/hubs/{hubID}/orders/{orderID}/dispatch", staff(rh.Dispatch)).Methods(http.MethodPost)

	// Hubs and stock
	mux.HandleFunc("/hubs", rh.ListHubs).Methods(http.MethodGet)
	mux.HandleFunc("/hubs", admin(rh.CreateHub)).Methods(http.MethodPost)
	mux.HandleFunc("/hubs/{hubID}", rh.GetHub).Methods(http.MethodGet)
	mux.HandleFunc("/hubs/{hubID}", admin(rh.UpdateHub)).Methods(http.MethodPut)
	mux.HandleFunc("/hubs/{hubID}/status", admin(rh.SetHubStatus)).Methods(http.MethodPut)
	mux.HandleFunc("/hubs/{hubID}/inventory/{productID}", staff(rh.GetInventory)).Methods(http.MethodGet)
	mux.HandleFunc("/hubs/{hubID}/inventory/{productID}/stock", admin(rh.ReceiveStock)).Methods(http.MethodPost)
	mux.HandleFunc("/hubs/{hubID}/inventory/{productID}/restock", staff(rh.RequestRestock)).Methods(http.MethodPost)

	// Restock requests
	mux.HandleFunc("/restocks", staff(rh.ListRestocks)).Methods(http.MethodGet)
	mux.HandleFunc("/restocks/{requestID}/approve", admin(rh.ApproveRestock)).Methods(http.MethodPost)
	mux.HandleFunc("/restocks/{requestID}/reject", admin(rh.RejectRestock)).Methods(http.MethodPost)

	// Internal callbacks
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/sweep", rh.SweepPendingApprovals).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{orderID}/payment", rh.ConfirmPayment).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Health handler
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, nil)
}

// Register handler
// @Summary Register user
// @Description Register a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Description Page the catalog; hub_id narrows availability to one hub
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Param hub_id query int false "Hub"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	hubID, err := queryID(r, "hub_id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.ListProducts(r.Context(), hubID, queryInt(r, "page", 1), queryInt(r, "per_page", 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param productID path int true "Product ID"
// @Param hub_id query int false "Hub"
// @Success 200 {object} model.ProductDetail
// @Failure 400 {object} Response
// @Router /products/{productID} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productID")
	if err != nil {
		writeError(w, err)
		return
	}
	hubID, err := queryID(r, "hub_id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.GetProduct(r.Context(), productID, hubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
