package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	invoiceapp "github.com/hanifmaulana/quotedesk/application/invoice"
	orderapp "github.com/hanifmaulana/quotedesk/application/order"
	productapp "github.com/hanifmaulana/quotedesk/application/product"
	quoteapp "github.com/hanifmaulana/quotedesk/application/quote"
	userapp "github.com/hanifmaulana/quotedesk/application/user"
	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
	utilsContext "github.com/hanifmaulana/quotedesk/utils/context"
	"github.com/hanifmaulana/quotedesk/utils/errors"
	validatorx "github.com/hanifmaulana/quotedesk/utils/validator"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	QuoteApp   quoteapp.QuoteApp
	OrderApp   orderapp.OrderApp
	ProductApp productapp.ProductApp
	InvoiceApp invoiceapp.InvoiceApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Catalog
	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)

	// Quote workflow
	router.HandleFunc("/quotes", rh.CreateQuote).Methods(http.MethodPost)
	router.HandleFunc("/quotes", rh.ListQuotes).Methods(http.MethodGet)
	router.HandleFunc("/quotes/{id}", rh.GetQuote).Methods(http.MethodGet)
	router.HandleFunc("/quotes/{id}/recheck-availability", AdminOnly(rh.RecheckAvailability)).Methods(http.MethodPost)
	router.HandleFunc("/quotes/{id}/quantities", rh.UpdateQuantities).Methods(http.MethodPatch)
	router.HandleFunc("/quotes/{id}/pricing", AdminOnly(rh.UpdatePricing)).Methods(http.MethodPatch)
	router.HandleFunc("/quotes/{id}/status", AdminOnly(rh.UpdateStatus)).Methods(http.MethodPatch)
	router.HandleFunc("/quotes/{id}/cancel", rh.CancelQuote).Methods(http.MethodPost)
	router.HandleFunc("/quotes/{id}/manual-invoice", AdminOnly(rh.AttachInvoice)).Methods(http.MethodPost)

	// Orders
	router.HandleFunc("/orders/from-quote/{quoteId}", AdminOnly(rh.CreateOrderFromQuote)).Methods(http.MethodPost)
	router.HandleFunc("/orders/{id}/pay", AdminOnly(rh.PayOrder)).Methods(http.MethodPost)

	// Internal routes, called by the expiration consumer
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/{id}/expire", rh.ExpireOrder).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Register handler
// @Summary Register user
// @Description Register a new client account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
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
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
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
// @Tags Product
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.List(r.Context(), queryInt(r, "page", 1), queryInt(r, "per_page", 10))
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
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateQuote handler
// @Summary Submit a quote request
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body model.CreateQuoteRequest true "Requested items"
// @Success 200 {object} model.CreateQuoteResponse
// @Failure 400 {object} errors.CustomError
// @Router /quotes [post]
func (s *RestHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	req.UserID = userID

	res, err := s.QuoteApp.CreateQuote(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListQuotes handler
// @Summary List quotes
// @Description Admin sees every quote; a client only their own
// @Tags Quote
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.QuoteListResponse
// @Router /quotes [get]
func (s *RestHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	role, _ := utilsContext.GetUserRole(ctx)
	if role == constant.RoleAdmin {
		userID = 0 // all users
	}

	res, err := s.QuoteApp.ListQuotes(ctx, userID, queryInt(r, "page", 1), queryInt(r, "per_page", 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetQuote handler
// @Summary Quote detail
// @Description Full quote view with resolved availability, pricing and allowed actions
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} model.QuoteView
// @Failure 403 {object} errors.CustomError
// @Router /quotes/{id} [get]
func (s *RestHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	role, _ := utilsContext.GetUserRole(ctx)

	res, err := s.QuoteApp.GetQuote(ctx, id, userID, role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RecheckAvailability handler
// @Summary Recheck stock availability
// @Description Snapshots current stock into the quote items
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /quotes/{id}/recheck-availability [post]
func (s *RestHandler) RecheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.QuoteApp.RecheckAvailability(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UpdateQuantities handler
// @Summary Update requested quantities
// @Description Client confirm-quantities step or admin quantity adjustment
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body model.UpdateQuantitiesRequest true "Resolved quantities"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /quotes/{id}/quantities [patch]
func (s *RestHandler) UpdateQuantities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateQuantitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	role, _ := utilsContext.GetUserRole(ctx)
	if err := s.QuoteApp.UpdateQuantities(ctx, id, role, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UpdatePricing handler
// @Summary Assign unit prices and fees
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body model.UpdatePricingRequest true "Unit prices plus charges"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /quotes/{id}/pricing [patch]
func (s *RestHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdatePricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.QuoteApp.UpdatePricing(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UpdateStatus handler
// @Summary Change quote status
// @Description Server re-validates the lifecycle gate before applying
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body model.UpdateStatusRequest true "Target status"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /quotes/{id}/status [patch]
func (s *RestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.QuoteApp.UpdateStatus(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CancelQuote handler
// @Summary Cancel an own quote
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /quotes/{id}/cancel [post]
func (s *RestHandler) CancelQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	role, _ := utilsContext.GetUserRole(ctx)
	if role == constant.RoleAdmin {
		userID = 0 // admins may cancel any quote
	}

	if err := s.QuoteApp.CancelQuote(ctx, id, userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// AttachInvoice handler
// @Summary Attach a manual invoice
// @Description Records an externally issued invoice and locks the quote
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body model.AttachInvoiceRequest true "Invoice number"
// @Success 200 {object} model.AttachInvoiceResponse
// @Failure 409 {object} errors.CustomError
// @Router /quotes/{id}/manual-invoice [post]
func (s *RestHandler) AttachInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AttachInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InvoiceApp.AttachManual(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateOrderFromQuote handler
// @Summary Convert a confirmed quote into an order
// @Description Reserves stock and locks the quote permanently
// @Tags Order
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Success 200 {object} model.OrderFromQuoteResponse
// @Failure 409 {object} errors.CustomError
// @Router /orders/from-quote/{quoteId} [post]
func (s *RestHandler) CreateOrderFromQuote(w http.ResponseWriter, r *http.Request) {
	quoteID, err := pathID(r, "quoteId")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateFromQuote(r.Context(), quoteID, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PayOrder handler
// @Summary Mark an order paid
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response
// @Failure 400 {object} errors.CustomError
// @Router /orders/{id}/pay [post]
func (s *RestHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.PayOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ExpireOrder handler, reached only through the internal subrouter.
func (s *RestHandler) ExpireOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.ExpireOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
