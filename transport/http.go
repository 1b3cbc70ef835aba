package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
	utilsContext "github.com/muhammadheryan/inventory-tracker/utils/context"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-tracker/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"

	orchestratorapp "github.com/muhammadheryan/inventory-tracker/application/orchestrator"
	productapp "github.com/muhammadheryan/inventory-tracker/application/product"
)

type RestHandler struct {
	Orchestrator *orchestratorapp.Orchestrator
	ProductApp   productapp.ProductApp
}

func NewTransport(orch *orchestratorapp.Orchestrator, productApp productapp.ProductApp, jwtSecret, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Orchestrator: orch,
		ProductApp:   productApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// Warehouse intake, called by receiving-dock systems with a static key
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/ledger/receive", rh.ReceiveStock).Methods(http.MethodPost)

	// Product catalog (admin)
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	mux.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// Ledger read model
	mux.HandleFunc("/ledger/snapshot", rh.GetSnapshot).Methods(http.MethodGet)

	// Stock requests (seller submits, admin resolves)
	mux.HandleFunc("/requests", rh.SubmitRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests", rh.ListRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/{id}/approve", rh.ApproveRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests/{id}/reject", rh.RejectRequest).Methods(http.MethodPost)

	// Stock transfers (admin)
	mux.HandleFunc("/transfers", rh.InitiateTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers", rh.ListTransfers).Methods(http.MethodGet)
	mux.HandleFunc("/transfers/{id}/advance", rh.AdvanceTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/complete", rh.CompleteTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/cancel", rh.CancelTransfer).Methods(http.MethodPost)

	// Point of sale (seller)
	mux.HandleFunc("/sales/quote", rh.QuoteSale).Methods(http.MethodPost)
	mux.HandleFunc("/sales", rh.RecordSale).Methods(http.MethodPost)
	mux.HandleFunc("/sales", rh.ListSales).Methods(http.MethodGet)
	mux.HandleFunc("/sales/{id}/refund", rh.RefundSale).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(jwtSecret))

	return mux
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, nil)
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrValidation)
	}
	return id, nil
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	role, _ := utilsContext.GetRole(r.Context())
	if role != constant.RoleAdmin {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return false
	}
	return true
}

// sellerLocation resolves the location a seller operation acts on. Sellers
// are pinned to the location in their token; admins may pass ?location_id.
func sellerLocation(r *http.Request) (uint64, bool) {
	role, _ := utilsContext.GetRole(r.Context())
	if role == constant.RoleSeller {
		return utilsContext.GetLocationID(r.Context())
	}
	if raw := r.URL.Query().Get("location_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		return id, err == nil && id > 0
	}
	return 0, false
}

// CreateProduct handler
// @Summary Create product
// @Description Create a catalog product (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.CustomError
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} response
// @Router /products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.Update(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.List(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Description Delete a product, refused while any batch still holds stock
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// GetSnapshot handler
// @Summary Ledger snapshot
// @Description Read model of available and reserved quantities per batch
// @Tags Ledger
// @Produce json
// @Param product_id query int false "Product ID"
// @Param location_id query int false "Location ID"
// @Success 200 {array} model.SnapshotEntry
// @Router /ledger/snapshot [get]
func (s *RestHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	filter := &model.SnapshotFilter{}
	if raw := r.URL.Query().Get("product_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrValidation))
			return
		}
		filter.ProductID = &id
	}
	if raw := r.URL.Query().Get("location_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrValidation))
			return
		}
		filter.LocationID = &id
	}

	// Sellers only see their own location
	if role, _ := utilsContext.GetRole(r.Context()); role == constant.RoleSeller {
		locationID, ok := utilsContext.GetLocationID(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		filter.LocationID = &locationID
	}

	res, err := s.Orchestrator.GetLedgerSnapshot(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReceiveStock handler
// @Summary Receive stock into a location
// @Description Idempotent warehouse intake, keyed by idempotency token
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body model.ReceiveRequest true "Receive Request"
// @Success 200 {object} model.Batch
// @Router /internal/ledger/receive [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	var req model.ReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.Orchestrator.ReceiveStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitRequest handler
// @Summary Submit stock request
// @Description Seller asks the warehouse for stock, no ledger effect
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body model.SubmitRequestInput true "Submit Request"
// @Success 200 {object} model.StockRequest
// @Router /requests [post]
func (s *RestHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	locationID, ok := sellerLocation(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var input model.SubmitRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	input.SellerID = locationID
	if err := validatorx.ValidateStruct(&input); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.Orchestrator.SubmitRequest(r.Context(), &input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListRequests handler
// @Summary List stock requests
// @Tags Requests
// @Produce json
// @Param status query int false "Status filter"
// @Success 200 {array} model.StockRequest
// @Router /requests [get]
func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	var sellerID *uint64
	if role, _ := utilsContext.GetRole(r.Context()); role == constant.RoleSeller {
		locationID, ok := utilsContext.GetLocationID(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		sellerID = &locationID
	}

	var status *constant.RequestStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrValidation))
			return
		}
		st := constant.RequestStatus(n)
		status = &st
	}

	res, err := s.Orchestrator.ListRequests(r.Context(), sellerID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveRequest handler
// @Summary Approve stock request
// @Description Authorizes a subsequent transfer, moves no stock (admin only)
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body model.ResolveRequestInput false "Approval notes"
// @Success 200 {object} response
// @Router /requests/{id}/approve [post]
func (s *RestHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input model.ResolveRequestInput
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&input)
	}

	if err := s.Orchestrator.ApproveRequest(r.Context(), id, input.Notes); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// RejectRequest handler
// @Summary Reject stock request
// @Description Rejection reason is mandatory (admin only)
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body model.RejectRequestInput true "Rejection reason"
// @Success 200 {object} response
// @Router /requests/{id}/reject [post]
func (s *RestHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input model.RejectRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := s.Orchestrator.RejectRequest(r.Context(), id, input.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// InitiateTransfer handler
// @Summary Initiate stock transfer
// @Description Reserves warehouse stock and creates a pending transfer (admin only)
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body model.InitiateTransferRequest true "Initiate Transfer Request"
// @Success 200 {object} model.StockTransfer
// @Router /transfers [post]
func (s *RestHandler) InitiateTransfer(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req model.InitiateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.Orchestrator.InitiateTransfer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListTransfers handler
// @Summary List stock transfers
// @Tags Transfers
// @Produce json
// @Success 200 {array} model.StockTransfer
// @Router /transfers [get]
func (s *RestHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	var destination *uint64
	if role, _ := utilsContext.GetRole(r.Context()); role == constant.RoleSeller {
		locationID, ok := utilsContext.GetLocationID(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		destination = &locationID
	}

	res, err := s.Orchestrator.ListTransfers(r.Context(), destination)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdvanceTransfer handler
// @Summary Advance transfer to in-transit
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} response
// @Router /transfers/{id}/advance [post]
func (s *RestHandler) AdvanceTransfer(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.Orchestrator.AdvanceTransfer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CompleteTransfer handler
// @Summary Complete transfer
// @Description Commits the source debit and destination credit atomically (admin only)
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.StockTransfer
// @Router /transfers/{id}/complete [post]
func (s *RestHandler) CompleteTransfer(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.Orchestrator.CompleteTransfer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CancelTransfer handler
// @Summary Cancel pending transfer
// @Description Releases the held reservation back to the source batch (admin only)
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} response
// @Router /transfers/{id}/cancel [post]
func (s *RestHandler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.Orchestrator.CancelTransfer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// QuoteSale handler
// @Summary Quote a sale
// @Description Prices lines against current availability, mutates nothing
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body model.QuoteRequest true "Quote Request"
// @Success 200 {object} model.QuoteResponse
// @Router /sales/quote [post]
func (s *RestHandler) QuoteSale(w http.ResponseWriter, r *http.Request) {
	// Sellers quote against their own location only; admins are unscoped
	// unless they pass ?location_id.
	locationID, scoped := sellerLocation(r)
	if role, _ := utilsContext.GetRole(r.Context()); role == constant.RoleSeller && !scoped {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	if scoped {
		req.LocationID = locationID
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.Orchestrator.QuoteSale(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RecordSale handler
// @Summary Record a sale
// @Description All-or-nothing batch depletion at point of sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body model.RecordSaleRequest true "Record Sale Request"
// @Success 200 {object} model.SaleResponse
// @Router /sales [post]
func (s *RestHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	locationID, ok := sellerLocation(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}
	req.LocationID = locationID
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, err)
		return
	}

	sale, err := s.Orchestrator.RecordSale(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, &model.SaleResponse{
		SaleID:     sale.ID,
		TotalCents: sale.TotalCents,
		CreatedAt:  sale.CreatedAt,
	})
}

// ListSales handler
// @Summary List sales
// @Tags Sales
// @Produce json
// @Success 200 {array} model.Sale
// @Router /sales [get]
func (s *RestHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	var locationID *uint64
	if role, _ := utilsContext.GetRole(r.Context()); role == constant.RoleSeller {
		id, ok := utilsContext.GetLocationID(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		locationID = &id
	}

	res, err := s.Orchestrator.ListSales(r.Context(), locationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RefundSale handler
// @Summary Refund a sale
// @Description Re-credits each line's originating batch, only legal once
// @Tags Sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} model.Sale
// @Router /sales/{id}/refund [post]
func (s *RestHandler) RefundSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Sellers may only refund sales recorded at their own location.
	var scope *uint64
	if role, _ := utilsContext.GetRole(r.Context()); role == constant.RoleSeller {
		locationID, ok := utilsContext.GetLocationID(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		scope = &locationID
	}

	res, err := s.Orchestrator.RefundSale(r.Context(), id, scope)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
