package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/customer"
)

// CustomerHandler serves the ordering and tracking endpoints.
type CustomerHandler struct {
	usecase customerUsecase
	pricing pricingReader
	logger  logx.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(logger logx.Logger, uc customerUsecase, pricing pricingReader) *CustomerHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CustomerHandler{usecase: uc, pricing: pricing, logger: logger}
}

// Pricing handles GET /pricing.
// @Summary Current price list
// @Tags customer
// @Produce json
// @Success 200 {object} pricingDTO
// @Router /pricing [get]
func (h *CustomerHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	p, err := h.pricing.Current(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pricingToResponse(p))
}

// Quote handles POST /quotes.
// @Summary Offer the nearest driver with route and unit price
// @Tags customer
// @Accept json
// @Produce json
// @Param request body quoteRequest true "Customer location and cylinder size"
// @Success 200 {object} quoteDTO
// @Failure 400 {object} errResponse "invalid input"
// @Failure 404 {object} errResponse "no drivers available"
// @Router /quotes [post]
func (h *CustomerHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	q, err := h.usecase.Quote(r.Context(), req.Location.toModel(), gasType(req.GasType))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteToResponse(q))
}

// Nearby handles GET /drivers/nearby?lat=..&lng=..
func (h *CustomerHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	loc, err := locationFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if loc == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lng are required")
		return
	}
	list, err := h.usecase.NearestDrivers(r.Context(), *loc)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nearbyListToResponse(list))
}

// Create handles POST /requests.
// @Summary Place a delivery request
// @Tags customer
// @Accept json
// @Produce json
// @Param request body createRequestRequest true "Order"
// @Success 201 {object} requestDTO
// @Failure 400 {object} errResponse "invalid input"
// @Failure 409 {object} errResponse "driver not reachable"
// @Failure 503 {object} errResponse "gas delivery unavailable"
// @Router /requests [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in := customer.CreateInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Location:     req.Location.toModel(),
		GasType:      gasType(req.GasType),
		Quantity:     req.Quantity,
		Notes:        strings.TrimSpace(req.Notes),
	}
	if req.DriverID != nil && strings.TrimSpace(*req.DriverID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.DriverID))
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid driver_id")
			return
		}
		in.DriverID = &id
	}

	created, err := h.usecase.CreateRequest(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, requestToResponse(*created))
}

// Track handles GET /requests/{id}/tracking.
func (h *CustomerHandler) Track(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := h.usecase.Track(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, trackingToResponse(t))
}

// Cancel handles POST /requests/{id}/cancel.
func (h *CustomerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	cancelled, err := h.usecase.Cancel(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestToResponse(*cancelled))
}

func gasType(s string) domain.GasType {
	return domain.GasType(strings.ToLower(strings.TrimSpace(s)))
}
