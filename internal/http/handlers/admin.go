package handlers

import (
	"net/http"
	"strings"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/admin"
)

// AdminHandler serves the back-office endpoints.
type AdminHandler struct {
	usecase adminUsecase
	pricing pricingReader
	logger  logx.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(logger logx.Logger, uc adminUsecase, pricing pricingReader) *AdminHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AdminHandler{usecase: uc, pricing: pricing, logger: logger}
}

// Drivers handles GET /admin/drivers?q=..
func (h *AdminHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.Drivers(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, summariesToResponse(list))
}

// CreateDriver handles POST /admin/drivers.
// @Summary Register a driver
// @Tags admin
// @Accept json
// @Produce json
// @Param request body createDriverRequest true "Driver profile"
// @Success 201 {object} driverDTO
// @Failure 400 {object} errResponse "invalid input"
// @Failure 409 {object} errResponse "phone or code already taken"
// @Router /admin/drivers [post]
func (h *AdminHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	d, err := h.usecase.CreateDriver(r.Context(), admin.CreateDriverInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Code:      req.Code,
		CarNumber: req.CarNumber,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, driverToResponse(*d))
}

// DeleteDriver handles DELETE /admin/drivers/{id}.
func (h *AdminHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.usecase.DeleteDriver(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdatePricing handles PUT /admin/pricing. An omitted gas_available keeps
// the stored flag.
func (h *AdminHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var req pricingRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	p := domain.Pricing{Small: req.Small, Medium: req.Medium, Large: req.Large}
	if req.GasAvailable != nil {
		p.GasAvailable = *req.GasAvailable
	} else {
		current, err := h.pricing.Current(r.Context())
		if err != nil {
			writeServiceError(h.logger, w, r, err)
			return
		}
		p.GasAvailable = current.GasAvailable
	}

	updated, err := h.usecase.UpdatePricing(r.Context(), p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pricingToResponse(updated))
}

// SetAvailability handles PUT /admin/pricing/availability.
func (h *AdminHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Available == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "available is required")
		return
	}
	p, err := h.usecase.SetGasAvailable(r.Context(), *req.Available)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pricingToResponse(p))
}

// Report handles GET /admin/reports/deliveries?q=..&sort=..&order=asc|desc
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := domain.ReportQuery{
		Search: strings.TrimSpace(qs.Get("q")),
		SortBy: domain.ReportSort(strings.ToLower(strings.TrimSpace(qs.Get("sort")))),
	}
	switch strings.ToLower(strings.TrimSpace(qs.Get("order"))) {
	case "", "desc":
	case "asc":
		q.Ascending = true
	default:
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order")
		return
	}

	rep, err := h.usecase.DeliveryReport(r.Context(), q)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, reportToResponse(rep))
}
