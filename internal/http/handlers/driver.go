package handlers

import (
	"net/http"
	"strings"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/driver"
)

// DriverHandler serves the driver app endpoints.
type DriverHandler struct {
	usecase driverUsecase
	logger  logx.Logger
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(logger logx.Logger, uc driverUsecase) *DriverHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DriverHandler{usecase: uc, logger: logger}
}

// UpdateLocation handles PUT /drivers/{id}/location.
func (h *DriverHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req locationDTO
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.usecase.UpdateLocation(r.Context(), id, req.toModel()); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Heartbeat handles POST /drivers/{id}/heartbeat.
func (h *DriverHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.usecase.Heartbeat(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles PUT /drivers/{id}/status.
func (h *DriverHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	status := domain.DriverStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err := h.usecase.SetStatus(r.Context(), id, status); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActiveRequests handles GET /drivers/{id}/requests with optional lat/lng.
func (h *DriverHandler) ActiveRequests(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	from, err := locationFromQuery(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.usecase.ActiveRequests(r.Context(), id, from)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, activeToResponse(list))
}

// Deliver handles POST /drivers/{id}/requests/{requestID}/deliver.
// @Summary Complete an accepted request
// @Tags driver
// @Accept json
// @Produce json
// @Param request body deliverRequest true "Delivered quantity and hand-over location"
// @Success 200 {object} requestDTO
// @Failure 400 {object} errResponse "invalid input"
// @Failure 403 {object} errResponse "driver deactivated"
// @Failure 404 {object} errResponse "request not found"
// @Failure 409 {object} errResponse "request not accepted by this driver"
// @Router /drivers/{id}/requests/{requestID}/deliver [post]
func (h *DriverHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	driverID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	requestID, err := idFromURL(r, "requestID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid request id")
		return
	}
	var req deliverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in := driver.DeliverInput{
		DriverID:  driverID,
		RequestID: requestID,
		Quantity:  req.Quantity,
	}
	if req.Location != nil {
		loc := req.Location.toModel()
		in.At = &loc
	}

	delivered, err := h.usecase.MarkDelivered(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestToResponse(*delivered))
}

// Stats handles GET /drivers/{id}/stats.
func (h *DriverHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	st, err := h.usecase.Stats(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statsToResponse(st))
}
