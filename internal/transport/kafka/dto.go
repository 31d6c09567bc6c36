package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
)

// LocationDTO is the wire form of domain.Location.
type LocationDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// RequestDTO is the request snapshot carried by request events.
type RequestDTO struct {
	ID               string       `json:"id"`
	CustomerName     string       `json:"customer_name"`
	Phone            string       `json:"phone"`
	Location         LocationDTO  `json:"location"`
	GasType          string       `json:"gas_type"`
	Quantity         int          `json:"quantity"`
	Total            int64        `json:"total"`
	Notes            string       `json:"notes,omitempty"`
	DriverID         string       `json:"driver_id,omitempty"`
	DriverName       string       `json:"driver_name,omitempty"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	DeliveredAt      *time.Time   `json:"delivered_at,omitempty"`
	DeliveryLocation *LocationDTO `json:"delivery_location,omitempty"`
}

// EventDTO is a data transfer object for domain.Event
type EventDTO struct {
	Type       string       `json:"type"`
	RequestID  string       `json:"request_id,omitempty"`
	DriverID   string       `json:"driver_id,omitempty"`
	Status     string       `json:"status,omitempty"`
	Request    *RequestDTO  `json:"request,omitempty"`
	Location   *LocationDTO `json:"location,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// FromDomain converts domain.Event to EventDTO
func FromDomain(e domain.Event) EventDTO {
	dto := EventDTO{
		Type:       string(e.Type),
		Status:     string(e.Status),
		DriverID:   optionalID(e.DriverID),
		Location:   locationDTO(e.Location),
		OccurredAt: e.OccurredAt,
	}
	if e.RequestID != uuid.Nil {
		dto.RequestID = e.RequestID.String()
	}
	if r := e.Request; r != nil {
		dto.Request = &RequestDTO{
			ID:               r.ID.String(),
			CustomerName:     r.CustomerName,
			Phone:            r.Phone,
			Location:         *locationDTO(&r.Location),
			GasType:          string(r.GasType),
			Quantity:         r.Quantity,
			Total:            r.Total,
			Notes:            r.Notes,
			DriverID:         optionalID(r.DriverID),
			DriverName:       r.DriverName,
			Status:           string(r.Status),
			CreatedAt:        r.CreatedAt,
			UpdatedAt:        r.UpdatedAt,
			DeliveredAt:      r.DeliveredAt,
			DeliveryLocation: locationDTO(r.DeliveryLocation),
		}
	}
	return dto
}

// ToDomain converts EventDTO to domain.Event
func ToDomain(dto EventDTO) (domain.Event, error) {
	e := domain.Event{
		Type:       domain.EventType(strings.TrimSpace(dto.Type)),
		Status:     domain.RequestStatus(strings.TrimSpace(dto.Status)),
		Location:   locationFromDTO(dto.Location),
		OccurredAt: dto.OccurredAt,
	}
	var err error
	if e.RequestID, err = parseID(dto.RequestID); err != nil {
		return domain.Event{}, fmt.Errorf("request_id: %w", err)
	}
	if e.DriverID, err = parseOptionalID(dto.DriverID); err != nil {
		return domain.Event{}, fmt.Errorf("driver_id: %w", err)
	}

	if r := dto.Request; r != nil {
		req := domain.DeliveryRequest{
			CustomerName:     r.CustomerName,
			Phone:            r.Phone,
			Location:         *locationFromDTO(&r.Location),
			GasType:          domain.GasType(r.GasType),
			Quantity:         r.Quantity,
			Total:            r.Total,
			Notes:            r.Notes,
			DriverName:       r.DriverName,
			Status:           domain.RequestStatus(r.Status),
			CreatedAt:        r.CreatedAt,
			UpdatedAt:        r.UpdatedAt,
			DeliveredAt:      r.DeliveredAt,
			DeliveryLocation: locationFromDTO(r.DeliveryLocation),
		}
		if req.ID, err = parseID(r.ID); err != nil {
			return domain.Event{}, fmt.Errorf("request.id: %w", err)
		}
		if req.DriverID, err = parseOptionalID(r.DriverID); err != nil {
			return domain.Event{}, fmt.Errorf("request.driver_id: %w", err)
		}
		e.Request = &req
	}
	return e, nil
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func parseID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}

func parseOptionalID(s string) (*uuid.UUID, error) {
	id, err := parseID(s)
	if err != nil || id == uuid.Nil {
		return nil, err
	}
	return &id, nil
}

func locationDTO(l *domain.Location) *LocationDTO {
	if l == nil {
		return nil
	}
	return &LocationDTO{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

func locationFromDTO(l *LocationDTO) *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}
