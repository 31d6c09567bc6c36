package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change notification.
type EventType string

// List of event types
const (
	EventRequestCreated EventType = "request.created"
	EventRequestUpdated EventType = "request.updated"
	EventDriverLocation EventType = "driver.location"
)

// Event notifies consumers about a request or driver change. Request is a
// snapshot taken after the change; Location is set for driver.location.
type Event struct {
	Type       EventType
	RequestID  uuid.UUID
	DriverID   *uuid.UUID
	Status     RequestStatus
	Request    *DeliveryRequest
	Location   *Location
	OccurredAt time.Time
}

// RequestEvent builds an event carrying a copy of r.
func RequestEvent(t EventType, r DeliveryRequest, at time.Time) Event {
	snapshot := r
	return Event{
		Type:       t,
		RequestID:  r.ID,
		DriverID:   r.DriverID,
		Status:     r.Status,
		Request:    &snapshot,
		OccurredAt: at,
	}
}

// DriverLocationEvent builds a driver.location event.
func DriverLocationEvent(driverID uuid.UUID, loc Location, at time.Time) Event {
	id := driverID
	return Event{
		Type:       EventDriverLocation,
		DriverID:   &id,
		Location:   &loc,
		OccurredAt: at,
	}
}
