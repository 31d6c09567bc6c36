package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRequest is a customer order for gas cylinders.
type DeliveryRequest struct {
	ID               uuid.UUID
	CustomerName     string
	Phone            string
	Location         Location
	GasType          GasType
	Quantity         int
	Total            int64
	Notes            string
	DriverID         *uuid.UUID
	DriverName       string
	Status           RequestStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeliveredAt      *time.Time
	DeliveryLocation *Location
}

// RequestFilter narrows request listings. Zero values mean "no constraint".
type RequestFilter struct {
	DriverID *uuid.UUID
	Status   RequestStatus
	Limit    int
}

// Completion carries the values written when a driver hands over the cylinders.
type Completion struct {
	RequestID        uuid.UUID
	DriverID         uuid.UUID
	DriverName       string
	Quantity         int
	Total            int64
	DeliveredAt      time.Time
	DeliveryLocation *Location
}

// ActiveRequest is an accepted request as seen by its driver.
type ActiveRequest struct {
	Request    DeliveryRequest
	DistanceKm float64
	ETAMin     int
}

// Tracking is the customer view of an accepted request.
type Tracking struct {
	Request         DeliveryRequest
	Driver          Driver
	Route           Route
	ETAMin          int
	CountdownSec    int
	DriverReachable bool
	HeadingDegrees  float64
}

// Quote is the pre-order offer shown to a customer.
type Quote struct {
	Driver       NearbyDriver
	Route        Route
	UnitPrice    int64
	GasAvailable bool
}

// EffectiveTotal is the stored total, or quantity (at least one) times the
// current unit price for requests delivered without a total.
func (r DeliveryRequest) EffectiveTotal(p Pricing) int64 {
	if r.Total > 0 {
		return r.Total
	}
	qty := r.Quantity
	if qty <= 0 {
		qty = 1
	}
	return int64(qty) * p.UnitPrice(r.GasType.Normalize())
}
