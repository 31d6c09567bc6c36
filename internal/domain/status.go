package domain

import "regexp"

type (
	// DriverStatus represents the status of a driver.
	DriverStatus string
	// RequestStatus represents the lifecycle state of a delivery request.
	RequestStatus string
	// GasType identifies the cylinder size.
	GasType string
)

// List of possible driver statuses
const (
	DriverAvailable DriverStatus = "available"
	DriverActive    DriverStatus = "active"
	DriverOffline   DriverStatus = "offline"
	DriverInactive  DriverStatus = "inactive"
)

// List of possible request statuses
const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestDelivered RequestStatus = "delivered"
	RequestCancelled RequestStatus = "cancelled"
)

// List of cylinder sizes
const (
	GasSmall  GasType = "small"
	GasMedium GasType = "medium"
	GasLarge  GasType = "large"
)

var allowedDriverStatuses = [...]DriverStatus{
	DriverAvailable, DriverActive, DriverOffline, DriverInactive,
}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Reachable reports whether a customer can be served by a driver in this status.
func (s DriverStatus) Reachable() bool {
	return s == DriverAvailable || s == DriverActive
}

var transitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestAccepted, RequestCancelled},
	RequestAccepted: {RequestDelivered, RequestCancelled},
}

// Valid checks if the RequestStatus is valid
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDelivered, RequestCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s RequestStatus) Terminal() bool {
	return s == RequestDelivered || s == RequestCancelled
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Normalize maps unknown or empty gas types to the medium cylinder.
func (g GasType) Normalize() GasType {
	switch g {
	case GasSmall, GasMedium, GasLarge:
		return g
	default:
		return GasMedium
	}
}

var rePhone = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
