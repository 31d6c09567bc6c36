package domain

import (
	"time"

	"github.com/google/uuid"
)

// Driver is a gas delivery driver profile.
type Driver struct {
	ID                 uuid.UUID
	Name               string
	Phone              string
	Code               string
	CarNumber          string
	PasswordHash       []byte
	Status             DriverStatus
	Location           *Location
	TotalDeliveries    int
	Earnings           int64
	LastActive         time.Time
	LastDelivery       *time.Time
	LastDeliveryAmount int64
	CreatedAt          time.Time
}

// DriverFilter narrows driver listings. Zero values mean "no constraint".
type DriverFilter struct {
	Status DriverStatus
	Search string
	Limit  int
	Offset int
}

// NearbyDriver is an available driver annotated with the distance to a customer.
type NearbyDriver struct {
	Driver     Driver
	DistanceKm float64
	ETAMin     int
}

// DriverStats summarises the delivered work of a single driver.
type DriverStats struct {
	DriverID       uuid.UUID
	DeliveredCount int
	TotalEarned    int64
}

// DriverSummary is an admin view of a driver with its delivery totals.
type DriverSummary struct {
	Driver         Driver
	DeliveredCount int
	TotalEarned    int64
}
