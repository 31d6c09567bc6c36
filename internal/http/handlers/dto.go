package handlers

import "time"

type locationDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type routeDTO struct {
	Coords      []locationDTO `json:"coords"`
	DurationMin int           `json:"duration_min"`
	DistanceKm  float64       `json:"distance_km"`
	Fallback    bool          `json:"fallback"`
}

type driverDTO struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Phone              string       `json:"phone"`
	Code               string       `json:"code"`
	CarNumber          string       `json:"car_number,omitempty"`
	Status             string       `json:"status"`
	Location           *locationDTO `json:"location,omitempty"`
	TotalDeliveries    int          `json:"total_deliveries"`
	Earnings           int64        `json:"earnings"`
	LastActive         time.Time    `json:"last_active"`
	LastDelivery       *time.Time   `json:"last_delivery,omitempty"`
	LastDeliveryAmount int64        `json:"last_delivery_amount,omitempty"`
}

type nearbyDriverDTO struct {
	Driver     driverDTO `json:"driver"`
	DistanceKm float64   `json:"distance_km"`
	ETAMin     int       `json:"eta_min"`
}

type pricingDTO struct {
	Small        int64     `json:"small"`
	Medium       int64     `json:"medium"`
	Large        int64     `json:"large"`
	GasAvailable bool      `json:"gas_available"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type quoteRequest struct {
	Location locationDTO `json:"location"`
	GasType  string      `json:"gas_type"`
}

type quoteDTO struct {
	Driver       nearbyDriverDTO `json:"driver"`
	Route        routeDTO        `json:"route"`
	UnitPrice    int64           `json:"unit_price"`
	GasAvailable bool            `json:"gas_available"`
}

type createRequestRequest struct {
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Location     locationDTO `json:"location"`
	GasType      string      `json:"gas_type"`
	Quantity     int         `json:"quantity"`
	Notes        string      `json:"notes,omitempty"`
	DriverID     *string     `json:"driver_id,omitempty"`
}

type requestDTO struct {
	ID               string       `json:"id"`
	CustomerName     string       `json:"customer_name"`
	Phone            string       `json:"phone"`
	Location         locationDTO  `json:"location"`
	GasType          string       `json:"gas_type"`
	Quantity         int          `json:"quantity"`
	Total            int64        `json:"total"`
	Notes            string       `json:"notes,omitempty"`
	DriverID         *string      `json:"driver_id,omitempty"`
	DriverName       string       `json:"driver_name,omitempty"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	DeliveredAt      *time.Time   `json:"delivered_at,omitempty"`
	DeliveryLocation *locationDTO `json:"delivery_location,omitempty"`
}

type trackingDTO struct {
	Request         requestDTO `json:"request"`
	Driver          driverDTO  `json:"driver"`
	Route           routeDTO   `json:"route"`
	ETAMin          int        `json:"eta_min"`
	CountdownSec    int        `json:"countdown_sec"`
	DriverReachable bool       `json:"driver_reachable"`
	HeadingDegrees  float64    `json:"heading_degrees"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type activeRequestDTO struct {
	Request    requestDTO `json:"request"`
	DistanceKm float64    `json:"distance_km"`
	ETAMin     int        `json:"eta_min"`
}

type deliverRequest struct {
	Quantity int          `json:"quantity"`
	Location *locationDTO `json:"location,omitempty"`
}

type statsDTO struct {
	DriverID       string `json:"driver_id"`
	DeliveredCount int    `json:"delivered_count"`
	TotalEarned    int64  `json:"total_earned"`
}

type driverSummaryDTO struct {
	Driver         driverDTO `json:"driver"`
	DeliveredCount int       `json:"delivered_count"`
	TotalEarned    int64     `json:"total_earned"`
}

type createDriverRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Code      string `json:"code"`
	CarNumber string `json:"car_number,omitempty"`
	Password  string `json:"password,omitempty"`
}

type pricingRequest struct {
	Small        int64 `json:"small"`
	Medium       int64 `json:"medium"`
	Large        int64 `json:"large"`
	GasAvailable *bool `json:"gas_available,omitempty"`
}

type availabilityRequest struct {
	Available *bool `json:"available"`
}

type bucketDTO struct {
	Name  string `json:"name,omitempty"`
	Count int    `json:"count"`
	Total int64  `json:"total"`
}

type reportDTO struct {
	Deliveries   []requestDTO         `json:"deliveries"`
	Count        int                  `json:"count"`
	Revenue      int64                `json:"revenue"`
	AverageOrder float64              `json:"average_order"`
	ByGasType    map[string]bucketDTO `json:"by_gas_type"`
	ByDriver     map[string]bucketDTO `json:"by_driver"`
}
