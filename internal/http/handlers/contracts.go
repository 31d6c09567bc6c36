package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/service/admin"
	"service-gas-delivery/internal/service/customer"
	"service-gas-delivery/internal/service/driver"
)

type pricingReader interface {
	Current(ctx context.Context) (domain.Pricing, error)
}

type customerUsecase interface {
	NearestDrivers(ctx context.Context, loc domain.Location) ([]domain.NearbyDriver, error)
	Quote(ctx context.Context, loc domain.Location, gas domain.GasType) (domain.Quote, error)
	CreateRequest(ctx context.Context, in customer.CreateInput) (*domain.DeliveryRequest, error)
	Track(ctx context.Context, requestID uuid.UUID) (domain.Tracking, error)
	Cancel(ctx context.Context, requestID uuid.UUID) (*domain.DeliveryRequest, error)
}

type driverUsecase interface {
	UpdateLocation(ctx context.Context, driverID uuid.UUID, loc domain.Location) error
	Heartbeat(ctx context.Context, driverID uuid.UUID) error
	SetStatus(ctx context.Context, driverID uuid.UUID, status domain.DriverStatus) error
	ActiveRequests(ctx context.Context, driverID uuid.UUID, from *domain.Location) ([]domain.ActiveRequest, error)
	MarkDelivered(ctx context.Context, in driver.DeliverInput) (*domain.DeliveryRequest, error)
	Stats(ctx context.Context, driverID uuid.UUID) (domain.DriverStats, error)
}

type adminUsecase interface {
	Drivers(ctx context.Context, search string) ([]domain.DriverSummary, error)
	CreateDriver(ctx context.Context, in admin.CreateDriverInput) (*domain.Driver, error)
	DeleteDriver(ctx context.Context, id uuid.UUID) error
	UpdatePricing(ctx context.Context, p domain.Pricing) (domain.Pricing, error)
	SetGasAvailable(ctx context.Context, available bool) (domain.Pricing, error)
	DeliveryReport(ctx context.Context, q domain.ReportQuery) (domain.DeliveryReport, error)
}

type liveFeed interface {
	Serve(w http.ResponseWriter, r *http.Request, topic string)
}
