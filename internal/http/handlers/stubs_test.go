package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/admin"
	"service-gas-delivery/internal/service/customer"
	"service-gas-delivery/internal/service/driver"
	testlog "service-gas-delivery/internal/testutil"
)

func testLogger() logx.Logger { return testlog.New().Logger() }

// routed builds a request with chi URL params given as name/value pairs.
func routed(method, target, body string, params ...string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rc := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rc.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

type stubPricing struct {
	currentFn func(ctx context.Context) (domain.Pricing, error)
}

func (s *stubPricing) Current(ctx context.Context) (domain.Pricing, error) {
	return s.currentFn(ctx)
}

type stubCustomerUsecase struct {
	nearestFn func(ctx context.Context, loc domain.Location) ([]domain.NearbyDriver, error)
	quoteFn   func(ctx context.Context, loc domain.Location, gas domain.GasType) (domain.Quote, error)
	createFn  func(ctx context.Context, in customer.CreateInput) (*domain.DeliveryRequest, error)
	trackFn   func(ctx context.Context, id uuid.UUID) (domain.Tracking, error)
	cancelFn  func(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error)
}

func (s *stubCustomerUsecase) NearestDrivers(ctx context.Context, loc domain.Location) ([]domain.NearbyDriver, error) {
	return s.nearestFn(ctx, loc)
}

func (s *stubCustomerUsecase) Quote(ctx context.Context, loc domain.Location, gas domain.GasType) (domain.Quote, error) {
	return s.quoteFn(ctx, loc, gas)
}

func (s *stubCustomerUsecase) CreateRequest(ctx context.Context, in customer.CreateInput) (*domain.DeliveryRequest, error) {
	return s.createFn(ctx, in)
}

func (s *stubCustomerUsecase) Track(ctx context.Context, id uuid.UUID) (domain.Tracking, error) {
	return s.trackFn(ctx, id)
}

func (s *stubCustomerUsecase) Cancel(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error) {
	return s.cancelFn(ctx, id)
}

type stubDriverUsecase struct {
	locationFn  func(ctx context.Context, id uuid.UUID, loc domain.Location) error
	heartbeatFn func(ctx context.Context, id uuid.UUID) error
	statusFn    func(ctx context.Context, id uuid.UUID, st domain.DriverStatus) error
	activeFn    func(ctx context.Context, id uuid.UUID, from *domain.Location) ([]domain.ActiveRequest, error)
	deliverFn   func(ctx context.Context, in driver.DeliverInput) (*domain.DeliveryRequest, error)
	statsFn     func(ctx context.Context, id uuid.UUID) (domain.DriverStats, error)
}

func (s *stubDriverUsecase) UpdateLocation(ctx context.Context, id uuid.UUID, loc domain.Location) error {
	return s.locationFn(ctx, id, loc)
}

func (s *stubDriverUsecase) Heartbeat(ctx context.Context, id uuid.UUID) error {
	return s.heartbeatFn(ctx, id)
}

func (s *stubDriverUsecase) SetStatus(ctx context.Context, id uuid.UUID, st domain.DriverStatus) error {
	return s.statusFn(ctx, id, st)
}

func (s *stubDriverUsecase) ActiveRequests(ctx context.Context, id uuid.UUID, from *domain.Location) ([]domain.ActiveRequest, error) {
	return s.activeFn(ctx, id, from)
}

func (s *stubDriverUsecase) MarkDelivered(ctx context.Context, in driver.DeliverInput) (*domain.DeliveryRequest, error) {
	return s.deliverFn(ctx, in)
}

func (s *stubDriverUsecase) Stats(ctx context.Context, id uuid.UUID) (domain.DriverStats, error) {
	return s.statsFn(ctx, id)
}

type stubAdminUsecase struct {
	driversFn      func(ctx context.Context, search string) ([]domain.DriverSummary, error)
	createFn       func(ctx context.Context, in admin.CreateDriverInput) (*domain.Driver, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	pricingFn      func(ctx context.Context, p domain.Pricing) (domain.Pricing, error)
	availabilityFn func(ctx context.Context, available bool) (domain.Pricing, error)
	reportFn       func(ctx context.Context, q domain.ReportQuery) (domain.DeliveryReport, error)
}

func (s *stubAdminUsecase) Drivers(ctx context.Context, search string) ([]domain.DriverSummary, error) {
	return s.driversFn(ctx, search)
}

func (s *stubAdminUsecase) CreateDriver(ctx context.Context, in admin.CreateDriverInput) (*domain.Driver, error) {
	return s.createFn(ctx, in)
}

func (s *stubAdminUsecase) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAdminUsecase) UpdatePricing(ctx context.Context, p domain.Pricing) (domain.Pricing, error) {
	return s.pricingFn(ctx, p)
}

func (s *stubAdminUsecase) SetGasAvailable(ctx context.Context, available bool) (domain.Pricing, error) {
	return s.availabilityFn(ctx, available)
}

func (s *stubAdminUsecase) DeliveryReport(ctx context.Context, q domain.ReportQuery) (domain.DeliveryReport, error) {
	return s.reportFn(ctx, q)
}

type stubFeed struct {
	topics []string
}

func (s *stubFeed) Serve(w http.ResponseWriter, _ *http.Request, topic string) {
	s.topics = append(s.topics, topic)
	w.WriteHeader(http.StatusSwitchingProtocols)
}
