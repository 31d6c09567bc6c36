// Package customer implements ordering and tracking for customers.
package customer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/geo"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/ports/requesttx"
)

// MaxNearby is the number of drivers offered to a customer.
const MaxNearby = 3

// Deps groups the collaborators of Service.
type Deps struct {
	Drivers   driverRepository
	Requests  requestRepository
	Pricing   pricingService
	Planner   routePlanner
	Publisher publisher
	Logger    logx.Logger
}

// Service coordinates customer ordering.
type Service struct {
	drivers          driverRepository
	requests         requestRepository
	pricing          pricingService
	planner          routePlanner
	publisher        publisher
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
	newID            func() uuid.UUID
}

// NewService creates a customer Service.
func NewService(d Deps, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger := d.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		drivers:          d.Drivers,
		requests:         d.Requests,
		pricing:          d.Pricing,
		planner:          d.Planner,
		publisher:        d.Publisher,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.New,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// CreateInput is a new customer order.
type CreateInput struct {
	CustomerName string
	Phone        string
	Location     domain.Location
	GasType      domain.GasType
	Quantity     int
	Notes        string
	DriverID     *uuid.UUID
}

// NearestDrivers returns up to MaxNearby available drivers closest to loc.
func (s *Service) NearestDrivers(ctx context.Context, loc domain.Location) ([]domain.NearbyDriver, error) {
	if !loc.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.nearest(ctx, loc)
}

func (s *Service) nearest(ctx context.Context, loc domain.Location) ([]domain.NearbyDriver, error) {
	drivers, err := s.drivers.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NearbyDriver, 0, len(drivers))
	for _, d := range drivers {
		if d.Location == nil || d.Status != domain.DriverAvailable {
			continue
		}
		km := geo.Distance(loc, *d.Location)
		out = append(out, domain.NearbyDriver{Driver: d, DistanceKm: km, ETAMin: geo.ETAMinutes(km)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no drivers available: %w", apperr.ErrNotFound)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	if len(out) > MaxNearby {
		out = out[:MaxNearby]
	}
	for i := range out {
		out[i].DistanceKm = geo.Round1(out[i].DistanceKm)
	}
	return out, nil
}

// Quote offers the nearest driver, the route to the customer and the unit price.
func (s *Service) Quote(ctx context.Context, loc domain.Location, gas domain.GasType) (domain.Quote, error) {
	if !loc.Valid() {
		return domain.Quote{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.pricing.Current(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	nearby, err := s.nearest(ctx, loc)
	if err != nil {
		return domain.Quote{}, err
	}
	best := nearby[0]
	return domain.Quote{
		Driver:       best,
		Route:        s.planner.Route(ctx, *best.Driver.Location, loc),
		UnitPrice:    p.UnitPrice(gas.Normalize()),
		GasAvailable: p.GasAvailable,
	}, nil
}

// CreateRequest stores a new order. With a driver the request is accepted at
// once; without one it stays pending until dispatch assigns a driver.
func (s *Service) CreateRequest(ctx context.Context, in CreateInput) (*domain.DeliveryRequest, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.CustomerName == "" || in.Phone == "" || !in.Location.Valid() || in.Quantity < 0 {
		return nil, apperr.ErrInvalid
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	gas := in.GasType.Normalize()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.pricing.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !p.GasAvailable {
		return nil, apperr.ErrUnavailable
	}

	req := &domain.DeliveryRequest{
		ID:           s.newID(),
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Location:     in.Location,
		GasType:      gas,
		Quantity:     in.Quantity,
		Total:        int64(in.Quantity) * p.UnitPrice(gas),
		Notes:        strings.TrimSpace(in.Notes),
		Status:       domain.RequestPending,
	}

	if in.DriverID != nil {
		d, err := s.drivers.Get(ctx, *in.DriverID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, apperr.ErrNotFound
		}
		if !d.Status.Reachable() {
			return nil, fmt.Errorf("driver %s is %s: %w", d.ID, d.Status, apperr.ErrConflict)
		}
		id := d.ID
		req.DriverID = &id
		req.DriverName = d.Name
		req.Status = domain.RequestAccepted
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("delivery request created",
		logx.String("request_id", req.ID.String()),
		logx.String("status", string(req.Status)),
		logx.String("gas_type", string(req.GasType)),
		logx.Int("quantity", req.Quantity),
		logx.Int64("total", req.Total),
	)
	s.publish(ctx, domain.RequestEvent(domain.EventRequestCreated, *req, s.now()))
	return req, nil
}

// Track returns the live view of an accepted request.
func (s *Service) Track(ctx context.Context, requestID uuid.UUID) (domain.Tracking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req, err := s.requests.Get(ctx, requestID)
	if err != nil {
		return domain.Tracking{}, err
	}
	if req == nil {
		return domain.Tracking{}, apperr.ErrNotFound
	}
	if req.DriverID == nil {
		return domain.Tracking{}, fmt.Errorf("request %s has no driver: %w", req.ID, apperr.ErrConflict)
	}
	d, err := s.drivers.Get(ctx, *req.DriverID)
	if err != nil {
		return domain.Tracking{}, err
	}
	if d == nil {
		return domain.Tracking{}, fmt.Errorf("driver %s: %w", *req.DriverID, apperr.ErrNotFound)
	}
	if d.Location == nil {
		return domain.Tracking{}, fmt.Errorf("driver %s location unknown: %w", d.ID, apperr.ErrUnavailable)
	}

	route := s.planner.Route(ctx, *d.Location, req.Location)
	eta := geo.ETAMinutes(geo.Distance(*d.Location, req.Location))
	return domain.Tracking{
		Request:         *req,
		Driver:          *d,
		Route:           route,
		ETAMin:          eta,
		CountdownSec:    eta * 60,
		DriverReachable: d.Status.Reachable(),
		HeadingDegrees:  geo.Heading(route.Coords),
	}, nil
}

// Cancel moves a pending or accepted request to cancelled.
func (s *Service) Cancel(ctx context.Context, requestID uuid.UUID) (*domain.DeliveryRequest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out domain.DeliveryRequest
	err := s.requests.WithTx(ctx, func(tx requesttx.Repository) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.ErrNotFound
		}
		if !domain.CanTransition(req.Status, domain.RequestCancelled) {
			return fmt.Errorf("request %s is %s: %w", req.ID, req.Status, apperr.ErrConflict)
		}
		if err := tx.UpdateRequestStatus(ctx, req.ID, domain.RequestCancelled); err != nil {
			return err
		}
		if req.Status == domain.RequestAccepted && req.DriverID != nil {
			if _, err := requesttx.ReleaseDriver(ctx, tx, *req.DriverID); err != nil {
				return err
			}
		}
		out = *req
		out.Status = domain.RequestCancelled
		out.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery request cancelled", logx.String("request_id", out.ID.String()))
	s.publish(ctx, domain.RequestEvent(domain.EventRequestUpdated, out, s.now()))
	return &out, nil
}

func (s *Service) publish(ctx context.Context, ev domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("publish event failed",
			logx.String("type", string(ev.Type)),
			logx.String("request_id", ev.RequestID.String()),
			logx.Err(err),
		)
	}
}
