// Package admin implements the dashboard operations: driver management,
// pricing and delivery reports.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/ports/requesttx"
)

// Service coordinates admin operations.
type Service struct {
	drivers          driverRepository
	requests         requestRepository
	pricing          pricingService
	logger           logx.Logger
	operationTimeout time.Duration
	newID            func() uuid.UUID
	hashCost         int
}

// NewService creates an admin Service.
func NewService(drivers driverRepository, requests requestRepository, pricing pricingService, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		drivers:          drivers,
		requests:         requests,
		pricing:          pricing,
		logger:           logger,
		operationTimeout: timeout,
		newID:            uuid.New,
		hashCost:         bcrypt.DefaultCost,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Drivers lists drivers matching search with their delivered totals.
func (s *Service) Drivers(ctx context.Context, search string) ([]domain.DriverSummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	drivers, err := s.drivers.List(ctx, domain.DriverFilter{Search: search})
	if err != nil {
		return nil, err
	}
	if len(drivers) == 0 {
		return []domain.DriverSummary{}, nil
	}
	delivered, err := s.requests.List(ctx, domain.RequestFilter{Status: domain.RequestDelivered})
	if err != nil {
		return nil, err
	}
	p, err := s.pricing.Current(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]domain.Bucket, len(drivers))
	for _, r := range delivered {
		if r.DriverID == nil {
			continue
		}
		b := totals[*r.DriverID]
		b.Count++
		b.Total += r.EffectiveTotal(p)
		totals[*r.DriverID] = b
	}

	out := make([]domain.DriverSummary, 0, len(drivers))
	for _, d := range drivers {
		b := totals[d.ID]
		out = append(out, domain.DriverSummary{Driver: d, DeliveredCount: b.Count, TotalEarned: b.Total})
	}
	return out, nil
}

// CreateDriverInput is a new driver account.
type CreateDriverInput struct {
	Name      string
	Phone     string
	Code      string
	CarNumber string
	Password  string
}

// CreateDriver registers an available driver. Duplicate phone or code yields apperr.ErrConflict.
func (s *Service) CreateDriver(ctx context.Context, in CreateDriverInput) (*domain.Driver, error) {
	d := &domain.Driver{
		ID:        s.newID(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Code:      strings.TrimSpace(in.Code),
		CarNumber: strings.TrimSpace(in.CarNumber),
		Status:    domain.DriverAvailable,
	}
	if d.Name == "" || d.Code == "" || !domain.ValidatePhone(d.Phone) {
		return nil, apperr.ErrInvalid
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash driver password: %w", err)
		}
		d.PasswordHash = hash
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.drivers.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info("driver created",
		logx.String("driver_id", d.ID.String()),
		logx.String("code", d.Code),
	)
	return d, nil
}

// DeleteDriver removes a driver. Its finished requests keep the copied
// driver name. A driver still holding accepted requests is a conflict.
func (s *Service) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.requests.WithTx(ctx, func(tx requesttx.Repository) error {
		d, err := tx.GetDriverForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}
		open, err := tx.CountDriverRequests(ctx, id, domain.RequestAccepted)
		if err != nil {
			return err
		}
		if open > 0 {
			return fmt.Errorf("driver %s has %d accepted requests: %w", id, open, apperr.ErrConflict)
		}
		ok, err := tx.DeleteDriver(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("driver deleted", logx.String("driver_id", id.String()))
	return nil
}

// UpdatePricing stores a new price list.
func (s *Service) UpdatePricing(ctx context.Context, p domain.Pricing) (domain.Pricing, error) {
	return s.pricing.Update(ctx, p)
}

// SetGasAvailable toggles whether customers may order.
func (s *Service) SetGasAvailable(ctx context.Context, available bool) (domain.Pricing, error) {
	p, err := s.pricing.SetGasAvailable(ctx, available)
	if err != nil {
		return domain.Pricing{}, err
	}
	s.logger.Info("gas availability changed", logx.Bool("available", available))
	return p, nil
}
