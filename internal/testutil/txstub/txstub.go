// Package txstub provides a function-field fake of requesttx.Repository.
package txstub

import (
	"context"
	"time"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/ports/requesttx"
)

// Tx is a requesttx.Repository whose methods delegate to optional funcs.
// A nil func returns zero values.
type Tx struct {
	GetRequestFn    func(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error)
	UpdateStatusFn  func(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	AssignFn        func(ctx context.Context, requestID, driverID uuid.UUID, driverName string) error
	CompleteFn      func(ctx context.Context, c domain.Completion) error
	GetDriverFn     func(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	FindNearestFn   func(ctx context.Context, loc domain.Location) (*domain.Driver, error)
	AddDeliveryFn   func(ctx context.Context, driverID uuid.UUID, quantity int, amount int64, at time.Time) error
	SetDriverStatFn func(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error
	CountFn         func(ctx context.Context, driverID uuid.UUID, status domain.RequestStatus) (int, error)
	DeleteDriverFn  func(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ requesttx.Repository = (*Tx)(nil)

// GetRequestForUpdate implements requesttx.Repository.
func (s *Tx) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*domain.DeliveryRequest, error) {
	if s.GetRequestFn == nil {
		return nil, nil
	}
	return s.GetRequestFn(ctx, id)
}

// UpdateRequestStatus implements requesttx.Repository.
func (s *Tx) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	if s.UpdateStatusFn == nil {
		return nil
	}
	return s.UpdateStatusFn(ctx, id, status)
}

// AssignDriver implements requesttx.Repository.
func (s *Tx) AssignDriver(ctx context.Context, requestID, driverID uuid.UUID, driverName string) error {
	if s.AssignFn == nil {
		return nil
	}
	return s.AssignFn(ctx, requestID, driverID, driverName)
}

// CompleteRequest implements requesttx.Repository.
func (s *Tx) CompleteRequest(ctx context.Context, c domain.Completion) error {
	if s.CompleteFn == nil {
		return nil
	}
	return s.CompleteFn(ctx, c)
}

// GetDriverForUpdate implements requesttx.Repository.
func (s *Tx) GetDriverForUpdate(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	if s.GetDriverFn == nil {
		return nil, nil
	}
	return s.GetDriverFn(ctx, id)
}

// FindNearestAvailableForUpdate implements requesttx.Repository.
func (s *Tx) FindNearestAvailableForUpdate(ctx context.Context, loc domain.Location) (*domain.Driver, error) {
	if s.FindNearestFn == nil {
		return nil, nil
	}
	return s.FindNearestFn(ctx, loc)
}

// AddDriverDelivery implements requesttx.Repository.
func (s *Tx) AddDriverDelivery(ctx context.Context, driverID uuid.UUID, quantity int, amount int64, at time.Time) error {
	if s.AddDeliveryFn == nil {
		return nil
	}
	return s.AddDeliveryFn(ctx, driverID, quantity, amount, at)
}

// SetDriverStatus implements requesttx.Repository.
func (s *Tx) SetDriverStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error {
	if s.SetDriverStatFn == nil {
		return nil
	}
	return s.SetDriverStatFn(ctx, id, status)
}

// CountDriverRequests implements requesttx.Repository.
func (s *Tx) CountDriverRequests(ctx context.Context, driverID uuid.UUID, status domain.RequestStatus) (int, error) {
	if s.CountFn == nil {
		return 0, nil
	}
	return s.CountFn(ctx, driverID, status)
}

// DeleteDriver implements requesttx.Repository.
func (s *Tx) DeleteDriver(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.DeleteDriverFn == nil {
		return false, nil
	}
	return s.DeleteDriverFn(ctx, id)
}

// Runner runs fn against Tx. Err, when set, is returned without calling fn.
type Runner struct {
	Tx    *Tx
	Err   error
	Calls int
}

// WithTx implements requesttx.Runner.
func (r *Runner) WithTx(_ context.Context, fn func(tx requesttx.Repository) error) error {
	r.Calls++
	if r.Err != nil {
		return r.Err
	}
	tx := r.Tx
	if tx == nil {
		tx = &Tx{}
	}
	return fn(tx)
}

// Recorder collects published events.
type Recorder struct {
	Events []domain.Event
	Err    error
}

// Publish records ev.
func (r *Recorder) Publish(_ context.Context, ev domain.Event) error {
	r.Events = append(r.Events, ev)
	return r.Err
}
