package events

import (
	"context"
	"strings"

	"service-gas-delivery/internal/domain"
)

type actionFunc func(context.Context, domain.Event) error

type actionFactory struct {
	byStatus map[domain.RequestStatus]actionFunc
}

func newActionFactory(onPending, onAccepted actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[domain.RequestStatus]actionFunc{
			domain.RequestPending:  onPending,
			domain.RequestAccepted: onAccepted,
		},
	}
}

func (f *actionFactory) get(status domain.RequestStatus) (actionFunc, bool) {
	status = domain.RequestStatus(strings.ToLower(strings.TrimSpace(string(status))))
	fn, ok := f.byStatus[status]
	return fn, ok
}
