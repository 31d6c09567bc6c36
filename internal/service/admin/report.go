package admin

import (
	"context"
	"math"
	"sort"
	"strings"

	"service-gas-delivery/internal/apperr"
	"service-gas-delivery/internal/domain"
)

const unassignedDriver = "unassigned"

// DeliveryReport summarises delivered requests matching q.
func (s *Service) DeliveryReport(ctx context.Context, q domain.ReportQuery) (domain.DeliveryReport, error) {
	switch q.SortBy {
	case "":
		q.SortBy = domain.SortByDate
	case domain.SortByDate, domain.SortByCustomer, domain.SortByDriver, domain.SortByTotal:
	default:
		return domain.DeliveryReport{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	delivered, err := s.requests.List(ctx, domain.RequestFilter{Status: domain.RequestDelivered})
	if err != nil {
		return domain.DeliveryReport{}, err
	}
	p, err := s.pricing.Current(ctx)
	if err != nil {
		return domain.DeliveryReport{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	rep := domain.DeliveryReport{
		Deliveries: make([]domain.DeliveryRequest, 0, len(delivered)),
		ByGasType:  map[string]domain.Bucket{},
		ByDriver:   map[string]domain.Bucket{},
	}
	for _, r := range delivered {
		if needle != "" && !matches(r, needle) {
			continue
		}
		r.Total = r.EffectiveTotal(p)
		rep.Deliveries = append(rep.Deliveries, r)
		rep.Revenue += r.Total
		addTo(rep.ByGasType, string(r.GasType.Normalize()), "", r.Total)
		key, name := driverBucket(r)
		addTo(rep.ByDriver, key, name, r.Total)
	}
	rep.Count = len(rep.Deliveries)
	if rep.Count > 0 {
		rep.AverageOrder = math.Round(float64(rep.Revenue)/float64(rep.Count)*100) / 100
	}

	sortDeliveries(rep.Deliveries, q.SortBy, q.Ascending)
	return rep, nil
}

func matches(r domain.DeliveryRequest, needle string) bool {
	for _, v := range []string{r.CustomerName, r.DriverName, string(r.GasType)} {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// driverBucket keys by driver id. Requests of a deleted driver keep only
// the copied name and are grouped by it.
func driverBucket(r domain.DeliveryRequest) (key, name string) {
	switch {
	case r.DriverID != nil:
		return r.DriverID.String(), r.DriverName
	case r.DriverName != "":
		return r.DriverName, r.DriverName
	default:
		return unassignedDriver, ""
	}
}

func addTo(m map[string]domain.Bucket, key, name string, total int64) {
	b := m[key]
	b.Name = name
	b.Count++
	b.Total += total
	m[key] = b
}

func deliveredAt(r domain.DeliveryRequest) int64 {
	if r.DeliveredAt != nil {
		return r.DeliveredAt.UnixNano()
	}
	return r.UpdatedAt.UnixNano()
}

func sortDeliveries(rs []domain.DeliveryRequest, by domain.ReportSort, asc bool) {
	less := func(a, b domain.DeliveryRequest) bool {
		switch by {
		case domain.SortByCustomer:
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		case domain.SortByDriver:
			return strings.ToLower(a.DriverName) < strings.ToLower(b.DriverName)
		case domain.SortByTotal:
			return a.Total < b.Total
		default:
			return deliveredAt(a) < deliveredAt(b)
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		if asc {
			return less(rs[i], rs[j])
		}
		return less(rs[j], rs[i])
	})
}
