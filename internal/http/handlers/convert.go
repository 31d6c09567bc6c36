package handlers

import (
	"strings"

	"github.com/google/uuid"

	"service-gas-delivery/internal/domain"
)

func (l locationDTO) toModel() domain.Location {
	return domain.Location{Lat: l.Lat, Lng: l.Lng, Address: strings.TrimSpace(l.Address)}
}

func locationToResponse(l domain.Location) locationDTO {
	return locationDTO{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

func optionalLocation(l *domain.Location) *locationDTO {
	if l == nil {
		return nil
	}
	dto := locationToResponse(*l)
	return &dto
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func routeToResponse(r domain.Route) routeDTO {
	coords := make([]locationDTO, 0, len(r.Coords))
	for _, c := range r.Coords {
		coords = append(coords, locationToResponse(c))
	}
	return routeDTO{
		Coords:      coords,
		DurationMin: r.DurationMin,
		DistanceKm:  r.DistanceKm,
		Fallback:    r.Fallback,
	}
}

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:                 d.ID.String(),
		Name:               d.Name,
		Phone:              d.Phone,
		Code:               d.Code,
		CarNumber:          d.CarNumber,
		Status:             string(d.Status),
		Location:           optionalLocation(d.Location),
		TotalDeliveries:    d.TotalDeliveries,
		Earnings:           d.Earnings,
		LastActive:         d.LastActive,
		LastDelivery:       d.LastDelivery,
		LastDeliveryAmount: d.LastDeliveryAmount,
	}
}

func nearbyToResponse(n domain.NearbyDriver) nearbyDriverDTO {
	return nearbyDriverDTO{
		Driver:     driverToResponse(n.Driver),
		DistanceKm: n.DistanceKm,
		ETAMin:     n.ETAMin,
	}
}

func nearbyListToResponse(list []domain.NearbyDriver) []nearbyDriverDTO {
	out := make([]nearbyDriverDTO, 0, len(list))
	for _, n := range list {
		out = append(out, nearbyToResponse(n))
	}
	return out
}

func pricingToResponse(p domain.Pricing) pricingDTO {
	return pricingDTO{
		Small:        p.Small,
		Medium:       p.Medium,
		Large:        p.Large,
		GasAvailable: p.GasAvailable,
		UpdatedAt:    p.UpdatedAt,
	}
}

func quoteToResponse(q domain.Quote) quoteDTO {
	return quoteDTO{
		Driver:       nearbyToResponse(q.Driver),
		Route:        routeToResponse(q.Route),
		UnitPrice:    q.UnitPrice,
		GasAvailable: q.GasAvailable,
	}
}

func requestToResponse(r domain.DeliveryRequest) requestDTO {
	return requestDTO{
		ID:               r.ID.String(),
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		Location:         locationToResponse(r.Location),
		GasType:          string(r.GasType),
		Quantity:         r.Quantity,
		Total:            r.Total,
		Notes:            r.Notes,
		DriverID:         optionalID(r.DriverID),
		DriverName:       r.DriverName,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		DeliveredAt:      r.DeliveredAt,
		DeliveryLocation: optionalLocation(r.DeliveryLocation),
	}
}

func requestsToResponse(list []domain.DeliveryRequest) []requestDTO {
	out := make([]requestDTO, 0, len(list))
	for _, r := range list {
		out = append(out, requestToResponse(r))
	}
	return out
}

func trackingToResponse(t domain.Tracking) trackingDTO {
	return trackingDTO{
		Request:         requestToResponse(t.Request),
		Driver:          driverToResponse(t.Driver),
		Route:           routeToResponse(t.Route),
		ETAMin:          t.ETAMin,
		CountdownSec:    t.CountdownSec,
		DriverReachable: t.DriverReachable,
		HeadingDegrees:  t.HeadingDegrees,
	}
}

func activeToResponse(list []domain.ActiveRequest) []activeRequestDTO {
	out := make([]activeRequestDTO, 0, len(list))
	for _, a := range list {
		out = append(out, activeRequestDTO{
			Request:    requestToResponse(a.Request),
			DistanceKm: a.DistanceKm,
			ETAMin:     a.ETAMin,
		})
	}
	return out
}

func statsToResponse(s domain.DriverStats) statsDTO {
	return statsDTO{
		DriverID:       s.DriverID.String(),
		DeliveredCount: s.DeliveredCount,
		TotalEarned:    s.TotalEarned,
	}
}

func summariesToResponse(list []domain.DriverSummary) []driverSummaryDTO {
	out := make([]driverSummaryDTO, 0, len(list))
	for _, s := range list {
		out = append(out, driverSummaryDTO{
			Driver:         driverToResponse(s.Driver),
			DeliveredCount: s.DeliveredCount,
			TotalEarned:    s.TotalEarned,
		})
	}
	return out
}

func bucketsToResponse(m map[string]domain.Bucket) map[string]bucketDTO {
	out := make(map[string]bucketDTO, len(m))
	for k, b := range m {
		out[k] = bucketDTO{Name: b.Name, Count: b.Count, Total: b.Total}
	}
	return out
}

func reportToResponse(r domain.DeliveryReport) reportDTO {
	return reportDTO{
		Deliveries:   requestsToResponse(r.Deliveries),
		Count:        r.Count,
		Revenue:      r.Revenue,
		AverageOrder: r.AverageOrder,
		ByGasType:    bucketsToResponse(r.ByGasType),
		ByDriver:     bucketsToResponse(r.ByDriver),
	}
}
