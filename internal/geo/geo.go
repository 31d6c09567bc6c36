// Package geo holds the straight-line math used to rank drivers and to
// build a route when the directions provider is not reachable.
package geo

import (
	"fmt"
	"math"

	"service-gas-delivery/internal/domain"
)

const earthRadiusKm = 6371.0

// minutesPerKm assumes ~30 km/h average city speed.
const minutesPerKm = 2.0

// Distance returns the haversine distance between two points in kilometres.
func Distance(a, b domain.Location) float64 {
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ETAMinutes converts a straight-line distance into whole minutes.
func ETAMinutes(km float64) int {
	if km <= 0 {
		return 0
	}
	return int(math.Round(km * minutesPerKm))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// StraightLine builds a two-point route between origin and destination.
func StraightLine(origin, dest domain.Location) domain.Route {
	km := Distance(origin, dest)
	return domain.Route{
		Coords:      []domain.Location{origin, dest},
		DurationMin: ETAMinutes(km),
		DistanceKm:  Round1(km),
		Fallback:    true,
	}
}

// Heading returns the initial bearing in degrees [0, 360) from the first to
// the second point of a path. Paths shorter than two points have heading 0.
func Heading(points []domain.Location) float64 {
	if len(points) < 2 {
		return 0
	}
	a, b := points[0], points[1]
	lat1, lat2 := rad(a.Lat), rad(b.Lat)
	dLng := rad(b.Lng - a.Lng)
	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// CacheKey identifies an origin/destination pair for route caching.
func CacheKey(origin, dest domain.Location) string {
	return fmt.Sprintf("%.6f,%.6f-%.6f,%.6f", origin.Lat, origin.Lng, dest.Lat, dest.Lng)
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
