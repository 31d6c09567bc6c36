package domain

// Location is a WGS 84 coordinate with an optional human-readable address.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// Valid reports whether the coordinate lies within latitude/longitude bounds.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Route is a drivable path between two points.
// Fallback is true when the route is a straight line computed locally
// because the directions provider could not answer.
type Route struct {
	Coords      []Location
	DurationMin int
	DistanceKm  float64
	Fallback    bool
}
