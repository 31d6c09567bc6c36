package domain

import "time"

// DefaultUnitPrice is charged per cylinder when no price is configured.
const DefaultUnitPrice int64 = 7500

// Pricing is the storewide cylinder price list.
type Pricing struct {
	Small        int64
	Medium       int64
	Large        int64
	GasAvailable bool
	UpdatedAt    time.Time
}

// UnitPrice returns the price of one cylinder of the given type.
// Missing prices fall back to the medium cylinder, then to DefaultUnitPrice.
func (p Pricing) UnitPrice(g GasType) int64 {
	var price int64
	switch g {
	case GasSmall:
		price = p.Small
	case GasLarge:
		price = p.Large
	default:
		price = p.Medium
	}
	if price > 0 {
		return price
	}
	if p.Medium > 0 {
		return p.Medium
	}
	return DefaultUnitPrice
}
