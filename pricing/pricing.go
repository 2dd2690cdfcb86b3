// Package pricing computes delivery distance and cost for the storefront.
//
// Two interchangeable policies exist: per-kilometer (billed upward per full
// kilometer) and zone-based (flat fee per delivery band). Pickup is always
// free under either policy.
package pricing

import (
	"math"
	"sort"

	"dimzia-storefront/models"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371

// Policy selects how a delivery fee is derived from distance.
type Policy string

const (
	PolicyPerKm Policy = "per_km"
	PolicyZone  Policy = "zone"
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers (Haversine).
func DistanceKm(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PerKmCost bills every started kilometer in full: a 2.01 km trip is billed
// as 3 km. Any delivery bills at least one kilometer, so a customer 100
// meters away still pays for one.
func PerKmCost(distanceKm float64, costPerKm int64) int64 {
	km := int64(math.Ceil(distanceKm))
	if km < 1 {
		km = 1
	}
	return km * costPerKm
}

// Zone band cutoffs in kilometers. Distances beyond the last cutoff fall
// into the most expensive zone available.
var zoneBandsKm = []float64{3, 5, 7}

// ZoneForDistance buckets a computed distance into the configured zones,
// cheapest band first. Returns nil when no zones are configured.
func ZoneForDistance(zones []models.DeliveryZone, distanceKm float64) *models.DeliveryZone {
	if len(zones) == 0 {
		return nil
	}
	sorted := make([]models.DeliveryZone, len(zones))
	copy(sorted, zones)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].BasePrice < sorted[j].BasePrice
	})
	for i, cutoff := range zoneBandsKm {
		if distanceKm <= cutoff && i < len(sorted) {
			return &sorted[i]
		}
	}
	return &sorted[len(sorted)-1]
}

// Pricer derives a delivery cost under the configured policy.
type Pricer struct {
	Policy    Policy
	CostPerKm int64
	Origin    Coordinate // store location, the delivery starting point
}

// Cost returns the delivery fee in minor units. Pickup is always 0. Under
// the zone policy the fee comes from bucketing distance into zones; when no
// zones exist the cost stays 0 and the customer must choose a zone manually.
func (p Pricer) Cost(method models.FulfillmentMethod, distanceKm float64, zones []models.DeliveryZone) int64 {
	if method != models.MethodDelivery {
		return 0
	}
	switch p.Policy {
	case PolicyZone:
		if z := ZoneForDistance(zones, distanceKm); z != nil {
			return z.BasePrice
		}
		return 0
	default:
		return PerKmCost(distanceKm, p.CostPerKm)
	}
}

// QuoteFrom computes distance from the store origin and prices it in one
// step, for the checkout quote endpoint.
func (p Pricer) QuoteFrom(customer Coordinate, zones []models.DeliveryZone) (distanceKm float64, cost int64) {
	distanceKm = DistanceKm(p.Origin, customer)
	return distanceKm, p.Cost(models.MethodDelivery, distanceKm, zones)
}
