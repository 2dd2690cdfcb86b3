package pricing

import (
	"math"
	"testing"

	"dimzia-storefront/models"
)

func TestDistanceKmZeroAndSymmetry(t *testing.T) {
	a := Coordinate{Lat: -2.2612092256138, Lon: 113.92016284747595}
	b := Coordinate{Lat: -2.30, Lon: 113.95}

	if d := DistanceKm(a, a); d != 0 {
		t.Errorf("DistanceKm(a, a) = %v, want 0", d)
	}
	ab, ba := DistanceKm(a, b), DistanceKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("DistanceKm not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("DistanceKm(a, b) = %v, want > 0", ab)
	}
}

func TestDistanceKmOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111 km anywhere on the globe.
	a := Coordinate{Lat: 0, Lon: 0}
	b := Coordinate{Lat: 1, Lon: 0}
	d := DistanceKm(a, b)
	if d < 111 || d > 112 {
		t.Fatalf("DistanceKm 1° latitude = %v, want ~111.2", d)
	}
}

func TestPerKmCost(t *testing.T) {
	tests := []struct {
		distance float64
		want     int64
	}{
		{0.4, 3000},
		{1.0, 3000},
		{2.0, 6000},
		{2.01, 9000},
		{0, 3000}, // minimum one-kilometer charge
		{6.5, 21000},
	}
	for _, tt := range tests {
		if got := PerKmCost(tt.distance, 3000); got != tt.want {
			t.Errorf("PerKmCost(%v, 3000) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

func testZones() []models.DeliveryZone {
	return []models.DeliveryZone{
		{ID: "z3", ZoneName: "Zone 3", BasePrice: 20000},
		{ID: "z1", ZoneName: "Zone 1", BasePrice: 8000},
		{ID: "z2", ZoneName: "Zone 2", BasePrice: 14000},
	}
}

func TestZoneForDistance(t *testing.T) {
	zones := testZones()
	tests := []struct {
		distance float64
		wantID   string
	}{
		{1.2, "z1"},
		{3.0, "z1"},
		{4.9, "z2"},
		{6.5, "z3"},
		{12.0, "z3"}, // beyond all bands: most expensive zone
	}
	for _, tt := range tests {
		z := ZoneForDistance(zones, tt.distance)
		if z == nil || z.ID != tt.wantID {
			t.Errorf("ZoneForDistance(%v) = %+v, want zone %s", tt.distance, z, tt.wantID)
		}
	}
	if z := ZoneForDistance(nil, 2.0); z != nil {
		t.Errorf("ZoneForDistance with no zones = %+v, want nil", z)
	}
}

func TestPricerCost(t *testing.T) {
	perKm := Pricer{Policy: PolicyPerKm, CostPerKm: 3000}
	if got := perKm.Cost(models.MethodPickup, 4.2, nil); got != 0 {
		t.Errorf("pickup cost = %d, want 0", got)
	}
	if got := perKm.Cost(models.MethodDelivery, 4.2, nil); got != 15000 {
		t.Errorf("per-km delivery cost = %d, want 15000", got)
	}

	zonal := Pricer{Policy: PolicyZone}
	if got := zonal.Cost(models.MethodDelivery, 4.2, testZones()); got != 14000 {
		t.Errorf("zone delivery cost = %d, want 14000", got)
	}
	if got := zonal.Cost(models.MethodDelivery, 4.2, nil); got != 0 {
		t.Errorf("zone cost with no zones = %d, want 0", got)
	}
	if got := zonal.Cost(models.MethodPickup, 4.2, testZones()); got != 0 {
		t.Errorf("zone pickup cost = %d, want 0", got)
	}
}

func TestQuoteFrom(t *testing.T) {
	p := Pricer{
		Policy:    PolicyPerKm,
		CostPerKm: 3000,
		Origin:    Coordinate{Lat: 0, Lon: 0},
	}
	// ~111.2 km north of the origin: 112 billed kilometers.
	dist, cost := p.QuoteFrom(Coordinate{Lat: 1, Lon: 0}, nil)
	if dist < 111 || dist > 112 {
		t.Fatalf("distance = %v, want ~111.2", dist)
	}
	if cost != 112*3000 {
		t.Errorf("cost = %d, want %d", cost, 112*3000)
	}
}
