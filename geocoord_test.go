package h3

import (
	"math"
	"testing"
)

func TestDegsRadsRoundTrip(t *testing.T) {
	for _, deg := range []float64{-180, -90, 0, 37.775938728915946, 90, 180} {
		got := RadsToDegs(DegsToRads(deg))
		if math.Abs(got-deg) > 1e-9 {
			t.Errorf("RadsToDegs(DegsToRads(%v)) = %v", deg, got)
		}
	}
}

func TestPointDistRadsZeroForSamePoint(t *testing.T) {
	p := GeoCoord{Lat: DegsToRads(10), Lon: DegsToRads(20)}
	if d := pointDistRads(p, p); d > 1e-12 {
		t.Errorf("pointDistRads(p, p) = %v, want ~0", d)
	}
}

func TestGeoAzDistanceRadsInvertsPointDistRads(t *testing.T) {
	p1 := GeoCoord{Lat: DegsToRads(37.775938728915946), Lon: DegsToRads(-122.41795063018799)}
	p2 := GeoCoord{Lat: DegsToRads(40.689167), Lon: DegsToRads(-74.044444)}

	dist := pointDistRads(p1, p2)
	az := geoAzimuthRads(p1, p2)
	got := geoAzDistanceRads(p1, az, dist)

	if d := pointDistRads(got, p2); d > 1e-6 {
		t.Errorf("geoAzDistanceRads(p1, azimuth(p1,p2), dist(p1,p2)) = %v, want ~p2 (residual %v rad)", got, d)
	}
}

func TestConstrainLng(t *testing.T) {
	cases := map[float64]float64{
		0:                  0,
		math.Pi:            math.Pi,
		math.Pi + 0.1:      -math.Pi + 0.1,
		-math.Pi - 0.1:     math.Pi - 0.1,
	}
	for in, want := range cases {
		if got := constrainLng(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("constrainLng(%v) = %v, want %v", in, got, want)
		}
	}
}
