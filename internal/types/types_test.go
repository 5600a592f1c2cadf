package types

import (
	"math"
	"testing"
)

func TestNewTemperatureFromCelsius(t *testing.T) {
	tests := []struct {
		name       string
		celsius    float64
		fahrenheit float64
	}{
		{"freezing", 0, 32},
		{"boiling", 100, 212},
		{"minus forty", -40, -40},
		{"mild", 20, 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTemperatureFromCelsius(tt.celsius)
			if math.Abs(got.Fahrenheit-tt.fahrenheit) > 1e-9 {
				t.Errorf("NewTemperatureFromCelsius(%v).Fahrenheit = %v, want %v", tt.celsius, got.Fahrenheit, tt.fahrenheit)
			}
		})
	}
}

func TestNewElevationConversions(t *testing.T) {
	fromFeet := NewElevationFromFeet(1000)
	if math.Abs(fromFeet.Meters-304.8) > 1e-9 {
		t.Errorf("NewElevationFromFeet(1000).Meters = %v, want 304.8", fromFeet.Meters)
	}

	fromMeters := NewElevationFromMeters(304.8)
	if math.Abs(fromMeters.Feet-1000) > 1e-9 {
		t.Errorf("NewElevationFromMeters(304.8).Feet = %v, want 1000", fromMeters.Feet)
	}
}

func TestNewPrecipitationFromMm(t *testing.T) {
	got := NewPrecipitationFromMm(25.4)
	if math.Abs(got.Inches-1) > 1e-9 {
		t.Errorf("NewPrecipitationFromMm(25.4).Inches = %v, want 1", got.Inches)
	}
}

func TestCoords_Interpolate(t *testing.T) {
	start := NewCoords(45.0, 6.0)
	end := NewCoords(46.0, 7.0)

	tests := []struct {
		name     string
		t        float64
		expected Coords
	}{
		{"start", 0, start},
		{"end", 1, end},
		{"middle", 0.5, NewCoords(45.5, 6.5)},
		{"quarter", 0.25, NewCoords(45.25, 6.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := start.Interpolate(end, tt.t)
			if math.Abs(got.Latitude-tt.expected.Latitude) > 1e-12 || math.Abs(got.Longitude-tt.expected.Longitude) > 1e-12 {
				t.Errorf("Interpolate(%v) = %+v, want %+v", tt.t, got, tt.expected)
			}
		})
	}
}

func TestCoords_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		valid  bool
	}{
		{"alpe d'huez", NewCoords(45.09, 6.07), true},
		{"north pole", NewCoords(90, 0), true},
		{"latitude too high", NewCoords(91, 0), false},
		{"longitude too low", NewCoords(0, -181), false},
		{"nan latitude", NewCoords(math.NaN(), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestNewBoundingBox(t *testing.T) {
	start := NewCoords(45.0, 6.0)
	end := NewCoords(45.1, 6.1)

	box := NewBoundingBox(1.11, start, end)

	// 1.11 km is 0.01 degrees of latitude
	if math.Abs(box.North-45.11) > 1e-9 {
		t.Errorf("North = %v, want 45.11", box.North)
	}
	if math.Abs(box.South-44.99) > 1e-9 {
		t.Errorf("South = %v, want 44.99", box.South)
	}

	// Longitude degrees shrink with latitude so the buffer is wider than 0.01
	if box.East <= 6.11 || box.West >= 5.99 {
		t.Errorf("longitude buffer too small: east=%v west=%v", box.East, box.West)
	}

	if !box.Contains(start) || !box.Contains(end) || !box.Contains(start.Midpoint(end)) {
		t.Error("bounding box does not contain its input points")
	}
	if box.Contains(NewCoords(46, 6)) {
		t.Error("bounding box contains a point far outside")
	}
}

func TestNewBoundingBox_Empty(t *testing.T) {
	if got := NewBoundingBox(5); got != (BoundingBox{}) {
		t.Errorf("NewBoundingBox() = %+v, want zero value", got)
	}
}
