package profile

import (
	"testing"
)

func pointsWithGradients(gradients []float64, spacingKm float64) []ElevationPoint {
	points := make([]ElevationPoint, len(gradients))
	elevation := 1000.0
	for i, g := range gradients {
		if i > 0 {
			elevation += g * spacingKm * 10
		}
		points[i] = ElevationPoint{
			Distance:  float64(i) * spacingKm,
			Elevation: elevation,
			Gradient:  g,
		}
	}
	return points
}

func TestClassify(t *testing.T) {
	tests := []struct {
		gradient float64
		expected SegmentType
	}{
		{0, SegmentFlat},
		{1.5, SegmentFlat},
		{-1.5, SegmentFlat},
		{1.51, SegmentClimb},
		{12, SegmentClimb},
		{-1.51, SegmentDescent},
		{-5, SegmentDescent},
	}

	for _, tt := range tests {
		if got := Classify(tt.gradient); got != tt.expected {
			t.Errorf("Classify(%v) = %q, want %q", tt.gradient, got, tt.expected)
		}
	}
}

func TestClassifySegments(t *testing.T) {
	points := pointsWithGradients([]float64{5, 5, 6, 0, 1, -3, -4, 8, 8}, 0.1)

	segments := ClassifySegments(points)

	expected := []struct {
		typ        SegmentType
		start, end int
	}{
		{SegmentClimb, 0, 2},
		{SegmentFlat, 3, 4},
		{SegmentDescent, 5, 6},
		{SegmentClimb, 7, 8},
	}

	if len(segments) != len(expected) {
		t.Fatalf("ClassifySegments() returned %d segments, want %d: %+v", len(segments), len(expected), segments)
	}

	for i, want := range expected {
		got := segments[i]
		if got.Type != want.typ || got.StartIndex != want.start || got.EndIndex != want.end {
			t.Errorf("segment %d = {%s %d-%d}, want {%s %d-%d}", i, got.Type, got.StartIndex, got.EndIndex, want.typ, want.start, want.end)
		}
	}

	// First segment spans points 0..2, the others start one interval earlier
	if segments[0].StartDistance != 0 || abs(segments[0].Length-0.2) > 1e-9 {
		t.Errorf("segment 0 span = %v+%v, want 0+0.2", segments[0].StartDistance, segments[0].Length)
	}
	if abs(segments[1].StartDistance-0.2) > 1e-9 || abs(segments[1].Length-0.2) > 1e-9 {
		t.Errorf("segment 1 span = %v+%v, want 0.2+0.2", segments[1].StartDistance, segments[1].Length)
	}

	// Descent covers the -3 and -4 intervals: 0.1 km each
	if abs(segments[2].ElevationChange-(-7)) > 1e-9 {
		t.Errorf("segment 2 elevation change = %v, want -7", segments[2].ElevationChange)
	}
	if abs(segments[2].AvgGradient-(-3.5)) > 1e-9 {
		t.Errorf("segment 2 avg gradient = %v, want -3.5", segments[2].AvgGradient)
	}
}

func TestClassifySegments_Empty(t *testing.T) {
	if got := ClassifySegments(nil); got != nil {
		t.Errorf("ClassifySegments(nil) = %v, want nil", got)
	}
}

func TestClassifySegments_SingleType(t *testing.T) {
	points := pointsWithGradients([]float64{0, 0.5, -0.5, 1}, 0.05)

	segments := ClassifySegments(points)
	if len(segments) != 1 {
		t.Fatalf("ClassifySegments() returned %d segments, want 1", len(segments))
	}
	if segments[0].Type != SegmentFlat || segments[0].StartIndex != 0 || segments[0].EndIndex != 3 {
		t.Errorf("segment = %+v, want flat 0-3", segments[0])
	}
}

func TestComputeStats(t *testing.T) {
	points := pointsWithGradients([]float64{5, 5, 6, 0, 1, -3, -4, 8, 8}, 0.1)
	segments := ClassifySegments(points)

	stats := ComputeStats(points, segments)

	if stats.SegmentCounts != (SegmentCounts{Climb: 2, Descent: 1, Flat: 1}) {
		t.Errorf("SegmentCounts = %+v, want {2 1 1}", stats.SegmentCounts)
	}
	// climbs: 0..2 gains 5+6 = 11 m, 6..8 gains 8+8 = 16 m
	if abs(stats.ElevationGain-27) > 1e-9 {
		t.Errorf("ElevationGain = %v, want 27", stats.ElevationGain)
	}
	if abs(stats.ElevationLoss-7) > 1e-9 {
		t.Errorf("ElevationLoss = %v, want 7", stats.ElevationLoss)
	}
	if stats.MinElevation != 1000 {
		t.Errorf("MinElevation = %v, want 1000", stats.MinElevation)
	}
	if abs(stats.TotalLength-0.8) > 1e-9 {
		t.Errorf("TotalLength = %v, want 0.8", stats.TotalLength)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	if got := ComputeStats(nil, nil); got != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero", got)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
