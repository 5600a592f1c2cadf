package profile

import "math"

// Stats summarizes a profile.
type Stats struct {
	MinElevation  float64       `json:"minElevation"`
	MaxElevation  float64       `json:"maxElevation"`
	ElevationGain float64       `json:"elevationGain" doc:"Sum of elevation change over climb segments"`
	ElevationLoss float64       `json:"elevationLoss" doc:"Sum of absolute elevation change over descent segments"`
	TotalLength   float64       `json:"totalLength"`
	SegmentCounts SegmentCounts `json:"segmentCounts"`
}

type SegmentCounts struct {
	Climb   int `json:"climb"`
	Descent int `json:"descent"`
	Flat    int `json:"flat"`
}

// ComputeStats derives Stats from points and their segments.
func ComputeStats(points []ElevationPoint, segments []Segment) Stats {
	var stats Stats
	if len(points) == 0 {
		return stats
	}

	stats.MinElevation = math.Inf(1)
	stats.MaxElevation = math.Inf(-1)
	for _, p := range points {
		stats.MinElevation = math.Min(stats.MinElevation, p.Elevation)
		stats.MaxElevation = math.Max(stats.MaxElevation, p.Elevation)
	}
	stats.TotalLength = points[len(points)-1].Distance - points[0].Distance

	for _, seg := range segments {
		switch seg.Type {
		case SegmentClimb:
			stats.ElevationGain += seg.ElevationChange
			stats.SegmentCounts.Climb++
		case SegmentDescent:
			stats.ElevationLoss += math.Abs(seg.ElevationChange)
			stats.SegmentCounts.Descent++
		case SegmentFlat:
			stats.SegmentCounts.Flat++
		}
	}
	return stats
}
