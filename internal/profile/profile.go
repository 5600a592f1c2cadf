// Package profile synthesizes elevation profiles for climbs from their summary
// statistics and splits them into climbing, descending and flat segments.
package profile

import (
	"time"

	"velo-altitude/internal/types"
)

// ElevationPoint is a single sample of a profile.
type ElevationPoint struct {
	Distance    float64      `json:"distance" doc:"Distance from the start in kilometers"`
	Elevation   float64      `json:"elevation" doc:"Elevation in meters"`
	Gradient    float64      `json:"gradient" doc:"Local gradient in percent"`
	Coordinates types.Coords `json:"coordinates"`
}

// ElevationProfile is the sampled distance/elevation curve of one climb side.
type ElevationProfile struct {
	Points   []ElevationPoint `json:"points"`
	Segments []Segment        `json:"segments"`
	Stats    Stats            `json:"stats"`
	Metadata Metadata         `json:"metadata"`
}

// Metadata records how a profile was generated.
type Metadata struct {
	Algorithm   string    `json:"algorithm"`
	GeneratedAt time.Time `json:"generatedAt"`
	PointsPerKm float64   `json:"pointsPerKm"`
	PointCount  int       `json:"pointCount"`
	Seed        uint64    `json:"seed"`
	Side        string    `json:"side"`
}

// Start returns the first point of the profile.
func (p *ElevationProfile) Start() ElevationPoint {
	return p.Points[0]
}

// Summit returns the last point of the profile.
func (p *ElevationProfile) Summit() ElevationPoint {
	return p.Points[len(p.Points)-1]
}
