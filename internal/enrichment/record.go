package enrichment

import (
	"time"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/profile"
	"velo-altitude/internal/render"
	"velo-altitude/internal/terrain"
	"velo-altitude/internal/types"
	"velo-altitude/internal/weather"
)

// EnrichedClimb is everything derived for one side of a climb.
type EnrichedClimb struct {
	ID         string                    `json:"id" doc:"Climb identifier"`
	Side       string                    `json:"side" doc:"Slug of the side name"`
	SideIndex  int                       `json:"sideIndex" doc:"Index of the side within the climb"`
	Seed       uint64                    `json:"seed" doc:"Seed the profile was generated with"`
	Summary    climb.ClimbSummary        `json:"summary"`
	Profile    *profile.ElevationProfile `json:"profile"`
	Terrain    *terrain.TerrainData      `json:"terrain"`
	Weather    *weather.WeatherData      `json:"weather"`
	Render     *render.RenderSettings    `json:"render"`
	Summit     *SummitCheck              `json:"summit,omitempty" doc:"Measured summit elevation, when location lookup is enabled"`
	EnrichedAt time.Time                 `json:"enrichedAt"`
}

// SummitCheck compares the declared summit with measured data at the side's end point.
type SummitCheck struct {
	Point types.ForecastPoint `json:"point"`
	// Declared minus measured elevation in meters
	Deviation float64 `json:"deviation"`
}
