// Package render maps a climb's difficulty to 3D rendering settings.
package render

import (
	"velo-altitude/internal/climb"
)

// Quality is the render quality tier.
type Quality string

const (
	QualityUltra    Quality = "ultra"
	QualityHigh     Quality = "high"
	QualityMedium   Quality = "medium"
	QualityStandard Quality = "standard"
)

// RenderSettings controls how a climb's 3D terrain is rendered.
type RenderSettings struct {
	Quality Quality `json:"quality" enum:"ultra,high,medium,standard"`
	// MeshResolution is the terrain grid spacing in meters.
	MeshResolution int  `json:"meshResolution"`
	TextureSize    int  `json:"textureSize"`
	LODLevels      int  `json:"lodLevels"`
	Shadows        bool `json:"shadows"`
	// VerticalExaggeration scales elevations for display.
	VerticalExaggeration float64 `json:"verticalExaggeration"`
}

var tiers = map[climb.Difficulty]RenderSettings{
	climb.DifficultyExtreme: {
		Quality: QualityUltra, MeshResolution: 5, TextureSize: 4096, LODLevels: 5,
		Shadows: true, VerticalExaggeration: 1.0,
	},
	climb.DifficultyHard: {
		Quality: QualityHigh, MeshResolution: 10, TextureSize: 2048, LODLevels: 4,
		Shadows: true, VerticalExaggeration: 1.2,
	},
	climb.DifficultyMedium: {
		Quality: QualityMedium, MeshResolution: 20, TextureSize: 1024, LODLevels: 3,
		Shadows: false, VerticalExaggeration: 1.5,
	},
	climb.DifficultyEasy: {
		Quality: QualityStandard, MeshResolution: 30, TextureSize: 512, LODLevels: 2,
		Shadows: false, VerticalExaggeration: 2.0,
	},
}

// Generate returns the render settings for the climb's difficulty. Unrated
// climbs get the standard tier.
func Generate(summary climb.ClimbSummary) *RenderSettings {
	settings, ok := tiers[summary.Difficulty]
	if !ok {
		settings = tiers[climb.DifficultyEasy]
	}
	return &settings
}
