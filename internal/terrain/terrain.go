// Package terrain derives synthetic terrain attributes for a climb side.
package terrain

import (
	"math"

	"velo-altitude/internal/biome"
	"velo-altitude/internal/climb"
	"velo-altitude/internal/types"
)

// VegetationDensity buckets how wooded the summit area is.
type VegetationDensity string

const (
	VegetationDense    VegetationDensity = "dense"
	VegetationModerate VegetationDensity = "moderate"
	VegetationSparse   VegetationDensity = "sparse"
	VegetationBarren   VegetationDensity = "barren"
)

// Feature tags
const (
	FeatureHairpins      = "hairpins"
	FeatureHighMountain  = "high_mountain"
	FeatureForest        = "forest"
	FeatureExposedSummit = "exposed_summit"
)

const (
	minBufferKm      = 1.0
	bufferLengthRate = 0.1
	highMountainM    = 2000.0
)

// TerrainData is the synthetic terrain description of a climb side.
type TerrainData struct {
	BoundingBox       types.BoundingBox `json:"boundingBox"`
	Biome             string            `json:"biome"`
	BiomeKnown        bool              `json:"biomeKnown" doc:"False when the region was not recognized and the default biome was used"`
	Geology           string            `json:"geology"`
	VegetationDensity VegetationDensity `json:"vegetationDensity" enum:"dense,moderate,sparse,barren"`
	TreeLine          float64           `json:"treeLine" doc:"Approximate tree line in meters"`
	AboveTreeLine     bool              `json:"aboveTreeLine"`
	Features          []string          `json:"features"`
}

// Generate derives terrain data for the side at sideIndex of a validated climb.
func Generate(summary climb.ClimbSummary, sideIndex int) (*TerrainData, error) {
	side, err := summary.Side(sideIndex)
	if err != nil {
		return nil, err
	}

	b, known := biome.Lookup(summary.Region)
	vegetation := VegetationFor(summary.Elevation, b.TreeLine)

	return &TerrainData{
		BoundingBox:       types.NewBoundingBox(BufferKm(summary.Length), side.Start, side.End),
		Biome:             b.Name,
		BiomeKnown:        known,
		Geology:           b.Geology,
		VegetationDensity: vegetation,
		TreeLine:          b.TreeLine,
		AboveTreeLine:     summary.Elevation > b.TreeLine,
		Features:          features(summary, b, vegetation),
	}, nil
}

// BufferKm is the padding applied around a side's endpoints.
func BufferKm(lengthKm float64) float64 {
	return math.Max(minBufferKm, lengthKm*bufferLengthRate)
}

// VegetationFor buckets vegetation by the summit's height relative to the tree line.
func VegetationFor(elevation, treeLine float64) VegetationDensity {
	switch {
	case elevation < treeLine-600:
		return VegetationDense
	case elevation < treeLine:
		return VegetationModerate
	case elevation < treeLine+400:
		return VegetationSparse
	default:
		return VegetationBarren
	}
}

func features(summary climb.ClimbSummary, b biome.Biome, vegetation VegetationDensity) []string {
	out := []string{}
	if summary.Difficulty.Rank() >= climb.DifficultyHard.Rank() {
		out = append(out, FeatureHairpins)
	}
	if summary.Elevation >= highMountainM {
		out = append(out, FeatureHighMountain)
	}
	if vegetation == VegetationDense {
		out = append(out, FeatureForest)
	}
	if summary.Elevation > b.TreeLine {
		out = append(out, FeatureExposedSummit)
	}
	return out
}
