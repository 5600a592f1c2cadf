package profile

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"velo-altitude/internal/climb"
)

const (
	DefaultPointsPerKm = 20
	AlgorithmTag       = "procedural-power-ripple-v2"

	// MinGradient is the steepest descent a synthesized profile may show, in percent.
	MinGradient = -5.0
	// MaxGradientFactor bounds gradients to this multiple of the climb's max gradient.
	MaxGradientFactor = 1.2

	// gradient% × km × 10 = meters of height
	metersPerPercentKm = 10

	pcgStream = 0x9e3779b97f4a7c15
)

// MaxPoints caps the size of one profile regardless of sampling density.
const MaxPoints = 1_000_000

// shape controls how irregular a synthesized curve is.
type shape struct {
	exponent  float64 // progress^exponent, lower is front-loaded
	frequency float64 // radians of ripple over the whole climb
	amplitude float64 // ripple amplitude as a fraction of total rise
	noise     float64 // perturbation bound as a fraction of total rise
}

var shapes = map[climb.Difficulty]shape{
	climb.DifficultyEasy:    {exponent: 1.0, frequency: 2 * math.Pi, amplitude: 0.01, noise: 0.005},
	climb.DifficultyMedium:  {exponent: 0.9, frequency: 3 * math.Pi, amplitude: 0.02, noise: 0.01},
	climb.DifficultyHard:    {exponent: 0.8, frequency: 4 * math.Pi, amplitude: 0.03, noise: 0.015},
	climb.DifficultyExtreme: {exponent: 0.7, frequency: 6 * math.Pi, amplitude: 0.04, noise: 0.02},
}

// Synthesizer generates elevation profiles. It is safe for concurrent use.
type Synthesizer struct {
	pointsPerKm float64
	now         func() time.Time
}

type Option func(*Synthesizer)

// WithPointsPerKm sets the sampling density. Non-positive values are ignored.
func WithPointsPerKm(n float64) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.pointsPerKm = n
		}
	}
}

// WithClock replaces the clock used for Metadata.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		s.now = now
	}
}

func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		pointsPerKm: DefaultPointsPerKm,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PointsPerKm returns the sampling density.
func (s *Synthesizer) PointsPerKm() float64 {
	return s.pointsPerKm
}

// PointCount returns the number of samples for a climb of lengthKm.
func PointCount(lengthKm, pointsPerKm float64) int {
	// Round away float noise so 18.1 km at 20/km is 362 and not 363
	n := int(math.Ceil(math.Round(lengthKm*pointsPerKm*1e6) / 1e6))
	return max(n, 1)
}

// EstimatedStartElevation back-computes the elevation at the foot of the climb.
func EstimatedStartElevation(summary climb.ClimbSummary) float64 {
	return summary.Elevation - summary.AvgGradient*summary.Length*metersPerPercentKm
}

// Generate synthesizes the profile of the side at sideIndex. The output is
// fully determined by summary, sideIndex and seed, apart from
// Metadata.GeneratedAt.
func (s *Synthesizer) Generate(summary climb.ClimbSummary, sideIndex int, seed uint64) (*ElevationProfile, error) {
	if err := summary.Validate(); err != nil {
		return nil, err
	}
	side, err := summary.Side(sideIndex)
	if err != nil {
		return nil, err
	}
	if samples := summary.Length * s.pointsPerKm; samples > MaxPoints {
		return nil, fmt.Errorf("%w: %.0f km at %v points/km exceeds %d points",
			climb.ErrInvalidClimbSummary, summary.Length, s.pointsPerKm, MaxPoints)
	}
	sh, ok := shapes[summary.Difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: %q", climb.ErrUnknownDifficulty, summary.Difficulty)
	}

	n := PointCount(summary.Length, s.pointsPerKm)
	start := EstimatedStartElevation(summary)
	rise := summary.Elevation - start
	rng := rand.New(rand.NewPCG(seed, seed^pcgStream))

	points := make([]ElevationPoint, n)
	for i := range points {
		progress := 1.0
		if n > 1 {
			progress = float64(i) / float64(n-1)
		}

		// Ripple and noise fade out at both ends so the endpoints stay anchored
		envelope := 4 * progress * (1 - progress)
		ripple := sh.amplitude * math.Sin(progress*sh.frequency)
		perturbation := sh.noise * (2*rng.Float64() - 1)
		factor := math.Pow(progress, sh.exponent) + envelope*(ripple+perturbation)

		points[i] = ElevationPoint{
			Distance:    progress * summary.Length,
			Elevation:   start + factor*rise,
			Coordinates: side.Start.Interpolate(side.End, progress),
		}
	}
	points[n-1].Elevation = summary.Elevation

	applyGradients(points, summary.Length, summary.MaxGradient*MaxGradientFactor)

	segments := ClassifySegments(points)
	return &ElevationProfile{
		Points:   points,
		Segments: segments,
		Stats:    ComputeStats(points, segments),
		Metadata: Metadata{
			Algorithm:   AlgorithmTag,
			GeneratedAt: s.now().UTC(),
			PointsPerKm: s.pointsPerKm,
			PointCount:  n,
			Seed:        seed,
			Side:        side.Name,
		},
	}, nil
}

// applyGradients sets each point's gradient from the interval ending at it.
// The first point takes the gradient of the first interval.
func applyGradients(points []ElevationPoint, lengthKm, maxGradient float64) {
	if len(points) < 2 {
		return
	}

	spacingMeters := lengthKm / float64(len(points)-1) * 1000
	for i := 1; i < len(points); i++ {
		g := (points[i].Elevation - points[i-1].Elevation) / spacingMeters * 100
		points[i].Gradient = clamp(g, MinGradient, maxGradient)
	}
	points[0].Gradient = points[1].Gradient
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
