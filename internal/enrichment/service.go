package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/location"
	"velo-altitude/internal/metrics"
	"velo-altitude/internal/profile"
	"velo-altitude/internal/render"
	"velo-altitude/internal/store"
	"velo-altitude/internal/terrain"
	"velo-altitude/internal/weather"
)

// Request asks for one side of a climb to be enriched.
type Request struct {
	Climb climb.ClimbSummary
	Side  int
	// Seed overrides the service default when set
	Seed *uint64
	// Force regenerates even when a stored record exists
	Force bool
}

// Options tunes a Service.
type Options struct {
	DefaultSeed uint64
	// WriteInterval is the minimum spacing between store writes in a batch
	WriteInterval time.Duration
	Now           func() time.Time
}

// Service enriches climbs and persists the results. It is safe for concurrent use.
type Service struct {
	synthesizer *profile.Synthesizer
	weather     weather.Service
	locations   location.Service
	store       store.Store[EnrichedClimb]
	opts        Options
	logger      *slog.Logger
}

// NewService creates an enrichment service. locations may be nil, in which
// case the summit elevation is not checked against measured data.
func NewService(
	synthesizer *profile.Synthesizer,
	weatherService weather.Service,
	locations location.Service,
	records store.Store[EnrichedClimb],
	opts Options,
	logger *slog.Logger,
) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		synthesizer: synthesizer,
		weather:     weatherService,
		locations:   locations,
		store:       records,
		opts:        opts,
		logger:      logger.With("component", "enrichment-service"),
	}
}

// KeyFor returns the store key of a climb side.
func KeyFor(summary climb.ClimbSummary, side climb.ClimbSide) store.Key {
	return store.Key{ClimbID: summary.Key(), Side: climb.Slugify(side.Name)}
}

// Enrich returns the enriched record for the requested side. A stored record
// is returned as is unless req.Force is set; cached reports which case applied.
func (s *Service) Enrich(ctx context.Context, req Request) (record *EnrichedClimb, cached bool, err error) {
	return s.enrich(ctx, req, nil)
}

// Get returns a stored record. side may be the side name or its slug.
func (s *Service) Get(ctx context.Context, climbID, side string) (*EnrichedClimb, error) {
	return s.store.Get(ctx, store.Key{ClimbID: climbID, Side: climb.Slugify(side)})
}

func (s *Service) seed(req Request) uint64 {
	if req.Seed != nil {
		return *req.Seed
	}
	return s.opts.DefaultSeed
}

// enrich runs one enrichment. pace, when set, is awaited before the store write.
func (s *Service) enrich(ctx context.Context, req Request, pace func(context.Context) error) (*EnrichedClimb, bool, error) {
	if err := req.Climb.Validate(); err != nil {
		metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, false, err
	}
	side, err := req.Climb.Side(req.Side)
	if err != nil {
		metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, false, err
	}
	key := KeyFor(req.Climb, side)
	logger := s.logger.With("climb", key.ClimbID, "side", key.Side)

	if !req.Force {
		existing, err := s.store.Get(ctx, key)
		switch {
		case err == nil:
			logger.Debug("returning stored enrichment")
			metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeCached).Inc()
			return existing, true, nil
		case !errors.Is(err, store.ErrNotFound):
			metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, false, fmt.Errorf("failed to read stored enrichment: %w", err)
		}
	}

	started := time.Now()
	record, err := s.build(ctx, req, side, logger)
	if err != nil {
		metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, false, err
	}

	if pace != nil {
		if err := pace(ctx); err != nil {
			metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, false, err
		}
	}
	if err := s.store.Put(ctx, key, record); err != nil {
		metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, false, fmt.Errorf("failed to store enrichment: %w", err)
	}

	metrics.EnrichmentTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.EnrichmentDuration.Observe(time.Since(started).Seconds())
	metrics.ProfilePoints.Observe(float64(len(record.Profile.Points)))

	logger.Info("enriched climb",
		"points", len(record.Profile.Points),
		"segments", len(record.Profile.Segments),
		"seed", record.Seed,
		"force", req.Force,
	)
	return record, false, nil
}

func (s *Service) build(ctx context.Context, req Request, side climb.ClimbSide, logger *slog.Logger) (*EnrichedClimb, error) {
	seed := s.seed(req)

	elevationProfile, err := s.synthesizer.Generate(req.Climb, req.Side, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile: %w", err)
	}
	terrainData, err := terrain.Generate(req.Climb, req.Side)
	if err != nil {
		return nil, fmt.Errorf("failed to generate terrain: %w", err)
	}
	weatherData, err := s.weather.Describe(req.Climb, req.Side)
	if err != nil {
		return nil, fmt.Errorf("failed to generate weather: %w", err)
	}

	summary := req.Climb
	summary.ID = summary.Key()

	return &EnrichedClimb{
		ID:         summary.ID,
		Side:       climb.Slugify(side.Name),
		SideIndex:  req.Side,
		Seed:       seed,
		Summary:    summary,
		Profile:    elevationProfile,
		Terrain:    terrainData,
		Weather:    weatherData,
		Render:     render.Generate(req.Climb),
		Summit:     s.checkSummit(ctx, req.Climb, side, logger),
		EnrichedAt: s.opts.Now().UTC(),
	}, nil
}

// checkSummit looks up measured data at the summit. Failures are logged and
// yield nil since the lookup only annotates the record.
func (s *Service) checkSummit(ctx context.Context, summary climb.ClimbSummary, side climb.ClimbSide, logger *slog.Logger) *SummitCheck {
	if s.locations == nil {
		return nil
	}
	point, err := s.locations.GetForecastPoint(ctx, side.End.Latitude, side.End.Longitude)
	if err != nil {
		logger.Warn("summit lookup failed", "error", err)
		return nil
	}

	deviation := summary.Elevation - point.Elevation.Meters
	logger.Debug("checked summit elevation",
		"declared", summary.Elevation,
		"measured", point.Elevation.Meters,
		"deviation", deviation,
	)
	return &SummitCheck{Point: *point, Deviation: deviation}
}
