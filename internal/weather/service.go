package weather

import (
	"fmt"
	"log/slog"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/timezone"
)

// Service describes the climate at a climb's summit.
type Service interface {
	Describe(summary climb.ClimbSummary, sideIndex int) (*WeatherData, error)
}

type weatherService struct {
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewWeatherService creates a weather service backed by the process-wide timezone finder.
func NewWeatherService(logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewWeatherServiceWithTimezone(tzSvc, logger), nil
}

// NewWeatherServiceWithTimezone creates a weather service with a custom timezone service.
// This is useful for testing.
func NewWeatherServiceWithTimezone(timezoneService timezone.Service, logger *slog.Logger) Service {
	return &weatherService{
		timezoneService: timezoneService,
		logger:          logger.With("component", "weather-service"),
	}
}

// Describe generates the climate data and resolves the timezone at the summit
// of the given side. A failed timezone lookup is logged and leaves Timezone empty.
func (s *weatherService) Describe(summary climb.ClimbSummary, sideIndex int) (*WeatherData, error) {
	side, err := summary.Side(sideIndex)
	if err != nil {
		return nil, err
	}

	data := Generate(summary)

	tz, err := s.timezoneService.GetTimezone(side.End.Latitude, side.End.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone",
			"climb", summary.Name,
			"latitude", side.End.Latitude,
			"longitude", side.End.Longitude,
			"error", err,
		)
		return data, nil
	}
	data.Timezone = tz

	s.logger.Debug("described summit climate",
		"climb", summary.Name,
		"biome", data.Biome,
		"biome_known", data.BiomeKnown,
		"timezone", tz,
	)
	return data, nil
}
