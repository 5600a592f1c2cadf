package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"velo-altitude/internal/providers/openmeteo"
	"velo-altitude/internal/providers/openstreetmap"
	"velo-altitude/internal/types"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Service resolves measured elevation and place metadata for a coordinate
type Service interface {
	// GetForecastPoint retrieves comprehensive location data for a given coordinate
	GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error)
}

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	elevationProvider ElevationProvider
	locationProvider  ReverseGeocodeProvider
	logger            *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(
		openmeteo.NewElevationClient(),
		openstreetmap.NewClient(),
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	elevationProvider ElevationProvider,
	locationProvider ReverseGeocodeProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		elevationProvider: elevationProvider,
		locationProvider:  locationProvider,
		logger:            logger.With("component", "location-service"),
	}
}

// GetForecastPoint retrieves comprehensive location data by calling providers in parallel
func (s *locationService) GetForecastPoint(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error) {
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLongitude, longitude)
	}

	var (
		wg            sync.WaitGroup
		elevationResp *openmeteo.ElevationAPIResponse
		locationResp  *openstreetmap.LookupAPIResponse
		elevationErr  error
		locationErr   error
	)

	// Launch both API calls in parallel
	wg.Add(2)

	// Get elevation data
	go func() {
		defer wg.Done()
		elevationResp, elevationErr = s.elevationProvider.GetElevation(ctx, latitude, longitude)
		if elevationErr != nil {
			elevationErr = fmt.Errorf("failed to get elevation: %w", elevationErr)
		}
	}()

	// Get location data
	go func() {
		defer wg.Done()
		locationResp, locationErr = s.locationProvider.Lookup(ctx, latitude, longitude)
		if locationErr != nil {
			locationErr = fmt.Errorf("failed to get location: %w", locationErr)
		}
	}()

	// Wait for both calls to complete
	wg.Wait()

	// Check for errors
	if elevationErr != nil && locationErr != nil {
		s.logger.Error("all location providers failed",
			"lat", latitude, "lon", longitude,
			"elevationError", elevationErr, "locationError", locationErr)
		return nil, errors.Join(elevationErr, locationErr)
	}

	if elevationErr != nil {
		s.logger.Error("elevation provider failed", "lat", latitude, "lon", longitude, "error", elevationErr)
		return nil, elevationErr
	}
	if locationErr != nil {
		s.logger.Error("reverse geocode provider failed", "lat", latitude, "lon", longitude, "error", locationErr)
		return nil, locationErr
	}

	// Translate provider responses to domain types
	elevation, err := s.translateElevation(elevationResp)
	if err != nil {
		return nil, err
	}

	locationInfo, err := s.translateLocationInfo(locationResp)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("resolved location",
		"lat", latitude, "lon", longitude,
		"elevation", elevation.Meters, "name", locationInfo.Name)

	return &types.ForecastPoint{
		Coordinates: types.NewCoords(latitude, longitude),
		Elevation:   elevation,
		Location:    locationInfo,
	}, nil
}

// translateElevation converts an OpenMeteo elevation response to domain Elevation type
func (s *locationService) translateElevation(resp *openmeteo.ElevationAPIResponse) (types.Elevation, error) {
	if resp == nil {
		return types.Elevation{}, fmt.Errorf("elevation response is nil")
	}
	if len(resp.Elevation) == 0 {
		return types.Elevation{}, fmt.Errorf("elevation response contains no data")
	}

	// OpenMeteo returns elevation in meters
	return types.NewElevationFromMeters(resp.Elevation[0]), nil
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func (s *locationService) translateLocationInfo(resp *openstreetmap.LookupAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	// Prefer the short name, fall back to the display name
	name := resp.DisplayName
	if resp.Name != "" {
		name = resp.Name
	}

	return types.LocationInfo{
		Name:        name,
		County:      resp.Address.County,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}, nil
}
