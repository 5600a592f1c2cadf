package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"velo-altitude/internal/providers/openmeteo"
	"velo-altitude/internal/providers/openstreetmap"
	"velo-altitude/internal/types"
)

// Mock providers for testing

type mockElevationProvider struct {
	response *openmeteo.ElevationAPIResponse
	err      error
}

func (m *mockElevationProvider) GetElevation(ctx context.Context, latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error) {
	return m.response, m.err
}

type mockLocationProvider struct {
	response *openstreetmap.LookupAPIResponse
	err      error
}

func (m *mockLocationProvider) Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error) {
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_GetForecastPoint(t *testing.T) {
	tests := []struct {
		name              string
		lat               float64
		lon               float64
		elevationResponse *openmeteo.ElevationAPIResponse
		elevationErr      error
		locationResponse  *openstreetmap.LookupAPIResponse
		locationErr       error
		wantErr           bool
		wantErrIs         error
		errContains       string
		validate          func(*testing.T, *types.ForecastPoint)
	}{
		{
			name: "successful forecast point retrieval",
			lat:  45.0641,
			lon:  6.4078,
			elevationResponse: &openmeteo.ElevationAPIResponse{
				Elevation: []float64{2642.0},
			},
			locationResponse: &openstreetmap.LookupAPIResponse{
				Name:        "Col du Galibier",
				DisplayName: "Col du Galibier, Valloire, Savoie, France",
				Address: openstreetmap.Address{
					County:      "Savoie",
					State:       "Auvergne-Rhône-Alpes",
					Country:     "France",
					CountryCode: "fr",
				},
			},
			validate: func(t *testing.T, fp *types.ForecastPoint) {
				if fp == nil {
					t.Fatal("ForecastPoint is nil")
				}
				if fp.Coordinates.Latitude != 45.0641 {
					t.Errorf("Latitude = %v, want %v", fp.Coordinates.Latitude, 45.0641)
				}
				if fp.Coordinates.Longitude != 6.4078 {
					t.Errorf("Longitude = %v, want %v", fp.Coordinates.Longitude, 6.4078)
				}
				if fp.Elevation.Meters != 2642.0 {
					t.Errorf("Elevation.Meters = %v, want %v", fp.Elevation.Meters, 2642.0)
				}
				if fp.Location.Name != "Col du Galibier" {
					t.Errorf("Location.Name = %v, want %v", fp.Location.Name, "Col du Galibier")
				}
				if fp.Location.CountryCode != "fr" {
					t.Errorf("Location.CountryCode = %v, want %v", fp.Location.CountryCode, "fr")
				}
			},
		},
		{
			name: "display name used when name is empty",
			lat:  45.0641,
			lon:  6.4078,
			elevationResponse: &openmeteo.ElevationAPIResponse{
				Elevation: []float64{2642.0},
			},
			locationResponse: &openstreetmap.LookupAPIResponse{
				DisplayName: "Valloire, Savoie, France",
			},
			validate: func(t *testing.T, fp *types.ForecastPoint) {
				if fp.Location.Name != "Valloire, Savoie, France" {
					t.Errorf("Location.Name = %v, want display name", fp.Location.Name)
				}
			},
		},
		{
			name:         "elevation provider error",
			lat:          45.0641,
			lon:          6.4078,
			elevationErr: errors.New("elevation API error"),
			locationResponse: &openstreetmap.LookupAPIResponse{
				DisplayName: "Test Location",
			},
			wantErr:     true,
			errContains: "failed to get elevation",
		},
		{
			name: "location provider error",
			lat:  45.0641,
			lon:  6.4078,
			elevationResponse: &openmeteo.ElevationAPIResponse{
				Elevation: []float64{2642.0},
			},
			locationErr: errors.New("location API error"),
			wantErr:     true,
			errContains: "failed to get location",
		},
		{
			name:         "both providers fail",
			lat:          45.0641,
			lon:          6.4078,
			elevationErr: errors.New("elevation API error"),
			locationErr:  errors.New("location API error"),
			wantErr:      true,
			errContains:  "location API error",
		},
		{
			name: "elevation adapter error - empty array",
			lat:  45.0641,
			lon:  6.4078,
			elevationResponse: &openmeteo.ElevationAPIResponse{
				Elevation: []float64{},
			},
			locationResponse: &openstreetmap.LookupAPIResponse{
				DisplayName: "Test Location",
			},
			wantErr:     true,
			errContains: "elevation response contains no data",
		},
		{
			name: "elevation adapter error - nil response",
			lat:  45.0641,
			lon:  6.4078,
			locationResponse: &openstreetmap.LookupAPIResponse{
				DisplayName: "Test Location",
			},
			wantErr:     true,
			errContains: "elevation response is nil",
		},
		{
			name:      "latitude out of range",
			lat:       91,
			lon:       6.4078,
			wantErr:   true,
			wantErrIs: ErrInvalidLatitude,
		},
		{
			name:      "longitude out of range",
			lat:       45.0641,
			lon:       -181,
			wantErr:   true,
			wantErrIs: ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock providers
			elevProvider := &mockElevationProvider{
				response: tt.elevationResponse,
				err:      tt.elevationErr,
			}
			locProvider := &mockLocationProvider{
				response: tt.locationResponse,
				err:      tt.locationErr,
			}

			// Create service with mocks
			service := NewLocationServiceWithProviders(elevProvider, locProvider, testLogger())

			got, err := service.GetForecastPoint(context.Background(), tt.lat, tt.lon)

			// Check error expectations
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetForecastPoint() expected error but got none")
					return
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Errorf("GetForecastPoint() error = %v, want %v", err, tt.wantErrIs)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetForecastPoint() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}

			// Check no unexpected error
			if err != nil {
				t.Errorf("GetForecastPoint() unexpected error = %v", err)
				return
			}

			// Run validation if provided
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}
