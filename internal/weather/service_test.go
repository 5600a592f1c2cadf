package weather

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/timezone"
)

type mockTimezoneService struct {
	name     string
	err      error
	lat, lon float64
}

func (m *mockTimezoneService) GetTimezone(latitude, longitude float64) (string, error) {
	m.lat, m.lon = latitude, longitude
	return m.name, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWeatherService_Describe(t *testing.T) {
	tests := []struct {
		name         string
		tz           *mockTimezoneService
		side         int
		wantErr      error
		wantTimezone string
	}{
		{
			name:         "timezone resolved",
			tz:           &mockTimezoneService{name: "Europe/Paris"},
			wantTimezone: "Europe/Paris",
		},
		{
			name:         "timezone lookup failure is not fatal",
			tz:           &mockTimezoneService{err: timezone.ErrNotFound},
			wantTimezone: "",
		},
		{
			name:    "unknown side",
			tz:      &mockTimezoneService{name: "Europe/Paris"},
			side:    2,
			wantErr: climb.ErrSideNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewWeatherServiceWithTimezone(tt.tz, testLogger())
			c := alpineClimb(2000)

			got, err := svc.Describe(c, tt.side)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Describe() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Describe() unexpected error = %v", err)
			}

			if got.Timezone != tt.wantTimezone {
				t.Errorf("Timezone = %q, want %q", got.Timezone, tt.wantTimezone)
			}
			// The summit is the end of the side
			if tt.tz.lat != c.Sides[0].End.Latitude || tt.tz.lon != c.Sides[0].End.Longitude {
				t.Errorf("timezone looked up at (%v, %v), want summit (%v, %v)", tt.tz.lat, tt.tz.lon, c.Sides[0].End.Latitude, c.Sides[0].End.Longitude)
			}
			if got.Biome != "alpine" {
				t.Errorf("Biome = %q, want alpine", got.Biome)
			}
		})
	}
}
