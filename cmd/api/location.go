package main

import (
	"context"

	"velo-altitude/internal/types"
)

// GetForecastPointInput defines the query parameters for the location endpoint
type GetForecastPointInput struct {
	Latitude  float64 `query:"latitude" required:"true" doc:"Latitude in decimal degrees" example:"45.0641"`
	Longitude float64 `query:"longitude" required:"true" doc:"Longitude in decimal degrees" example:"6.4078"`
}

type GetForecastPointOutput struct {
	Body *types.ForecastPoint
}

// handleGetForecastPoint resolves measured elevation and place metadata for a coordinate
func (app *App) handleGetForecastPoint(ctx context.Context, input *GetForecastPointInput) (*GetForecastPointOutput, error) {
	// Delegate to business layer
	forecastPoint, err := app.services.Locations.GetForecastPoint(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, app.toHTTPError(err, "failed to get forecast point",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
		)
	}
	return &GetForecastPointOutput{Body: forecastPoint}, nil
}
