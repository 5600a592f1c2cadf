package main

import (
	"context"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/profile"
	"velo-altitude/internal/render"
	"velo-altitude/internal/terrain"
	"velo-altitude/internal/weather"
)

// SideRequest selects one side of a climb
type SideRequest struct {
	Climb climb.ClimbSummary `json:"climb" doc:"Climb summary"`
	Side  int                `json:"side" minimum:"0" doc:"Index of the side within climb.sides"`
}

// ProfileInput is the request for the profile endpoint
type ProfileInput struct {
	Body struct {
		SideRequest
		Seed *uint64 `json:"seed,omitempty" doc:"Generator seed, defaults to the configured seed"`
	}
}

type ProfileOutput struct {
	Body *profile.ElevationProfile
}

func (app *App) handleGenerateProfile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	seed := app.cfg.App.DefaultSeed
	if input.Body.Seed != nil {
		seed = *input.Body.Seed
	}

	p, err := app.services.Synthesizer.Generate(input.Body.Climb, input.Body.Side, seed)
	if err != nil {
		return nil, app.toHTTPError(err, "failed to generate profile", "climb", input.Body.Climb.Name)
	}
	return &ProfileOutput{Body: p}, nil
}

type TerrainInput struct {
	Body SideRequest
}

type TerrainOutput struct {
	Body *terrain.TerrainData
}

func (app *App) handleGenerateTerrain(ctx context.Context, input *TerrainInput) (*TerrainOutput, error) {
	if err := input.Body.Climb.Validate(); err != nil {
		return nil, app.toHTTPError(err, "failed to generate terrain")
	}
	t, err := terrain.Generate(input.Body.Climb, input.Body.Side)
	if err != nil {
		return nil, app.toHTTPError(err, "failed to generate terrain", "climb", input.Body.Climb.Name)
	}
	return &TerrainOutput{Body: t}, nil
}

// ClimbRequest carries a climb summary alone
type ClimbRequest struct {
	Climb climb.ClimbSummary `json:"climb" doc:"Climb summary"`
}

type WeatherInput struct {
	Body struct {
		ClimbRequest
		Side int `json:"side,omitempty" minimum:"0" doc:"Side whose summit locates the timezone, defaults to 0"`
	}
}

type WeatherOutput struct {
	Body *weather.WeatherData
}

func (app *App) handleGenerateWeather(ctx context.Context, input *WeatherInput) (*WeatherOutput, error) {
	if err := input.Body.Climb.Validate(); err != nil {
		return nil, app.toHTTPError(err, "failed to generate weather")
	}
	w, err := app.services.Weather.Describe(input.Body.Climb, input.Body.Side)
	if err != nil {
		return nil, app.toHTTPError(err, "failed to generate weather", "climb", input.Body.Climb.Name)
	}
	return &WeatherOutput{Body: w}, nil
}

type RenderInput struct {
	Body ClimbRequest
}

type RenderOutput struct {
	Body *render.RenderSettings
}

func (app *App) handleGenerateRender(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if err := input.Body.Climb.Validate(); err != nil {
		return nil, app.toHTTPError(err, "failed to generate render settings")
	}
	return &RenderOutput{Body: render.Generate(input.Body.Climb)}, nil
}
