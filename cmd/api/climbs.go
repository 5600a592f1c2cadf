package main

import (
	"context"
	"fmt"
	"strconv"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/enrichment"
	"velo-altitude/internal/profile"
)

type EnrichInput struct {
	Body struct {
		SideRequest
		Seed  *uint64 `json:"seed,omitempty" doc:"Generator seed, defaults to the configured seed"`
		Force bool    `json:"force,omitempty" doc:"Regenerate even when a stored record exists"`
	}
}

type EnrichOutput struct {
	Cached string `header:"X-Enrichment-Cached" doc:"true when the record was served from the store"`
	Body   *enrichment.EnrichedClimb
}

func (app *App) handleEnrichClimb(ctx context.Context, input *EnrichInput) (*EnrichOutput, error) {
	rec, cached, err := app.services.Enrichment.Enrich(ctx, enrichment.Request{
		Climb: input.Body.Climb,
		Side:  input.Body.Side,
		Seed:  input.Body.Seed,
		Force: input.Body.Force,
	})
	if err != nil {
		return nil, app.toHTTPError(err, "failed to enrich climb", "climb", input.Body.Climb.Name, "side", input.Body.Side)
	}
	return &EnrichOutput{Cached: strconv.FormatBool(cached), Body: rec}, nil
}

// ClimbSideInput addresses a stored climb side
type ClimbSideInput struct {
	ID   string `path:"id" doc:"Climb identifier" example:"col-du-galibier"`
	Side string `path:"side" doc:"Slug of the side name" example:"north"`
}

type ClimbSideOutput struct {
	Body *enrichment.EnrichedClimb
}

func (app *App) handleGetClimbSide(ctx context.Context, input *ClimbSideInput) (*ClimbSideOutput, error) {
	rec, err := app.services.Enrichment.Get(ctx, input.ID, input.Side)
	if err != nil {
		return nil, app.toHTTPError(err, "failed to get climb side", "id", input.ID, "side", input.Side)
	}
	return &ClimbSideOutput{Body: rec}, nil
}

type GPXOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func (app *App) handleGetClimbSideGPX(ctx context.Context, input *ClimbSideInput) (*GPXOutput, error) {
	rec, err := app.services.Enrichment.Get(ctx, input.ID, input.Side)
	if err != nil {
		return nil, app.toHTTPError(err, "failed to get climb side", "id", input.ID, "side", input.Side)
	}

	doc, err := profile.ToGPX(rec.Profile, fmt.Sprintf("%s (%s)", rec.Summary.Name, rec.Profile.Metadata.Side))
	if err != nil {
		return nil, app.toHTTPError(err, "failed to export gpx", "id", input.ID, "side", input.Side)
	}

	return &GPXOutput{
		ContentType:        "application/gpx+xml",
		ContentDisposition: fmt.Sprintf(`attachment; filename="%s.gpx"`, gpxFilename(rec)),
		Body:               doc,
	}, nil
}

// gpxFilename builds a header-safe file name from slugs only.
func gpxFilename(rec *enrichment.EnrichedClimb) string {
	name := climb.Slugify(rec.ID)
	if name == "" {
		name = "climb"
	}
	if side := climb.Slugify(rec.Side); side != "" {
		name += "-" + side
	}
	return name
}
