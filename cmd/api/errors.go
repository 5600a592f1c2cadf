package main

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/location"
	"velo-altitude/internal/store"
)

// toHTTPError maps domain errors onto API errors. Anything unrecognised is
// logged and reported as a 500 with msg.
func (app *App) toHTTPError(err error, msg string, args ...any) error {
	switch {
	case errors.Is(err, climb.ErrInvalidClimbSummary),
		errors.Is(err, climb.ErrUnknownDifficulty),
		errors.Is(err, climb.ErrSideNotFound),
		errors.Is(err, location.ErrInvalidLatitude),
		errors.Is(err, location.ErrInvalidLongitude):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	}

	app.logger.Error(msg, append(args, "error", err)...)
	return huma.Error500InternalServerError(msg)
}
