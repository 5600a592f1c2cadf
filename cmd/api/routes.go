package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	// Core generators
	huma.Register(app.api, huma.Operation{
		OperationID: "generate-profile",
		Method:      http.MethodPost,
		Path:        "/profiles",
		Summary:     "Generate elevation profile",
		Description: "Synthesize a deterministic elevation profile with segments and statistics for one side of a climb",
		Tags:        []string{"profiles"},
	}, app.handleGenerateProfile)

	huma.Register(app.api, huma.Operation{
		OperationID: "generate-terrain",
		Method:      http.MethodPost,
		Path:        "/terrain",
		Summary:     "Generate terrain data",
		Description: "Bounding box, vegetation, geology and terrain features for one side of a climb",
		Tags:        []string{"annotations"},
	}, app.handleGenerateTerrain)

	huma.Register(app.api, huma.Operation{
		OperationID: "generate-weather",
		Method:      http.MethodPost,
		Path:        "/weather",
		Summary:     "Generate summit climate",
		Description: "Seasonal temperatures, precipitation, snow and riding months at the summit",
		Tags:        []string{"annotations"},
	}, app.handleGenerateWeather)

	huma.Register(app.api, huma.Operation{
		OperationID: "generate-render",
		Method:      http.MethodPost,
		Path:        "/render",
		Summary:     "Generate render settings",
		Description: "3D render quality tier and parameters derived from climb difficulty",
		Tags:        []string{"annotations"},
	}, app.handleGenerateRender)

	// Enrichment
	huma.Register(app.api, huma.Operation{
		OperationID: "enrich-climb",
		Method:      http.MethodPost,
		Path:        "/climbs/enrich",
		Summary:     "Enrich a climb side",
		Description: "Generate and store all derived data for one side of a climb. Returns the stored record unless force is set",
		Tags:        []string{"climbs"},
	}, app.handleEnrichClimb)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-climb-side",
		Method:      http.MethodGet,
		Path:        "/climbs/{id}/sides/{side}",
		Summary:     "Get an enriched climb side",
		Tags:        []string{"climbs"},
	}, app.handleGetClimbSide)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-climb-side-gpx",
		Method:      http.MethodGet,
		Path:        "/climbs/{id}/sides/{side}/gpx",
		Summary:     "Export an enriched climb side as GPX",
		Tags:        []string{"climbs"},
	}, app.handleGetClimbSideGPX)

	// Location endpoints
	huma.Register(app.api, huma.Operation{
		OperationID: "get-location",
		Method:      http.MethodGet,
		Path:        "/location",
		Summary:     "Get forecast point data",
		Description: "Measured elevation and place metadata for a coordinate",
		Tags:        []string{"location"},
	}, app.handleGetForecastPoint)

	// Prometheus exposition
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
