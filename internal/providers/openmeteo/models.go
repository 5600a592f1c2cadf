package openmeteo

type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}
