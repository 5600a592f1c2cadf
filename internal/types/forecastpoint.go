package types

// ForecastPoint represents a geographic location with measured elevation
// and place metadata
type ForecastPoint struct {
	Coordinates Coords       `json:"coordinates"`
	Elevation   Elevation    `json:"elevation"`
	Location    LocationInfo `json:"location"`
}
