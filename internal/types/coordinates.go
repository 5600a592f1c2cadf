package types

import "math"

// KmPerDegreeLatitude is the flat-Earth approximation used for small extents.
const KmPerDegreeLatitude = 111.0

type Coords struct {
	Latitude  float64 `json:"lat" doc:"Latitude in decimal degrees"`
	Longitude float64 `json:"lon" doc:"Longitude in decimal degrees"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Interpolate returns the point at fraction t along the straight line from c to other.
func (c Coords) Interpolate(other Coords, t float64) Coords {
	return Coords{
		Latitude:  c.Latitude + t*(other.Latitude-c.Latitude),
		Longitude: c.Longitude + t*(other.Longitude-c.Longitude),
	}
}

// Midpoint returns the point halfway between c and other.
func (c Coords) Midpoint(other Coords) Coords {
	return c.Interpolate(other, 0.5)
}

// IsValid reports whether the coordinate lies within the WGS84 ranges.
func (c Coords) IsValid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude) &&
		c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
