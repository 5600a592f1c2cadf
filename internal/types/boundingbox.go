package types

import "math"

// BoundingBox is an axis-aligned latitude/longitude rectangle.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// NewBoundingBox returns the smallest box enclosing all points, padded by
// bufferKm on every side. Degrees per km use the flat-Earth approximation
// evaluated at the centre latitude.
func NewBoundingBox(bufferKm float64, points ...Coords) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{
		North: points[0].Latitude,
		South: points[0].Latitude,
		East:  points[0].Longitude,
		West:  points[0].Longitude,
	}
	for _, p := range points[1:] {
		box.North = math.Max(box.North, p.Latitude)
		box.South = math.Min(box.South, p.Latitude)
		box.East = math.Max(box.East, p.Longitude)
		box.West = math.Min(box.West, p.Longitude)
	}

	centerLat := (box.North + box.South) / 2
	latBuffer := bufferKm / KmPerDegreeLatitude
	lonBuffer := bufferKm / (KmPerDegreeLatitude * math.Cos(centerLat*math.Pi/180))

	box.North = math.Min(90, box.North+latBuffer)
	box.South = math.Max(-90, box.South-latBuffer)
	box.East += lonBuffer
	box.West -= lonBuffer
	return box
}

// Center returns the centre of the box.
func (b BoundingBox) Center() Coords {
	return NewCoords((b.North+b.South)/2, (b.East+b.West)/2)
}

// Contains reports whether c lies inside the box, edges included.
func (b BoundingBox) Contains(c Coords) bool {
	return c.Latitude <= b.North && c.Latitude >= b.South &&
		c.Longitude <= b.East && c.Longitude >= b.West
}
