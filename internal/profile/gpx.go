package profile

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

var ErrEmptyProfile = errors.New("profile has no points")

// ToGPX renders the profile as a GPX 1.1 document with one track segment.
func ToGPX(p *ElevationProfile, name string) ([]byte, error) {
	if p == nil || len(p.Points) == 0 {
		return nil, ErrEmptyProfile
	}

	segment := gpx.GPXTrackSegment{
		Points: make([]gpx.GPXPoint, 0, len(p.Points)),
	}
	for _, pt := range p.Points {
		segment.Points = append(segment.Points, gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  pt.Coordinates.Latitude,
				Longitude: pt.Coordinates.Longitude,
				Elevation: *gpx.NewNullableFloat64(pt.Elevation),
			},
		})
	}

	doc := &gpx.GPX{
		Version: "1.1",
		Creator: "velo-altitude",
		Name:    name,
		Tracks: []gpx.GPXTrack{
			{
				Name:     name,
				Type:     p.Metadata.Algorithm,
				Segments: []gpx.GPXTrackSegment{segment},
			},
		},
	}

	data, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, fmt.Errorf("failed to encode gpx: %w", err)
	}
	return data, nil
}
