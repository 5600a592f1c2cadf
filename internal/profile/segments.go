package profile

// SegmentType classifies a run of the profile.
type SegmentType string

const (
	SegmentClimb   SegmentType = "climb"
	SegmentDescent SegmentType = "descent"
	SegmentFlat    SegmentType = "flat"
)

// SegmentThreshold is the gradient in percent separating flat from climbing or descending.
const SegmentThreshold = 1.5

// Segment is a maximal run of consecutive points sharing a SegmentType.
// StartIndex and EndIndex are inclusive.
type Segment struct {
	Type            SegmentType `json:"type" enum:"climb,descent,flat"`
	StartIndex      int         `json:"startIndex"`
	EndIndex        int         `json:"endIndex"`
	StartDistance   float64     `json:"startDistance" doc:"Kilometers from the start"`
	EndDistance     float64     `json:"endDistance" doc:"Kilometers from the start"`
	Length          float64     `json:"length" doc:"Kilometers"`
	ElevationChange float64     `json:"elevationChange" doc:"Meters"`
	AvgGradient     float64     `json:"avgGradient" doc:"Percent"`
}

// Classify returns the SegmentType of a gradient.
func Classify(gradient float64) SegmentType {
	switch {
	case gradient > SegmentThreshold:
		return SegmentClimb
	case gradient < -SegmentThreshold:
		return SegmentDescent
	default:
		return SegmentFlat
	}
}

// ClassifySegments partitions points into segments in a single scan.
//
// Point i > 0 owns the interval between points i-1 and i, so a segment
// covering indices [s, e] spans from point max(s-1, 0) to point e. Segment
// lengths therefore add up to the profile length.
func ClassifySegments(points []ElevationPoint) []Segment {
	if len(points) == 0 {
		return nil
	}

	var segments []Segment
	start := 0
	current := Classify(points[0].Gradient)

	for i := 1; i < len(points); i++ {
		t := Classify(points[i].Gradient)
		if t == current {
			continue
		}
		segments = append(segments, newSegment(points, current, start, i-1))
		start = i
		current = t
	}

	return append(segments, newSegment(points, current, start, len(points)-1))
}

func newSegment(points []ElevationPoint, t SegmentType, startIdx, endIdx int) Segment {
	from := startIdx
	if from > 0 {
		from--
	}

	length := points[endIdx].Distance - points[from].Distance
	change := points[endIdx].Elevation - points[from].Elevation

	avg := 0.0
	if length > 0 {
		avg = change / (length * metersPerPercentKm)
	}

	return Segment{
		Type:            t,
		StartIndex:      startIdx,
		EndIndex:        endIdx,
		StartDistance:   points[from].Distance,
		EndDistance:     points[endIdx].Distance,
		Length:          length,
		ElevationChange: change,
		AvgGradient:     avg,
	}
}
