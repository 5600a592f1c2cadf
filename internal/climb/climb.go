package climb

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"velo-altitude/internal/types"
)

var ErrSideNotFound = errors.New("climb side not found")

// MaxLengthKm bounds ClimbSummary.Length. Keep in sync with the lte tag.
const MaxLengthKm = 1000

// ClimbSide is one approach to a col, e.g. the north or south ascent.
type ClimbSide struct {
	Name  string       `json:"name" validate:"required" doc:"Side name, e.g. north"`
	Start types.Coords `json:"start" doc:"Coordinates at the foot of the climb"`
	End   types.Coords `json:"end" doc:"Coordinates at the summit"`
}

// ClimbSummary holds the externally supplied summary statistics of a climb.
type ClimbSummary struct {
	ID          string      `json:"id,omitempty" doc:"Stable identifier, derived from the name when empty"`
	Name        string      `json:"name" validate:"required" doc:"Climb name"`
	Region      string      `json:"region" doc:"Mountain range or region, e.g. Alps"`
	Country     string      `json:"country" doc:"Country name"`
	Elevation   float64     `json:"elevation" validate:"gte=0" doc:"Summit altitude in meters"`
	Length      float64     `json:"length" validate:"gt=0,lte=1000" doc:"Climb length in kilometers"`
	AvgGradient float64     `json:"avgGradient" validate:"gte=0" doc:"Average gradient in percent"`
	MaxGradient float64     `json:"maxGradient" validate:"gte=0,gtefield=AvgGradient" doc:"Maximum gradient in percent"`
	Difficulty  Difficulty  `json:"difficulty" validate:"required,oneof=easy medium hard extreme" enum:"easy,medium,hard,extreme"`
	Sides       []ClimbSide `json:"sides" validate:"required,min=1,dive" minItems:"1"`
}

// Key returns the climb identifier used for storage.
func (c ClimbSummary) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return Slugify(c.Name)
}

// Side returns the side at index i.
func (c ClimbSummary) Side(i int) (ClimbSide, error) {
	if i < 0 || i >= len(c.Sides) {
		return ClimbSide{}, fmt.Errorf("%w: index %d, climb %q has %d sides", ErrSideNotFound, i, c.Name, len(c.Sides))
	}
	return c.Sides[i], nil
}

// SideIndex returns the index of the side with the given name, compared case-insensitively.
func (c ClimbSummary) SideIndex(name string) (int, error) {
	for i, s := range c.Sides {
		if strings.EqualFold(s.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q on climb %q", ErrSideNotFound, name, c.Name)
}

// Slugify lowercases s and replaces every run of non-alphanumeric characters with a dash.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
