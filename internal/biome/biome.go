// Package biome maps free-form region names to a small set of mountain biomes
// carrying the geology and climate baselines used by the terrain and weather
// annotators.
package biome

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Biome describes the physical setting of a mountain region.
type Biome struct {
	Name    string `json:"name"`
	Geology string `json:"geology"`
	// TreeLine is the approximate upper limit of closed forest in meters.
	TreeLine float64 `json:"treeLine"`
	// SummerBaseline and WinterBaseline are mean sea-level temperatures in °C
	// for July and January.
	SummerBaseline float64 `json:"summerBaseline"`
	WinterBaseline float64 `json:"winterBaseline"`
	// PrecipitationMultiplier scales the generic monthly precipitation.
	PrecipitationMultiplier float64 `json:"precipitationMultiplier"`
}

// Default is returned for regions that are not in the table. It describes a
// generic temperate European range.
var Default = Biome{
	Name:                    "temperate-mountain",
	Geology:                 "mixed sedimentary",
	TreeLine:                1900,
	SummerBaseline:          24,
	WinterBaseline:          4,
	PrecipitationMultiplier: 1.0,
}

var biomes = map[string]Biome{
	"alps": {
		Name: "alpine", Geology: "granite and limestone", TreeLine: 2100,
		SummerBaseline: 24, WinterBaseline: 2, PrecipitationMultiplier: 1.3,
	},
	"dolomites": {
		Name: "dolomitic", Geology: "dolomite", TreeLine: 2200,
		SummerBaseline: 25, WinterBaseline: 2, PrecipitationMultiplier: 1.2,
	},
	"pyrenees": {
		Name: "pyrenean", Geology: "granite and schist", TreeLine: 2300,
		SummerBaseline: 26, WinterBaseline: 6, PrecipitationMultiplier: 1.1,
	},
	"massif central": {
		Name: "volcanic-upland", Geology: "basalt", TreeLine: 1600,
		SummerBaseline: 24, WinterBaseline: 4, PrecipitationMultiplier: 1.0,
	},
	"jura": {
		Name: "karst-upland", Geology: "limestone", TreeLine: 1600,
		SummerBaseline: 23, WinterBaseline: 2, PrecipitationMultiplier: 1.2,
	},
	"vosges": {
		Name: "hercynian-upland", Geology: "granite and sandstone", TreeLine: 1300,
		SummerBaseline: 23, WinterBaseline: 2, PrecipitationMultiplier: 1.1,
	},
	"provence": {
		Name: "mediterranean", Geology: "limestone", TreeLine: 1700,
		SummerBaseline: 29, WinterBaseline: 9, PrecipitationMultiplier: 0.7,
	},
	"apennines": {
		Name: "apennine", Geology: "limestone and flysch", TreeLine: 1800,
		SummerBaseline: 28, WinterBaseline: 8, PrecipitationMultiplier: 0.9,
	},
	"picos de europa": {
		Name: "cantabrian", Geology: "limestone", TreeLine: 1700,
		SummerBaseline: 23, WinterBaseline: 9, PrecipitationMultiplier: 1.4,
	},
	"sierra nevada": {
		Name: "mediterranean-high", Geology: "mica schist", TreeLine: 2100,
		SummerBaseline: 32, WinterBaseline: 11, PrecipitationMultiplier: 0.5,
	},
	"rockies": {
		Name: "continental-alpine", Geology: "granite and gneiss", TreeLine: 3500,
		SummerBaseline: 30, WinterBaseline: 0, PrecipitationMultiplier: 0.6,
	},
	"andes": {
		Name: "andean", Geology: "volcanic andesite", TreeLine: 3800,
		SummerBaseline: 26, WinterBaseline: 14, PrecipitationMultiplier: 0.5,
	},
	"himalaya": {
		Name: "himalayan", Geology: "gneiss and granite", TreeLine: 4000,
		SummerBaseline: 30, WinterBaseline: 12, PrecipitationMultiplier: 1.5,
	},
}

// aliases maps alternative spellings and sub-ranges onto table keys.
var aliases = map[string]string{
	"alpes":           "alps",
	"alpen":           "alps",
	"alpi":            "alps",
	"french alps":     "alps",
	"swiss alps":      "alps",
	"italian alps":    "alps",
	"dolomiti":        "dolomites",
	"pirineos":        "pyrenees",
	"pirineus":        "pyrenees",
	"massif-central":  "massif central",
	"auvergne":        "massif central",
	"mont ventoux":    "provence",
	"ventoux":         "provence",
	"appennini":       "apennines",
	"picos":           "picos de europa",
	"rocky mountains": "rockies",
	"himalayas":       "himalaya",
}

// Lookup returns the biome for region. The boolean is false when the region is
// not recognized, in which case Default is returned.
func Lookup(region string) (Biome, bool) {
	key := normalize(region)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if b, ok := biomes[key]; ok {
		return b, true
	}
	return Default, false
}

// normalize lowercases s, strips diacritics and collapses whitespace.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
