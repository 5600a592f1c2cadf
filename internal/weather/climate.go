package weather

import (
	"math"
	"time"

	"velo-altitude/internal/biome"
	"velo-altitude/internal/climb"
	"velo-altitude/internal/types"
)

const (
	// LapseRate is the temperature drop per meter of altitude, in °C.
	LapseRate = 0.006

	summerHalfWidth = 5.0
	winterHalfWidth = 4.0

	summerPrecipitationMm = 70.0
	winterPrecipitationMm = 100.0
	// precipitation grows by 10% per 1000 m of altitude
	orographicRate = 0.1

	snowThreshold   = 0.0
	ridingThreshold = 5.0
)

// WeatherData is the synthetic climate description of a climb's summit.
type WeatherData struct {
	Biome               string                 `json:"biome"`
	BiomeKnown          bool                   `json:"biomeKnown" doc:"False when the region was not recognized and default baselines were used"`
	Summer              types.TemperatureRange `json:"summer" doc:"July temperatures at the summit"`
	Winter              types.TemperatureRange `json:"winter" doc:"January temperatures at the summit"`
	SummerPrecipitation types.Precipitation    `json:"summerPrecipitation" doc:"Monthly precipitation in summer"`
	WinterPrecipitation types.Precipitation    `json:"winterPrecipitation" doc:"Monthly precipitation in winter"`
	AnnualPrecipitation types.Precipitation    `json:"annualPrecipitation"`
	Monthly             []MonthlyClimate       `json:"monthly"`
	SnowMonths          []string               `json:"snowMonths" doc:"Months with a mean temperature below freezing"`
	RidingMonths        []string               `json:"ridingMonths" doc:"Months with a mean temperature of at least 5 °C"`
	Timezone            string                 `json:"timezone,omitempty" doc:"IANA timezone of the summit"`
}

// MonthlyClimate holds the mean conditions for one calendar month.
type MonthlyClimate struct {
	Month         string              `json:"month"`
	Temperature   types.Temperature   `json:"temperature"`
	Precipitation types.Precipitation `json:"precipitation"`
}

// SummitTemperature applies the lapse rate to a sea-level temperature.
func SummitTemperature(seaLevelCelsius, elevation float64) float64 {
	return seaLevelCelsius - LapseRate*elevation
}

// Generate derives the summit climate of a validated climb from its elevation
// and region.
func Generate(summary climb.ClimbSummary) *WeatherData {
	b, known := biome.Lookup(summary.Region)

	summer := SummitTemperature(b.SummerBaseline, summary.Elevation)
	winter := SummitTemperature(b.WinterBaseline, summary.Elevation)

	scale := b.PrecipitationMultiplier * (1 + summary.Elevation/1000*orographicRate)
	summerPrecip := summerPrecipitationMm * scale
	winterPrecip := winterPrecipitationMm * scale

	data := &WeatherData{
		Biome:               b.Name,
		BiomeKnown:          known,
		Summer:              types.NewTemperatureRange(summer, summerHalfWidth),
		Winter:              types.NewTemperatureRange(winter, winterHalfWidth),
		SummerPrecipitation: types.NewPrecipitationFromMm(summerPrecip),
		WinterPrecipitation: types.NewPrecipitationFromMm(winterPrecip),
		Monthly:             make([]MonthlyClimate, 0, 12),
		SnowMonths:          []string{},
		RidingMonths:        []string{},
	}

	var annual float64
	for m := range 12 {
		temp := seasonal(winter, summer, m)
		precip := seasonal(winterPrecip, summerPrecip, m)
		annual += precip

		month := time.Month(m + 1).String()
		data.Monthly = append(data.Monthly, MonthlyClimate{
			Month:         month,
			Temperature:   types.NewTemperatureFromCelsius(temp),
			Precipitation: types.NewPrecipitationFromMm(precip),
		})

		if temp < snowThreshold {
			data.SnowMonths = append(data.SnowMonths, month)
		}
		if temp >= ridingThreshold {
			data.RidingMonths = append(data.RidingMonths, month)
		}
	}
	data.AnnualPrecipitation = types.NewPrecipitationFromMm(annual)

	return data
}

// seasonal follows a cosine from the January value to the July value and back.
// monthIndex is 0 for January.
func seasonal(january, july float64, monthIndex int) float64 {
	mid := (january + july) / 2
	amplitude := (july - january) / 2
	return mid - amplitude*math.Cos(2*math.Pi*float64(monthIndex)/12)
}
