package types

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}

// TemperatureRange is a seasonal band of expected temperatures.
type TemperatureRange struct {
	Min Temperature `json:"min"`
	Avg Temperature `json:"avg"`
	Max Temperature `json:"max"`
}

// NewTemperatureRange builds a range centred on avg with the given half width in °C.
func NewTemperatureRange(avgCelsius, halfWidth float64) TemperatureRange {
	return TemperatureRange{
		Min: NewTemperatureFromCelsius(avgCelsius - halfWidth),
		Avg: NewTemperatureFromCelsius(avgCelsius),
		Max: NewTemperatureFromCelsius(avgCelsius + halfWidth),
	}
}
