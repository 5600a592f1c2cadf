package weather

import (
	"math"
	"slices"
	"testing"

	"velo-altitude/internal/biome"
	"velo-altitude/internal/climb"
	"velo-altitude/internal/types"
)

func alpineClimb(elevation float64) climb.ClimbSummary {
	return climb.ClimbSummary{
		Name:        "Test Col",
		Region:      "Alps",
		Country:     "France",
		Elevation:   elevation,
		Length:      12,
		AvgGradient: 7,
		MaxGradient: 10,
		Difficulty:  climb.DifficultyHard,
		Sides: []climb.ClimbSide{
			{Name: "east", Start: types.NewCoords(45.9, 6.9), End: types.NewCoords(45.95, 6.95)},
		},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummitTemperature(t *testing.T) {
	tests := []struct {
		name      string
		seaLevel  float64
		elevation float64
		expected  float64
	}{
		{"sea level", 20, 0, 20},
		{"100 m", 20, 100, 19.4},
		{"2000 m", 24, 2000, 12},
		{"3000 m", 2, 3000, -16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummitTemperature(tt.seaLevel, tt.elevation); !approxEqual(got, tt.expected) {
				t.Errorf("SummitTemperature(%v, %v) = %v, want %v", tt.seaLevel, tt.elevation, got, tt.expected)
			}
		})
	}
}

func TestGenerate_Alpine(t *testing.T) {
	got := Generate(alpineClimb(2000))

	if got.Biome != "alpine" || !got.BiomeKnown {
		t.Errorf("Biome = %q known=%v, want alpine known=true", got.Biome, got.BiomeKnown)
	}

	// Alpine baselines 24 / 2 °C, minus 12 °C at 2000 m
	if !approxEqual(got.Summer.Avg.Celsius, 12) {
		t.Errorf("Summer.Avg = %v, want 12", got.Summer.Avg.Celsius)
	}
	if !approxEqual(got.Summer.Min.Celsius, 7) || !approxEqual(got.Summer.Max.Celsius, 17) {
		t.Errorf("Summer range = [%v, %v], want [7, 17]", got.Summer.Min.Celsius, got.Summer.Max.Celsius)
	}
	if !approxEqual(got.Winter.Avg.Celsius, -10) {
		t.Errorf("Winter.Avg = %v, want -10", got.Winter.Avg.Celsius)
	}
	if !approxEqual(got.Winter.Min.Celsius, -14) || !approxEqual(got.Winter.Max.Celsius, -6) {
		t.Errorf("Winter range = [%v, %v], want [-14, -6]", got.Winter.Min.Celsius, got.Winter.Max.Celsius)
	}

	// multiplier 1.3, orographic factor 1.2
	if !approxEqual(got.SummerPrecipitation.Mm, 109.2) {
		t.Errorf("SummerPrecipitation = %v mm, want 109.2", got.SummerPrecipitation.Mm)
	}
	if !approxEqual(got.WinterPrecipitation.Mm, 156) {
		t.Errorf("WinterPrecipitation = %v mm, want 156", got.WinterPrecipitation.Mm)
	}
	if math.Abs(got.AnnualPrecipitation.Mm-6*(109.2+156)) > 1e-6 {
		t.Errorf("AnnualPrecipitation = %v mm, want %v", got.AnnualPrecipitation.Mm, 6*(109.2+156))
	}

	if len(got.Monthly) != 12 {
		t.Fatalf("Monthly has %d entries, want 12", len(got.Monthly))
	}
	if got.Monthly[0].Month != "January" || !approxEqual(got.Monthly[0].Temperature.Celsius, -10) {
		t.Errorf("Monthly[0] = %+v, want January at -10", got.Monthly[0])
	}
	if got.Monthly[6].Month != "July" || !approxEqual(got.Monthly[6].Temperature.Celsius, 12) {
		t.Errorf("Monthly[6] = %+v, want July at 12", got.Monthly[6])
	}

	wantSnow := []string{"January", "February", "March", "November", "December"}
	if !slices.Equal(got.SnowMonths, wantSnow) {
		t.Errorf("SnowMonths = %v, want %v", got.SnowMonths, wantSnow)
	}
	wantRiding := []string{"May", "June", "July", "August", "September"}
	if !slices.Equal(got.RidingMonths, wantRiding) {
		t.Errorf("RidingMonths = %v, want %v", got.RidingMonths, wantRiding)
	}
}

func TestGenerate_LowClimbRidesAllYear(t *testing.T) {
	c := alpineClimb(300)
	c.Region = "Provence"

	got := Generate(c)

	if len(got.SnowMonths) != 0 {
		t.Errorf("SnowMonths = %v, want none", got.SnowMonths)
	}
	if len(got.RidingMonths) != 12 {
		t.Errorf("RidingMonths = %v, want all 12", got.RidingMonths)
	}
}

func TestGenerate_UnknownRegion(t *testing.T) {
	c := alpineClimb(1000)
	c.Region = "Unknown Range"

	got := Generate(c)

	if got.BiomeKnown {
		t.Error("BiomeKnown = true for unknown region")
	}
	if got.Biome != biome.Default.Name {
		t.Errorf("Biome = %q, want %q", got.Biome, biome.Default.Name)
	}
	if !approxEqual(got.Summer.Avg.Celsius, biome.Default.SummerBaseline-6) {
		t.Errorf("Summer.Avg = %v, want %v", got.Summer.Avg.Celsius, biome.Default.SummerBaseline-6)
	}
}

func TestGenerate_HigherIsColderAndWetter(t *testing.T) {
	low := Generate(alpineClimb(1000))
	high := Generate(alpineClimb(2500))

	if high.Summer.Avg.Celsius >= low.Summer.Avg.Celsius {
		t.Errorf("summer at 2500 m (%v) not colder than at 1000 m (%v)", high.Summer.Avg.Celsius, low.Summer.Avg.Celsius)
	}
	if high.AnnualPrecipitation.Mm <= low.AnnualPrecipitation.Mm {
		t.Errorf("precipitation at 2500 m (%v) not above 1000 m (%v)", high.AnnualPrecipitation.Mm, low.AnnualPrecipitation.Mm)
	}
}
