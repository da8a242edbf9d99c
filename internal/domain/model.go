package domain

import "math"

const (
	festivalFactor = 2.0
	holidayFactor  = 1.4

	// noiseScale sets the noise stddev relative to a site's base scale.
	noiseScale = 0.15
)

// EstimateFootfall maps a context tuple to an estimated visitor count for one
// hour at one site. The estimate is the factor-chain mean for the context
// plus Gaussian noise drawn from src. Output is always non-negative; unknown
// sites and weather conditions are defaulted rather than rejected.
func EstimateFootfall(src UniformSource, c Context) int {
	profile := ProfileFor(c.Location)

	mean := profile.BaseScale * profile.Popularity *
		timeFactor(c.Hour) *
		WeatherFactor(c.Weather) *
		temperatureFactor(c.Temperature)
	if c.IsFestival {
		mean *= festivalFactor
	}
	if c.IsHoliday {
		mean *= holidayFactor
	}

	noise := Gaussian(src, 0, profile.BaseScale*noiseScale)

	footfall := math.Round(mean + noise)
	if footfall < 0 {
		return 0
	}
	return int(footfall)
}

// timeFactor is the stepwise time-of-day multiplier. Evening hours peak;
// anything outside the open window is off-peak.
func timeFactor(hour int) float64 {
	switch {
	case hour >= 6 && hour < 9:
		return 0.9
	case hour >= 9 && hour < 12:
		return 1.0
	case hour >= 12 && hour < 15:
		return 0.8
	case hour >= 15 && hour < 18:
		return 1.1
	case hour >= 18 && hour < 21:
		return 1.4
	default:
		return 0.6
	}
}

func temperatureFactor(t float64) float64 {
	switch {
	case t > 32:
		return 0.8
	case t < 20:
		return 0.85
	default:
		return 1.0
	}
}
