// Package domain models synthetic visitor-footfall observations for a fixed
// catalog of heritage and temple sites, and the quartile-based density
// classification applied to them.
//
// # Footfall model
//
// Footfall is estimated from a context tuple (site, hour of day, weather
// condition, temperature, festival/holiday flags) as a multiplicative chain
// over the site's static profile:
//
//	mean = base_scale · popularity · time · festival · holiday · weather · temperature
//
// with factor tables:
//
//	time of day:  [6,9) 0.9 | [9,12) 1.0 | [12,15) 0.8 | [15,18) 1.1 | [18,21) 1.4 | otherwise 0.6
//	temperature:  >32°C 0.8 | <20°C 0.85 | otherwise 1.0
//	festival 2.0, weekend holiday 1.4
//	weather:      Clear 1.0 | Cloudy 0.95 | Rain 0.6 | Hot 0.8 | Humid 0.9
//
// Gaussian noise with standard deviation 0.15·base_scale is added before
// rounding; results never go below zero. Unrecognized sites fall back to
// {popularity 1.0, base scale 200} and unrecognized weather to factor 1.0 —
// malformed context is defaulted, never rejected.
//
// # Density tiers
//
// Density is a four-level ordinal scale (Low, Medium, High, VeryHigh) cut at
// the quartile boundaries of a footfall sample. Quartiles use the
// nearest-rank method with no interpolation: sorted[floor(n·p)] for
// p ∈ {0.25, 0.50, 0.75}. A footfall equal to a boundary belongs to the
// lower tier; downstream boundary-value tests depend on this closed upper
// bound, so the rule must not be swapped for an interpolated variant.
//
// # Calendars
//
// The festival calendar is a fixed set of recurring (month, day) dates for
// regional festivals (Dasara, Deepavali, Ugadi, national holidays). Monthly
// temperature baselines follow the local climate and carry ±2°C jitter when
// sampled by the generator.
package domain
