package domain

import "math"

// UniformSource yields independent draws in [0,1). *rand.Rand satisfies it,
// which lets callers thread a seeded source through for reproducible output.
type UniformSource interface {
	Float64() float64
}

// Gaussian draws from Normal(mean, stddev) by transforming two uniform draws
// with the Box–Muller form z = sqrt(-2·ln u)·cos(2π·v). A zero u would blow
// up the log, so zero draws are rejected and redrawn. Each call is
// independent; no state is kept between calls.
func Gaussian(src UniformSource, mean, stddev float64) float64 {
	u := src.Float64()
	for u == 0 {
		u = src.Float64()
	}
	v := src.Float64()
	z := math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
	return mean + z*stddev
}
