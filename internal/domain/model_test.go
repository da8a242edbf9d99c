package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateFootfall(t *testing.T) {
	base := Context{
		Location:    "Mysore_Palace",
		Hour:        18,
		Weather:     "Clear",
		Temperature: 26,
	}

	t.Run("evening peak at the palace", func(t *testing.T) {
		// 800 · 1.5 · 1.4 = 1680 with noise suppressed.
		assert.Equal(t, 1680, EstimateFootfall(zeroNoise(), base))
	})

	t.Run("deterministic with noise suppressed", func(t *testing.T) {
		a := EstimateFootfall(zeroNoise(), base)
		b := EstimateFootfall(zeroNoise(), base)
		assert.Equal(t, a, b)
	})

	tests := []struct {
		name   string
		mutate func(c *Context)
		want   int
	}{
		{"festival doubles", func(c *Context) { c.IsFestival = true }, 3360},
		{"weekend holiday", func(c *Context) { c.IsHoliday = true }, 2352},
		{"rain at midday", func(c *Context) { c.Hour = 12; c.Weather = "Rain" }, 576},
		{"hot afternoon", func(c *Context) { c.Temperature = 35 }, 1344},
		{"cold morning", func(c *Context) { c.Temperature = 19 }, 1428},
		{"after closing", func(c *Context) { c.Hour = 22 }, 720},
		{"unknown weather is neutral", func(c *Context) { c.Weather = "Sleet" }, 1680},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Equal(t, tt.want, EstimateFootfall(zeroNoise(), c))
		})
	}

	t.Run("unknown location uses default profile", func(t *testing.T) {
		c := Context{Location: "Atlantis", Hour: 9, Weather: "Clear", Temperature: 25}
		// 200 · 1.0 · 1.0 = 200
		assert.Equal(t, 200, EstimateFootfall(zeroNoise(), c))
	})

	t.Run("never negative", func(t *testing.T) {
		// u near zero and v=0.5 produce a large negative noise draw that
		// overwhelms the small-site mean.
		src := &seqSource{values: []float64{1e-12, 0.5}}
		c := Context{Location: "Somanathapura_Temple", Hour: 12, Weather: "Rain", Temperature: 25}
		assert.Equal(t, 0, EstimateFootfall(src, c))
	})
}

func TestTimeFactor(t *testing.T) {
	tests := []struct {
		hour int
		want float64
	}{
		{6, 0.9}, {8, 0.9},
		{9, 1.0}, {11, 1.0},
		{12, 0.8}, {14, 0.8},
		{15, 1.1}, {17, 1.1},
		{18, 1.4}, {20, 1.4},
		{21, 0.6}, {5, 0.6}, {23, 0.6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timeFactor(tt.hour), "hour %d", tt.hour)
	}
}
