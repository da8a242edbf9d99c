// Package generator builds synthetic footfall corpora. Every observation is
// drawn from a seeded random source: a timestamp inside a historical window,
// an open hour, a catalog site, a Clear-biased weather condition, and a
// temperature around the month's baseline, with the footfall itself produced
// by the domain model. The same seed always yields the same corpus.
package generator

import (
	"math/rand"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/domain"
)

const (
	defaultWindowYears  = 2
	defaultClearBias    = 0.6
	defaultFestivalRate = 0.02

	// Sites open 06:00 through 21:00.
	openingHour = 6
	closingHour = 21
)

// Options configure corpus generation. Zero values select the defaults.
type Options struct {
	// Seed fixes the random source for reproducible corpora. 0 seeds from
	// the current time.
	Seed int64

	// WindowYears is the historical sampling window ending at "now".
	WindowYears int

	// ClearBias is the probability mass on the Clear condition; the
	// remainder is spread uniformly over all conditions.
	ClearBias float64

	// FestivalRate is the chance a date outside the festival calendar is
	// still treated as a festival (local fairs, temple events).
	FestivalRate float64
}

// Generator produces synthetic observations. It owns its random source, so a
// single Generator must not be shared between goroutines; shard the count
// across separately seeded Generators to parallelize.
type Generator struct {
	rng       *rand.Rand
	opts      Options
	locations []string
	weather   []string
}

// New creates a Generator with defaults applied.
func New(opts Options) *Generator {
	if opts.WindowYears <= 0 {
		opts.WindowYears = defaultWindowYears
	}
	if opts.ClearBias <= 0 || opts.ClearBias > 1 {
		opts.ClearBias = defaultClearBias
	}
	if opts.FestivalRate <= 0 {
		opts.FestivalRate = defaultFestivalRate
	}
	seed := opts.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		opts:      opts,
		locations: domain.Locations(),
		weather:   domain.WeatherConditions(),
	}
}

// Generate produces a complete corpus of count observations.
func (g *Generator) Generate(count int) domain.Corpus {
	return domain.Corpus(g.GenerateBatch(count))
}

// GenerateBatch produces count observations that can be appended to an
// existing corpus. Batching lets a driver interleave generation with other
// work; cost is strictly per-sample with no shared locking.
func (g *Generator) GenerateBatch(count int) []domain.Observation {
	if count <= 0 {
		return nil
	}
	out := make([]domain.Observation, count)
	for i := range out {
		out[i] = g.observation()
	}
	return out
}

func (g *Generator) observation() domain.Observation {
	sampled := g.timestamp()
	hour := openingHour + g.rng.Intn(closingHour-openingHour+1)
	ts := time.Date(sampled.Year(), sampled.Month(), sampled.Day(), hour, 0, 0, 0, time.UTC)

	location := g.locations[g.rng.Intn(len(g.locations))]
	weather := g.condition()
	temperature := domain.MonthBaselineTemperature(ts.Month()) + g.rng.Float64()*4 - 2

	festival := domain.IsFestivalDate(ts) || g.rng.Float64() < g.opts.FestivalRate
	weekday := ts.Weekday()
	holiday := weekday == time.Saturday || weekday == time.Sunday

	ctx := domain.Context{
		Location:    location,
		Hour:        hour,
		Weather:     weather,
		Temperature: temperature,
		IsFestival:  festival,
		IsHoliday:   holiday,
	}

	return domain.Observation{
		ID:          domain.ObservationID(location, ts),
		Timestamp:   ts,
		Date:        ts.Format("2006-01-02"),
		DayOfWeek:   weekday.String(),
		Month:       int(ts.Month()),
		Hour:        hour,
		Location:    location,
		Weather:     weather,
		Temperature: temperature,
		IsFestival:  festival,
		IsHoliday:   holiday,
		Footfall:    domain.EstimateFootfall(g.rng, ctx),
	}
}

// timestamp draws uniformly from the historical window ending at the clock's
// now. The current day is excluded so the separately drawn hour cannot land
// in the future.
func (g *Generator) timestamp() time.Time {
	now := clock.Now().UTC()
	window := int64(time.Duration(g.opts.WindowYears) * 365 * 24 * time.Hour)
	day := int64(24 * time.Hour)
	offset := day + g.rng.Int63n(window-day)
	return now.Add(-time.Duration(offset))
}

// condition draws a weather condition with the configured bias toward Clear;
// the remaining mass is uniform over every condition, Clear included.
func (g *Generator) condition() string {
	if g.rng.Float64() < g.opts.ClearBias {
		return "Clear"
	}
	return g.weather[g.rng.Intn(len(g.weather))]
}
