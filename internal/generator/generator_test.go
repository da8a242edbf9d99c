package generator

import (
	"testing"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

func freezeClock(t *testing.T) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(testNow))
	t.Cleanup(func() { SetClock(nil) })
}

func TestGenerate_SeededDeterminism(t *testing.T) {
	freezeClock(t)

	a := New(Options{Seed: 7}).Generate(300)
	b := New(Options{Seed: 7}).Generate(300)

	assert.Empty(t, cmp.Diff(a, b))
}

func TestGenerateBatch_AppendsLikeSingleShot(t *testing.T) {
	freezeClock(t)

	full := New(Options{Seed: 5}).Generate(200)

	g := New(Options{Seed: 5})
	var incremental domain.Corpus
	incremental = append(incremental, g.GenerateBatch(120)...)
	incremental = append(incremental, g.GenerateBatch(80)...)

	assert.Empty(t, cmp.Diff(full, incremental))
}

func TestGenerateBatch_ZeroCount(t *testing.T) {
	freezeClock(t)
	assert.Empty(t, New(Options{Seed: 1}).GenerateBatch(0))
}

func TestGenerate_Invariants(t *testing.T) {
	freezeClock(t)

	corpus := New(Options{Seed: 11}).Generate(2000)
	require.Len(t, corpus, 2000)

	// The drawn hour can precede the exact window edge on the earliest day,
	// so bound by the start of that day.
	windowStart := testNow.Add(-2 * 365 * 24 * time.Hour).Truncate(24 * time.Hour)
	for i := range corpus {
		o := &corpus[i]

		assert.GreaterOrEqual(t, o.Hour, 6)
		assert.LessOrEqual(t, o.Hour, 21)
		assert.GreaterOrEqual(t, o.Footfall, 0)
		assert.True(t, domain.KnownLocation(o.Location), o.Location)

		assert.False(t, o.Timestamp.Before(windowStart), "timestamp %s before window", o.Timestamp)
		assert.False(t, o.Timestamp.After(testNow), "timestamp %s after now", o.Timestamp)
		assert.Equal(t, o.Hour, o.Timestamp.Hour())
		assert.Equal(t, o.Date, o.Timestamp.Format("2006-01-02"))
		assert.Equal(t, o.Month, int(o.Timestamp.Month()))

		weekday := o.Timestamp.Weekday()
		assert.Equal(t, weekday == time.Saturday || weekday == time.Sunday, o.IsHoliday)
		assert.Equal(t, weekday.String(), o.DayOfWeek)

		baseline := domain.MonthBaselineTemperature(o.Timestamp.Month())
		assert.InDelta(t, baseline, o.Temperature, 2.0)

		assert.Nil(t, o.Density, "generator must not label")
		assert.NotEmpty(t, o.ID)
	}
}

func TestGenerate_WeatherBias(t *testing.T) {
	freezeClock(t)

	t.Run("default bias favors Clear", func(t *testing.T) {
		corpus := New(Options{Seed: 13}).Generate(5000)
		clear := 0
		for i := range corpus {
			if corpus[i].Weather == "Clear" {
				clear++
			}
		}
		// 0.6 direct mass plus a fifth of the remaining 0.4.
		assert.InDelta(t, 0.68, float64(clear)/5000, 0.03)
	})

	t.Run("full bias pins every draw", func(t *testing.T) {
		corpus := New(Options{Seed: 13, ClearBias: 1.0}).Generate(500)
		for i := range corpus {
			assert.Equal(t, "Clear", corpus[i].Weather)
		}
	})
}

func TestGenerate_FestivalCalendarDates(t *testing.T) {
	freezeClock(t)

	corpus := New(Options{Seed: 17}).Generate(5000)
	for i := range corpus {
		if domain.IsFestivalDate(corpus[i].Timestamp) {
			assert.True(t, corpus[i].IsFestival, "calendar date %s not flagged", corpus[i].Date)
		}
	}
}
