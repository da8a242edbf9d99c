package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTopHours(t *testing.T) {
	corpus := Corpus{
		{Location: "Mysore_Zoo", Hour: 18, Footfall: 100},
		{Location: "Mysore_Zoo", Hour: 18, Footfall: 200},
		{Location: "Mysore_Zoo", Hour: 9, Footfall: 150},
		{Location: "Mysore_Zoo", Hour: 6, Footfall: 50},
		{Location: "Mysore_Zoo", Hour: 12, Footfall: 80},
		{Location: "Karanji_Lake", Hour: 18, Footfall: 9999},
	}

	t.Run("ranks by average with ascending-hour tie break", func(t *testing.T) {
		got := TopHours(corpus, "Mysore_Zoo", 3)

		// 09:00 and 18:00 both average 150; the earlier hour ranks first.
		want := []HourAverage{
			{Hour: 9, AverageFootfall: 150},
			{Hour: 18, AverageFootfall: 150},
			{Hour: 12, AverageFootfall: 80},
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("other sites do not leak in", func(t *testing.T) {
		for _, h := range TopHours(corpus, "Mysore_Zoo", 10) {
			assert.NotEqual(t, 9999, h.AverageFootfall)
		}
	})

	t.Run("averages round to the nearest visitor", func(t *testing.T) {
		c := Corpus{
			{Location: "Karanji_Lake", Hour: 10, Footfall: 2},
			{Location: "Karanji_Lake", Hour: 10, Footfall: 3},
		}
		got := TopHours(c, "Karanji_Lake", 1)
		assert.Equal(t, []HourAverage{{Hour: 10, AverageFootfall: 3}}, got)
	})

	t.Run("default k", func(t *testing.T) {
		c := make(Corpus, 0, 16)
		for hour := 6; hour <= 21; hour++ {
			c = append(c, Observation{Location: "Mysore_Palace", Hour: hour, Footfall: hour * 10})
		}
		got := TopHours(c, "Mysore_Palace", 0)
		assert.Len(t, got, DefaultTopHours)
		assert.Equal(t, HourAverage{Hour: 21, AverageFootfall: 210}, got[0])
	})

	t.Run("no observations yields empty, not error", func(t *testing.T) {
		assert.Empty(t, TopHours(corpus, "Chamundi_Hills", 5))
		assert.Empty(t, TopHours(nil, "Mysore_Zoo", 5))
	})
}
