package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	q := &QuartileSet{Q1: 100, Q2: 200, Q3: 300}

	t.Run("boundary values belong to the lower tier", func(t *testing.T) {
		tests := []struct {
			footfall float64
			want     Tier
		}{
			{0, TierLow},
			{99, TierLow},
			{100, TierLow},
			{101, TierMedium},
			{200, TierMedium},
			{201, TierHigh},
			{300, TierHigh},
			{301, TierVeryHigh},
		}
		for _, tt := range tests {
			got, err := Classify(tt.footfall, q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "footfall %g", tt.footfall)
		}
	})

	t.Run("monotonic over ascending footfall", func(t *testing.T) {
		prev := TierLow
		for f := 0.0; f <= 500; f++ {
			tier, err := Classify(f, q)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tier, prev)
			prev = tier
		}
	})

	t.Run("missing quartiles are an explicit unavailable", func(t *testing.T) {
		_, err := Classify(150, nil)
		require.ErrorIs(t, err, ErrNoQuartiles)
	})
}

func TestLabelCorpus(t *testing.T) {
	global := QuartileSet{Q1: 100, Q2: 200, Q3: 300}
	perLocation := map[string]QuartileSet{
		"Mysore_Palace": {Q1: 1000, Q2: 2000, Q3: 3000},
	}

	corpus := Corpus{
		{Location: "Mysore_Palace", Footfall: 1500},
		{Location: "Karanji_Lake", Footfall: 150},
		{Location: "Karanji_Lake", Footfall: 999},
	}

	LabelCorpus(corpus, global, perLocation)

	t.Run("site boundaries win over global", func(t *testing.T) {
		require.NotNil(t, corpus[0].Density)
		// 1500 is Medium against the palace's own quartiles, though it
		// would be VeryHigh globally.
		assert.Equal(t, TierMedium, *corpus[0].Density)
	})

	t.Run("global fallback for sites without boundaries", func(t *testing.T) {
		require.NotNil(t, corpus[1].Density)
		assert.Equal(t, TierMedium, *corpus[1].Density)
		require.NotNil(t, corpus[2].Density)
		assert.Equal(t, TierVeryHigh, *corpus[2].Density)
	})

	t.Run("relabel after recomputation", func(t *testing.T) {
		LabelCorpus(corpus, QuartileSet{Q1: 5000, Q2: 6000, Q3: 7000}, nil)
		for i := range corpus {
			require.NotNil(t, corpus[i].Density)
			assert.Equal(t, TierLow, *corpus[i].Density)
		}
	})
}
