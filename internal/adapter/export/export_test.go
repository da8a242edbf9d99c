package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() domain.Corpus {
	high := domain.TierHigh
	return domain.Corpus{
		{
			ID:          "obs-1",
			Timestamp:   time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC),
			Date:        "2025-10-15",
			DayOfWeek:   "Wednesday",
			Month:       10,
			Hour:        18,
			Location:    "Mysore_Palace",
			Weather:     "Clear",
			Temperature: 26.4,
			IsFestival:  true,
			IsHoliday:   false,
			Footfall:    3350,
			Density:     &high,
		},
		{
			ID:          "obs-2",
			Timestamp:   time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),
			Date:        "2025-06-08",
			DayOfWeek:   "Sunday",
			Month:       6,
			Hour:        9,
			Location:    "Karanji_Lake",
			Weather:     "Rain",
			Temperature: 24.0,
			IsFestival:  false,
			IsHoliday:   true,
			Footfall:    118,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testCorpus()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	t.Run("pinned column order", func(t *testing.T) {
		assert.Equal(t, Columns, rows[0])
	})

	t.Run("labeled row", func(t *testing.T) {
		want := []string{
			"2025-10-15 18:00:00", "2025-10-15", "Wednesday", "10", "18",
			"Mysore_Palace", "Clear", "26.4",
			"true", "false",
			"3350", "High", "2",
		}
		assert.Empty(t, cmp.Diff(want, rows[1]))
	})

	t.Run("unlabeled row leaves density empty", func(t *testing.T) {
		assert.Equal(t, "", rows[2][11])
		assert.Equal(t, "", rows[2][12])
		assert.Equal(t, "118", rows[2][10])
	})
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures", "corpus.json")

	corpus := testCorpus()
	require.NoError(t, WriteJSONFile(path, corpus))

	got, err := ReadJSONFile(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(corpus, got))
}

func TestReadJSONFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := ReadJSONFile(path)
	require.Error(t, err)
}
