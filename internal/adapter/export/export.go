// Package export writes corpus fixtures. The CSV column order is pinned for
// compatibility with downstream consumers and must not be reordered.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/deccanpulse/footfall-density-service/internal/domain"
)

// Columns is the pinned export layout.
var Columns = []string{
	"datetime", "date", "day_of_week", "month", "hour",
	"location", "weather", "temperature",
	"is_festival", "is_holiday",
	"footfall", "density_label", "density_int",
}

const datetimeLayout = "2006-01-02 15:04:05"

// WriteCSV writes the corpus as CSV with a header row. Unlabeled
// observations leave the density columns empty.
func WriteCSV(w io.Writer, corpus domain.Corpus) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range corpus {
		if err := cw.Write(csvRow(corpus[i])); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(o domain.Observation) []string {
	label, rank := "", ""
	if o.Density != nil {
		label = o.Density.String()
		rank = strconv.Itoa(int(*o.Density))
	}
	return []string{
		o.Timestamp.Format(datetimeLayout),
		o.Date,
		o.DayOfWeek,
		strconv.Itoa(o.Month),
		strconv.Itoa(o.Hour),
		o.Location,
		o.Weather,
		strconv.FormatFloat(o.Temperature, 'f', 1, 64),
		strconv.FormatBool(o.IsFestival),
		strconv.FormatBool(o.IsHoliday),
		strconv.Itoa(o.Footfall),
		label,
		rank,
	}
}

// WriteJSON writes the corpus as indented JSON.
func WriteJSON(w io.Writer, corpus domain.Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(corpus)
}

// WriteCSVFile writes a CSV fixture, creating parent directories.
func WriteCSVFile(path string, corpus domain.Corpus) error {
	return writeFile(path, corpus, WriteCSV)
}

// WriteJSONFile writes a JSON fixture, creating parent directories.
func WriteJSONFile(path string, corpus domain.Corpus) error {
	return writeFile(path, corpus, WriteJSON)
}

func writeFile(path string, corpus domain.Corpus, write func(io.Writer, domain.Corpus) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, corpus); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSONFile loads a corpus fixture written by WriteJSONFile.
func ReadJSONFile(path string) (domain.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus domain.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parse corpus fixture %s: %w", path, err)
	}
	return corpus, nil
}
