// Command validate performs integrity checks over exported corpus fixtures:
// hour window, non-negative footfall, known locations, quartile
// monotonicity, label/boundary agreement, and CSV/JSON cross-consistency.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -csv data/mock/corpus_seed42.csv \
//	  -json data/mock/corpus_seed42.json
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/deccanpulse/footfall-density-service/internal/adapter/export"
	"github.com/deccanpulse/footfall-density-service/internal/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "FAIL:", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func run() error {
	csvPath := flag.String("csv", "", "CSV fixture to validate")
	jsonPath := flag.String("json", "", "JSON fixture to validate")
	flag.Parse()

	if *jsonPath == "" {
		flag.Usage()
		return fmt.Errorf("-json is required")
	}

	corpus, err := export.ReadJSONFile(*jsonPath)
	if err != nil {
		return err
	}
	if err := checkObservations(corpus); err != nil {
		return err
	}
	if err := checkQuartiles(corpus); err != nil {
		return err
	}
	fmt.Printf("%s: %d observations valid\n", *jsonPath, len(corpus))

	if *csvPath != "" {
		if err := checkCSV(*csvPath, len(corpus)); err != nil {
			return err
		}
		fmt.Printf("%s: consistent with JSON fixture\n", *csvPath)
	}
	return nil
}

func checkObservations(corpus domain.Corpus) error {
	for i := range corpus {
		o := &corpus[i]
		if o.Hour < 6 || o.Hour > 21 {
			return fmt.Errorf("observation %d: hour %d outside opening window", i, o.Hour)
		}
		if o.Footfall < 0 {
			return fmt.Errorf("observation %d: negative footfall %d", i, o.Footfall)
		}
		if !domain.KnownLocation(o.Location) {
			return fmt.Errorf("observation %d: unknown location %q", i, o.Location)
		}
		if o.Density == nil {
			return fmt.Errorf("observation %d: missing density label", i)
		}
	}
	return nil
}

// checkQuartiles recomputes boundaries from the fixture and confirms both
// monotonicity and that every stored label agrees with them.
func checkQuartiles(corpus domain.Corpus) error {
	global := domain.GlobalQuartiles(corpus)
	if global.Q1 > global.Q2 || global.Q2 > global.Q3 {
		return fmt.Errorf("global quartiles not monotonic: %+v", global)
	}

	perLocation := domain.PerLocationQuartiles(corpus)
	for location, q := range perLocation {
		if q.Q1 > q.Q2 || q.Q2 > q.Q3 {
			return fmt.Errorf("%s quartiles not monotonic: %+v", location, q)
		}
	}

	for i := range corpus {
		o := &corpus[i]
		q := global
		if lq, ok := perLocation[o.Location]; ok {
			q = lq
		}
		want, err := domain.Classify(float64(o.Footfall), &q)
		if err != nil {
			return err
		}
		if *o.Density != want {
			return fmt.Errorf("observation %d: label %s disagrees with boundaries (want %s)", i, *o.Density, want)
		}
	}
	return nil
}

func checkCSV(path string, wantRows int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: empty file", path)
	}

	header := rows[0]
	if len(header) != len(export.Columns) {
		return fmt.Errorf("%s: %d columns, want %d", path, len(header), len(export.Columns))
	}
	for i, col := range export.Columns {
		if header[i] != col {
			return fmt.Errorf("%s: column %d is %q, want %q", path, i, header[i], col)
		}
	}

	if got := len(rows) - 1; got != wantRows {
		return fmt.Errorf("%s: %d rows, JSON fixture has %d", path, got, wantRows)
	}
	return nil
}
