// Command gencorpus generates a labeled synthetic corpus and writes it as
// CSV and JSON fixtures for the test suites and downstream consumers. It
// runs the actual domain generator and classifier so fixtures match real
// pipeline behavior.
//
// Usage:
//
//	go run ./cmd/gencorpus \
//	  -count 20000 -seed 42 \
//	  -now 2026-01-01T00:00:00Z \
//	  -csv-out data/mock/corpus_seed42.csv \
//	  -json-out data/mock/corpus_seed42.json
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/adapter/export"
	"github.com/deccanpulse/footfall-density-service/internal/domain"
	"github.com/deccanpulse/footfall-density-service/internal/generator"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	count := flag.Int("count", 20000, "observations to generate")
	seed := flag.Int64("seed", 42, "random seed (0 seeds from the current time)")
	now := flag.String("now", "", "freeze the clock at this RFC3339 instant for reproducible windows")
	csvOut := flag.String("csv-out", "", "output path for the CSV fixture")
	jsonOut := flag.String("json-out", "", "output path for the JSON fixture")
	flag.Parse()

	if *csvOut == "" && *jsonOut == "" {
		flag.Usage()
		return fmt.Errorf("at least one of -csv-out, -json-out is required")
	}

	if *now != "" {
		anchor, err := time.Parse(time.RFC3339, *now)
		if err != nil {
			return fmt.Errorf("invalid -now: %w", err)
		}
		generator.SetClock(clockwork.NewFakeClockAt(anchor))
		defer generator.SetClock(nil)
	}

	gen := generator.New(generator.Options{Seed: *seed})
	corpus := gen.Generate(*count)

	global := domain.GlobalQuartiles(corpus)
	perLocation := domain.PerLocationQuartiles(corpus)
	domain.LabelCorpus(corpus, global, perLocation)

	if *csvOut != "" {
		if err := export.WriteCSVFile(*csvOut, corpus); err != nil {
			return fmt.Errorf("writing CSV fixture: %w", err)
		}
		log.Printf("wrote CSV fixture: %s", *csvOut)
	}
	if *jsonOut != "" {
		if err := export.WriteJSONFile(*jsonOut, corpus); err != nil {
			return fmt.Errorf("writing JSON fixture: %w", err)
		}
		log.Printf("wrote JSON fixture: %s", *jsonOut)
	}

	printStats(corpus, global, perLocation)
	return nil
}

func printStats(corpus domain.Corpus, global domain.QuartileSet, perLocation map[string]domain.QuartileSet) {
	tierCounts := map[string]int{}
	locationCounts := map[string]int{}
	festivals := 0
	for i := range corpus {
		o := &corpus[i]
		locationCounts[o.Location]++
		if o.Density != nil {
			tierCounts[o.Density.String()]++
		}
		if o.IsFestival {
			festivals++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(corpus))
	fmt.Printf("By tier: Low=%d, Medium=%d, High=%d, VeryHigh=%d\n",
		tierCounts["Low"], tierCounts["Medium"], tierCounts["High"], tierCounts["VeryHigh"])
	fmt.Printf("Festival observations: %d\n", festivals)
	fmt.Printf("Global quartiles: q1=%g q2=%g q3=%g\n", global.Q1, global.Q2, global.Q3)

	for _, location := range domain.Locations() {
		q := perLocation[location]
		fmt.Printf("\n%s (%d observations): q1=%g q2=%g q3=%g\n",
			location, locationCounts[location], q.Q1, q.Q2, q.Q3)
		for _, h := range domain.TopHours(corpus, location, 3) {
			fmt.Printf("  %02d:00 avg=%d\n", h.Hour, h.AverageFootfall)
		}
	}
}
