package domain

import (
	"math"
	"sort"
)

// QuartileSet holds the 25th/50th/75th percentile cut points of a footfall
// sample. Non-decreasing by construction: Q1 ≤ Q2 ≤ Q3.
type QuartileSet struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// ComputeQuartiles derives nearest-rank quartiles from a sample. The input
// is copied before sorting, so callers keep their ordering. An empty sample
// degenerates to {0,0,0}.
func ComputeQuartiles(samples []float64) QuartileSet {
	if len(samples) == 0 {
		return QuartileSet{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	n := len(sorted)
	return QuartileSet{
		Q1: sorted[rankIndex(n, 0.25)],
		Q2: sorted[rankIndex(n, 0.50)],
		Q3: sorted[rankIndex(n, 0.75)],
	}
}

// rankIndex is the nearest-rank index floor(n·p), clamped to the last
// element. No interpolation between neighbours.
func rankIndex(n int, p float64) int {
	i := int(math.Floor(float64(n) * p))
	if i >= n {
		i = n - 1
	}
	return i
}

// GlobalQuartiles computes quartile boundaries over the whole corpus.
func GlobalQuartiles(c Corpus) QuartileSet {
	return ComputeQuartiles(c.Footfalls())
}

// LocationQuartiles computes quartile boundaries over one site's subset,
// using the same algorithm as the global set.
func LocationQuartiles(c Corpus, location string) QuartileSet {
	return ComputeQuartiles(c.AtLocation(location).Footfalls())
}

// PerLocationQuartiles computes an independent quartile set for every
// catalog site present in the corpus.
func PerLocationQuartiles(c Corpus) map[string]QuartileSet {
	byLocation := make(map[string][]float64)
	for i := range c {
		byLocation[c[i].Location] = append(byLocation[c[i].Location], float64(c[i].Footfall))
	}
	out := make(map[string]QuartileSet, len(byLocation))
	for location, samples := range byLocation {
		out[location] = ComputeQuartiles(samples)
	}
	return out
}
