package domain

import "errors"

// ErrNoQuartiles is returned when classification is requested before any
// quartile boundaries have been computed. Callers surface this as an
// explicit "unavailable" result instead of guessing a tier.
var ErrNoQuartiles = errors.New("density quartiles not computed")

// Classify maps a footfall value to a density tier against quartile cut
// points. A value equal to a boundary belongs to the lower tier.
func Classify(footfall float64, q *QuartileSet) (Tier, error) {
	if q == nil {
		return 0, ErrNoQuartiles
	}
	switch {
	case footfall <= q.Q1:
		return TierLow, nil
	case footfall <= q.Q2:
		return TierMedium, nil
	case footfall <= q.Q3:
		return TierHigh, nil
	default:
		return TierVeryHigh, nil
	}
}

// LabelCorpus classifies every observation in place against its site's
// quartile set, falling back to the global set for sites without one.
// Re-invoking after a quartile recomputation relabels the whole corpus.
func LabelCorpus(c Corpus, global QuartileSet, perLocation map[string]QuartileSet) {
	for i := range c {
		q := global
		if lq, ok := perLocation[c[i].Location]; ok {
			q = lq
		}
		tier, err := Classify(float64(c[i].Footfall), &q)
		if err != nil {
			continue
		}
		c[i].Density = &tier
	}
}
