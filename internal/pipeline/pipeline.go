// Package pipeline orchestrates the corpus build: generate observations in
// batches, derive quartile boundaries, label every observation with its
// density tier, and load the labeled corpus to the sink.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/deccanpulse/footfall-density-service/internal/domain"
	"github.com/deccanpulse/footfall-density-service/internal/observability"
)

// BatchGenerator produces the next batch of synthetic observations.
type BatchGenerator interface {
	GenerateBatch(count int) []domain.Observation
}

// BatchLoader writes labeled observations to the destination. A nil loader
// disables loading.
type BatchLoader interface {
	LoadBatch(ctx context.Context, observations []domain.Observation) error
}

// Pipeline builds and owns the corpus, and answers live queries against it.
type Pipeline struct {
	generator  BatchGenerator
	loader     BatchLoader
	logger     *slog.Logger
	metrics    *observability.Metrics
	corpusSize int
	batchSize  int
	ready      atomic.Bool

	mu          sync.Mutex
	corpus      domain.Corpus
	global      *domain.QuartileSet
	perLocation map[string]domain.QuartileSet
	predictRng  *rand.Rand
}

// New creates a Pipeline with the given stages and observability.
func New(g BatchGenerator, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, corpusSize, batchSize int) *Pipeline {
	return &Pipeline{
		generator:  g,
		loader:     l,
		logger:     logger,
		metrics:    metrics,
		corpusSize: corpusSize,
		batchSize:  batchSize,
		predictRng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CheckReadiness returns nil once the corpus has been built and labeled, or
// an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("corpus has not been built yet")
	}
	return nil
}

// Run builds the corpus in batches, computes quartiles, labels everything,
// and loads the result. Cancelling the context stops scheduling further
// batches; whatever has been generated so far is still labeled against
// provisional quartiles and remains queryable.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "corpus_size", p.corpusSize, "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	start := time.Now()
	generated := 0
	for generated < p.corpusSize {
		if ctx.Err() != nil {
			p.logger.Info("generation stopped early", "generated", generated, "reason", ctx.Err())
			break
		}

		n := p.corpusSize - generated
		if n > p.batchSize {
			n = p.batchSize
		}
		batch := p.generator.GenerateBatch(n)

		p.mu.Lock()
		p.corpus = append(p.corpus, batch...)
		p.mu.Unlock()

		generated += len(batch)
		p.metrics.ObservationsGenerated.Add(float64(len(batch)))
		p.metrics.BatchSize.Observe(float64(len(batch)))
		p.metrics.CorpusSize.Set(float64(generated))
	}

	p.refreshQuartiles()
	p.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("corpus labeled", "observations", generated, "duration", time.Since(start))

	if ctx.Err() != nil || p.loader == nil {
		return nil
	}
	return p.loadAll(ctx)
}

// refreshQuartiles recomputes global and per-location boundaries over the
// current corpus snapshot and relabels every observation.
func (p *Pipeline) refreshQuartiles() {
	p.mu.Lock()
	defer p.mu.Unlock()

	global := domain.GlobalQuartiles(p.corpus)
	perLocation := domain.PerLocationQuartiles(p.corpus)
	domain.LabelCorpus(p.corpus, global, perLocation)

	p.global = &global
	p.perLocation = perLocation

	p.metrics.QuartileRecomputes.Inc()
	for i := range p.corpus {
		if p.corpus[i].Density != nil {
			p.metrics.Classifications.WithLabelValues(p.corpus[i].Density.String()).Inc()
		}
	}
}

// loadAll writes the labeled corpus to the sink in loader-sized batches.
func (p *Pipeline) loadAll(ctx context.Context) error {
	corpus := p.Snapshot()
	for offset := 0; offset < len(corpus); offset += p.batchSize {
		if ctx.Err() != nil {
			return nil
		}
		end := offset + p.batchSize
		if end > len(corpus) {
			end = len(corpus)
		}
		batch := corpus[offset:end]
		if err := p.loader.LoadBatch(ctx, batch); err != nil {
			p.metrics.LoadErrors.Inc()
			p.logger.Error("load batch failed", "error", err, "batch_size", len(batch))
			return err
		}
		p.metrics.ObservationsLoaded.Add(float64(len(batch)))
	}
	p.logger.Info("corpus loaded", "observations", len(corpus))
	return nil
}

// Snapshot returns the current corpus. Observations are labeled in place but
// never removed, so the returned slice is stable for readers.
func (p *Pipeline) Snapshot() domain.Corpus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(domain.Corpus, len(p.corpus))
	copy(out, p.corpus)
	return out
}

// GlobalQuartiles returns the corpus-wide boundaries, and whether they have
// been computed yet.
func (p *Pipeline) GlobalQuartiles() (domain.QuartileSet, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.global == nil {
		return domain.QuartileSet{}, false
	}
	return *p.global, true
}

// LocationQuartiles returns one site's boundaries, and whether they have
// been computed yet.
func (p *Pipeline) LocationQuartiles(location string) (domain.QuartileSet, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q, ok := p.perLocation[location]
	return q, ok
}

// TopHours ranks a site's busiest hours over the current corpus.
func (p *Pipeline) TopHours(location string, k int) []domain.HourAverage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.TopHours(p.corpus, location, k)
}

// Predict estimates footfall for a live what-if context and classifies it
// against the site's quartiles (global boundaries for sites without their
// own). Returns domain.ErrNoQuartiles until the corpus has been built.
func (p *Pipeline) Predict(c domain.Context) (int, domain.Tier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	q := p.global
	if lq, ok := p.perLocation[c.Location]; ok {
		q = &lq
	}

	footfall := domain.EstimateFootfall(p.predictRng, c)
	tier, err := domain.Classify(float64(footfall), q)
	if err != nil {
		return 0, 0, err
	}
	p.metrics.PredictRequests.Inc()
	return footfall, tier, nil
}
