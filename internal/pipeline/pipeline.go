package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/couchcryptid/surf-forecast-engine/internal/observability"
)

// BatchExtractor reads up to batchSize evaluation requests from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer evaluates a raw request and serializes the result.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes multiple serialized evaluations to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithClock replaces the real clock used for retry delays and batch timing.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// WithBackoff overrides the initial and maximum retry delays.
func WithBackoff(initial, maxDelay time.Duration) Option {
	return func(p *Pipeline) {
		p.initialBackoff = initial
		p.maxBackoff = maxDelay
	}
}

// Pipeline runs the extract-evaluate-load loop. Offsets are committed only
// after the evaluations they produced are published, so a crash redelivers
// rather than drops requests.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	batchSize   int

	clock          clockwork.Clock
	initialBackoff time.Duration
	maxBackoff     time.Duration

	published atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor:      e,
		transformer:    t,
		loader:         l,
		logger:         logger,
		metrics:        metrics,
		batchSize:      batchSize,
		clock:          clockwork.NewRealClock(),
		initialBackoff: initialBackoff,
		maxBackoff:     maxBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CheckReadiness returns nil once at least one evaluation has been published.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.published.Load() {
		return errors.New("pipeline has not published any evaluations yet")
	}
	return nil
}

// Run loops until ctx is cancelled. Extract and load failures are retried
// with exponential backoff; they never end the loop.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	retry := newBackoff(p.clock, p.initialBackoff, p.maxBackoff)
	for ctx.Err() == nil {
		if err := p.step(ctx); err != nil {
			if ctx.Err() != nil || !retry.wait(ctx) {
				break
			}
			continue
		}
		retry.reset()
	}
	p.logger.Info("pipeline stopping", "reason", ctx.Err())
	return nil
}

// step runs one batch. A non-nil error means the batch should be retried
// after a delay.
func (p *Pipeline) step(ctx context.Context) error {
	started := p.clock.Now()

	batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("extract batch failed", "error", err)
		}
		return err
	}
	if len(batch) == 0 {
		return nil
	}
	p.metrics.MessagesConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))

	outputs, sources := p.evaluateAll(ctx, batch)
	if len(outputs) == 0 {
		return nil
	}

	if err := p.loader.LoadBatch(ctx, outputs); err != nil {
		if ctx.Err() == nil {
			p.logger.Error("load batch failed", "error", err, "batch_size", len(outputs))
		}
		return err
	}
	p.metrics.MessagesProduced.Add(float64(len(outputs)))
	for _, raw := range sources {
		p.commit(ctx, raw)
	}

	p.metrics.BatchProcessingDuration.Observe(p.clock.Since(started).Seconds())
	p.published.Store(true)
	return nil
}

// evaluateAll transforms each request. Requests that cannot be evaluated are
// committed immediately so they are not redelivered; the rest are returned
// alongside the raw events whose offsets they will commit.
func (p *Pipeline) evaluateAll(ctx context.Context, batch []domain.RawEvent) ([]domain.OutputEvent, []domain.RawEvent) {
	outputs := make([]domain.OutputEvent, 0, len(batch))
	sources := make([]domain.RawEvent, 0, len(batch))

	for _, raw := range batch {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("evaluation failed, skipping message",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			p.commit(ctx, raw)
			continue
		}
		outputs = append(outputs, out)
		sources = append(sources, raw)
	}
	return outputs, sources
}

// commit acknowledges a message. Failures are logged; the message may be
// redelivered and re-evaluated, which is harmless because IDs are deterministic.
func (p *Pipeline) commit(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}
