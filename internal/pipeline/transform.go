package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/couchcryptid/surf-forecast-engine/internal/observability"
)

// Evaluator produces an evaluation for a decoded request.
type Evaluator interface {
	Evaluate(req domain.EvaluationRequest) domain.Evaluation
}

// EvaluationTransformer implements Transformer: it decodes a raw request,
// evaluates it, and serializes the result for the sink.
type EvaluationTransformer struct {
	evaluator Evaluator
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewTransformer creates an EvaluationTransformer. metrics may be nil.
func NewTransformer(evaluator Evaluator, logger *slog.Logger, metrics *observability.Metrics) *EvaluationTransformer {
	return &EvaluationTransformer{
		evaluator: evaluator,
		logger:    logger,
		metrics:   metrics,
	}
}

func (t *EvaluationTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	req, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	eval := t.evaluator.Evaluate(req)
	if t.metrics != nil {
		t.metrics.ObserveEvaluation(eval)
	}
	t.logger.Debug("evaluated conditions",
		"spot_id", eval.SpotID,
		"tier", eval.Tier,
		"verdict", eval.Verdict.Status,
		"has_next_session", eval.NextSession != nil,
	)

	return domain.SerializeEvaluation(eval)
}
