package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// wireRequest mirrors EvaluationRequest so a missing preference can be told
// apart from a zero one.
type wireRequest struct {
	SpotID     string          `json:"spot_id"`
	Current    *Reading        `json:"current"`
	Timeline   []Reading       `json:"timeline"`
	Preference *UserPreference `json:"preference"`
}

// DecodeEvaluationRequest parses the JSON form of an EvaluationRequest. The
// current reading and the preference are required, as is a spot (explicit or
// via the home break).
func DecodeEvaluationRequest(data []byte) (EvaluationRequest, error) {
	var w wireRequest
	if err := json.Unmarshal(data, &w); err != nil {
		return EvaluationRequest{}, fmt.Errorf("decode evaluation request: %w", err)
	}
	if w.Current == nil {
		return EvaluationRequest{}, errors.New("decode evaluation request: missing current reading")
	}
	if w.Preference == nil {
		return EvaluationRequest{}, errors.New("decode evaluation request: missing preference")
	}

	req := EvaluationRequest{
		SpotID:     w.SpotID,
		Current:    *w.Current,
		Timeline:   w.Timeline,
		Preference: *w.Preference,
	}
	if req.Spot() == "" {
		return EvaluationRequest{}, errors.New("decode evaluation request: missing spot_id and home_break")
	}
	return req, nil
}

// ParseRawEvent deserializes a source-topic message into an EvaluationRequest.
// A current reading without a timestamp takes the message timestamp.
func ParseRawEvent(raw RawEvent) (EvaluationRequest, error) {
	req, err := DecodeEvaluationRequest(raw.Value)
	if err != nil {
		return EvaluationRequest{}, fmt.Errorf("parse raw event: %w", err)
	}
	if req.Current.Timestamp.IsZero() {
		req.Current.Timestamp = raw.Timestamp
	}
	return req, nil
}

// SerializeEvaluation marshals an Evaluation for the sink topic, keyed by its ID.
func SerializeEvaluation(eval Evaluation) (OutputEvent, error) {
	data, err := json.Marshal(eval)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize evaluation: %w", err)
	}
	return OutputEvent{
		Key:   []byte(eval.ID),
		Value: data,
		Headers: map[string]string{
			"spot_id":        eval.SpotID,
			"tier":           string(eval.Tier),
			"verdict_status": string(eval.Verdict.Status),
			"evaluated_at":   eval.EvaluatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

// generateID produces a deterministic ID from the spot, the reading time, and
// the local evaluation day. Re-evaluating the same reading on the same day
// yields the same ID, so downstream upserts stay idempotent.
func generateID(spot string, readingTime, day time.Time) string {
	input := fmt.Sprintf("%s|%s|%s", spot, readingTime.UTC().Format(time.RFC3339), day.Format(time.DateOnly))
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if spot == "" {
		return short
	}
	return spot + "-" + short
}
