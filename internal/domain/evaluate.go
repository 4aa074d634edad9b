package domain

import (
	"math"
	"time"
)

// DefaultHorizon is how far ahead of now timeline points are considered.
const DefaultHorizon = 168 * time.Hour

// Evaluate runs the whole engine for one request at a fixed instant. It is
// pure: the same request, now, loc, and horizon always give the same result.
func Evaluate(req EvaluationRequest, now time.Time, loc *time.Location, horizon time.Duration) Evaluation {
	if loc == nil {
		loc = time.UTC
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	cur := req.Current
	prefs := req.Preference
	spot := req.Spot()
	score := cur.EffectiveScore()
	tier := ObjectiveTier(score)
	localNow := now.In(loc)

	next := FindNextBestSession(withinHorizon(req.Timeline, now, horizon), prefs.MinWaveHeightFt, prefs.WindPreference, localNow, loc)

	eval := Evaluation{
		ID:          generateID(spot, cur.Timestamp, localDate(now, loc)),
		SpotID:      spot,
		Score:       int(math.Round(score)),
		Tier:        tier,
		TierColor:   tier.Color(),
		WaveLabel:   HeightLabel(cur.EffectiveHeight()),
		Verdict:     PersonalizedVerdict(cur, prefs, next),
		NextSession: next,
		Tags:        DeriveTags(cur, prefs.MinWaveHeightFt),
		EvaluatedAt: now,
	}
	if cur.WindDirectionDeg != nil {
		eval.WindCardinal = ToCardinal(cur.WindDirectionDeg)
	}
	if cur.DominantSwellDirectionDeg != nil {
		eval.SwellCardinal = ToCardinal(cur.DominantSwellDirectionDeg)
	}
	if intel, ok := LocalIntel(score, cur, spot, localNow); ok {
		eval.Intel = &intel
	}
	return eval
}

// withinHorizon returns the readings no later than now+horizon. The input
// slice is never modified.
func withinHorizon(timeline []Reading, now time.Time, horizon time.Duration) []Reading {
	limit := now.Add(horizon)
	out := make([]Reading, 0, len(timeline))
	for _, r := range timeline {
		if r.Timestamp.After(limit) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Engine evaluates requests against the package clock in a spot time zone.
type Engine struct {
	location *time.Location
	horizon  time.Duration
}

// NewEngine creates an Engine. A nil location means UTC; a non-positive
// horizon means DefaultHorizon.
func NewEngine(loc *time.Location, horizon time.Duration) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &Engine{location: loc, horizon: horizon}
}

// Evaluate runs the engine at the current clock time.
func (e *Engine) Evaluate(req EvaluationRequest) Evaluation {
	return Evaluate(req, Now(), e.location, e.horizon)
}

// Location is the zone calendar days are computed in.
func (e *Engine) Location() *time.Location {
	return e.location
}
