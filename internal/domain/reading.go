package domain

import (
	"context"
	"strings"
	"time"
)

// DefaultHeightFt is the effective height of a reading that carries neither a
// breaking nor a swell height.
const DefaultHeightFt = 1.5

// WindType describes wind direction relative to the shoreline. The zero value
// means the forecast did not classify the wind.
type WindType string

const (
	WindOffshore     WindType = "offshore"
	WindSideOffshore WindType = "side-offshore"
	WindCross        WindType = "cross"
	WindOnshore      WindType = "onshore"
)

// normalized lower-cases the wind type so upstream casing never matters.
func (w WindType) normalized() WindType {
	return WindType(strings.ToLower(strings.TrimSpace(string(w))))
}

// isOffshore reports offshore or side-offshore.
func (w WindType) isOffshore() bool {
	n := w.normalized()
	return n == WindOffshore || n == WindSideOffshore
}

// TidePhase is the tide state at the time of a reading. The zero value means unknown.
type TidePhase string

const (
	TideRising  TidePhase = "rising"
	TideFalling TidePhase = "falling"
	TideHigh    TidePhase = "high"
	TideLow     TidePhase = "low"
)

func (t TidePhase) normalized() TidePhase {
	return TidePhase(strings.ToLower(strings.TrimSpace(string(t))))
}

// Reading is one forecast sample for a spot, either current conditions or a
// timeline point. Pointer fields are optional upstream values.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`

	BreakingWaveHeightFt      *float64 `json:"breaking_wave_height_ft,omitempty"`
	DominantSwellHeightFt     *float64 `json:"dominant_swell_height_ft,omitempty"`
	DominantSwellPeriodS      *float64 `json:"dominant_swell_period_s,omitempty"`
	DominantSwellDirectionDeg *float64 `json:"dominant_swell_direction_deg,omitempty"`

	// Secondary swell train, when the forecast resolves one under the dominant swell.
	SecondarySwellHeightFt *float64 `json:"secondary_swell_height_ft,omitempty"`
	SecondarySwellPeriodS  *float64 `json:"secondary_swell_period_s,omitempty"`

	WindSpeedMph     float64   `json:"wind_speed_mph"`
	WindDirectionDeg *float64  `json:"wind_direction_deg,omitempty"`
	WindType         WindType  `json:"wind_type,omitempty"`
	TidePhase        TidePhase `json:"tide_phase,omitempty"`

	QualityScore     *float64 `json:"quality_score,omitempty"`
	ProbabilityScore *float64 `json:"probability_score,omitempty"` // fallback when quality is absent
}

// EffectiveHeight is the height used for every classification.
func (r Reading) EffectiveHeight() float64 {
	if r.BreakingWaveHeightFt != nil {
		return *r.BreakingWaveHeightFt
	}
	if r.DominantSwellHeightFt != nil {
		return *r.DominantSwellHeightFt
	}
	return DefaultHeightFt
}

// EffectiveScore is the 0-100 score used for every classification.
func (r Reading) EffectiveScore() float64 {
	if r.QualityScore != nil {
		return *r.QualityScore
	}
	if r.ProbabilityScore != nil {
		return *r.ProbabilityScore
	}
	return 0
}

// UserPreference holds a surfer's thresholds. Values arrive validated from
// profile storage.
type UserPreference struct {
	HomeBreak       string  `json:"home_break"`
	MinWaveHeightFt float64 `json:"min_wave_height_ft"`
	WindPreference  string  `json:"wind_preference"` // free text, e.g. "OFFSHORE, WNW" or "ANY"
	MinQualityScore float64 `json:"min_quality_score"`
}

// EvaluationRequest is everything the engine needs for one spot and one surfer.
type EvaluationRequest struct {
	SpotID     string         `json:"spot_id,omitempty"` // defaults to Preference.HomeBreak
	Current    Reading        `json:"current"`
	Timeline   []Reading      `json:"timeline"`
	Preference UserPreference `json:"preference"`
}

// Spot returns the spot under evaluation.
func (r EvaluationRequest) Spot() string {
	if r.SpotID != "" {
		return r.SpotID
	}
	return r.Preference.HomeBreak
}

// VerdictStatus is the three-state personalized recommendation.
type VerdictStatus string

const (
	StatusGo       VerdictStatus = "go"
	StatusMarginal VerdictStatus = "marginal"
	StatusStandby  VerdictStatus = "standby"
)

// Verdict is the personalized call plus its justification.
type Verdict struct {
	Text   string        `json:"text"`
	Status VerdictStatus `json:"status"`
}

// NextSession is the best upcoming day found in the timeline.
type NextSession struct {
	Day       string    `json:"day"` // weekday name in the spot's zone
	Timestamp time.Time `json:"timestamp"`
	WaveLabel string    `json:"wave_label"`
	WindType  string    `json:"wind_type"`
	Period    *float64  `json:"period"`
	Score     int       `json:"score"`
	Tags      []string  `json:"tags"`
}

// Evaluation is the aggregate handed to the presentation layer.
type Evaluation struct {
	ID            string       `json:"id"`
	SpotID        string       `json:"spot_id"`
	Score         int          `json:"score"`
	Tier          Tier         `json:"tier"`
	TierColor     string       `json:"tier_color"`
	WaveLabel     string       `json:"wave_label"`
	WindCardinal  string       `json:"wind_cardinal,omitempty"`
	SwellCardinal string       `json:"swell_cardinal,omitempty"`
	Verdict       Verdict      `json:"verdict"`
	Intel         *string      `json:"intel"`
	NextSession   *NextSession `json:"next_session"`
	Tags          []string     `json:"tags"`
	EvaluatedAt   time.Time    `json:"evaluated_at"`
}

// RawEvent represents an unprocessed evaluation request from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
