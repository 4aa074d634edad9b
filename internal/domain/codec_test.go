package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRequestJSON = `{
	"current": {
		"timestamp": "2026-10-15T08:00:00-07:00",
		"breaking_wave_height_ft": 4.2,
		"dominant_swell_period_s": 13,
		"wind_type": "offshore",
		"tide_phase": "rising",
		"quality_score": 72
	},
	"timeline": [
		{"timestamp": "2026-10-16T09:00:00-07:00", "dominant_swell_height_ft": 3, "probability_score": 64, "wind_type": "cross"}
	],
	"preference": {"home_break": "blacks", "min_wave_height_ft": 3, "wind_preference": "OFFSHORE", "min_quality_score": 60}
}`

func TestDecodeEvaluationRequest(t *testing.T) {
	t.Run("full request", func(t *testing.T) {
		req, err := DecodeEvaluationRequest([]byte(testRequestJSON))

		require.NoError(t, err)
		assert.Equal(t, SpotBlacks, req.Spot())
		assert.Equal(t, 4.2, req.Current.EffectiveHeight())
		assert.Equal(t, 72.0, req.Current.EffectiveScore())
		assert.Equal(t, WindOffshore, req.Current.WindType)
		assert.Equal(t, TideRising, req.Current.TidePhase)
		require.Len(t, req.Timeline, 1)
		assert.Equal(t, 3.0, req.Timeline[0].EffectiveHeight())
		assert.Equal(t, 64.0, req.Timeline[0].EffectiveScore())
		assert.Equal(t, "OFFSHORE", req.Preference.WindPreference)
	})

	t.Run("explicit spot overrides home break", func(t *testing.T) {
		req, err := DecodeEvaluationRequest([]byte(`{"spot_id":"windansea","current":{},"preference":{"home_break":"blacks"}}`))
		require.NoError(t, err)
		assert.Equal(t, SpotWindansea, req.Spot())
	})

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid JSON", `{invalid`, "decode evaluation request"},
		{"missing current", `{"preference":{"home_break":"blacks"}}`, "missing current reading"},
		{"missing preference", `{"current":{}}`, "missing preference"},
		{"missing spot", `{"current":{},"preference":{"min_wave_height_ft":2}}`, "missing spot_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvaluationRequest([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseRawEvent(t *testing.T) {
	msgTime := time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC)

	t.Run("keeps reading timestamp", func(t *testing.T) {
		req, err := ParseRawEvent(RawEvent{Value: []byte(testRequestJSON), Timestamp: msgTime})
		require.NoError(t, err)
		assert.True(t, req.Current.Timestamp.Equal(msgTime))
	})

	t.Run("fills missing timestamp from message", func(t *testing.T) {
		raw := RawEvent{Value: []byte(`{"current":{},"preference":{"home_break":"blacks"}}`), Timestamp: msgTime}
		req, err := ParseRawEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, msgTime, req.Current.Timestamp)
	})

	t.Run("wraps decode errors", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte("not-json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw event")
	})
}

func TestSerializeEvaluation(t *testing.T) {
	eval := Evaluate(standbyRequest(), testNow, losAngeles, DefaultHorizon)

	out, err := SerializeEvaluation(eval)

	require.NoError(t, err)
	assert.Equal(t, []byte(eval.ID), out.Key)
	assert.Equal(t, SpotBlacks, out.Headers["spot_id"])
	assert.Equal(t, string(TierDontBother), out.Headers["tier"])
	assert.Equal(t, "standby", out.Headers["verdict_status"])
	assert.Equal(t, "2026-10-15T15:00:00Z", out.Headers["evaluated_at"])

	var decoded Evaluation
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, eval.ID, decoded.ID)
	assert.Equal(t, eval.Verdict, decoded.Verdict)
	require.NotNil(t, decoded.NextSession)
	assert.Equal(t, "Saturday", decoded.NextSession.Day)
}

func TestSerializeEvaluation_NullIntel(t *testing.T) {
	out, err := SerializeEvaluation(Evaluation{ID: "x", Tags: []string{}})
	require.NoError(t, err)
	assert.Contains(t, string(out.Value), `"intel":null`)
	assert.Contains(t, string(out.Value), `"next_session":null`)
}

func TestGenerateID(t *testing.T) {
	ts := time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC)
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("includes spot prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(generateID(SpotBlacks, ts, day), "blacks-"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, generateID(SpotBlacks, ts, day), generateID(SpotBlacks, ts, day))
	})

	t.Run("different day differs", func(t *testing.T) {
		assert.NotEqual(t, generateID(SpotBlacks, ts, day), generateID(SpotBlacks, ts, day.AddDate(0, 0, 1)))
	})

	t.Run("empty spot", func(t *testing.T) {
		id := generateID("", ts, day)
		assert.Len(t, id, 16)
	})
}
