package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalizedVerdict(t *testing.T) {
	prefs := UserPreference{
		HomeBreak:       SpotBlacks,
		MinWaveHeightFt: 3,
		WindPreference:  "OFFSHORE",
		MinQualityScore: 60,
	}
	saturday := &NextSession{Day: "Saturday", WaveLabel: "4-5FT"}

	t.Run("all-time go", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(7), QualityScore: ptr(95), WindType: WindOffshore}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusGo, v.Status)
		assert.Equal(t, TierAllTime, ObjectiveTier(r.EffectiveScore()))
	})

	t.Run("too small with next session", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(1), QualityScore: ptr(80), WindType: WindOffshore}

		v := PersonalizedVerdict(r, prefs, saturday)

		assert.Equal(t, StatusStandby, v.Status)
		assert.Contains(t, v.Text, "Saturday")
		assert.Contains(t, v.Text, "4-5FT")
	})

	t.Run("too small without next session", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(1), QualityScore: ptr(80), WindType: WindOffshore}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusStandby, v.Status)
		assert.Contains(t, v.Text, "Not your day")
	})

	t.Run("height failure outranks wind failure", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(1), QualityScore: ptr(20), WindType: WindCross}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusStandby, v.Status)
		assert.NotContains(t, v.Text, "wind")
	})

	t.Run("score below minimum", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(5), QualityScore: ptr(45), WindType: WindCross}

		v := PersonalizedVerdict(r, prefs, saturday)

		assert.Equal(t, StatusMarginal, v.Status)
		assert.Contains(t, v.Text, "45")
		assert.Contains(t, v.Text, "60")
	})

	t.Run("fractional score just below minimum", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(5), QualityScore: ptr(59.6), WindType: WindOffshore}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusMarginal, v.Status)
		assert.Equal(t, "Marginal. Quality score 59.6 is below your minimum of 60.", v.Text)
	})

	t.Run("padded wind type matches like its tag", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(5), QualityScore: ptr(70), WindType: "offshore "}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusGo, v.Status)
		assert.Equal(t, []string{TagOffshoreWindow, TagMeetsYourMin, TagClean}, DeriveTags(r, prefs.MinWaveHeightFt))
	})

	t.Run("wind mismatch", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(5), QualityScore: ptr(70), WindType: WindCross}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusMarginal, v.Status)
		assert.Contains(t, v.Text, "cross")
	})

	t.Run("absent wind under ANY is still marginal", func(t *testing.T) {
		anyWind := prefs
		anyWind.WindPreference = "ANY"
		r := Reading{BreakingWaveHeightFt: ptr(5), QualityScore: ptr(70)}

		v := PersonalizedVerdict(r, anyWind, nil)

		assert.Equal(t, StatusMarginal, v.Status)
		assert.Contains(t, v.Text, "unreported")
	})

	t.Run("swell height used when breaking height absent", func(t *testing.T) {
		r := Reading{DominantSwellHeightFt: ptr(4), QualityScore: ptr(70), WindType: WindSideOffshore}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusGo, v.Status)
	})

	t.Run("default height below minimum", func(t *testing.T) {
		r := Reading{QualityScore: ptr(90), WindType: WindOffshore}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusStandby, v.Status)
	})

	t.Run("probability score fallback", func(t *testing.T) {
		r := Reading{BreakingWaveHeightFt: ptr(4), ProbabilityScore: ptr(50), WindType: WindOffshore}

		v := PersonalizedVerdict(r, prefs, nil)

		assert.Equal(t, StatusMarginal, v.Status)
		assert.Contains(t, v.Text, "50")
	})
}

func TestReading_EffectiveValues(t *testing.T) {
	assert.Equal(t, 2.0, Reading{BreakingWaveHeightFt: ptr(2), DominantSwellHeightFt: ptr(5)}.EffectiveHeight())
	assert.Equal(t, 5.0, Reading{DominantSwellHeightFt: ptr(5)}.EffectiveHeight())
	assert.Equal(t, DefaultHeightFt, Reading{}.EffectiveHeight())

	assert.Equal(t, 70.0, Reading{QualityScore: ptr(70), ProbabilityScore: ptr(10)}.EffectiveScore())
	assert.Equal(t, 10.0, Reading{ProbabilityScore: ptr(10)}.EffectiveScore())
	assert.Equal(t, 0.0, Reading{}.EffectiveScore())
}
