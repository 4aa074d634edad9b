package domain

import (
	"fmt"
	"strconv"
)

// PersonalizedVerdict turns a reading and a surfer's preferences into a go,
// marginal, or standby call. Guards run in order and the first hit wins:
//  1. below the height minimum with an upcoming session -> standby, names the day
//  2. below the height minimum otherwise -> standby
//  3. score below the surfer's minimum -> marginal
//  4. wind does not match the preference -> marginal
//  5. go
//
// A reading that is both too small and wrong-wind reports the size.
func PersonalizedVerdict(r Reading, prefs UserPreference, next *NextSession) Verdict {
	height := r.EffectiveHeight()
	score := r.EffectiveScore()

	if height < prefs.MinWaveHeightFt {
		if next != nil {
			return Verdict{
				Status: StatusStandby,
				Text: fmt.Sprintf("Standby. Too small for your %sft minimum today. %s looks better at %s.",
					formatNumber(prefs.MinWaveHeightFt), next.Day, next.WaveLabel),
			}
		}
		return Verdict{
			Status: StatusStandby,
			Text: fmt.Sprintf("Not your day. Waves are under your %sft minimum and nothing better is on the way.",
				formatNumber(prefs.MinWaveHeightFt)),
		}
	}

	if score < prefs.MinQualityScore {
		return Verdict{
			Status: StatusMarginal,
			Text: fmt.Sprintf("Marginal. Quality score %s is below your minimum of %s.",
				formatNumber(score), formatNumber(prefs.MinQualityScore)),
		}
	}

	if !WindMatchesPref(r.WindType, prefs.WindPreference) {
		wind := string(r.WindType.normalized())
		if wind == "" {
			wind = "unreported"
		}
		return Verdict{
			Status: StatusMarginal,
			Text:   fmt.Sprintf("Waves are there, but %s wind isn't what you're after.", wind),
		}
	}

	return Verdict{
		Status: StatusGo,
		Text:   "Go surf. Size, quality, and wind all line up with your preferences.",
	}
}

// formatNumber prints a float without trailing zeros: 60 -> "60", 2.5 -> "2.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
