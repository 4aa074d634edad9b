package domain

import (
	"fmt"
	"time"
)

// intelInput is the evaluation context shared by every intel rule.
type intelInput struct {
	score   float64
	height  float64
	reading Reading
	spot    spotProfile
	now     time.Time
}

// intelRule is one row of a decision list: the first rule whose predicate
// holds supplies the message.
type intelRule struct {
	name    string
	match   func(in intelInput) bool
	message func(in intelInput) string
}

func fixed(msg string) func(intelInput) string {
	return func(intelInput) string { return msg }
}

// globalOverrides are checked before any tier rule, regardless of score.
var globalOverrides = []intelRule{
	{
		name: "canyon-groundswell",
		match: func(in intelInput) bool {
			p := in.reading.DominantSwellPeriodS
			return p != nil && *p >= 12
		},
		message: func(in intelInput) string {
			return fmt.Sprintf("%ss groundswell. The canyon focuses long-period energy, so sets will break bigger than the buoy suggests.",
				formatNumber(*in.reading.DominantSwellPeriodS))
		},
	},
	{
		name: "wnw-sheltered-bight",
		match: func(in intelInput) bool {
			return in.spot.shelteredBight && inArc(in.reading.WindDirectionDeg, 285, 315, true)
		},
		message: func(in intelInput) string {
			return fmt.Sprintf("WNW wind favors %s over everything else. It sits deep enough in the bight to stay groomed while the open breaks chop up.", in.spot.name)
		},
	},
	{
		name: "hurricane-crowd",
		match: func(in intelInput) bool {
			return in.score >= 70 && in.height >= 6
		},
		message: fixed("Hurricane swell. Every lineup in the county will be packed, so pick a shoulder hour or a lesser-known peak."),
	},
}

// tierRules holds the commentary for each tier, most specific rule first.
var tierRules = map[Tier][]intelRule{
	TierAllTime: {
		{
			name:    "all-time",
			match:   always,
			message: fixed("All-time. Days like this come a handful of times a year."),
		},
	},
	TierFiring: {
		{
			name: "firing-crowd",
			match: func(in intelInput) bool {
				return in.height >= 5 && (!isWinter(in.now) || isWeekend(in.now))
			},
			message: fixed("Firing, and everyone knows it. Expect a crowd; dawn patrol is your best shot."),
		},
		{
			name:    "firing-rare-alignment",
			match:   always,
			message: fixed("Rare alignment of swell and wind. Don't wait on it."),
		},
	},
	TierGoSurf: {
		{
			name: "south-swell-break",
			match: func(in intelInput) bool {
				return in.spot.southSwellNote != "" && inArc(in.reading.DominantSwellDirectionDeg, 110, 175, true)
			},
			message: func(in intelInput) string { return in.spot.southSwellNote },
		},
		{
			name: "offshore-rising-tide",
			match: func(in intelInput) bool {
				return in.reading.WindType.isOffshore() && in.reading.TidePhase.normalized() == TideRising
			},
			message: fixed("Offshore wind on a rising tide. Best window is the push toward high."),
		},
		{
			name:  "go-surf-general",
			match: always,
			message: func(in intelInput) string {
				return fmt.Sprintf("Clean enough with %s. Worth the paddle out.", describeEnergy(in.reading))
			},
		},
	},
	TierWorthALook: {
		{
			name: "cross-with-size",
			match: func(in intelInput) bool {
				return in.reading.WindType.normalized() == WindCross && in.height >= 2
			},
			message: fixed("Cross-shore wind adds texture, but there's enough size to find a sheltered corner."),
		},
		{
			name: "east-wrap",
			match: func(in intelInput) bool {
				return inArc(in.reading.DominantSwellDirectionDeg, 90, 105, false)
			},
			message: fixed("East wrap. Only the most exposed north-facing peaks will see much of it."),
		},
		{
			name:    "underlying-groundswell",
			match:   hasUnderlyingGroundswell,
			message: fixed("There's an underlying groundswell in the mix. Sets will be inconsistent but stronger than the average wave."),
		},
		{
			name: "ne-wind-small",
			match: func(in intelInput) bool {
				return in.reading.WindDirectionDeg != nil && ToCardinal(in.reading.WindDirectionDeg) == "NE" && in.height < 3
			},
			message: fixed("Light NE wind is grooming the small stuff. Longboard day."),
		},
		{
			name: "falling-tide",
			match: func(in intelInput) bool {
				return in.reading.TidePhase.normalized() == TideFalling
			},
			message: fixed("Falling tide should help the banks. Check it toward low."),
		},
		{
			name: "cross-general",
			match: func(in intelInput) bool {
				return in.reading.WindType.normalized() == WindCross
			},
			message: fixed("Cross winds. Manageable on something with more foam."),
		},
	},
	TierDontBother: {
		{
			name: "strong-onshore",
			match: func(in intelInput) bool {
				return in.reading.WindType.normalized() == WindOnshore && in.reading.WindSpeedMph > 7
			},
			message: func(in intelInput) string {
				return fmt.Sprintf("Onshore at %s mph. Blown out.", formatNumber(in.reading.WindSpeedMph))
			},
		},
		{
			name: "cross-falling-tide",
			match: func(in intelInput) bool {
				return in.reading.WindType.normalized() == WindCross && in.reading.TidePhase.normalized() == TideFalling
			},
			message: fixed("Cross wind on a dropping tide. Lumpy and closing out."),
		},
		{
			name: "short-period-small",
			match: func(in intelInput) bool {
				p := in.reading.DominantSwellPeriodS
				return p != nil && *p < 7 && in.height < 3
			},
			message: fixed("Short-period wind swell. Weak and crumbly."),
		},
		{
			name: "high-tide-reef",
			match: func(in intelInput) bool {
				return in.spot.tideSensitive && in.reading.TidePhase.normalized() == TideHigh
			},
			message: func(in intelInput) string {
				return fmt.Sprintf("High tide swamps %s. Wait for the drop.", in.spot.name)
			},
		},
		{
			name: "blocked-swell-angle",
			match: func(in intelInput) bool {
				return inArc(in.reading.DominantSwellDirectionDeg, 247.5, 330, false)
			},
			message: fixed("The islands shadow this swell angle. Most of it never reaches the beach."),
		},
		{
			name:    "too-small",
			match:   always,
			message: fixed("Too small to bother. Save your arms for the next swell."),
		},
	},
}

// LocalIntel selects one line of local commentary for a reading at a break.
// Global overrides are checked first, then the rules for the score's tier.
// The boolean is false when no rule matched, which is a normal outcome.
func LocalIntel(score float64, r Reading, homeBreak string, now time.Time) (string, bool) {
	in := intelInput{
		score:   score,
		height:  r.EffectiveHeight(),
		reading: r,
		spot:    lookupSpot(homeBreak),
		now:     now,
	}
	rule, ok := selectRule(in)
	if !ok {
		return "", false
	}
	return rule.message(in), true
}

// selectRule walks the global overrides, then the tier's list.
func selectRule(in intelInput) (intelRule, bool) {
	for _, rules := range [][]intelRule{globalOverrides, tierRules[ObjectiveTier(in.score)]} {
		for _, rule := range rules {
			if rule.match(in) {
				return rule, true
			}
		}
	}
	return intelRule{}, false
}

func always(intelInput) bool { return true }

// hasUnderlyingGroundswell reports a secondary train of at least a foot at 10s or longer.
func hasUnderlyingGroundswell(in intelInput) bool {
	h, p := in.reading.SecondarySwellHeightFt, in.reading.SecondarySwellPeriodS
	return h != nil && p != nil && *h >= 1 && *p >= 10
}

func describeEnergy(r Reading) string {
	if r.DominantSwellPeriodS == nil {
		return "mixed-period energy"
	}
	return fmt.Sprintf("%ss of period", formatNumber(*r.DominantSwellPeriodS))
}

// isWinter reports December through February.
func isWinter(t time.Time) bool {
	switch t.Month() {
	case time.December, time.January, time.February:
		return true
	default:
		return false
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
