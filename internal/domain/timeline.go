package domain

import (
	"math"
	"slices"
	"time"
)

// Tags derived for a reading, in display order: wind, threshold, score.
const (
	TagOffshoreWindow = "OFFSHORE WINDOW"
	TagCrossWinds     = "CROSS WINDS"
	TagMeetsYourMin   = "MEETS YOUR MIN"
	TagFiring         = "FIRING"
	TagClean          = "CLEAN"
)

// dayGroup is one calendar day of the timeline and its best reading.
type dayGroup struct {
	date time.Time // local midnight
	best Reading
}

// FindNextBestSession scans the timeline for the first future calendar day
// (in loc) whose best reading meets minHeight and the wind preference. When
// no day qualifies it falls back to the day with the highest score. Today and
// earlier days are never candidates. Returns nil for an empty timeline or one
// without future days.
func FindNextBestSession(timeline []Reading, minHeight float64, windPref string, now time.Time, loc *time.Location) *NextSession {
	if loc == nil {
		loc = time.UTC
	}
	days := groupFutureDays(timeline, now, loc)
	if len(days) == 0 {
		return nil
	}

	chosen := -1
	for i, d := range days {
		if d.best.EffectiveHeight() >= minHeight && WindMatchesPref(d.best.WindType, windPref) {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		chosen = 0
		for i, d := range days {
			if d.best.EffectiveScore() > days[chosen].best.EffectiveScore() {
				chosen = i
			}
		}
	}

	best := days[chosen].best
	return &NextSession{
		Day:       best.Timestamp.In(loc).Weekday().String(),
		Timestamp: best.Timestamp,
		WaveLabel: HeightLabel(best.EffectiveHeight()),
		WindType:  string(best.WindType.normalized()),
		Period:    best.DominantSwellPeriodS,
		Score:     int(math.Round(best.EffectiveScore())),
		Tags:      DeriveTags(best, minHeight),
	}
}

// groupFutureDays partitions readings by local calendar day, drops today and
// anything earlier, and keeps each day's highest-scoring reading (first wins
// on ties). Days come back in chronological order.
func groupFutureDays(timeline []Reading, now time.Time, loc *time.Location) []dayGroup {
	today := localDate(now, loc)
	index := make(map[time.Time]int)
	var days []dayGroup

	for _, r := range timeline {
		date := localDate(r.Timestamp, loc)
		if !date.After(today) {
			continue
		}
		i, ok := index[date]
		if !ok {
			index[date] = len(days)
			days = append(days, dayGroup{date: date, best: r})
			continue
		}
		if r.EffectiveScore() > days[i].best.EffectiveScore() {
			days[i].best = r
		}
	}

	slices.SortStableFunc(days, func(a, b dayGroup) int {
		return a.date.Compare(b.date)
	})
	return days
}

// localDate truncates t to midnight of its calendar day in loc.
func localDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DeriveTags labels a reading for display. Tags are additive.
func DeriveTags(r Reading, minHeight float64) []string {
	tags := make([]string, 0, 3)

	switch {
	case r.WindType.isOffshore():
		tags = append(tags, TagOffshoreWindow)
	case r.WindType.normalized() == WindCross:
		tags = append(tags, TagCrossWinds)
	}

	if r.EffectiveHeight() >= minHeight {
		tags = append(tags, TagMeetsYourMin)
	}

	switch score := r.EffectiveScore(); {
	case score >= firingMin:
		tags = append(tags, TagFiring)
	case score >= goSurfMin:
		tags = append(tags, TagClean)
	}

	return tags
}
