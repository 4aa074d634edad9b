package domain

import (
	"fmt"
	"math"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// ToCardinal converts a bearing to a 16-point compass label.
// A nil bearing returns "S", a display default and not a reading.
func ToCardinal(deg *float64) string {
	if deg == nil {
		return "S"
	}
	idx := int(math.Round(*deg/22.5)) % len(compassPoints)
	if idx < 0 {
		idx += len(compassPoints)
	}
	return compassPoints[idx]
}

// HeightLabel renders a one-foot band around a height, e.g. 3.4 -> "3-4FT".
// Anything under a foot is "FLAT".
func HeightLabel(ft float64) string {
	if ft < 1 {
		return "FLAT"
	}
	lo := int(math.Floor(ft))
	return fmt.Sprintf("%d-%dFT", lo, lo+1)
}

// inArc reports whether an optional bearing falls in [lo, hi) or, when
// inclusive is set, [lo, hi].
func inArc(deg *float64, lo, hi float64, inclusive bool) bool {
	if deg == nil {
		return false
	}
	if inclusive {
		return *deg >= lo && *deg <= hi
	}
	return *deg >= lo && *deg < hi
}
