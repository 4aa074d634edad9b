package domain

import "strings"

// WindMatchesPref reports whether a reading's wind type satisfies a surfer's
// free-text wind preference. Matching ignores case and surrounding space:
//   - an absent wind type never matches, not even "ANY"
//   - a preference mentioning "offshore" accepts exactly offshore or side-offshore
//   - a preference mentioning "any" or "all" accepts everything
//   - otherwise either string containing the other is a match
func WindMatchesPref(windType WindType, preference string) bool {
	wt := string(windType.normalized())
	if wt == "" {
		return false
	}
	pref := strings.ToLower(preference)

	if strings.Contains(pref, "offshore") {
		return wt == string(WindOffshore) || wt == string(WindSideOffshore)
	}
	if strings.Contains(pref, "any") || strings.Contains(pref, "all") {
		return true
	}
	return strings.Contains(pref, wt) || strings.Contains(wt, pref)
}
