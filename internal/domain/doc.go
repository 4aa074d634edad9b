// Package domain evaluates surf conditions for a single spot against a surfer's
// stored preferences.
//
// # Inputs
//
// A request carries one current Reading, an ascending Timeline of forecast
// Readings for the same spot (default horizon 168 hours), and the surfer's
// UserPreference. Upstream forecast aggregation supplies the readings already
// range-checked; nothing here fetches, caches, or mutates them.
//
// # Reading Conventions
//
// Heights are feet, periods seconds, wind speed mph. Bearings are compass
// degrees in [0, 360) and describe where swell or wind comes FROM.
//
//	Effective height: breaking height, else dominant swell height, else 1.5 ft.
//	Effective score:  quality score, else probability score, else 0.
//
// Both derivations live on Reading and every classifier goes through them, so
// the tier, the verdict, and the timeline scan can never disagree about a
// reading.
//
// Wind type is relative to the shore: offshore, side-offshore, cross, onshore.
// Tide phase is one of rising, falling, high, low. Either may be absent.
//
// # Tiers
//
// The objective tier depends on the score alone:
//
//	>= 91 ALL-TIME | >= 76 FIRING | >= 60 GO SURF | >= 40 WORTH A LOOK | else DON'T BOTHER
//
// Lower bounds are inclusive.
//
// # Verdicts
//
// The personalized verdict is an ordered guard chain (height, then score, then
// wind) producing go, marginal, or standby. See [PersonalizedVerdict].
//
// # Local Intel
//
// Commentary comes from ordered decision lists: global overrides first, then
// the rules for the reading's tier. First match wins; no match is a valid
// outcome. See [LocalIntel].
//
// # Time
//
// Calendar days are taken in the spot's time zone. Anything that depends on
// "now" (today's exclusion from the timeline scan, winter and weekend crowd
// rules) takes it as a parameter; [Engine] reads it from the package clock,
// which tests can freeze via [SetClock].
package domain
