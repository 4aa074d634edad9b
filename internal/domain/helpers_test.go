package domain

import "time"

func ptr(v float64) *float64 { return &v }

var losAngeles = mustLoadLocation("America/Los_Angeles")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// testNow is a Thursday morning in October at the spot.
var testNow = time.Date(2026, time.October, 15, 8, 0, 0, 0, losAngeles)

// at returns a timestamp dayOffset days after testNow's date at the given local hour.
func at(dayOffset, hour int) time.Time {
	return time.Date(2026, time.October, 15+dayOffset, hour, 0, 0, 0, losAngeles)
}
