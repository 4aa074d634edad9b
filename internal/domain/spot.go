package domain

// Known break identifiers referenced by local intel rules.
const (
	SpotBlacks        = "blacks"
	SpotLaJollaShores = "la-jolla-shores"
	SpotWindansea     = "windansea"
)

// spotProfile is the local knowledge the intel rules key off.
type spotProfile struct {
	name string

	// shelteredBight marks the break tucked deepest in the bight, which a WNW
	// wind grooms while the exposed breaks get chopped.
	shelteredBight bool

	// tideSensitive breaks go soft or shut down on a high tide.
	tideSensitive bool

	// southSwellNote is the GO SURF comment for a S/SE swell at this break.
	southSwellNote string
}

var spotProfiles = map[string]spotProfile{
	SpotBlacks: {
		name:           "Black's",
		southSwellNote: "South swell is lining up with the canyon peaks. Long walls on the north side of the beach.",
	},
	SpotLaJollaShores: {
		name:           "La Jolla Shores",
		shelteredBight: true,
		southSwellNote: "South swell is wrapping into the bay. Mellow, peeling lefts off the pier end.",
	},
	SpotWindansea: {
		name:          "Windansea",
		tideSensitive: true,
	},
}

// lookupSpot returns the profile for a spot. Unknown spots get an empty profile
// that never triggers identity rules.
func lookupSpot(id string) spotProfile {
	return spotProfiles[id]
}
