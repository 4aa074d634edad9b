package domain

// Tier is the objective five-level quality label derived from the score alone.
type Tier string

const (
	TierDontBother Tier = "DON'T BOTHER"
	TierWorthALook Tier = "WORTH A LOOK"
	TierGoSurf     Tier = "GO SURF"
	TierFiring     Tier = "FIRING"
	TierAllTime    Tier = "ALL-TIME"
)

// Lower bounds of each tier, inclusive.
const (
	allTimeMin    = 91
	firingMin     = 76
	goSurfMin     = 60
	worthALookMin = 40
)

// ObjectiveTier maps a 0-100 score to its tier. Boundary scores belong to the
// higher tier.
func ObjectiveTier(score float64) Tier {
	switch {
	case score >= allTimeMin:
		return TierAllTime
	case score >= firingMin:
		return TierFiring
	case score >= goSurfMin:
		return TierGoSurf
	case score >= worthALookMin:
		return TierWorthALook
	default:
		return TierDontBother
	}
}

// Rank orders tiers from 0 (DON'T BOTHER) to 4 (ALL-TIME). Unknown tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case TierDontBother:
		return 0
	case TierWorthALook:
		return 1
	case TierGoSurf:
		return 2
	case TierFiring:
		return 3
	case TierAllTime:
		return 4
	default:
		return -1
	}
}

// Color is the presentation colour class paired with the tier.
func (t Tier) Color() string {
	switch t {
	case TierAllTime:
		return "emerald"
	case TierFiring:
		return "green"
	case TierGoSurf:
		return "lime"
	case TierWorthALook:
		return "yellow"
	default:
		return "red"
	}
}
