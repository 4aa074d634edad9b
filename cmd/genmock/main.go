// Command genmock generates deterministic evaluation-request fixtures and the
// matching engine output. It runs the actual domain package at a fixed clock
// so the evaluations match real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -requests-out data/mock/evaluation_requests.json \
//	  -evaluations-out data/mock/evaluations.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/surf-forecast-engine/internal/config"
	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
)

const (
	timelineHours = 168
	seed          = 20261015
)

var spots = []string{domain.SpotBlacks, domain.SpotLaJollaShores, domain.SpotWindansea}

// surfers covers the preference shapes seen in profile storage.
var surfers = []domain.UserPreference{
	{MinWaveHeightFt: 3, WindPreference: "OFFSHORE", MinQualityScore: 60},
	{MinWaveHeightFt: 2, WindPreference: "ANY", MinQualityScore: 40},
	{MinWaveHeightFt: 5, WindPreference: "OFFSHORE, WNW", MinQualityScore: 70},
	{MinWaveHeightFt: 1.5, WindPreference: "cross", MinQualityScore: 0},
}

var windTypes = []domain.WindType{domain.WindOffshore, domain.WindSideOffshore, domain.WindCross, domain.WindOnshore}

var tidePhases = []domain.TidePhase{domain.TideRising, domain.TideHigh, domain.TideFalling, domain.TideLow}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load() // optional .env with SPOT_TIMEZONE / FORECAST_HORIZON

	requestsOut := flag.String("requests-out", "", "output path for the evaluation request fixture")
	evaluationsOut := flag.String("evaluations-out", "", "output path for the evaluation fixture")
	scenarios := flag.Int("scenarios", 8, "scenarios per spot and surfer")
	tz := flag.String("tz", "", "spot timezone (overrides SPOT_TIMEZONE)")
	horizon := flag.Duration("horizon", 0, "forecast horizon (overrides FORECAST_HORIZON)")
	flag.Parse()

	if *requestsOut == "" || *evaluationsOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -requests-out, -evaluations-out")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.OverrideEngine(*tz, *horizon); err != nil {
		return err
	}
	loc := cfg.SpotLocation

	// Fixed clock for reproducible IDs and EvaluatedAt timestamps.
	now := time.Date(2026, time.October, 15, 8, 0, 0, 0, loc)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	defer domain.SetClock(nil)

	engine := domain.NewEngine(loc, cfg.ForecastHorizon)
	rng := rand.New(rand.NewPCG(seed, seed))

	var requests []domain.EvaluationRequest //nolint:prealloc // size depends on flags
	var evaluations []domain.Evaluation     //nolint:prealloc // size depends on flags
	for _, spot := range spots {
		for _, surfer := range surfers {
			surfer.HomeBreak = spot
			for i := 0; i < *scenarios; i++ {
				req := generateRequest(rng, surfer, now)
				requests = append(requests, req)
				evaluations = append(evaluations, engine.Evaluate(req))
			}
		}
		log.Printf("%s: %d requests", spot, len(surfers)*(*scenarios))
	}

	if err := writeJSON(*requestsOut, requests); err != nil {
		return fmt.Errorf("writing request fixture: %w", err)
	}
	log.Printf("wrote request fixture: %s", *requestsOut)

	if err := writeJSON(*evaluationsOut, evaluations); err != nil {
		return fmt.Errorf("writing evaluation fixture: %w", err)
	}
	log.Printf("wrote evaluation fixture: %s", *evaluationsOut)

	printStats(evaluations)
	return nil
}

// generateRequest builds one request whose timeline is an hourly swell cycle
// starting at now. The current reading is the first timeline point.
func generateRequest(rng *rand.Rand, pref domain.UserPreference, now time.Time) domain.EvaluationRequest {
	baseHeight := 1 + rng.Float64()*6
	basePeriod := 6 + rng.Float64()*12
	swellDir := 180 + rng.Float64()*140
	phase := rng.Float64() * 2 * math.Pi

	timeline := make([]domain.Reading, timelineHours)
	for h := range timeline {
		timeline[h] = generateReading(rng, now.Add(time.Duration(h)*time.Hour), h, baseHeight, basePeriod, swellDir, phase)
	}
	return domain.EvaluationRequest{
		Current:    timeline[0],
		Timeline:   timeline,
		Preference: pref,
	}
}

func generateReading(rng *rand.Rand, ts time.Time, hour int, baseHeight, basePeriod, swellDir, phase float64) domain.Reading {
	// Swell builds and fades over roughly three days; tide turns every ~6h.
	swing := math.Sin(phase + float64(hour)*2*math.Pi/72)
	height := round1(math.Max(0.5, baseHeight+swing*1.5))
	period := round1(math.Max(5, basePeriod+swing*2))
	dir := round1(math.Mod(swellDir+swing*10, 360))
	windDir := round1(rng.Float64() * 360)
	score := math.Round(math.Min(100, math.Max(0, 20+height*8+period*1.5+rng.Float64()*15)))

	r := domain.Reading{
		Timestamp:                 ts.UTC(),
		DominantSwellPeriodS:      &period,
		DominantSwellDirectionDeg: &dir,
		WindSpeedMph:              round1(rng.Float64() * 15),
		WindDirectionDeg:          &windDir,
		WindType:                  windTypes[rng.IntN(len(windTypes))],
		TidePhase:                 tidePhases[(hour/6)%len(tidePhases)],
	}
	// The forecast source reports either breaking height or dominant swell
	// height, and either quality or probability.
	if hour%2 == 0 {
		r.BreakingWaveHeightFt = &height
	} else {
		r.DominantSwellHeightFt = &height
	}
	if hour%5 == 0 {
		r.ProbabilityScore = &score
	} else {
		r.QualityScore = &score
	}
	if rng.IntN(3) == 0 {
		secHeight := round1(1 + rng.Float64()*2)
		secPeriod := round1(8 + rng.Float64()*8)
		r.SecondarySwellHeightFt = &secHeight
		r.SecondarySwellPeriodS = &secPeriod
	}
	return r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type labelCount struct {
	label string
	count int
}

func printStats(evals []domain.Evaluation) {
	tiers := map[string]int{}
	statuses := map[string]int{}
	var withIntel, withNext int
	for i := range evals {
		e := &evals[i]
		tiers[string(e.Tier)]++
		statuses[string(e.Verdict.Status)]++
		if e.Intel != nil {
			withIntel++
		}
		if e.NextSession != nil {
			withNext++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(evals))
	fmt.Printf("By tier: %s\n", formatCounts(tiers))
	fmt.Printf("By verdict: %s\n", formatCounts(statuses))
	fmt.Printf("With intel: %d\n", withIntel)
	fmt.Printf("With next session: %d\n", withNext)
}

func formatCounts(m map[string]int) string {
	counts := make([]labelCount, 0, len(m))
	for k, v := range m {
		counts = append(counts, labelCount{k, v})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].label < counts[j].label
	})
	out := ""
	for i, c := range counts {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%d", c.label, c.count)
	}
	return out
}
