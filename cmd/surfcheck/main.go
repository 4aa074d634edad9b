// Command surfcheck evaluates surf conditions from the command line. With
// -request it renders one evaluation with tier colours. With -requests and
// -evaluations it re-runs a genmock fixture through the engine and verifies
// the stored evaluations still match.
//
// Usage:
//
//	go run ./cmd/surfcheck -request request.json -at 2026-10-15T08:00:00-07:00
//
//	go run ./cmd/surfcheck \
//	  -requests data/mock/evaluation_requests.json \
//	  -evaluations data/mock/evaluations.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/couchcryptid/surf-forecast-engine/internal/config"
	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // optional .env with SPOT_TIMEZONE / FORECAST_HORIZON

	request := flag.String("request", "", "path to an evaluation request JSON file (- for stdin)")
	at := flag.String("at", "", "evaluate at this RFC3339 instant instead of now")
	requests := flag.String("requests", "", "path to a genmock request fixture")
	evaluations := flag.String("evaluations", "", "path to a genmock evaluation fixture")
	tz := flag.String("tz", "", "spot timezone (overrides SPOT_TIMEZONE)")
	horizon := flag.Duration("horizon", 0, "forecast horizon (overrides FORECAST_HORIZON)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.OverrideEngine(*tz, *horizon); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *request != "":
		os.Exit(runSingle(*request, *at, cfg))
	case *requests != "" && *evaluations != "":
		os.Exit(runFixture(*requests, *evaluations, cfg))
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func runSingle(path, at string, cfg *config.Config) int {
	data, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read request: %v\n", err)
		return 1
	}
	req, err := domain.DecodeEvaluationRequest(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	if at != "" {
		now, err := time.Parse(time.RFC3339, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: parse -at: %v\n", err)
			return 1
		}
		domain.SetClock(clockwork.NewFakeClockAt(now))
		defer domain.SetClock(nil)
	}

	engine := domain.NewEngine(cfg.SpotLocation, cfg.ForecastHorizon)
	fmt.Println(render(engine.Evaluate(req), cfg.SpotLocation))
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func runFixture(requestsPath, evaluationsPath string, cfg *config.Config) int {
	fmt.Println(titleStyle.Render("=== Surf Evaluation Fixture Check ==="))
	fmt.Println()

	reqs, err := loadJSON[domain.EvaluationRequest](requestsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load requests: %v\n", err)
		return 1
	}
	evals, err := loadJSON[domain.Evaluation](evaluationsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load evaluations: %v\n", err)
		return 1
	}

	// genmock evaluates at 08:00 in the spot timezone. Run both commands with
	// the same SPOT_TIMEZONE and FORECAST_HORIZON (or -tz and -horizon).
	now := time.Date(2026, time.October, 15, 8, 0, 0, 0, cfg.SpotLocation)
	phases := []*phase{
		validateCounts(reqs, evals),
		validateReproducible(reqs, evals, now, cfg.SpotLocation, cfg.ForecastHorizon),
		validateInvariants(evals, now),
	}

	allPassed := true
	for _, p := range phases {
		status := passStyle.Render("PASS")
		if !p.passed() {
			status = failStyle.Render(fmt.Sprintf("FAIL (%d errors)", len(p.errors)))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d requests, %d evaluations\n", len(reqs), len(evals))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll checks passed.")
		return 0
	}
	fmt.Println("\nFixture check FAILED.")
	return 1
}

func validateCounts(reqs []domain.EvaluationRequest, evals []domain.Evaluation) *phase {
	p := &phase{name: "Request/evaluation counts"}
	if len(reqs) != len(evals) {
		p.errorf("%d requests but %d evaluations", len(reqs), len(evals))
	}
	if len(reqs) == 0 {
		p.errorf("fixture is empty")
	}
	return p
}

func validateReproducible(reqs []domain.EvaluationRequest, evals []domain.Evaluation, now time.Time, loc *time.Location, horizon time.Duration) *phase {
	p := &phase{name: "Engine reproduces stored evaluations"}
	for i := range min(len(reqs), len(evals)) {
		got := domain.Evaluate(reqs[i], now, loc, horizon)
		want := evals[i]
		if got.ID != want.ID {
			p.errorf("record %d: id %q, stored %q", i, got.ID, want.ID)
		}
		if got.Tier != want.Tier || got.Score != want.Score {
			p.errorf("record %d: %s/%d, stored %s/%d", i, got.Tier, got.Score, want.Tier, want.Score)
		}
		if got.Verdict != want.Verdict {
			p.errorf("record %d: verdict %q, stored %q", i, got.Verdict.Text, want.Verdict.Text)
		}
		if intelText(got.Intel) != intelText(want.Intel) {
			p.errorf("record %d: intel %q, stored %q", i, intelText(got.Intel), intelText(want.Intel))
		}
		if (got.NextSession == nil) != (want.NextSession == nil) {
			p.errorf("record %d: next session presence differs", i)
		}
	}
	return p
}

func validateInvariants(evals []domain.Evaluation, now time.Time) *phase {
	p := &phase{name: "Evaluation invariants"}
	for i := range evals {
		e := &evals[i]
		if e.Tier.Color() != e.TierColor {
			p.errorf("record %d: tier %s has colour %q", i, e.Tier, e.TierColor)
		}
		if e.Tags == nil {
			p.errorf("record %d: tags must be a list", i)
		}
		if e.NextSession != nil && !e.NextSession.Timestamp.After(now) {
			p.errorf("record %d: next session %s is not in the future", i, e.NextSession.Timestamp.Format(time.RFC3339))
		}
	}
	return p
}

func intelText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
