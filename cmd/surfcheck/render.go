package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/couchcryptid/surf-forecast-engine/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(9)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0F172A")).Background(lipgloss.Color("#94A3B8")).Padding(0, 1)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

// tierColors maps the engine's colour names to terminal colours.
var tierColors = map[string]lipgloss.Color{
	"emerald": lipgloss.Color("#10B981"),
	"green":   lipgloss.Color("#22C55E"),
	"lime":    lipgloss.Color("#84CC16"),
	"yellow":  lipgloss.Color("#EAB308"),
	"red":     lipgloss.Color("#EF4444"),
}

func tierStyle(color string) lipgloss.Style {
	c, ok := tierColors[color]
	if !ok {
		c = lipgloss.Color("250")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func verdictStyle(status domain.VerdictStatus) lipgloss.Style {
	switch status {
	case domain.StatusGo:
		return passStyle
	case domain.StatusMarginal:
		return lipgloss.NewStyle().Foreground(tierColors["yellow"])
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}
}

// render lays out an evaluation as a bordered terminal card.
func render(e domain.Evaluation, loc *time.Location) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(strings.ToUpper(e.SpotID)),
		"  ",
		tierStyle(e.TierColor).Render(fmt.Sprintf("%s %d", e.Tier, e.Score)),
	)

	conditions := e.WaveLabel
	if e.SwellCardinal != "" {
		conditions += " " + e.SwellCardinal + " swell"
	}
	if e.WindCardinal != "" {
		conditions += ", " + e.WindCardinal + " wind"
	}

	lines := []string{
		header,
		row("Surf", conditions),
		row("Verdict", verdictStyle(e.Verdict.Status).Render(e.Verdict.Text)),
	}
	if e.Intel != nil {
		lines = append(lines, row("Intel", *e.Intel))
	}
	if len(e.Tags) > 0 {
		lines = append(lines, row("Tags", renderTags(e.Tags)))
	}
	if n := e.NextSession; n != nil {
		next := fmt.Sprintf("%s %s, %s wind, score %d",
			n.Day, n.WaveLabel, n.WindType, n.Score)
		if n.Period != nil {
			next += fmt.Sprintf(", %.0fs", *n.Period)
		}
		lines = append(lines, row("Next", next))
		if len(n.Tags) > 0 {
			lines = append(lines, row("", renderTags(n.Tags)))
		}
	}
	if loc != nil {
		lines = append(lines, row("As of", e.EvaluatedAt.In(loc).Format("Mon Jan 2 15:04 MST")))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderTags(tags []string) string {
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = tagStyle.Render(t)
	}
	return strings.Join(rendered, " ")
}
