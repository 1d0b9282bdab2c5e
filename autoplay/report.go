package autoplay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/portal-lift/config"
)

var (
	ColorTitle   = lipgloss.Color("#F87171") // Red 400, the lift title color
	ColorWin     = lipgloss.Color("#FFD700")
	ColorLose    = lipgloss.Color("#FF3366")
	ColorMuted   = lipgloss.Color("#A0A0A0")
	ColorBorder  = lipgloss.Color("#464664")
	ColorHeading = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTitle)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(14)

	WinStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWin)

	LoseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLose)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeading)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// Report renders a simulated round as a bordered panel
func Report(presetName string, r Result) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("PORTAL LIFT - " + presetName))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(LabelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	row("click rate", fmt.Sprintf("%.2f/s (break-even %.2f/s)", r.ClicksPerSecond, BreakEvenRate(r.Config)))
	row("difficulty", fmt.Sprintf("%d ms", r.Config.TickIntervalMs))
	row("ppc", fmt.Sprintf("%g", r.Config.PointsPerClick))
	row("win score", fmt.Sprintf("%g", r.Config.WinScore))
	if r.Won {
		row("outcome", WinStyle.Render("WIN"))
		row("rating", WinStyle.Render(fmt.Sprintf("%d", r.Rating)))
	} else {
		row("outcome", LoseStyle.Render("no win"))
		row("peak score", fmt.Sprintf("%.1f", r.PeakScore))
	}
	row("time", fmt.Sprintf("%.2fs", r.Elapsed.Seconds()))
	row("clicks", fmt.Sprintf("%d", r.Clicks))
	row("ticks", fmt.Sprintf("%d", r.Ticks))

	return PanelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// SweepReport renders one line per simulated click rate
func SweepReport(presetName string, results []Result) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("PORTAL LIFT - " + presetName + " sweep"))
	sb.WriteString("\n\n")
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%-8s %-8s %-8s %-7s %s", "cps", "outcome", "time", "clicks", "rating")))
	sb.WriteString("\n")

	for _, r := range results {
		outcome := LoseStyle.Render(fmt.Sprintf("%-8s", "no win"))
		rating := "-"
		if r.Won {
			outcome = WinStyle.Render(fmt.Sprintf("%-8s", "WIN"))
			rating = fmt.Sprintf("%d", r.Rating)
		}
		sb.WriteString(fmt.Sprintf("%-8.2f %s %-8s %-7d %s\n",
			r.ClicksPerSecond, outcome, fmt.Sprintf("%.2fs", r.Elapsed.Seconds()), r.Clicks, rating))
	}
	return PanelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// PresetTable renders the preset list for -list-presets
func PresetTable(presets []config.Preset) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("PRESETS"))
	sb.WriteString("\n\n")
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%-10s %6s %5s %6s %5s %5s  %s",
		"name", "win", "ppc", "decay", "tick", "cool", "description")))
	sb.WriteString("\n")

	for _, p := range presets {
		c := p.Config
		sb.WriteString(fmt.Sprintf("%-10s %6g %5g %6g %5d %5g  %s\n",
			p.Name, c.WinScore, c.PointsPerClick, c.DecayPerTick, c.TickIntervalMs, c.RestartCooldownSeconds,
			lipgloss.NewStyle().Foreground(ColorMuted).Render(p.Description)))
	}
	return PanelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
