package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cliPrimary = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"}
	cliGreen   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	cliRed     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	cliYellow  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	cliMuted   = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

var (
	cliTitle = lipgloss.NewStyle().Foreground(cliPrimary).Bold(true)
	cliWarn  = lipgloss.NewStyle().Foreground(cliYellow)
	cliErr   = lipgloss.NewStyle().Foreground(cliRed)
	cliOK    = lipgloss.NewStyle().Foreground(cliGreen)
	cliDim   = lipgloss.NewStyle().Foreground(cliMuted)

	successCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cliGreen).
			Padding(0, 2)
)

// printBanner writes the tool banner shown before the wizard starts.
func printBanner(version string) string {
	var b strings.Builder
	b.WriteString(cliTitle.Render("stackgen"))
	b.WriteString(cliDim.Render(fmt.Sprintf(" %s - multi-service project scaffolder", version)))
	return b.String()
}

// renderSuccessCard renders a bordered card with a title line and details.
func renderSuccessCard(title string, details ...string) string {
	lines := []string{cliOK.Render("✓ " + title)}
	lines = append(lines, details...)
	return successCard.Render(strings.Join(lines, "\n"))
}

// kvPair is one aligned key/value row in a detail block.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value rows.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	rows := make([]string, len(pairs))
	for i, p := range pairs {
		rows[i] = fmt.Sprintf("%s  %s", cliDim.Render(fmt.Sprintf("%-*s", width, p.key)), p.value)
	}
	return strings.Join(rows, "\n")
}
