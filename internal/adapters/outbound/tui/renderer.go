package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	hintStyle  = lipgloss.NewStyle().Foreground(dim).Italic(true)
	fileStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a VerificationReport as a styled TUI string.
func RenderReport(report *domain.VerificationReport) string {
	var b strings.Builder

	verdict := passStyle.Render("PASS")
	if report.Failed() {
		verdict = failStyle.Render(fmt.Sprintf("FAIL  %d violation(s)", len(report.Violations)))
	}

	title := headerStyle.Render("gradleguard")
	subtitle := dimStyle.Render("dependency version policy")
	meta := dimStyle.Render(fmt.Sprintf("%d build files", len(report.FilesScanned)))
	if report.CommitHash != "" {
		meta += dimStyle.Render("  @ " + shortHash(report.CommitHash))
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "\n" + meta))
	b.WriteString("\n")

	for _, w := range report.Warnings {
		b.WriteString("\n  " + warnStyle.Render("! ") + dimStyle.Render(w))
	}
	if len(report.Warnings) > 0 {
		b.WriteString("\n")
	}

	if report.Failed() {
		b.WriteString("\n")
		renderViolations(&b, report.Violations)
		b.WriteString("\n  " + separatorLine + "\n")
		b.WriteString("  " + hintStyle.Render("Move versions to gradle/libs.versions.toml or a dependencies.constraints block."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderViolations(b *strings.Builder, violations []domain.Violation) {
	var lastFile string
	for _, v := range violations {
		if v.File != lastFile {
			if lastFile != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + fileStyle.Render(v.File) + "\n")
			lastFile = v.File
		}
		line := fmt.Sprintf("    %s %s", failStyle.Render("●"), v.Coordinate)
		if v.Reason == domain.ReasonNoConstraint {
			line += "  " + dimStyle.Render("(no constraint found)")
		}
		if v.Suggestion != "" {
			line += "  " + faintStyle.Render("→ " + v.Suggestion)
		}
		b.WriteString(line + "\n")
	}
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
