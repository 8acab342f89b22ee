package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpSectionTitles names the groups returned by the key map's FullHelp
var helpSectionTitles = []string{"Navigation", "Events", "Search & Filter", "Dialogs", "Other"}

// RenderHelpContent renders the full key reference, windowed to height
func (r *Renderer) RenderHelpContent(groups [][]key.Binding, height int, scrollOffset int) string {
	lines := r.helpLines(groups)
	totalLines := len(lines)

	visibleHeight := helpVisibleHeight(height)
	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	endLine := scrollOffset + visibleHeight
	lines = lines[scrollOffset:endLine]

	if scrollOffset > 0 {
		lines[0] = r.styles.Dim.Render("↑ (more above)")
	}
	if endLine < totalLines {
		lines[len(lines)-1] = r.styles.Dim.Render("↓ (more below)")
	}
	return strings.Join(lines, "\n")
}

// HelpScrollMax returns the largest useful scroll offset for the help overlay
func (r *Renderer) HelpScrollMax(groups [][]key.Binding, height int) int {
	maxOffset := len(r.helpLines(groups)) - helpVisibleHeight(height)
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// helpVisibleHeight accounts for the popup border and padding
func helpVisibleHeight(height int) int {
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	return visibleHeight
}

func (r *Renderer) helpLines(groups [][]key.Binding) []string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Countdown Help"))
	help.WriteString("\n")
	writeHelp(&help, groups, func(s string) string { return sectionStyle.Render(s) },
		func(k, d string) string { return fmt.Sprintf("  %s%s", keyStyle.Render(k), descStyle.Render(d)) })

	return strings.Split(strings.TrimRight(help.String(), "\n"), "\n")
}

// PlainHelp renders the key reference without styling, for the pager
func PlainHelp(groups [][]key.Binding) string {
	var help strings.Builder
	help.WriteString("Countdown Help\n")
	writeHelp(&help, groups, func(s string) string { return s },
		func(k, d string) string { return fmt.Sprintf("  %-12s%s", k, d) })
	return help.String()
}

func writeHelp(b *strings.Builder, groups [][]key.Binding, section func(string) string, line func(k, d string) string) {
	for i, group := range groups {
		title := "More"
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		b.WriteString("\n")
		b.WriteString(section(title))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			b.WriteString(line(h.Key, h.Desc))
			b.WriteString("\n")
		}
	}
}
