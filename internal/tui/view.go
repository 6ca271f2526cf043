package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
	"github.com/AdvaitK2607/genai-codeassistant/internal/session"
)

// palette is the theme-dependent color set.
type palette struct {
	title    lipgloss.Color
	border   lipgloss.Color
	text     lipgloss.Color
	dim      lipgloss.Color
	accent   lipgloss.Color
	success  lipgloss.Color
	errColor lipgloss.Color
}

func themePalette(t session.Theme) palette {
	if t == session.ThemeDark {
		return palette{
			title:    lipgloss.Color("#7D56F4"),
			border:   lipgloss.Color("240"),
			text:     lipgloss.Color("255"),
			dim:      lipgloss.Color("243"),
			accent:   lipgloss.Color("81"),
			success:  lipgloss.Color("42"),
			errColor: lipgloss.Color("203"),
		}
	}
	return palette{
		title:    lipgloss.Color("#5F3DC4"),
		border:   lipgloss.Color("247"),
		text:     lipgloss.Color("235"),
		dim:      lipgloss.Color("245"),
		accent:   lipgloss.Color("26"),
		success:  lipgloss.Color("28"),
		errColor: lipgloss.Color("160"),
	}
}

// panelSize computes the viewport dimensions for the current window.
// Header + metrics + tabs above, attachments + input + notifications +
// footer below; the panel gets the rest.
func panelSize(w tea.WindowSizeMsg) (int, int) {
	width := w.Width - 4
	if width < 20 {
		width = 20
	}
	height := w.Height - 16
	if height < 4 {
		height = 4
	}
	return width, height
}

func (m AppModel) View() string {
	pal := themePalette(m.Theme)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(pal.title).Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(pal.dim)
	accentStyle := lipgloss.NewStyle().Foreground(pal.accent)
	successStyle := lipgloss.NewStyle().Foreground(pal.success)
	errorStyle := lipgloss.NewStyle().Foreground(pal.errColor)
	panelStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(pal.border).Padding(0, 1)

	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("GenAI Code Assistant"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · v%s", m.deps.ModelID, model.Version)))
	b.WriteString("\n\n")

	// Indicator row
	b.WriteString(m.renderMetrics(pal))
	b.WriteString("\n")

	if m.Mode == modeHistory {
		b.WriteString(m.renderHistoryOverlay(pal, panelStyle))
	} else {
		// Tab bar
		b.WriteString(m.renderTabs(pal))
		b.WriteString("\n")

		// Active panel
		body := m.Viewports[m.ActiveTab].View()
		if strings.TrimSpace(m.Panels[m.ActiveTab]) == "" {
			placeholder := "Run an analysis to populate this panel."
			if m.HaveResult {
				placeholder = "The response had no " + m.ActiveTab.SectionKey() + " section."
			}
			body = dimStyle.Render(placeholder)
		}
		b.WriteString(panelStyle.Width(m.Viewports[m.ActiveTab].Width).Render(body))
		b.WriteString("\n")
	}

	// Attachments
	if atts := m.deps.Attachments.Current(); len(atts) > 0 {
		parts := make([]string, len(atts))
		for i, att := range atts {
			parts[i] = fmt.Sprintf("%s %s (%s)", model.IconAttachment, att.Name, model.FormatSize(att.Size))
		}
		b.WriteString(accentStyle.Render(strings.Join(parts, "  ")))
	} else {
		b.WriteString(dimStyle.Render("No files staged"))
	}
	b.WriteString("\n")

	// Input line
	switch m.Mode {
	case modeAttach:
		b.WriteString(accentStyle.Render("Attach: "))
		b.WriteString(m.PathInput.View())
	case modeRemove:
		b.WriteString(accentStyle.Render("Remove: "))
		b.WriteString(m.PathInput.View())
	default:
		b.WriteString(m.Prompt.View())
	}
	b.WriteString("\n")

	// Busy indicator
	if m.Busy {
		b.WriteString(accentStyle.Render(m.Spin.View() + " Analyzing..."))
		b.WriteString("\n")
	}

	// Notification stack, oldest first
	for _, n := range m.deps.Notifier.Active() {
		var line string
		switch n.Severity {
		case session.SeveritySuccess:
			line = successStyle.Render(model.IconSuccess + " " + n.Message)
		case session.SeverityError:
			line = errorStyle.Render(model.IconError + " " + n.Message)
		default:
			line = dimStyle.Render(model.IconInfo + " " + n.Message)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Footer
	b.WriteString(dimStyle.Render(m.footerHelp()))
	return b.String()
}

func (m AppModel) renderMetrics(pal palette) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.border).
		Padding(0, 2).
		Align(lipgloss.Center)
	labelStyle := lipgloss.NewStyle().Foreground(pal.dim)

	box := func(label, value string) string {
		return boxStyle.Render(labelStyle.Render(label) + "\n" + value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Quality", m.Metrics.Quality),
		box("Complexity", m.Metrics.Complexity),
		box("Security", m.Metrics.Security),
	)
}

func (m AppModel) renderTabs(pal palette) string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(pal.title).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(pal.dim).Padding(0, 1)

	parts := make([]string, 0, model.TabCount)
	for t := model.Tab(0); t < model.TabCount; t++ {
		if t == m.ActiveTab {
			parts = append(parts, activeStyle.Render(t.Title()))
		} else {
			parts = append(parts, inactiveStyle.Render(t.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m AppModel) renderHistoryOverlay(pal palette, panelStyle lipgloss.Style) string {
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(pal.title)
	normalStyle := lipgloss.NewStyle().Foreground(pal.text)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.accent)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Prompt History"))
	b.WriteString("\n\n")

	width, _ := panelSize(m.WindowSize)
	for i, entry := range m.HistoryItems {
		line := firstLine(entry)
		if len(line) > width-6 {
			line = line[:width-9] + "..."
		}
		line = fmt.Sprintf("%2d. %s", i+1, line)
		if i == m.HistorySel {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(pal.dim).Render("enter: load into prompt · esc: close"))
	return panelStyle.Width(width).Render(b.String()) + "\n"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (m AppModel) footerHelp() string {
	switch m.Mode {
	case modeAttach, modeRemove:
		return "enter: confirm · esc: cancel"
	case modeHistory:
		return "↑/↓: select · enter: load · esc: close"
	}
	return "enter: analyze · tab: switch panel · ctrl+a: attach · ctrl+x: remove file · ctrl+h: history · ctrl+e: export · ctrl+t: theme · ctrl+l: clear · ctrl+c: quit"
}
