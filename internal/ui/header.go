package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/lifecycle"
	"github.com/five82/kiosk/internal/nav"
)

// renderHeader renders the status bar: logo, route, lifecycle phase and API host.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBar(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.seg("kiosk", styles.Logo),
		bg.seg(m.mounted.Path(), styles.Text),
	}

	if phase, ok := m.mountedPhase(); ok {
		label := strings.ToUpper(phase.String())
		parts = append(parts, styles.PhaseStyle(phase.String()).Render(label))
	}

	if m.mounted.View == nav.CounterView {
		parts = append(parts,
			bg.pair("Dispatched:", styles.MutedText, strconv.Itoa(m.counter.Dispatched), styles.Text))
	}

	if m.baseURL != "" && !compact {
		parts = append(parts,
			bg.pair("api", styles.FaintText, truncateMiddle(m.baseURL, 40), styles.MutedText))
	}

	if m.notice != "" {
		parts = append(parts,
			bg.pair("!", styles.WarningText.Bold(true), truncate(m.notice, 60), styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.join(parts))
}

// mountedPhase reports the lifecycle phase of the mounted view, if it fetches.
func (m Model) mountedPhase() (lifecycle.Phase, bool) {
	switch m.mounted.View {
	case nav.ListView:
		return m.list.State().Phase(), true
	case nav.DetailView:
		return m.detail.State().Phase(), true
	default:
		return lifecycle.Idle, false
	}
}

// renderCommandBar renders the key hints for the mounted view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBar(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.mounted.View {
	case nav.DetailView:
		commands = []cmd{
			{"esc", "Back"},
			{"[/]", "Prev/Next"},
			{"j/k", "Scroll"},
			{"r", "Reload"},
			{"c", "Counter"},
			{"?", "More"},
		}
	case nav.CounterView:
		if m.editingAmount {
			commands = []cmd{
				{"enter", "Apply"},
				{"esc", "Cancel"},
			}
		} else {
			commands = []cmd{
				{"+/-", "Change"},
				{"a", "Amount"},
				{"0", "Reset"},
				{"p", "Products"},
				{"?", "More"},
			}
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Details"},
			{"r", "Reload"},
			{"c", "Counter"},
			{"?", "More"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments, bg.hint(c.key, c.desc, styles.AccentText, styles.MutedText))
	}
	segments = append(segments, bg.hint("T", m.theme.Name, styles.AccentText, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.join(segments))
}

// bar renders segments of a header line so that every cell between and
// inside them keeps the bar's background. Rendering styled pieces side by
// side otherwise leaves unstyled cells after each ANSI reset.
type bar struct {
	fill lipgloss.Style
}

func newBar(color string) bar {
	return bar{fill: lipgloss.NewStyle().Background(lipgloss.Color(color))}
}

// seg renders text in style on the bar background, spaces included.
func (b bar) seg(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Inherit(b.fill)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.pad(1))
}

// pair renders "label value" as one segment.
func (b bar) pair(label string, labelStyle lipgloss.Style, value string, valueStyle lipgloss.Style) string {
	return b.seg(label, labelStyle) + b.pad(1) + b.seg(value, valueStyle)
}

// hint renders a "key:desc" command hint.
func (b bar) hint(key, desc string, keyStyle, descStyle lipgloss.Style) string {
	return b.seg(key, keyStyle) + b.fill.Render(":") + b.seg(desc, descStyle)
}

func (b bar) pad(n int) string {
	return b.fill.Render(strings.Repeat(" ", n))
}

func (b bar) join(parts []string) string {
	return strings.Join(parts, b.pad(2))
}
