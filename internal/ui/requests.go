package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/logtail"
)

// requestLogLimit caps how many requests the overlay shows.
const requestLogLimit = 200

type requestLog struct {
	requests []logtail.Request
	err      error
	loaded   bool
}

type requestLogMsg requestLog

// loadRequestLog reads the log file off the update loop.
func loadRequestLog(path string) tea.Cmd {
	return func() tea.Msg {
		reqs, err := logtail.Requests(path, requestLogLimit)
		return requestLogMsg{requests: reqs, err: err, loaded: true}
	}
}

// renderRequests renders the request log overlay, newest request last.
func (m Model) renderRequests() string {
	styles := m.theme.Styles()
	width := max(m.width-6, 20)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Recent requests"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(truncateMiddle(m.logPath, width)))
	b.WriteString("\n\n")

	switch {
	case !m.requests.loaded:
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render("Reading log..."))
	case m.requests.err != nil:
		b.WriteString(styles.DangerText.Render("Error: " + m.requests.err.Error()))
	case len(m.requests.requests) == 0:
		b.WriteString(styles.FaintText.Render("No requests logged yet."))
	default:
		reqs := m.requests.requests
		if limit := m.height - 8; limit > 0 && len(reqs) > limit {
			reqs = reqs[len(reqs)-limit:]
		}
		for i, r := range reqs {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.requestLine(r, width))
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(max(m.width-2, 24))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()))
}

func (m Model) requestLine(r logtail.Request, width int) string {
	styles := m.theme.Styles()

	when := "--:--:--"
	if !r.Time.IsZero() {
		when = r.Time.Format("15:04:05")
	}
	status := styles.SuccessText.Render(strconv.Itoa(r.Status))
	if r.Status == 0 {
		status = styles.DangerText.Render("ERR")
	} else if r.Failed() {
		status = styles.DangerText.Render(strconv.Itoa(r.Status))
	}

	prefix := styles.MutedText.Render(when) + "  " + padRight(status, 3) + "  " + styles.Text.Render(padRight(r.Path, 16))
	id := r.RequestID[:min(8, len(r.RequestID))]
	rest := strings.TrimSpace(id + " " + r.Detail)
	return prefix + " " + styles.FaintText.Render(truncate(rest, max(width-lipgloss.Width(prefix)-1, 8)))
}
