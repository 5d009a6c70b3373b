package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/catalog"
	"github.com/five82/kiosk/internal/nav"
)

// detailHeaderLines is the height of the fixed block above the description.
const detailHeaderLines = 6

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(max(m.width-2, 1), max(m.contentHeight()-detailHeaderLines, 1))
}

func (m *Model) resizeDetailViewport() {
	m.detailViewport.Width = max(m.width-2, 1)
	m.detailViewport.Height = max(m.contentHeight()-detailHeaderLines, 1)
	m.refreshDetailContent()
}

// handleDetailResolved loads the description into the viewport.
func (m *Model) handleDetailResolved() {
	m.detailViewport.GotoTop()
	m.refreshDetailContent()
}

func (m *Model) refreshDetailContent() {
	entity, ok := m.detail.State().Data()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	width := max(m.detailViewport.Width, 10)
	description := strings.TrimSpace(entity.Description)
	if description == "" {
		description = "No description."
	}
	m.detailViewport.SetContent(m.theme.Styles().Text.Width(width).Render(description))
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextProduct):
		return m.stepProduct(1)
	case key.Matches(msg, m.keys.PrevProduct):
		return m.stepProduct(-1)
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// stepProduct moves the detail view to a neighbouring product of the last
// list result. The route is replaced rather than pushed so back still returns
// to the list.
func (m Model) stepProduct(delta int) (tea.Model, tea.Cmd) {
	next, ok := neighbourID(m.listIDs, m.mounted.ID, delta)
	if !ok {
		if len(m.listIDs) == 0 {
			m.notice = "open the product list to step between products"
		}
		return m, nil
	}
	if err := m.navigator.Replace(nav.Route{View: nav.DetailView, ID: next}.Path()); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.selectedID = next
	for i, id := range m.listIDs {
		if id == next {
			m.selected = i
		}
	}
	cmd := m.syncRoute(false)
	return m, cmd
}

// neighbourID returns the id delta positions away from current, wrapping
// around. An id that is not in ids steps from the first entry.
func neighbourID(ids []int, current, delta int) (int, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	pos := -1
	for i, id := range ids {
		if id == current {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ids[0], ids[0] != current
	}
	n := len(ids)
	next := ids[((pos+delta)%n+n)%n]
	return next, next != current
}

// renderDetail renders the product detail for the current lifecycle phase.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	state := m.detail.State()

	if state.Loading() {
		return m.spinner.View() + " " + styles.MutedText.Render(fmt.Sprintf("Loading product %d...", m.mounted.ID))
	}
	if state.Err() != nil {
		return styles.DangerText.Render(state.Message())
	}

	entity, ok := state.Data()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(entity.Title, max(m.width-2, 10))))
	b.WriteString("\n")
	b.WriteString(m.detailField("Price", styles.SuccessText.Render(entity.PriceLabel())))
	b.WriteString("\n")
	b.WriteString(m.detailField("Category", styles.InfoText.Render(entity.CategoryLabel())))
	b.WriteString("\n")
	b.WriteString(m.detailField("Rating", m.ratingLabel(entity.Rating)))
	b.WriteString("\n")
	b.WriteString(m.detailField("Image", styles.MutedText.Render(truncateMiddle(entity.Image, max(m.width-14, 10)))))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", max(m.width-2, 1))))
	b.WriteString("\n")
	b.WriteString(m.detailViewport.View())
	if pos := m.productPosition(entity.ID); pos != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(pos))
	}
	return b.String()
}

func (m Model) detailField(label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Width(10)
	return labelStyle.Render(label) + value
}

func (m Model) ratingLabel(r *catalog.Rating) string {
	styles := m.theme.Styles()
	if r == nil {
		return styles.FaintText.Render("n/a")
	}
	return styles.WarningText.Render(strconv.FormatFloat(r.Rate, 'f', 1, 64)) +
		styles.MutedText.Render(fmt.Sprintf(" (%d reviews)", r.Count))
}

// productPosition renders "3/20" when the product is part of the last list result.
func (m Model) productPosition(id int) string {
	for i, v := range m.listIDs {
		if v == id {
			return fmt.Sprintf("%d/%d", i+1, len(m.listIDs))
		}
	}
	return ""
}
