package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kiosk/internal/catalog"
)

var errNoFetcher = errors.New("no catalog client configured")

// listItems returns the products of the last successful list fetch.
func (m Model) listItems() []catalog.ListItem {
	items, _ := m.list.State().Data()
	return items
}

// handleListResolved keeps the cursor on the same product across reloads.
func (m *Model) handleListResolved() {
	items := m.listItems()
	m.listIDs = catalog.IDs(items)
	m.selected = 0
	for i, id := range m.listIDs {
		if id == m.selectedID {
			m.selected = i
			break
		}
	}
	if len(items) > 0 {
		m.selectedID = items[m.selected].ID
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.listItems()
	if len(items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(items))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(items))
	case key.Matches(msg, m.keys.Open):
		item := items[m.selected]
		if err := m.navigator.NavigateTo(strconv.Itoa(item.ID)); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		cmd := m.syncRoute(false)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	items := m.listItems()
	if len(items) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(items)-1)
	m.selectedID = items[m.selected].ID
}

// renderList renders the product list for the current lifecycle phase.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	state := m.list.State()

	if state.Loading() {
		return m.spinner.View() + " " + styles.MutedText.Render("Loading products...")
	}
	if state.Err() != nil {
		return styles.DangerText.Render(state.Message())
	}

	items, ok := state.Data()
	if !ok {
		return ""
	}
	if len(items) == 0 {
		return styles.FaintText.Render("No products.")
	}

	showImage := m.width >= LayoutImageWidth
	titleWidth := m.width - listIDWidth - listPriceWidth - 6
	imageWidth := 0
	if showImage {
		imageWidth = min(48, m.width/3)
		titleWidth -= imageWidth + 2
	}
	titleWidth = max(titleWidth, 10)

	row := func(id, title, price, image string) string {
		line := padLeft(id, listIDWidth) + "  " + padRight(truncate(title, titleWidth), titleWidth) +
			"  " + padLeft(price, listPriceWidth)
		if showImage {
			line += "  " + truncateMiddle(image, imageWidth)
		}
		return line
	}

	var b strings.Builder
	b.WriteString(styles.FaintText.Bold(true).Render(row("ID", "TITLE", "PRICE", "IMAGE")))

	start, end := visibleRange(m.selected, len(items), m.contentHeight()-1)
	for i := start; i < end; i++ {
		item := items[i]
		line := row(strconv.Itoa(item.ID), item.Title, item.PriceLabel(), item.Image)
		b.WriteString("\n")
		if i == m.selected {
			b.WriteString(styles.Selected.Render(padRight(line, m.width)))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
	}

	if end-start < len(items) {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d/%d", m.selected+1, len(items))))
	}
	return b.String()
}

// visibleRange returns the window of rows to draw so that selected stays visible.
func visibleRange(selected, total, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if total <= height {
		return 0, total
	}
	// reserve a line for the position indicator
	height--
	if height < 1 {
		height = 1
	}
	start := selected - height/2
	start = min(max(start, 0), total-height)
	return start, start + height
}
