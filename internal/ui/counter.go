package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/kiosk/internal/state"
)

func (m Model) handleCounterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Increment):
		m.dispatch(state.Increment())
	case key.Matches(msg, m.keys.Decrement):
		if !m.counter.Counter.CanDecrement() {
			return m, nil
		}
		m.dispatch(state.Decrement())
	case key.Matches(msg, m.keys.ResetCounter):
		m.dispatch(state.Reset())
	case key.Matches(msg, m.keys.CustomAmount):
		m.editingAmount = true
		m.amountInput.SetValue("")
		cmd := m.amountInput.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleAmountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.CancelAmount):
		m.stopEditingAmount()
		return m, nil
	case key.Matches(msg, m.keys.ConfirmAmount):
		amount, err := parseAmount(m.amountInput.Value())
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.dispatch(state.IncrementByAmount(amount))
		m.stopEditingAmount()
		return m, nil
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m *Model) dispatch(a state.Action) {
	m.counter = m.store.Dispatch(a)
	m.notice = ""
}

func (m *Model) stopEditingAmount() {
	m.editingAmount = false
	m.amountInput.Blur()
	m.amountInput.SetValue("")
}

// parseAmount reads a whole number. An empty field counts as zero.
func parseAmount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return n, nil
}

// renderCounter renders the counter exercise.
func (m Model) renderCounter() string {
	styles := m.theme.Styles()
	c := m.counter.Counter

	value := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Render(strconv.Itoa(c.Value))

	decrement := styles.Text.Render("[-] Decrement")
	if !c.CanDecrement() {
		decrement = styles.FaintText.Render("[-] Decrement")
	}

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("CURRENT COUNT"))
	b.WriteString("\n")
	b.WriteString(value)
	b.WriteString("\n\n")
	b.WriteString(decrement + "   " + styles.Text.Render("[+] Increment"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render("[0] Reset to zero"))
	b.WriteString("\n\n")
	if m.editingAmount {
		b.WriteString(styles.MutedText.Render("Increment by custom amount"))
		b.WriteString("\n")
		b.WriteString(m.amountInput.View())
	} else {
		b.WriteString(styles.Text.Render("[a] Increment by custom amount"))
	}
	if m.counter.Dispatched > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("last action: %s at %s",
			m.counter.LastAction, m.counter.LastUpdated.Format("15:04:05"))))
	}

	return styles.Panel.Render(b.String())
}
