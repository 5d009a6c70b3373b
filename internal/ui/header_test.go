package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBarSegmentsKeepText(t *testing.T) {
	b := newBar("#192330")
	plain := lipgloss.NewStyle()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"seg", b.seg("api host", plain), "api host"},
		{"pair", b.pair("Dispatched:", plain, "3", plain), "Dispatched: 3"},
		{"hint", b.hint("esc", "Back", plain, plain), "esc:Back"},
		{"join", b.join([]string{"a", "b"}), "a  b"},
		{"empty seg", b.seg("", plain), ""},
	}
	for _, tt := range tests {
		if got := stripANSI(tt.got); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
		if w := lipgloss.Width(tt.got); w != len(tt.want) {
			t.Errorf("%s width = %d, want %d", tt.name, w, len(tt.want))
		}
	}
}

func TestHeaderShowsRouteAndPhase(t *testing.T) {
	m, _, cmd := newTestModel(t, newFakeFetcher(), "/product/2")

	header := stripANSI(m.renderHeader())
	for _, want := range []string{"kiosk", "/product/2", "LOADING"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %q", header, want)
		}
	}

	m = settle(t, m, cmd)
	if header := stripANSI(m.renderHeader()); !strings.Contains(header, "SUCCESS") {
		t.Errorf("header %q missing SUCCESS after load", header)
	}
	if bar := stripANSI(m.renderCommandBar()); !strings.Contains(bar, "[/]:Prev/Next") {
		t.Errorf("command bar %q missing detail hints", bar)
	}
}

// stripANSI drops CSI escape sequences from s.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
