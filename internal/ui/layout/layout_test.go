package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Interview", "MEDIUM · ADAPTIVE_MODE", 100)
	for _, want := range []string{"mockround", "Interview", "MEDIUM · ADAPTIVE_MODE"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if lipgloss.Height(h) != 3 {
		t.Errorf("header height = %d, want 3", lipgloss.Height(h))
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "End"}}, 80)
	for _, want := range []string{"Enter", "Submit", "Esc", "End"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
