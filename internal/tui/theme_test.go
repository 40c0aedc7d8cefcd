package tui

import (
	"strings"
	"testing"

	"github.com/driizzyy/deskcalc/internal/model"
)

func TestParseTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, err := ParseTheme(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if theme.Name != name {
			t.Fatalf("expected name %q, got %q", name, theme.Name)
		}
	}
	theme, err := ParseTheme("")
	if err != nil {
		t.Fatalf("expected empty name to use the default: %v", err)
	}
	if theme.Name != DefaultTheme {
		t.Fatalf("expected default theme, got %q", theme.Name)
	}
	if _, err := ParseTheme("DARK"); err != nil {
		t.Fatalf("expected case-insensitive lookup: %v", err)
	}
	if _, err := ParseTheme("neon"); err == nil {
		t.Fatalf("expected unknown theme to fail")
	}
}

func TestRenderKeypad(t *testing.T) {
	theme, err := ParseTheme(DefaultTheme)
	if err != nil {
		t.Fatalf("parse theme: %v", err)
	}
	out := renderKeypad(theme, model.ModeProgrammer)
	if out == "" {
		t.Fatalf("expected programmer keypad")
	}
	if !strings.Contains(out, "<<") {
		t.Fatalf("expected shift keys in programmer keypad:\n%s", out)
	}
	if renderKeypad(theme, model.ModeGraphing) != "" {
		t.Fatalf("expected no keypad for graphing mode")
	}
}

func TestIsPreviewable(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2+3", true},
		{"2+", false},
		{"2*", false},
		{"sin(1)", true},
		{"sin(", false},
		{"1<<", false},
		{"1.", false},
	}
	for _, tc := range cases {
		if got := isPreviewable(tc.input); got != tc.want {
			t.Fatalf("isPreviewable(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
}

func TestSplitExpressions(t *testing.T) {
	got := splitExpressions(" x^2 ; sin(x);  ; 2*x ")
	want := []string{"x^2", "sin(x)", "2*x"}
	if len(got) != len(want) {
		t.Fatalf("expected %d expressions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expression %d = %q, expected %q", i, got[i], want[i])
		}
	}
}
