package engine

import (
	"testing"

	"github.com/driizzyy/deskcalc/internal/model"
)

func newTestContext(mode model.Mode) *Context {
	return NewContext(model.Settings{Mode: mode, Base: 10, WordSize: 64})
}

func TestContextEvaluateCommits(t *testing.T) {
	c := newTestContext(model.ModeScientific)
	res, err := c.Evaluate("2+3*4")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Display != "14" {
		t.Fatalf("expected display 14, got %q", res.Display)
	}
	if c.Current() != "14" {
		t.Fatalf("expected current 14, got %q", c.Current())
	}
	history := c.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].Expression != "2+3*4" || history[0].Result != "14" {
		t.Fatalf("unexpected history entry: %+v", history[0])
	}
}

func TestContextFailureLeavesStateUntouched(t *testing.T) {
	c := newTestContext(model.ModeScientific)
	if _, err := c.Evaluate("10"); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if _, err := c.Evaluate("1/0"); err == nil {
		t.Fatalf("expected division by zero to fail")
	}
	if _, err := c.Evaluate("2+"); err == nil {
		t.Fatalf("expected parse failure")
	}
	if c.Current() != "10" {
		t.Fatalf("expected current unchanged at 10, got %q", c.Current())
	}
	if len(c.History()) != 1 {
		t.Fatalf("expected failed evaluations to leave history alone, got %d entries", len(c.History()))
	}
}

func TestContextPreviewDoesNotCommit(t *testing.T) {
	c := newTestContext(model.ModeScientific)
	res, err := c.Preview("6*7")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if res.Display != "42" {
		t.Fatalf("expected preview 42, got %q", res.Display)
	}
	if c.Current() != "0" {
		t.Fatalf("expected current untouched, got %q", c.Current())
	}
	if len(c.History()) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(c.History()))
	}
}

func TestContextHistoryEviction(t *testing.T) {
	c := NewContext(model.Settings{Mode: model.ModeScientific, Base: 10, WordSize: 64, HistoryLimit: 3})
	for _, input := range []string{"1", "2", "3", "4", "5"} {
		if _, err := c.Evaluate(input); err != nil {
			t.Fatalf("evaluate %q: %v", input, err)
		}
	}
	history := c.History()
	if len(history) != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", len(history))
	}
	if history[0].Expression != "3" || history[2].Expression != "5" {
		t.Fatalf("expected oldest entries evicted, got %+v", history)
	}
}

func TestContextModeSwitchTruncates(t *testing.T) {
	c := newTestContext(model.ModeScientific)
	if _, err := c.Evaluate("7.9"); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	c.SwitchMode(model.ModeProgrammer)
	if c.Current() != "7" {
		t.Fatalf("expected 7 after entering programmer mode, got %q", c.Current())
	}
	c.SwitchMode(model.ModeScientific)
	if c.Current() != "7" {
		t.Fatalf("expected 7 back in scientific mode, got %q", c.Current())
	}

	c = newTestContext(model.ModeScientific)
	if _, err := c.Evaluate("0-7.9"); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	c.SwitchMode(model.ModeProgrammer)
	if c.Current() != "-7" {
		t.Fatalf("expected truncation toward zero, got %q", c.Current())
	}
}

func TestContextProgrammerDisplay(t *testing.T) {
	c := newTestContext(model.ModeProgrammer)
	if _, err := c.Evaluate("255"); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if err := c.SetBase(16); err != nil {
		t.Fatalf("set base: %v", err)
	}
	if c.Current() != "0xff" {
		t.Fatalf("expected 0xff, got %q", c.Current())
	}
	if err := c.SetBase(2); err != nil {
		t.Fatalf("set base: %v", err)
	}
	if c.Current() != "0b11111111" {
		t.Fatalf("expected 0b11111111, got %q", c.Current())
	}
	if err := c.SetBase(7); err == nil {
		t.Fatalf("expected invalid base to fail")
	}
}

func TestContextWordSizeRewraps(t *testing.T) {
	c := newTestContext(model.ModeProgrammer)
	if _, err := c.Evaluate("300"); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if err := c.SetWordSize(8); err != nil {
		t.Fatalf("set word size: %v", err)
	}
	if c.Current() != "44" {
		t.Fatalf("expected 300 masked to 44 at 8 bits, got %q", c.Current())
	}
}

func TestContextAngleToggle(t *testing.T) {
	c := newTestContext(model.ModeScientific)
	if c.AngleUnit() != model.Radians {
		t.Fatalf("expected radians by default")
	}
	c.ToggleAngleUnit()
	res, err := c.Evaluate("sin(90)")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Display != "1" {
		t.Fatalf("expected sin(90 deg) = 1, got %q", res.Display)
	}
}
