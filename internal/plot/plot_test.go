package plot

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "Test Plot", []Series{
		{Name: "a", Values: []float64{1, 2, 3, 2, 1}},
		{Name: "b", Values: []float64{1, 1, 2, 3, 4}},
	}, -1, 1, 20, 4)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if !strings.Contains(out, "-1") || !strings.Contains(out, "1") {
		t.Fatalf("expected x axis labels in output:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title + 4 chart rows + axis rule + axis labels + legend.
	if len(lines) < 8 {
		t.Fatalf("expected at least 8 lines, got %d:\n%s", len(lines), out)
	}
}

func TestRenderSkipsEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "", []Series{
		{Name: "empty", Values: []float64{math.NaN(), math.NaN()}},
	}, 0, 1, 20, 4)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for all-NaN series, got:\n%s", buf.String())
	}
}

func TestRenderWithGaps(t *testing.T) {
	values := []float64{1, 2, math.NaN(), 4, 5}
	var buf bytes.Buffer
	err := Render(&buf, "", []Series{{Name: "gap", Values: values}}, 0, 4, 10, 4)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "gap") {
		t.Fatalf("expected series name in legend")
	}
}

func TestWidthFor(t *testing.T) {
	if got := WidthFor(100); got != 100-axisLabelWidth-len([]rune(axisSeparator)) {
		t.Fatalf("unexpected width: %d", got)
	}
	if got := WidthFor(5); got != minWidth {
		t.Fatalf("expected minimum width %d, got %d", minWidth, got)
	}
	if got := WidthFor(0); got != minWidth {
		t.Fatalf("expected minimum width for zero, got %d", got)
	}
}

func TestResample(t *testing.T) {
	shrunk := resample([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 4)
	if len(shrunk) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(shrunk))
	}
	if shrunk[0] != 1.5 {
		t.Fatalf("expected first column average 1.5, got %v", shrunk[0])
	}

	stretched := resample([]float64{0, 10}, 5)
	if len(stretched) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(stretched))
	}
	if stretched[0] != 0 || stretched[4] != 10 {
		t.Fatalf("expected endpoints preserved, got %v and %v", stretched[0], stretched[4])
	}
	if math.Abs(stretched[2]-5) > 1e-9 {
		t.Fatalf("expected midpoint 5, got %v", stretched[2])
	}
}

func TestResampleKeepsGaps(t *testing.T) {
	out := resample([]float64{math.NaN(), math.NaN(), 3, 4}, 2)
	if !math.IsNaN(out[0]) {
		t.Fatalf("expected NaN column, got %v", out[0])
	}
	if out[1] != 3.5 {
		t.Fatalf("expected finite average 3.5, got %v", out[1])
	}
}

func TestValueToRow(t *testing.T) {
	if got := valueToRow(0, 0, 10, 40); got != 39 {
		t.Fatalf("expected bottom row for minimum, got %d", got)
	}
	if got := valueToRow(10, 0, 10, 40); got != 0 {
		t.Fatalf("expected top row for maximum, got %d", got)
	}
}
