package engine

import (
	"errors"
	"testing"

	"github.com/driizzyy/deskcalc/internal/model"
)

func evalScientific(t *testing.T, input string) float64 {
	t.Helper()
	expr, err := Parse(input, model.ModeScientific, 10)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	v, err := EvalFloat(expr, Env{})
	if err != nil {
		t.Fatalf("eval %q: %v", input, err)
	}
	return v
}

func TestParsePrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"20/4/5", 1},
		{"10%3", 1},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"2^-3", 0.125},
		{"-(2+3)", -5},
		{"--5", 5},
		{"+5", 5},
		{"3!", 6},
		{"2*3!", 12},
	}
	for _, tc := range cases {
		if got := evalScientific(t, tc.input); got != tc.want {
			t.Fatalf("%q = %v, expected %v", tc.input, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"2+",
		"(2+3",
		"2+3)",
		"2 3",
		"nope",
		"sqrt(1,2)",
		"pow(2)",
		"blah(1)",
		"1..2",
	}
	for _, input := range cases {
		if _, err := Parse(input, model.ModeScientific, 10); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestParseErrorType(t *testing.T) {
	_, err := Parse("2+", model.ModeScientific, 10)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Pos < 0 {
		t.Fatalf("expected non-negative position, got %d", perr.Pos)
	}
}

func TestStandardModeRestrictions(t *testing.T) {
	for _, input := range []string{"pi", "5!", "sin(1)", "ln(2)"} {
		if _, err := Parse(input, model.ModeStandard, 10); err == nil {
			t.Fatalf("expected standard mode to reject %q", input)
		}
	}
	// The basic subset stays available.
	for _, input := range []string{"sqrt(4)", "abs(-2)", "round(2.4)", "2+3*4"} {
		if _, err := Parse(input, model.ModeStandard, 10); err != nil {
			t.Fatalf("standard mode rejected %q: %v", input, err)
		}
	}
}

func TestGraphingVariable(t *testing.T) {
	expr, err := Parse("x^2+1", model.ModeGraphing, 10)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, err := EvalFloat(expr, Env{Vars: map[string]float64{"x": 3}})
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if v != 10 {
		t.Fatalf("expected 10, got %v", v)
	}
	// x is not a binding outside graphing mode.
	if _, err := Parse("x+1", model.ModeScientific, 10); err == nil {
		t.Fatalf("expected scientific mode to reject x")
	}
}

func TestProgrammerPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"1|2&3", 3},
		{"1^2|4", 7},
		{"1<<4", 16},
		{"2+3<<1", 10},
		{"6&3", 2},
		{"~0", -1},
		{"-5", -5},
		{"10/3", 3},
		{"10%3", 1},
		{"(1|2)&3", 3},
	}
	for _, tc := range cases {
		expr, err := Parse(tc.input, model.ModeProgrammer, 10)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		bits, err := EvalInt(expr, Env{WordSize: 64})
		if err != nil {
			t.Fatalf("eval %q: %v", tc.input, err)
		}
		if got := int64(bits); got != tc.want {
			t.Fatalf("%q = %d, expected %d", tc.input, got, tc.want)
		}
	}
}

func TestProgrammerRejectsFloatSyntax(t *testing.T) {
	for _, input := range []string{"1.5", "sqrt(4)", "pi", "3!"} {
		if _, err := Parse(input, model.ModeProgrammer, 10); err == nil {
			t.Fatalf("expected programmer mode to reject %q", input)
		}
	}
}

func TestProgrammerBaseLiterals(t *testing.T) {
	cases := []struct {
		input string
		base  int
		want  uint64
	}{
		{"ff", 16, 255},
		{"0xff", 16, 255},
		{"0xff", 10, 255},
		{"101", 2, 5},
		{"0b101", 2, 5},
		{"17", 8, 15},
		{"0o17", 8, 15},
		{"255", 10, 255},
	}
	for _, tc := range cases {
		expr, err := Parse(tc.input, model.ModeProgrammer, tc.base)
		if err != nil {
			t.Fatalf("parse %q (base %d): %v", tc.input, tc.base, err)
		}
		bits, err := EvalInt(expr, Env{WordSize: 64})
		if err != nil {
			t.Fatalf("eval %q: %v", tc.input, err)
		}
		if bits != tc.want {
			t.Fatalf("%q (base %d) = %d, expected %d", tc.input, tc.base, bits, tc.want)
		}
	}
}
