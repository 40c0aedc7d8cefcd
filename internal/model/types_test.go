package model

import "testing"

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  Mode
	}{
		{"standard", ModeStandard},
		{"Scientific", ModeScientific},
		{" PROGRAMMER ", ModeProgrammer},
		{"graphing", ModeGraphing},
		{"statistics", ModeStatistics},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
	if _, err := ParseMode("casio"); err == nil {
		t.Fatalf("expected unknown mode to fail")
	}
}

func TestModeTitle(t *testing.T) {
	if got := ModeProgrammer.Title(); got != "Programmer" {
		t.Fatalf("expected Programmer, got %q", got)
	}
}

func TestParseAngleUnit(t *testing.T) {
	for _, input := range []string{"rad", "radians", "RADIANS"} {
		got, err := ParseAngleUnit(input)
		if err != nil || got != Radians {
			t.Fatalf("ParseAngleUnit(%q) = %v, %v", input, got, err)
		}
	}
	for _, input := range []string{"deg", "degrees"} {
		got, err := ParseAngleUnit(input)
		if err != nil || got != Degrees {
			t.Fatalf("ParseAngleUnit(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseAngleUnit("gradians"); err == nil {
		t.Fatalf("expected unknown unit to fail")
	}
}
