// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects the active grammar and operator set.
type Mode int

// Calculator modes.
const (
	ModeStandard Mode = iota
	ModeScientific
	ModeProgrammer
	ModeGraphing
	ModeStatistics
)

var modeNames = []string{
	ModeStandard:   "standard",
	ModeScientific: "scientific",
	ModeProgrammer: "programmer",
	ModeGraphing:   "graphing",
	ModeStatistics: "statistics",
}

// Modes lists every mode in cycle order.
var Modes = []Mode{ModeStandard, ModeScientific, ModeProgrammer, ModeGraphing, ModeStatistics}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Title returns the capitalized mode name for display.
func (m Mode) Title() string {
	name := m.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseMode resolves a mode name, case-insensitive.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == needle {
			return Mode(i), nil
		}
	}
	return ModeStandard, fmt.Errorf("unknown mode %q (available: %s)", s, strings.Join(modeNames, ", "))
}

// AngleUnit selects how trigonometric arguments are interpreted.
type AngleUnit int

// Angle units.
const (
	Radians AngleUnit = iota
	Degrees
)

// String returns the lowercase unit name.
func (u AngleUnit) String() string {
	if u == Degrees {
		return "degrees"
	}
	return "radians"
}

// ParseAngleUnit resolves an angle unit name.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rad", "radians":
		return Radians, nil
	case "deg", "degrees":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("unknown angle unit %q (available: radians, degrees)", s)
}

// HistoryEntry records one committed evaluation.
type HistoryEntry struct {
	ID         int64
	CreatedAt  time.Time
	Mode       Mode
	Expression string
	Result     string
}

// Settings captures the resolved calculator configuration for a session.
type Settings struct {
	Mode         Mode
	Theme        string
	AngleUnit    AngleUnit
	Base         int
	WordSize     int
	HistoryLimit int
	Precision    int
	PlotSamples  int
	PlotHeight   int
}
