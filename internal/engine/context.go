package engine

import (
	"math"
	"time"

	"github.com/driizzyy/deskcalc/internal/baseconv"
	"github.com/driizzyy/deskcalc/internal/memory"
	"github.com/driizzyy/deskcalc/internal/model"
)

// DefaultHistoryLimit bounds in-context history when no limit is
// configured.
const DefaultHistoryLimit = 200

// Result is the outcome of a successful evaluation.
type Result struct {
	Value   float64
	Bits    uint64
	Display string
	Mode    model.Mode
}

// Context is the mutable per-session calculator state: current value,
// angle unit, numeral base, word size, memory bank, and bounded history.
type Context struct {
	mode      model.Mode
	angle     model.AngleUnit
	base      int
	wordSize  int
	precision int

	current     float64
	currentBits uint64

	history      []model.HistoryEntry
	historyLimit int

	Memory *memory.Bank
}

// NewContext builds a context from resolved settings.
func NewContext(settings model.Settings) *Context {
	limit := settings.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	base := settings.Base
	if !baseconv.ValidBase(base) {
		base = 10
	}
	wordSize := settings.WordSize
	if !baseconv.ValidWordSize(wordSize) {
		wordSize = 64
	}
	precision := settings.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Context{
		mode:         settings.Mode,
		angle:        settings.AngleUnit,
		base:         base,
		wordSize:     wordSize,
		precision:    precision,
		historyLimit: limit,
		Memory:       memory.NewBank(),
	}
}

// Mode returns the active mode.
func (c *Context) Mode() model.Mode { return c.mode }

// AngleUnit returns the active angle unit.
func (c *Context) AngleUnit() model.AngleUnit { return c.angle }

// SetAngleUnit changes how trig arguments are interpreted.
func (c *Context) SetAngleUnit(u model.AngleUnit) { c.angle = u }

// ToggleAngleUnit flips between degrees and radians.
func (c *Context) ToggleAngleUnit() {
	if c.angle == model.Degrees {
		c.angle = model.Radians
	} else {
		c.angle = model.Degrees
	}
}

// Base returns the active numeral base.
func (c *Context) Base() int { return c.base }

// SetBase switches the programmer-mode numeral base.
func (c *Context) SetBase(base int) error {
	if !baseconv.ValidBase(base) {
		return evalErrf(ErrDomain, "unsupported base %d", base)
	}
	c.base = base
	return nil
}

// WordSize returns the programmer-mode word size in bits.
func (c *Context) WordSize() int { return c.wordSize }

// SetWordSize switches the word size, re-wrapping the current value.
func (c *Context) SetWordSize(bits int) error {
	if !baseconv.ValidWordSize(bits) {
		return evalErrf(ErrDomain, "unsupported word size %d", bits)
	}
	c.wordSize = bits
	c.currentBits = baseconv.Wrap(c.currentBits, bits)
	return nil
}

// Current returns the displayed value for the active mode.
func (c *Context) Current() string {
	if c.mode == model.ModeProgrammer {
		return baseconv.Format(c.currentBits, c.base, c.wordSize)
	}
	return FormatFloat(c.current, c.precision)
}

// CurrentFloat returns the current value as a float regardless of mode.
func (c *Context) CurrentFloat() float64 {
	if c.mode == model.ModeProgrammer {
		return float64(baseconv.Signed(c.currentBits, c.wordSize))
	}
	return c.current
}

// SwitchMode changes the active mode. Entering programmer mode
// truncates a fractional current value toward zero; leaving it carries
// the signed integer value back to the float modes.
func (c *Context) SwitchMode(mode model.Mode) {
	if mode == c.mode {
		return
	}
	switch {
	case mode == model.ModeProgrammer:
		c.currentBits = baseconv.WrapSigned(int64(math.Trunc(c.current)), c.wordSize)
	case c.mode == model.ModeProgrammer:
		c.current = float64(baseconv.Signed(c.currentBits, c.wordSize))
	}
	c.mode = mode
}

// History returns the committed entries, oldest first.
func (c *Context) History() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// ClearHistory drops all history entries.
func (c *Context) ClearHistory() {
	c.history = nil
}

// Evaluate parses and evaluates input under the active mode. On success
// the current value is replaced and the entry is appended to history;
// on failure the context is left untouched.
func (c *Context) Evaluate(input string) (Result, error) {
	expr, err := Parse(input, c.mode, c.base)
	if err != nil {
		return Result{}, err
	}
	return c.commit(input, expr)
}

// Preview evaluates input without touching the current value or
// history. The TUI uses it for as-you-type results.
func (c *Context) Preview(input string) (Result, error) {
	expr, err := Parse(input, c.mode, c.base)
	if err != nil {
		return Result{}, err
	}
	return c.eval(expr)
}

func (c *Context) eval(expr Expr) (Result, error) {
	if c.mode == model.ModeProgrammer {
		bits, err := EvalInt(expr, Env{WordSize: c.wordSize})
		if err != nil {
			return Result{}, err
		}
		return Result{
			Value:   float64(baseconv.Signed(bits, c.wordSize)),
			Bits:    bits,
			Display: baseconv.Format(bits, c.base, c.wordSize),
			Mode:    c.mode,
		}, nil
	}
	v, err := EvalFloat(expr, Env{Angle: c.angle})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Value:   v,
		Display: FormatFloat(v, c.precision),
		Mode:    c.mode,
	}, nil
}

func (c *Context) commit(input string, expr Expr) (Result, error) {
	res, err := c.eval(expr)
	if err != nil {
		return Result{}, err
	}
	if c.mode == model.ModeProgrammer {
		c.currentBits = res.Bits
	} else {
		c.current = res.Value
	}
	c.appendHistory(model.HistoryEntry{
		CreatedAt:  time.Now(),
		Mode:       c.mode,
		Expression: input,
		Result:     res.Display,
	})
	return res, nil
}

func (c *Context) appendHistory(entry model.HistoryEntry) {
	c.history = append(c.history, entry)
	if len(c.history) > c.historyLimit {
		over := len(c.history) - c.historyLimit
		c.history = append(c.history[:0], c.history[over:]...)
	}
}
