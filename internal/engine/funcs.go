package engine

import (
	"math"

	"github.com/driizzyy/deskcalc/internal/model"
)

// Named constants available outside standard mode.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": (1 + math.Sqrt(5)) / 2,
	"tau": 2 * math.Pi,
}

func isConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

type funcSpec struct {
	minArity int
	maxArity int // -1 means unbounded
	standard bool
	trigArg  bool // argument converted from the active angle unit
	trigOut  bool // result converted to the active angle unit
	apply    func(args []float64) (float64, error)
}

func one(f func(float64) (float64, error)) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		return f(args[0])
	}
}

func plain(f func(float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		return f(args[0]), nil
	}
}

var functions = map[string]funcSpec{
	"sqrt": {minArity: 1, maxArity: 1, standard: true, apply: one(func(x float64) (float64, error) {
		if x < 0 {
			return 0, evalErrf(ErrDomain, "square root of negative value")
		}
		return math.Sqrt(x), nil
	})},
	"abs":   {minArity: 1, maxArity: 1, standard: true, apply: plain(math.Abs)},
	"floor": {minArity: 1, maxArity: 1, standard: true, apply: plain(math.Floor)},
	"ceil":  {minArity: 1, maxArity: 1, standard: true, apply: plain(math.Ceil)},
	"round": {minArity: 1, maxArity: 1, standard: true, apply: plain(math.Round)},

	"sin": {minArity: 1, maxArity: 1, trigArg: true, apply: plain(math.Sin)},
	"cos": {minArity: 1, maxArity: 1, trigArg: true, apply: plain(math.Cos)},
	"tan": {minArity: 1, maxArity: 1, trigArg: true, apply: plain(math.Tan)},
	"asin": {minArity: 1, maxArity: 1, trigOut: true, apply: one(func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, evalErrf(ErrDomain, "asin argument outside [-1, 1]")
		}
		return math.Asin(x), nil
	})},
	"acos": {minArity: 1, maxArity: 1, trigOut: true, apply: one(func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, evalErrf(ErrDomain, "acos argument outside [-1, 1]")
		}
		return math.Acos(x), nil
	})},
	"atan": {minArity: 1, maxArity: 1, trigOut: true, apply: plain(math.Atan)},
	"sinh": {minArity: 1, maxArity: 1, apply: plain(math.Sinh)},
	"cosh": {minArity: 1, maxArity: 1, apply: plain(math.Cosh)},
	"tanh": {minArity: 1, maxArity: 1, apply: plain(math.Tanh)},

	"ln":    {minArity: 1, maxArity: 1, apply: one(logBase(math.Log))},
	"log":   {minArity: 1, maxArity: 1, apply: one(logBase(math.Log))},
	"log10": {minArity: 1, maxArity: 1, apply: one(logBase(math.Log10))},
	"log2":  {minArity: 1, maxArity: 1, apply: one(logBase(math.Log2))},
	"exp":   {minArity: 1, maxArity: 1, apply: plain(math.Exp)},
	"cbrt":  {minArity: 1, maxArity: 1, apply: plain(math.Cbrt)},

	"factorial": {minArity: 1, maxArity: 1, apply: one(factorial)},
	"pow": {minArity: 2, maxArity: 2, apply: func(args []float64) (float64, error) {
		return power(args[0], args[1])
	}},
	"min": {minArity: 1, maxArity: -1, apply: func(args []float64) (float64, error) {
		out := args[0]
		for _, v := range args[1:] {
			out = math.Min(out, v)
		}
		return out, nil
	}},
	"max": {minArity: 1, maxArity: -1, apply: func(args []float64) (float64, error) {
		out := args[0]
		for _, v := range args[1:] {
			out = math.Max(out, v)
		}
		return out, nil
	}},
}

func logBase(log func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, evalErrf(ErrDomain, "logarithm of non-positive value")
		}
		return log(x), nil
	}
}

const maxFactorialArg = 170 // 171! overflows float64

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, evalErrf(ErrDomain, "factorial requires a non-negative integer")
	}
	if x > maxFactorialArg {
		return 0, evalErrf(ErrOverflow, "factorial argument too large")
	}
	out := 1.0
	for i := 2.0; i <= x; i++ {
		out *= i
	}
	return out, nil
}

func power(base, exponent float64) (float64, error) {
	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, evalErrf(ErrDomain, "fractional power of negative base")
	}
	if base == 0 && exponent < 0 {
		return 0, evalErrf(ErrDivisionByZero, "zero raised to a negative power")
	}
	return math.Pow(base, exponent), nil
}

// lookupFunction resolves a function name under the active mode.
// Standard mode exposes only the basic subset; programmer mode has no
// functions at all.
func lookupFunction(name string, mode model.Mode) (funcSpec, bool) {
	spec, ok := functions[name]
	if !ok {
		return funcSpec{}, false
	}
	switch mode {
	case model.ModeStandard:
		if !spec.standard {
			return funcSpec{}, false
		}
	case model.ModeProgrammer:
		return funcSpec{}, false
	}
	return spec, true
}
