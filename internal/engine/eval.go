package engine

import (
	"math"

	"github.com/driizzyy/deskcalc/internal/baseconv"
	"github.com/driizzyy/deskcalc/internal/model"
)

// Env carries the evaluation-time state an expression may read.
type Env struct {
	Angle model.AngleUnit
	// Vars binds free variables (graphing mode's x).
	Vars map[string]float64
	// WordSize bounds programmer-mode arithmetic, in bits.
	WordSize int
}

// EvalFloat evaluates a float-mode expression. The result is guaranteed
// finite; NaN or infinity from any step is reported as an error instead
// of leaking to the caller.
func EvalFloat(expr Expr, env Env) (float64, error) {
	v, err := evalFloat(expr, env)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, evalErrf(ErrNotFinite, "expression did not produce a finite value")
	}
	return v, nil
}

func evalFloat(expr Expr, env Env) (float64, error) {
	switch e := expr.(type) {
	case *NumberLit:
		return e.Value, nil
	case *ConstRef:
		return constants[e.Name], nil
	case *VarRef:
		v, ok := env.Vars[e.Name]
		if !ok {
			return 0, evalErrf(ErrDomain, "unbound variable %q", e.Name)
		}
		return v, nil
	case *UnaryExpr:
		v, err := evalFloat(e.Operand, env)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *BinaryExpr:
		return evalFloatBinary(e, env)
	case *CallExpr:
		return evalCall(e, env)
	case *FactorialExpr:
		v, err := evalFloat(e.Operand, env)
		if err != nil {
			return 0, err
		}
		return factorial(v)
	default:
		return 0, evalErrf(ErrDomain, "unsupported expression node %T", expr)
	}
}

func evalFloatBinary(e *BinaryExpr, env Env) (float64, error) {
	left, err := evalFloat(e.Left, env)
	if err != nil {
		return 0, err
	}
	right, err := evalFloat(e.Right, env)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case tokenPlus:
		return left + right, nil
	case tokenMinus:
		return left - right, nil
	case tokenStar:
		return left * right, nil
	case tokenSlash:
		if right == 0 {
			return 0, evalErrf(ErrDivisionByZero, "")
		}
		return left / right, nil
	case tokenPercent:
		if right == 0 {
			return 0, evalErrf(ErrDivisionByZero, "modulo by zero")
		}
		return math.Mod(left, right), nil
	case tokenCaret:
		return power(left, right)
	default:
		return 0, evalErrf(ErrDomain, "unsupported operator")
	}
}

func evalCall(e *CallExpr, env Env) (float64, error) {
	spec := functions[e.Name]
	args := make([]float64, len(e.Args))
	for i, arg := range e.Args {
		v, err := evalFloat(arg, env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	if spec.trigArg && env.Angle == model.Degrees {
		args[0] = args[0] * math.Pi / 180
	}
	out, err := spec.apply(args)
	if err != nil {
		return 0, err
	}
	if spec.trigOut && env.Angle == model.Degrees {
		out = out * 180 / math.Pi
	}
	return out, nil
}

// EvalInt evaluates a programmer-mode expression under fixed-width
// two's-complement semantics. All intermediate values wrap modulo
// 2^WordSize.
func EvalInt(expr Expr, env Env) (uint64, error) {
	bits := env.WordSize
	if !baseconv.ValidWordSize(bits) {
		return 0, evalErrf(ErrDomain, "unsupported word size %d", bits)
	}
	return evalInt(expr, bits)
}

func evalInt(expr Expr, bits int) (uint64, error) {
	switch e := expr.(type) {
	case *NumberLit:
		return baseconv.Wrap(e.Bits, bits), nil
	case *UnaryExpr:
		v, err := evalInt(e.Operand, bits)
		if err != nil {
			return 0, err
		}
		if e.Op == tokenTilde {
			return baseconv.Not(v, bits), nil
		}
		return baseconv.Neg(v, bits), nil
	case *BinaryExpr:
		return evalIntBinary(e, bits)
	default:
		return 0, evalErrf(ErrDomain, "unsupported expression node %T", expr)
	}
}

func evalIntBinary(e *BinaryExpr, bits int) (uint64, error) {
	left, err := evalInt(e.Left, bits)
	if err != nil {
		return 0, err
	}
	right, err := evalInt(e.Right, bits)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case tokenPlus:
		return baseconv.Add(left, right, bits), nil
	case tokenMinus:
		return baseconv.Sub(left, right, bits), nil
	case tokenStar:
		return baseconv.Mul(left, right, bits), nil
	case tokenSlash:
		if right == 0 {
			return 0, evalErrf(ErrDivisionByZero, "")
		}
		// Signed division, wrapped back to the word. MinInt / -1
		// wraps like negation instead of trapping.
		if baseconv.Signed(right, bits) == -1 {
			return baseconv.Neg(left, bits), nil
		}
		return baseconv.WrapSigned(baseconv.Signed(left, bits)/baseconv.Signed(right, bits), bits), nil
	case tokenPercent:
		if right == 0 {
			return 0, evalErrf(ErrDivisionByZero, "modulo by zero")
		}
		if baseconv.Signed(right, bits) == -1 {
			return 0, nil
		}
		return baseconv.WrapSigned(baseconv.Signed(left, bits)%baseconv.Signed(right, bits), bits), nil
	case tokenAmp:
		return left & right, nil
	case tokenPipe:
		return left | right, nil
	case tokenCaret:
		return left ^ right, nil
	case tokenShiftL:
		return baseconv.ShiftLeft(left, right, bits), nil
	case tokenShiftR:
		return baseconv.ShiftRight(left, right, bits), nil
	default:
		return 0, evalErrf(ErrDomain, "unsupported operator")
	}
}
