package engine

import (
	"strings"

	"github.com/driizzyy/deskcalc/internal/model"
)

// parser is a recursive-descent parser over the lexer's token stream.
// The active mode selects the grammar: programmer mode parses a C-like
// integer expression, the other modes a scientific float expression.
type parser struct {
	lex     *lexer
	mode    model.Mode
	current token
	peek    token
}

// Parse parses input under the grammar of the given mode. base is the
// active numeral base and only matters in programmer mode.
func Parse(input string, mode model.Mode, base int) (Expr, error) {
	if strings.TrimSpace(input) == "" {
		return nil, parseErrf(0, "empty expression")
	}
	p := &parser{
		lex:  newLexer(input, mode == model.ModeProgrammer, base),
		mode: mode,
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var expr Expr
	var err error
	if mode == model.ModeProgrammer {
		expr, err = p.parseBitOr()
	} else {
		expr, err = p.parseAdditive()
	}
	if err != nil {
		return nil, err
	}
	if p.current.typ != tokenEOF {
		return nil, parseErrf(p.current.pos, "unexpected token %q", p.current.text)
	}
	return expr, nil
}

func (p *parser) advance() error {
	p.current = p.peek
	next, err := p.lex.next()
	if err != nil {
		return err
	}
	p.peek = next
	return nil
}

func (p *parser) expect(t tokenType, what string) error {
	if p.current.typ != t {
		return parseErrf(p.current.pos, "expected %s, found %q", what, p.current.text)
	}
	return p.advance()
}

// Float grammar, lowest to highest precedence:
// additive, multiplicative, unary, power (right-assoc), postfix, primary.

func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.current.typ == tokenPlus || p.current.typ == tokenMinus {
		op := p.current.typ
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current.typ == tokenStar || p.current.typ == tokenSlash || p.current.typ == tokenPercent {
		op := p.current.typ
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	switch p.current.typ {
	case tokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: tokenMinus, Operand: operand}, nil
	case tokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseUnary()
	default:
		return p.parsePower()
	}
}

// parsePower handles ^. The exponent recurses through unary so 2^-3 and
// 2^3^2 (right-associative) both parse. -2^2 means -(2^2).
func (p *parser) parsePower() (Expr, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.current.typ == tokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: tokenCaret, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePostfix() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current.typ == tokenBang {
		if p.mode == model.ModeStandard {
			return nil, parseErrf(p.current.pos, "factorial is not available in standard mode")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr = &FactorialExpr{Operand: expr}
	}
	return expr, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.current.typ {
	case tokenNumber:
		lit := &NumberLit{Value: p.current.numVal}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return lit, nil
	case tokenIdent:
		return p.parseIdent()
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
		return expr, nil
	case tokenEOF:
		return nil, parseErrf(p.current.pos, "unexpected end of expression")
	default:
		return nil, parseErrf(p.current.pos, "unexpected token %q", p.current.text)
	}
}

func (p *parser) parseIdent() (Expr, error) {
	name := strings.ToLower(p.current.text)
	pos := p.current.pos

	if p.peek.typ == tokenLParen {
		return p.parseCall(name, pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if isConstant(name) {
		if p.mode == model.ModeStandard {
			return nil, parseErrf(pos, "constant %q is not available in standard mode", name)
		}
		return &ConstRef{Name: name}, nil
	}
	if name == "x" && p.mode == model.ModeGraphing {
		return &VarRef{Name: name}, nil
	}
	return nil, parseErrf(pos, "unknown identifier %q", name)
}

func (p *parser) parseCall(name string, pos int) (Expr, error) {
	spec, ok := lookupFunction(name, p.mode)
	if !ok {
		return nil, parseErrf(pos, "unknown function %q", name)
	}
	if err := p.advance(); err != nil { // function name
		return nil, err
	}
	if err := p.advance(); err != nil { // opening paren
		return nil, err
	}

	var args []Expr
	if p.current.typ != tokenRParen {
		for {
			arg, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current.typ != tokenComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(tokenRParen, `")"`); err != nil {
		return nil, err
	}
	if len(args) < spec.minArity {
		return nil, parseErrf(pos, "%s expects at least %d argument(s), got %d", name, spec.minArity, len(args))
	}
	if spec.maxArity >= 0 && len(args) > spec.maxArity {
		return nil, parseErrf(pos, "%s expects at most %d argument(s), got %d", name, spec.maxArity, len(args))
	}
	return &CallExpr{Name: name, Args: args}, nil
}

// Programmer grammar, lowest to highest precedence:
// |, ^(xor), &, shifts, additive, multiplicative, unary, primary.

func (p *parser) parseBitOr() (Expr, error) {
	return p.parseBinaryLevel(p.parseBitXor, tokenPipe)
}

func (p *parser) parseBitXor() (Expr, error) {
	return p.parseBinaryLevel(p.parseBitAnd, tokenCaret)
}

func (p *parser) parseBitAnd() (Expr, error) {
	return p.parseBinaryLevel(p.parseShift, tokenAmp)
}

func (p *parser) parseShift() (Expr, error) {
	return p.parseBinaryLevel(p.parseIntAdditive, tokenShiftL, tokenShiftR)
}

func (p *parser) parseIntAdditive() (Expr, error) {
	return p.parseBinaryLevel(p.parseIntMultiplicative, tokenPlus, tokenMinus)
}

func (p *parser) parseIntMultiplicative() (Expr, error) {
	return p.parseBinaryLevel(p.parseIntUnary, tokenStar, tokenSlash, tokenPercent)
}

func (p *parser) parseBinaryLevel(next func() (Expr, error), ops ...tokenType) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for matchesOp(p.current.typ, ops) {
		op := p.current.typ
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func matchesOp(t tokenType, ops []tokenType) bool {
	for _, op := range ops {
		if t == op {
			return true
		}
	}
	return false
}

func (p *parser) parseIntUnary() (Expr, error) {
	switch p.current.typ {
	case tokenMinus, tokenTilde:
		op := p.current.typ
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseIntUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, nil
	case tokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseIntUnary()
	}
	return p.parseIntPrimary()
}

func (p *parser) parseIntPrimary() (Expr, error) {
	switch p.current.typ {
	case tokenNumber:
		lit := &NumberLit{Bits: p.current.intVal}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return lit, nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
		return expr, nil
	case tokenEOF:
		return nil, parseErrf(p.current.pos, "unexpected end of expression")
	default:
		return nil, parseErrf(p.current.pos, "unexpected token %q", p.current.text)
	}
}
