package engine

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenCaret
	tokenBang
	tokenAmp
	tokenPipe
	tokenTilde
	tokenShiftL
	tokenShiftR
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	typ    tokenType
	text   string
	pos    int
	numVal float64
	intVal uint64
}

// lexer tokenizes a single expression. Integer mode makes literals parse
// in the active base and keeps letters A-F available as hex digits.
type lexer struct {
	input   string
	pos     int
	char    byte
	integer bool
	base    int
}

func newLexer(input string, integer bool, base int) *lexer {
	l := &lexer{input: input, integer: integer, base: base}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.pos >= len(l.input) {
		l.char = 0
	} else {
		l.char = l.input[l.pos]
	}
	l.pos++
}

func (l *lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) skipWhitespace() {
	for l.char == ' ' || l.char == '\t' {
		l.readChar()
	}
}

func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	start := l.pos - 1

	simple := func(t tokenType, text string) (token, error) {
		l.readChar()
		return token{typ: t, text: text, pos: start}, nil
	}

	switch l.char {
	case 0:
		return token{typ: tokenEOF, pos: start}, nil
	case '+':
		return simple(tokenPlus, "+")
	case '-':
		return simple(tokenMinus, "-")
	case '*':
		return simple(tokenStar, "*")
	case '/':
		return simple(tokenSlash, "/")
	case '%':
		return simple(tokenPercent, "%")
	case '^':
		return simple(tokenCaret, "^")
	case '!':
		return simple(tokenBang, "!")
	case '&':
		return simple(tokenAmp, "&")
	case '|':
		return simple(tokenPipe, "|")
	case '~':
		return simple(tokenTilde, "~")
	case '(':
		return simple(tokenLParen, "(")
	case ')':
		return simple(tokenRParen, ")")
	case ',':
		return simple(tokenComma, ",")
	case '<':
		if l.peekChar() == '<' {
			l.readChar()
			l.readChar()
			return token{typ: tokenShiftL, text: "<<", pos: start}, nil
		}
		return token{}, parseErrf(start, "unknown token %q", string(l.char))
	case '>':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return token{typ: tokenShiftR, text: ">>", pos: start}, nil
		}
		return token{}, parseErrf(start, "unknown token %q", string(l.char))
	}

	if l.integer {
		if isBaseDigitStart(l.char) {
			return l.readIntLiteral(start)
		}
		return token{}, parseErrf(start, "unknown token %q", string(l.char))
	}

	if isDigit(l.char) || (l.char == '.' && isDigit(l.peekChar())) {
		return l.readFloatLiteral(start)
	}
	if isIdentStart(l.char) {
		return l.readIdent(start), nil
	}
	return token{}, parseErrf(start, "unknown token %q", string(l.char))
}

func (l *lexer) readFloatLiteral(start int) (token, error) {
	for isDigit(l.char) {
		l.readChar()
	}
	if l.char == '.' {
		l.readChar()
		for isDigit(l.char) {
			l.readChar()
		}
	}
	// Exponent notation: 2e3, 1.5E-2. A bare trailing e stays an
	// identifier boundary so "2*e" still means the constant.
	if l.char == 'e' || l.char == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && l.pos+1 <= len(l.input)) {
			mark := l.pos
			l.readChar()
			if l.char == '+' || l.char == '-' {
				l.readChar()
			}
			if !isDigit(l.char) {
				l.pos = mark
				l.char = l.input[l.pos-1]
			} else {
				for isDigit(l.char) {
					l.readChar()
				}
			}
		}
	}
	text := l.input[start : l.pos-1]
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, parseErrf(start, "malformed number %q", text)
	}
	return token{typ: tokenNumber, text: text, pos: start, numVal: val}, nil
}

// readIntLiteral parses a literal in the active base, or in an explicit
// base given by a 0x/0o/0b prefix.
func (l *lexer) readIntLiteral(start int) (token, error) {
	base := l.base
	if l.char == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			base = 16
			l.readChar()
			l.readChar()
		case 'o', 'O':
			base = 8
			l.readChar()
			l.readChar()
		case 'b', 'B':
			// In hex, 0b1 is a valid plain literal; the prefix form
			// only applies in the other bases.
			if l.base != 16 {
				base = 2
				l.readChar()
				l.readChar()
			}
		}
	}
	digitStart := l.pos - 1
	for isBaseDigitStart(l.char) {
		l.readChar()
	}
	text := l.input[digitStart : l.pos-1]
	if text == "" {
		return token{}, parseErrf(start, "malformed number %q", l.input[start:l.pos-1])
	}
	val, err := strconv.ParseUint(strings.ToLower(text), base, 64)
	if err != nil {
		return token{}, parseErrf(start, "malformed base-%d number %q", base, text)
	}
	return token{typ: tokenNumber, text: l.input[start : l.pos-1], pos: start, intVal: val}, nil
}

func (l *lexer) readIdent(start int) token {
	for isIdentStart(l.char) || isDigit(l.char) {
		l.readChar()
	}
	text := l.input[start : l.pos-1]
	return token{typ: tokenIdent, text: text, pos: start}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isBaseDigitStart accepts any digit valid in some supported base; the
// literal parser rejects digits invalid for the active base.
func isBaseDigitStart(c byte) bool {
	if isDigit(c) {
		return true
	}
	lower := byte(unicode.ToLower(rune(c)))
	return lower >= 'a' && lower <= 'f'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
