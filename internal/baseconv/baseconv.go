// Package baseconv converts programmer-mode integers between bases and
// implements fixed-width two's-complement arithmetic.
//
// Values are stored as uint64 bit patterns masked to the active word
// size. Arithmetic wraps modulo 2^width. Decimal rendering interprets
// the pattern as a signed two's-complement value; binary, octal, and
// hex rendering show the raw masked pattern.
package baseconv

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported numeral bases.
var Bases = []int{2, 8, 10, 16}

// Supported word sizes in bits.
var WordSizes = []int{8, 16, 32, 64}

// ValidBase reports whether b is a supported numeral base.
func ValidBase(b int) bool {
	return b == 2 || b == 8 || b == 10 || b == 16
}

// ValidWordSize reports whether bits is a supported word size.
func ValidWordSize(bits int) bool {
	return bits == 8 || bits == 16 || bits == 32 || bits == 64
}

// Mask returns the bit mask for a word size.
func Mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

// Wrap reduces a bit pattern to the word size.
func Wrap(v uint64, bits int) uint64 {
	return v & Mask(bits)
}

// WrapSigned converts a signed value into its width-masked pattern.
func WrapSigned(v int64, bits int) uint64 {
	return Wrap(uint64(v), bits)
}

// Signed interprets a width-masked pattern as two's complement.
func Signed(v uint64, bits int) int64 {
	v = Wrap(v, bits)
	if bits >= 64 {
		return int64(v)
	}
	sign := uint64(1) << uint(bits-1)
	if v&sign == 0 {
		return int64(v)
	}
	return int64(v) - int64(uint64(1)<<uint(bits))
}

// Format renders a width-masked pattern in the given base with the
// conventional prefix (0b/0o/0x); decimal is signed and unprefixed.
func Format(v uint64, base, bits int) string {
	v = Wrap(v, bits)
	switch base {
	case 2:
		return "0b" + strconv.FormatUint(v, 2)
	case 8:
		return "0o" + strconv.FormatUint(v, 8)
	case 16:
		return "0x" + strconv.FormatUint(v, 16)
	default:
		return strconv.FormatInt(Signed(v, bits), 10)
	}
}

// Parse reads an integer in the given base, accepting an optional
// matching prefix and, for decimal, a leading minus sign. The result is
// masked to the word size.
func Parse(s string, base, bits int) (uint64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	negative := false
	if base == 10 && strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	switch base {
	case 2:
		s = strings.TrimPrefix(s, "0b")
	case 8:
		s = strings.TrimPrefix(s, "0o")
	case 16:
		s = strings.TrimPrefix(s, "0x")
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed base-%d number %q", base, s)
	}
	if negative {
		return WrapSigned(-int64(v), bits), nil
	}
	return Wrap(v, bits), nil
}

// Convert re-renders a number from one base to another under the same
// word size.
func Convert(s string, fromBase, toBase, bits int) (string, error) {
	v, err := Parse(s, fromBase, bits)
	if err != nil {
		return "", err
	}
	return Format(v, toBase, bits), nil
}

// Add returns a+b wrapped to the word size.
func Add(a, b uint64, bits int) uint64 { return Wrap(a+b, bits) }

// Sub returns a-b wrapped to the word size.
func Sub(a, b uint64, bits int) uint64 { return Wrap(a-b, bits) }

// Mul returns a*b wrapped to the word size.
func Mul(a, b uint64, bits int) uint64 { return Wrap(a*b, bits) }

// Not returns the bitwise complement within the word size.
func Not(a uint64, bits int) uint64 { return Wrap(^a, bits) }

// Neg returns the two's-complement negation within the word size.
func Neg(a uint64, bits int) uint64 { return Wrap(^a+1, bits) }

// ShiftLeft shifts within the word size; shifts of width or more
// produce zero rather than platform-defined behavior.
func ShiftLeft(a, n uint64, bits int) uint64 {
	if n >= uint64(bits) {
		return 0
	}
	return Wrap(a<<n, bits)
}

// ShiftRight is a logical right shift over the masked pattern.
func ShiftRight(a, n uint64, bits int) uint64 {
	if n >= uint64(bits) {
		return 0
	}
	return Wrap(a, bits) >> n
}
