package engine

import (
	"math"
	"strconv"
)

// DefaultPrecision is the significant-digit count for float display.
const DefaultPrecision = 12

// FormatFloat renders a float the way the calculator displays it:
// integers without a decimal point, everything else in %g form with the
// given number of significant digits.
func FormatFloat(v float64, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
