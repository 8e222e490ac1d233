// format.go
//
// Rendering of evaluation results. All four formats are pure functions of
// (value, mode); the Session only contributes which mode is active when
// FormatResult runs.

package termcalc

import (
	"math"
	"strconv"
	"strings"
)

// OutputFormat selects how a result is rendered.
type OutputFormat int

const (
	FormatDec OutputFormat = iota
	FormatHex
	FormatBin
	FormatOct
)

// Integral values at or above this magnitude render in scientific
// notation; below it they print with no decimals.
const decIntLimit = 1e15

// Format renders v under mode. ok is false for NaN: callers print nothing
// and treat the evaluation as failed.
//
// Hex digits are uppercase after the lowercase 0x prefix. Binary prints
// the minimal bit pattern, a single 0 for zero. Decimal prints integral
// values plain and everything else with 12 significant digits, letting
// strconv pick fixed or exponent form.
func Format(v float64, mode OutputFormat) (string, bool) {
	if math.IsNaN(v) {
		return "", false
	}
	switch mode {
	case FormatHex:
		return "0x" + strings.ToUpper(strconv.FormatUint(truncWord(v), 16)), true
	case FormatBin:
		return "0b" + strconv.FormatUint(truncWord(v), 2), true
	case FormatOct:
		return "0o" + strconv.FormatUint(truncWord(v), 8), true
	default:
		if math.Abs(v) < decIntLimit && v == math.Floor(v) {
			return strconv.FormatFloat(v, 'f', 0, 64), true
		}
		return strconv.FormatFloat(v, 'g', 12, 64), true
	}
}
