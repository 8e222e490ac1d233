// builtins.go
//
// The function registry: one static name→descriptor map built at package
// init, dispatched by exact name and arity. Format setters are the only
// builtins that touch the Session; everything else is a pure function of
// its arguments.

package termcalc

import (
	"math"
	"math/bits"
	"strings"
)

// builtin is one registry entry. arity is 1 or 2; fn receives exactly that
// many arguments.
type builtin struct {
	arity int
	fn    func(s *Session, args []float64) float64
}

var builtins = map[string]builtin{}

func init() {
	registerMathBuiltins(builtins)
	registerBitBuiltins(builtins)
	registerFormatBuiltins(builtins)
	registerUnitBuiltins(builtins)
	registerBinaryBuiltins(builtins)
}

func unary(fn func(float64) float64) builtin {
	return builtin{arity: 1, fn: func(_ *Session, args []float64) float64 {
		return fn(args[0])
	}}
}

func binary(fn func(a, b float64) float64) builtin {
	return builtin{arity: 2, fn: func(_ *Session, args []float64) float64 {
		return fn(args[0], args[1])
	}}
}

// formatSetter returns its argument unchanged after switching the active
// output format, so hex(expr) both computes and tags the display in one
// call.
func formatSetter(mode OutputFormat) builtin {
	return builtin{arity: 1, fn: func(s *Session, args []float64) float64 {
		s.format = mode
		return args[0]
	}}
}

func registerMathBuiltins(reg map[string]builtin) {
	reg["sin"] = unary(math.Sin)
	reg["cos"] = unary(math.Cos)
	reg["tan"] = unary(math.Tan)
	reg["asin"] = unary(math.Asin)
	reg["acos"] = unary(math.Acos)
	reg["atan"] = unary(math.Atan)
	reg["sinh"] = unary(math.Sinh)
	reg["cosh"] = unary(math.Cosh)
	reg["tanh"] = unary(math.Tanh)
	reg["exp"] = unary(math.Exp)
	reg["log"] = unary(math.Log) // natural log, same as ln
	reg["ln"] = unary(math.Log)
	reg["log10"] = unary(math.Log10)
	reg["log2"] = unary(math.Log2)
	reg["sqrt"] = unary(math.Sqrt)
	reg["cbrt"] = unary(math.Cbrt)
	reg["abs"] = unary(math.Abs)
	reg["floor"] = unary(math.Floor)
	reg["ceil"] = unary(math.Ceil)
	reg["round"] = unary(math.Round)
}

func registerBitBuiltins(reg map[string]builtin) {
	reg["bnot"] = unary(bitNot)
	reg["not8"] = unary(notMask(8))
	reg["not16"] = unary(notMask(16))
	reg["not32"] = unary(notMask(32))
	reg["popcount"] = unary(wordCount(bits.OnesCount64))
	reg["clz"] = unary(wordCount(bits.LeadingZeros64))
	reg["ctz"] = unary(wordCount(bits.TrailingZeros64))
}

// notMask complements within the low n bits: not8(0xF0) is 0x0F.
func notMask(n uint) func(float64) float64 {
	mask := uint64(1)<<n - 1
	return func(v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		return float64(^truncWord(v) & mask)
	}
}

// wordCount lifts a bit-counting function onto float64. LeadingZeros64 and
// TrailingZeros64 both report 64 for zero, which is exactly the contract
// for clz(0) and ctz(0).
func wordCount(fn func(uint64) int) func(float64) float64 {
	return func(v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		return float64(fn(truncWord(v)))
	}
}

func registerFormatBuiltins(reg map[string]builtin) {
	reg["hex"] = formatSetter(FormatHex)
	reg["bin"] = formatSetter(FormatBin)
	reg["oct"] = formatSetter(FormatOct)
	reg["dec"] = formatSetter(FormatDec)
}

// registerUnitBuiltins registers the to-unit converters under both
// spellings: toKiB and tokib divide by 1024 alike.
func registerUnitBuiltins(reg map[string]builtin) {
	for _, u := range byteUnits {
		unit := u.val
		conv := unary(func(v float64) float64 { return v / unit })
		reg["to"+u.name] = conv
		reg["to"+strings.ToLower(u.name)] = conv
	}
}

func registerBinaryBuiltins(reg map[string]builtin) {
	reg["bxor"] = binary(bitXor)
	reg["band"] = binary(bitAnd)
	reg["bor"] = binary(bitOr)
	reg["shl"] = binary(shiftLeft)
	reg["shr"] = binary(shiftRight)
	reg["pow"] = binary(math.Pow)
	reg["mod"] = binary(math.Mod)
	reg["atan2"] = binary(math.Atan2)
	// Max and Min let NaN through rather than discarding it the way fmax
	// does; a failed lookup inside max() must still fail the expression.
	reg["max"] = binary(math.Max)
	reg["min"] = binary(math.Min)
}
