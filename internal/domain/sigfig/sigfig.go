// Package sigfig renders (value, uncertainty) pairs as matched-precision
// display strings: the value is quoted to the precision of its own error,
// the usual physics convention for chart labels.
package sigfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// defaultSigDigits is the number of significant figures used for renderings.
const defaultSigDigits = 3

// Match returns display strings for value and uncertainty such that the
// value's decimal precision follows the uncertainty's leading significant
// digits.
//
// A zero uncertainty is a defined branch, not an error: the value falls back
// to the large/small-magnitude rendering and the uncertainty displays as "0".
// When the uncertainty itself needs exponential notation, both numbers are
// formatted independently and no precision matching is attempted.
func Match(value, uncertainty float64) (valueStr, uncertaintyStr string) {
	if uncertainty == 0 {
		return Latex(value), "0"
	}

	if usesExponent(uncertainty, defaultSigDigits) {
		return Latex(value), Latex(uncertainty)
	}

	uStr := formatSig(uncertainty, defaultSigDigits)

	if dot := strings.IndexByte(uStr, '.'); dot >= 0 {
		// Match the number of digits after the uncertainty's decimal point.
		decimals := len(uStr) - dot - 1
		return strconv.FormatFloat(value, 'f', decimals, 64), uStr
	}

	// Integer-magnitude uncertainty: match significant figures instead of
	// decimal places, keeping the value in plain (non-exponential) form.
	return plainSigFigs(value, len(uStr)), uStr
}

// Latex renders v to three significant figures; when that would need
// exponential notation it re-expresses the number as mantissa×10^exponent,
// ready for chart labels.
func Latex(v float64) string {
	return LatexDigits(v, defaultSigDigits)
}

// LatexDigits is Latex with an explicit significant-figure count.
func LatexDigits(v float64, sigDigits int) string {
	if sigDigits <= 0 {
		sigDigits = defaultSigDigits
	}

	if !usesExponent(v, sigDigits) {
		return formatSig(v, sigDigits)
	}

	exponent := int(math.Floor(math.Log10(math.Abs(v))))
	mantissa := v / math.Pow(10, float64(exponent))
	return fmt.Sprintf("%.*f×10^%d", sigDigits-1, mantissa, exponent)
}

// formatSig renders v with at most sig significant figures, trailing zeros
// removed, choosing exponential form by the usual %g rule.
func formatSig(v float64, sig int) string {
	return strconv.FormatFloat(v, 'g', sig, 64)
}

// usesExponent reports whether a sig-figure %g rendering of v would pick
// exponential form. The decision is made numerically from the decimal
// exponent of the rounded value rather than by inspecting a rendered string.
func usesExponent(v float64, sig int) bool {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}

	exp := int(math.Floor(math.Log10(math.Abs(v))))

	// Rounding to sig figures can push the mantissa to 10.0 and bump the
	// exponent (e.g. 999.9 at three figures becomes 1e+03).
	mantissa := math.Abs(v) / math.Pow(10, float64(exp))
	scale := math.Pow(10, float64(sig-1))
	if math.Round(mantissa*scale)/scale >= 10 {
		exp++
	}

	return exp < -4 || exp >= sig
}

// plainSigFigs rounds v to n significant figures and renders it in plain
// fixed-point form, never exponential: (12345, 3) yields "12300".
func plainSigFigs(v float64, n int) string {
	if v == 0 {
		return "0"
	}
	if n <= 0 {
		n = defaultSigDigits
	}

	exp := int(math.Floor(math.Log10(math.Abs(v))))
	scale := math.Pow(10, float64(exp-n+1))
	rounded := math.Round(v/scale) * scale

	decimals := n - 1 - exp
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(rounded, 'f', decimals, 64)
}
