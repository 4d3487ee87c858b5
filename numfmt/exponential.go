package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// formatExponential renders f in scientific notation.  The exponent is kept
// a multiple of the number of integer placeholders in the mantissa, so
// "##0.0E+0" produces engineering notation.
func formatExponential(b *strings.Builder, f float64, e *ExponentialSection, c *culture.Culture) error {
	base := tokenizer.DigitCount(e.BeforeDecimal)
	mantissa, exponent := splitExponent(f, base)
	if math.IsNaN(mantissa) || math.IsInf(mantissa, 0) {
		return errNotFinite
	}

	// Rounding may carry the mantissa into the next power of ten.
	places := int32(tokenizer.DigitCount(e.AfterDecimal))
	limit := decimal.New(1, int32(base))
	if decimal.NewFromFloat(math.Abs(mantissa)).Round(places).GreaterThanOrEqual(limit) && f != 0 {
		step := max(base, 1)
		mantissa = scale(mantissa, step)
		exponent += step
	}

	writeNumber(b, mantissa, e.BeforeDecimal, e.DecimalSeparator, e.AfterDecimal, false, c)

	b.WriteByte(e.ExponentialToken[0])
	switch {
	case exponent < 0:
		b.WriteByte('-')
	case e.ExponentialToken[1] == '+':
		b.WriteByte('+')
	}
	writeIntegerDigits(b, strconv.Itoa(abs(exponent)), false, true, e.Power, c)
	return nil
}

// splitExponent returns mantissa and exponent with f = mantissa·10^exponent.
// With base integer placeholders the mantissa has base integer digits,
// shifted so the exponent is a multiple of base.  With none the mantissa is
// below one.
func splitExponent(f float64, base int) (float64, int) {
	if f == 0 {
		return 0, 0
	}
	a := math.Abs(f)
	exponent := int(math.Floor(math.Log10(a)))
	// Log10 is not exact near powers of ten.
	if m := scale(a, exponent); m >= 10 {
		exponent++
	} else if m < 1 {
		exponent--
	}

	if base == 0 {
		exponent++
	} else if shift := abs(exponent) % base; shift > 0 {
		if exponent < 0 {
			shift = base - shift
		}
		exponent -= shift
	}
	return scale(f, exponent), exponent
}

// scale returns f/10^exp, multiplying by an exact power of ten when exp is
// negative.  Subnormal inputs need shifts past 10^308, which Pow10 cannot
// represent, so those are applied in two steps.
func scale(f float64, exp int) float64 {
	switch {
	case exp < -maxPow10:
		return f * math.Pow10(maxPow10) * math.Pow10(-exp-maxPow10)
	case exp < 0:
		return f * math.Pow10(-exp)
	case exp > maxPow10:
		return f / math.Pow10(maxPow10) / math.Pow10(exp-maxPow10)
	}
	return f / math.Pow10(exp)
}

// maxPow10 is the largest n for which math.Pow10(n) is finite.
const maxPow10 = 308

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
