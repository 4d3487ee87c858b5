package numfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// maxDenominatorDigits bounds the continued-fraction search.
const maxDenominatorDigits = 7

// errFractionOverflow reports a fraction whose numerator does not fit in an
// int64.  The value then renders through the compatibility conversion.
var errFractionOverflow = errors.New("numfmt: fraction out of range")

// maxNumerator is 2^63, the first float64 that does not fit in an int64.
const maxNumerator = float64(math.MaxInt64)

func formatFraction(b *strings.Builder, f float64, fs *FractionSection, c *culture.Culture) error {
	negative := f < 0
	a := math.Abs(f)

	var integral float64
	if fs.IntegerPart != nil {
		integral = math.Trunc(a)
		a -= integral
	}

	var numerator, denominator int64
	if fs.DenominatorConstant != 0 {
		// Without an integer part the numerator may exceed the denominator
		// ("?/4" shows 1.5 as 6/4), which is how Excel renders it.
		denominator = int64(fs.DenominatorConstant)
		n := math.Round(a * float64(denominator))
		if n >= maxNumerator {
			return errFractionOverflow
		}
		numerator = int64(n)
	} else {
		digits := min(tokenizer.DigitCount(fs.Denominator), maxDenominatorDigits)
		var ok bool
		numerator, denominator, ok = approximate(a, int64(math.Pow10(digits))-1)
		if !ok {
			return errFractionOverflow
		}
	}
	if fs.IntegerPart != nil && numerator >= denominator {
		integral += float64(numerator / denominator)
		numerator %= denominator
	}

	if negative {
		b.WriteByte('-')
	}
	if fs.IntegerPart != nil {
		writeIntegerDigits(b, strconv.FormatFloat(integral, 'f', 0, 64), false, true, fs.IntegerPart, c)
	}

	var frac strings.Builder
	writeIntegerDigits(&frac, strconv.FormatInt(numerator, 10), false, true, fs.Numerator, c)
	frac.WriteByte('/')
	writeLiterals(&frac, fs.DenominatorPrefix)
	if fs.DenominatorConstant != 0 {
		frac.WriteString(strconv.Itoa(fs.DenominatorConstant))
	} else {
		writeDenominator(&frac, strconv.FormatInt(denominator, 10), fs.Denominator)
	}
	writeLiterals(&frac, fs.DenominatorSuffix)

	// A zero fraction next to an integer part is blanked, keeping its width
	// so fractions stay aligned in a column.
	if fs.IntegerPart != nil && numerator == 0 && tokenizer.ZeroCount(fs.Numerator) == 0 {
		b.WriteString(strings.Repeat(" ", utf8.RuneCountInString(frac.String())))
	} else {
		b.WriteString(frac.String())
	}
	writeLiterals(b, fs.FractionSuffix)
	return nil
}

// writeDenominator left-aligns digits against tokens.  Placeholders past the
// last digit pad with spaces, except # which prints nothing.
func writeDenominator(b *strings.Builder, digits string, tokens []string) {
	pos := 0
	for _, tok := range tokens {
		if !tokenizer.IsPlaceholder(tok) {
			writeLiteral(b, tok)
			continue
		}
		switch {
		case pos < len(digits):
			b.WriteByte(digits[pos])
		case tok != "#":
			b.WriteByte(' ')
		}
		pos++
	}
}

// approximate returns the best rational approximation p/q of x ≥ 0 with
// q ≤ maxDen, by continued-fraction expansion.  ok is false when p does not
// fit in an int64.
func approximate(x float64, maxDen int64) (int64, int64, bool) {
	bound := float64(maxDen)
	var (
		p2, p1, p = 0.0, 1.0, 0.0
		q2, q1, q = 1.0, 0.0, 0.0
		r         = x
	)
	for q1 < bound {
		a := math.Floor(r)
		p = a*p1 + p2
		q = a*q1 + q2
		if r-a < 5e-8 {
			break
		}
		r = 1 / (r - a)
		p2, p1 = p1, p
		q2, q1 = q1, q
	}
	if q > bound {
		if q1 > bound {
			p, q = p2, q2
		} else {
			p, q = p1, q1
		}
	}
	if p >= maxNumerator {
		return 0, 0, false
	}
	return int64(p), int64(q), true
}
