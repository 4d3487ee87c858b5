package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// excelPrecision is the number of significant digits Excel keeps.
const excelPrecision = 15

func formatNumber(b *strings.Builder, f float64, d *DecimalSection, c *culture.Culture) error {
	f = f / d.ThousandDivisor * d.PercentMultiplier
	// A percent sign can push values near the float64 limit to infinity.
	if math.IsInf(f, 0) {
		return errNotFinite
	}
	writeNumber(b, f, d.BeforeDecimal, d.DecimalSeparator, d.AfterDecimal, d.ThousandSeparator, c)
	return nil
}

// writeNumber lays out |f| against the integer and fractional placeholder
// runs, preceded by a minus sign when f is negative.
func writeNumber(b *strings.Builder, f float64, before []string, sep bool, after []string, thousands bool, c *culture.Culture) {
	fixed := roundFixed(f, tokenizer.DigitCount(after))
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	if f < 0 {
		b.WriteByte('-')
	}
	writeIntegerDigits(b, intPart, thousands, false, before, c)
	if sep {
		b.WriteString(c.DecimalSeparator)
	}
	writeDecimalDigits(b, fracPart, after)
}

// roundFixed renders |f| with exactly places decimals.  Rounding is half
// away from zero on the shortest decimal form of f, after first cutting it
// to Excel's 15 significant digits.
func roundFixed(f float64, places int) string {
	d := decimal.NewFromFloat(math.Abs(f))
	if n := d.NumDigits(); n > excelPrecision {
		d = d.Round(int32(excelPrecision-n) - d.Exponent())
	}
	return d.StringFixed(int32(places))
}

// writeIntegerDigits right-aligns digits against tokens.  Digits beyond the
// placeholder count are printed before the first placeholder.  With
// significantZero a lone zero counts as significant so that # prints "0".
func writeIntegerDigits(b *strings.Builder, digits string, thousands, significantZero bool, tokens []string, c *culture.Culture) {
	formatDigits := tokenizer.DigitCount(tokens)
	if pad := formatDigits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	if formatDigits == 0 && digits == "0" && !significantZero {
		// ".00" shows 0.5 as ".50".
		digits = ""
	}

	i := 0
	for ; i < len(tokens) && !tokenizer.IsPlaceholder(tokens[i]); i++ {
		writeLiteral(b, tokens[i])
	}

	significant := false
	pos := 0
	for ; pos < len(digits)-formatDigits; pos++ {
		significant = true
		b.WriteByte(digits[pos])
		if thousands {
			writeGroupSeparator(b, digits, pos, c)
		}
	}

	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if !tokenizer.IsPlaceholder(tok) {
			writeLiteral(b, tok)
			continue
		}
		d := digits[pos]
		if d != '0' || (significantZero && pos == len(digits)-1) {
			significant = true
		}
		writePlaceholder(b, tok, d, significant)
		if thousands && (significant || tok == "0") {
			writeGroupSeparator(b, digits, pos, c)
		}
		pos++
	}
}

func writeGroupSeparator(b *strings.Builder, digits string, pos int, c *culture.Culture) {
	place := len(digits) - 1 - pos
	if place > 0 && place%3 == 0 {
		b.WriteString(c.GroupSeparator)
	}
}

// writeDecimalDigits left-aligns digits against tokens.  Placeholders past
// the last significant digit print as their padding form.
func writeDecimalDigits(b *strings.Builder, digits string, tokens []string) {
	pos := 0
	for _, tok := range tokens {
		if !tokenizer.IsPlaceholder(tok) {
			writeLiteral(b, tok)
			continue
		}
		if pos < len(digits) {
			writePlaceholder(b, tok, digits[pos], true)
		} else {
			writePlaceholder(b, tok, '0', false)
		}
		pos++
	}
}

// writePlaceholder prints digit for a significant position.  Otherwise 0
// pads with a zero, ? with a space and # with nothing.
func writePlaceholder(b *strings.Builder, tok string, digit byte, significant bool) {
	if significant {
		b.WriteByte(digit)
		return
	}
	switch tok {
	case "0":
		b.WriteByte('0')
	case "?":
		b.WriteByte(' ')
	}
}
