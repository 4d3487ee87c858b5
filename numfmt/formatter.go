package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// ErrInvalidFormat wraps every error reported while parsing a format string.
var ErrInvalidFormat = errors.New("numfmt: invalid format")

// ErrValueKind is returned by the renderer when a value cannot be shown by
// the selected section, e.g. text in a number section.
var ErrValueKind = errors.New("numfmt: value kind does not fit section")

var errNotFinite = errors.New("numfmt: value is not finite")

// render formats v with section s.  An error means the caller should fall
// back to the compatibility conversion.
func render(v Value, s *Section, c *culture.Culture, date1904 bool) (string, error) {
	switch s.Type {
	case SectionNumber, SectionExponential, SectionFraction:
		f, err := numericValue(v)
		if err != nil {
			return "", err
		}
		if s.hidesSign() {
			f = math.Abs(f)
		}
		var b strings.Builder
		switch s.Type {
		case SectionNumber:
			err = formatNumber(&b, f, s.Number, c)
		case SectionExponential:
			err = formatExponential(&b, f, s.Exponential, c)
		default:
			err = formatFraction(&b, f, s.Fraction, c)
		}
		if err != nil {
			return "", err
		}
		return b.String(), nil

	case SectionDate:
		return formatDate(v, s, c, date1904)

	case SectionDuration:
		return formatDuration(v, s)

	case SectionGeneral, SectionText:
		if s.hidesSign() && v.kind == KindNumber && v.num < 0 {
			v = negate(v)
		}
		return formatGeneralText(compatString(v, c), s.Parts), nil
	}
	panic(fmt.Sprintf("numfmt: unknown section type %v", s.Type))
}

func numericValue(v Value) (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: %v", ErrValueKind, v.kind)
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return 0, errNotFinite
	}
	return v.num, nil
}

func negate(v Value) Value {
	v.num = -v.num
	v.i = -v.i
	return v
}

func formatGeneralText(text string, tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tokenizer.IsGeneral(tok) || tok == "@" {
			b.WriteString(text)
		} else {
			writeLiteral(&b, tok)
		}
	}
	return b.String()
}

// writeLiteral renders a literal token.  A bare comma is a scaling or
// grouping signal and prints nothing.
func writeLiteral(b *strings.Builder, tok string) {
	switch {
	case tok == ",":
	case strings.HasPrefix(tok, `"`):
		b.WriteString(tok[1 : len(tok)-1])
	case len(tok) > 1 && (tok[0] == '*' || tok[0] == '\\'):
		b.WriteString(tok[1:])
	case len(tok) > 1 && tok[0] == '_':
		b.WriteByte(' ')
	default:
		b.WriteString(tok)
	}
}

func writeLiterals(b *strings.Builder, tokens []string) {
	for _, tok := range tokens {
		writeLiteral(b, tok)
	}
}
