package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// IsPlaceholder reports whether tok is one of the digit placeholders 0, # or ?.
func IsPlaceholder(tok string) bool {
	return tok == "0" || tok == "#" || tok == "?"
}

// IsDigit19 reports whether tok is a single digit 1–9.
func IsDigit19(tok string) bool {
	return len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9'
}

// IsDigit09 reports whether tok is a single digit 0–9.
func IsDigit09(tok string) bool {
	return tok == "0" || IsDigit19(tok)
}

// IsExponent reports whether tok is E+, E-, e+ or e-.
func IsExponent(tok string) bool {
	return len(tok) == 2 && (tok[0] == 'E' || tok[0] == 'e') && (tok[1] == '+' || tok[1] == '-')
}

// IsGeneral reports whether tok is the General keyword.
func IsGeneral(tok string) bool {
	return strings.EqualFold(tok, "General")
}

// IsAmPm reports whether tok is am/pm or a/p in any casing.
func IsAmPm(tok string) bool {
	return strings.EqualFold(tok, "am/pm") || strings.EqualFold(tok, "a/p")
}

// IsDurationPart reports whether tok is a bracketed elapsed-time code such as
// [h], [hh], [mm] or [ss].
func IsDurationPart(tok string) bool {
	if len(tok) < 3 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return false
	}
	inner := strings.ToLower(tok[1 : len(tok)-1])
	switch inner[0] {
	case 'h', 'm', 's':
	default:
		return false
	}
	return strings.Count(inner, inner[:1]) == len(inner)
}

// IsDatePart reports whether tok is a date or time code: a y, m, d, h, s or g
// run, am/pm, a/p, or a bracketed duration code.
func IsDatePart(tok string) bool {
	if tok == "" {
		return false
	}
	switch toLower(tok[0]) {
	case 'y', 'm', 'd', 'h', 's':
		return true
	case 'g':
		return !IsGeneral(tok)
	}
	return IsAmPm(tok) || IsDurationPart(tok)
}

// IsFractionalSeconds reports whether tok is a merged fractional-seconds code
// such as .0, .00 or .000.
func IsFractionalSeconds(tok string) bool {
	return len(tok) > 1 && tok[0] == '.' && strings.Count(tok[1:], "0") == len(tok)-1
}

// IsLiteral reports whether tok renders as literal text: quoted strings,
// escapes, fill and spacer codes, and any single character that has no
// structural meaning.  Commas and percent signs count as literals here; the
// parser consumes them as scaling signals.
func IsLiteral(tok string) bool {
	if tok == "" {
		return false
	}
	switch tok[0] {
	case '"', '\\', '*', '_':
		return len(tok) > 1
	case '[':
		return false
	}
	if utf8.RuneCountInString(tok) != 1 {
		return false
	}
	switch tok {
	case "0", "#", "?", ".", "/", "@", SectionSeparator:
		return false
	}
	return !IsDatePart(tok)
}

// IsNumberLiteral reports whether tok may appear in a plain number section:
// placeholders, the decimal point, and literals.
func IsNumberLiteral(tok string) bool {
	return IsPlaceholder(tok) || IsLiteral(tok) || tok == "."
}

// DigitCount returns the number of digit placeholders in tokens.
func DigitCount(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if IsPlaceholder(tok) {
			n++
		}
	}
	return n
}

// ZeroCount returns the number of 0 placeholders in tokens.
func ZeroCount(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if tok == "0" {
			n++
		}
	}
	return n
}
