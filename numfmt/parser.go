package numfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// maxSections is Positive;Negative;Zero;Text.
const maxSections = 4

// parseSections splits format into its sections.  It never fails loudly: a
// malformed format yields (nil, false) and the caller falls back to the
// compatibility conversion for every value.
func parseSections(format string) ([]*Section, bool) {
	sections, err := parseFormat(format)
	if err != nil {
		logger().WithError(err).WithField("format", format).Debug("numfmt: invalid format string")
		return nil, false
	}
	return sections, true
}

func parseFormat(format string) ([]*Section, error) {
	r := tokenizer.NewReader(format)
	var sections []*Section
	for {
		tokens, more, err := r.ReadSection()
		if err != nil {
			return nil, err
		}
		if len(sections) == maxSections {
			return nil, fmt.Errorf("%w: more than %d sections", ErrInvalidFormat, maxSections)
		}
		s, err := parseSection(tokens, len(sections))
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
		if !more {
			return sections, nil
		}
	}
}

func parseSection(tokens []string, index int) (*Section, error) {
	s := &Section{Index: index}
	var (
		hasDate, hasDuration    bool
		hasGeneral, hasText     bool
		hasPlaceholders, hasDiv bool
		parts                   []string
	)

	for _, tok := range tokens {
		switch {
		case tokenizer.IsDatePart(tok):
			hasDate = true
			hasDuration = hasDuration || tokenizer.IsDurationPart(tok)
			parts = append(parts, tok)
		case tokenizer.IsGeneral(tok):
			hasGeneral = true
			parts = append(parts, tok)
		case tok == "@":
			hasText = true
			parts = append(parts, tok)
		case strings.HasPrefix(tok, "["):
			lit, err := s.applyDirective(tok[1:len(tok)-1], index)
			if err != nil {
				return nil, err
			}
			if lit != "" {
				parts = append(parts, lit)
			}
		default:
			hasPlaceholders = hasPlaceholders || tokenizer.IsPlaceholder(tok)
			hasDiv = hasDiv || tok == "/"
			parts = append(parts, tok)
		}
	}

	switch {
	case index == 3:
		s.Type = SectionText
		s.Parts = parts

	case hasDate:
		if hasGeneral || hasText {
			return nil, fmt.Errorf("%w: section %d mixes date codes with General or @", ErrInvalidFormat, index)
		}
		s.Parts = mergeFractionalSeconds(parts)
		s.Type = SectionDate
		if hasDuration {
			if hasDiv {
				return nil, fmt.Errorf("%w: section %d has '/' in an elapsed-time format", ErrInvalidFormat, index)
			}
			s.Type = SectionDuration
		}

	case hasGeneral:
		if hasText {
			return nil, fmt.Errorf("%w: section %d mixes General and @", ErrInvalidFormat, index)
		}
		s.Type = SectionGeneral
		s.Parts = parts

	case len(parts) == 0 && (s.Color != nil || s.Condition != nil):
		// "[Red]" alone shows the value as General in that color.
		s.Type = SectionGeneral
		s.Parts = []string{"General"}

	case hasText || !hasPlaceholders:
		s.Type = SectionText
		s.Parts = parts

	default:
		if e, ok := parseExponentialSection(parts); ok {
			s.Type, s.Exponential = SectionExponential, e
		} else if f, ok := parseFractionSection(parts); ok {
			s.Type, s.Fraction = SectionFraction, f
		} else if d, ok := parseDecimalSection(parts); ok {
			s.Type, s.Number = SectionNumber, d
		} else {
			return nil, fmt.Errorf("%w: section %d is not a number layout", ErrInvalidFormat, index)
		}
	}
	return s, nil
}

// applyDirective records a bracket directive on s.  A currency symbol is
// returned as a quoted literal to be rendered in place.
func (s *Section) applyDirective(expr string, index int) (string, error) {
	if c, ok := parseCondition(expr); ok {
		if index > 1 {
			return "", fmt.Errorf("%w: condition [%s] in section %d", ErrInvalidFormat, expr, index)
		}
		if s.Condition != nil {
			return "", fmt.Errorf("%w: second condition [%s] in section %d", ErrInvalidFormat, expr, index)
		}
		s.Condition = c
		return "", nil
	}
	if c, ok := parseColor(expr); ok {
		if s.Color != nil {
			return "", fmt.Errorf("%w: second color [%s] in section %d", ErrInvalidFormat, expr, index)
		}
		s.Color = c
		return "", nil
	}
	if l, ok := parseLocale(expr); ok {
		s.Locale = l
		if l.Currency == "" {
			return "", nil
		}
		return `"` + l.Currency + `"`, nil
	}
	return "", fmt.Errorf("%w: unknown directive [%s]", ErrInvalidFormat, expr)
}

var conditionOperators = []string{"<=", "<>", ">=", "<", ">", "="}

func parseCondition(expr string) (*Condition, bool) {
	for _, op := range conditionOperators {
		if !strings.HasPrefix(expr, op) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(expr[len(op):]), 64)
		if err != nil {
			return nil, false
		}
		return &Condition{Operator: op, Value: v}, true
	}
	return nil, false
}

// namedColors maps the eight color names to their default palette index.
var namedColors = map[string]int{
	"black":   1,
	"white":   2,
	"red":     3,
	"green":   4,
	"blue":    5,
	"yellow":  6,
	"magenta": 7,
	"cyan":    8,
}

func parseColor(expr string) (*Color, bool) {
	lower := strings.ToLower(expr)
	if idx, ok := namedColors[lower]; ok {
		return &Color{Name: strings.ToUpper(lower[:1]) + lower[1:], Index: idx}, true
	}
	if n, ok := strings.CutPrefix(lower, "color"); ok {
		idx, err := strconv.Atoi(n)
		if err != nil || idx < 1 || idx > 56 {
			return nil, false
		}
		return &Color{Index: idx}, true
	}
	return nil, false
}

// parseLocale parses a [$currency-lcid] directive with nfp, which already
// knows how to separate the currency string from the language info.
func parseLocale(expr string) (*Locale, bool) {
	if !strings.HasPrefix(expr, "$") {
		return nil, false
	}
	ps := nfp.NumberFormatParser()
	for _, sec := range ps.Parse("[" + expr + "]") {
		for _, tok := range sec.Items {
			if tok.TType != nfp.TokenTypeCurrencyLanguage {
				continue
			}
			loc := &Locale{}
			for _, part := range tok.Parts {
				switch part.Token.TType {
				case nfp.TokenSubTypeCurrencyString:
					loc.Currency = part.Token.TValue
				case nfp.TokenSubTypeLanguageInfo:
					loc.setLCID(part.Token.TValue)
				}
			}
			return loc, true
		}
	}
	return nil, false
}

// setLCID decodes a hexadecimal LCID.  Non-numeric language info such as
// "x-sysdate" leaves the locale without an LCID.
func (l *Locale) setLCID(v string) {
	id, err := strconv.ParseUint(strings.TrimPrefix(v, "-"), 16, 32)
	if err != nil {
		return
	}
	l.LCID = int(id & 0xFFFF)
	l.CalendarType = int(id >> 16 & 0xFF)
}

// mergeFractionalSeconds joins "." with the run of "0" tokens that follows
// it, producing the .0/.00/.000 codes of date and duration sections.
func mergeFractionalSeconds(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "." && i+1 < len(tokens) && tokens[i+1] == "0" {
			var b strings.Builder
			b.WriteString(".")
			for i+1 < len(tokens) && tokens[i+1] == "0" {
				b.WriteString("0")
				i++
			}
			tok = b.String()
		}
		out = append(out, tok)
	}
	return out
}

// parseNumberTokens reads placeholders, literals and at most one decimal
// point from the start of tokens.  It returns the index of the first token
// that does not belong to a number layout.
func parseNumberTokens(tokens []string) (before []string, sep bool, after []string, next int) {
	var run []string
scan:
	for next = 0; next < len(tokens); next++ {
		tok := tokens[next]
		switch {
		case tok == "." && !sep:
			sep = true
			before = run
			if before == nil {
				before = []string{}
			}
			run = nil
		case tokenizer.IsNumberLiteral(tok):
			run = append(run, tok)
		default:
			break scan
		}
	}
	if sep {
		after = run
	} else {
		before = run
	}
	return before, sep, after, next
}

func parseDecimalSection(tokens []string) (*DecimalSection, bool) {
	before, sep, after, next := parseNumberTokens(tokens)
	if next != len(tokens) {
		return nil, false
	}
	divisor, thousands := trailingCommas(tokens)
	return &DecimalSection{
		BeforeDecimal:     before,
		DecimalSeparator:  sep,
		AfterDecimal:      after,
		ThousandSeparator: thousands,
		ThousandDivisor:   divisor,
		PercentMultiplier: percentMultiplier(tokens),
	}, true
}

func parseExponentialSection(tokens []string) (*ExponentialSection, bool) {
	before, sep, after, next := parseNumberTokens(tokens)
	if next == len(tokens) || !tokenizer.IsExponent(tokens[next]) {
		return nil, false
	}
	power := tokens[next+1:]
	for _, tok := range power {
		if !tokenizer.IsNumberLiteral(tok) {
			return nil, false
		}
	}
	return &ExponentialSection{
		BeforeDecimal:    before,
		DecimalSeparator: sep,
		AfterDecimal:     after,
		ExponentialToken: tokens[next],
		Power:            power,
	}, true
}

// trailingCommas scans backwards for the last digit placeholder.  Each comma
// directly after it divides the value by 1000; any comma before it turns on
// group separators.
func trailingCommas(tokens []string) (divisor float64, thousands bool) {
	divisor = 1
	last := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokenizer.IsPlaceholder(tokens[i]) {
			last = i
			break
		}
	}
	if last < 0 {
		return divisor, false
	}
	for i := last + 1; i < len(tokens) && tokens[i] == ","; i++ {
		divisor *= 1000
	}
	for i := last - 1; i >= 0; i-- {
		if tokens[i] == "," {
			return divisor, true
		}
	}
	return divisor, false
}

func percentMultiplier(tokens []string) float64 {
	m := 1.0
	for _, tok := range tokens {
		if tok == "%" {
			m *= 100
		}
	}
	return m
}

func parseFractionSection(tokens []string) (*FractionSection, bool) {
	slash := -1
	for i, tok := range tokens {
		if tok == "/" {
			slash = i
			break
		}
	}
	if slash < 0 {
		return nil, false
	}
	left, right := tokens[:slash], tokens[slash+1:]
	for _, tok := range left {
		if !tokenizer.IsNumberLiteral(tok) || tok == "." {
			return nil, false
		}
	}

	f := &FractionSection{}
	f.IntegerPart, f.Numerator = splitNumerator(left)
	if tokenizer.DigitCount(f.Numerator) == 0 {
		return nil, false
	}
	if !parseDenominator(right, f) {
		return nil, false
	}
	return f, true
}

// splitNumerator separates an optional integer part from the numerator.  The
// integer part ends at the first literal found while walking backwards past
// the numerator's placeholders; it only exists if a placeholder precedes
// that literal.
func splitNumerator(tokens []string) (integer, numerator []string) {
	seenPlaceholder, seenGap := false, false
	numeratorStart := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokenizer.IsPlaceholder(tokens[i]) {
			seenPlaceholder = true
			if seenGap {
				return tokens[:numeratorStart], tokens[numeratorStart:]
			}
		} else if seenPlaceholder && !seenGap {
			seenGap = true
			numeratorStart = i + 1
		}
	}
	return nil, tokens
}

// parseDenominator fills the denominator fields of f from the tokens after
// the slash.  Literals adjacent to the denominator belong to the fraction
// (and are blanked with it); everything from the first space-like literal
// on is a suffix of the whole value.
func parseDenominator(tokens []string, f *FractionSection) bool {
	i := 0
	for i < len(tokens) && !tokenizer.IsPlaceholder(tokens[i]) && !tokenizer.IsDigit19(tokens[i]) {
		if !tokenizer.IsLiteral(tokens[i]) {
			return false
		}
		i++
	}
	if i == len(tokens) {
		return false
	}
	if i > 0 {
		f.DenominatorPrefix = tokens[:i]
	}

	start := i
	if tokenizer.IsPlaceholder(tokens[i]) {
		for i < len(tokens) && tokenizer.IsPlaceholder(tokens[i]) {
			i++
		}
		f.Denominator = tokens[start:i]
	} else {
		for i < len(tokens) && tokenizer.IsDigit09(tokens[i]) {
			i++
		}
		n, err := strconv.Atoi(strings.Join(tokens[start:i], ""))
		if err != nil || n == 0 {
			return false
		}
		f.DenominatorConstant = n
	}

	suffix := i
	for suffix < len(tokens) && !isSpacer(tokens[suffix]) {
		if !tokenizer.IsLiteral(tokens[suffix]) {
			return false
		}
		suffix++
	}
	if suffix > i {
		f.DenominatorSuffix = tokens[i:suffix]
	}
	for _, tok := range tokens[suffix:] {
		if !tokenizer.IsLiteral(tok) {
			return false
		}
	}
	if suffix < len(tokens) {
		f.FractionSuffix = tokens[suffix:]
	}
	return true
}

func isSpacer(tok string) bool {
	return tok == " " || strings.HasPrefix(tok, "_") || tok == `" "`
}
