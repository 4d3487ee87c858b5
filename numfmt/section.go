package numfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionType classifies how a section renders its value.
type SectionType int

const (
	SectionGeneral SectionType = iota
	SectionNumber
	SectionFraction
	SectionExponential
	SectionDate
	SectionDuration
	SectionText
)

var sectionTypeNames = [...]string{
	SectionGeneral:     "General",
	SectionNumber:      "Number",
	SectionFraction:    "Fraction",
	SectionExponential: "Exponential",
	SectionDate:        "Date",
	SectionDuration:    "Duration",
	SectionText:        "Text",
}

func (t SectionType) String() string {
	if t >= 0 && int(t) < len(sectionTypeNames) {
		return sectionTypeNames[t]
	}
	return "SectionType(" + strconv.Itoa(int(t)) + ")"
}

// MarshalText makes SectionType render by name in structured output.
func (t SectionType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Section is one semicolon-delimited part of a format string.  Exactly one
// of Number, Exponential, Fraction or Parts is populated, selected by Type.
type Section struct {
	// Index is the section's position: 0 positive, 1 negative, 2 zero, 3 text.
	Index int
	Type  SectionType

	Color     *Color
	Condition *Condition
	// Locale is set when the section carries a [$...] directive.
	Locale *Locale

	Number      *DecimalSection
	Exponential *ExponentialSection
	Fraction    *FractionSection
	// Parts holds the tokens of General, Text, Date and Duration sections.
	Parts []string
}

// hidesSign reports whether a negative value is rendered without its minus
// sign: the negative section and a conditional first section print their
// own sign glyphs.
func (s *Section) hidesSign() bool {
	return (s.Index == 0 && s.Condition != nil) || s.Index == 1
}

// DecimalSection is the layout of a plain number section.
type DecimalSection struct {
	BeforeDecimal     []string
	DecimalSeparator  bool
	AfterDecimal      []string
	ThousandSeparator bool
	// ThousandDivisor is 1000 raised to the number of trailing commas.
	ThousandDivisor float64
	// PercentMultiplier is 100 raised to the number of percent signs.
	PercentMultiplier float64
}

// ExponentialSection is the layout of a scientific-notation section.
type ExponentialSection struct {
	BeforeDecimal    []string
	DecimalSeparator bool
	AfterDecimal     []string
	// ExponentialToken is E+, E-, e+ or e-.
	ExponentialToken string
	Power            []string
}

// FractionSection is the layout of a vulgar-fraction section.
type FractionSection struct {
	// IntegerPart is nil when the whole value is shown as a fraction.
	IntegerPart       []string
	Numerator         []string
	DenominatorPrefix []string
	Denominator       []string
	// DenominatorConstant is the fixed denominator, or 0.
	DenominatorConstant int
	DenominatorSuffix   []string
	FractionSuffix      []string
}

// Condition is a [op value] directive such as [>=100].
type Condition struct {
	Operator string
	Value    float64
}

// Evaluate reports whether v satisfies the condition.
func (c *Condition) Evaluate(v float64) bool {
	switch c.Operator {
	case "<":
		return v < c.Value
	case "<=":
		return v <= c.Value
	case "=":
		return v == c.Value
	case "<>":
		return v != c.Value
	case ">=":
		return v >= c.Value
	case ">":
		return v > c.Value
	}
	return false
}

func (c *Condition) String() string {
	return c.Operator + strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// Color is a [Red] or [ColorN] directive.  Named colors carry their
// palette index as well.
type Color struct {
	Name  string
	Index int
}

func (c *Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("Color%d", c.Index)
}

// Locale is a [$currency-lcid] directive.
type Locale struct {
	Currency string
	// LCID is the Windows language identifier (low 16 bits).
	LCID int
	// CalendarType is the Windows calendar identifier from bits 16–23, or 0.
	CalendarType int
}

func (l *Locale) String() string {
	var b strings.Builder
	b.WriteString("$")
	b.WriteString(l.Currency)
	if l.LCID != 0 || l.CalendarType != 0 {
		fmt.Fprintf(&b, "-%X", l.CalendarType<<16|l.LCID)
	}
	return b.String()
}
