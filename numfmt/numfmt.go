// Package numfmt compiles ECMA-376 number format strings and renders cell
// values with them, producing the text Excel would display.
//
// A format string holds up to four sections separated by ";" (positive,
// negative, zero, text).  [New] parses the string once; [NumberFormat.Format]
// picks the section that governs a value and renders it.  Formatting never
// fails: a malformed format, a value no section accepts, or a value the
// chosen section cannot show all degrade to a stable plain conversion of the
// value.
//
//	nf := numfmt.New(`#,##0.00;[Red](#,##0.00);"zero"`)
//	nf.Format(numfmt.Number(-1234.5), culture.MustLookup("en-US"), false) // (1,234.50)
//
// A parsed NumberFormat is immutable and safe for concurrent use.  Parsing
// is the expensive step; hosts formatting many cells should reuse instances,
// for example through a [Cache].
package numfmt

import (
	"fmt"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
)

// NumberFormat is a parsed number format string.
type NumberFormat struct {
	format   string
	sections []*Section
	valid    bool
}

// New parses format.  It never fails; check [NumberFormat.IsValid] to learn
// whether the string was understood.  An empty string is treated as
// "General".
func New(format string) *NumberFormat {
	src := format
	if src == "" {
		src = "General"
	}
	sections, valid := parseSections(src)
	return &NumberFormat{format: format, sections: sections, valid: valid}
}

// IsValid reports whether the format string parsed successfully.
func (nf *NumberFormat) IsValid() bool { return nf.valid }

// IsDateTimeFormat reports whether any section formats calendar dates.
func (nf *NumberFormat) IsDateTimeFormat() bool { return nf.hasSection(SectionDate) }

// IsTimeSpanFormat reports whether any section formats elapsed time.
func (nf *NumberFormat) IsTimeSpanFormat() bool { return nf.hasSection(SectionDuration) }

func (nf *NumberFormat) hasSection(t SectionType) bool {
	for _, s := range nf.sections {
		if s.Type == t {
			return true
		}
	}
	return false
}

// Sections returns the parsed sections.  The result must not be modified.
func (nf *NumberFormat) Sections() []*Section { return nf.sections }

// String returns the original format string.
func (nf *NumberFormat) String() string { return nf.format }

// Format renders v.  A nil culture means [culture.Invariant].  date1904
// selects the 1904 date system for numeric values shown as dates.
func (nf *NumberFormat) Format(v Value, c *culture.Culture, date1904 bool) string {
	if c == nil {
		c = culture.Invariant
	}
	if !nf.valid {
		return compatString(v, c)
	}
	s := selectSection(nf.sections, v)
	if s == nil {
		return compatString(v, c)
	}
	out, err := render(v, s, c, date1904)
	if err != nil {
		logger().WithError(err).WithField("format", nf.format).Debug("numfmt: render fell back to plain conversion")
		return compatString(v, c)
	}
	return out
}

// FormatAny renders an untyped value.  Values [ValueOf] does not accept
// are stringified with fmt.Sprint.
func (nf *NumberFormat) FormatAny(x any, c *culture.Culture, date1904 bool) string {
	v, ok := ValueOf(x)
	if !ok {
		return fmt.Sprint(x)
	}
	return nf.Format(v, c, date1904)
}
