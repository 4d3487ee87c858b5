// Package styles maps the number-format part of a workbook's cell styles to
// format strings.  Cells carry a numFmtId; IDs below 164 name built-in
// formats whose strings never appear in the file, and higher IDs refer to
// custom strings stored in the styles part.  Hosts resolve the effective
// string here before handing it to [numfmt.New].
package styles

import (
	"github.com/TsubasaBE/go-xlnumfmt/numfmt"
)

// FirstCustomID is the lowest numFmtId available to custom formats.
const FirstCustomID = 164

// XFStyle holds the number-format information of one cell format (XF).
type XFStyle struct {
	// NumFmtID is the numFmtId of the XF.  Values below FirstCustomID are
	// built-in formats; higher values are custom formats.
	NumFmtID int
	// FormatStr is the custom format string, or "" when the ID is built in
	// and not overridden by the file.
	FormatStr string
}

// StyleTable maps XF index → XFStyle.  The slice index is the 0-based style
// index stored on each cell.
type StyleTable []XFStyle

// IsDate reports whether the XF at index s renders numbers as dates, times
// or elapsed durations.  It returns false when s is out of range.
func (st StyleTable) IsDate(s int) bool {
	if s < 0 || s >= len(st) {
		return false
	}
	return IsDateFormat(st[s].NumFmtID, st[s].FormatStr)
}

// FmtStr returns the effective format string for style index s, or
// "General" when s is out of range.
func (st StyleTable) FmtStr(s int) string {
	if s < 0 || s >= len(st) {
		return "General"
	}
	return Resolve(st[s].NumFmtID, st[s].FormatStr)
}

// BuiltInNumFmt maps built-in numFmtId values to their format strings as
// defined by ECMA-376 §18.8.30.  IDs 27–36 and 50–58 are locale-specific
// (CJK/Thai); the entries here are neutral Western fallbacks used when the
// file does not override the ID.  IDs 14 and 22 follow what Excel displays
// under en-US rather than the literal strings of the standard.
var BuiltInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `"$"#,##0_);\("$"#,##0\)`,
	6:  `"$"#,##0_);[Red]\("$"#,##0\)`,
	7:  `"$"#,##0.00_);\("$"#,##0.00\)`,
	8:  `"$"#,##0.00_);[Red]\("$"#,##0.00\)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "m/d/yyyy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yyyy h:mm",
	27: "MM-DD-YYYY",
	28: "D-MMM-YY",
	29: "D-MMM-YY",
	30: "M/D/YY",
	31: "YYYY-M-D",
	32: "H:MM",
	33: "H:MM:SS",
	34: "H:MM AM/PM",
	35: "H:MM:SS AM/PM",
	36: "MM-DD-YYYY",
	37: `#,##0 ;(#,##0)`,
	38: `#,##0 ;[Red](#,##0)`,
	39: `#,##0.00;(#,##0.00)`,
	40: `#,##0.00;[Red](#,##0.00)`,
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
	50: "MM-DD-YYYY",
	51: "D-MMM-YY",
	52: "H:MM AM/PM",
	53: "H:MM:SS AM/PM",
	54: "D-MMM-YY",
	55: "H:MM AM/PM",
	56: "H:MM:SS AM/PM",
	57: "MM-DD-YYYY",
	58: "D-MMM-YY",
}

// Resolve returns the effective format string for a cell: the custom string
// when non-empty, the built-in string for id when known, or "General".
func Resolve(id int, custom string) string {
	if custom != "" {
		return custom
	}
	if s, ok := BuiltInNumFmt[id]; ok {
		return s
	}
	return "General"
}

// IsBuiltInDateID reports whether id is a built-in date, time or elapsed
// time format.
func IsBuiltInDateID(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormat reports whether a cell with this numFmtId and custom string
// renders numbers as a date, time or elapsed duration.  Custom strings are
// classified by parsing them, so quoted or escaped letters never count.
func IsDateFormat(id int, custom string) bool {
	if custom == "" {
		return IsBuiltInDateID(id)
	}
	nf := numfmt.New(custom)
	return nf.IsDateTimeFormat() || nf.IsTimeSpanFormat()
}
