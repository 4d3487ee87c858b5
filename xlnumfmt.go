// Package xlnumfmt renders spreadsheet cell values the way Excel displays
// them, given the cell's number format.  No cgo is required.
//
// # Quick start
//
//	us := culture.MustLookup("en-US")
//	s := xlnumfmt.Format("#,##0.00;[Red](#,##0.00)", -1234.5, us, false)
//	// s == "(1,234.50)"
//
// # Cell formatting
//
// Workbook readers usually know a cell's numFmtId and, for custom formats,
// the format string.  [FormatValue] resolves built-in IDs through
// [styles.BuiltInNumFmt] and renders the raw value:
//
//	formatted := xlnumfmt.FormatValue(cell.Value, xf.NumFmtID, xf.FormatStr, us, date1904)
//
// Parsed formats are kept in a bounded cache shared by [Format] and
// [FormatValue]; resize it with [SetCacheSize].  Callers that need the
// parsed form itself, or a private cache, use the [numfmt] package
// directly.
//
// # Dates
//
// Excel stores dates as floating-point serial numbers.  Formatting handles
// date rendering automatically when the cell's number format is a date or
// time format.  For direct access to the underlying [time.Time] value use
// [ConvertDateEx], passing the workbook's date system:
//
//	if f, ok := cell.Value.(float64); ok && xlnumfmt.IsDateFormat(id, fmtStr) {
//	    t, err := xlnumfmt.ConvertDateEx(f, date1904)
//	}
//
// [ConvertDate] is a convenience wrapper for the common 1900 date system.
package xlnumfmt

import (
	"sync/atomic"
	"time"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/exceldate"
	"github.com/TsubasaBE/go-xlnumfmt/numfmt"
	"github.com/TsubasaBE/go-xlnumfmt/styles"
)

// Version is the current version of the go-xlnumfmt library.
const Version = "0.3.0"

// DefaultCacheSize is the number of parsed formats kept by default.
const DefaultCacheSize = 1024

var cache atomic.Pointer[numfmt.Cache]

func init() {
	cache.Store(numfmt.NewCache(DefaultCacheSize))
}

// SetCacheSize replaces the shared format cache with an empty one holding at
// most n formats.
func SetCacheSize(n int) {
	cache.Store(numfmt.NewCache(n))
}

// Format renders v with the format string f.  v may be any value accepted by
// [numfmt.ValueOf]; other values are stringified with fmt.Sprint.  A nil
// culture means [culture.Invariant].
func Format(f string, v any, c *culture.Culture, date1904 bool) string {
	return cache.Load().Get(f).FormatAny(v, c, date1904)
}

// FormatValue renders a raw cell value using the cell's number format.
//
//   - numFmtID is the numFmtId of the cell's style (0 = General).
//   - fmtStr is the custom format string; pass "" for built-in IDs that
//     have no custom override.
//   - date1904 should match the workbook's date system.
//
// nil renders as "" and booleans as TRUE/FALSE, as Excel shows them.
func FormatValue(v any, numFmtID int, fmtStr string, c *culture.Culture, date1904 bool) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	}
	return Format(styles.Resolve(numFmtID, fmtStr), v, c, date1904)
}

// IsDateFormat reports whether a number-format ID (and optional custom format
// string) displays numbers as a date, time or elapsed duration.
func IsDateFormat(numFmtID int, fmtStr string) bool {
	return styles.IsDateFormat(numFmtID, fmtStr)
}

// ConvertDate converts an Excel date serial number to a [time.Time] value.
//
// Excel represents dates as the number of days since 1900-01-00, with the
// fractional part representing the time of day.  Lotus 1-2-3 incorrectly
// treated 1900 as a leap year, so Excel perpetuates the bug: serial 60 is
// 1900-02-29, a date that never existed.  A time.Time cannot hold it, so:
//
//   - serial == 0  → midnight on 1900-01-01
//   - serial >= 61 → subtract one day to compensate for the phantom leap day
//   - 1 ≤ serial ≤ 60 → no compensation (serial 60 yields 1900-03-01)
//
// The time of day is rounded to the nearest second.
func ConvertDate(date float64) (time.Time, error) {
	return ConvertDateEx(date, false)
}

// ConvertDateEx converts an Excel date serial number to a [time.Time] value,
// respecting the workbook's date system.  When date1904 is true serial 0 is
// 1904-01-01 and no phantom leap-day correction applies.
func ConvertDateEx(date float64, date1904 bool) (time.Time, error) {
	return exceldate.ToTime(date, date1904)
}
