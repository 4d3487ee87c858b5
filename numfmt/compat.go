package numfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
)

// compatString is the fallback used whenever a format cannot render a
// value.  Floats use a fixed number of significant digits (15 for float64,
// 7 for float32) so the output does not depend on the shortest-round-trip
// algorithm of any runtime.
func compatString(v Value, c *culture.Culture) string {
	switch v.kind {
	case KindNumber:
		switch v.origin {
		case originInt:
			return strconv.FormatInt(v.i, 10)
		case originFloat32:
			return localizeNumber(strconv.FormatFloat(v.num, 'G', 7, 32), c)
		}
		return localizeNumber(strconv.FormatFloat(v.num, 'G', 15, 64), c)
	case KindText:
		return v.str
	case KindDateTime:
		return v.t.Format(c.ShortDateLayout + " " + c.LongTimeLayout)
	case KindDuration:
		return durationString(v.d)
	}
	return ""
}

// localizeNumber swaps the decimal point for the culture's.
func localizeNumber(s string, c *culture.Culture) string {
	if c.DecimalSeparator == "." {
		return s
	}
	return strings.Replace(s, ".", c.DecimalSeparator, 1)
}

// durationString renders d as [-][d.]hh:mm:ss[.fffffff].
func durationString(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	h, m, s := d/time.Hour, d/time.Minute%60, d/time.Second%60
	fmt.Fprintf(&b, "%02d:%02d:%02d", h, m, s)
	if ticks := d % time.Second / 100; ticks > 0 {
		fmt.Fprintf(&b, ".%07d", ticks)
	}
	return b.String()
}
