// Package exceldate converts Excel date serial numbers to calendar values.
//
// Two views are provided.  [ToTime] returns a real [time.Time] and is what
// the root package exposes to hosts.  [FromSerial] returns a [DateTime] that
// reproduces what Excel *displays* for a serial, including the day-zero
// date 1900-01-00 and the phantom leap day 1900-02-29 inherited from Lotus
// 1-2-3.  The number-format renderer uses the display view.
package exceldate

import (
	"fmt"
	"math"
	"time"
)

// MaxSerial1900 is one above the last valid 1900-system serial (9999-12-31).
const MaxSerial1900 = 2_958_466

// Offset1904 is the number of days between the 1900 and 1904 epochs.
const Offset1904 = 1462

// DateTime is a calendar date and time of day as Excel displays it.  Day may
// be 0 (serial 0) and Month/Day may be 2/29 in 1900; Time holds the nearest
// real instant and is only used for calendar and era lookups.
type DateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Millisecond          int
	Weekday              time.Weekday
	Time                 time.Time
}

// FromTime builds a DateTime from an already resolved instant.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		Weekday:     t.Weekday(),
		Time:        t,
	}
}

// FromSerial converts an Excel serial to its displayed calendar value.
// When wholeSeconds is true the time of day is rounded to the nearest
// second (Excel's behaviour when no fractional-seconds code is shown);
// otherwise it is rounded to the nearest millisecond.
func FromSerial(serial float64, date1904, wholeSeconds bool) (DateTime, error) {
	if err := checkSerial(serial, date1904); err != nil {
		return DateTime{}, err
	}

	var ms int64
	var rollover int
	if wholeSeconds {
		secs, r := serialToFracSec(serial)
		ms, rollover = secs*1000, r
	} else {
		ms, rollover = serialToFracMillis(serial)
	}
	day := int(serial) + rollover

	var dt DateTime
	if date1904 {
		dt = FromTime(time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day))
	} else {
		switch {
		case day == 0:
			dt = FromTime(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
			dt.Day = 0
		case day == 60:
			dt = FromTime(time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC))
			dt.Day = 29
		case day < 60:
			dt = FromTime(time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day))
		default:
			dt = FromTime(time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day))
		}
		// Serial 1 is a Sunday in Excel's calendar.
		dt.Weekday = time.Weekday((day + 6) % 7)
	}

	dt.Hour = int(ms / 3_600_000)
	dt.Minute = int(ms / 60_000 % 60)
	dt.Second = int(ms / 1000 % 60)
	dt.Millisecond = int(ms % 1000)
	dt.Time = dt.Time.Add(time.Duration(ms) * time.Millisecond)
	return dt, nil
}

// ToTime converts an Excel serial to a [time.Time] in UTC.
//
// In the 1900 system serial 0 is midnight on 1900-01-01, serials 1–60 are
// counted from 1899-12-31 without compensation, and serials from 61 onward
// subtract one day for the phantom 1900-02-29.  In the 1904 system serial 0
// is 1904-01-01 and no compensation applies.  The time of day is rounded to
// the nearest second.
func ToTime(serial float64, date1904 bool) (time.Time, error) {
	if err := checkSerial(serial, date1904); err != nil {
		return time.Time{}, err
	}

	fracSec, dayRollover := serialToFracSec(serial)
	intPart := int(serial) + dayRollover
	frac := time.Duration(fracSec) * time.Second

	if date1904 {
		base := time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
		return base.Add(time.Duration(intPart)*24*time.Hour + frac), nil
	}
	base := time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	switch {
	case intPart == 0:
		return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Add(frac), nil
	case intPart >= 61:
		return base.Add(time.Duration(intPart-1)*24*time.Hour + frac), nil
	default:
		return base.Add(time.Duration(intPart)*24*time.Hour + frac), nil
	}
}

func checkSerial(serial float64, date1904 bool) error {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return fmt.Errorf("exceldate: invalid serial %v", serial)
	}
	if serial < 0 {
		return fmt.Errorf("exceldate: negative serial %v not supported", serial)
	}
	limit := float64(MaxSerial1900)
	if date1904 {
		limit -= Offset1904
	}
	if serial > limit {
		return fmt.Errorf("exceldate: serial %v exceeds maximum supported value %v", serial, limit)
	}
	return nil
}

// serialToFracSec converts the fractional-day part of a serial to a
// whole-second count within the day (0–86399) plus a day-rollover of 0 or 1.
// A small epsilon absorbs binary drift before half-second rounding.
func serialToFracSec(serial float64) (fracSec int64, dayRollover int) {
	const roundEpsilon = 1e-9
	fracDay := (serial - math.Trunc(serial)) + roundEpsilon
	const nanosInADay = float64(24 * 60 * 60 * 1e9)
	durNanos := time.Duration(fracDay * nanosInADay)
	ns := int(durNanos % time.Second)
	secs := int64(durNanos / time.Second)
	if ns > 500_000_000 {
		secs++
	}
	if secs < 0 {
		secs = 0
	}
	return secs % 86400, int(secs / 86400)
}

// serialToFracMillis is serialToFracSec at millisecond resolution.
func serialToFracMillis(serial float64) (fracMillis int64, dayRollover int) {
	ms := int64(math.Round((serial - math.Trunc(serial)) * 86_400_000))
	if ms < 0 {
		ms = 0
	}
	return ms % 86_400_000, int(ms / 86_400_000)
}
