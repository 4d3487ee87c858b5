package numfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
	"github.com/TsubasaBE/go-xlnumfmt/internal/exceldate"
	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// japaneseCalendarType is the Windows calendar identifier carried in the
// high bits of a [$-30411] LCID.
const japaneseCalendarType = 3

func formatDate(v Value, s *Section, c *culture.Culture, date1904 bool) (string, error) {
	wholeSeconds := !hasFractionalSeconds(s.Parts)

	var dt exceldate.DateTime
	switch v.kind {
	case KindDateTime:
		t := v.t
		if wholeSeconds {
			t = t.Round(time.Second)
		}
		dt = exceldate.FromTime(t)
	case KindNumber, KindDuration:
		serial, _ := v.Float()
		var err error
		if dt, err = exceldate.FromSerial(serial, date1904, wholeSeconds); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %v", ErrValueKind, v.kind)
	}

	var b strings.Builder
	writeDate(&b, dt, s.Parts, sectionCulture(s, c))
	return b.String(), nil
}

// sectionCulture applies a [$-lcid] directive: a known LCID replaces the
// caller's culture, and calendar type 3 selects the imperial calendar.
func sectionCulture(s *Section, c *culture.Culture) *culture.Culture {
	if s.Locale == nil {
		return c
	}
	if lc, ok := culture.ForLCID(s.Locale.LCID); ok {
		c = lc
	}
	if s.Locale.CalendarType == japaneseCalendarType {
		c = c.WithCalendar(culture.Japanese{})
	}
	return c
}

func hasFractionalSeconds(tokens []string) bool {
	for _, tok := range tokens {
		if tokenizer.IsFractionalSeconds(tok) {
			return true
		}
	}
	return false
}

func hasAmPm(tokens []string) bool {
	for _, tok := range tokens {
		if tokenizer.IsAmPm(tok) {
			return true
		}
	}
	return false
}

func writeDate(b *strings.Builder, dt exceldate.DateTime, tokens []string, c *culture.Culture) {
	twelveHour := hasAmPm(tokens)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		n := len(tok)
		switch lead := unicode.ToLower(rune(tok[0])); {
		case tokenizer.IsAmPm(tok):
			writeAmPm(b, tok, dt.Hour)

		case lead == 'y':
			year := yearOf(dt, c.Calendar)
			if n <= 2 {
				writePadded(b, year%100, 2)
			} else {
				writePadded(b, year, 4)
			}

		case lead == 'm':
			if isMinute(tokens, i) {
				writePadded(b, dt.Minute, n)
				break
			}
			switch n {
			case 3:
				b.WriteString(c.AbbreviatedMonthNames[dt.Month-1])
			case 4:
				b.WriteString(c.MonthNames[dt.Month-1])
			case 5:
				r, _ := utf8.DecodeRuneInString(c.MonthNames[dt.Month-1])
				b.WriteRune(r)
			default:
				writePadded(b, dt.Month, n)
			}

		case lead == 'd':
			switch n {
			case 3:
				b.WriteString(c.AbbreviatedDayNames[dt.Weekday])
			case 4:
				b.WriteString(c.DayNames[dt.Weekday])
			default:
				writePadded(b, dt.Day, n)
			}

		case lead == 'h':
			h := dt.Hour
			if twelveHour {
				h = (h+11)%12 + 1
			}
			writePadded(b, h, n)

		case lead == 's':
			writePadded(b, dt.Second, n)

		case lead == 'g':
			era := c.Calendar.Era(dt.Time)
			if n < 3 {
				b.WriteString(c.Calendar.AbbreviatedEraName(era))
			} else {
				b.WriteString(c.Calendar.EraName(era))
			}

		case tokenizer.IsFractionalSeconds(tok):
			writeMillis(b, dt.Millisecond, n-1)

		case tok == "/":
			b.WriteString(c.DateSeparator)

		case tok == ",":
			for i+1 < len(tokens) && tokens[i+1] == "," {
				i++
			}
			b.WriteByte(',')

		default:
			writeLiteral(b, tok)
		}
	}
}

// isMinute reports whether the m run at i means minutes: it follows an hour
// code or precedes a seconds code, with only literals in between.
func isMinute(tokens []string, i int) bool {
	return lookDatePart(tokens, i, -1, 'h') || lookDatePart(tokens, i, 1, 's')
}

func lookDatePart(tokens []string, from, step int, lead rune) bool {
	for j := from + step; j >= 0 && j < len(tokens); j += step {
		tok := tokens[j]
		if unicode.ToLower(rune(tok[0])) == lead && tokenizer.IsDatePart(tok) {
			return true
		}
		if tokenizer.IsDatePart(tok) {
			return false
		}
	}
	return false
}

func yearOf(dt exceldate.DateTime, cal culture.Calendar) int {
	if _, ok := cal.(culture.Gregorian); ok {
		return dt.Year
	}
	return cal.Year(dt.Time)
}

func writeAmPm(b *strings.Builder, tok string, hour int) {
	am := hour < 12
	if len(tok) > 3 {
		if am {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
		return
	}
	letter := 'P'
	if am {
		letter = 'A'
	}
	if unicode.IsLower(rune(tok[0])) {
		letter = unicode.ToLower(letter)
	}
	b.WriteRune(letter)
}

// writeMillis writes "." and the first digits of the zero-padded
// millisecond count.
func writeMillis(b *strings.Builder, ms, digits int) {
	s := fmt.Sprintf("%03d", ms)
	if digits <= len(s) {
		s = s[:digits]
	} else {
		s += strings.Repeat("0", digits-len(s))
	}
	b.WriteByte('.')
	b.WriteString(s)
}

func writePadded(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	if pad := width - len(s); pad > 0 {
		b.WriteString(strings.Repeat("0", pad))
	}
	b.WriteString(s)
}
