// Package culture supplies the locale data the number-format renderer needs:
// decimal and group separators, the date separator, month and weekday
// names, era names and the calendar used to count years.
//
// Cultures are immutable after construction and safe to share.  Look one up
// by BCP-47 name with [Lookup], by language tag with [ForTag], or by the
// Windows LCID carried in a [$-409] format directive with [ForLCID].  A
// Unicode calendar extension selects the Japanese imperial calendar:
//
//	c, err := culture.Lookup("ja-JP-u-ca-japanese")
package culture

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrUnknownCulture is returned when no supported culture matches a name.
var ErrUnknownCulture = errors.New("culture: unknown culture")

// Culture is the locale information consumed by the renderer.
type Culture struct {
	// Name is the BCP-47 name, or "" for the invariant culture.
	Name string
	// LCID is the Windows locale identifier.
	LCID int

	DecimalSeparator string
	GroupSeparator   string
	DateSeparator    string

	MonthNames            [12]string
	AbbreviatedMonthNames [12]string
	DayNames              [7]string
	AbbreviatedDayNames   [7]string

	// ShortDateLayout and LongTimeLayout are Go time layouts used when a
	// date/time value is stringified without a format.
	ShortDateLayout string
	LongTimeLayout  string

	Calendar Calendar

	tag language.Tag
}

// Tag returns the culture's language tag (language.Und for invariant).
func (c *Culture) Tag() language.Tag { return c.tag }

// String returns the culture name, or "invariant".
func (c *Culture) String() string {
	if c.Name == "" {
		return "invariant"
	}
	return c.Name
}

// WithCalendar returns a copy of c that counts years with cal.
func (c *Culture) WithCalendar(cal Calendar) *Culture {
	cp := *c
	cp.Calendar = cal
	return &cp
}

var englishMonths = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
var englishMonthsAbbr = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var englishDays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var englishDaysAbbr = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Invariant is the culture-neutral fallback: English names, "." decimal
// separator, "," group separator.
var Invariant = &Culture{
	LCID:                  0x7F,
	DecimalSeparator:      ".",
	GroupSeparator:        ",",
	DateSeparator:         "/",
	MonthNames:            englishMonths,
	AbbreviatedMonthNames: englishMonthsAbbr,
	DayNames:              englishDays,
	AbbreviatedDayNames:   englishDaysAbbr,
	ShortDateLayout:       "01/02/2006",
	LongTimeLayout:        "15:04:05",
	Calendar:              Gregorian{Era1Name: "A.D.", Era1AbbreviatedName: "AD"},
	tag:                   language.Und,
}

var cultures = []*Culture{
	{
		Name: "en-US", LCID: 0x409,
		DecimalSeparator: ".", GroupSeparator: ",", DateSeparator: "/",
		MonthNames: englishMonths, AbbreviatedMonthNames: englishMonthsAbbr,
		DayNames: englishDays, AbbreviatedDayNames: englishDaysAbbr,
		ShortDateLayout: "1/2/2006", LongTimeLayout: "3:04:05 PM",
		Calendar: Gregorian{Era1Name: "A.D.", Era1AbbreviatedName: "AD"},
		tag:      language.AmericanEnglish,
	},
	{
		Name: "en-GB", LCID: 0x809,
		DecimalSeparator: ".", GroupSeparator: ",", DateSeparator: "/",
		MonthNames: englishMonths, AbbreviatedMonthNames: englishMonthsAbbr,
		DayNames: englishDays, AbbreviatedDayNames: englishDaysAbbr,
		ShortDateLayout: "02/01/2006", LongTimeLayout: "15:04:05",
		Calendar: Gregorian{Era1Name: "A.D.", Era1AbbreviatedName: "AD"},
		tag:      language.BritishEnglish,
	},
	{
		Name: "de-DE", LCID: 0x407,
		DecimalSeparator: ",", GroupSeparator: ".", DateSeparator: ".",
		MonthNames:            [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		AbbreviatedMonthNames: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		DayNames:              [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		AbbreviatedDayNames:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		ShortDateLayout:       "02.01.2006", LongTimeLayout: "15:04:05",
		Calendar: Gregorian{Era1Name: "n. Chr.", Era1AbbreviatedName: "n. Chr."},
		tag:      language.MustParse("de-DE"),
	},
	{
		Name: "fr-FR", LCID: 0x40C,
		DecimalSeparator: ",", GroupSeparator: " ", DateSeparator: "/",
		MonthNames:            [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		AbbreviatedMonthNames: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		DayNames:              [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		AbbreviatedDayNames:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		ShortDateLayout:       "02/01/2006", LongTimeLayout: "15:04:05",
		Calendar: Gregorian{Era1Name: "ap. J.-C.", Era1AbbreviatedName: "ap. J.-C."},
		tag:      language.MustParse("fr-FR"),
	},
	{
		Name: "es-ES", LCID: 0xC0A,
		DecimalSeparator: ",", GroupSeparator: ".", DateSeparator: "/",
		MonthNames:            [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		AbbreviatedMonthNames: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		DayNames:              [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		AbbreviatedDayNames:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		ShortDateLayout:       "02/01/2006", LongTimeLayout: "15:04:05",
		Calendar: Gregorian{Era1Name: "d. C.", Era1AbbreviatedName: "d. C."},
		tag:      language.MustParse("es-ES"),
	},
	{
		Name: "ja-JP", LCID: 0x411,
		DecimalSeparator: ".", GroupSeparator: ",", DateSeparator: "/",
		MonthNames:            [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		AbbreviatedMonthNames: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		DayNames:              [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		AbbreviatedDayNames:   [7]string{"日", "月", "火", "水", "木", "金", "土"},
		ShortDateLayout:       "2006/01/02", LongTimeLayout: "15:04:05",
		Calendar: Gregorian{Era1Name: "西暦", Era1AbbreviatedName: "西暦"},
		tag:      language.MustParse("ja-JP"),
	},
	{
		Name: "zh-CN", LCID: 0x804,
		DecimalSeparator: ".", GroupSeparator: ",", DateSeparator: "/",
		MonthNames:            [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
		AbbreviatedMonthNames: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		DayNames:              [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
		AbbreviatedDayNames:   [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		ShortDateLayout:       "2006/1/2", LongTimeLayout: "15:04:05",
		Calendar: Gregorian{Era1Name: "公元", Era1AbbreviatedName: "公元"},
		tag:      language.MustParse("zh-CN"),
	},
}

var (
	byLCID  = make(map[int]*Culture, len(cultures))
	matcher language.Matcher
)

func init() {
	tags := make([]language.Tag, len(cultures))
	for i, c := range cultures {
		tags[i] = c.tag
		byLCID[c.LCID] = c
	}
	byLCID[Invariant.LCID] = Invariant
	matcher = language.NewMatcher(tags)
}

// Names returns the names of every supported culture except invariant.
func Names() []string {
	names := make([]string, len(cultures))
	for i, c := range cultures {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the culture for a BCP-47 name.  "" and "invariant" return
// [Invariant].  Regional variants match their closest supported culture
// (e.g. "de-AT" → de-DE).
func Lookup(name string) (*Culture, error) {
	if name == "" || name == "invariant" {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("culture: parse %q: %w", name, err)
	}
	c, ok := ForTag(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCulture, name)
	}
	return c, nil
}

// MustLookup is like [Lookup] but panics on error.  It is intended for
// package-level variables and tests.
func MustLookup(name string) *Culture {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ForTag returns the closest supported culture for tag.  Only a match of
// High confidence or better counts, so an unsupported language such as
// Swahili is reported as missing rather than mapped to the default.  A
// "-u-ca-japanese" extension switches the result to the Japanese imperial
// calendar.
func ForTag(tag language.Tag) (*Culture, bool) {
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return nil, false
	}
	c := cultures[idx]
	if tag.TypeForKey("ca") == "japanese" {
		c = c.WithCalendar(Japanese{})
	}
	return c, true
}

// ForLCID returns the culture for a Windows LCID.  Only the low 16 bits
// (the language identifier) are considered.
func ForLCID(lcid int) (*Culture, bool) {
	c, ok := byLCID[lcid&0xFFFF]
	return c, ok
}
