package culture

import "time"

// Calendar maps an instant to the era and year a culture displays for it.
// Month and day numbering always follow the Gregorian calendar; only the
// era and the year-within-era vary.
type Calendar interface {
	// Name identifies the calendar, e.g. "gregorian".
	Name() string
	// Era returns the 1-based era containing t, or 0 when t precedes the
	// calendar's first era.
	Era(t time.Time) int
	// Year returns the year of t within its era.
	Year(t time.Time) int
	// EraName returns the full name of era.
	EraName(era int) string
	// AbbreviatedEraName returns the short name of era.
	AbbreviatedEraName(era int) string
}

// Gregorian is the proleptic Gregorian calendar with a single era.
type Gregorian struct {
	Era1Name            string
	Era1AbbreviatedName string
}

func (Gregorian) Name() string { return "gregorian" }

func (Gregorian) Era(time.Time) int { return 1 }

func (Gregorian) Year(t time.Time) int { return t.Year() }

func (g Gregorian) EraName(int) string { return g.Era1Name }

func (g Gregorian) AbbreviatedEraName(int) string { return g.Era1AbbreviatedName }

type japaneseEra struct {
	start       time.Time
	name        string
	abbreviated string
}

// Imperial eras from Meiji onward, oldest first.
var japaneseEras = []japaneseEra{
	{time.Date(1868, 9, 8, 0, 0, 0, 0, time.UTC), "明治", "明"},
	{time.Date(1912, 7, 30, 0, 0, 0, 0, time.UTC), "大正", "大"},
	{time.Date(1926, 12, 25, 0, 0, 0, 0, time.UTC), "昭和", "昭"},
	{time.Date(1989, 1, 8, 0, 0, 0, 0, time.UTC), "平成", "平"},
	{time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), "令和", "令"},
}

// Japanese is the Japanese imperial-era calendar.  Dates before Meiji fall
// back to Gregorian years with no era.
type Japanese struct{}

func (Japanese) Name() string { return "japanese" }

func (Japanese) Era(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for i := len(japaneseEras) - 1; i >= 0; i-- {
		if !day.Before(japaneseEras[i].start) {
			return i + 1
		}
	}
	return 0
}

func (j Japanese) Year(t time.Time) int {
	era := j.Era(t)
	if era == 0 {
		return t.Year()
	}
	return t.Year() - japaneseEras[era-1].start.Year() + 1
}

func (Japanese) EraName(era int) string {
	if era < 1 || era > len(japaneseEras) {
		return ""
	}
	return japaneseEras[era-1].name
}

func (Japanese) AbbreviatedEraName(era int) string {
	if era < 1 || era > len(japaneseEras) {
		return ""
	}
	return japaneseEras[era-1].abbreviated
}
