package numfmt

import (
	"bytes"
	"math"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
)

func format(format string, v Value) string {
	return New(format).Format(v, culture.Invariant, false)
}

// ── numbers ───────────────────────────────────────────────────────────────────

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		format string
		value  float64
		want   string
	}{
		{"two decimals", "0.00", 303.6, "303.60"},
		{"optional decimals", "0.##", 1.5, "1.5"},
		{"rounds integer", "0", 42.9, "43"},
		{"quoted prefix", `"E"0`, 40013205, "E40013205"},
		{"quoted suffix", `0" kg"`, 18000, "18000 kg"},
		{"percent", "0%", 0.75, "75%"},
		{"percent decimals", "0.00%", 0.1234, "12.34%"},
		{"percent out of range", "0%", math.MaxFloat64, "1.79769313486232E+308"},
		{"thousands", "#,##0.00", 12345.678, "12,345.68"},
		{"thousands millions", "#,##0", 1234567, "1,234,567"},
		{"thousands small", "#,##0", 12, "12"},
		{"half away from zero", "0.00", 2.675, "2.68"},
		{"half away from zero negative", "0.0", -0.25, "-0.3"},
		{"binary noise", "0.00", 1.005, "1.01"},
		{"scale thousands", "#,##0,", 1234567, "1,235"},
		{"scale millions", `0.0,,"M"`, 12345678, "12.3M"},
		{"hash zero", "#", 0, ""},
		{"hash decimals zero", "#.##", 0, "."},
		{"leading decimal point", ".00", 0.5, ".50"},
		{"question pads", "?.??", 1.5, "1.5 "},
		{"zero pads", "00000", 42, "00042"},
		{"negative", "0.00", -3.5, "-3.50"},
		{"escaped literal", `\$0.00`, 3, "$3.00"},
		{"spacer", "0_)", 3, "3 "},
		{"fill renders once", "*-0", 3, "-3"},
		{"literal between digits", `000-00-0000`, 123456789, "123-45-6789"},
		{"fifteen digits", "0", 123456789012345678, "123456789012346000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format(tc.format, Number(tc.value)))
		})
	}
}

func TestFormatSections(t *testing.T) {
	const f = "0.00;(0.00)"
	assert.Equal(t, "42.50", format(f, Number(42.5)))
	assert.Equal(t, "(42.50)", format(f, Number(-42.5)))
	assert.Equal(t, "0.00", format(f, Number(0)))

	const accounting = `#,##0.00;[Red](#,##0.00);"zero";"text: "@`
	assert.Equal(t, "1,234.50", format(accounting, Number(1234.5)))
	assert.Equal(t, "(1,234.50)", format(accounting, Number(-1234.5)))
	assert.Equal(t, "zero", format(accounting, Number(0)))
	assert.Equal(t, "text: abc", format(accounting, Text("abc")))

	const bands = `[<=100]"low";[>100]"high"`
	assert.Equal(t, "low", format(bands, Number(50)))
	assert.Equal(t, "high", format(bands, Number(150)))

	// The negative section supplies its own sign.
	assert.Equal(t, "5", format("0;0", Number(-5)))
	assert.Equal(t, "", format("0;;", Number(-5)))
}

func TestFormatCulture(t *testing.T) {
	de := culture.MustLookup("de-DE")
	nf := New("#,##0.00")
	assert.Equal(t, "1.234.567,89", nf.Format(Number(1234567.891), de, false))

	fr := culture.MustLookup("fr-FR")
	assert.Equal(t, "1\u00a0234,50", nf.Format(Number(1234.5), fr, false))

	us := culture.MustLookup("en-US")
	assert.Equal(t, "12,345.68", nf.Format(Number(12345.678), us, false))
}

// ── exponential ───────────────────────────────────────────────────────────────

func TestFormatExponential(t *testing.T) {
	tests := []struct {
		format string
		value  float64
		want   string
	}{
		{"0.00E+00", 1234, "1.23E+03"},
		{"0.00E+00", 0.0001234, "1.23E-04"},
		{"0.00E+00", -1234, "-1.23E+03"},
		{"0.00E+00", 0, "0.00E+00"},
		{"0.00E+00", 9.999, "1.00E+01"},
		{"0.00E-00", 1234, "1.23E03"},
		{"0.00e+0", 1234, "1.23e+3"},
		{"##0.0E+0", 12345, "12.3E+3"},
		{"##0.0E+0", 1234567, "1.2E+6"},
		{"##0.0E+0", 0.0001234, "123.4E-6"},
		{"0E+00", 5, "5E+00"},
		{"0.00E+00", 5e-324, "4.94E-324"},
		{"0.00E+00", 1e-309, "1.00E-309"},
		{"##0.0E+0", 1e-309, "1.0E-309"},
		{"0.00E+00", math.MaxFloat64, "1.80E+308"},
	}
	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			assert.Equal(t, tc.want, format(tc.format, Number(tc.value)))
		})
	}
}

// ── fractions ─────────────────────────────────────────────────────────────────

func TestFormatFraction(t *testing.T) {
	tests := []struct {
		name   string
		format string
		value  float64
		want   string
	}{
		{"half", "# ?/?", 0.5, "0 1/2"},
		{"zero keeps width", "# ?/?", 0, "0    "},
		{"mixed", "# ?/?", 1.25, "1 1/4"},
		{"whole number keeps width", "# ?/?", 3, "3    "},
		{"negative", "# ?/?", -1.5, "-1 1/2"},
		{"improper", "?/?", 1.5, "3/2"},
		{"two digit denominator", "# ??/??", 3.14159, "3  1/7 "},
		{"bounded search", "?/?", 0.333, "1/3"},
		{"left aligned denominator", "?/???", 0.333, "1/3  "},
		{"fixed denominator", "# ?/4", 1.75, "1 3/4"},
		{"fixed denominator carries", "# ?/4", 0.99, "1    "},
		{"fixed without integer", "?/4", 1.5, "6/4"},
		{"zero numerator shown", "# 0/4", 2, "2 0/4"},
		{"suffix", `# ?/?" in"`, 2.5, "2 1/2 in"},
		{"numerator out of range", "?/?", 1e20, "1E+20"},
		{"fixed numerator out of range", "?/8", 1e20, "1E+20"},
		{"large integer part", "# ?/?", 1e20, "100000000000000000000    "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format(tc.format, Number(tc.value)))
		})
	}
}

func TestApproximate(t *testing.T) {
	tests := []struct {
		x      float64
		maxDen int64
		num    int64
		den    int64
	}{
		{0.5, 9, 1, 2},
		{0, 9, 0, 1},
		{0.75, 9, 3, 4},
		{0.14159, 99, 1, 7},
		{0.14159, 999, 16, 113},
		{1.5, 9, 3, 2},
	}
	for _, tc := range tests {
		num, den, ok := approximate(tc.x, tc.maxDen)
		require.True(t, ok)
		assert.Equal(t, tc.num, num, "numerator of %v", tc.x)
		assert.Equal(t, tc.den, den, "denominator of %v", tc.x)
	}

	_, _, ok := approximate(1e20, 9)
	assert.False(t, ok)
}

// ── dates ─────────────────────────────────────────────────────────────────────

func TestFormatDateSerial(t *testing.T) {
	tests := []struct {
		name   string
		format string
		serial float64
		want   string
	}{
		{"weekday and date", "DDDD DD/MM/YYYY", 45285, "Monday 25/12/2023"},
		{"day and month name", "DD-MMM", 45119, "12-Jul"},
		{"two digit year", "MM-DD-YY", 45367, "03-16-24"},
		{"iso", "yyyy-mm-dd", 45367, "2024-03-16"},
		{"month initial", "mmmmm", 45367, "M"},
		{"full month", "mmmm d, yyyy", 45367, "March 16, 2024"},
		{"three letter year", "yyy", 45367, "2024"},
		{"minutes after hours", "h:mm", 0.75, "18:00"},
		{"minutes before seconds", "mm:ss", 0.5 + 90.0/86400, "01:30"},
		{"twelve hour", "h:mm AM/PM", 0.75, "6:00 PM"},
		{"twelve hour morning", "hh:mm a/p", 0.25, "06:00 a"},
		{"twelve hour midnight", "h AM/PM", 0, "12 AM"},
		{"fractional seconds", "hh:mm:ss.000", 45296.789 / 86400, "12:34:56.789"},
		{"fractional seconds short", "ss.0", 45296.789 / 86400, "56.7"},
		{"rounds to whole seconds", "hh:mm:ss", 45296.789 / 86400, "12:34:57"},
		{"lotus leap day", "yyyy-mm-dd", 60, "1900-02-29"},
		{"day zero", "yyyy-mm-dd", 0, "1900-01-00"},
		{"commas collapse", "mmm d,, yyyy", 45367, "Mar 16, 2024"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format(tc.format, Number(tc.serial)))
		})
	}
}

func TestFormatDate1904(t *testing.T) {
	nf := New("yyyy-mm-dd")
	assert.Equal(t, "1904-01-01", nf.Format(Number(0), culture.Invariant, true))
	assert.Equal(t, "2024-03-16", nf.Format(Number(45367-1462), culture.Invariant, true))
}

func TestFormatDateTimeValue(t *testing.T) {
	v := DateTime(time.Date(2024, 3, 16, 14, 5, 9, 600_000_000, time.UTC))
	assert.Equal(t, "2024-03-16 14:05:10", format("yyyy-mm-dd hh:mm:ss", v))
	assert.Equal(t, "14:05:09.60", format("hh:mm:ss.00", v))
	assert.Equal(t, "Sat", format("ddd", v))
}

func TestFormatDateCulture(t *testing.T) {
	de := culture.MustLookup("de-DE")
	assert.Equal(t, "16.03.2024", New("dd/mm/yyyy").Format(Number(45367), de, false))
	assert.Equal(t, "Samstag, 16. März", New("dddd, d. mmmm").Format(Number(45367), de, false))

	// A [$-lcid] directive overrides the caller's culture.
	assert.Equal(t, "Montag", format("[$-407]dddd", Number(45285)))
	assert.Equal(t, "令和", format("[$-30411]ggg", Number(45285)))
	assert.Equal(t, "令", format("[$-30411]g", Number(45285)))

	ja := culture.MustLookup("ja-JP-u-ca-japanese")
	assert.Equal(t, "令和年", New(`ggg"年"`).Format(Number(45285), ja, false))
	assert.Equal(t, "05", New("yy").Format(Number(45285), ja, false))
}

// ── durations ─────────────────────────────────────────────────────────────────

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name   string
		format string
		value  Value
		want   string
	}{
		{"hours overflow", "[h]:mm", Duration(25*time.Hour + 30*time.Minute), "25:30"},
		{"serial hours", "[h]:mm:ss", Number(6.5 / 24), "6:30:00"},
		{"minutes overflow", "[mm]:ss", Number(90.0 / 86400), "01:30"},
		{"seconds overflow", "[ss]", Duration(2 * time.Hour), "7200"},
		{"padded hours", "[hh]:mm", Duration(3 * time.Hour), "03:00"},
		{"milliseconds", "[h]:mm:ss.00", Duration(time.Hour + 1500*time.Millisecond), "1:00:01.50"},
		{"rounds seconds", "[h]:mm:ss", Duration(59*time.Minute + 59*time.Second + 600*time.Millisecond), "1:00:00"},
		{"date codes read a duration as days", `d "days" h:mm`, Duration(50 * time.Hour), "2 days 2:00"},
		{"negative", "[h]:mm", Duration(-90 * time.Minute), "-1:30"},
		{"negative section supplies sign", `[h]:mm;([h]:mm)`, Duration(-90 * time.Minute), "(1:30)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format(tc.format, tc.value))
		})
	}
}

// ── general and text ──────────────────────────────────────────────────────────

func TestFormatGeneralText(t *testing.T) {
	assert.Equal(t, "1234.5", format("General", Number(1234.5)))
	assert.Equal(t, "1234.5", format("", Number(1234.5)))
	assert.Equal(t, "Total: 7", format(`"Total: "General`, Int(7)))
	assert.Equal(t, "(5)", format("General;(General)", Number(-5)))
	assert.Equal(t, "[abc]", format(`0;0;0;\[@\]`, Text("abc")))
	assert.Equal(t, "5", format("@", Number(5)))
}

// ── fallback ──────────────────────────────────────────────────────────────────

func TestFormatFallback(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		nf := New(`0 "kg`)
		assert.False(t, nf.IsValid())
		assert.Equal(t, "123456789.123457", nf.Format(Number(123456789.123456789), nil, false))
		assert.Equal(t, "abc", nf.Format(Text("abc"), nil, false))
		assert.Equal(t, "42", nf.Format(Int(42), nil, false))
	})

	t.Run("no matching section", func(t *testing.T) {
		assert.Equal(t, "abc", format("0.00", Text("abc")))
		assert.Equal(t, "5", format("[>100]0", Number(5)))
	})

	t.Run("render mismatch", func(t *testing.T) {
		assert.Equal(t, "01:30:00", format("0.00", Duration(90*time.Minute)))
		assert.Equal(t, "NaN", format("0.00", Number(math.NaN())))
	})

	t.Run("out of range date", func(t *testing.T) {
		assert.Equal(t, "-1", format("yyyy-mm-dd", Number(-1)))
	})
}

func TestFormatLogsFallback(t *testing.T) {
	var buf bytes.Buffer
	l := log.New()
	l.SetOutput(&buf)
	l.SetLevel(log.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	format("yyyy", Text("x"))
	assert.Empty(t, buf.String(), "dispatch misses are not logged")

	format("0.00", Duration(time.Minute))
	assert.Contains(t, buf.String(), "render fell back")
}

func TestFormatAny(t *testing.T) {
	nf := New("0.00")
	assert.Equal(t, "3.00", nf.FormatAny(3, nil, false))
	assert.Equal(t, "3.50", nf.FormatAny(float32(3.5), nil, false))
	assert.Equal(t, "3.50", nf.FormatAny(Number(3.5), nil, false))
	assert.Equal(t, "true", nf.FormatAny(true, nil, false))
	assert.Equal(t, "<nil>", nf.FormatAny(nil, nil, false))
}

func TestClassifier(t *testing.T) {
	tests := []struct {
		format   string
		valid    bool
		dateTime bool
		timeSpan bool
	}{
		{"0.00", true, false, false},
		{"yyyy-mm-dd", true, true, false},
		{"[h]:mm", true, false, true},
		{"0;yyyy", true, true, false},
		{"[Purple]0", false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			nf := New(tc.format)
			assert.Equal(t, tc.valid, nf.IsValid())
			assert.Equal(t, tc.dateTime, nf.IsDateTimeFormat())
			assert.Equal(t, tc.timeSpan, nf.IsTimeSpanFormat())
			assert.Equal(t, tc.format, nf.String())
		})
	}
	require.Len(t, New("0;0;0").Sections(), 3)
}
