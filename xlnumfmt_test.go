package xlnumfmt_test

// Unit tests for the root convenience API.  Formatting internals are covered
// in depth by the numfmt package; these tests pin the public surface.

import (
	"math"
	"testing"
	"time"

	"github.com/TsubasaBE/go-xlnumfmt"
	"github.com/TsubasaBE/go-xlnumfmt/culture"
)

// ── ConvertDate ───────────────────────────────────────────────────────────────

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    time.Time
		wantErr bool
	}{
		{
			name:  "serial 0 gives 1900-01-01",
			input: 0,
			want:  time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 0 with time component",
			input: 0.5,
			want:  time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 1 gives 1900-01-01 (base+1 day)",
			input: 1,
			want:  time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 60 gives 1900-03-01 (phantom leap day)",
			input: 60,
			want:  time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 61 compensates for Lotus leap-year bug",
			input: 61,
			want:  time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "41235.45578 rounds to the second",
			input: 41235.45578,
			want:  time.Date(2012, 11, 22, 10, 56, 19, 0, time.UTC),
		},
		{
			name:    "+Inf returns error",
			input:   math.Inf(1),
			wantErr: true,
		},
		{
			name:    "negative serial returns error",
			input:   -1,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := xlnumfmt.ConvertDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ConvertDate(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestConvertDateEx(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		date1904 bool
		want     time.Time
		wantErr  bool
	}{
		// ── 1900 system (date1904=false) ──────────────────────────────────────
		{
			name:  "1900: serial 0 gives 1900-01-01",
			input: 0,
			want:  time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		// ── 1904 system (date1904=true) ───────────────────────────────────────
		{
			name:     "1904: serial 0 gives 1904-01-01",
			input:    0,
			date1904: true,
			want:     time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "1904: serial 0 with time component",
			input:    0.5,
			date1904: true,
			want:     time.Date(1904, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "1904: serial 365 gives 1904-12-31",
			input:    365,
			date1904: true,
			want:     time.Date(1904, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			// 39813 + 1462 = 41275, which is 2013-01-01 in the 1900 system.
			name:     "1904: serial 39813 gives 2013-01-01",
			input:    39813,
			date1904: true,
			want:     time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		// ── error cases ───────────────────────────────────────────────────────
		{
			name:     "1904: NaN returns error",
			input:    math.NaN(),
			date1904: true,
			wantErr:  true,
		},
		{
			name:     "1904: negative serial returns error",
			input:    -1,
			date1904: true,
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := xlnumfmt.ConvertDateEx(tc.input, tc.date1904)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (result=%v)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ConvertDateEx(%v, %v) = %v, want %v", tc.input, tc.date1904, got, tc.want)
			}
		})
	}
}

// ── IsDateFormat ──────────────────────────────────────────────────────────────

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		formatStr string
		want      bool
	}{
		// ── built-in date and time IDs ────────────────────────────────────────
		{name: "built-in 14 (m/d/yyyy)", id: 14, want: true},
		{name: "built-in 17", id: 17, want: true},
		{name: "built-in 18 (h:mm AM/PM)", id: 18, want: true},
		{name: "built-in 22 (m/d/yyyy h:mm)", id: 22, want: true},
		{name: "built-in 27", id: 27, want: true},
		{name: "built-in 46 ([h]:mm:ss)", id: 46, want: true},
		{name: "built-in 58", id: 58, want: true},
		// ── built-in non-date IDs ─────────────────────────────────────────────
		{name: "built-in 0 (General)", id: 0, want: false},
		{name: "built-in 11 (0.00E+00)", id: 11, want: false},
		{name: "built-in 49 (@)", id: 49, want: false},
		{name: "boundary 13", id: 13, want: false},
		{name: "boundary 23", id: 23, want: false},
		{name: "boundary 163", id: 163, want: false},
		// ── custom format IDs (>= 164) ────────────────────────────────────────
		{name: "custom yyyy-mm-dd", id: 164, formatStr: "yyyy-mm-dd", want: true},
		{name: "custom dd/mm/yyyy hh:mm", id: 165, formatStr: "dd/mm/yyyy hh:mm", want: true},
		{name: "custom numeric 0.00", id: 166, formatStr: "0.00", want: false},
		{name: "custom text @", id: 167, formatStr: "@", want: false},
		// d inside double quotes must not trigger
		{name: "custom quoted d", id: 168, formatStr: `"date"0.00`, want: false},
		// y inside square brackets (locale) must not trigger
		{name: "custom bracketed y", id: 169, formatStr: `[$-409]0.00`, want: false},
		// uppercase variants
		{name: "custom YYYY", id: 170, formatStr: "YYYY", want: true},
		{name: "custom HH", id: 173, formatStr: "HH:MM", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := xlnumfmt.IsDateFormat(tc.id, tc.formatStr)
			if got != tc.want {
				t.Errorf("IsDateFormat(%d, %q) = %v, want %v", tc.id, tc.formatStr, got, tc.want)
			}
		})
	}
}

// ── FormatValue ───────────────────────────────────────────────────────────────

func TestFormatValueGeneral(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, ""},
		{"bool true", true, "TRUE"},
		{"bool false", false, "FALSE"},
		{"string passthrough", "hello", "hello"},
		{"integer float", float64(42), "42"},
		{"fractional float", float64(3.14), "3.14"},
		{"int", 7, "7"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := xlnumfmt.FormatValue(tc.v, 0, "", nil, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tc.v, got, tc.want)
			}
		})
	}
}

func TestFormatValueCustom(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		fmtStr string
		want   string
	}{
		{"0.00 with 303.6", 303.6, "0.00", "303.60"},
		{"0.00 with zero", 0.0, "0.00", "0.00"},
		{"0.## trims trailing zero", 1.5, "0.##", "1.5"},
		{"0 integer only", 42.9, "0", "43"},
		{"E prefix", 40013205, `"E"0`, "E40013205"},
		{"unit suffix kg", 18000, `0" kg"`, "18000 kg"},
		{"0% with 0.75", 0.75, "0%", "75%"},
		{"0.00% with 0.1234", 0.1234, "0.00%", "12.34%"},
		{"long date", 45285, "DDDD DD/MM/YYYY", "Monday 25/12/2023"},
		{"DD-MMM", 45119, "DD-MMM", "12-Jul"},
		{"MM-DD-YY", 45367, "MM-DD-YY", "03-16-24"},
		{"positive section", 42.5, "0.00;(0.00)", "42.50"},
		{"negative section parentheses", -42.5, "0.00;(0.00)", "(42.50)"},
		{"zero falls to positive section (2-section)", 0.0, "0.00;(0.00)", "0.00"},
		{"colour-only format shows General", 42.5, "[Red]", "42.5"},
		{"colour and date", 45285, "[Red]D", "25"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := xlnumfmt.FormatValue(tc.v, 164, tc.fmtStr, nil, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tc.v, tc.fmtStr, got, tc.want)
			}
		})
	}
}

func TestFormatValueBuiltIn(t *testing.T) {
	us := culture.MustLookup("en-US")
	tests := []struct {
		name     string
		v        float64
		id       int
		date1904 bool
		want     string
	}{
		{"short date", 45412, 14, false, "4/30/2024"},
		{"short date 1904", 45412 - 1462, 14, true, "4/30/2024"},
		{"elapsed", 6.5 / 24, 46, false, "6:30:00"},
		{"thousands", 1234567.891, 4, false, "1,234,567.89"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := xlnumfmt.FormatValue(tc.v, tc.id, "", us, tc.date1904)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %d) = %q, want %q", tc.v, tc.id, got, tc.want)
			}
		})
	}
}

func TestFormatCulture(t *testing.T) {
	de := culture.MustLookup("de-DE")
	if got, want := xlnumfmt.Format("#,##0.00", 1234.5, de, false), "1.234,50"; got != want {
		t.Errorf("Format(de-DE) = %q, want %q", got, want)
	}
	if got, want := xlnumfmt.Format("General", 1234.5, de, false), "1234,5"; got != want {
		t.Errorf("Format(General, de-DE) = %q, want %q", got, want)
	}
}

func TestSetCacheSize(t *testing.T) {
	xlnumfmt.SetCacheSize(1)
	t.Cleanup(func() { xlnumfmt.SetCacheSize(xlnumfmt.DefaultCacheSize) })

	for _, f := range []string{"0.0", "0.00", "0.0"} {
		if got := xlnumfmt.Format(f, 1, nil, false); got == "" {
			t.Errorf("Format(%q) returned empty string", f)
		}
	}
}
