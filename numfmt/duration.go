package numfmt

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/TsubasaBE/go-xlnumfmt/internal/tokenizer"
)

// maxDurationDays is the largest magnitude a time.Duration can hold.
const maxDurationDays = float64(math.MaxInt64 / int64(24*time.Hour))

func formatDuration(v Value, s *Section) (string, error) {
	var d time.Duration
	switch v.kind {
	case KindDuration:
		d = v.d
	case KindNumber:
		if math.IsNaN(v.num) || math.Abs(v.num) > maxDurationDays {
			return "", fmt.Errorf("numfmt: %v days does not fit a duration", v.num)
		}
		d = time.Duration(math.Round(v.num*float64(24*time.Hour/time.Millisecond))) * time.Millisecond
	default:
		return "", fmt.Errorf("%w: %v", ErrValueKind, v.kind)
	}
	if !hasFractionalSeconds(s.Parts) {
		d = d.Round(time.Second)
	}

	var b strings.Builder
	if d < 0 {
		if !s.hidesSign() {
			b.WriteByte('-')
		}
		d = -d
	}
	writeDuration(&b, d, s.Parts)
	return b.String(), nil
}

// writeDuration renders a non-negative duration.  A bracketed code prints
// the total count of its unit and removes that amount, so the codes after
// it show the remainder.
func writeDuration(b *strings.Builder, d time.Duration, tokens []string) {
	for _, tok := range tokens {
		if tokenizer.IsDurationPart(tok) {
			unit := unitOf(rune(tok[1]))
			total := d / unit
			writePadded(b, int(total), len(tok)-2)
			d -= total * unit
			continue
		}
		n := len(tok)
		switch lead := unicode.ToLower(rune(tok[0])); {
		case tokenizer.IsFractionalSeconds(tok):
			writeMillis(b, int(d%time.Second/time.Millisecond), n-1)
		case lead == 'd' && tokenizer.IsDatePart(tok):
			writePadded(b, int(d/(24*time.Hour)), n)
		case lead == 'h' && tokenizer.IsDatePart(tok):
			writePadded(b, int(d/time.Hour%24), n)
		case lead == 'm' && tokenizer.IsDatePart(tok):
			writePadded(b, int(d/time.Minute%60), n)
		case lead == 's' && tokenizer.IsDatePart(tok):
			writePadded(b, int(d/time.Second%60), n)
		default:
			writeLiteral(b, tok)
		}
	}
}

func unitOf(r rune) time.Duration {
	switch unicode.ToLower(r) {
	case 'h':
		return time.Hour
	case 'm':
		return time.Minute
	}
	return time.Second
}
