package numfmt

import (
	"math"
	"time"
)

// Kind is the runtime kind of a [Value].
type Kind int

const (
	KindInvalid Kind = iota
	KindNumber
	KindText
	KindDateTime
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	}
	return "invalid"
}

// numberOrigin remembers which Go type a number came from so the
// compatibility conversion can choose its precision.
type numberOrigin uint8

const (
	originFloat64 numberOrigin = iota
	originFloat32
	originInt
)

// Value is a cell value to be formatted.  The zero Value is invalid and
// always renders through the compatibility conversion.
type Value struct {
	kind   Kind
	origin numberOrigin
	num    float64
	i      int64
	str    string
	t      time.Time
	d      time.Duration
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Float32 returns a numeric Value that stringifies with single precision.
func Float32(f float32) Value {
	return Value{kind: KindNumber, origin: originFloat32, num: float64(f)}
}

// Int returns an integral numeric Value.
func Int(i int64) Value {
	return Value{kind: KindNumber, origin: originInt, num: float64(i), i: i}
}

// Text returns a string Value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// DateTime returns a date/time Value.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// Duration returns an elapsed-time Value.
func Duration(d time.Duration) Value { return Value{kind: KindDuration, d: d} }

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric magnitude used for section dispatch: the number
// itself, or a duration's total days.  ok is false for other kinds.
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindDuration:
		return v.d.Hours() / 24, true
	}
	return 0, false
}

// ValueOf converts a Go value to a Value.  It accepts every integer and
// float width, string, time.Time and time.Duration.
func ValueOf(x any) (Value, bool) {
	switch x := x.(type) {
	case Value:
		return x, true
	case float64:
		return Number(x), true
	case float32:
		return Float32(x), true
	case int:
		return Int(int64(x)), true
	case int8:
		return Int(int64(x)), true
	case int16:
		return Int(int64(x)), true
	case int32:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case uint:
		return unsigned(uint64(x)), true
	case uint8:
		return Int(int64(x)), true
	case uint16:
		return Int(int64(x)), true
	case uint32:
		return Int(int64(x)), true
	case uint64:
		return unsigned(x), true
	case string:
		return Text(x), true
	case time.Time:
		return DateTime(x), true
	case time.Duration:
		return Duration(x), true
	}
	return Value{}, false
}

func unsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Number(float64(u))
	}
	return Int(int64(u))
}
