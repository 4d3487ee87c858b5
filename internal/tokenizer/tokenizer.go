// Package tokenizer splits ECMA-376 number-format strings into opaque string
// tokens.  Tokens carry no computed value: every later decision (section
// type, digit layout, literal rendering) is made structurally from the token
// text by the predicates in this package.
//
// It exists so that the numfmt parser and renderer share exactly one
// definition of what a placeholder, a literal, or a date part looks like.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnterminated is returned when a quoted string, a bracket directive, or
// an escape/fill/spacer prefix runs off the end of the format string.
var ErrUnterminated = errors.New("tokenizer: unterminated token")

// SectionSeparator is the token that ends one format section.
const SectionSeparator = ";"

// Reader reads tokens sequentially from a complete format string.  A
// semicolon inside a quoted string or a bracket is part of that token and
// never separates sections.
type Reader struct {
	s   string
	pos int
}

// NewReader returns a Reader positioned at the start of format.
func NewReader(format string) *Reader {
	return &Reader{s: format}
}

// EOF reports whether every byte of the format string has been consumed.
func (r *Reader) EOF() bool { return r.pos >= len(r.s) }

// Next returns the next token.  At the end of input it returns "" and a nil
// error.
func (r *Reader) Next() (string, error) {
	if r.EOF() {
		return "", nil
	}
	start := r.pos
	rest := r.s[start:]
	c := rest[0]

	switch {
	case c == '"':
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return "", fmt.Errorf("%w: quote at offset %d", ErrUnterminated, start)
		}
		r.pos += end + 2

	case c == '\\' || c == '*' || c == '_':
		if len(rest) < 2 {
			return "", fmt.Errorf("%w: %q at offset %d", ErrUnterminated, c, start)
		}
		_, n := utf8.DecodeRuneInString(rest[1:])
		r.pos += 1 + n

	case c == '[':
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", fmt.Errorf("%w: bracket at offset %d", ErrUnterminated, start)
		}
		r.pos += end + 1

	case (c == 'E' || c == 'e') && len(rest) > 1 && (rest[1] == '+' || rest[1] == '-'):
		r.pos += 2

	case hasPrefixFold(rest, "General"):
		r.pos += len("General")

	case hasPrefixFold(rest, "am/pm"):
		r.pos += len("am/pm")

	case hasPrefixFold(rest, "a/p"):
		r.pos += len("a/p")

	case isDateLetter(c):
		r.pos++
		for r.pos < len(r.s) && toLower(r.s[r.pos]) == toLower(c) {
			r.pos++
		}

	default:
		_, n := utf8.DecodeRuneInString(rest)
		r.pos += n
	}
	return r.s[start:r.pos], nil
}

// ReadSection returns the tokens of the next section.  more is true when the
// section was terminated by a separator, meaning another (possibly empty)
// section follows.
func (r *Reader) ReadSection() (tokens []string, more bool, err error) {
	for !r.EOF() {
		tok, err := r.Next()
		if err != nil {
			return nil, false, err
		}
		if tok == SectionSeparator {
			return tokens, true, nil
		}
		tokens = append(tokens, tok)
	}
	return tokens, false, nil
}

// Tokenize splits a single section (or a whole format string, in which case
// the separators are returned as ";" tokens) into tokens.
//
// Tokenize is not total: an unterminated quote, an unterminated bracket, or a
// trailing \, * or _ returns an error wrapping [ErrUnterminated] instead of
// a best-effort token list.  The parser turns that error into an invalid
// format, which renders through the compatibility conversion.
func Tokenize(section string) ([]string, error) {
	r := NewReader(section)
	var tokens []string
	for !r.EOF() {
		tok, err := r.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func isDateLetter(c byte) bool {
	switch toLower(c) {
	case 'y', 'm', 'd', 'h', 's', 'g':
		return true
	}
	return false
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
