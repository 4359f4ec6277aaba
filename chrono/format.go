/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package chrono

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Errors returned by OfPattern.
var (
	ErrUnknownPatternLetter = errors.New("unknown pattern letter")
	ErrUnsupportedPattern   = errors.New("pattern has no Go layout equivalent")
	ErrUnterminatedQuote    = errors.New("unterminated quote in pattern")
)

// patternFields maps a pattern letter and its repeat count to a Go layout
// element. A count missing from the inner map uses the entry for 0.
//
//nolint:gochecknoglobals // static mapping table.
var patternFields = map[byte]map[int]string{
	'y': {0: "2006", 2: "06"},
	'u': {0: "2006", 2: "06"},
	'M': {1: "1", 2: "01", 3: "Jan", 4: "January"},
	'L': {1: "1", 2: "01", 3: "Jan", 4: "January"},
	'd': {1: "2", 2: "02"},
	'D': {3: "002"},
	'H': {2: "15"},
	'h': {1: "3", 2: "03"},
	'm': {1: "4", 2: "04"},
	's': {1: "5", 2: "05"},
	'a': {1: "PM"},
	'E': {0: "Mon", 4: "Monday"},
	'z': {0: "MST"},
	'Z': {0: "-0700"},
	'X': {1: "Z07", 2: "Z0700", 3: "Z07:00"},
	'x': {1: "-07", 2: "-0700", 3: "-07:00"},
}

// layoutWords appear in Go layouts and cannot be used as literal text.
//
//nolint:gochecknoglobals // static list.
var layoutWords = []string{"Jan", "January", "Mon", "Monday", "MST", "PM", "pm", "Z07"}

// Formatter formats and parses local date times with a DateTimeFormatter
// pattern such as "yyyy-MM-dd HH:mm".
type Formatter struct {
	pattern string
	layout  string
}

// OfPattern compiles pattern. Letters are fields, text between single quotes
// is literal and '' is a quote. Fractions of a second (S) must follow a '.'
// or a ','.
func OfPattern(pattern string) (*Formatter, error) {
	var layout strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			lit, next, err := quoted(pattern, i)
			if err != nil {
				return nil, err
			}
			if err := appendLiteral(&layout, lit, pattern); err != nil {
				return nil, err
			}
			i = next
		case isPatternLetter(c):
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			elem, err := field(c, n, layout.String(), pattern)
			if err != nil {
				return nil, err
			}
			layout.WriteString(elem)
			i += n
		default:
			if err := appendLiteral(&layout, string(c), pattern); err != nil {
				return nil, err
			}
			i++
		}
	}
	return &Formatter{pattern: pattern, layout: layout.String()}, nil
}

// MustOfPattern is like OfPattern but panics on error.
func MustOfPattern(pattern string) *Formatter {
	f, err := OfPattern(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

func isPatternLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// quoted reads the literal starting at the quote at i and returns it with the
// index following the closing quote.
func quoted(pattern string, i int) (string, int, error) {
	if i+1 < len(pattern) && pattern[i+1] == '\'' {
		return "'", i + 2, nil
	}
	var lit strings.Builder
	for j := i + 1; j < len(pattern); j++ {
		if pattern[j] != '\'' {
			lit.WriteByte(pattern[j])
			continue
		}
		if j+1 < len(pattern) && pattern[j+1] == '\'' {
			lit.WriteByte('\'')
			j++
			continue
		}
		return lit.String(), j + 1, nil
	}
	return "", 0, fmt.Errorf("%w: %q", ErrUnterminatedQuote, pattern)
}

func field(c byte, n int, layoutSoFar, pattern string) (string, error) {
	if c == 'S' {
		if n > 9 || !strings.HasSuffix(layoutSoFar, ".") && !strings.HasSuffix(layoutSoFar, ",") {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedPattern, pattern)
		}
		return strings.Repeat("0", n), nil
	}
	counts, ok := patternFields[c]
	if !ok {
		return "", fmt.Errorf("%w: %q in %q", ErrUnknownPatternLetter, c, pattern)
	}
	if elem, ok := counts[n]; ok {
		return elem, nil
	}
	if elem, ok := counts[0]; ok {
		return elem, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPattern, strings.Repeat(string(c), n))
}

func appendLiteral(layout *strings.Builder, lit, pattern string) error {
	if strings.ContainsAny(lit, "0123456789_") {
		return fmt.Errorf("%w: literal %q in %q", ErrUnsupportedPattern, lit, pattern)
	}
	before := layout.String()
	for _, w := range layoutWords {
		// a literal may neither contain a layout word nor complete one
		if strings.Count(before+lit, w) > strings.Count(before, w) {
			return fmt.Errorf("%w: literal %q in %q", ErrUnsupportedPattern, lit, pattern)
		}
	}
	layout.WriteString(lit)
	return nil
}

// Pattern returns the pattern f was compiled from.
func (f *Formatter) Pattern() string { return f.pattern }

// Layout returns the equivalent time.Format layout.
func (f *Formatter) Layout() string { return f.layout }

// Format renders dt.
func (f *Formatter) Format(dt LocalDateTime) string { return dt.utc().Format(f.layout) }

// FormatTime renders an instant in its own zone.
func (f *Formatter) FormatTime(t time.Time) string { return t.Format(f.layout) }

// ParseLocalDateTime reads s and returns its date and time, ignoring any zone.
func (f *Formatter) ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.ParseInLocation(f.layout, s, time.UTC)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("parse %q with pattern %q: %w", s, f.pattern, err)
	}
	return LocalDateTime{civil.DateTimeOf(t)}, nil
}

// ParseTime reads s as an instant. Values without a zone are read in loc.
func (f *Formatter) ParseTime(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(f.layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q with pattern %q: %w", s, f.pattern, err)
	}
	return t, nil
}
