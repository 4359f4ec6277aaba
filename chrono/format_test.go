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
	"testing"
	"time"
)

func TestDateTimeFormatter(t *testing.T) {
	formatter, err := OfPattern("yyyy-MM-dd HH:mm")
	if err != nil {
		t.Fatal(err)
	}
	datetime := DateTimeOf(2025, time.April, 1, 14, 0)

	if got := datetime.Format(formatter); got != "2025-04-01 14:00" {
		t.Errorf("Format() = %q, want %q", got, "2025-04-01 14:00")
	}
	parsed, err := formatter.ParseLocalDateTime("2025-04-01 14:00")
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(datetime) {
		t.Errorf("ParseLocalDateTime() = %v, want %v", parsed, datetime)
	}
}

func TestOfPattern(t *testing.T) {
	datetime := DateOf(2025, time.April, 1).AtTime(TimeOfNano(14, 0, 5, 123_000_000))
	tests := []struct {
		pattern    string
		wantLayout string
		want       string
	}{
		{"yyyy-MM-dd HH:mm", "2006-01-02 15:04", "2025-04-01 14:00"},
		{"dd/MM/yyyy 'at' hh:mm a", "02/01/2006 at 03:04 PM", "01/04/2025 at 02:00 PM"},
		{"yyyy-MM-dd'T'HH:mm:ss.SSS", "2006-01-02T15:04:05.000", "2025-04-01T14:00:05.123"},
		{"EEEE, MMMM d, yyyy", "Monday, January 2, 2006", "Tuesday, April 1, 2025"},
		{"EEE d MMM yy", "Mon 2 Jan 06", "Tue 1 Apr 25"},
		{"''yy''", "'06'", "'25'"},
		{"DDD", "002", "091"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f, err := OfPattern(tt.pattern)
			if err != nil {
				t.Fatalf("OfPattern() error = %v", err)
			}
			if got := f.Layout(); got != tt.wantLayout {
				t.Errorf("Layout() = %q, want %q", got, tt.wantLayout)
			}
			if got := f.Format(datetime); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if f.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q", f.Pattern())
			}
		})
	}
}

func TestOfPattern_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"yyyy-QQ", ErrUnknownPatternLetter},
		{"HH:mm:ssSSS", ErrUnsupportedPattern},
		{"H:mm", ErrUnsupportedPattern},
		{"MMMMM", ErrUnsupportedPattern},
		{"yyyy 'Day 1'", ErrUnsupportedPattern},
		{"EEE'day'", ErrUnsupportedPattern},
		{"HH_mm", ErrUnsupportedPattern},
		{"yyyy 'at", ErrUnterminatedQuote},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := OfPattern(tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("OfPattern(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestMustOfPattern_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustOfPattern() did not panic")
		}
	}()
	MustOfPattern("QQQ")
}

func TestFormatter_ParseErrors(t *testing.T) {
	f := MustOfPattern("yyyy-MM-dd HH:mm")
	if _, err := f.ParseLocalDateTime("2025/04/01 14:00"); err == nil {
		t.Error("ParseLocalDateTime() should fail on a different layout")
	}
}

func TestFormatter_Zoned(t *testing.T) {
	loc, err := LoadZone("+05:30")
	if err != nil {
		t.Fatal(err)
	}
	f := MustOfPattern("yyyy-MM-dd HH:mm XXX")
	instant := time.Date(2025, time.April, 1, 14, 0, 0, 0, loc)

	if got := f.FormatTime(instant); got != "2025-04-01 14:00 +05:30" {
		t.Errorf("FormatTime() = %q", got)
	}
	parsed, err := f.ParseTime("2025-04-01 14:00 +05:30", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(instant) {
		t.Errorf("ParseTime() = %v, want %v", parsed, instant)
	}
	if got := EpochMilli(parsed); got != instant.UnixMilli() {
		t.Errorf("EpochMilli() = %d", got)
	}
}
