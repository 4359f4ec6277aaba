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

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantJSON  bool
		wantDebug bool
	}{
		{"auto on a buffer is JSON", Config{}, true, false},
		{"explicit json", Config{Format: FormatJSON, Debug: true}, true, true},
		{"text", Config{Format: FormatText}, false, false},
		{"text debug", Config{Format: FormatText, Debug: true}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Writer = &buf
			l, err := New(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			l.Debug("debug record")
			l.Info("info record", "tag", "en-US")

			out := buf.String()
			if got := strings.Contains(out, "debug record"); got != tt.wantDebug {
				t.Errorf("debug record logged = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			lines := strings.Split(strings.TrimSpace(out), "\n")
			last := lines[len(lines)-1]
			var rec map[string]any
			isJSON := json.Unmarshal([]byte(last), &rec) == nil
			if isJSON != tt.wantJSON {
				t.Errorf("JSON output = %v, want %v: %q", isJSON, tt.wantJSON, last)
			}
			if !strings.Contains(last, "en-US") {
				t.Errorf("attribute missing: %q", last)
			}
			if !tt.wantJSON && strings.Contains(last, "\x1b[") {
				t.Errorf("colors written to a non-terminal: %q", last)
			}
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("New() should reject an unknown format")
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l, err := Setup(Config{Writer: &buf, Format: FormatJSON})
	if err != nil {
		t.Fatal(err)
	}
	if L() != l {
		t.Error("L() does not return the installed logger")
	}
	slog.Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("slog default not installed: %q", buf.String())
	}
}
