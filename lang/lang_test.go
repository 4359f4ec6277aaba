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

package lang

import (
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	if got := Abs(-5); got != 5 {
		t.Errorf("Abs(-5) = %d", got)
	}
	if got := Abs(int8(7)); got != 7 {
		t.Errorf("Abs(7) = %d", got)
	}
	if got := Abs(int32(math.MinInt32)); got >= 0 {
		t.Errorf("Abs(MinInt32) = %d, want a negative overflow", got)
	}
	if got := Abs(int64(math.MinInt64)); got >= 0 {
		t.Errorf("Abs(MinInt64) = %d, want a negative overflow", got)
	}
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first", []string{"a", "b"}, "a"},
		{"skips zero", []string{"", "", "c"}, "c"},
		{"all zero", []string{"", ""}, ""},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coalesce(tt.values...); got != tt.want {
				t.Errorf("Coalesce(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestDeref(t *testing.T) {
	var text *string
	if got := len(Deref(text, "")); got != 0 {
		t.Errorf("len(Deref(nil)) = %d, want 0", got)
	}
	if got := Deref(Ptr("hello"), ""); got != "hello" {
		t.Errorf("Deref() = %q, want hello", got)
	}
}

func TestTypeSwitch(t *testing.T) {
	var text any = "hello"
	s, ok := text.(string)
	if !ok || s != "hello" {
		t.Errorf("type assertion = %q, %v", s, ok)
	}
}

type widget struct {
	DefaultValuer
}

type gadget struct {
	DoublingValuer
}

type override struct {
	DefaultValuer
}

func (override) Value() int { return 1 }

func TestDefaultMethods(t *testing.T) {
	tests := []struct {
		name string
		v    Valuer
		want int
	}{
		{"embedded default", widget{}, 10},
		{"private helper", gadget{}, 40},
		{"overridden", override{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}
