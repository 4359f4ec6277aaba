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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package langtag

import (
	"errors"
	"reflect"
	"testing"
)

// newTestParser creates a parser backed by the given records only.
func newTestParser(records map[string]Record) *Parser {
	return NewParserFromRegistry(&Registry{Records: records})
}

func TestValidateSubtag(t *testing.T) {
	tests := []struct {
		subtag string
		want   error
	}{
		{"en", nil},
		{"12345678", nil},
		{"", ErrEmptySubtag},
		{"123456789", ErrSubtagTooLong},
		{"e_n", ErrForbiddenChar},
		{"éé", ErrForbiddenChar},
	}
	for _, tt := range tests {
		t.Run(tt.subtag, func(t *testing.T) {
			if got := validateSubtag(tt.subtag); !errors.Is(got, tt.want) {
				t.Errorf("validateSubtag(%q) = %v, want %v", tt.subtag, got, tt.want)
			}
		})
	}
}

func TestParseRun_State(t *testing.T) {
	run := newParseRun("sr-Latn-RS-x-foo")
	if err := run.parse(); err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	if run.language != "sr" || run.script != "latn" || run.region != "rs" {
		t.Errorf("parse() = %q %q %q", run.language, run.script, run.region)
	}
	if !reflect.DeepEqual(run.privateuse, []string{"foo"}) {
		t.Errorf("privateuse = %v", run.privateuse)
	}
	if run.state != stateInPrivateUse {
		t.Errorf("state = %v, want %v", run.state, stateInPrivateUse)
	}
}

func TestParseRun_Rollback(t *testing.T) {
	run := newParseRun("en-US-a-b")
	if err := run.parse(); !errors.Is(err, ErrEmptyExtension) {
		t.Fatalf("parse() error = %v, want %v", err, ErrEmptyExtension)
	}
	if len(run.extensions) != 0 {
		t.Errorf("extensions = %v, want none after rollback", run.extensions)
	}
	if run.state != stateAfterRegion {
		t.Errorf("state = %v, want %v", run.state, stateAfterRegion)
	}
}

func TestGetPositions(t *testing.T) {
	tests := []struct {
		tag  string
		want tagElementsPositions
	}{
		{"en", tagElementsPositions{2, 2, 2, 2, 2, 2, false}},
		{"zh-yue-Hant-HK", tagElementsPositions{2, 6, 11, 14, 14, 14, false}},
		{"de-DE-1901-u-co-phonebk", tagElementsPositions{2, 2, 2, 5, 10, 23, false}},
		{"x-foo", tagElementsPositions{0, 0, 0, 0, 0, 0, false}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			run := newParseRun(tt.tag)
			if err := run.parse(); err != nil {
				t.Fatalf("parse() error = %v", err)
			}
			if got := run.positions(); got != tt.want {
				t.Errorf("positions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	run := &parseRun{
		language:   "zh",
		script:     "hans",
		region:     "cn",
		variants:   []string{"wadegile"},
		extensions: []Extension{{Singleton: 't', Value: "en"}, {Singleton: 'u', Value: "latn"}},
		privateuse: []string{"apex"},
	}
	if got, want := run.languageTag().String(), "zh-Hans-CN-wadegile-t-en-u-latn-x-apex"; got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestCanonicalizeVariantOrder(t *testing.T) {
	parser := newTestParser(map[string]Record{
		"variant:rozaj": {Type: "variant", Subtag: "rozaj", Prefix: []string{"sl"}},
		"variant:biske": {Type: "variant", Subtag: "biske", Prefix: []string{"sl-rozaj"}},
	})
	run := &parseRun{language: "sl", variants: []string{"fonipa", "biske", "rozaj"}}
	run.canonicalizeVariantOrder(parser.registry)
	if want := []string{"rozaj", "biske", "fonipa"}; !reflect.DeepEqual(run.variants, want) {
		t.Errorf("variants = %v, want %v", run.variants, want)
	}
}

func TestCanonicalizeDeprecated(t *testing.T) {
	parser := newTestParser(map[string]Record{
		"language:in": {Type: "language", Subtag: "in", PreferredValue: "id"},
		"region:bu":   {Type: "region", Subtag: "BU", PreferredValue: "MM"},
	})
	run := &parseRun{language: "in", region: "bu"}
	run.canonicalizeDeprecated(parser.registry)
	if run.language != "id" || run.region != "mm" {
		t.Errorf("canonicalizeDeprecated() = %q %q, want id mm", run.language, run.region)
	}
}

func TestCanonicalizeExtlangToPrimary(t *testing.T) {
	reg := &Registry{Records: map[string]Record{
		"extlang:yue": {Type: "extlang", Subtag: "yue", PreferredValue: "yue", Prefix: []string{"zh"}},
	}}
	tests := []struct {
		name         string
		run          parseRun
		wantLanguage string
		wantExtlangs []string
	}{
		{"matching prefix", parseRun{language: "zh", extlangs: []string{"yue"}}, "yue", []string{}},
		{"other prefix", parseRun{language: "ar", extlangs: []string{"yue"}}, "ar", []string{"yue"}},
		{"unknown extlang", parseRun{language: "zh", extlangs: []string{"abc"}}, "zh", []string{"abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := tt.run
			run.canonicalizeExtlangToPrimary(reg)
			if run.language != tt.wantLanguage || !reflect.DeepEqual(run.extlangs, tt.wantExtlangs) {
				t.Errorf("got %q %v, want %q %v", run.language, run.extlangs, tt.wantLanguage, tt.wantExtlangs)
			}
		})
	}
}

func TestHandleSingleton_Checkpoint(t *testing.T) {
	run := &parseRun{state: stateAfterScript}
	if err := run.handleSingleton("u"); err != nil {
		t.Fatalf("handleSingleton() error = %v", err)
	}
	if run.checkpoint != stateAfterScript || run.state != stateInExtension {
		t.Errorf("checkpoint = %v state = %v", run.checkpoint, run.state)
	}
	if err := run.handleExtensionSubtag("ca"); err != nil {
		t.Fatalf("handleExtensionSubtag() error = %v", err)
	}
	if err := run.handleSingleton("x"); err != nil {
		t.Fatalf("handleSingleton(x) error = %v", err)
	}
	if run.checkpoint != stateAfterScript || run.state != stateInPrivateUse {
		t.Errorf("after x: checkpoint = %v state = %v", run.checkpoint, run.state)
	}
}
