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

import "testing"

func TestSubtagPredicates(t *testing.T) {
	tests := []struct {
		name    string
		pred    func(string) bool
		valid   []string
		invalid []string
	}{
		{"IsLanguage", IsLanguage, []string{"en", "afr", "abcd", "abcdefgh"}, []string{"", "e", "abcdefghi", "e1", "en-"}},
		{"IsExtlang", IsExtlang, []string{"yue", "CMN"}, []string{"yu", "yuee", "y1e"}},
		{"IsScript", IsScript, []string{"Hans", "latn"}, []string{"Han", "Hans1", "12ab"}},
		{"IsRegion", IsRegion, []string{"US", "cn", "419", "001"}, []string{"U", "USA", "41", "4190", "1a"}},
		{"IsVariant", IsVariant, []string{"1901", "wadegile", "fonipa", "1a2b"}, []string{"abcd", "123", "thisvariantistoolong", "wade_gil"}},
		{"IsExtensionSingleton", IsExtensionSingleton, []string{"u", "T", "1"}, []string{"x", "X", "uu", ""}},
		{"IsExtensionSubtag", IsExtensionSubtag, []string{"ca", "japanese", "12"}, []string{"c", "thisextensionistoolong", "a-b"}},
		{"IsPrivateUseSubtag", IsPrivateUseSubtag, []string{"1", "apex", "lvariant"}, []string{"", "thisvariantistoolong", "a_b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.valid {
				if !tt.pred(s) {
					t.Errorf("%s(%q) = false, want true", tt.name, s)
				}
			}
			for _, s := range tt.invalid {
				if tt.pred(s) {
					t.Errorf("%s(%q) = true, want false", tt.name, s)
				}
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"latn", "Latn"},
		{"HANS", "Hans"},
		{"q", "Q"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
