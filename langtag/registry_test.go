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

func TestRecord_IsGrandfathered(t *testing.T) {
	tests := []struct {
		typ  string
		want bool
	}{
		{"grandfathered", true},
		{"redundant", true},
		{"language", false},
		{"variant", false},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			r := &Record{Type: tt.typ}
			if got := r.IsGrandfathered(); got != tt.want {
				t.Errorf("IsGrandfathered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_Lookups(t *testing.T) {
	reg := &Registry{Records: map[string]Record{
		"language:iw": {Type: "language", Subtag: "iw", Deprecated: "1989-01-01", PreferredValue: "he"},
		"i-klingon":   {Type: "grandfathered", Tag: "i-klingon", PreferredValue: "tlh"},
		"odd":         {Type: "language", Tag: "odd"},
	}}

	rec, ok := reg.Subtag("language", "IW")
	if !ok || !rec.IsDeprecated() {
		t.Errorf("Subtag(language, IW) = %+v, %v", rec, ok)
	}
	if _, ok := reg.Subtag("region", "iw"); ok {
		t.Error("Subtag(region, iw) should not be found")
	}
	if rec, ok := reg.Tag("I-KLINGON"); !ok || rec.PreferredValue != "tlh" {
		t.Errorf("Tag(I-KLINGON) = %+v, %v", rec, ok)
	}
	if _, ok := reg.Tag("odd"); ok {
		t.Error("Tag() must only return grandfathered or redundant records")
	}

	var nilReg *Registry
	if _, ok := nilReg.Subtag("language", "en"); ok {
		t.Error("nil registry Subtag() should report false")
	}
	if _, ok := nilReg.Tag("i-klingon"); ok {
		t.Error("nil registry Tag() should report false")
	}
}
