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

package icu

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/jplu/lingo/jdk"
)

func mustBuild(t *testing.T, setters ...func(b *Builder) error) Locale {
	t.Helper()
	b := NewBuilder()
	for _, set := range setters {
		if err := set(b); err != nil {
			t.Fatalf("builder setter failed: %v", err)
		}
	}
	return b.Build()
}

func lang(s string) func(*Builder) error {
	return func(b *Builder) error { return b.SetLanguage(s) }
}

func script(s string) func(*Builder) error {
	return func(b *Builder) error { return b.SetScript(s) }
}

func region(s string) func(*Builder) error {
	return func(b *Builder) error { return b.SetRegion(s) }
}

func variant(s string) func(*Builder) error {
	return func(b *Builder) error { return b.SetVariant(s) }
}

func extension(k rune, v string) func(*Builder) error {
	return func(b *Builder) error { return b.SetExtension(k, v) }
}

func TestLocale_StringRepresentations(t *testing.T) {
	locale := mustBuild(t,
		lang("zh"), script("Hans"), region("CN"), variant("wadegile"),
		extension('t', "en"), extension('u', "latn"), extension('x', "apex"),
	)

	if got, want := locale.String(), "zh_Hans_CN_WADEGILE@attribute=latn;t=en;x=apex"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := locale.Variant(); got != "WADEGILE" {
		t.Errorf("Variant() = %q, want %q", got, "WADEGILE")
	}
	if got := locale.DisplayVariant(); got != "Wade-Giles Romanization" {
		t.Errorf("DisplayVariant() = %q, want %q", got, "Wade-Giles Romanization")
	}

	tag := "zh-Hans-CN-wadegile-t-en-u-latn-x-apex"
	if got := locale.LanguageTag(); got != tag {
		t.Errorf("LanguageTag() = %q, want %q", got, tag)
	}
	icuLocale := ForLanguageTag(tag)
	if !icuLocale.Equal(locale) {
		t.Errorf("ForLanguageTag(%q) = %v, want %v", tag, icuLocale, locale)
	}

	jdkLocale := jdk.ForLanguageTag(tag)
	if jdkLocale.Equal(icuLocale.ToJDK()) {
		t.Errorf("ToJDK() = %v should differ from %v by the variant case", icuLocale.ToJDK(), jdkLocale)
	}

	b := jdk.NewBuilder()
	if err := b.SetLocale(icuLocale.ToJDK()); err != nil {
		t.Fatalf("SetLocale() error = %v", err)
	}
	if err := b.SetVariant(strings.ToLower(icuLocale.Variant())); err != nil {
		t.Fatalf("SetVariant() error = %v", err)
	}
	if transformed := b.Build(); !jdkLocale.Equal(transformed) {
		t.Errorf("lowercased conversion = %v, want %v", transformed, jdkLocale)
	}
}

func TestLocale_NonEquivalentLegacyCodes(t *testing.T) {
	iw := New("iw")
	he := New("he")

	if got := iw.String(); got != "iw" {
		t.Errorf("iw.String() = %q", got)
	}
	if got := he.String(); got != "he" {
		t.Errorf("he.String() = %q", got)
	}
	if iw.Language() != "iw" || he.Language() != "he" {
		t.Errorf("Language() = %q, %q", iw.Language(), he.Language())
	}
	if iw.LanguageTag() != "he" || he.LanguageTag() != "he" {
		t.Errorf("LanguageTag() = %q, %q, want he", iw.LanguageTag(), he.LanguageTag())
	}
	if iw.Equal(he) {
		t.Error("iw and he should not be equal")
	}
	if !iw.Canonicalize().Equal(he) {
		t.Errorf("iw.Canonicalize() = %v, want he", iw.Canonicalize())
	}
}

func TestLocale_LanguageCodes(t *testing.T) {
	af2 := New("af")
	af3 := New("afr")

	for _, l := range []Locale{af2, af3} {
		if got := l.String(); got != "af" {
			t.Errorf("String() = %q, want af", got)
		}
		if got := l.Language(); got != "af" {
			t.Errorf("Language() = %q, want af", got)
		}
		if got := l.LanguageTag(); got != "af" {
			t.Errorf("LanguageTag() = %q, want af", got)
		}
	}
	if !af2.Equal(af3) {
		t.Error("af and afr should be equal")
	}
}

func TestLocale_Normalization(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Locale
		want    string
		wantTag string
	}{
		{"language case", New("en"), New("EN"), "en", "en"},
		{"country case", Compose("fr", "fr"), Compose("fr", "FR"), "fr_FR", "fr-FR"},
		{"locale id separators", New("fr-fr"), New("fr_FR"), "fr_FR", "fr-FR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.a.Equal(tt.b) {
				t.Errorf("%v should equal %v", tt.a, tt.b)
			}
			for _, l := range []Locale{tt.a, tt.b} {
				if got := l.Name(); got != tt.want {
					t.Errorf("Name() = %q, want %q", got, tt.want)
				}
				if got := l.LanguageTag(); got != tt.wantTag {
					t.Errorf("LanguageTag() = %q, want %q", got, tt.wantTag)
				}
			}
		})
	}
	if got := Compose("fr", "fr").Country(); got != "FR" {
		t.Errorf("Country() = %q, want FR", got)
	}
}

func TestLocale_LanguageTag(t *testing.T) {
	tests := []struct {
		name   string
		locale Locale
		want   string
	}{
		{"unknown language kept", New("abcd"), "abcd"},
		{"alpha region", Compose("fr", "FR"), "fr-FR"},
		{"numeric region", Compose("fr", "250"), "fr-250"},
		{"variant lowercased", Compose("en", "US", "variant"), "en-US-variant"},
		{"short variant", Compose("en", "US", "1"), "en-US-x-lvariant-1"},
		{"long variant", Compose("en", "US", "thisvariantistoolong"), "en-US"},
		{"legacy keywords", New("de_DE@collation=phonebook;calendar=gregorian"), "de-DE-u-ca-gregory-co-phonebk"},
		{"keyword without BCP 47 form", New("en_US@timezone=America/New_York"), "en-US"},
		{"deprecated language", New("mo_MD"), "ro-MD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.locale.LanguageTag(); got != tt.want {
				t.Errorf("LanguageTag() = %q, want %q", got, tt.want)
			}
		})
	}
	if Compose("fr", "FR").Equal(Compose("fr", "250")) {
		t.Error("fr_FR and fr_250 should not be equal")
	}
}

func TestLocale_Names(t *testing.T) {
	tests := []struct {
		name   string
		locale Locale
		want   string
	}{
		{"variant uppercased", Compose("en", "US", "variant"), "en_US_VARIANT"},
		{"short variant", Compose("en", "US", "1"), "en_US_1"},
		{"long variant", Compose("en", "US", "thisvariantistoolong"), "en_US_THISVARIANTISTOOLONG"},
		{"variant without country", New("en__posix"), "en__POSIX"},
		{"script", mustBuild(t, lang("en"), script("Hant")), "en_Hant"},
		{"private use keyword", mustBuild(t, lang("en"), extension('x', "1")), "en@x=1"},
		{"removed private use", mustBuild(t, lang("en"), extension('x', "")), "en"},
		{"unicode keywords", ForLanguageTag("ja-JP-u-ca-japanese-co-trad"), "ja_JP@calendar=japanese;collation=traditional"},
		{"keywords sorted", New("en@Numbers=latn;calendar=buddhist"), "en@calendar=buddhist;numbers=latn"},
		{"root", Root, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.locale.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocale_ScriptWithoutCountry(t *testing.T) {
	l := mustBuild(t, lang("en"), script("Hant"))
	if got := l.LanguageTag(); got != "en-Hant" {
		t.Errorf("LanguageTag() = %q, want en-Hant", got)
	}
	if got := l.BaseName(); got != "en_Hant" {
		t.Errorf("BaseName() = %q, want en_Hant", got)
	}
}

func TestLocale_ShortVariantRoundTrip(t *testing.T) {
	l := Compose("en", "US", "1")
	if got := l.Variant(); got != "1" {
		t.Errorf("Variant() = %q, want 1", got)
	}
	converted := ForLanguageTag("en-US-x-lvariant-1")
	if got := converted.Variant(); got != "1" {
		t.Errorf("ForLanguageTag().Variant() = %q, want 1", got)
	}
	built := mustBuild(t, lang("en"), region("US"), extension('x', "lvariant-1"))
	if !built.Equal(converted) {
		t.Errorf("%v should equal %v", built, converted)
	}
}

func TestLocale_PrivateUseSingleCharacter(t *testing.T) {
	if got := mustBuild(t, lang("en"), extension('x', "1")).LanguageTag(); got != "en-x-1" {
		t.Errorf("LanguageTag() = %q, want en-x-1", got)
	}
	if got := mustBuild(t, lang("en"), extension('x', "")).LanguageTag(); got != "en" {
		t.Errorf("LanguageTag() = %q, want en", got)
	}
}

func TestBuilder_Illformed(t *testing.T) {
	tests := []struct {
		name string
		set  func(b *Builder) error
	}{
		{"too short script", func(b *Builder) error { return b.SetScript("Han") }},
		{"too long extension", func(b *Builder) error { return b.SetExtension('x', "thisextensionistoolong") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			if err := b.SetLanguage("en"); err != nil {
				t.Fatal(err)
			}
			err := tt.set(b)
			var ile *IllformedLocaleError
			if !errors.As(err, &ile) || !errors.Is(err, ErrIllformed) {
				t.Fatalf("error = %v, want *IllformedLocaleError", err)
			}
		})
	}
}

func TestLocale_Keywords(t *testing.T) {
	l := New("sr_Latn_RS@calendar=gregorian;x=priv;attribute=abc-def")
	want := map[string]string{"calendar": "gregorian", "x": "priv", "attribute": "abc-def"}
	if diff := cmp.Diff(want, l.Keywords()); diff != "" {
		t.Errorf("Keywords() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := l.Keyword("CALENDAR"); !ok || v != "gregorian" {
		t.Errorf("Keyword(CALENDAR) = %q, %v", v, ok)
	}
	if v, ok := l.UnicodeLocaleType("ca"); !ok || v != "gregory" {
		t.Errorf("UnicodeLocaleType(ca) = %q, %v", v, ok)
	}
	if v, ok := l.Extension('u'); !ok || v != "abc-def-ca-gregory" {
		t.Errorf("Extension('u') = %q, %v", v, ok)
	}
	if got, want := l.LanguageTag(), "sr-Latn-RS-u-abc-def-ca-gregory-x-priv"; got != want {
		t.Errorf("LanguageTag() = %q, want %q", got, want)
	}
}

func TestFromJDK(t *testing.T) {
	l := FromJDK(jdk.ForLanguageTag("zh-Hans-CN-wadegile-u-ca-chinese"))
	if got, want := l.Name(), "zh_Hans_CN_WADEGILE@calendar=chinese"; got != want {
		t.Errorf("FromJDK() = %q, want %q", got, want)
	}
	if got := FromJDK(jdk.New("afr")).Language(); got != "af" {
		t.Errorf("FromJDK(afr).Language() = %q, want af", got)
	}
}

func TestLocale_Display(t *testing.T) {
	en := language.English
	if got := New("iw_IL").DisplayLanguage(en); got != "Hebrew" {
		t.Errorf("DisplayLanguage() = %q, want Hebrew", got)
	}
	if got := Compose("en", "US").DisplayName(en); got != "English (United States)" {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := Compose("sl", "", "rozaj_1994").DisplayVariant(); got != "Resian, 1994" {
		t.Errorf("DisplayVariant() = %q, want %q", got, "Resian, 1994")
	}
	if got := Root.DisplayVariant(); got != "" {
		t.Errorf("Root.DisplayVariant() = %q", got)
	}
}

func TestLocale_KeywordsWithoutType(t *testing.T) {
	tests := []struct {
		name     string
		locale   Locale
		wantName string
		wantTag  string
	}{
		{"from a tag", ForLanguageTag("en-u-ca"), "en@calendar=yes", "en-u-ca"},
		{"yes", New("en@calendar=yes"), "en@calendar=yes", "en-u-ca"},
		{"true", New("de@colnumeric=true"), "de@colnumeric=true", "de-u-kn"},
		{"next to a typed keyword", ForLanguageTag("ja-u-ca-japanese-kn"), "ja@calendar=japanese;colnumeric=yes", "ja-u-ca-japanese-kn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.locale.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			if got := tt.locale.LanguageTag(); got != tt.wantTag {
				t.Errorf("LanguageTag() = %q, want %q", got, tt.wantTag)
			}
		})
	}
}

func TestBuilder_RemoveAndClearExtensions(t *testing.T) {
	b := NewBuilder()
	for _, set := range []func(b *Builder) error{
		lang("en"),
		region("US"),
		func(b *Builder) error { return b.AddUnicodeLocaleAttribute("abc") },
		func(b *Builder) error { return b.AddUnicodeLocaleAttribute("def") },
		func(b *Builder) error { return b.SetUnicodeLocaleKeyword("ca", "buddhist") },
		func(b *Builder) error { return b.RemoveUnicodeLocaleAttribute("abc") },
	} {
		if err := set(b); err != nil {
			t.Fatal(err)
		}
	}
	if got := b.Build().Name(); got != "en_US@attribute=def;calendar=buddhist" {
		t.Errorf("Name() = %q, want %q", got, "en_US@attribute=def;calendar=buddhist")
	}

	if err := b.SetExtension('x', "priv"); err != nil {
		t.Fatal(err)
	}
	b.ClearExtensions()
	if got := b.Build().Name(); got != "en_US" {
		t.Errorf("Name() after ClearExtensions = %q, want %q", got, "en_US")
	}

	err := b.RemoveUnicodeLocaleAttribute("a")
	if !errors.Is(err, ErrIllformed) {
		t.Errorf("RemoveUnicodeLocaleAttribute(a) error = %v, want ErrIllformed", err)
	}
}
