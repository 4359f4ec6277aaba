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

// Package jdk implements the locale semantics of java.util.Locale.
//
// Locales are created three ways, with different strictness:
//
//   - New is lenient. It never fails and stores what it is given, with the
//     language lowercased and the country uppercased. The variant is kept
//     verbatim, so it may hold values no language tag can carry.
//   - ForLanguageTag is lenient too. It keeps the well-formed prefix of the tag.
//   - Builder is strict. Every setter rejects ill-formed values with an
//     *IllformedLocaleError.
//
// String renders the debugging form ("zh_CN_wadegile_#Hans_t-en-u-latn-x-apex")
// and LanguageTag the BCP 47 form ("zh-Hans-CN-wadegile-t-en-u-latn-x-apex").
package jdk

import (
	"strings"

	"github.com/jplu/lingo/internal/localeid"
)

// IllformedLocaleError reports a value rejected by the Builder.
type IllformedLocaleError = localeid.IllformedError

// ErrIllformed is matched by every *IllformedLocaleError.
var ErrIllformed = localeid.ErrIllformed

// Root is the locale with every field empty.
var Root = Locale{}

// Locale identifies a language, script, country and variant, plus
// extensions. The zero value is Root. Locales are immutable values.
type Locale struct {
	base localeid.Base
	exts localeid.Extensions
}

// Factory creates locales. UseOldISOCodes selects the legacy behavior of
// keeping "iw", "ji" and "in" as the stored language (and converting "he",
// "yi" and "id" to them). Language tags always use the modern codes.
type Factory struct {
	UseOldISOCodes bool
}

// Default is the factory behind the package functions.
var Default = Factory{}

// New returns a locale built from a language and, optionally, a country and
// a variant. Values after the variant are ignored.
func New(language string, countryAndVariant ...string) Locale {
	return Default.New(language, countryAndVariant...)
}

// ForLanguageTag returns the locale of a BCP 47 language tag.
func ForLanguageTag(tag string) Locale {
	return Default.ForLanguageTag(tag)
}

// New returns a locale built from a language and, optionally, a country and
// a variant. No value is validated.
//
// Two legacy variants are recognized: ja_JP_JP gains the Unicode extension
// "ca-japanese" and th_TH_TH gains "nu-thai".
func (f Factory) New(language string, countryAndVariant ...string) Locale {
	var country, variant string
	if len(countryAndVariant) > 0 {
		country = countryAndVariant[0]
	}
	if len(countryAndVariant) > 1 {
		variant = countryAndVariant[1]
	}
	base := localeid.Base{
		Language: f.convertLanguage(language),
		Region:   strings.ToUpper(country),
		Variant:  variant,
	}

	var b localeid.Builder
	switch {
	case base.Language == "ja" && base.Region == "JP" && base.Variant == "JP":
		_ = b.SetUnicodeLocaleKeyword("ca", "japanese")
	case base.Language == "th" && base.Region == "TH" && base.Variant == "TH":
		_ = b.SetUnicodeLocaleKeyword("nu", "thai")
	}
	_, exts := b.Build()
	return Locale{base: base, exts: exts}
}

// ForLanguageTag returns the locale of a BCP 47 language tag. Ill-formed
// parts end the parse and are ignored with everything after them; "und"
// yields the empty language.
func (f Factory) ForLanguageTag(tag string) Locale {
	base, exts, _ := localeid.ParseTag(tag, false)
	base.Language = f.convertLanguage(base.Language)
	return Locale{base: base, exts: exts}
}

func (f Factory) convertLanguage(language string) string {
	language = strings.ToLower(language)
	if f.UseOldISOCodes {
		if old, ok := modernToLegacy[language]; ok {
			return old
		}
		return language
	}
	if modern, ok := legacyToModern[language]; ok {
		return modern
	}
	return language
}

//nolint:gochecknoglobals // fixed tables of the three ISO 639 codes the JDK aliases.
var (
	legacyToModern = map[string]string{"iw": "he", "ji": "yi", "in": "id"}
	modernToLegacy = map[string]string{"he": "iw", "yi": "ji", "id": "in"}
)

// FromParts assembles a locale from the fields of another engine's locale.
func FromParts(base localeid.Base, exts localeid.Extensions) Locale {
	return Default.FromParts(base, exts)
}

// FromParts assembles a locale from the fields of another engine's locale.
// Only the language code is converted; the other fields are taken verbatim.
func (f Factory) FromParts(base localeid.Base, exts localeid.Extensions) Locale {
	base.Language = f.convertLanguage(base.Language)
	return Locale{base: base, exts: exts}
}

// Language returns the language code, lowercase.
func (l Locale) Language() string { return l.base.Language }

// Script returns the script code, in title case.
func (l Locale) Script() string { return l.base.Script }

// Country returns the country or region code, uppercase.
func (l Locale) Country() string { return l.base.Region }

// Variant returns the variant as it was given.
func (l Locale) Variant() string { return l.base.Variant }

// Base returns the language, script, country and variant.
func (l Locale) Base() localeid.Base { return l.base }

// Extensions returns the extensions of the locale.
func (l Locale) Extensions() localeid.Extensions { return l.exts }

// Extension returns the value of the extension introduced by key.
func (l Locale) Extension(key rune) (string, bool) { return l.exts.Extension(key) }

// ExtensionKeys returns the extension singletons present.
func (l Locale) ExtensionKeys() []rune { return l.exts.Keys() }

// UnicodeLocaleType returns the type of a Unicode locale keyword.
func (l Locale) UnicodeLocaleType(key string) (string, bool) {
	return l.exts.UnicodeLocaleType(key)
}

// UnicodeLocaleKeys returns the Unicode locale keyword keys.
func (l Locale) UnicodeLocaleKeys() []string { return l.exts.UnicodeLocaleKeys() }

// UnicodeLocaleAttributes returns the Unicode locale attributes.
func (l Locale) UnicodeLocaleAttributes() []string { return l.exts.UnicodeLocaleAttributes() }

// IsRoot reports whether l is the root locale.
func (l Locale) IsRoot() bool {
	return l.base.IsEmpty() && l.exts.IsEmpty()
}

// Equal reports whether l and other have identical fields. The comparison is
// case-sensitive, which only matters for the variant.
func (l Locale) Equal(other Locale) bool {
	return l.base == other.base && l.exts.Equal(other.exts)
}

// String returns the debugging form of the locale:
// language_COUNTRY_variant_#Script_extensions. Separators are written only
// when a language or a country is present, so "en" with the script "Hant"
// prints "en__#Hant".
func (l Locale) String() string {
	hasLang := l.base.Language != ""
	hasRegion := l.base.Region != ""
	hasVariant := l.base.Variant != ""
	hasScript := l.base.Script != ""
	hasExts := !l.exts.IsEmpty()

	var sb strings.Builder
	sb.WriteString(l.base.Language)
	if hasRegion || (hasLang && (hasVariant || hasScript || hasExts)) {
		sb.WriteByte('_')
		sb.WriteString(l.base.Region)
	}
	if hasVariant && (hasLang || hasRegion) {
		sb.WriteByte('_')
		sb.WriteString(l.base.Variant)
	}
	if hasScript && (hasLang || hasRegion) {
		sb.WriteString("_#")
		sb.WriteString(l.base.Script)
	}
	if hasExts && (hasLang || hasRegion) {
		sb.WriteByte('_')
		if !hasScript {
			sb.WriteByte('#')
		}
		sb.WriteString(l.exts.String())
	}
	return sb.String()
}

// LanguageTag returns the well-formed BCP 47 form of the locale. Legacy
// language codes are written in their modern form, variants that are too
// short become a private use "lvariant" sequence and variants that are too
// long are dropped.
func (l Locale) LanguageTag() string {
	base := l.base
	if modern, ok := legacyToModern[base.Language]; ok {
		base.Language = modern
	}
	return localeid.ToLanguageTag(base, l.exts)
}

// isLegacyVariant reports the two variants New turns into extensions.
func (l Locale) isLegacyVariant() bool {
	b := l.base
	return (b.Language == "ja" && b.Region == "JP" && b.Variant == "JP") ||
		(b.Language == "th" && b.Region == "TH" && b.Variant == "TH")
}
