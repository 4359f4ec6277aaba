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

// Package icu implements the locale semantics of ICU's ULocale.
//
// An ICU locale is identified by its name, a locale ID of the form
// "lang_Script_REGION_VARIANT@key=value;key=value". Compared to the jdk
// package:
//
//   - three-letter ISO 639 codes that have a two-letter form are reduced
//     ("afr" is "af"), but legacy codes are kept ("iw" stays "iw");
//   - the variant is uppercased;
//   - extensions are keywords. Unicode attributes become "attribute", Unicode
//     keys use their legacy names ("ca" is "calendar") and other extensions
//     are keyed by their singleton;
//   - equality is equality of names.
//
// Language tags come out the same as from the jdk package, with legacy
// language codes replaced and variants lowercased.
package icu

import (
	"maps"
	"strings"

	"golang.org/x/text/language"

	"github.com/jplu/lingo/internal/localeid"
	"github.com/jplu/lingo/jdk"
	"github.com/jplu/lingo/langtag"
)

// IllformedLocaleError reports a value rejected by the Builder.
type IllformedLocaleError = localeid.IllformedError

// ErrIllformed is matched by every *IllformedLocaleError.
var ErrIllformed = localeid.ErrIllformed

// Root is the empty locale.
var Root = Locale{}

// Locale is an ICU locale. The zero value is Root.
type Locale struct {
	base     localeid.Base
	keywords map[string]string
}

// New parses a locale ID. Parsing is lenient: '-' is accepted as a separator,
// fields are recognized by their shape and nothing is rejected.
func New(localeID string) Locale {
	id, kw, _ := strings.Cut(localeID, "@")
	parts := strings.Split(strings.ReplaceAll(id, "-", "_"), "_")

	var base localeid.Base
	i := 0
	if i < len(parts) {
		base.Language = normalizeLanguage(parts[i])
		i++
	}
	if i < len(parts) && langtag.IsScript(parts[i]) {
		base.Script = langtag.TitleCase(parts[i])
		i++
	}
	if i < len(parts) && (parts[i] == "" || len(parts[i]) == 2 || len(parts[i]) == 3) {
		base.Region = strings.ToUpper(parts[i])
		i++
	}
	var variants []string
	for _, p := range parts[i:] {
		if p != "" {
			variants = append(variants, strings.ToUpper(p))
		}
	}
	base.Variant = strings.Join(variants, "_")
	return Locale{base: base, keywords: parseKeywords(kw)}
}

// Compose returns the locale of a language and, optionally, a country and a
// variant, like New(language + "_" + country + "_" + variant) without the
// ambiguity of an empty country.
func Compose(language string, countryAndVariant ...string) Locale {
	base := localeid.Base{Language: normalizeLanguage(language)}
	if len(countryAndVariant) > 0 {
		base.Region = strings.ToUpper(countryAndVariant[0])
	}
	if len(countryAndVariant) > 1 {
		base.Variant = strings.ToUpper(strings.ReplaceAll(countryAndVariant[1], "-", "_"))
	}
	return Locale{base: base}
}

// ForLanguageTag returns the locale of a BCP 47 language tag, keeping the
// well-formed prefix of an ill-formed tag.
func ForLanguageTag(tag string) Locale {
	base, exts, _ := localeid.ParseTag(tag, false)
	return fromParts(base, exts)
}

// FromJDK converts a JDK locale.
func FromJDK(l jdk.Locale) Locale {
	return fromParts(l.Base(), l.Extensions())
}

func fromParts(base localeid.Base, exts localeid.Extensions) Locale {
	base.Language = normalizeLanguage(base.Language)
	base.Variant = strings.ToUpper(base.Variant)
	return Locale{base: base, keywords: keywordsFromExtensions(exts)}
}

// normalizeLanguage lowercases a language code and reduces ISO 639-2 and
// 639-3 codes to their ISO 639-1 form when there is one.
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(lang)
	if len(lang) != 3 || !langtag.IsLanguage(lang) {
		return lang
	}
	b, err := language.ParseBase(lang)
	if err != nil {
		return lang
	}
	if short := b.String(); len(short) == 2 {
		return short
	}
	return lang
}

// modernLanguage replaces a deprecated language code by its replacement.
func modernLanguage(lang string) string {
	if lang == "" {
		return lang
	}
	tag, err := language.DeprecatedBase.Parse(lang)
	if err != nil {
		return lang
	}
	b, _, _ := tag.Raw()
	if s := b.String(); s != "und" {
		return s
	}
	return lang
}

// Language returns the language code.
func (l Locale) Language() string { return l.base.Language }

// Script returns the script code.
func (l Locale) Script() string { return l.base.Script }

// Country returns the country or region code.
func (l Locale) Country() string { return l.base.Region }

// Variant returns the variant, uppercase.
func (l Locale) Variant() string { return l.base.Variant }

// Keywords returns a copy of the keywords.
func (l Locale) Keywords() map[string]string { return maps.Clone(l.keywords) }

// Keyword returns the value of a keyword.
func (l Locale) Keyword(key string) (string, bool) {
	v, ok := l.keywords[strings.ToLower(key)]
	return v, ok
}

// Extension returns the BCP 47 extension introduced by key.
func (l Locale) Extension(key rune) (string, bool) {
	return extensionsFromKeywords(l.keywords).Extension(key)
}

// UnicodeLocaleType returns the BCP 47 type of a Unicode locale key.
func (l Locale) UnicodeLocaleType(key string) (string, bool) {
	return extensionsFromKeywords(l.keywords).UnicodeLocaleType(key)
}

// BaseName returns the name without keywords.
func (l Locale) BaseName() string {
	var sb strings.Builder
	sb.WriteString(l.base.Language)
	if l.base.Script != "" {
		sb.WriteByte('_')
		sb.WriteString(l.base.Script)
	}
	if l.base.Region != "" || l.base.Variant != "" {
		sb.WriteByte('_')
		sb.WriteString(l.base.Region)
	}
	if l.base.Variant != "" {
		sb.WriteByte('_')
		sb.WriteString(l.base.Variant)
	}
	return sb.String()
}

// Name returns the full locale ID, keywords sorted by key.
func (l Locale) Name() string {
	if len(l.keywords) == 0 {
		return l.BaseName()
	}
	return l.BaseName() + "@" + formatKeywords(l.keywords)
}

// String returns Name. It implements the fmt.Stringer interface.
func (l Locale) String() string { return l.Name() }

// Equal reports whether l and other have the same name. "iw" and "he" are
// different locales.
func (l Locale) Equal(other Locale) bool { return l.Name() == other.Name() }

// IsRoot reports whether l is the root locale.
func (l Locale) IsRoot() bool { return l.Name() == "" }

// LanguageTag returns the BCP 47 form of the locale. Variants are written in
// lower case.
func (l Locale) LanguageTag() string {
	base := l.base
	base.Language = modernLanguage(base.Language)
	base.Variant = strings.ToLower(base.Variant)
	return localeid.ToLanguageTag(base, extensionsFromKeywords(l.keywords))
}

// Canonicalize returns the locale with a deprecated language code replaced,
// so "iw" becomes "he" and "mo" becomes "ro".
func (l Locale) Canonicalize() Locale {
	l.base.Language = modernLanguage(l.base.Language)
	l.keywords = maps.Clone(l.keywords)
	return l
}

// ToJDK converts l to a JDK locale. The fields are copied, so the variant
// stays uppercase and the result does not equal the JDK locale of the same
// language tag when there is a variant.
func (l Locale) ToJDK() jdk.Locale {
	return jdk.FromParts(l.base, extensionsFromKeywords(l.keywords))
}
