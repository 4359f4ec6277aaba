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

package localeid

import (
	"maps"
	"slices"
	"strings"

	"github.com/jplu/lingo/langtag"
)

// Builder assembles a locale from individually validated fields. Unlike the
// lenient constructors of the engines, every setter rejects ill-formed input
// with an *IllformedError and leaves the builder unchanged.
//
// The zero value is ready to use.
type Builder struct {
	base       Base
	others     map[rune]string
	attributes map[string]struct{}
	keywords   map[string]string
}

// SetLanguage sets the language, normalized to lower case. An empty value
// clears it.
func (b *Builder) SetLanguage(language string) error {
	if language != "" && !langtag.IsLanguage(language) {
		return illformed(0, "Ill-formed language: %s", language)
	}
	b.base.Language = strings.ToLower(language)
	return nil
}

// SetScript sets the script, normalized to title case.
func (b *Builder) SetScript(script string) error {
	if script != "" && !langtag.IsScript(script) {
		return illformed(0, "Ill-formed script: %s", script)
	}
	b.base.Script = langtag.TitleCase(script)
	return nil
}

// SetRegion sets the region, normalized to upper case.
func (b *Builder) SetRegion(region string) error {
	if region != "" && !langtag.IsRegion(region) {
		return illformed(0, "Ill-formed region: %s", region)
	}
	b.base.Region = strings.ToUpper(region)
	return nil
}

// SetVariant sets the variant. Its subtags may be separated by '-' or '_'
// and must each be a well-formed variant subtag. The case is kept and '-' is
// stored as '_'.
func (b *Builder) SetVariant(variant string) error {
	if err := checkVariant(variant); err != nil {
		return err
	}
	b.base.Variant = strings.ReplaceAll(variant, "-", "_")
	return nil
}

func checkVariant(variant string) *IllformedError {
	if variant == "" {
		return nil
	}
	subtags := splitVariant(variant)
	for i, off := range subtagOffsets(subtags) {
		if !langtag.IsVariant(subtags[i]) {
			return illformed(off, "Ill-formed variant: %s", variant)
		}
	}
	return nil
}

func splitVariant(variant string) []string {
	return strings.Split(strings.ReplaceAll(variant, "_", "-"), "-")
}

// SetExtension sets the extension introduced by key. An empty value removes
// it. Setting the 'u' extension replaces all Unicode attributes and keywords.
func (b *Builder) SetExtension(key rune, value string) error {
	key = toLowerRune(key)
	if !langtag.IsExtensionSingleton(string(key)) && key != PrivateUseKey {
		return illformed(0, "Ill-formed extension key: %c", key)
	}
	if value == "" {
		if key == UnicodeKey {
			b.attributes, b.keywords = nil, nil
		} else {
			delete(b.others, key)
		}
		return nil
	}
	value = strings.ToLower(strings.ReplaceAll(value, "_", "-"))

	if key == UnicodeKey {
		attrs, kws, err := parseUnicodeExtension(value)
		if err != nil {
			return err
		}
		b.attributes = make(map[string]struct{}, len(attrs))
		for _, a := range attrs {
			b.attributes[a] = struct{}{}
		}
		b.keywords = kws
		return nil
	}

	valid := langtag.IsExtensionSubtag
	if key == PrivateUseKey {
		valid = langtag.IsPrivateUseSubtag
	}
	subtags := strings.Split(value, "-")
	for i, off := range subtagOffsets(subtags) {
		if !valid(subtags[i]) {
			return illformed(off, "Ill-formed extension value: %s", subtags[i])
		}
	}
	if b.others == nil {
		b.others = make(map[rune]string)
	}
	b.others[key] = value
	return nil
}

// SetUnicodeLocaleKeyword sets a keyword of the Unicode extension. An empty
// type removes the keyword.
func (b *Builder) SetUnicodeLocaleKeyword(key, typ string) error {
	key = strings.ToLower(key)
	if !isUnicodeKey(key) {
		return illformed(-1, "Ill-formed Unicode locale keyword key: %s", key)
	}
	if typ == "" {
		delete(b.keywords, key)
		return nil
	}
	typ = strings.ToLower(strings.ReplaceAll(typ, "_", "-"))
	subtags := strings.Split(typ, "-")
	for i, off := range subtagOffsets(subtags) {
		if !isUnicodeType(subtags[i]) {
			return illformed(off, "Ill-formed Unicode locale keyword type: %s", typ)
		}
	}
	if b.keywords == nil {
		b.keywords = make(map[string]string)
	}
	b.keywords[key] = typ
	return nil
}

// SetUnicodeLocaleKey sets a keyword without a type, as in "u-kn".
func (b *Builder) SetUnicodeLocaleKey(key string) error {
	key = strings.ToLower(key)
	if !isUnicodeKey(key) {
		return illformed(-1, "Ill-formed Unicode locale keyword key: %s", key)
	}
	if b.keywords == nil {
		b.keywords = make(map[string]string)
	}
	b.keywords[key] = ""
	return nil
}

// AddUnicodeLocaleAttribute adds an attribute to the Unicode extension.
func (b *Builder) AddUnicodeLocaleAttribute(attribute string) error {
	attribute = strings.ToLower(attribute)
	if !isUnicodeAttribute(attribute) {
		return illformed(-1, "Ill-formed Unicode locale attribute: %s", attribute)
	}
	if b.attributes == nil {
		b.attributes = make(map[string]struct{})
	}
	b.attributes[attribute] = struct{}{}
	return nil
}

// RemoveUnicodeLocaleAttribute removes an attribute of the Unicode extension.
func (b *Builder) RemoveUnicodeLocaleAttribute(attribute string) error {
	attribute = strings.ToLower(attribute)
	if !isUnicodeAttribute(attribute) {
		return illformed(-1, "Ill-formed Unicode locale attribute: %s", attribute)
	}
	delete(b.attributes, attribute)
	return nil
}

// SetLanguageTag resets the builder to the locale of a well-formed language
// tag. The builder is left unchanged if tag is ill-formed.
func (b *Builder) SetLanguageTag(tag string) error {
	base, exts, err := ParseTag(tag, true)
	if err != nil {
		return err
	}
	b.Clear()
	b.base = base
	b.setExtensions(exts)
	return nil
}

// SetLocale resets the builder to base and exts. Every field of base must be
// well-formed; the lenient constructors of the engines can produce locales
// that fail this check.
func (b *Builder) SetLocale(base Base, exts Extensions) error {
	if base.Language != "" && !langtag.IsLanguage(base.Language) {
		return illformed(0, "Ill-formed language: %s", base.Language)
	}
	if base.Script != "" && !langtag.IsScript(base.Script) {
		return illformed(0, "Ill-formed script: %s", base.Script)
	}
	if base.Region != "" && !langtag.IsRegion(base.Region) {
		return illformed(0, "Ill-formed region: %s", base.Region)
	}
	if err := checkVariant(base.Variant); err != nil {
		return err
	}
	b.Clear()
	b.base = Base{
		Language: strings.ToLower(base.Language),
		Script:   langtag.TitleCase(base.Script),
		Region:   strings.ToUpper(base.Region),
		Variant:  strings.ReplaceAll(base.Variant, "-", "_"),
	}
	b.setExtensions(exts)
	return nil
}

func (b *Builder) setExtensions(exts Extensions) {
	b.others = maps.Clone(exts.others)
	b.keywords = maps.Clone(exts.keywords)
	b.attributes = nil
	for _, a := range exts.attributes {
		if b.attributes == nil {
			b.attributes = make(map[string]struct{})
		}
		b.attributes[a] = struct{}{}
	}
}

// Clear resets the builder to the empty locale.
func (b *Builder) Clear() {
	*b = Builder{}
}

// ClearExtensions removes all extensions and the private use.
func (b *Builder) ClearExtensions() {
	b.others, b.attributes, b.keywords = nil, nil, nil
}

// Build returns the locale assembled so far. A private use "lvariant"
// sequence is moved into the variant: "x-lvariant-abc-def" appends "abc_def".
func (b *Builder) Build() (Base, Extensions) {
	exts := Extensions{
		others:     maps.Clone(b.others),
		attributes: slices.Sorted(maps.Keys(b.attributes)),
		keywords:   maps.Clone(b.keywords),
	}
	if len(exts.attributes) == 0 {
		exts.attributes = nil
	}
	base := b.base
	exts, variant := exts.withoutLVariant()
	if variant != "" {
		if base.Variant != "" {
			base.Variant += "_"
		}
		base.Variant += variant
	}
	return base, exts
}
