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

package jdk

import "github.com/jplu/lingo/internal/localeid"

// Builder builds locales from validated fields. Setters return an
// *IllformedLocaleError for ill-formed input and leave the builder unchanged.
// Empty values clear the corresponding field.
type Builder struct {
	factory Factory
	b       localeid.Builder
}

// NewBuilder returns an empty builder using the Default factory.
func NewBuilder() *Builder {
	return Default.NewBuilder()
}

// NewBuilder returns an empty builder whose locales follow f.
func (f Factory) NewBuilder() *Builder {
	return &Builder{factory: f}
}

// SetLocale resets the builder to l. It fails if a field of l is ill-formed,
// which happens for variants accepted by New such as "1". The legacy
// variants of ja_JP_JP and th_TH_TH are ignored since their meaning is
// carried by an extension.
func (b *Builder) SetLocale(l Locale) error {
	base := l.base
	if l.isLegacyVariant() {
		base.Variant = ""
	}
	return b.b.SetLocale(base, l.exts)
}

// SetLanguageTag resets the builder to a well-formed language tag.
func (b *Builder) SetLanguageTag(tag string) error { return b.b.SetLanguageTag(tag) }

// SetLanguage sets the language: 2 to 8 letters.
func (b *Builder) SetLanguage(language string) error { return b.b.SetLanguage(language) }

// SetScript sets the script: 4 letters.
func (b *Builder) SetScript(script string) error { return b.b.SetScript(script) }

// SetRegion sets the region: 2 letters or 3 digits.
func (b *Builder) SetRegion(region string) error { return b.b.SetRegion(region) }

// SetVariant sets the variant, whose subtags are separated by '_' or '-'.
func (b *Builder) SetVariant(variant string) error { return b.b.SetVariant(variant) }

// SetExtension sets or, with an empty value, removes an extension.
func (b *Builder) SetExtension(key rune, value string) error {
	return b.b.SetExtension(key, value)
}

// SetUnicodeLocaleKeyword sets or, with an empty type, removes a keyword.
func (b *Builder) SetUnicodeLocaleKeyword(key, typ string) error {
	return b.b.SetUnicodeLocaleKeyword(key, typ)
}

// AddUnicodeLocaleAttribute adds a Unicode locale attribute.
func (b *Builder) AddUnicodeLocaleAttribute(attribute string) error {
	return b.b.AddUnicodeLocaleAttribute(attribute)
}

// RemoveUnicodeLocaleAttribute removes a Unicode locale attribute.
func (b *Builder) RemoveUnicodeLocaleAttribute(attribute string) error {
	return b.b.RemoveUnicodeLocaleAttribute(attribute)
}

// Clear resets the builder.
func (b *Builder) Clear() { b.b.Clear() }

// ClearExtensions removes every extension.
func (b *Builder) ClearExtensions() { b.b.ClearExtensions() }

// Build returns the locale. A private use "lvariant" sequence becomes the
// variant.
func (b *Builder) Build() Locale {
	base, exts := b.b.Build()
	base.Language = b.factory.convertLanguage(base.Language)
	return Locale{base: base, exts: exts}
}
