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

import "github.com/jplu/lingo/internal/localeid"

// Builder builds ICU locales with the same validation as the jdk Builder.
type Builder struct {
	b localeid.Builder
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetLocale resets the builder to l. Keywords with no BCP 47 form are
// dropped.
func (b *Builder) SetLocale(l Locale) error {
	return b.b.SetLocale(l.base, extensionsFromKeywords(l.keywords))
}

// SetLanguageTag resets the builder to a well-formed language tag.
func (b *Builder) SetLanguageTag(tag string) error { return b.b.SetLanguageTag(tag) }

// SetLanguage sets the language.
func (b *Builder) SetLanguage(language string) error { return b.b.SetLanguage(language) }

// SetScript sets the script.
func (b *Builder) SetScript(script string) error { return b.b.SetScript(script) }

// SetRegion sets the region.
func (b *Builder) SetRegion(region string) error { return b.b.SetRegion(region) }

// SetVariant sets the variant.
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

// ClearExtensions removes the keywords and the private use, keeping the base
// locale.
func (b *Builder) ClearExtensions() { b.b.ClearExtensions() }

// Build returns the locale.
func (b *Builder) Build() Locale {
	return fromParts(b.b.Build())
}
