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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jplu/lingo/langtag"
)

// DisplayLanguage returns the name of the language in the display language.
func (l Locale) DisplayLanguage(in language.Tag) string { return l.ToJDK().DisplayLanguage(in) }

// DisplayScript returns the name of the script.
func (l Locale) DisplayScript(in language.Tag) string { return l.ToJDK().DisplayScript(in) }

// DisplayCountry returns the name of the country.
func (l Locale) DisplayCountry(in language.Tag) string { return l.ToJDK().DisplayCountry(in) }

// DisplayVariant returns the registered names of the variant subtags, in
// title case and separated by ", ". Subtags without a registry entry are
// shown as they are.
func (l Locale) DisplayVariant() string {
	if l.base.Variant == "" {
		return ""
	}
	p, err := langtag.Default()
	if err != nil {
		return l.base.Variant
	}
	title := cases.Title(language.English, cases.NoLower)
	var names []string
	for _, v := range strings.Split(l.base.Variant, "_") {
		if desc, ok := p.Description("variant", v); ok {
			names = append(names, title.String(desc[0]))
			continue
		}
		names = append(names, v)
	}
	return strings.Join(names, ", ")
}

// DisplayName returns "Language (Script, Country, Variant)" with the parts
// that are present.
func (l Locale) DisplayName(in language.Tag) string {
	var qualifiers []string
	for _, s := range []string{l.DisplayScript(in), l.DisplayCountry(in), l.DisplayVariant()} {
		if s != "" {
			qualifiers = append(qualifiers, s)
		}
	}
	name := l.DisplayLanguage(in)
	if len(qualifiers) == 0 {
		return name
	}
	return name + " (" + strings.Join(qualifiers, ", ") + ")"
}
