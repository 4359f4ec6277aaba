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

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayLanguage returns the name of the language in the given display
// language, or the language code if no name is known.
func (l Locale) DisplayLanguage(in language.Tag) string {
	if l.base.Language == "" {
		return ""
	}
	base, err := language.ParseBase(l.base.Language)
	if err != nil {
		return l.base.Language
	}
	if name := display.Languages(in).Name(base); name != "" {
		return name
	}
	return l.base.Language
}

// DisplayScript returns the name of the script, or the script code.
func (l Locale) DisplayScript(in language.Tag) string {
	if l.base.Script == "" {
		return ""
	}
	script, err := language.ParseScript(l.base.Script)
	if err != nil {
		return l.base.Script
	}
	if name := display.Scripts(in).Name(script); name != "" {
		return name
	}
	return l.base.Script
}

// DisplayCountry returns the name of the country, or the country code.
func (l Locale) DisplayCountry(in language.Tag) string {
	if l.base.Region == "" {
		return ""
	}
	region, err := language.ParseRegion(l.base.Region)
	if err != nil {
		return l.base.Region
	}
	if name := display.Regions(in).Name(region); name != "" {
		return name
	}
	return l.base.Region
}

// DisplayVariant returns the variant unchanged: there is no variant name data.
func (l Locale) DisplayVariant() string {
	return l.base.Variant
}

// DisplayName returns the language name followed by the script, country and
// variant names in parentheses: "English (United States)".
func (l Locale) DisplayName(in language.Tag) string {
	var qualifiers []string
	for _, s := range []string{l.DisplayScript(in), l.DisplayCountry(in), l.DisplayVariant()} {
		if s != "" {
			qualifiers = append(qualifiers, s)
		}
	}
	name := l.DisplayLanguage(in)
	switch {
	case len(qualifiers) == 0:
		return name
	case name == "":
		return strings.Join(qualifiers, ", ")
	}
	return name + " (" + strings.Join(qualifiers, ", ") + ")"
}
