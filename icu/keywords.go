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
	"maps"
	"slices"
	"strings"

	"github.com/jplu/lingo/internal/localeid"
)

// attributeKeyword holds the Unicode locale attributes in a locale ID.
const attributeKeyword = "attribute"

// Legacy keyword keys and types of locale IDs, and their BCP 47 forms.
//
//nolint:gochecknoglobals // static mapping tables.
var (
	legacyKeys = map[string]string{
		"ca": "calendar",
		"co": "collation",
		"cu": "currency",
		"ka": "colalternate",
		"kb": "colbackwards",
		"kc": "colcaselevel",
		"kf": "colcasefirst",
		"kk": "colnormalization",
		"kn": "colnumeric",
		"kr": "colreorder",
		"ks": "colstrength",
		"ms": "measure",
		"nu": "numbers",
		"tz": "timezone",
	}
	legacyTypes = map[string]string{
		"dict":    "dictionary",
		"ethioaa": "ethiopic-amete-alem",
		"gb2312":  "gb2312han",
		"gregory": "gregorian",
		"phonebk": "phonebook",
		"trad":    "traditional",
	}
	bcpKeys  = invert(legacyKeys)
	bcpTypes = invert(legacyTypes)
)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// keywordsFromExtensions converts BCP 47 extensions to locale ID keywords:
// the attributes go to "attribute", Unicode keywords use their legacy names
// and every other extension is keyed by its singleton.
func keywordsFromExtensions(exts localeid.Extensions) map[string]string {
	kw := map[string]string{}
	if attrs := exts.UnicodeLocaleAttributes(); len(attrs) > 0 {
		kw[attributeKeyword] = strings.Join(attrs, "-")
	}
	for _, key := range exts.UnicodeLocaleKeys() {
		typ, _ := exts.UnicodeLocaleType(key)
		if legacy, ok := legacyKeys[key]; ok {
			key = legacy
		}
		switch legacy, ok := legacyTypes[typ]; {
		case ok:
			typ = legacy
		case typ == "":
			typ = "yes"
		}
		kw[key] = typ
	}
	for _, k := range exts.Keys() {
		if k == localeid.UnicodeKey {
			continue
		}
		v, _ := exts.Extension(k)
		kw[string(k)] = v
	}
	return kw
}

// extensionsFromKeywords is the inverse of keywordsFromExtensions. Keywords
// with no BCP 47 form, such as "timezone=America/New_York", are dropped, and
// the types "yes" and "true" leave the key without a type.
func extensionsFromKeywords(kw map[string]string) localeid.Extensions {
	var b localeid.Builder
	for _, key := range slices.Sorted(maps.Keys(kw)) {
		value := kw[key]
		switch {
		case key == attributeKeyword:
			for _, attr := range strings.Split(value, "-") {
				_ = b.AddUnicodeLocaleAttribute(attr)
			}
		case len(key) == 1:
			_ = b.SetExtension(rune(key[0]), value)
		default:
			if bcp, ok := bcpKeys[key]; ok {
				key = bcp
			}
			if value == "yes" || value == "true" {
				_ = b.SetUnicodeLocaleKey(key)
				continue
			}
			if bcp, ok := bcpTypes[value]; ok {
				value = bcp
			}
			_ = b.SetUnicodeLocaleKeyword(key, value)
		}
	}
	_, exts := b.Build()
	return exts
}

// parseKeywords reads "k1=v1;k2=v2". Keys are lowercased; entries without a
// key or a value are skipped, and the first occurrence of a key wins.
func parseKeywords(s string) map[string]string {
	kw := map[string]string{}
	for _, entry := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(entry, "=")
		key, value = strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			continue
		}
		if _, dup := kw[key]; !dup {
			kw[key] = value
		}
	}
	return kw
}

func formatKeywords(kw map[string]string) string {
	var sb strings.Builder
	for i, key := range slices.Sorted(maps.Keys(kw)) {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(kw[key])
	}
	return sb.String()
}
