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

const (
	// UnicodeKey introduces the Unicode locale extension (RFC 6067).
	UnicodeKey = 'u'
	// PrivateUseKey introduces the private use sequence.
	PrivateUseKey = 'x'

	lvariant = "lvariant"
)

// Base is the language, script, region and variant of a locale. Fields are
// stored as the engine that produced them normalized them.
type Base struct {
	Language string
	Script   string
	Region   string
	Variant  string
}

// IsEmpty reports whether every field of b is empty.
func (b Base) IsEmpty() bool {
	return b == Base{}
}

// Extensions is an immutable set of locale extensions keyed by singleton. The
// Unicode extension is kept split into attributes and keywords. All values are
// lowercase.
type Extensions struct {
	others     map[rune]string
	attributes []string
	keywords   map[string]string
}

// IsEmpty reports whether there are no extensions and no private use.
func (e Extensions) IsEmpty() bool {
	return len(e.others) == 0 && len(e.attributes) == 0 && len(e.keywords) == 0
}

func (e Extensions) hasUnicode() bool {
	return len(e.attributes) > 0 || len(e.keywords) > 0
}

// Keys returns the singletons present, in ascending order.
func (e Extensions) Keys() []rune {
	keys := slices.Collect(maps.Keys(e.others))
	if e.hasUnicode() {
		keys = append(keys, UnicodeKey)
	}
	slices.Sort(keys)
	return keys
}

// Extension returns the value of the extension introduced by key.
func (e Extensions) Extension(key rune) (string, bool) {
	key = toLowerRune(key)
	if key == UnicodeKey {
		if !e.hasUnicode() {
			return "", false
		}
		return e.unicodeValue(), true
	}
	v, ok := e.others[key]
	return v, ok
}

// PrivateUse returns the private use value, without the "x-" prefix.
func (e Extensions) PrivateUse() (string, bool) {
	return e.Extension(PrivateUseKey)
}

// UnicodeLocaleAttributes returns the sorted attributes of the Unicode extension.
func (e Extensions) UnicodeLocaleAttributes() []string {
	return slices.Clone(e.attributes)
}

// UnicodeLocaleKeys returns the sorted keys of the Unicode extension.
func (e Extensions) UnicodeLocaleKeys() []string {
	return slices.Sorted(maps.Keys(e.keywords))
}

// UnicodeLocaleType returns the type of a Unicode extension keyword. A keyword
// present without a type yields "" and true.
func (e Extensions) UnicodeLocaleType(key string) (string, bool) {
	v, ok := e.keywords[strings.ToLower(key)]
	return v, ok
}

// String renders the extensions the way they appear in a language tag, with
// the private use last: "t-en-u-latn-x-apex".
func (e Extensions) String() string {
	var parts []string
	for _, k := range e.Keys() {
		if k == PrivateUseKey {
			continue
		}
		v, _ := e.Extension(k)
		parts = append(parts, string(k)+"-"+v)
	}
	if pu, ok := e.others[PrivateUseKey]; ok {
		parts = append(parts, "x-"+pu)
	}
	return strings.Join(parts, "-")
}

// Equal reports whether e and other hold the same extensions.
func (e Extensions) Equal(other Extensions) bool {
	return e.String() == other.String()
}

func (e Extensions) unicodeValue() string {
	parts := slices.Clone(e.attributes)
	for _, k := range e.UnicodeLocaleKeys() {
		parts = append(parts, k)
		if t := e.keywords[k]; t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "-")
}

// withoutLVariant splits an "lvariant" sequence off the private use. It
// returns the extensions without it and the variant subtags joined by '_'.
func (e Extensions) withoutLVariant() (Extensions, string) {
	pu, ok := e.others[PrivateUseKey]
	if !ok {
		return e, ""
	}
	var rest, variant string
	switch {
	case strings.HasPrefix(pu, lvariant+"-"):
		variant = pu[len(lvariant)+1:]
	case strings.Contains(pu, "-"+lvariant+"-"):
		i := strings.Index(pu, "-"+lvariant+"-")
		rest, variant = pu[:i], pu[i+len(lvariant)+2:]
	default:
		return e, ""
	}
	others := maps.Clone(e.others)
	if rest == "" {
		delete(others, PrivateUseKey)
	} else {
		others[PrivateUseKey] = rest
	}
	e.others = others
	return e, strings.ReplaceAll(variant, "-", "_")
}

// parseUnicodeExtension splits the value of a 'u' extension into attributes
// and keywords. A keyword repeated later in the value is ignored.
func parseUnicodeExtension(value string) ([]string, map[string]string, *IllformedError) {
	subtags := strings.Split(strings.ToLower(value), "-")
	offsets := subtagOffsets(subtags)
	var attributes []string
	keywords := map[string]string{}

	i := 0
	for ; i < len(subtags) && len(subtags[i]) != 2; i++ {
		if !isUnicodeAttribute(subtags[i]) {
			return nil, nil, illformed(offsets[i], "Ill-formed Unicode locale attribute: %s", subtags[i])
		}
		if !slices.Contains(attributes, subtags[i]) {
			attributes = append(attributes, subtags[i])
		}
	}
	for i < len(subtags) {
		key := subtags[i]
		if !isUnicodeKey(key) {
			return nil, nil, illformed(offsets[i], "Ill-formed Unicode locale keyword key: %s", key)
		}
		i++
		var types []string
		for ; i < len(subtags) && len(subtags[i]) != 2; i++ {
			if !isUnicodeType(subtags[i]) {
				return nil, nil, illformed(offsets[i], "Ill-formed Unicode locale keyword type: %s", subtags[i])
			}
			types = append(types, subtags[i])
		}
		if _, dup := keywords[key]; !dup {
			keywords[key] = strings.Join(types, "-")
		}
	}
	slices.Sort(attributes)
	return attributes, keywords, nil
}

func subtagOffsets(subtags []string) []int {
	offsets := make([]int, len(subtags))
	pos := 0
	for i, s := range subtags {
		offsets[i] = pos
		pos += len(s) + 1
	}
	return offsets
}

// isUnicodeAttribute matches an attribute: 3 to 8 alphanumerics.
func isUnicodeAttribute(s string) bool {
	return len(s) >= 3 && langtag.IsExtensionSubtag(s)
}

// isUnicodeKey matches a keyword key: an alphanumeric then a letter.
func isUnicodeKey(s string) bool {
	return len(s) == 2 && langtag.IsExtensionSubtag(s) && isLetter(s[1])
}

// isUnicodeType matches one subtag of a keyword type: 3 to 8 alphanumerics.
func isUnicodeType(s string) bool {
	return isUnicodeAttribute(s)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
