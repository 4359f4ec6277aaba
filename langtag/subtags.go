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

package langtag

import (
	"strings"
	"unicode"
)

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlphanum checks if a byte is an ASCII letter or digit.
func isAlphanum(b byte) bool { return isAlpha(b) || isDigit(b) }

// all reports whether s is non-empty and every byte satisfies pred.
func all(s string, pred func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

// IsLanguage reports whether s is a well-formed primary language subtag:
// 2 to 8 ASCII letters.
func IsLanguage(s string) bool {
	return len(s) >= minLanguageLen && len(s) <= maxSubtagLen && all(s, isAlpha)
}

// IsExtlang reports whether s is a well-formed extended language subtag.
func IsExtlang(s string) bool {
	return len(s) == extlangLen && all(s, isAlpha)
}

// IsScript reports whether s is a well-formed script subtag: 4 ASCII letters.
func IsScript(s string) bool {
	return len(s) == scriptLen && all(s, isAlpha)
}

// IsRegion reports whether s is a well-formed region subtag: 2 ASCII letters
// or 3 digits.
func IsRegion(s string) bool {
	return (len(s) == regionAlphaLen && all(s, isAlpha)) ||
		(len(s) == regionNumericLen && all(s, isDigit))
}

// IsVariant reports whether s is a well-formed variant subtag: 5 to 8
// alphanumerics, or 4 starting with a digit.
func IsVariant(s string) bool {
	if len(s) > maxSubtagLen || !all(s, isAlphanum) {
		return false
	}
	return len(s) >= minVariantLenAlpha || (len(s) == minVariantLenDigit && isDigit(s[0]))
}

// IsExtensionSingleton reports whether s is a singleton that can introduce an
// extension. The private use singleton 'x' is not one.
func IsExtensionSingleton(s string) bool {
	return len(s) == 1 && isAlphanum(s[0]) && !strings.EqualFold(s, "x")
}

// IsExtensionSubtag reports whether s can appear inside an extension: 2 to 8
// alphanumerics.
func IsExtensionSubtag(s string) bool {
	return len(s) >= minExtensionLen && len(s) <= maxSubtagLen && all(s, isAlphanum)
}

// IsPrivateUseSubtag reports whether s can appear after the 'x' singleton: 1
// to 8 alphanumerics.
func IsPrivateUseSubtag(s string) bool {
	return len(s) <= maxSubtagLen && all(s, isAlphanum)
}

// writeTitleCase writes a string to a builder using title case (e.g., "Latn").
func writeTitleCase(b *strings.Builder, s string) {
	if len(s) == 0 {
		return
	}
	runes := []rune(s)
	b.WriteRune(unicode.ToTitle(runes[0]))
	if len(runes) > 1 {
		b.WriteString(strings.ToLower(string(runes[1:])))
	}
}

// TitleCase returns s with its first letter upper case and the rest lower
// case, the normalized case of script subtags.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	writeTitleCase(&b, s)
	return b.String()
}
