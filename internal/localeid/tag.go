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
	"errors"
	"strings"

	"github.com/jplu/lingo/langtag"
)

const undetermined = "und"

// ParseTag reads a BCP 47 language tag into a locale.
//
// With strict set, an ill-formed tag is reported as an *IllformedError that
// wraps the *langtag.ParseError. Otherwise the longest well-formed prefix of
// tag is used and the rest is ignored.
//
// Grandfathered tags are first replaced by their locale form, so "no-bok"
// reads as "nb" and "i-default" as "en-x-i-default". Variants and a private
// use "lvariant" sequence keep the case they have in tag.
func ParseTag(tag string, strict bool) (Base, Extensions, error) {
	p, err := langtag.Default()
	if err != nil {
		return Base{}, Extensions{}, err
	}
	if replacement, ok := grandfathered[strings.ToLower(tag)]; ok {
		tag = replacement
	}

	var lt langtag.LanguageTag
	if strict {
		if lt, err = p.Parse(tag); err != nil {
			return Base{}, Extensions{}, fromParseError(err)
		}
	} else {
		lt, _ = p.ParseLenient(tag)
	}
	base, exts := fromLanguageTag(lt, tag)
	return base, exts, nil
}

// grandfathered maps every grandfathered tag of RFC 5646 to the tag locales
// read instead. Tags without a registry replacement keep their text as
// private use.
//
//nolint:gochecknoglobals // fixed table of RFC 5646 section 2.2.8.
var grandfathered = map[string]string{
	"art-lojban":  "jbo",
	"cel-gaulish": "xtg-x-cel-gaulish",
	"en-gb-oed":   "en-GB-x-oed",
	"i-ami":       "ami",
	"i-bnn":       "bnn",
	"i-default":   "en-x-i-default",
	"i-enochian":  "und-x-i-enochian",
	"i-hak":       "hak",
	"i-klingon":   "tlh",
	"i-lux":       "lb",
	"i-mingo":     "see-x-i-mingo",
	"i-navajo":    "nv",
	"i-pwn":       "pwn",
	"i-tao":       "tao",
	"i-tay":       "tay",
	"i-tsu":       "tsu",
	"no-bok":      "nb",
	"no-nyn":      "nn",
	"sgn-be-fr":   "sfb",
	"sgn-be-nl":   "vgt",
	"sgn-ch-de":   "sgg",
	"zh-guoyu":    "cmn",
	"zh-hakka":    "hak",
	"zh-min":      "nan-x-zh-min",
	"zh-min-nan":  "nan",
	"zh-xiang":    "hsn",
}

func fromParseError(err error) error {
	var perr *langtag.ParseError
	if !errors.As(err, &perr) {
		return err
	}
	msg := perr.Err.Error()
	if perr.Subtag != "" {
		msg += ": " + perr.Subtag
	}
	return &IllformedError{Msg: msg, Index: perr.Offset, Err: err}
}

// FromLanguageTag converts a parsed tag into a locale. The language "und"
// becomes the empty language, an extended language subtag replaces the
// primary language, and a private use "lvariant" sequence is appended to the
// variant.
func FromLanguageTag(lt langtag.LanguageTag) (Base, Extensions) {
	return fromLanguageTag(lt, lt.String())
}

// fromLanguageTag converts lt, which was read from input. The variant
// subtags are taken from input so that they keep their case.
func fromLanguageTag(lt langtag.LanguageTag, input string) (Base, Extensions) {
	cased := lt.String()
	if len(input) >= len(cased) && strings.EqualFold(input[:len(cased)], cased) {
		cased = input[:len(cased)]
	}

	var base Base
	base.Language = lt.PrimaryLanguage()
	if extlangs := lt.ExtendedLanguageSubtags(); len(extlangs) > 0 {
		base.Language = extlangs[0]
	}
	if base.Language == undetermined {
		base.Language = ""
	}
	base.Script, _ = lt.Script()
	base.Region, _ = lt.Region()
	if v, ok := lt.Variant(); ok {
		start := variantOffset(lt)
		base.Variant = strings.ReplaceAll(cased[start:start+len(v)], "-", "_")
	}

	var exts Extensions
	for _, ext := range lt.ExtensionSubtags() {
		if ext.Singleton == UnicodeKey {
			attrs, kws, err := parseUnicodeExtension(ext.Value)
			if err != nil {
				continue
			}
			exts.attributes, exts.keywords = attrs, kws
			continue
		}
		if exts.others == nil {
			exts.others = make(map[rune]string)
		}
		exts.others[ext.Singleton] = ext.Value
	}
	if pu, ok := lt.PrivateUse(); ok {
		if exts.others == nil {
			exts.others = make(map[rune]string)
		}
		exts.others[PrivateUseKey] = pu
	}

	exts, variant := exts.withoutLVariant()
	if variant != "" {
		// The lvariant subtags end the tag.
		variant = strings.ReplaceAll(cased[len(cased)-len(variant):], "-", "_")
		if base.Variant != "" {
			base.Variant += "_"
		}
		base.Variant += variant
	}
	return base, exts
}

// variantOffset returns the byte offset of the first variant subtag of lt.
func variantOffset(lt langtag.LanguageTag) int {
	off := len(lt.FullLanguage()) + 1
	if s, ok := lt.Script(); ok {
		off += len(s) + 1
	}
	if r, ok := lt.Region(); ok {
		off += len(r) + 1
	}
	return off
}

// ToLanguageTag renders a locale as a well-formed BCP 47 tag. Fields that are
// not well-formed are dropped, with two exceptions: an ill-formed language
// becomes "und", and variant subtags that are not well-formed variants but
// are valid private use subtags move to a private use "lvariant" sequence.
// Variants are split on '_' and '-' and keep their case.
//
// Language code mapping (for example "iw" to "he") is left to the caller.
func ToLanguageTag(base Base, exts Extensions) string {
	lang := strings.ToLower(base.Language)
	if !langtag.IsLanguage(lang) {
		lang = undetermined
	}
	parts := []string{lang}
	if langtag.IsScript(base.Script) {
		parts = append(parts, langtag.TitleCase(base.Script))
	}
	if langtag.IsRegion(base.Region) {
		parts = append(parts, strings.ToUpper(base.Region))
	}

	var lvariants []string
	if base.Variant != "" {
		subtags := splitVariant(base.Variant)
		i := 0
		for ; i < len(subtags) && langtag.IsVariant(subtags[i]); i++ {
			parts = append(parts, subtags[i])
		}
		if rest := subtags[i:]; allPrivateUse(rest) {
			lvariants = rest
		}
	}

	for _, k := range exts.Keys() {
		if k == PrivateUseKey {
			continue
		}
		v, _ := exts.Extension(k)
		parts = append(parts, string(k), v)
	}
	pu, hasPrivateUse := exts.PrivateUse()
	if len(lvariants) > 0 {
		if hasPrivateUse {
			pu += "-"
		}
		pu += lvariant + "-" + strings.Join(lvariants, "-")
		hasPrivateUse = true
	}
	if hasPrivateUse {
		parts = append(parts, string(PrivateUseKey), pu)
	}
	return strings.Join(parts, "-")
}

func allPrivateUse(subtags []string) bool {
	if len(subtags) == 0 {
		return false
	}
	for _, s := range subtags {
		if !langtag.IsPrivateUseSubtag(s) {
			return false
		}
	}
	return true
}
