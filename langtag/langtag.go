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

// Package langtag parses and renders IETF BCP 47 language tags as specified in
// RFC 5646.
//
// The package is the syntactic layer under the jdk and icu locale engines. It
// offers two readers:
//
//   - Parse is strict. Any subtag that breaks the RFC 5646 ABNF fails the whole
//     tag with a *ParseError that wraps one of the package sentinels.
//   - ParseLenient keeps the longest well-formed prefix of the input and
//     reports what it discarded. This is how locale engines read tags coming
//     from the outside world: "en-US-a-b" becomes "en-US".
//
// A small record-jar registry in the IANA Language Subtag Registry format is
// embedded at compile time. It carries the deprecated codes, grandfathered
// tags and variant descriptions the locale engines need, and is used by
// Canonicalize and Description.
package langtag

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Errors that can occur during language tag parsing.
var (
	ErrEmptyExtension     = errors.New("if an extension subtag is present, it must not be empty")
	ErrEmptyPrivateUse    = errors.New("if the 'x' subtag is present, it must not be empty")
	ErrForbiddenChar      = errors.New("the langtag contains a char not allowed")
	ErrInvalidSubtag      = errors.New("a subtag fails to parse")
	ErrInvalidLanguage    = errors.New("the given language subtag is invalid")
	ErrSubtagTooLong      = errors.New("a subtag may be eight characters in length at maximum")
	ErrEmptySubtag        = errors.New("a subtag should not be empty")
	ErrTooManyExtlangs    = errors.New("at maximum one extlang is allowed")
	ErrDuplicateVariant   = errors.New("the same variant subtag appears more than once")
	ErrDuplicateSingleton = errors.New("the same extension singleton appears more than once")
)

// ParseError reports where a language tag stopped being well-formed.
type ParseError struct {
	Tag    string // the input
	Offset int    // byte offset of the offending subtag
	Subtag string // the offending subtag, possibly empty
	Err    error  // one of the package sentinels
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("langtag: %q at offset %d: %v", e.Tag, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser is a reusable BCP 47 parser. It holds the parsed registry and should
// be created once and reused.
type Parser struct {
	registry *Registry
}

// LanguageTag represents a well-formed RFC 5646 language tag in normalized case.
type LanguageTag struct {
	tag        string
	positions  tagElementsPositions
	extensions []Extension
}

// Extension represents a single extension in a language tag, e.g. `-u-co-phonebk`.
type Extension struct {
	Singleton rune
	Value     string
}

// Parse checks that tag is well-formed according to RFC 5646 and returns it
// with the case of each subtag normalized. Subtags are not checked against the
// registry, so "en-Qwer-ZZ" parses.
//
// Grandfathered tags listed in the registry (e.g. "i-klingon") are accepted as
// single units even when they do not match the regular syntax.
func (p *Parser) Parse(tag string) (LanguageTag, error) {
	if lt, ok := p.grandfathered(tag); ok {
		return lt, nil
	}
	run := newParseRun(tag)
	if err := run.parse(); err != nil {
		return LanguageTag{}, err
	}
	return run.languageTag(), nil
}

// ParseLenient reads the longest well-formed prefix of tag. It never fails: the
// returned error, when not nil, is a *ParseError describing the first subtag
// that was discarded together with everything after it. An extension
// singleton left without subtags by the cut is dropped as well.
//
// If not even the primary language is well-formed, the returned tag is empty.
func (p *Parser) ParseLenient(tag string) (LanguageTag, error) {
	if lt, ok := p.grandfathered(tag); ok {
		return lt, nil
	}
	run := newParseRun(tag)
	err := run.parse()
	if run.language == "" && len(run.privateuse) == 0 {
		return LanguageTag{}, err
	}
	return run.languageTag(), err
}

// Canonicalize rewrites lt according to RFC 5646 section 4.5 as far as the
// embedded registry knows: grandfathered tags and deprecated subtags are
// replaced by their preferred values, variants are ordered by prefix
// dependency and extensions are sorted by singleton.
func (p *Parser) Canonicalize(lt LanguageTag) (LanguageTag, error) {
	tag := lt.String()
	if rec, ok := p.registry.Tag(tag); ok {
		if rec.PreferredValue == "" {
			return lt, nil
		}
		tag = rec.PreferredValue
	}
	run := newParseRun(tag)
	if err := run.parse(); err != nil {
		return LanguageTag{}, err
	}
	run.canonicalize(p.registry)
	return run.languageTag(), nil
}

// Description returns the registry descriptions of a subtag of the given type,
// for example ("variant", "wadegile").
func (p *Parser) Description(typ, subtag string) ([]string, bool) {
	rec, ok := p.registry.Subtag(typ, subtag)
	if !ok || len(rec.Description) == 0 {
		return nil, false
	}
	return rec.Description, true
}

// PreferredValue returns the registry replacement of a deprecated subtag.
func (p *Parser) PreferredValue(typ, subtag string) (string, bool) {
	rec, ok := p.registry.Subtag(typ, subtag)
	if !ok || rec.PreferredValue == "" {
		return "", false
	}
	return rec.PreferredValue, true
}

// Grandfathered reports whether tag is a grandfathered or redundant
// registration, and returns its preferred value if it has one.
func (p *Parser) Grandfathered(tag string) (preferred string, ok bool) {
	rec, ok := p.registry.Tag(tag)
	if !ok {
		return "", false
	}
	return rec.PreferredValue, true
}

// grandfathered recognizes the irregular grandfathered tags that the regular
// grammar cannot decompose. Regular ones and redundant tags go through the
// normal parser.
func (p *Parser) grandfathered(tag string) (LanguageTag, bool) {
	rec, ok := p.registry.Tag(tag)
	if !ok || rec.Type != "grandfathered" {
		return LanguageTag{}, false
	}
	run := newParseRun(tag)
	if run.parse() == nil {
		return LanguageTag{}, false
	}
	normalized := strings.ToLower(tag)
	return LanguageTag{
		tag: normalized,
		positions: tagElementsPositions{
			languageEnd: len(normalized), extlangEnd: len(normalized), scriptEnd: len(normalized),
			regionEnd: len(normalized), variantEnd: len(normalized), extensionEnd: len(normalized),
			isGrandfathered: true,
		},
	}, true
}

// String returns the language tag. It implements the fmt.Stringer interface.
func (lt LanguageTag) String() string {
	return lt.tag
}

// IsEmpty reports whether lt is the zero LanguageTag.
func (lt LanguageTag) IsEmpty() bool {
	return lt.tag == ""
}

// PrimaryLanguage returns the primary language subtag. It is empty for
// private-use-only tags.
func (lt LanguageTag) PrimaryLanguage() string {
	return lt.tag[:lt.positions.languageEnd]
}

// ExtendedLanguage returns the extended language subtags as a single string.
func (lt LanguageTag) ExtendedLanguage() (string, bool) {
	return lt.span(lt.positions.languageEnd, lt.positions.extlangEnd)
}

// ExtendedLanguageSubtags returns a slice of extended language subtags.
func (lt LanguageTag) ExtendedLanguageSubtags() []string {
	return splitOK(lt.ExtendedLanguage())
}

// FullLanguage returns the primary language subtag and its extended language subtags.
func (lt LanguageTag) FullLanguage() string {
	return lt.tag[:lt.positions.extlangEnd]
}

// Script returns the script subtag.
func (lt LanguageTag) Script() (string, bool) {
	return lt.span(lt.positions.extlangEnd, lt.positions.scriptEnd)
}

// Region returns the region subtag.
func (lt LanguageTag) Region() (string, bool) {
	return lt.span(lt.positions.scriptEnd, lt.positions.regionEnd)
}

// Variant returns the variant subtags as a single string.
func (lt LanguageTag) Variant() (string, bool) {
	return lt.span(lt.positions.regionEnd, lt.positions.variantEnd)
}

// VariantSubtags returns a slice of variant subtags.
func (lt LanguageTag) VariantSubtags() []string {
	return splitOK(lt.Variant())
}

// ExtensionSubtags returns a copy of the parsed extensions, in tag order.
func (lt LanguageTag) ExtensionSubtags() []Extension {
	if len(lt.extensions) == 0 {
		return nil
	}
	exts := make([]Extension, len(lt.extensions))
	copy(exts, lt.extensions)
	return exts
}

// Extension returns the value of the extension introduced by singleton.
func (lt LanguageTag) Extension(singleton rune) (string, bool) {
	for _, ext := range lt.extensions {
		if ext.Singleton == singleton {
			return ext.Value, true
		}
	}
	return "", false
}

// PrivateUse returns the private use subtags as a single string (e.g. `phonebk-sort`).
func (lt LanguageTag) PrivateUse() (string, bool) {
	if lt.positions.isGrandfathered {
		return "", false
	}
	if strings.HasPrefix(lt.tag, "x-") {
		return lt.tag[2:], true
	}
	start := lt.positions.extensionEnd
	if start+3 <= len(lt.tag) && lt.tag[start:start+3] == "-x-" {
		return lt.tag[start+3:], true
	}
	return "", false
}

// PrivateUseSubtags returns a slice of private use subtags.
func (lt LanguageTag) PrivateUseSubtags() []string {
	return splitOK(lt.PrivateUse())
}

// IsGrandfathered returns true if the tag is an irregular grandfathered tag.
func (lt LanguageTag) IsGrandfathered() bool {
	return lt.positions.isGrandfathered
}

func (lt LanguageTag) span(from, to int) (string, bool) {
	if from == to {
		return "", false
	}
	return lt.tag[from+1 : to], true
}

func splitOK(s string, ok bool) []string {
	if !ok {
		return nil
	}
	return strings.Split(s, "-")
}

// MarshalJSON implements the json.Marshaler interface. It marshals the language
// tag as a JSON string.
func (lt LanguageTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.tag)
}

// UnmarshalJSON implements the json.Unmarshaler interface. The JSON string must
// be a well-formed tag.
func (lt *LanguageTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*lt = LanguageTag{}
		return nil
	}
	p, err := Default()
	if err != nil {
		return err
	}
	parsed, err := p.Parse(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
