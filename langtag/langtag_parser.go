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
	"sort"
	"strings"
)

// BCP 47 constants for subtag validation.
const (
	maxSubtagLen       = 8 // Maximum length of any subtag.
	maxExtlangs        = 1 // Only one extlang may be used even though the ABNF admits three.
	scriptLen          = 4 // A script subtag is always 4 letters.
	regionAlphaLen     = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen   = 3 // A numeric region subtag is always 3 digits.
	extlangLen         = 3 // An extended language subtag is always 3 letters.
	minLanguageLen     = 2
	maxShortLanguage   = 3 // Max length of a primary language that can be followed by an extlang.
	minVariantLenAlpha = 5 // Min length of a variant starting with a letter.
	minVariantLenDigit = 4 // Min length of a variant starting with a digit.
	minExtensionLen    = 2
)

// tagElementsPositions stores the end positions of each major component
// within the rendered language tag string.
type tagElementsPositions struct {
	languageEnd, extlangEnd, scriptEnd, regionEnd, variantEnd, extensionEnd int
	isGrandfathered                                                         bool
}

// parseState represents the current position in the state machine during parsing.
type parseState int

const (
	stateStart         parseState = iota // Expecting a primary language subtag.
	stateAfterLanguage                   // After a 2-3 letter primary language, expecting extlang, script, etc.
	stateAfterExtLang                    // After a >3 letter primary lang or an extlang, expecting script, region, etc.
	stateAfterScript                     // After a script, expecting region, variant, etc.
	stateAfterRegion                     // After a region, expecting variant, etc.
	stateInVariant                       // In a sequence of one or more variants.
	stateInExtension                     // In an extension sequence (after a singleton).
	stateInPrivateUse                    // In a private-use sequence (after 'x').
)

// parseRun holds the state of a single parse.
type parseRun struct {
	input string
	// The parsed subtags.
	language   string
	extlangs   []string
	script     string
	region     string
	variants   []string
	extensions []Extension
	privateuse []string
	// Internal state.
	state          parseState
	offset         int
	seenVariants   map[string]struct{}
	seenSingletons map[rune]struct{}
	// checkpoint is the state to fall back to in lenient mode when an
	// extension sequence is cut before its first subtag.
	checkpoint parseState
}

func newParseRun(input string) *parseRun {
	return &parseRun{input: input}
}

func (run *parseRun) fail(subtag string, err error) error {
	return &ParseError{Tag: run.input, Offset: run.offset, Subtag: subtag, Err: err}
}

// validateSubtag performs basic syntactic checks on a single subtag.
func validateSubtag(subtag string) error {
	if len(subtag) == 0 {
		return ErrEmptySubtag
	}
	if len(subtag) > maxSubtagLen {
		return ErrSubtagTooLong
	}
	for i := 0; i < len(subtag); i++ {
		if !isAlphanum(subtag[i]) {
			return ErrForbiddenChar
		}
	}
	return nil
}

// parse executes the state machine over the subtags of the input. The first
// error stops the run; the state parsed so far is kept well-formed so that
// lenient callers can still render it.
func (run *parseRun) parse() error {
	if run.input == "" {
		return run.fail("", ErrEmptySubtag)
	}
	for i, subtag := range strings.Split(run.input, "-") {
		if i > 0 {
			run.offset++
		}
		if err := run.step(i, subtag); err != nil {
			run.rollback()
			return err
		}
		run.offset += len(subtag)
	}
	if err := run.checkFinalState(); err != nil {
		run.rollback()
		return err
	}
	return nil
}

// step consumes one subtag.
func (run *parseRun) step(i int, subtag string) error {
	if err := validateSubtag(subtag); err != nil {
		return run.fail(subtag, err)
	}
	lower := strings.ToLower(subtag)
	if i == 0 {
		return run.handlePrimaryLanguage(lower)
	}
	switch run.state {
	case stateInPrivateUse:
		run.privateuse = append(run.privateuse, lower)
		return nil
	case stateInExtension:
		return run.handleExtensionSubtag(lower)
	default:
		return run.handleLangtagSubtag(lower)
	}
}

// checkFinalState reports a dangling singleton at the end of the input.
func (run *parseRun) checkFinalState() error {
	run.offset = len(run.input) - 1
	if run.state == stateInPrivateUse && len(run.privateuse) == 0 {
		return run.fail("x", ErrEmptyPrivateUse)
	}
	if run.state == stateInExtension && run.extensions[len(run.extensions)-1].Value == "" {
		return run.fail(string(run.extensions[len(run.extensions)-1].Singleton), ErrEmptyExtension)
	}
	return nil
}

// rollback drops an unfinished extension or private use sequence so that
// the run describes a well-formed tag again.
func (run *parseRun) rollback() {
	if run.state == stateInExtension && run.extensions[len(run.extensions)-1].Value == "" {
		run.extensions = run.extensions[:len(run.extensions)-1]
		run.state = run.checkpoint
	}
	if run.state == stateInPrivateUse && len(run.privateuse) == 0 {
		run.state = run.checkpoint
	}
}

// handlePrimaryLanguage handles the first subtag.
func (run *parseRun) handlePrimaryLanguage(subtag string) error {
	if subtag == "x" {
		run.checkpoint = stateStart
		run.state = stateInPrivateUse
		return nil
	}
	if !IsLanguage(subtag) {
		return run.fail(subtag, ErrInvalidLanguage)
	}
	run.language = subtag
	run.state = stateAfterExtLang
	if len(subtag) <= maxShortLanguage {
		run.state = stateAfterLanguage
	}
	return nil
}

// handleLangtagSubtag dispatches a subtag that belongs to the main langtag. The
// order of the attempts is the order of RFC 5646: extlang, script, region, variant.
func (run *parseRun) handleLangtagSubtag(subtag string) error {
	if len(subtag) == 1 {
		return run.handleSingleton(subtag)
	}
	switch {
	case run.state == stateAfterLanguage && IsExtlang(subtag):
		run.extlangs = append(run.extlangs, subtag)
		run.state = stateAfterExtLang
		return nil
	case run.state == stateAfterExtLang && len(run.extlangs) >= maxExtlangs && IsExtlang(subtag):
		return run.fail(subtag, ErrTooManyExtlangs)
	case run.state <= stateAfterExtLang && IsScript(subtag):
		run.script = subtag
		run.state = stateAfterScript
		return nil
	case run.state <= stateAfterScript && IsRegion(subtag):
		run.region = subtag
		run.state = stateAfterRegion
		return nil
	case run.state <= stateInVariant && IsVariant(subtag):
		if run.seenVariants == nil {
			run.seenVariants = make(map[string]struct{})
		}
		if _, seen := run.seenVariants[subtag]; seen {
			return run.fail(subtag, ErrDuplicateVariant)
		}
		run.seenVariants[subtag] = struct{}{}
		run.variants = append(run.variants, subtag)
		run.state = stateInVariant
		return nil
	}
	return run.fail(subtag, ErrInvalidSubtag)
}

// handleExtensionSubtag parses a subtag that is part of an extension sequence.
func (run *parseRun) handleExtensionSubtag(subtag string) error {
	if len(subtag) == 1 {
		return run.handleSingleton(subtag)
	}
	if len(subtag) < minExtensionLen {
		return run.fail(subtag, ErrInvalidSubtag)
	}
	last := &run.extensions[len(run.extensions)-1]
	if last.Value == "" {
		last.Value = subtag
	} else {
		last.Value += "-" + subtag
	}
	return nil
}

// handleSingleton handles a single-character subtag, which starts an
// extension or a private-use sequence.
func (run *parseRun) handleSingleton(subtag string) error {
	if run.state == stateInExtension && run.extensions[len(run.extensions)-1].Value == "" {
		return run.fail(subtag, ErrEmptyExtension)
	}
	s := rune(subtag[0])
	if run.seenSingletons == nil {
		run.seenSingletons = make(map[rune]struct{})
	}
	if _, ok := run.seenSingletons[s]; ok {
		return run.fail(subtag, ErrDuplicateSingleton)
	}
	run.seenSingletons[s] = struct{}{}
	if run.state != stateInExtension {
		run.checkpoint = run.state
	}
	if s == 'x' {
		run.state = stateInPrivateUse
		return nil
	}
	run.state = stateInExtension
	run.extensions = append(run.extensions, Extension{Singleton: s})
	return nil
}

// canonicalize applies the registry-driven rules of RFC 5646, Sec 4.5.
func (run *parseRun) canonicalize(reg *Registry) {
	run.canonicalizeExtlangToPrimary(reg)
	run.canonicalizeDeprecated(reg)
	run.canonicalizeVariantOrder(reg)
	run.canonicalizeExtensionOrder()
}

// canonicalizeExtlangToPrimary replaces a prefixed extlang with its preferred
// primary language, so "zh-yue" becomes "yue".
func (run *parseRun) canonicalizeExtlangToPrimary(reg *Registry) {
	if len(run.extlangs) == 0 {
		return
	}
	rec, ok := reg.Subtag(typeExtlang, run.extlangs[0])
	if !ok || rec.PreferredValue == "" || !containsFold(rec.Prefix, run.language) {
		return
	}
	run.language = rec.PreferredValue
	run.extlangs = run.extlangs[1:]
}

// canonicalizeDeprecated replaces individual deprecated subtags with their 'Preferred-Value'.
func (run *parseRun) canonicalizeDeprecated(reg *Registry) {
	replace := func(typ, subtag string) string {
		if subtag == "" {
			return ""
		}
		if rec, ok := reg.Subtag(typ, subtag); ok && rec.PreferredValue != "" {
			return strings.ToLower(rec.PreferredValue)
		}
		return subtag
	}
	run.language = replace("language", run.language)
	run.script = replace("script", run.script)
	run.region = replace("region", run.region)
	for i, v := range run.variants {
		run.variants[i] = replace("variant", v)
	}
}

// canonicalizeVariantOrder puts a variant after the variants named in its
// prefixes, and otherwise keeps prefixed variants first in alphabetical order.
func (run *parseRun) canonicalizeVariantOrder(reg *Registry) {
	if len(run.variants) <= 1 {
		return
	}
	prefixNames := func(v, other string) bool {
		rec, ok := reg.Subtag("variant", v)
		if !ok {
			return false
		}
		for _, pfx := range rec.Prefix {
			if containsFold(strings.Split(pfx, "-"), other) {
				return true
			}
		}
		return false
	}
	hasPrefix := func(v string) bool {
		rec, ok := reg.Subtag("variant", v)
		return ok && len(rec.Prefix) > 0
	}
	sort.SliceStable(run.variants, func(i, j int) bool {
		vi, vj := run.variants[i], run.variants[j]
		switch {
		case prefixNames(vj, vi):
			return true
		case prefixNames(vi, vj):
			return false
		case hasPrefix(vi) != hasPrefix(vj):
			return hasPrefix(vi)
		}
		return vi < vj
	})
}

// canonicalizeExtensionOrder sorts extensions by their singleton character.
func (run *parseRun) canonicalizeExtensionOrder() {
	sort.SliceStable(run.extensions, func(i, j int) bool {
		return run.extensions[i].Singleton < run.extensions[j].Singleton
	})
}

// languageTag renders the run and computes the component positions.
func (run *parseRun) languageTag() LanguageTag {
	var b strings.Builder
	b.Grow(len(run.input))
	run.render(&b)
	exts := make([]Extension, len(run.extensions))
	copy(exts, run.extensions)
	return LanguageTag{tag: b.String(), positions: run.positions(), extensions: exts}
}

// render writes the tag with normalized case: lowercase everywhere except
// the title-case script and the uppercase region.
func (run *parseRun) render(b *strings.Builder) {
	if run.language == "" {
		if len(run.privateuse) > 0 {
			b.WriteByte('x')
			for _, subtag := range run.privateuse {
				b.WriteByte('-')
				b.WriteString(subtag)
			}
		}
		return
	}
	b.WriteString(run.language)
	for _, subtag := range run.extlangs {
		b.WriteByte('-')
		b.WriteString(subtag)
	}
	if run.script != "" {
		b.WriteByte('-')
		writeTitleCase(b, run.script)
	}
	if run.region != "" {
		b.WriteByte('-')
		b.WriteString(strings.ToUpper(run.region))
	}
	for _, subtag := range run.variants {
		b.WriteByte('-')
		b.WriteString(subtag)
	}
	for _, ext := range run.extensions {
		b.WriteByte('-')
		b.WriteRune(ext.Singleton)
		b.WriteByte('-')
		b.WriteString(ext.Value)
	}
	if len(run.privateuse) > 0 {
		b.WriteString("-x")
		for _, subtag := range run.privateuse {
			b.WriteByte('-')
			b.WriteString(subtag)
		}
	}
}

// positions calculates the end positions of each component in the
// rendered tag string.
func (run *parseRun) positions() tagElementsPositions {
	var pos tagElementsPositions
	cursor := len(run.language)
	pos.languageEnd = cursor
	for _, ext := range run.extlangs {
		cursor += 1 + len(ext)
	}
	pos.extlangEnd = cursor
	if run.script != "" {
		cursor += 1 + len(run.script)
	}
	pos.scriptEnd = cursor
	if run.region != "" {
		cursor += 1 + len(run.region)
	}
	pos.regionEnd = cursor
	for _, v := range run.variants {
		cursor += 1 + len(v)
	}
	pos.variantEnd = cursor
	for _, ext := range run.extensions {
		cursor += 3 + len(ext.Value) // -s-value
	}
	pos.extensionEnd = cursor
	return pos
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
