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

package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jplu/lingo/icu"
	"github.com/jplu/lingo/jdk"
)

// Mismatch is a check that failed.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", m.Field, m.Want, m.Got)
}

// Result is the outcome of one case. Err is set when the case could not be
// evaluated at all.
type Result struct {
	Case       string
	Engine     Engine
	Mismatches []Mismatch
	Err        error
}

// Passed reports whether every check of the case held.
func (r Result) Passed() bool { return r.Err == nil && len(r.Mismatches) == 0 }

// Report holds the results of a run in catalog order.
type Report struct {
	Results []Result
}

// Failed returns the number of cases that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Runner evaluates catalogs.
type Runner struct {
	// Factory creates the JDK locales.
	Factory jdk.Factory
	// Logger receives one record per case. Nil discards them.
	Logger *slog.Logger
}

// Run evaluates every case of c.
func (r *Runner) Run(c *Catalog) *Report {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ev := &evaluation{runner: r, catalog: c, built: map[string]built{}, visiting: map[string]bool{}}

	report := &Report{Results: make([]Result, 0, len(c.Cases))}
	for _, cs := range c.Cases {
		res := ev.check(cs)
		if res.Passed() {
			logger.Debug("case passed", "case", cs.Name, "engine", cs.Engine)
		} else {
			logger.Warn("case failed", "case", cs.Name, "engine", cs.Engine,
				"mismatches", len(res.Mismatches), "error", res.Err)
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// subject is a locale of either engine.
type subject struct {
	engine Engine
	jdk    jdk.Locale
	icu    icu.Locale
}

func (s subject) toJDK() jdk.Locale {
	if s.engine == ICU {
		return s.icu.ToJDK()
	}
	return s.jdk
}

func (s subject) toICU() icu.Locale {
	if s.engine == JDK {
		return icu.FromJDK(s.jdk)
	}
	return s.icu
}

// equal compares locales of the same engine natively and locales of
// different engines as JDK locales.
func (s subject) equal(other subject) bool {
	if s.engine == ICU && other.engine == ICU {
		return s.icu.Equal(other.icu)
	}
	return s.toJDK().Equal(other.toJDK())
}

func (s subject) String() string {
	if s.engine == ICU {
		return s.icu.String()
	}
	return s.jdk.String()
}

func (s subject) fields() map[string]func() string {
	if s.engine == ICU {
		l := s.icu
		return map[string]func() string{
			"string": l.String, "languageTag": l.LanguageTag, "language": l.Language, "script": l.Script,
			"country": l.Country, "variant": l.Variant, "displayVariant": l.DisplayVariant,
		}
	}
	l := s.jdk
	return map[string]func() string{
		"string": l.String, "languageTag": l.LanguageTag, "language": l.Language, "script": l.Script,
		"country": l.Country, "variant": l.Variant, "displayVariant": l.DisplayVariant,
	}
}

type built struct {
	subject subject
	err     error
}

type evaluation struct {
	runner   *Runner
	catalog  *Catalog
	built    map[string]built
	visiting map[string]bool
}

func (ev *evaluation) check(cs Case) Result {
	res := Result{Case: cs.Name, Engine: cs.Engine}
	s, err := ev.build(cs.Name)

	var illformed bool
	switch {
	case errors.Is(err, jdk.ErrIllformed):
		illformed = true
	case err != nil:
		res.Err = err
		return res
	}
	if illformed != cs.Expect.Illformed {
		got := "well-formed"
		if illformed {
			got = err.Error()
		}
		res.Mismatches = append(res.Mismatches, Mismatch{Field: "illformed", Want: fmt.Sprint(cs.Expect.Illformed), Got: got})
	}
	if illformed {
		return res
	}

	fields := s.fields()
	for _, want := range []struct {
		field string
		value *string
	}{
		{"string", cs.Expect.String},
		{"languageTag", cs.Expect.LanguageTag},
		{"language", cs.Expect.Language},
		{"script", cs.Expect.Script},
		{"country", cs.Expect.Country},
		{"variant", cs.Expect.Variant},
		{"displayVariant", cs.Expect.DisplayVariant},
	} {
		if want.value == nil {
			continue
		}
		if got := fields[want.field](); got != *want.value {
			res.Mismatches = append(res.Mismatches, Mismatch{Field: want.field, Want: *want.value, Got: got})
		}
	}

	for _, ref := range cs.Expect.Equals {
		ev.compare(&res, s, ref, true)
	}
	for _, ref := range cs.Expect.NotEquals {
		ev.compare(&res, s, ref, false)
	}
	return res
}

func (ev *evaluation) compare(res *Result, s subject, ref string, wantEqual bool) {
	other, err := ev.build(ref)
	if err != nil {
		res.Err = errors.Join(res.Err, fmt.Errorf("comparing with %q: %w", ref, err))
		return
	}
	if s.equal(other) == wantEqual {
		return
	}
	field := "equals " + ref
	if !wantEqual {
		field = "notEquals " + ref
	}
	res.Mismatches = append(res.Mismatches, Mismatch{Field: field, Want: fmt.Sprint(wantEqual), Got: s.String() + " vs " + other.String()})
}

// build constructs the locale of a case once.
func (ev *evaluation) build(name string) (subject, error) {
	if b, ok := ev.built[name]; ok {
		return b.subject, b.err
	}
	if ev.visiting[name] {
		return subject{}, fmt.Errorf("%w: %q", ErrCycle, name)
	}
	cs, ok := ev.catalog.Case(name)
	if !ok {
		return subject{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
	}

	ev.visiting[name] = true
	s, err := ev.construct(cs)
	delete(ev.visiting, name)

	ev.built[name] = built{subject: s, err: err}
	return s, err
}

func (ev *evaluation) construct(cs Case) (subject, error) {
	f := ev.runner.Factory
	s := subject{engine: cs.Engine}
	switch {
	case cs.Tag != "" && cs.Engine == JDK:
		s.jdk = f.ForLanguageTag(cs.Tag)
	case cs.Tag != "":
		s.icu = icu.ForLanguageTag(cs.Tag)
	case cs.ID != "":
		s.icu = icu.New(cs.ID)
	case len(cs.Parts) > 0 && cs.Engine == JDK:
		s.jdk = f.New(cs.Parts[0], cs.Parts[1:]...)
	case len(cs.Parts) > 0:
		s.icu = icu.Compose(cs.Parts[0], cs.Parts[1:]...)
	case cs.Convert != "":
		other, err := ev.build(cs.Convert)
		if err != nil {
			return subject{}, err
		}
		s.jdk, s.icu = other.toJDK(), other.toICU()
	default:
		return ev.runBuilder(cs)
	}
	return s, nil
}

// localeBuilder is the part of the builder API both engines share.
type localeBuilder interface {
	SetLanguageTag(tag string) error
	SetLanguage(language string) error
	SetScript(script string) error
	SetRegion(region string) error
	SetVariant(variant string) error
	SetExtension(key rune, value string) error
	SetUnicodeLocaleKeyword(key, typ string) error
	AddUnicodeLocaleAttribute(attribute string) error
}

func (ev *evaluation) runBuilder(cs Case) (subject, error) {
	jb := ev.runner.Factory.NewBuilder()
	ib := icu.NewBuilder()
	var b localeBuilder = jb
	if cs.Engine == ICU {
		b = ib
	}

	for _, step := range cs.Builder {
		var err error
		switch step.Set {
		case "language":
			err = b.SetLanguage(step.Value)
		case "script":
			err = b.SetScript(step.Value)
		case "region":
			err = b.SetRegion(step.Value)
		case "variant":
			err = b.SetVariant(step.Value)
		case "extension":
			key, ok := singleton(step.Key)
			if !ok {
				return subject{}, fmt.Errorf("%w: case %q: extension key %q", ErrInvalidCatalog, cs.Name, step.Key)
			}
			err = b.SetExtension(key, step.Value)
		case "keyword":
			err = b.SetUnicodeLocaleKeyword(step.Key, step.Value)
		case "attribute":
			err = b.AddUnicodeLocaleAttribute(step.Value)
		case "languageTag":
			err = b.SetLanguageTag(step.Value)
		case "locale":
			other, berr := ev.build(step.Value)
			if berr != nil {
				return subject{}, berr
			}
			if cs.Engine == ICU {
				err = ib.SetLocale(other.toICU())
			} else {
				err = jb.SetLocale(other.toJDK())
			}
		}
		if err != nil {
			return subject{}, fmt.Errorf("%s %q: %w", step.Set, step.Value, err)
		}
	}

	if cs.Engine == ICU {
		return subject{engine: ICU, icu: ib.Build()}, nil
	}
	return subject{engine: JDK, jdk: jb.Build()}, nil
}

func singleton(key string) (rune, bool) {
	if len(key) != 1 {
		return 0, false
	}
	return rune(strings.ToLower(key)[0]), true
}
