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

// Package catalog reads and runs YAML catalogs of locale behaviour: each case
// builds a locale with one of the engines and states what its accessors must
// return.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Engine names a locale implementation.
type Engine string

const (
	JDK Engine = "jdk"
	ICU Engine = "icu"
)

// Errors reported by Parse and Run.
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownCase    = errors.New("unknown case")
	ErrCycle          = errors.New("case refers to itself")
)

// Catalog is an ordered list of cases.
type Catalog struct {
	Cases []Case `yaml:"cases"`
}

// Case constructs one locale and describes the expected results. Exactly one
// of Tag, ID, Parts, Builder and Convert is set.
type Case struct {
	Name   string `yaml:"name"`
	Engine Engine `yaml:"engine"`

	// Tag is read with ForLanguageTag.
	Tag string `yaml:"tag,omitempty"`
	// ID is an ICU locale ID.
	ID string `yaml:"id,omitempty"`
	// Parts are the language, country and variant arguments of a constructor.
	Parts []string `yaml:"parts,omitempty"`
	// Builder steps are applied in order to a new builder.
	Builder []Step `yaml:"builder,omitempty"`
	// Convert names a case of the other engine whose locale is converted.
	Convert string `yaml:"convert,omitempty"`

	Expect Expect `yaml:"expect"`
}

// Step is one builder call. Set is one of language, script, region, variant,
// extension, keyword, attribute, languageTag and locale. Extensions and
// keywords take a Key; locale takes the name of another case as Value.
type Step struct {
	Set   string `yaml:"set"`
	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value"`
}

// Expect lists the checks of a case. Unset fields are not checked.
type Expect struct {
	String         *string  `yaml:"string,omitempty"`
	LanguageTag    *string  `yaml:"languageTag,omitempty"`
	Language       *string  `yaml:"language,omitempty"`
	Script         *string  `yaml:"script,omitempty"`
	Country        *string  `yaml:"country,omitempty"`
	Variant        *string  `yaml:"variant,omitempty"`
	DisplayVariant *string  `yaml:"displayVariant,omitempty"`
	Illformed      bool     `yaml:"illformed,omitempty"`
	Equals         []string `yaml:"equals,omitempty"`
	NotEquals      []string `yaml:"notEquals,omitempty"`
}

//go:embed default.yaml
var defaultCatalog []byte

//nolint:gochecknoglobals // parsed once.
var parseDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
})

// Default returns the embedded catalog of JDK and ICU locale behaviour.
func Default() (*Catalog, error) { return parseDefault() }

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog. Unknown fields are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Case returns the case with the given name.
func (c *Catalog) Case(name string) (Case, bool) {
	i := slices.IndexFunc(c.Cases, func(cs Case) bool { return cs.Name == name })
	if i < 0 {
		return Case{}, false
	}
	return c.Cases[i], true
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.Name == "" {
			return fmt.Errorf("%w: case %d has no name", ErrInvalidCatalog, i)
		}
		if seen[cs.Name] {
			return fmt.Errorf("%w: duplicate case %q", ErrInvalidCatalog, cs.Name)
		}
		seen[cs.Name] = true

		if cs.Engine != JDK && cs.Engine != ICU {
			return fmt.Errorf("%w: case %q: unknown engine %q", ErrInvalidCatalog, cs.Name, cs.Engine)
		}
		if n := cs.constructors(); n != 1 {
			return fmt.Errorf("%w: case %q: want exactly one constructor, got %d", ErrInvalidCatalog, cs.Name, n)
		}
		if cs.ID != "" && cs.Engine != ICU {
			return fmt.Errorf("%w: case %q: locale IDs are ICU only", ErrInvalidCatalog, cs.Name)
		}
		for _, step := range cs.Builder {
			if !slices.Contains(stepKinds, step.Set) {
				return fmt.Errorf("%w: case %q: unknown builder step %q", ErrInvalidCatalog, cs.Name, step.Set)
			}
		}
	}
	for _, cs := range c.Cases {
		for _, ref := range cs.references() {
			if !seen[ref] {
				return fmt.Errorf("%w: case %q: %w %q", ErrInvalidCatalog, cs.Name, ErrUnknownCase, ref)
			}
		}
	}
	return nil
}

//nolint:gochecknoglobals // static list.
var stepKinds = []string{
	"language", "script", "region", "variant", "extension", "keyword", "attribute", "languageTag", "locale",
}

func (cs Case) constructors() int {
	n := 0
	for _, set := range []bool{cs.Tag != "", cs.ID != "", len(cs.Parts) > 0, len(cs.Builder) > 0, cs.Convert != ""} {
		if set {
			n++
		}
	}
	return n
}

// references returns the names of the cases cs depends on.
func (cs Case) references() []string {
	refs := slices.Concat(cs.Expect.Equals, cs.Expect.NotEquals)
	if cs.Convert != "" {
		refs = append(refs, cs.Convert)
	}
	for _, step := range cs.Builder {
		if step.Set == "locale" {
			refs = append(refs, step.Value)
		}
	}
	return refs
}
