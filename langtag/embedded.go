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
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
	"sync"
)

//go:embed language-subtag-registry
var embeddedRegistryData []byte

// ErrNoRegistry is returned when the embedded registry is empty.
var ErrNoRegistry = errors.New("embedded language-subtag-registry file is empty or not found")

// NewParser creates a new parser instance from the embedded registry.
//
// Every call parses the registry again. Callers that only need one parser
// should use Default.
func NewParser() (*Parser, error) {
	if len(embeddedRegistryData) == 0 {
		return nil, ErrNoRegistry
	}
	registry, err := ParseRegistry(bytes.NewReader(embeddedRegistryData))
	if err != nil {
		return nil, err
	}
	return &Parser{registry: registry}, nil
}

// NewParserFromRegistry returns a parser backed by reg. A nil registry gives
// a parser that checks syntax only.
func NewParserFromRegistry(reg *Registry) *Parser {
	return &Parser{registry: reg}
}

var defaultParser = sync.OnceValues(NewParser)

// Default returns the process-wide parser built from the embedded registry.
func Default() (*Parser, error) {
	return defaultParser()
}

// MustDefault is like Default but panics if the embedded registry is broken.
func MustDefault() *Parser {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}
