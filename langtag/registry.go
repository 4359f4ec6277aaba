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

import "strings"

const typeExtlang = "extlang"

// Registry holds the records of a file in the IANA Language Subtag Registry
// format. Subtag records are keyed "type:subtag", tag records (grandfathered
// and redundant) by the lowercased tag.
type Registry struct {
	Records  map[string]Record
	FileDate string
}

// Record represents a single entry in the registry.
// The fields correspond to the fields defined in RFC 5646, Section 3.1.
type Record struct {
	Type           string   `json:"type"`
	Subtag         string   `json:"subtag,omitempty"`
	Tag            string   `json:"tag,omitempty"`
	Description    []string `json:"description"`
	Added          string   `json:"added"`
	Deprecated     string   `json:"deprecated,omitempty"`
	PreferredValue string   `json:"preferredValue,omitempty"`
	Prefix         []string `json:"prefix,omitempty"`
	SuppressScript string   `json:"suppressScript,omitempty"`
	Macrolanguage  string   `json:"macrolanguage,omitempty"`
	Scope          string   `json:"scope,omitempty"`
	Comments       []string `json:"comments,omitempty"`
}

// IsGrandfathered returns true if the record type is 'grandfathered' or 'redundant'.
func (r *Record) IsGrandfathered() bool {
	return r.Type == "grandfathered" || r.Type == "redundant"
}

// IsDeprecated returns true if the record carries a Deprecated date.
func (r *Record) IsDeprecated() bool {
	return r.Deprecated != ""
}

// Subtag looks up the record of a subtag of the given type.
func (reg *Registry) Subtag(typ, subtag string) (Record, bool) {
	if reg == nil {
		return Record{}, false
	}
	rec, ok := reg.Records[typ+":"+strings.ToLower(subtag)]
	return rec, ok
}

// Tag looks up a grandfathered or redundant tag record.
func (reg *Registry) Tag(tag string) (Record, bool) {
	if reg == nil {
		return Record{}, false
	}
	rec, ok := reg.Records[strings.ToLower(tag)]
	if !ok || !rec.IsGrandfathered() {
		return Record{}, false
	}
	return rec, true
}
