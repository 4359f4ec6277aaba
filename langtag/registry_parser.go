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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	recordSeparator     = "%%"
	maxNumericExpansion = 20000
	maxAlphaExpansion   = 40000
)

// fieldSet collects the fields of one record-jar record. Field names are
// lowercased; a field may repeat (Description, Prefix, Comments).
type fieldSet map[string][]string

// ParseRegistry reads a file in the IANA Language Subtag Registry format
// (RFC 5646, Section 3.1.1) and returns the populated Registry. Range
// notation such as "qaa..qtz" is expanded into one record per subtag.
func ParseRegistry(r io.Reader) (*Registry, error) {
	reg := &Registry{Records: make(map[string]Record)}
	fields := fieldSet{}
	last := ""
	header := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == recordSeparator:
			if err := reg.addFields(fields); err != nil {
				return nil, err
			}
			fields, last, header = fieldSet{}, "", false
		case line != "" && (line[0] == ' ' || line[0] == '\t'):
			// Continuation of a folded field body.
			if vals := fields[last]; len(vals) > 0 {
				vals[len(vals)-1] += " " + strings.TrimSpace(line)
			}
		default:
			name, body, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			name, body = strings.ToLower(strings.TrimSpace(name)), strings.TrimSpace(body)
			if header && name == "file-date" {
				reg.FileDate = body
				continue
			}
			fields[name] = append(fields[name], body)
			last = name
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := reg.addFields(fields); err != nil {
		return nil, err
	}
	return reg, nil
}

// addFields turns collected fields into a record and stores it, expanding
// ranges if necessary.
func (reg *Registry) addFields(fields fieldSet) error {
	if len(fields) == 0 {
		return nil
	}
	rec := newRecord(fields)

	switch {
	case strings.Contains(rec.Subtag, ".."):
		subtags, err := expandRange(rec.Subtag)
		if err != nil {
			return fmt.Errorf("failed to expand subtag range '%s': %w", rec.Subtag, err)
		}
		for _, sub := range subtags {
			expanded := rec
			expanded.Subtag = sub
			reg.Records[rec.Type+":"+sub] = expanded
		}
	case strings.Contains(rec.Tag, ".."):
		tags, err := expandRange(rec.Tag)
		if err != nil {
			return fmt.Errorf("failed to expand tag range '%s': %w", rec.Tag, err)
		}
		for _, t := range tags {
			expanded := rec
			expanded.Tag = t
			reg.Records[t] = expanded
		}
	case rec.Subtag != "":
		reg.Records[rec.Type+":"+strings.ToLower(rec.Subtag)] = rec
	case rec.Tag != "":
		reg.Records[strings.ToLower(rec.Tag)] = rec
	}
	return nil
}

// newRecord converts the raw fields into a Record.
func newRecord(fields fieldSet) Record {
	first := func(key string) string {
		if v := fields[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	return Record{
		Type:           first("type"),
		Subtag:         first("subtag"),
		Tag:            first("tag"),
		Description:    fields["description"],
		Added:          first("added"),
		Deprecated:     first("deprecated"),
		PreferredValue: first("preferred-value"),
		Prefix:         fields["prefix"],
		SuppressScript: first("suppress-script"),
		Macrolanguage:  first("macrolanguage"),
		Scope:          first("scope"),
		Comments:       fields["comments"],
	}
}

// expandRange expands "start..end" into every subtag of the range, lowercased.
func expandRange(rangeStr string) ([]string, error) {
	start, end, ok := strings.Cut(rangeStr, "..")
	if !ok || strings.Contains(end, "..") {
		return nil, fmt.Errorf("invalid range format: %s", rangeStr)
	}
	if len(start) != len(end) || len(start) == 0 {
		return nil, fmt.Errorf("range start/end must have same, non-zero length: %s", rangeStr)
	}
	switch {
	case all(start, isDigit) && all(end, isDigit):
		return expandNumericRange(start, end)
	case all(start, isAlpha) && all(end, isAlpha):
		return expandAlphabeticRange(strings.ToLower(start), strings.ToLower(end))
	}
	return nil, fmt.Errorf("range must be purely alphabetic or purely numeric: %s", rangeStr)
}

// expandNumericRange expands a numeric range (e.g., "001..003").
func expandNumericRange(start, end string) ([]string, error) {
	from, err := strconv.Atoi(start)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric range: %s..%s", start, end)
	}
	to, err := strconv.Atoi(end)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric range: %s..%s", start, end)
	}
	if from > to {
		return nil, fmt.Errorf("start of range cannot be greater than end: %s..%s", start, end)
	}
	if to-from > maxNumericExpansion {
		return nil, fmt.Errorf("numeric range is too large to expand: %s..%s", start, end)
	}
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%0*d", len(start), i))
	}
	return out, nil
}

// expandAlphabeticRange expands a lowercase alphabetic range (e.g., "qaa..qtz")
// by counting in base 26.
func expandAlphabeticRange(start, end string) ([]string, error) {
	if start > end {
		return nil, fmt.Errorf("start of alphabetic range cannot be greater than end: %s..%s", start, end)
	}
	cur := []byte(start)
	var out []string
	for {
		out = append(out, string(cur))
		if string(cur) == end {
			return out, nil
		}
		if len(out) > maxAlphaExpansion {
			return nil, fmt.Errorf("alphabetic range is too large to expand: %s..%s", start, end)
		}
		for i := len(cur) - 1; i >= 0; i-- {
			if cur[i] < 'z' {
				cur[i]++
				break
			}
			cur[i] = 'a'
		}
	}
}
