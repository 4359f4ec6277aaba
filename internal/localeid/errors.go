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

// Package localeid holds the locale identifier model shared by the jdk and icu
// engines: a base (language, script, region, variant), the extension map with
// the Unicode locale extension split into attributes and keywords, a strict
// builder, and the conversions to and from BCP 47 language tags.
package localeid

import (
	"errors"
	"fmt"
)

// ErrIllformed is matched by every *IllformedError.
var ErrIllformed = errors.New("ill-formed locale data")

// IllformedError reports locale data rejected by the strict builder.
type IllformedError struct {
	Msg   string
	Index int   // offset of the offending part in the input, -1 if unknown
	Err   error // underlying parse error, if any
}

func (e *IllformedError) Error() string {
	if e.Index < 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s [at index %d]", e.Msg, e.Index)
}

// Is reports whether target is ErrIllformed.
func (e *IllformedError) Is(target error) bool {
	return target == ErrIllformed
}

func (e *IllformedError) Unwrap() error { return e.Err }

func illformed(index int, format string, args ...any) *IllformedError {
	return &IllformedError{Msg: fmt.Sprintf(format, args...), Index: index}
}
