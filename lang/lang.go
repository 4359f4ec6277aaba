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

// Package lang collects small helpers for language level idioms that have no
// direct Go syntax: null coalescing, dereferencing with a default and
// interface default methods.
package lang

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x. Like Math.abs, it overflows for the
// most negative value of the type: Abs(int32(math.MinInt32)) is negative.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Coalesce returns the first of values that is not the zero value, or the
// zero value if there is none.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Deref returns *p, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// Valuer is implemented by types that carry an integer value.
type Valuer interface {
	Value() int
}

// DefaultValuer supplies Value to the types that embed it. An embedding type
// can still declare its own Value.
type DefaultValuer struct{}

// Value returns 10.
func (DefaultValuer) Value() int { return 10 }

// DoublingValuer derives Value from a hidden base value.
type DoublingValuer struct{}

func (DoublingValuer) privateValue() int { return 20 }

// Value returns twice the hidden base value, 40.
func (v DoublingValuer) Value() int { return v.privateValue() * 2 }
