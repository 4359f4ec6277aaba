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

// Package optional provides a container that may or may not hold a value,
// with the combinators of java.util.Optional.
package optional

import (
	"errors"
	"fmt"
)

// ErrNoValue is the panic value of MustGet on an empty Optional.
var ErrNoValue = errors.New("no value present")

// Optional holds at most one value. The zero value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v.
func Of[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// Empty returns an empty Optional.
func Empty[T any]() Optional[T] { return Optional[T]{} }

// OfNullable returns an Optional holding *p, or an empty one when p is nil.
func OfNullable[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// MustGet returns the value and panics with ErrNoValue if there is none.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrNoValue)
	}
	return o.value
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsEmpty reports whether o holds no value.
func (o Optional[T]) IsEmpty() bool { return !o.present }

// IfPresent calls fn with the value if there is one.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// IfPresentOrElse calls fn with the value, or orElse if there is none.
func (o Optional[T]) IfPresentOrElse(fn func(T), orElse func()) {
	if o.present {
		fn(o.value)
		return
	}
	orElse()
}

// Or returns o if it holds a value and the result of supplier otherwise.
// supplier is not called when o is present.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return supplier()
}

// OrElse returns the value or other.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value or the result of supplier.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	return supplier()
}

// Filter returns o if its value matches pred, and an empty Optional otherwise.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Empty[T]()
}

// Map applies fn to the value of o. Go methods cannot introduce type
// parameters, so Map is a function.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(fn(o.value))
}

// FlatMap applies fn to the value of o and returns its result as is.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return fn(o.value)
}

// String returns "Optional[v]" or "Optional.empty".
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return "Optional[" + fmt.Sprint(o.value) + "]"
}
