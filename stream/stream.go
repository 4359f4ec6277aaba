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

// Package stream builds lazy pipelines over iter.Seq in the style of
// java.util.stream. Nothing is evaluated until a terminal operation such as
// Reduce, Collect or Count ranges over the sequence.
package stream

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Of returns a sequence of the given values.
func Of[T any](values ...T) iter.Seq[T] { return slices.Values(values) }

// FromSlice returns a sequence of the elements of s.
func FromSlice[S ~[]T, T any](s S) iter.Seq[T] { return slices.Values(s) }

// Filter keeps the elements matching pred.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Map applies fn to every element.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// TakeWhile yields elements until the first one that does not match pred.
func TakeWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements while they match pred and yields the rest.
func DropWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}

// Limit yields at most n elements.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}

// Reduce folds the sequence into acc with fn.
func Reduce[T, A any](seq iter.Seq[T], acc A, fn func(A, T) A) A {
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Collect returns the elements in a slice.
func Collect[T any](seq iter.Seq[T]) []T { return slices.Collect(seq) }

// Count returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Sum adds the elements. It is meant as the fn argument of Reduce.
func Sum[T constraints.Integer | constraints.Float](a, b T) T { return a + b }
