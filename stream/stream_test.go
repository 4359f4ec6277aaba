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

package stream

import (
	"slices"
	"strconv"
	"testing"
)

func gt1(x int) bool  { return x > 1 }
func plus1(x int) int { return x + 1 }
func lt5(x int) bool  { return x < 5 }

func TestStreamsAPI(t *testing.T) {
	xs := []int{1, 2, 3, 4}

	result := Reduce(Map(Filter(FromSlice(xs), gt1), plus1), 0, Sum[int])
	if result != 12 {
		t.Errorf("result = %d, want 12", result)
	}

	result = Reduce(TakeWhile(Map(Filter(FromSlice(xs), gt1), plus1), lt5), 0, Sum[int])
	if result != 7 {
		t.Errorf("result with TakeWhile = %d, want 7", result)
	}
}

func TestOperations(t *testing.T) {
	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"of", Collect(Of(3, 1, 2)), []int{3, 1, 2}},
		{"filter", Collect(Filter(Of(1, 2, 3, 4), func(x int) bool { return x%2 == 0 })), []int{2, 4}},
		{"take while", Collect(TakeWhile(Of(1, 2, 7, 3), lt5)), []int{1, 2}},
		{"drop while", Collect(DropWhile(Of(1, 2, 7, 3), lt5)), []int{7, 3}},
		{"limit", Collect(Limit(Of(1, 2, 3), 2)), []int{1, 2}},
		{"limit zero", Collect(Limit(Of(1, 2, 3), 0)), nil},
		{"limit beyond", Collect(Limit(Of(1, 2), 5)), []int{1, 2}},
		{"empty", Collect(Of[int]()), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLaziness(t *testing.T) {
	var mapped []int
	seq := Map(Of(1, 2, 3, 4, 5), func(x int) int {
		mapped = append(mapped, x)
		return x
	})
	if len(mapped) != 0 {
		t.Fatalf("Map evaluated before a terminal operation: %v", mapped)
	}
	if got := Count(Limit(seq, 2)); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if !slices.Equal(mapped, []int{1, 2}) {
		t.Errorf("mapped = %v, want [1 2]", mapped)
	}
}

func TestReduce_ChangesType(t *testing.T) {
	got := Reduce(Map(Of(1, 2, 3), strconv.Itoa), "", func(acc, s string) string { return acc + s })
	if got != "123" {
		t.Errorf("Reduce() = %q, want 123", got)
	}
}
