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

// Package chrono carries the java.time vocabulary over to Go: local dates and
// times without a zone, periods, zoned instants and pattern based formatting.
//
// Local values are backed by cloud.google.com/go/civil. Anything that has a
// zone is a plain time.Time.
package chrono

import "time"

// Clock supplies the current instant. Code that reads the time takes a Clock
// so that tests can freeze it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Instant }

// EpochMilli returns the number of milliseconds between the Unix epoch and t.
func EpochMilli(t time.Time) int64 { return t.UnixMilli() }
