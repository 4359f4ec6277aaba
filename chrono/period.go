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

package chrono

import (
	"fmt"
	"time"
)

// Period is a date based amount of time. Unlike a time.Duration, its length
// depends on the date it is added to.
type Period struct {
	Years, Months, Days int
}

// OfYears returns a period of n years.
func OfYears(n int) Period { return Period{Years: n} }

// OfMonths returns a period of n months.
func OfMonths(n int) Period { return Period{Months: n} }

// OfDays returns a period of n days.
func OfDays(n int) Period { return Period{Days: n} }

// IsZero reports whether p has no length.
func (p Period) IsZero() bool { return p == Period{} }

// Negated returns -p.
func (p Period) Negated() Period { return Period{-p.Years, -p.Months, -p.Days} }

// AddTo adds p to the wall clock of t. Years and months are added first and
// the day of month is clamped to the length of the resulting month, so
// January 31 plus one month is the last day of February. Days are added
// last.
func (p Period) AddTo(t time.Time) time.Time {
	year, month, dayOfMonth := t.Date()
	hour, minute, sec := t.Clock()
	first := time.Date(year+p.Years, month+time.Month(p.Months), 1,
		hour, minute, sec, t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); dayOfMonth > last {
		dayOfMonth = last
	}
	return first.AddDate(0, 0, dayOfMonth-1+p.Days)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String returns the ISO 8601 form, e.g. "P2Y" or "P1M3D". The zero period is
// "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	s := "P"
	if p.Years != 0 {
		s += fmt.Sprintf("%dY", p.Years)
	}
	if p.Months != 0 {
		s += fmt.Sprintf("%dM", p.Months)
	}
	if p.Days != 0 {
		s += fmt.Sprintf("%dD", p.Days)
	}
	return s
}
