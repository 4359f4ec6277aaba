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
	"time"

	"cloud.google.com/go/civil"
)

const day = 24 * time.Hour

// LocalDate is a date without a time of day or a zone.
type LocalDate struct {
	d civil.Date
}

// DateOf returns the date of the given year, month and day. Out of range
// values are normalized the way time.Date does.
func DateOf(year int, month time.Month, dayOfMonth int) LocalDate {
	return LocalDate{civil.DateOf(time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC))}
}

// Today returns the current date in loc.
func Today(c Clock, loc *time.Location) LocalDate {
	return LocalDate{civil.DateOf(c.Now().In(loc))}
}

// ParseDate reads an ISO 8601 date such as "2025-04-01".
func ParseDate(s string) (LocalDate, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{d}, nil
}

// Year returns the year of d.
func (d LocalDate) Year() int { return d.d.Year }

// Month returns the month of d.
func (d LocalDate) Month() time.Month { return d.d.Month }

// Day returns the day of month of d.
func (d LocalDate) Day() int { return d.d.Day }

// Weekday returns the day of the week of d.
func (d LocalDate) Weekday() time.Weekday { return d.d.In(time.UTC).Weekday() }

// PlusDays returns the date n days later.
func (d LocalDate) PlusDays(n int) LocalDate { return LocalDate{d.d.AddDays(n)} }

// MinusDays returns the date n days earlier.
func (d LocalDate) MinusDays(n int) LocalDate { return LocalDate{d.d.AddDays(-n)} }

// Plus adds a period. The day of month is clamped, so January 31 plus one
// month is February 28 (or 29 in leap years).
func (d LocalDate) Plus(p Period) LocalDate {
	return LocalDate{civil.DateOf(p.AddTo(d.d.In(time.UTC)))}
}

// Before reports whether d is earlier than other.
func (d LocalDate) Before(other LocalDate) bool { return d.d.Before(other.d) }

// After reports whether d is later than other.
func (d LocalDate) After(other LocalDate) bool { return d.d.After(other.d) }

// Equal reports whether d and other are the same date.
func (d LocalDate) Equal(other LocalDate) bool { return d.d == other.d }

// AtTime combines d with a time of day.
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{civil.DateTime{Date: d.d, Time: t.t}}
}

// AtStartOfDay returns midnight at the start of d in loc.
func (d LocalDate) AtStartOfDay(loc *time.Location) time.Time { return d.d.In(loc) }

// String returns the ISO 8601 form, e.g. "2025-04-01".
func (d LocalDate) String() string { return d.d.String() }

// LocalTime is a time of day without a date or a zone.
type LocalTime struct {
	t civil.Time
}

// TimeOf returns the time of day hour:minute.
func TimeOf(hour, minute int) LocalTime {
	return TimeOfNano(hour, minute, 0, 0)
}

// TimeOfNano returns the time of day with seconds and nanoseconds. Values
// outside their range wrap around midnight.
func TimeOfNano(hour, minute, second, nanosecond int) LocalTime {
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second + time.Duration(nanosecond)
	return timeOfDay(d)
}

func timeOfDay(d time.Duration) LocalTime {
	d %= day
	if d < 0 {
		d += day
	}
	return LocalTime{civil.TimeOf(time.Unix(0, 0).UTC().Add(d))}
}

func (t LocalTime) sinceMidnight() time.Duration {
	return time.Duration(t.t.Hour)*time.Hour + time.Duration(t.t.Minute)*time.Minute +
		time.Duration(t.t.Second)*time.Second + time.Duration(t.t.Nanosecond)
}

// Hour returns the hour of t, in the range [0, 23].
func (t LocalTime) Hour() int { return t.t.Hour }

// Minute returns the minute of t.
func (t LocalTime) Minute() int { return t.t.Minute }

// Second returns the second of t.
func (t LocalTime) Second() int { return t.t.Second }

// PlusHours returns the time n hours later, wrapping around midnight.
func (t LocalTime) PlusHours(n int) LocalTime {
	return timeOfDay(t.sinceMidnight() + time.Duration(n)*time.Hour)
}

// PlusMinutes returns the time n minutes later, wrapping around midnight.
func (t LocalTime) PlusMinutes(n int) LocalTime {
	return timeOfDay(t.sinceMidnight() + time.Duration(n)*time.Minute)
}

// Before reports whether t is earlier in the day than other.
func (t LocalTime) Before(other LocalTime) bool {
	return t.sinceMidnight() < other.sinceMidnight()
}

// After reports whether t is later in the day than other.
func (t LocalTime) After(other LocalTime) bool {
	return t.sinceMidnight() > other.sinceMidnight()
}

// Equal reports whether t and other are the same time of day.
func (t LocalTime) Equal(other LocalTime) bool { return t.t == other.t }

// String returns the ISO 8601 form, e.g. "08:00:00".
func (t LocalTime) String() string { return t.t.String() }

// LocalDateTime is a date and a time of day without a zone.
type LocalDateTime struct {
	dt civil.DateTime
}

// DateTimeOf returns the given date at hour:minute.
func DateTimeOf(year int, month time.Month, dayOfMonth, hour, minute int) LocalDateTime {
	return DateOf(year, month, dayOfMonth).AtTime(TimeOf(hour, minute))
}

// Now returns the current date and time in loc.
func Now(c Clock, loc *time.Location) LocalDateTime {
	return LocalDateTime{civil.DateTimeOf(c.Now().In(loc))}
}

// ParseDateTime reads an ISO 8601 date and time such as "2025-04-01T14:00:00".
func ParseDateTime(s string) (LocalDateTime, error) {
	dt, err := civil.ParseDateTime(s)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{dt}, nil
}

// Date returns the date part of dt.
func (dt LocalDateTime) Date() LocalDate { return LocalDate{dt.dt.Date} }

// Time returns the time of day of dt.
func (dt LocalDateTime) Time() LocalTime { return LocalTime{dt.dt.Time} }

// utc maps the wall clock onto UTC, where days are always 24 hours long.
func (dt LocalDateTime) utc() time.Time { return dt.dt.In(time.UTC) }

func (dt LocalDateTime) add(d time.Duration) LocalDateTime {
	return LocalDateTime{civil.DateTimeOf(dt.utc().Add(d))}
}

// PlusDays returns dt n days later at the same time of day.
func (dt LocalDateTime) PlusDays(n int) LocalDateTime {
	return LocalDateTime{civil.DateTime{Date: dt.dt.Date.AddDays(n), Time: dt.dt.Time}}
}

// PlusHours returns dt n hours later.
func (dt LocalDateTime) PlusHours(n int) LocalDateTime {
	return dt.add(time.Duration(n) * time.Hour)
}

// PlusMinutes returns dt n minutes later.
func (dt LocalDateTime) PlusMinutes(n int) LocalDateTime {
	return dt.add(time.Duration(n) * time.Minute)
}

// PlusDuration adds an exact duration to the wall clock.
func (dt LocalDateTime) PlusDuration(d time.Duration) LocalDateTime { return dt.add(d) }

// Plus adds a period to the date, keeping the time of day. The day of month
// is clamped as in LocalDate.Plus.
func (dt LocalDateTime) Plus(p Period) LocalDateTime {
	return LocalDateTime{civil.DateTimeOf(p.AddTo(dt.utc()))}
}

// Before reports whether dt is earlier than other.
func (dt LocalDateTime) Before(other LocalDateTime) bool { return dt.dt.Before(other.dt) }

// After reports whether dt is later than other.
func (dt LocalDateTime) After(other LocalDateTime) bool { return dt.dt.After(other.dt) }

// Equal reports whether dt and other are the same date and time.
func (dt LocalDateTime) Equal(other LocalDateTime) bool { return dt.dt == other.dt }

// In returns the instant of dt in loc.
func (dt LocalDateTime) In(loc *time.Location) time.Time { return dt.dt.In(loc) }

// Format renders dt with f.
func (dt LocalDateTime) Format(f *Formatter) string { return f.Format(dt) }

// String returns the ISO 8601 form, e.g. "2025-04-01T14:00:00".
func (dt LocalDateTime) String() string { return dt.dt.String() }
