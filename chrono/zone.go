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
	"errors"
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata" // zone IDs resolve without a system database
)

// ErrUnknownZone is returned for zone IDs that are neither in the zone
// database nor a UTC offset.
var ErrUnknownZone = errors.New("unknown time zone")

// LoadZone returns the location of an IANA zone ID such as
// "America/New_York", or of a fixed offset written "+HH:MM" or "-HH:MM".
// "Z" and "UTC" are UTC.
func LoadZone(zone string) (*time.Location, error) {
	switch zone {
	case "":
		return nil, fmt.Errorf("%w: empty zone", ErrUnknownZone)
	case "Z", "UTC":
		return time.UTC, nil
	}
	if loc, err := time.LoadLocation(zone); err == nil {
		return loc, nil
	}
	if len(zone) != 6 || (zone[0] != '+' && zone[0] != '-') || zone[3] != ':' {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZone, zone)
	}
	hours, err := strconv.ParseUint(zone[1:3], 10, 8)
	if err != nil || hours > 18 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZone, zone)
	}
	minutes, err := strconv.ParseUint(zone[4:], 10, 8)
	if err != nil || minutes > 59 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZone, zone)
	}
	offset := int(hours)*3600 + int(minutes)*60
	if zone[0] == '-' {
		offset = -offset
	}
	return time.FixedZone("UTC"+zone, offset), nil
}

// Zoned returns t in the given zone.
func Zoned(t time.Time, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ZonedNow returns the current instant of c in the given zone.
func ZonedNow(c Clock, zone string) (time.Time, error) {
	return Zoned(c.Now(), zone)
}

// PlusPeriod adds p to the wall clock of t in its own zone.
func PlusPeriod(t time.Time, p Period) time.Time { return p.AddTo(t) }
