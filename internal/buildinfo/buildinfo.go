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

// Package buildinfo holds the version stamped in at link time with
// -ldflags "-X github.com/jplu/lingo/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

// Version, Commit and Date describe the build: the release version, the git
// commit it was built from and the build date. They are overridden at link
// time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the version line printed by the version command.
func String() string {
	return fmt.Sprintf("localeprobe %s (commit=%s, date=%s)", Version, Commit, Date)
}
