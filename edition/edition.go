/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package edition classifies a crate's declared Rust edition into the two
// families that change use-path first-segment resolution.
package edition

import "golang.org/x/mod/semver"

// Family discriminates the two edition families: everything at or before
// 2015 resolves a use-path's leading segment relative to the crate root
// (or as an extern-crate name); 2018 and later resolve it as either
// absolute-from-root or an extern-crate name, with no implicit
// crate-relative fallback.
type Family int

const (
	// Family2018Plus is every edition from 2018 onward.
	Family2018Plus Family = iota
	// Family2015 is the 2015 edition.
	Family2015
)

// toSemver maps a bare "2015"/"2018"/"2021"/"2024" edition year, as
// carried on a package record, into the "vYYYY.0.0" form
// golang.org/x/mod/semver expects. Borrowing a real semantic-version
// comparator for year ordering avoids a hand-rolled integer parse.
func toSemver(year string) string {
	return "v" + year + ".0.0"
}

// Classify reports which family a raw edition string belongs to. An empty
// string (no edition key in the manifest) defaults to 2015, matching
// Cargo's own default. Any other unparseable string is treated as
// 2018-or-later, since that is this indexer's primary supported path.
func Classify(raw string) Family {
	if raw == "" {
		return Family2015
	}
	v := toSemver(raw)
	if !semver.IsValid(v) {
		return Family2018Plus
	}
	if semver.Compare(v, toSemver("2018")) < 0 {
		return Family2015
	}
	return Family2018Plus
}
