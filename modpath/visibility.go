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

package modpath

// VisibilityKind discriminates the four visibility forms a declaration can
// carry.
type VisibilityKind int

const (
	// Private is the default, inherited visibility: visible only within
	// the declaring module and its descendants.
	Private VisibilityKind = iota
	// Public marks a declaration visible to every crate that can see the
	// containing crate.
	Public
	// CrateVisible marks a declaration visible anywhere within the
	// declaring crate, but not beyond it.
	CrateVisible
	// RestrictedTo marks a declaration visible within a specific ancestor
	// module path, carried in Visibility.Path.
	RestrictedTo
)

// Visibility tags an extracted item with how broadly it may be seen.
// Resolution does not enforce visibility; it is carried through so a
// presentation layer can filter on it.
type Visibility struct {
	Kind VisibilityKind
	Path Path // populated only when Kind == RestrictedTo
}

// Inherited is the zero-value private visibility.
var Inherited = Visibility{Kind: Private}

// PublicVisibility is the pub visibility.
var PublicVisibility = Visibility{Kind: Public}

// CrateVisibility is the pub(crate) visibility.
var CrateVisibility = Visibility{Kind: CrateVisible}

// Restricted builds a pub(in path) visibility.
func Restricted(path Path) Visibility {
	return Visibility{Kind: RestrictedTo, Path: path}
}

// String renders the visibility in its source-level keyword form, with a
// trailing space when non-empty so it composes directly before a
// declaration keyword (matching how the original renders it).
func (v Visibility) String() string {
	switch v.Kind {
	case Public:
		return "pub "
	case CrateVisible:
		return "pub(crate) "
	case RestrictedTo:
		return "pub(in " + v.Path.String() + ") "
	default:
		return ""
	}
}
