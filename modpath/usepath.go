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

import (
	"errors"
	"strings"
)

// ErrInvalidUsePath is raised when an operation expects a plain-identifier
// leading segment but the use-path is empty or its first segment is a
// relative marker, glob, or rename. normalize.Normalize also raises it for
// a non-final segment that is not self, super, crate, or a plain
// identifier, which a parsed `use Self::X;` produces.
var ErrInvalidUsePath = errors.New("modpath: invalid use-path")

// SegmentKind discriminates the forms a use-path segment can take.
type SegmentKind int

const (
	// Ident is a plain identifier segment.
	Ident SegmentKind = iota
	// SelfLower is the `self` relative marker.
	SelfLower
	// SelfUpper is the `Self` relative marker (type-relative; the
	// normalizer rejects it as a non-final segment with ErrInvalidUsePath).
	SelfUpper
	// Super is the `super` relative marker.
	Super
	// Crate is the `crate` relative marker.
	Crate
	// Empty is the leading empty segment denoting an absolute (`::`-rooted)
	// path.
	Empty
	// Glob is the trailing `*` wildcard segment.
	Glob
	// Rename is a `name as alias` segment; only valid as the final
	// segment.
	Rename
)

// Segment is one component of a UsePath.
type Segment struct {
	Kind  SegmentKind
	Name  string // populated for Ident and Rename (the original name)
	Alias string // populated for Rename only
}

// NameSegment builds a plain-identifier segment.
func NameSegment(name string) Segment {
	return Segment{Kind: Ident, Name: name}
}

// RenameSegment builds a `name as alias` segment.
func RenameSegment(name, alias string) Segment {
	return Segment{Kind: Rename, Name: name, Alias: alias}
}

// String renders a single segment in its source keyword form.
func (s Segment) String() string {
	switch s.Kind {
	case Ident:
		return s.Name
	case SelfLower:
		return "self"
	case SelfUpper:
		return "Self"
	case Super:
		return "super"
	case Crate:
		return "crate"
	case Empty:
		return ""
	case Glob:
		return "*"
	case Rename:
		return s.Name + " as " + s.Alias
	default:
		return ""
	}
}

// UsePath is the path written in a `use` declaration: an ordered sequence
// of segments, any prefix of which (all but the last) may carry a relative
// marker, plus a visibility tag for the declaration itself.
type UsePath struct {
	Segments []Segment
	Vis      Visibility
}

// NewUsePath builds a UsePath from segments and a visibility.
func NewUsePath(vis Visibility, segments ...Segment) UsePath {
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return UsePath{Segments: cp, Vis: vis}
}

// String formats the use-path using "::" as the separator. A leading empty
// (absolute-root) segment round-trips correctly: its rendered form is "",
// so joining with "::" yields a leading "::".
func (u UsePath) String() string {
	parts := make([]string, len(u.Segments))
	for i, s := range u.Segments {
		parts[i] = s.String()
	}
	return u.Vis.String() + strings.Join(parts, "::")
}

// BeginsWith reports whether the first segment is a plain identifier equal
// to ident.
func (u UsePath) BeginsWith(ident string) bool {
	if len(u.Segments) == 0 {
		return false
	}
	first := u.Segments[0]
	return first.Kind == Ident && first.Name == ident
}

// BeginsWithEmpty reports whether the first segment is the absolute-root
// empty marker.
func (u UsePath) BeginsWithEmpty() bool {
	return len(u.Segments) > 0 && u.Segments[0].Kind == Empty
}

// ReplaceFirst returns a copy of u with its first segment replaced by a
// plain identifier named ident, used to rewrite an extern-crate alias back
// to the real crate name. Fails with ErrInvalidUsePath if u is empty or its
// first segment is not a plain identifier.
func (u UsePath) ReplaceFirst(ident string) (UsePath, error) {
	if len(u.Segments) == 0 || u.Segments[0].Kind != Ident {
		return UsePath{}, ErrInvalidUsePath
	}
	next := make([]Segment, len(u.Segments))
	copy(next, u.Segments)
	next[0] = NameSegment(ident)
	return UsePath{Segments: next, Vis: u.Vis}, nil
}

// RemoveFirst returns a copy of u with its first segment dropped. Fails
// with ErrInvalidUsePath if u is empty or its first segment is not a plain
// identifier.
func (u UsePath) RemoveFirst() (UsePath, error) {
	if len(u.Segments) == 0 || u.Segments[0].Kind != Ident {
		return UsePath{}, ErrInvalidUsePath
	}
	next := make([]Segment, len(u.Segments)-1)
	copy(next, u.Segments[1:])
	return UsePath{Segments: next, Vis: u.Vis}, nil
}
