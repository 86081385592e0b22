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

// Package modpath provides the canonical representation of fully-qualified
// module paths and use-declaration paths, plus the visibility tag carried
// alongside declarations.
package modpath

import "strings"

// Path is an ordered sequence of plain-identifier segments: a
// fully-qualified module path. By invariant, every Path emitted by the
// module discoverer begins with the owning target's crate name and
// contains only plain identifiers.
type Path struct {
	segments []string
}

// New constructs a Path from a list of identifier segments.
func New(segments ...string) Path {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Path{segments: cp}
}

// Segments returns the path's identifier segments. The returned slice must
// not be mutated by the caller.
func (p Path) Segments() []string {
	return p.segments
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.segments)
}

// Push returns a new Path with seg appended as a trailing segment.
func (p Path) Push(seg string) Path {
	next := make([]string, len(p.segments)+1)
	copy(next, p.segments)
	next[len(p.segments)] = seg
	return Path{segments: next}
}

// Parent returns a new Path with the trailing segment dropped. Parent of an
// empty path is the empty path.
func (p Path) Parent() Path {
	if len(p.segments) == 0 {
		return Path{}
	}
	return Path{segments: append([]string(nil), p.segments[:len(p.segments)-1]...)}
}

// First returns a single-segment Path built from this path's first
// segment. First of an empty path is the empty path.
func (p Path) First() Path {
	if len(p.segments) == 0 {
		return Path{}
	}
	return Path{segments: []string{p.segments[0]}}
}

// FirstSegment returns the first identifier segment, or "" if the path is
// empty.
func (p Path) FirstSegment() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[0]
}

// Last returns the final identifier segment, or "" if the path is empty.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Empty reports whether the path carries zero segments.
func (p Path) Empty() bool {
	return len(p.segments) == 0
}

// Equal reports structural equality between two paths.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if s != other.segments[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical "::"-joined string usable as a map or radix-tree
// key. Two structurally-equal paths always produce the same Key.
func (p Path) Key() string {
	return strings.Join(p.segments, "::")
}

// String formats the path using "::" as the segment separator.
func (p Path) String() string {
	return strings.Join(p.segments, "::")
}
