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

// Package normalize rewrites a use-path's relative prefix markers
// (self/super/crate) against its containing module, producing the module
// path resolution should actually start walking from.
package normalize

import "crateidx/modpath"

// Normalize rewrites up's leading self/super/crate/plain-identifier prefix
// segments (every segment but the last) relative to containingModule. The
// final segment - a name, rename, or glob - is carried through untouched
// in rewritten. Each prefix segment adjusts the base as follows:
//
//   - self: no change to the base.
//   - super: pop one segment off the base; repeated super beyond the root
//     collapses to the empty base (Path.Parent is a safe no-op there).
//   - crate: reset the base to the crate root (the base's first segment).
//   - plain identifier: kept in rewritten, to be walked as a child module
//     by the caller once normalization is done.
//
// Any other segment kind (Empty, Glob, Rename, SelfUpper) appearing as a
// non-final segment is a malformed use-path and yields ErrInvalidUsePath.
func Normalize(up modpath.UsePath, containingModule modpath.Path) (base modpath.Path, rewritten modpath.UsePath, err error) {
	base = containingModule
	segs := up.Segments
	if len(segs) == 0 {
		return base, up, nil
	}

	kept := make([]modpath.Segment, 0, len(segs))
	for i, seg := range segs {
		if i == len(segs)-1 {
			kept = append(kept, seg)
			continue
		}
		switch seg.Kind {
		case modpath.SelfLower:
			// no-op: base stays as-is.
		case modpath.Super:
			base = base.Parent()
		case modpath.Crate:
			base = base.First()
		case modpath.Ident:
			kept = append(kept, seg)
		default:
			return modpath.Path{}, modpath.UsePath{}, modpath.ErrInvalidUsePath
		}
	}
	return base, modpath.UsePath{Segments: kept, Vis: up.Vis}, nil
}
