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

package syntax

import "crateidx/modpath"

// UseLeafKind discriminates how a use-tree chain terminates.
type UseLeafKind int

const (
	LeafName UseLeafKind = iota
	LeafRename
	LeafGlob
	LeafGroup
)

// UseLeaf is the terminal node of a use-tree chain.
type UseLeaf struct {
	Kind UseLeafKind

	// Name is the bound identifier for LeafName and the original name
	// for LeafRename.
	Name string

	// Alias is the `as` target for LeafRename.
	Alias string

	// Group holds the alternative continuations for LeafGroup, e.g. the
	// `{b, c::d}` in `use a::{b, c::d};`. Each entry is itself a full
	// use-tree relative to the enclosing Prefix.
	Group []UseTree
}

// UseTree is a parsed (unflattened) `use` declaration path, mirroring the
// recursive path-then-leaf shape of the source grammar: a chain of plain
// identifiers or relative-path keywords (self/super/crate), terminated by
// a plain name, a rename, a glob, or a group of further use-trees.
type UseTree struct {
	// Absolute is true only at the outermost tree of a declaration, when
	// the path begins with a leading "::".
	Absolute bool

	// Prefix holds the chain segments leading up to Leaf: identifiers or
	// one of the keywords "self", "Self", "super", "crate".
	Prefix []string

	Leaf UseLeaf
}

func prefixSegment(word string) modpath.Segment {
	switch word {
	case "self":
		return modpath.Segment{Kind: modpath.SelfLower}
	case "Self":
		return modpath.Segment{Kind: modpath.SelfUpper}
	case "super":
		return modpath.Segment{Kind: modpath.Super}
	case "crate":
		return modpath.Segment{Kind: modpath.Crate}
	default:
		return modpath.NameSegment(word)
	}
}

// Flatten walks the use-tree and emits one modpath.UsePath per concrete
// leaf (LeafGroup fans out into one UsePath per member), all carrying the
// same declaration-level visibility vis. This mirrors how the original
// source's use-tree flattening recurses through Path/Name/Rename/Glob/Group
// forms to build the flat list the resolver consumes.
func (t UseTree) Flatten(vis modpath.Visibility) []modpath.UsePath {
	return t.flatten(vis, nil, t.Absolute)
}

func (t UseTree) flatten(vis modpath.Visibility, inherited []modpath.Segment, absolute bool) []modpath.UsePath {
	segs := make([]modpath.Segment, 0, len(inherited)+len(t.Prefix)+1)
	segs = append(segs, inherited...)
	if absolute && len(inherited) == 0 {
		segs = append(segs, modpath.Segment{Kind: modpath.Empty})
	}
	for _, word := range t.Prefix {
		segs = append(segs, prefixSegment(word))
	}

	switch t.Leaf.Kind {
	case LeafName:
		final := append(append([]modpath.Segment(nil), segs...), prefixSegment(t.Leaf.Name))
		return []modpath.UsePath{modpath.NewUsePath(vis, final...)}
	case LeafRename:
		final := append(append([]modpath.Segment(nil), segs...), modpath.RenameSegment(t.Leaf.Name, t.Leaf.Alias))
		return []modpath.UsePath{modpath.NewUsePath(vis, final...)}
	case LeafGlob:
		final := append(append([]modpath.Segment(nil), segs...), modpath.Segment{Kind: modpath.Glob})
		return []modpath.UsePath{modpath.NewUsePath(vis, final...)}
	case LeafGroup:
		var out []modpath.UsePath
		for _, member := range t.Leaf.Group {
			out = append(out, member.flatten(vis, segs, false)...)
		}
		return out
	default:
		return nil
	}
}
