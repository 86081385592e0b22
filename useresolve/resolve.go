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

// Package useresolve implements the use-path resolver: given a use-path,
// its containing module, the edition of the containing crate, an
// extern-crate rename table, and the per-kind item trees, it produces
// every concrete item the path binds.
package useresolve

import (
	"errors"

	"crateidx/edition"
	"crateidx/item"
	"crateidx/itemtree"
	"crateidx/modpath"
	"crateidx/normalize"
)

// ErrUnsupportedEdition is raised when the containing crate declares the
// 2015 edition and the caller has not opted into degraded resolution.
var ErrUnsupportedEdition = errors.New("useresolve: unsupported edition (2015 requires degraded-mode opt-in)")

// Kind tags which item kind a Resolved value carries.
type Kind int

const (
	KindStruct Kind = iota
	KindEnum
	KindConst
	KindTypeAlias
	KindModule
)

// String renders the kind's name, used by presentation layers that key
// output on it (e.g. deduplicating resolved items by kind+path).
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindConst:
		return "const"
	case KindTypeAlias:
		return "type"
	case KindModule:
		return "mod"
	default:
		return "unknown"
	}
}

// Resolved is the discriminated union the resolver returns: exactly one of
// the pointer fields is populated, selected by Kind.
type Resolved struct {
	Kind      Kind
	Struct    *item.Struct
	Enum      *item.Enum
	Const     *item.Const
	TypeAlias *item.TypeAlias
	Module    *item.Module
}

// Trees bundles the five per-kind item trees the resolver searches.
type Trees struct {
	Structs     *itemtree.Tree[item.Struct]
	Enums       *itemtree.Tree[item.Enum]
	Consts      *itemtree.Tree[item.Const]
	TypeAliases *itemtree.Tree[item.TypeAlias]
	Modules     *itemtree.Tree[item.Module]
}

// ExternCrates maps a scope module's Path.Key() to the extern-crate
// declarations in effect within that scope.
type ExternCrates map[string][]item.ExternCrate

// Options configures edition-specific behaviour.
type Options struct {
	// Edition is the containing crate's declared edition string (e.g.
	// "2015", "2018", "2021", "2024", or "" for Cargo's implicit default).
	Edition string
	// Allow2015Degraded opts into a reduced 2015-edition resolution mode
	// instead of failing with ErrUnsupportedEdition.
	Allow2015Degraded bool
}

// Resolve walks the lookup chain in order: absolute-path short-circuit,
// 2015 degraded mode, normalize-then-resolve, and the crate-level
// extern-crate-rename fallback.
func Resolve(up modpath.UsePath, containingModule modpath.Path, opts Options, externCrates ExternCrates, trees Trees) ([]Resolved, error) {
	if len(up.Segments) == 0 {
		return nil, nil
	}

	if up.BeginsWithEmpty() {
		rest := modpath.UsePath{Segments: up.Segments[1:], Vis: up.Vis}
		return resolveAgainst(rest, modpath.Path{}, trees), nil
	}

	if edition.Classify(opts.Edition) == edition.Family2015 {
		if !opts.Allow2015Degraded {
			return nil, ErrUnsupportedEdition
		}
		// Degraded mode: relative markers keep their usual meaning, but a
		// plain leading identifier resolves from the crate root rather than
		// the containing module.
		base, rewritten, err := normalize.Normalize(up, containingModule)
		if err != nil {
			return nil, err
		}
		if up.Segments[0].Kind == modpath.Ident {
			base = containingModule.First()
		}
		return resolveAgainst(rewritten, base, trees), nil
	}

	base, rewritten, err := normalize.Normalize(up, containingModule)
	if err != nil {
		return nil, err
	}
	if res := resolveAgainst(rewritten, base, trees); len(res) > 0 {
		return res, nil
	}

	renamed := up
	if first := up.Segments[0]; first.Kind == modpath.Ident {
		if real, ok := lookupRename(externCrates, containingModule, first.Name); ok {
			if r, err := up.ReplaceFirst(real); err == nil {
				renamed = r
			}
		}
	}
	return resolveAgainst(renamed, modpath.Path{}, trees), nil
}

// lookupRename tries, in order, the single-identifier crate-root scope of
// containingModule and then the full containingModule.
func lookupRename(table ExternCrates, containingModule modpath.Path, alias string) (string, bool) {
	for _, scope := range [2]modpath.Path{containingModule.First(), containingModule} {
		for _, ec := range table[scope.Key()] {
			if ec.Rename == alias {
				return ec.Name, true
			}
		}
	}
	return "", false
}

// resolveAgainst walks up's non-final plain-identifier segments as child
// modules of base, then interprets the last segment against every
// per-kind tree.
func resolveAgainst(up modpath.UsePath, base modpath.Path, trees Trees) []Resolved {
	segs := up.Segments
	if len(segs) == 0 {
		return nil
	}
	module := base
	for _, seg := range segs[:len(segs)-1] {
		if seg.Kind != modpath.Ident {
			return nil
		}
		module = module.Push(seg.Name)
	}

	last := segs[len(segs)-1]
	switch last.Kind {
	case modpath.Ident:
		return lookupName(module, last.Name, trees)
	case modpath.Rename:
		return lookupName(module, last.Name, trees)
	case modpath.Glob:
		return globAll(module, trees)
	default:
		return nil
	}
}

func lookupName(module modpath.Path, name string, trees Trees) []Resolved {
	var out []Resolved
	for _, s := range trees.Structs.Lookup(module, name) {
		s := s
		out = append(out, Resolved{Kind: KindStruct, Struct: &s})
	}
	for _, e := range trees.Enums.Lookup(module, name) {
		e := e
		out = append(out, Resolved{Kind: KindEnum, Enum: &e})
	}
	for _, c := range trees.Consts.Lookup(module, name) {
		c := c
		out = append(out, Resolved{Kind: KindConst, Const: &c})
	}
	for _, t := range trees.TypeAliases.Lookup(module, name) {
		t := t
		out = append(out, Resolved{Kind: KindTypeAlias, TypeAlias: &t})
	}
	for _, m := range trees.Modules.Lookup(module, name) {
		m := m
		out = append(out, Resolved{Kind: KindModule, Module: &m})
	}
	return out
}

func globAll(module modpath.Path, trees Trees) []Resolved {
	var out []Resolved
	for _, s := range trees.Structs.Glob(module) {
		s := s
		out = append(out, Resolved{Kind: KindStruct, Struct: &s})
	}
	for _, e := range trees.Enums.Glob(module) {
		e := e
		out = append(out, Resolved{Kind: KindEnum, Enum: &e})
	}
	for _, c := range trees.Consts.Glob(module) {
		c := c
		out = append(out, Resolved{Kind: KindConst, Const: &c})
	}
	for _, t := range trees.TypeAliases.Glob(module) {
		t := t
		out = append(out, Resolved{Kind: KindTypeAlias, TypeAlias: &t})
	}
	for _, m := range trees.Modules.Glob(module) {
		m := m
		out = append(out, Resolved{Kind: KindModule, Module: &m})
	}
	return out
}
