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

// Package itemtree provides a per-kind, radix-backed index over module
// paths: one Tree[T] per item kind (structs, enums, consts, type
// aliases, modules), each mapping a module path to the items of that kind
// declared directly within it. Built once per indexing run and never
// mutated afterward.
package itemtree

import (
	"sort"

	"github.com/armon/go-radix"

	"crateidx/modpath"
)

// Named is the capability every item kind stored in a Tree must provide:
// its own bound name and the fully-qualified path of the module it is
// declared directly in.
type Named interface {
	ItemName() string
	ItemModule() modpath.Path
}

// Keyed is an optional capability: an item that is findable under a name
// other than its own reported ItemName (a one-hop re-export folded in
// under its alias, say) implements ItemKey to say so. Build indexes by
// ItemKey when present, falling back to ItemName otherwise, so a looked-up
// item still reports its own true name rather than the alias it was found
// under.
type Keyed interface {
	ItemKey() string
}

func treeKey[T Named](it T) string {
	if k, ok := any(it).(Keyed); ok {
		return k.ItemKey()
	}
	return it.ItemName()
}

// Tree is an immutable, per-kind trie over module paths built from a flat
// slice of items. Lookup and Glob both key directly off the *joined*
// module path string via the underlying radix tree, so resolving a
// multi-segment use-path prefix is a single Get rather than a
// segment-by-segment descent: a module with no items of this kind and a
// module that was never discovered at all collapse to the same "nothing
// here" result, which is all resolution ever distinguishes.
type Tree[T Named] struct {
	r *radix.Tree
}

// Build constructs a Tree from every item of one kind across the indexed
// dependency closure. Insertion order does not affect the result.
func Build[T Named](items []T) *Tree[T] {
	byModule := make(map[string]map[string][]T)
	for _, it := range items {
		key := it.ItemModule().Key()
		m, ok := byModule[key]
		if !ok {
			m = make(map[string][]T)
			byModule[key] = m
		}
		m[treeKey(it)] = append(m[treeKey(it)], it)
	}
	r := radix.New()
	for key, m := range byModule {
		r.Insert(key, m)
	}
	return &Tree[T]{r: r}
}

// Lookup returns the items named name declared directly in module. Returns
// nil if module has no items of this kind, or was never discovered.
func (t *Tree[T]) Lookup(module modpath.Path, name string) []T {
	v, ok := t.r.Get(module.Key())
	if !ok {
		return nil
	}
	return v.(map[string][]T)[name]
}

// Glob returns every item of this kind declared directly in module, sorted
// by name for deterministic output. No deeper descent: a glob returns
// exactly the items directly declared in the module, nothing nested.
func (t *Tree[T]) Glob(module modpath.Path) []T {
	v, ok := t.r.Get(module.Key())
	if !ok {
		return nil
	}
	m := v.(map[string][]T)
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]T, 0, len(m))
	for _, name := range names {
		out = append(out, m[name]...)
	}
	return out
}
