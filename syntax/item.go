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

// ItemKind discriminates the item-level declarations the scanner
// recognizes.
type ItemKind int

const (
	ItemStruct ItemKind = iota
	ItemEnum
	ItemConst
	ItemTypeAlias
	ItemModule
	ItemExternCrate
	ItemUse
)

// Item is one top-level (or inline-module-nested) declaration extracted
// from a source file. Not every field is populated for every kind: see
// the per-kind notes below.
type Item struct {
	Kind ItemKind
	Name string
	Vis  modpath.Visibility

	// TypeParams holds generic parameter names, populated for
	// ItemStruct, ItemEnum, and ItemTypeAlias.
	TypeParams []string

	// HasBody and Body apply to ItemModule: HasBody is false for an empty
	// `mod x;` declaration (the discoverer must locate its file), true for
	// an inline `mod x { .. }` whose items are already available in Body.
	HasBody bool
	Body    []Item

	// PathAttr carries the literal string value of a `#[path = "…"]` or
	// `#[cfg_attr(.., path = "…")]` attribute immediately preceding an
	// ItemModule declaration, or "" if none was present.
	PathAttr string

	// Rename applies to ItemExternCrate: the optional `as alias`, or ""
	// if the declaration carries no rename.
	Rename string

	// UseTree applies to ItemUse: the parsed (unflattened) use-tree.
	UseTree UseTree
}
