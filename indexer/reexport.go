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

package indexer

import (
	"crateidx/item"
	"crateidx/itemtree"
	"crateidx/modpath"
	"crateidx/useresolve"
)

// foldReExports implements the one-hop re-export rule: every `use`
// declaration that is itself visible (public, crate-visible, or
// restricted) is resolved against a preliminary set of trees, and each
// resolved struct/enum/const/type-alias is folded back in as a copy bound
// at the declaring module, findable under the re-export's local name
// (aliased or not) while still reporting its own original Name - the
// alias only changes where the item is found, never its identity. A
// single pass over useDecls (not iterated to a fixed point) keeps the
// fold to a single level of direct items: a re-export of a re-export
// does not itself get re-exported further.
func foldReExports(
	structs []item.Struct,
	enums []item.Enum,
	consts []item.Const,
	typeAliases []item.TypeAlias,
	modules []item.Module,
	useDecls []useDecl,
	externCrates useresolve.ExternCrates,
	opts Options,
) ([]item.Struct, []item.Enum, []item.Const, []item.TypeAlias) {
	prelim := useresolve.Trees{
		Structs:     itemtree.Build(structs),
		Enums:       itemtree.Build(enums),
		Consts:      itemtree.Build(consts),
		TypeAliases: itemtree.Build(typeAliases),
		Modules:     itemtree.Build(modules),
	}

	for _, ud := range useDecls {
		if ud.UsePath.Vis.Kind == modpath.Private || len(ud.UsePath.Segments) == 0 {
			continue
		}
		resolved, err := useresolve.Resolve(ud.UsePath, ud.Module, useresolve.Options{
			Edition:           ud.edition,
			Allow2015Degraded: opts.Allow2015Degraded,
		}, externCrates, prelim)
		if err != nil || len(resolved) == 0 {
			continue
		}

		last := ud.UsePath.Segments[len(ud.UsePath.Segments)-1]
		localName := last.Name
		if last.Kind == modpath.Rename {
			localName = last.Alias
		}

		for _, r := range resolved {
			switch r.Kind {
			case useresolve.KindStruct:
				structs = append(structs, r.Struct.Aliased(ud.Module, localName))
			case useresolve.KindEnum:
				enums = append(enums, r.Enum.Aliased(ud.Module, localName))
			case useresolve.KindConst:
				consts = append(consts, r.Const.Aliased(ud.Module, localName))
			case useresolve.KindTypeAlias:
				typeAliases = append(typeAliases, r.TypeAlias.Aliased(ud.Module, localName))
			}
		}
	}

	return structs, enums, consts, typeAliases
}
