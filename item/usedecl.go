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

package item

import (
	"crateidx/modpath"
	"crateidx/syntax"
)

// UseDecl is one flattened `use` declaration path paired with the module
// it must be resolved relative to.
type UseDecl struct {
	Module  modpath.Path
	UsePath modpath.UsePath
}

// UseDeclsFromItems flattens every `use` declaration reachable from items,
// descending into inline sub-modules same as the other extractors.
func UseDeclsFromItems(items []syntax.Item, module modpath.Path) []UseDecl {
	var out []UseDecl
	collectUseDecls(items, module, &out)
	return out
}

func collectUseDecls(items []syntax.Item, module modpath.Path, out *[]UseDecl) {
	for _, it := range items {
		switch it.Kind {
		case syntax.ItemUse:
			for _, up := range it.UseTree.Flatten(it.Vis) {
				*out = append(*out, UseDecl{Module: module, UsePath: up})
			}
		case syntax.ItemModule:
			if it.HasBody {
				collectUseDecls(it.Body, module.Push(it.Name), out)
			}
		}
	}
}
