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

// Struct is a struct declaration extracted from source, tagged with its
// containing module and generic type-parameter names.
type Struct struct {
	Name       string
	Vis        modpath.Visibility
	Module     modpath.Path
	TypeParams []string

	// Alias is set only on a copy folded in by a one-hop re-export: it is
	// the local name the re-export binds, which may differ from Name (the
	// struct's own declared name). A folded copy is findable under Alias
	// but still reports Name as its true identity.
	Alias string
}

// ItemName implements itemtree.Named.
func (s Struct) ItemName() string { return s.Name }

// ItemModule implements itemtree.Named.
func (s Struct) ItemModule() modpath.Path { return s.Module }

// ItemKey implements itemtree.Keyed: a re-exported copy is findable under
// its Alias, without the item itself forgetting its own declared Name.
func (s Struct) ItemKey() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// Aliased returns a copy of s bound into its declaring use-path's own
// module under alias, used when folding a one-hop re-export back into the
// tree. s's own Name is left untouched; only Module and Alias change.
func (s Struct) Aliased(module modpath.Path, alias string) Struct {
	s.Module = module
	s.Alias = alias
	return s
}

// StructsFromItems extracts every struct declared directly in module or in
// one of its inline (content-bearing) sub-modules, keyed by the declaring
// module's Path.Key().
func StructsFromItems(items []syntax.Item, module modpath.Path) map[string][]Struct {
	out := make(map[string][]Struct)
	collectStructs(items, module, out)
	return out
}

func collectStructs(items []syntax.Item, module modpath.Path, out map[string][]Struct) {
	for _, it := range items {
		switch it.Kind {
		case syntax.ItemStruct:
			out[module.Key()] = append(out[module.Key()], Struct{
				Name:       it.Name,
				Vis:        it.Vis,
				Module:     module,
				TypeParams: it.TypeParams,
			})
		case syntax.ItemModule:
			if it.HasBody {
				collectStructs(it.Body, module.Push(it.Name), out)
			}
		}
	}
}
