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

// Enum is an enum declaration extracted from source.
type Enum struct {
	Name       string
	Vis        modpath.Visibility
	Module     modpath.Path
	TypeParams []string

	// Alias is set only on a copy folded in by a one-hop re-export; see
	// Struct.Alias.
	Alias string
}

func (e Enum) ItemName() string { return e.Name }

func (e Enum) ItemModule() modpath.Path { return e.Module }

// ItemKey implements itemtree.Keyed; see Struct.ItemKey.
func (e Enum) ItemKey() string {
	if e.Alias != "" {
		return e.Alias
	}
	return e.Name
}

// Aliased returns a copy of e bound into its declaring use-path's own
// module under alias, leaving e's own Name untouched; see Struct.Aliased.
func (e Enum) Aliased(module modpath.Path, alias string) Enum {
	e.Module = module
	e.Alias = alias
	return e
}

// EnumsFromItems extracts every enum declared directly in module or one of
// its inline sub-modules, keyed by the declaring module's Path.Key().
func EnumsFromItems(items []syntax.Item, module modpath.Path) map[string][]Enum {
	out := make(map[string][]Enum)
	collectEnums(items, module, out)
	return out
}

func collectEnums(items []syntax.Item, module modpath.Path, out map[string][]Enum) {
	for _, it := range items {
		switch it.Kind {
		case syntax.ItemEnum:
			out[module.Key()] = append(out[module.Key()], Enum{
				Name:       it.Name,
				Vis:        it.Vis,
				Module:     module,
				TypeParams: it.TypeParams,
			})
		case syntax.ItemModule:
			if it.HasBody {
				collectEnums(it.Body, module.Push(it.Name), out)
			}
		}
	}
}
