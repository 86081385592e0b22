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

// Const is a const declaration extracted from source.
type Const struct {
	Name   string
	Vis    modpath.Visibility
	Module modpath.Path

	// Alias is set only on a copy folded in by a one-hop re-export; see
	// Struct.Alias.
	Alias string
}

func (c Const) ItemName() string { return c.Name }

func (c Const) ItemModule() modpath.Path { return c.Module }

// ItemKey implements itemtree.Keyed; see Struct.ItemKey.
func (c Const) ItemKey() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// Aliased returns a copy of c bound into its declaring use-path's own
// module under alias, leaving c's own Name untouched; see Struct.Aliased.
func (c Const) Aliased(module modpath.Path, alias string) Const {
	c.Module = module
	c.Alias = alias
	return c
}

// ConstsFromItems extracts every const declared directly in module or one
// of its inline sub-modules, keyed by the declaring module's Path.Key().
func ConstsFromItems(items []syntax.Item, module modpath.Path) map[string][]Const {
	out := make(map[string][]Const)
	collectConsts(items, module, out)
	return out
}

func collectConsts(items []syntax.Item, module modpath.Path, out map[string][]Const) {
	for _, it := range items {
		switch it.Kind {
		case syntax.ItemConst:
			out[module.Key()] = append(out[module.Key()], Const{
				Name:   it.Name,
				Vis:    it.Vis,
				Module: module,
			})
		case syntax.ItemModule:
			if it.HasBody {
				collectConsts(it.Body, module.Push(it.Name), out)
			}
		}
	}
}
