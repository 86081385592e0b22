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

// TypeAlias is a `type X = ...;` declaration extracted from source.
type TypeAlias struct {
	Name       string
	Vis        modpath.Visibility
	Module     modpath.Path
	TypeParams []string

	// Alias is set only on a copy folded in by a one-hop re-export; see
	// Struct.Alias.
	Alias string
}

func (t TypeAlias) ItemName() string { return t.Name }

func (t TypeAlias) ItemModule() modpath.Path { return t.Module }

// ItemKey implements itemtree.Keyed; see Struct.ItemKey.
func (t TypeAlias) ItemKey() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// Aliased returns a copy of t bound into its declaring use-path's own
// module under alias, leaving t's own Name untouched; see Struct.Aliased.
func (t TypeAlias) Aliased(module modpath.Path, alias string) TypeAlias {
	t.Module = module
	t.Alias = alias
	return t
}

// TypeAliasesFromItems extracts every type alias declared directly in
// module or one of its inline sub-modules, keyed by the declaring module's
// Path.Key().
func TypeAliasesFromItems(items []syntax.Item, module modpath.Path) map[string][]TypeAlias {
	out := make(map[string][]TypeAlias)
	collectTypeAliases(items, module, out)
	return out
}

func collectTypeAliases(items []syntax.Item, module modpath.Path, out map[string][]TypeAlias) {
	for _, it := range items {
		switch it.Kind {
		case syntax.ItemTypeAlias:
			out[module.Key()] = append(out[module.Key()], TypeAlias{
				Name:       it.Name,
				Vis:        it.Vis,
				Module:     module,
				TypeParams: it.TypeParams,
			})
		case syntax.ItemModule:
			if it.HasBody {
				collectTypeAliases(it.Body, module.Push(it.Name), out)
			}
		}
	}
}
