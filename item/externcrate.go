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

// ExternCrate is an `extern crate real_name as alias;` declaration. It is
// extracted under every edition; the resolver consults the alias when a
// 2018+ use-path misses its direct lookup.
type ExternCrate struct {
	Name   string // the real crate name
	Rename string // the local alias, or "" if none
	Module modpath.Path
	Vis    modpath.Visibility
}

func (e ExternCrate) ItemName() string { return e.Name }

func (e ExternCrate) ItemModule() modpath.Path { return e.Module }

// ExternCratesFromItems extracts every extern crate declaration declared
// directly in module or one of its inline sub-modules, keyed by the
// declaring module's Path.Key().
func ExternCratesFromItems(items []syntax.Item, module modpath.Path) map[string][]ExternCrate {
	out := make(map[string][]ExternCrate)
	collectExternCrates(items, module, out)
	return out
}

func collectExternCrates(items []syntax.Item, module modpath.Path, out map[string][]ExternCrate) {
	for _, it := range items {
		switch it.Kind {
		case syntax.ItemExternCrate:
			out[module.Key()] = append(out[module.Key()], ExternCrate{
				Name:   it.Name,
				Rename: it.Rename,
				Module: module,
				Vis:    it.Vis,
			})
		case syntax.ItemModule:
			if it.HasBody {
				collectExternCrates(it.Body, module.Push(it.Name), out)
			}
		}
	}
}
