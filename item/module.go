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

// Module is a module declaration extracted from source. Following the
// original's modules_from_items convention, a module is recorded against
// its *parent's* path, not its own — so the crate root itself is recorded
// once, against the empty path, as its own entry point into the module
// tree.
type Module struct {
	Name   string
	Vis    modpath.Visibility
	Path   modpath.Path // this module's own fully-qualified path
	Parent modpath.Path // the path it is recorded against
}

func (m Module) ItemName() string { return m.Name }

func (m Module) ItemModule() modpath.Path { return m.Parent }

// ModulesFromItems extracts every module reachable from items, plus a
// record for module itself (the crate-root or currently-descended module),
// keyed by the recording module's Path.Key(). module's own record carries
// whatever visibility the caller passed in rootVis (the crate root has no
// declaration of its own to read a visibility off of).
func ModulesFromItems(items []syntax.Item, module modpath.Path, rootVis modpath.Visibility) map[string][]Module {
	out := make(map[string][]Module)
	self := Module{
		Name:   module.Last(),
		Vis:    rootVis,
		Path:   module,
		Parent: module.Parent(),
	}
	out[self.Parent.Key()] = append(out[self.Parent.Key()], self)
	collectModules(items, module, out)
	return out
}

func collectModules(items []syntax.Item, module modpath.Path, out map[string][]Module) {
	for _, it := range items {
		if it.Kind != syntax.ItemModule || !it.HasBody {
			continue
		}
		child := module.Push(it.Name)
		out[module.Key()] = append(out[module.Key()], Module{
			Name:   it.Name,
			Vis:    it.Vis,
			Path:   child,
			Parent: module,
		})
		collectModules(it.Body, child, out)
	}
}
