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
	"testing"

	"crateidx/modpath"
	"crateidx/syntax"
)

func TestUseDeclsFromItemsFlattensGroupsAndDescends(t *testing.T) {
	items := []syntax.Item{
		{
			Kind: syntax.ItemUse,
			Vis:  modpath.Inherited,
			UseTree: syntax.UseTree{
				Prefix: []string{"a"},
				Leaf: syntax.UseLeaf{
					Kind: syntax.LeafGroup,
					Group: []syntax.UseTree{
						{Leaf: syntax.UseLeaf{Kind: syntax.LeafName, Name: "b"}},
						{Prefix: []string{"c"}, Leaf: syntax.UseLeaf{Kind: syntax.LeafName, Name: "d"}},
					},
				},
			},
		},
		{
			Kind: syntax.ItemModule, Name: "inner", HasBody: true,
			Body: []syntax.Item{
				{
					Kind: syntax.ItemUse,
					UseTree: syntax.UseTree{
						Leaf: syntax.UseLeaf{Kind: syntax.LeafGlob},
					},
				},
			},
		},
	}

	got := UseDeclsFromItems(items, modpath.New("crate"))
	if len(got) != 3 {
		t.Fatalf("got %d use decls, want 3: %+v", len(got), got)
	}

	top := got[:2]
	for _, d := range top {
		if !d.Module.Equal(modpath.New("crate")) {
			t.Errorf("top-level use decl module = %v, want crate", d.Module)
		}
	}
	if top[0].UsePath.String() != "a::b" {
		t.Errorf("first flattened path = %q, want a::b", top[0].UsePath.String())
	}
	if top[1].UsePath.String() != "a::c::d" {
		t.Errorf("second flattened path = %q, want a::c::d", top[1].UsePath.String())
	}

	nested := got[2]
	if !nested.Module.Equal(modpath.New("crate", "inner")) {
		t.Errorf("nested use decl module = %v, want crate::inner", nested.Module)
	}
}
