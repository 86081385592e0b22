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

func TestStructsFromItemsDirectAndNested(t *testing.T) {
	items := []syntax.Item{
		{Kind: syntax.ItemStruct, Name: "Top"},
		{
			Kind: syntax.ItemModule, Name: "inner", HasBody: true,
			Body: []syntax.Item{
				{Kind: syntax.ItemStruct, Name: "Nested", TypeParams: []string{"T"}},
			},
		},
		{Kind: syntax.ItemModule, Name: "declOnly", HasBody: false},
	}

	root := modpath.New("crate")
	got := StructsFromItems(items, root)

	if len(got["crate"]) != 1 || got["crate"][0].Name != "Top" {
		t.Errorf("crate = %+v, want [Top]", got["crate"])
	}
	nested := got["crate::inner"]
	if len(nested) != 1 || nested[0].Name != "Nested" || len(nested[0].TypeParams) != 1 {
		t.Errorf("crate::inner = %+v, want [Nested<T>]", nested)
	}
	if !nested[0].Module.Equal(modpath.New("crate", "inner")) {
		t.Errorf("Module = %v, want crate::inner", nested[0].Module)
	}
	if _, ok := got["crate::declOnly"]; ok {
		t.Errorf("declaration-only mod should not be descended into: %+v", got)
	}
}

func TestStructAliased(t *testing.T) {
	s := Struct{Name: "Orig", Module: modpath.New("crate")}
	dest := modpath.New("crate", "m")
	r := s.Aliased(dest, "Alias")
	if r.Name != "Orig" || s.Name != "Orig" {
		t.Errorf("Aliased changed Name: %+v / %+v", s, r)
	}
	if r.ItemKey() != "Alias" || r.ItemModule().Key() != dest.Key() {
		t.Errorf("Aliased = %+v, want ItemKey Alias at %v", r, dest)
	}
	if s.Module.Key() == dest.Key() {
		t.Errorf("Aliased mutated receiver's Module: %+v", s)
	}
}
