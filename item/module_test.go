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

func TestModulesFromItemsRecordsSelfAndInlineChildren(t *testing.T) {
	items := []syntax.Item{
		{
			Kind: syntax.ItemModule, Name: "inline", HasBody: true, Vis: modpath.PublicVisibility,
			Body: []syntax.Item{
				{Kind: syntax.ItemModule, Name: "deeper", HasBody: true,
					Body: []syntax.Item{{Kind: syntax.ItemStruct, Name: "S"}}},
			},
		},
		{Kind: syntax.ItemModule, Name: "declOnly", HasBody: false},
	}

	crate := modpath.New("crate")
	got := ModulesFromItems(items, crate, modpath.PublicVisibility)

	// self-record, keyed under its parent (the empty path).
	selfRecs := got[modpath.Path{}.Key()]
	if len(selfRecs) != 1 || selfRecs[0].Name != "crate" || !selfRecs[0].Path.Equal(crate) {
		t.Fatalf("self record = %+v", selfRecs)
	}

	inlineRecs := got["crate"]
	if len(inlineRecs) != 1 || inlineRecs[0].Name != "inline" {
		t.Fatalf("crate children = %+v, want [inline]", inlineRecs)
	}
	if inlineRecs[0].Vis.Kind != modpath.Public {
		t.Errorf("inline vis = %+v, want Public", inlineRecs[0].Vis)
	}

	deeperRecs := got["crate::inline"]
	if len(deeperRecs) != 1 || deeperRecs[0].Name != "deeper" {
		t.Fatalf("crate::inline children = %+v, want [deeper]", deeperRecs)
	}

	// declOnly mod has no body here; it is not recorded by this call at
	// all since it is discovered and recorded separately once its own
	// file is parsed.
	if _, ok := got["crate::declOnly"]; ok {
		t.Errorf("declOnly should not contribute a record from this call: %+v", got)
	}
}

func TestModuleItemModuleIsParent(t *testing.T) {
	m := Module{Name: "x", Path: modpath.New("a", "x"), Parent: modpath.New("a")}
	if !m.ItemModule().Equal(modpath.New("a")) {
		t.Errorf("ItemModule() = %v, want parent a", m.ItemModule())
	}
}
