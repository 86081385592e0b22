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

func TestConstsFromItemsDirectAndNested(t *testing.T) {
	items := []syntax.Item{
		{Kind: syntax.ItemConst, Name: "TOP"},
		{
			Kind: syntax.ItemModule, Name: "inner", HasBody: true,
			Body: []syntax.Item{{Kind: syntax.ItemConst, Name: "NESTED"}},
		},
	}

	got := ConstsFromItems(items, modpath.New("crate"))
	if len(got["crate"]) != 1 || got["crate"][0].Name != "TOP" {
		t.Errorf("crate = %+v, want [TOP]", got["crate"])
	}
	if len(got["crate::inner"]) != 1 || got["crate::inner"][0].Name != "NESTED" {
		t.Errorf("crate::inner = %+v, want [NESTED]", got["crate::inner"])
	}
}
