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

package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"crateidx/modpath"
)

func TestParseStructsAndEnums(t *testing.T) {
	src := `
pub struct Point<T> { x: T, y: T }
struct Private;
pub(crate) enum Shape<T, U> { Circle(T), Square(U) }
`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	want := []Item{
		{Kind: ItemStruct, Name: "Point", Vis: modpath.PublicVisibility, TypeParams: []string{"T"}},
		{Kind: ItemStruct, Name: "Private", Vis: modpath.Inherited},
		{Kind: ItemEnum, Name: "Shape", Vis: modpath.CrateVisibility, TypeParams: []string{"T", "U"}},
	}
	if diff := cmp.Diff(want, items, cmpopts.IgnoreFields(Item{}, "Body", "UseTree")); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConstAndTypeAlias(t *testing.T) {
	src := `
pub const MAX: usize = 10;
type Alias<T> = Vec<T>;
`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	want := []Item{
		{Kind: ItemConst, Name: "MAX", Vis: modpath.PublicVisibility},
		{Kind: ItemTypeAlias, Name: "Alias", Vis: modpath.Inherited, TypeParams: []string{"T"}},
	}
	if diff := cmp.Diff(want, items, cmpopts.IgnoreFields(Item{}, "Body", "UseTree")); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParseModDeclarationAndInlineBody(t *testing.T) {
	src := `
mod empty;
pub mod inline {
    pub struct S;
}
`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	if items[0].Kind != ItemModule || items[0].Name != "empty" || items[0].HasBody {
		t.Errorf("items[0] = %+v, want empty mod declaration with HasBody=false", items[0])
	}
	if items[1].Kind != ItemModule || items[1].Name != "inline" || !items[1].HasBody {
		t.Errorf("items[1] = %+v, want inline mod with HasBody=true", items[1])
	}
	if len(items[1].Body) != 1 || items[1].Body[0].Name != "S" {
		t.Errorf("items[1].Body = %+v, want single struct S", items[1].Body)
	}
}

func TestParseExternCrate(t *testing.T) {
	src := `extern crate core as kore;`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	want := []Item{
		{Kind: ItemExternCrate, Name: "core", Rename: "kore", Vis: modpath.Inherited},
	}
	if diff := cmp.Diff(want, items, cmpopts.IgnoreFields(Item{}, "Body", "UseTree")); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUseTrees(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []modpath.UsePath
	}{
		{
			name: "absolute simple",
			src:  `use ::foo::Bar;`,
			want: []modpath.UsePath{
				modpath.NewUsePath(modpath.Inherited,
					modpath.Segment{Kind: modpath.Empty},
					modpath.NameSegment("foo"),
					modpath.NameSegment("Bar")),
			},
		},
		{
			name: "self and super",
			src:  `use self::A; use super::B;`,
			want: nil, // checked separately below (two statements)
		},
		{
			name: "rename",
			src:  `pub use foo::Bar as Baz;`,
			want: []modpath.UsePath{
				modpath.NewUsePath(modpath.PublicVisibility,
					modpath.NameSegment("foo"),
					modpath.RenameSegment("Bar", "Baz")),
			},
		},
		{
			name: "glob",
			src:  `use util::*;`,
			want: []modpath.UsePath{
				modpath.NewUsePath(modpath.Inherited,
					modpath.NameSegment("util"),
					modpath.Segment{Kind: modpath.Glob}),
			},
		},
		{
			name: "group",
			src:  `use a::{b, c::d};`,
			want: []modpath.UsePath{
				modpath.NewUsePath(modpath.Inherited, modpath.NameSegment("a"), modpath.NameSegment("b")),
				modpath.NewUsePath(modpath.Inherited, modpath.NameSegment("a"), modpath.NameSegment("c"), modpath.NameSegment("d")),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, ok := Parse([]byte(tc.src))
			if !ok {
				t.Fatalf("Parse failed unexpectedly")
			}
			var got []modpath.UsePath
			for _, it := range items {
				if it.Kind != ItemUse {
					t.Fatalf("unexpected non-use item %+v", it)
				}
				got = append(got, it.UseTree.Flatten(it.Vis)...)
			}
			if tc.want == nil {
				if len(got) != 2 {
					t.Fatalf("want 2 use-paths, got %d: %+v", len(got), got)
				}
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("use-paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePathAttribute(t *testing.T) {
	src := `#[path = "alt/thing.rs"] mod thing;`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	if len(items) != 1 || items[0].PathAttr != "alt/thing.rs" {
		t.Fatalf("items = %+v, want single mod with PathAttr alt/thing.rs", items)
	}
}

func TestParseCfgAttrPathAttribute(t *testing.T) {
	src := `#[cfg_attr(unix, path = "unix/thing.rs")] mod thing;`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	if len(items) != 1 || items[0].PathAttr != "unix/thing.rs" {
		t.Fatalf("items = %+v, want single mod with PathAttr unix/thing.rs", items)
	}
}

func TestParseSkipsUnrecognizedItems(t *testing.T) {
	src := `
fn helper() { let x = { 1 }; }
impl Foo for Bar { fn baz(&self) {} }
pub struct Real;
static COUNTER: u32 = 0;
macro_rules! mymacro { () => {}; }
`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	if len(items) != 1 || items[0].Name != "Real" {
		t.Fatalf("items = %+v, want only the Real struct", items)
	}
}

func TestParseVisibilityForms(t *testing.T) {
	src := `
pub struct A;
pub(crate) struct B;
pub(self) struct C;
pub(super) struct D;
pub(in crate::foo::bar) struct E;
struct F;
`
	items, ok := Parse([]byte(src))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	if len(items) != 6 {
		t.Fatalf("want 6 items, got %d", len(items))
	}
	if !cmp.Equal(items[0].Vis, modpath.PublicVisibility) {
		t.Errorf("A: got %+v, want Public", items[0].Vis)
	}
	if !cmp.Equal(items[1].Vis, modpath.CrateVisibility) {
		t.Errorf("B: got %+v, want CrateVisible", items[1].Vis)
	}
	if items[2].Vis.Kind != modpath.RestrictedTo || items[2].Vis.Path.String() != "self" {
		t.Errorf("C: got %+v, want RestrictedTo(self)", items[2].Vis)
	}
	if items[3].Vis.Kind != modpath.RestrictedTo || items[3].Vis.Path.String() != "super" {
		t.Errorf("D: got %+v, want RestrictedTo(super)", items[3].Vis)
	}
	if items[4].Vis.Kind != modpath.RestrictedTo || items[4].Vis.Path.String() != "crate::foo::bar" {
		t.Errorf("E: got %+v, want RestrictedTo(crate::foo::bar)", items[4].Vis)
	}
	if !cmp.Equal(items[5].Vis, modpath.Inherited) {
		t.Errorf("F: got %+v, want Inherited", items[5].Vis)
	}
}

func TestParseFailureUnterminatedBrace(t *testing.T) {
	src := `mod broken { pub struct K;`
	_, ok := Parse([]byte(src))
	if ok {
		t.Fatalf("Parse succeeded on truncated input, want failure")
	}
}

func TestParseFailureUnterminatedAttribute(t *testing.T) {
	src := `#[path = "x.rs" mod thing;`
	_, ok := Parse([]byte(src))
	if ok {
		t.Fatalf("Parse succeeded on unterminated attribute, want failure")
	}
}

func TestParseEmptyFileSucceeds(t *testing.T) {
	items, ok := Parse([]byte(""))
	if !ok {
		t.Fatalf("Parse failed on empty file")
	}
	if len(items) != 0 {
		t.Errorf("want 0 items, got %d", len(items))
	}
}

func TestParseToleratesStrayTopLevelSemicolon(t *testing.T) {
	items, ok := Parse([]byte(`; pub struct Real;`))
	if !ok {
		t.Fatalf("Parse failed unexpectedly")
	}
	if len(items) != 1 || items[0].Name != "Real" {
		t.Fatalf("items = %+v, want only Real", items)
	}
}
