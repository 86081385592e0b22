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

package discover

import (
	"errors"
	"testing"

	"crateidx/diag"
	"crateidx/internal/mapfs"
	"crateidx/modpath"
)

func TestDiscoverDirectAndModConventions(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/lib.rs", `
mod direct;
mod nested;
`, 0o644)
	mfs.AddFile("src/direct.rs", `pub struct Direct;`, 0o644)
	mfs.AddFile("src/nested/mod.rs", `
pub struct Nested;
mod inner;
`, 0o644)
	mfs.AddFile("src/nested/inner.rs", `pub struct Inner;`, 0o644)

	seed := Module{FilePath: "src/lib.rs", ModulePath: modpath.New("e"), Category: Root, Vis: modpath.PublicVisibility}
	files, err := Discover(mfs, seed, diag.NopLogger{}, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("want 4 module files, got %d: %+v", len(files), files)
	}

	want := map[string]string{
		"e":                "src/lib.rs",
		"e::direct":        "src/direct.rs",
		"e::nested":        "src/nested/mod.rs",
		"e::nested::inner": "src/nested/inner.rs",
	}
	for _, mf := range files {
		if got, ok := want[mf.ModulePath.Key()]; !ok || got != mf.FilePath {
			t.Errorf("unexpected module file %s -> %s", mf.ModulePath.Key(), mf.FilePath)
		}
	}
}

func TestDiscoverPathAttribute(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/lib.rs", `#[path = "alt/thing.rs"] mod thing;`, 0o644)
	mfs.AddFile("src/alt/thing.rs", `pub struct Thing;`, 0o644)

	seed := Module{FilePath: "src/lib.rs", ModulePath: modpath.New("e"), Category: Root, Vis: modpath.PublicVisibility}
	files, err := Discover(mfs, seed, diag.NopLogger{}, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 module files, got %d: %+v", len(files), files)
	}
	if files[1].FilePath != "src/alt/thing.rs" || files[1].ModulePath.Key() != "e::thing" {
		t.Errorf("got %+v, want src/alt/thing.rs at e::thing", files[1])
	}
}

func TestDiscoverMissingSubmoduleAborts(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/lib.rs", `mod ghost;`, 0o644)

	seed := Module{FilePath: "src/lib.rs", ModulePath: modpath.New("f"), Category: Root, Vis: modpath.PublicVisibility}
	_, err := Discover(mfs, seed, diag.NopLogger{}, nil)
	if !errors.Is(err, ErrMissingSubmodule) {
		t.Fatalf("got err %v, want ErrMissingSubmodule", err)
	}
}

func TestDiscoverParseFailureIsolatesFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/lib.rs", `
mod broken;
mod good;
`, 0o644)
	mfs.AddFile("src/broken.rs", `mod unterminated {`, 0o644)
	mfs.AddFile("src/good.rs", `pub struct K;`, 0o644)

	seed := Module{FilePath: "src/lib.rs", ModulePath: modpath.New("f"), Category: Root, Vis: modpath.PublicVisibility}
	files, err := Discover(mfs, seed, diag.NopLogger{}, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	for _, mf := range files {
		if mf.ModulePath.Key() == "f::broken" && len(mf.Items) != 0 {
			t.Errorf("broken.rs contributed items: %+v", mf.Items)
		}
		if mf.ModulePath.Key() == "f::good" && len(mf.Items) != 1 {
			t.Errorf("good.rs did not contribute its struct: %+v", mf.Items)
		}
	}
}

func TestDiscoverExcludesMatchingGlobs(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/lib.rs", `mod vendored;`, 0o644)
	mfs.AddFile("src/vendored.rs", `pub struct V;`, 0o644)

	seed := Module{FilePath: "src/lib.rs", ModulePath: modpath.New("g"), Category: Root, Vis: modpath.PublicVisibility}
	_, err := Discover(mfs, seed, diag.NopLogger{}, []string{"src/vendored.rs"})
	if !errors.Is(err, ErrMissingSubmodule) {
		t.Fatalf("got err %v, want ErrMissingSubmodule for excluded candidate", err)
	}
}

func TestDiscoverSkipsRawIdentifierSubmodule(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/lib.rs", `mod r#try;`, 0o644)

	seed := Module{FilePath: "src/lib.rs", ModulePath: modpath.New("h"), Category: Root, Vis: modpath.PublicVisibility}
	files, err := Discover(mfs, seed, diag.NopLogger{}, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("want only the root file, got %d: %+v", len(files), files)
	}
}
