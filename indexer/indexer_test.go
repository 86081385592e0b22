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

package indexer

import (
	"context"
	"errors"
	"testing"

	"crateidx/internal/mapfs"
	"crateidx/modpath"
	"crateidx/useresolve"
)

type fakeProvider struct {
	packages []Package
}

func (f fakeProvider) ListPackages() ([]Package, error) { return f.packages, nil }

func TestIndexEndToEndRelativeSuperExternGlob(t *testing.T) {
	mfs := mapfs.New()

	// crate "app": exercises self/crate-relative re-export resolution,
	// super traversal, extern-crate rename, and glob import in one pass.
	mfs.AddFile("app/src/lib.rs", `
mod m;
mod x;
mod util;
extern crate core as kore;
use kore::fmt::Marker;
use util::*;
`, 0o644)
	mfs.AddFile("app/src/m.rs", `
pub struct S;
pub use self::S as T;
`, 0o644)
	mfs.AddFile("app/src/x.rs", `
pub struct Z;
mod y;
`, 0o644)
	mfs.AddFile("app/src/x/y.rs", `
use super::Z;
`, 0o644)
	mfs.AddFile("app/src/util.rs", `
pub struct A;
pub struct B;
pub const C: i32 = 1;
`, 0o644)

	// crate "core": the dependency app's extern-crate alias resolves to.
	mfs.AddFile("core/src/lib.rs", `
mod fmt;
`, 0o644)
	mfs.AddFile("core/src/fmt.rs", `
pub type Marker = i32;
`, 0o644)

	provider := fakeProvider{packages: []Package{
		{Name: "app", Edition: "2021", Targets: []Target{
			{CrateName: "app", Kind: TargetLibrary, SourceRootPath: "app/src/lib.rs"},
		}},
		{Name: "core", Edition: "2021", Targets: []Target{
			{CrateName: "core", Kind: TargetLibrary, SourceRootPath: "core/src/lib.rs"},
		}},
	}}

	idx, err := Index(context.Background(), mfs, provider, Options{MainCrate: "app"})
	if err != nil {
		t.Fatalf("Index: %v", err)
	}

	if len(idx.Results) != 4 {
		t.Fatalf("want 4 resolved use-decls, got %d: %+v", len(idx.Results), idx.Results)
	}

	byPath := make(map[string][]UseResult)
	for _, r := range idx.Results {
		byPath[r.Module.Key()+" "+r.UsePath.String()] = append(byPath[r.Module.Key()+" "+r.UsePath.String()], r)
	}

	for key, results := range byPath {
		for _, r := range results {
			if len(r.Resolved) == 0 {
				t.Errorf("use-decl %q resolved to nothing: %+v", key, r)
			}
		}
	}

	// crate::m::T is the re-export alias folded in by foldReExports; it
	// must resolve to a struct findable under T, still reporting its own
	// name S (the alias resolves the original).
	got := idx.Structs.Lookup(modpath.New("app", "m"), "T")
	if len(got) != 1 || got[0].Name != "S" {
		t.Errorf("expected re-export alias T to be indexed under app::m and report Name S, got %+v", got)
	}
}

// Cargo's own default edition when a manifest omits the field is "2015"
// (edition.Classify("") == edition.Family2015), and Package.Edition zero-
// values to "" exactly like that default. UnsupportedEdition is fatal
// unless the caller opts into degraded resolution: Index() must surface
// it as an error, not swallow it into an empty Resolved slice.
func TestIndexDefaultEditionUnsupportedFailsTheRun(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("app/src/lib.rs", `pub struct S; use self::S;`, 0o644)

	provider := fakeProvider{packages: []Package{
		{Name: "app", Targets: []Target{
			{CrateName: "app", Kind: TargetLibrary, SourceRootPath: "app/src/lib.rs"},
		}},
	}}

	_, err := Index(context.Background(), mfs, provider, Options{MainCrate: "app"})
	if !errors.Is(err, useresolve.ErrUnsupportedEdition) {
		t.Fatalf("Index() error = %v, want ErrUnsupportedEdition", err)
	}
}

// The same crate succeeds once the caller opts into degraded 2015
// resolution via Options.Allow2015Degraded.
func TestIndexAllow2015DegradedSucceeds(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("app/src/lib.rs", `pub struct S; use self::S;`, 0o644)

	provider := fakeProvider{packages: []Package{
		{Name: "app", Targets: []Target{
			{CrateName: "app", Kind: TargetLibrary, SourceRootPath: "app/src/lib.rs"},
		}},
	}}

	idx, err := Index(context.Background(), mfs, provider, Options{MainCrate: "app", Allow2015Degraded: true})
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(idx.Results) != 1 || len(idx.Results[0].Resolved) == 0 {
		t.Fatalf("want one resolved use-decl, got %+v", idx.Results)
	}
}

// Two runs over the same snapshot produce the same (module, use-path,
// resolved) tuples as sets; phase-1 scheduling order must not leak into
// the output.
func TestIndexIdempotent(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("app/src/lib.rs", `
mod util;
use util::*;
`, 0o644)
	mfs.AddFile("app/src/util.rs", `
pub struct A;
pub struct B;
pub const C: i32 = 1;
`, 0o644)

	provider := fakeProvider{packages: []Package{
		{Name: "app", Edition: "2021", Targets: []Target{
			{CrateName: "app", Kind: TargetLibrary, SourceRootPath: "app/src/lib.rs"},
		}},
	}}

	tuples := func() map[string]int {
		idx, err := Index(context.Background(), mfs, provider, Options{MainCrate: "app"})
		if err != nil {
			t.Fatalf("Index: %v", err)
		}
		out := make(map[string]int)
		for _, r := range idx.Results {
			out[r.Module.Key()+" "+r.UsePath.String()] = len(r.Resolved)
		}
		return out
	}

	first, second := tuples(), tuples()
	if len(first) != len(second) {
		t.Fatalf("runs disagree on tuple count: %v vs %v", first, second)
	}
	for k, n := range first {
		if second[k] != n {
			t.Errorf("tuple %q resolved to %d items on run 1 but %d on run 2", k, n, second[k])
		}
	}
}
