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

// Package stdlib adapts a standard-library source checkout into an
// indexer.PackageProvider. Rather than a hand-maintained table of
// component names (the approach original_source/src/stdlib.rs took when
// it also owned cloning the checkout via git2), this discovers each
// top-level component directory under the checkout's library root
// (core, alloc, std, ...) and treats it as its own crate, seeded at its
// own src/lib.rs per the library/<name>/src/lib.rs convention the
// checkout uses for every component.
package stdlib

import (
	"fmt"
	"path"
	"sort"

	"crateidx/fs"
	"crateidx/indexer"
)

// Provider adapts a standard-library checkout rooted at LibraryRoot (the
// checkout's "library" directory, parent of core/, alloc/, std/, ...)
// into an indexer.PackageProvider. Edition applies uniformly to every
// discovered component, since the standard library's edition is fixed
// per-toolchain rather than per-component.
type Provider struct {
	FS          fs.FileSystem
	LibraryRoot string
	Edition     string
}

// ListPackages implements indexer.PackageProvider by discovering every
// component directory under LibraryRoot that carries a src/lib.rs.
func (p Provider) ListPackages() ([]indexer.Package, error) {
	entries, err := p.FS.ReadDir(p.LibraryRoot)
	if err != nil {
		return nil, fmt.Errorf("stdlib: reading library root %s: %w", p.LibraryRoot, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	packages := make([]indexer.Package, 0, len(names))
	for _, name := range names {
		libFile := path.Join(p.LibraryRoot, name, "src", "lib.rs")
		if !p.FS.Exists(libFile) {
			continue
		}
		packages = append(packages, indexer.Package{
			Name:    name,
			Edition: p.Edition,
			Targets: []indexer.Target{{
				CrateName:      name,
				Kind:           indexer.TargetLibrary,
				SourceRootPath: libFile,
			}},
		})
	}
	return packages, nil
}
