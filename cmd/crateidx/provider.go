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

// Package crateidx holds the flag-to-collaborator wiring shared by the
// index, resolve, and tree subcommands: building a PackageProvider from
// the root/edition/stdlib flags is common to all three, so it lives here
// rather than being copy-pasted into each command package.
package crateidx

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"crateidx/cratedep"
	"crateidx/diag"
	"crateidx/fs"
	"crateidx/indexer"
	"crateidx/stdlib"
)

// localProvider treats a single directory as one crate, inferring its name
// from the directory's base name. Manifest reading (Cargo.toml) is left to
// the caller; real dependency closures come from a real PackageProvider
// collaborator. This is the minimal provider the CLI needs to index a
// single crate tree directly off disk.
type localProvider struct {
	fsys    fs.FileSystem
	root    string
	edition string
}

func (p localProvider) ListPackages() ([]indexer.Package, error) {
	name := filepath.Base(p.root)
	for _, candidate := range []string{"src/lib.rs", "src/main.rs"} {
		full := filepath.Join(p.root, candidate)
		if p.fsys.Exists(full) {
			kind := indexer.TargetLibrary
			if candidate == "src/main.rs" {
				kind = indexer.TargetBinary
			}
			return []indexer.Package{{
				Name:    name,
				Edition: p.edition,
				Targets: []indexer.Target{{CrateName: name, Kind: kind, SourceRootPath: full}},
			}}, nil
		}
	}
	return nil, fmt.Errorf("crateidx: no src/lib.rs or src/main.rs found under %s", p.root)
}

// multiProvider concatenates the package lists of several providers, used
// to combine the local crate with an optional standard-library checkout.
type multiProvider []indexer.PackageProvider

func (m multiProvider) ListPackages() ([]indexer.Package, error) {
	var out []indexer.Package
	for _, p := range m {
		pkgs, err := p.ListPackages()
		if err != nil {
			return nil, err
		}
		out = append(out, pkgs...)
	}
	return out, nil
}

// BuildProvider assembles the PackageProvider for the current run from the
// --root, --edition, and --stdlib persistent flags.
func BuildProvider(osfs fs.FileSystem) (indexer.PackageProvider, error) {
	root, err := filepath.Abs(viper.GetString("root"))
	if err != nil {
		return nil, fmt.Errorf("invalid root directory: %w", err)
	}
	edition := viper.GetString("edition")

	providers := multiProvider{localProvider{fsys: osfs, root: root, edition: edition}}
	if stdlibRoot := viper.GetString("stdlib"); stdlibRoot != "" {
		providers = append(providers, stdlib.Provider{FS: osfs, LibraryRoot: stdlibRoot, Edition: edition})
	}
	return providers, nil
}

// RunIndex builds the provider and runs a complete indexing pass using the
// --exclude, --main-crate, and --allow-2015-degraded flags.
func RunIndex(ctx context.Context, osfs fs.FileSystem, logger diag.Logger) (*indexer.Index, error) {
	provider, err := BuildProvider(osfs)
	if err != nil {
		return nil, err
	}
	return indexer.Index(ctx, osfs, provider, indexer.Options{
		MainCrate:         viper.GetString("main-crate"),
		Exclude:           viper.GetStringSlice("exclude"),
		Allow2015Degraded: viper.GetBool("allow-2015-degraded"),
		Logger:            logger,
	})
}

// BuildDependencyGraph records every package's edition and source root in a
// cratedep.Graph for cmd/crateidx tree to walk. Dependency edges come only
// from whatever the PackageProvider reports in Package.Dependencies — the
// graph itself never computes reachability.
func BuildDependencyGraph(provider indexer.PackageProvider) (*cratedep.Graph, error) {
	packages, err := provider.ListPackages()
	if err != nil {
		return nil, err
	}
	g := cratedep.New()
	for _, pkg := range packages {
		g.SetEdition(pkg.Name, pkg.Edition)
		for _, t := range pkg.Targets {
			if t.Kind == indexer.TargetLibrary {
				g.SetSourceRoot(pkg.Name, t.SourceRootPath)
			}
		}
		for _, dep := range pkg.Dependencies {
			g.AddDependency(pkg.Name, dep)
		}
	}
	return g, nil
}
