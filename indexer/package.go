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

// TargetKind enumerates the build-product kinds a package can expose.
type TargetKind int

const (
	TargetLibrary TargetKind = iota
	TargetBinary
	TargetTest
	TargetBench
	TargetExampleBin
	TargetExampleLib
	TargetCustomBuild
)

// Target is one build product within a package: a crate name, its kind,
// and either a source-root file path or the Metabuild placeholder (no
// file to parse).
type Target struct {
	CrateName      string
	Kind           TargetKind
	SourceRootPath string
	Metabuild      bool
}

// Package is one resolved package record as yielded by PackageProvider.
type Package struct {
	Name         string
	// Edition is the package's declared edition; "" is treated as "2015",
	// Cargo's default when a manifest omits the field.
	Edition      string
	Targets      []Target
	Dependencies []string
}

// PackageProvider is the external collaborator the indexer consumes: the
// finished, pre-resolved dependency closure. Its construction (manifest
// reading, registry/git/path source downloads, feature unification) is
// deliberately left to the caller.
type PackageProvider interface {
	ListPackages() ([]Package, error)
}
