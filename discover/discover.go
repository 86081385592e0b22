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

// Package discover walks a crate's file-backed module tree from its
// source-root entry file, following the naming convention
// (foo.rs / foo/mod.rs) and explicit path / cfg_attr(..., path=..)
// overrides.
package discover

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"crateidx/diag"
	"crateidx/fs"
	"crateidx/modpath"
	"crateidx/syntax"
)

// Category discriminates how a module's file was located, which in turn
// decides where its own children are searched for.
type Category int

const (
	// Root is the crate's library or binary entry file.
	Root Category = iota
	// Mod is a submodule located at <dir>/mod.rs.
	Mod
	// Direct is a submodule located at <dir>/<name>.rs.
	Direct
)

// Module is a discoverer seed or intermediate recursion state: a source
// file, the fully-qualified module path it defines, and the category that
// decides where its own children live.
type Module struct {
	FilePath   string
	ModulePath modpath.Path
	Category   Category
	Vis        modpath.Visibility
}

// ModuleFile is one (module path, file path) pair emitted by Discover.
type ModuleFile struct {
	ModulePath modpath.Path
	FilePath   string
	Vis        modpath.Visibility
	Items      []syntax.Item
}

// ErrMissingSubmodule is raised when a body-less `mod X;` declaration has
// no attribute override and neither naming-convention candidate exists.
var ErrMissingSubmodule = errors.New("discover: missing submodule file")

// Discover walks the module tree rooted at seed, returning one ModuleFile
// per discovered file (including seed itself). exclude is an optional list
// of doublestar glob patterns; any candidate submodule file matching one
// is treated as though it does not exist. A parse failure in a file
// contributes zero items and zero further discovery for that file without
// aborting the crate; an I/O failure on a single file behaves the same
// way. Only ErrMissingSubmodule aborts the whole crate.
func Discover(fsys fs.FileSystem, seed Module, logger diag.Logger, exclude []string) ([]ModuleFile, error) {
	var out []ModuleFile
	if err := discoverRec(fsys, seed, &out, logger, exclude); err != nil {
		return nil, err
	}
	return out, nil
}

func discoverRec(fsys fs.FileSystem, mod Module, out *[]ModuleFile, logger diag.Logger, exclude []string) error {
	content, err := fsys.ReadFile(mod.FilePath)
	if err != nil {
		logger.Warning("io error reading %s: %v", mod.FilePath, err)
		*out = append(*out, ModuleFile{ModulePath: mod.ModulePath, FilePath: mod.FilePath, Vis: mod.Vis})
		return nil
	}

	items, ok := syntax.Parse(content)
	if !ok {
		logger.Warning("parse failure in %s", mod.FilePath)
		*out = append(*out, ModuleFile{ModulePath: mod.ModulePath, FilePath: mod.FilePath, Vis: mod.Vis})
		return nil
	}
	*out = append(*out, ModuleFile{ModulePath: mod.ModulePath, FilePath: mod.FilePath, Vis: mod.Vis, Items: items})

	for _, it := range items {
		if it.Kind != syntax.ItemModule || it.HasBody {
			continue
		}
		if isRawIdent(it.Name) {
			logger.Debug("skipping raw-identifier submodule %q declared in %s (known limitation)", it.Name, mod.FilePath)
			continue
		}

		childFile, childCategory, err := locateSubmodule(fsys, mod, it, exclude)
		if err != nil {
			return fmt.Errorf("%w: module %q declared in %s", ErrMissingSubmodule, it.Name, mod.ModulePath)
		}
		child := Module{
			FilePath:   childFile,
			ModulePath: mod.ModulePath.Push(it.Name),
			Category:   childCategory,
			Vis:        it.Vis,
		}
		if err := discoverRec(fsys, child, out, logger, exclude); err != nil {
			return err
		}
	}
	return nil
}

// locateSubmodule finds a declared submodule's file: an explicit path
// attribute wins outright; otherwise the <name>.rs / <name>/mod.rs
// naming convention is tried in order.
func locateSubmodule(fsys fs.FileSystem, parent Module, it syntax.Item, exclude []string) (filePath string, category Category, err error) {
	dir := path.Dir(parent.FilePath)

	if it.PathAttr != "" {
		full := it.PathAttr
		if !path.IsAbs(full) {
			full = path.Join(dir, it.PathAttr)
		}
		if !candidateAllowed(fsys, full, exclude) {
			return "", 0, ErrMissingSubmodule
		}
		return full, categoryFromFilename(path.Base(full)), nil
	}

	var parentDir string
	switch parent.Category {
	case Root, Mod:
		parentDir = dir
	default: // Direct
		parentDir = path.Join(dir, parent.ModulePath.Last())
	}

	directFile := path.Join(parentDir, it.Name+".rs")
	if candidateAllowed(fsys, directFile, exclude) {
		return directFile, Direct, nil
	}
	modFile := path.Join(parentDir, it.Name, "mod.rs")
	if candidateAllowed(fsys, modFile, exclude) {
		return modFile, Mod, nil
	}
	return "", 0, ErrMissingSubmodule
}

func candidateAllowed(fsys fs.FileSystem, file string, exclude []string) bool {
	if !fsys.Exists(file) {
		return false
	}
	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, file); matched {
			return false
		}
	}
	return true
}

func categoryFromFilename(name string) Category {
	switch name {
	case "mod.rs":
		return Mod
	case "lib.rs", "main.rs":
		return Root
	default:
		return Direct
	}
}

func isRawIdent(name string) bool {
	return strings.HasPrefix(name, "r#")
}
