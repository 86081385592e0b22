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

// Package indexer provides the top-level orchestrator: for each package
// in the dependency closure it discovers modules, parses them, extracts
// items per kind, builds the item trees, and resolves every use-path
// found against them.
package indexer

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"crateidx/diag"
	"crateidx/discover"
	"crateidx/fs"
	"crateidx/item"
	"crateidx/itemtree"
	"crateidx/modpath"
	"crateidx/useresolve"
)

// Options configures a single indexing run.
type Options struct {
	// MainCrate is the package name whose non-library targets (binaries,
	// tests, benches, examples) are additionally indexed; every other
	// package contributes its library target only.
	MainCrate string
	// Exclude is a list of doublestar glob patterns; any candidate module
	// file matching one is treated as though it does not exist.
	Exclude []string
	// Allow2015Degraded opts into reduced 2015-edition resolution instead
	// of failing that crate's use-paths with ErrUnsupportedEdition.
	Allow2015Degraded bool
	// Logger receives non-fatal diagnostics. Defaults to diag.NopLogger
	// when nil.
	Logger diag.Logger
}

// UseResult is one resolved use-path tuple: the module it was written in,
// the use-path itself, and every item it binds (possibly empty).
type UseResult struct {
	Module   modpath.Path
	UsePath  modpath.UsePath
	Resolved []useresolve.Resolved
}

// Index is the completed output of a run: one tree per item kind plus
// every resolved use-path tuple.
type Index struct {
	Structs     *itemtree.Tree[item.Struct]
	Enums       *itemtree.Tree[item.Enum]
	Consts      *itemtree.Tree[item.Const]
	TypeAliases *itemtree.Tree[item.TypeAlias]
	Modules     *itemtree.Tree[item.Module]
	Results     []UseResult
}

// shard is the per-worker accumulator phase 1 fills without locking; the
// barrier at the end of phase 1 merges every shard into one set of flat
// slices, keeping the hot path lock-free.
type shard struct {
	structs      []item.Struct
	enums        []item.Enum
	consts       []item.Const
	typeAliases  []item.TypeAlias
	modules      []item.Module
	externCrates map[string][]item.ExternCrate
	useDecls     []useDecl
}

type useDecl struct {
	item.UseDecl
	edition string
}

func newShard() *shard {
	return &shard{externCrates: make(map[string][]item.ExternCrate)}
}

func flattenMap[T any](m map[string][]T, into *[]T) {
	for _, v := range m {
		*into = append(*into, v...)
	}
}

// Index runs a complete indexing pass against provider's dependency
// closure, rooted under fsys. ctx cancellation is checked before each build
// target is indexed and before each use-path is resolved, not between the
// files of one target: a cancelled run returns ctx.Err() rather than a
// partial Index.
func Index(ctx context.Context, fsys fs.FileSystem, provider PackageProvider, opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = diag.NopLogger{}
	}

	packages, err := provider.ListPackages()
	if err != nil {
		return nil, fmt.Errorf("indexer: listing packages: %w", err)
	}

	targets := selectTargets(packages, opts.MainCrate)

	// Phase 1: discover + parse + extract, parallel over targets.
	g, gctx := errgroup.WithContext(ctx)
	shards := make([]*shard, len(targets))
	var mu sync.Mutex // guards only the shards slice write-back, not the hot path
	for i, pkgTarget := range targets {
		i, pt := i, pkgTarget
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if pt.target.Metabuild {
				return nil
			}
			sh := indexTarget(fsys, pt, logger, opts.Exclude)
			mu.Lock()
			shards[i] = sh
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Phase 2: merge shards, build trees. Single-threaded.
	var allStructs []item.Struct
	var allEnums []item.Enum
	var allConsts []item.Const
	var allTypeAliases []item.TypeAlias
	var allModules []item.Module
	externCrates := make(useresolve.ExternCrates)
	var allUseDecls []useDecl
	for _, sh := range shards {
		if sh == nil {
			continue
		}
		allStructs = append(allStructs, sh.structs...)
		allEnums = append(allEnums, sh.enums...)
		allConsts = append(allConsts, sh.consts...)
		allTypeAliases = append(allTypeAliases, sh.typeAliases...)
		allModules = append(allModules, sh.modules...)
		allUseDecls = append(allUseDecls, sh.useDecls...)
		for k, v := range sh.externCrates {
			externCrates[k] = append(externCrates[k], v...)
		}
	}

	allStructs, allEnums, allConsts, allTypeAliases = foldReExports(
		allStructs, allEnums, allConsts, allTypeAliases, allModules, allUseDecls, externCrates, opts)

	idx := &Index{
		Structs:     itemtree.Build(allStructs),
		Enums:       itemtree.Build(allEnums),
		Consts:      itemtree.Build(allConsts),
		TypeAliases: itemtree.Build(allTypeAliases),
		Modules:     itemtree.Build(allModules),
	}

	// Phase 3: resolve every use-path, parallel over independent tuples.
	results := make([]UseResult, len(allUseDecls))
	rg, rgctx := errgroup.WithContext(ctx)
	for i, ud := range allUseDecls {
		i, ud := i, ud
		rg.Go(func() error {
			select {
			case <-rgctx.Done():
				return rgctx.Err()
			default:
			}
			resolved, err := useresolve.Resolve(ud.UsePath, ud.Module, useresolve.Options{
				Edition:           ud.edition,
				Allow2015Degraded: opts.Allow2015Degraded,
			}, externCrates, useresolve.Trees{
				Structs:     idx.Structs,
				Enums:       idx.Enums,
				Consts:      idx.Consts,
				TypeAliases: idx.TypeAliases,
				Modules:     idx.Modules,
			})
			if err != nil {
				// Resolve only ever fails with ErrUnsupportedEdition or
				// modpath.ErrInvalidUsePath - unlike a resolution miss
				// (empty Resolved, nil error), these abort the whole
				// Index() call rather than degrading to a logged warning.
				return fmt.Errorf("resolving %s from %s: %w", ud.UsePath.String(), ud.Module.String(), err)
			}
			results[i] = UseResult{Module: ud.Module, UsePath: ud.UsePath, Resolved: resolved}
			return nil
		})
	}
	if err := rg.Wait(); err != nil {
		return nil, err
	}
	idx.Results = results

	return idx, nil
}

type packageTarget struct {
	pkg    Package
	target Target
}

// selectTargets picks, for every package, its library target; the
// mainCrate package additionally contributes every non-library target
// (binaries, tests, benches, examples).
func selectTargets(packages []Package, mainCrate string) []packageTarget {
	var out []packageTarget
	for _, pkg := range packages {
		for _, t := range pkg.Targets {
			if t.Kind == TargetLibrary {
				out = append(out, packageTarget{pkg: pkg, target: t})
			}
		}
		if pkg.Name == mainCrate {
			for _, t := range pkg.Targets {
				if t.Kind != TargetLibrary {
					out = append(out, packageTarget{pkg: pkg, target: t})
				}
			}
		}
	}
	return out
}

// indexTarget runs discovery + extraction for one target and returns its
// shard. A crate-local MissingSubmodule failure is logged and yields an
// empty shard; it does not propagate to other targets.
func indexTarget(fsys fs.FileSystem, pt packageTarget, logger diag.Logger, exclude []string) *shard {
	sh := newShard()
	crateName := pt.target.CrateName
	seed := discover.Module{
		FilePath:   pt.target.SourceRootPath,
		ModulePath: modpath.New(crateName),
		Category:   discover.Root,
		Vis:        modpath.PublicVisibility,
	}

	moduleFiles, err := discover.Discover(fsys, seed, logger, exclude)
	if err != nil {
		logger.Warning("crate %s: %v", crateName, err)
		return sh
	}

	for _, mf := range moduleFiles {
		flattenMap(item.StructsFromItems(mf.Items, mf.ModulePath), &sh.structs)
		flattenMap(item.EnumsFromItems(mf.Items, mf.ModulePath), &sh.enums)
		flattenMap(item.ConstsFromItems(mf.Items, mf.ModulePath), &sh.consts)
		flattenMap(item.TypeAliasesFromItems(mf.Items, mf.ModulePath), &sh.typeAliases)
		flattenMap(item.ModulesFromItems(mf.Items, mf.ModulePath, mf.Vis), &sh.modules)

		// Extern-crate declarations stay map-shaped rather than
		// flattening to a slice: lookupRename needs the per-scope
		// grouping intact.
		for k, v := range item.ExternCratesFromItems(mf.Items, mf.ModulePath) {
			sh.externCrates[k] = append(sh.externCrates[k], v...)
		}

		for _, ud := range item.UseDeclsFromItems(mf.Items, mf.ModulePath) {
			sh.useDecls = append(sh.useDecls, useDecl{UseDecl: ud, edition: pt.pkg.Edition})
		}
	}
	return sh
}
